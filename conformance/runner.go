package conformance

import (
	"errors"
	"fmt"
	"strings"

	"moonlet/eval"
	"moonlet/parser"
	"moonlet/types"
)

// TestResult represents the outcome of running a single test
type TestResult struct {
	Test       LoadedTest
	Passed     bool
	Skipped    bool
	SkipReason string
	Error      error
}

// Runner executes conformance tests. Every test runs against a fresh
// evaluator and environment, so suites cannot leak state into each
// other.
type Runner struct{}

// NewRunner creates a new test runner
func NewRunner() *Runner {
	return &Runner{}
}

// hostEnv builds the root environment the suites run against: the
// core itself binds nothing, so the runner plays host and provides
// print and setmetatable. Printed lines accumulate in output.
func hostEnv(output *[]string) *eval.Environment {
	env := eval.NewEnvironment()

	env.Define("print", types.NewBuiltin("print", func(args []types.Value) ([]types.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = types.ToString(a)
		}
		*output = append(*output, strings.Join(parts, "\t"))
		return nil, nil
	}))

	env.Define("setmetatable", types.NewBuiltin("setmetatable", func(args []types.Value) ([]types.Value, error) {
		if len(args) < 2 {
			return nil, types.NewRuntimeError(types.UnsupportedOperation, "setmetatable needs a table and a metatable")
		}
		tbl, ok := args[0].(*types.TableValue)
		if !ok {
			return nil, types.NewRuntimeError(types.UnsupportedOperation, "cannot set metatable on %s", args[0].Type())
		}
		if types.IsNil(args[1]) {
			tbl.SetMeta(nil)
			return []types.Value{tbl}, nil
		}
		meta, ok := args[1].(*types.TableValue)
		if !ok {
			return nil, types.NewRuntimeError(types.UnsupportedOperation, "metatable must be a table, got %s", args[1].Type())
		}
		tbl.SetMeta(meta)
		return []types.Value{tbl}, nil
	}))

	return env
}

// Run executes a single test case
func (r *Runner) Run(test LoadedTest) TestResult {
	if skipped, reason := test.Test.IsSkipped(); skipped {
		return TestResult{Test: test, Skipped: true, SkipReason: reason}
	}
	if test.Test.Source == "" {
		return TestResult{Test: test, Skipped: true, SkipReason: "no source"}
	}

	var output []string
	evaluator := eval.NewEvaluator()
	env := hostEnv(&output)

	if test.Suite.Setup != "" {
		if _, err := evaluator.RunString(test.Suite.Setup, env); err != nil {
			return TestResult{Test: test, Error: fmt.Errorf("suite setup failed: %w", err)}
		}
	}

	result, runErr := evaluator.RunString(test.Test.Source, env)

	passed, err := checkExpectation(test.Test.Expect, result, output, runErr)
	return TestResult{Test: test, Passed: passed, Error: err}
}

// RunAll executes all loaded tests
func (r *Runner) RunAll(tests []LoadedTest) []TestResult {
	results := make([]TestResult, len(tests))
	for i, test := range tests {
		results[i] = r.Run(test)
	}
	return results
}

// SummaryStats computes statistics from test results
type SummaryStats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

// ComputeStats generates statistics from test results
func ComputeStats(results []TestResult) SummaryStats {
	stats := SummaryStats{Total: len(results)}
	for _, r := range results {
		if r.Skipped {
			stats.Skipped++
		} else if r.Passed {
			stats.Passed++
		} else {
			stats.Failed++
		}
	}
	return stats
}

// FormatStats returns a human-readable summary
func FormatStats(stats SummaryStats) string {
	return fmt.Sprintf("%d passed, %d failed, %d skipped (%d total)",
		stats.Passed, stats.Failed, stats.Skipped, stats.Total)
}

// checkExpectation compares the run outcome against the expectation
func checkExpectation(expect Expectation, result types.Result, output []string, runErr error) (bool, error) {
	if expect.Error != "" {
		if runErr == nil {
			return false, fmt.Errorf("expected error %s, got none (result %v)", expect.Error, result.Vals)
		}
		name := errorName(runErr)
		if name != expect.Error {
			return false, fmt.Errorf("expected error %s, got %s (%v)", expect.Error, name, runErr)
		}
		return true, nil
	}

	if runErr != nil {
		return false, fmt.Errorf("unexpected error: %w", runErr)
	}

	if expect.Output != nil {
		if len(output) != len(expect.Output) {
			return false, fmt.Errorf("expected %d output lines, got %d: %v", len(expect.Output), len(output), output)
		}
		for i, want := range expect.Output {
			if output[i] != want {
				return false, fmt.Errorf("output line %d = %q, want %q", i+1, output[i], want)
			}
		}
	}

	if expect.Values != nil {
		if len(result.Vals) != len(expect.Values) {
			return false, fmt.Errorf("expected %d values, got %d: %v", len(expect.Values), len(result.Vals), result.Vals)
		}
		for i, raw := range expect.Values {
			want := convertYAMLValue(raw)
			if !valueMatches(result.Vals[i], want) {
				return false, fmt.Errorf("value %d = %s, want %s", i+1, result.Vals[i], want)
			}
		}
		return true, nil
	}

	if expect.Value != nil || expect.Type != "" {
		if !result.IsReturn() || len(result.Vals) == 0 {
			return false, fmt.Errorf("expected a returned value, got none")
		}
		got := result.Vals[0]

		if expect.Type != "" {
			if got.Type().String() != expect.Type {
				return false, fmt.Errorf("expected type %s, got %s", expect.Type, got.Type())
			}
		}
		if expect.Value != nil {
			want := convertYAMLValue(expect.Value)
			if !valueMatches(got, want) {
				return false, fmt.Errorf("expected %s, got %s", want, got)
			}
		}
		return true, nil
	}

	if expect.Output != nil {
		return true, nil
	}
	return false, errors.New("no expectation specified")
}

// errorName maps an execution error to the name used in the YAML
// expectations
func errorName(err error) string {
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		return "SyntaxError"
	}
	var rtErr *types.RuntimeError
	if errors.As(err, &rtErr) {
		return rtErr.Code.String()
	}
	return err.Error()
}

// convertYAMLValue maps a decoded YAML value onto the value model.
// Sequences become tables keyed 1..n, mappings become string-keyed
// tables.
func convertYAMLValue(v interface{}) types.Value {
	switch val := v.(type) {
	case nil:
		return types.Nil
	case bool:
		return types.NewBool(val)
	case int:
		return types.NewNumber(float64(val))
	case int64:
		return types.NewNumber(float64(val))
	case float64:
		return types.NewNumber(val)
	case string:
		return types.NewStr(val)
	case []interface{}:
		tbl := types.NewTable()
		for i, item := range val {
			tbl.Set(types.NewNumber(float64(i+1)), convertYAMLValue(item))
		}
		return tbl
	case map[string]interface{}:
		tbl := types.NewTable()
		for k, item := range val {
			tbl.Set(types.NewStr(k), convertYAMLValue(item))
		}
		return tbl
	default:
		return types.NewStr(fmt.Sprintf("%v", val))
	}
}

// valueMatches compares a produced value against an expected one.
// Tables compare structurally since expected tables are built fresh
// from YAML and can never be identical.
func valueMatches(got, want types.Value) bool {
	wantTbl, ok := want.(*types.TableValue)
	if !ok {
		return got.Equal(want)
	}
	gotTbl, ok := got.(*types.TableValue)
	if !ok {
		return false
	}
	if gotTbl.Size() != wantTbl.Size() {
		return false
	}
	for _, pair := range wantTbl.Pairs() {
		gotVal, found := gotTbl.Get(pair[0])
		if !found || !valueMatches(gotVal, pair[1]) {
			return false
		}
	}
	return true
}
