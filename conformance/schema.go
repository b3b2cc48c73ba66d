package conformance

// TestSuite represents a complete YAML test file
type TestSuite struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Setup       string     `yaml:"setup,omitempty"` // statements run before each test
	Tests       []TestCase `yaml:"tests"`
}

// TestCase represents a single test within a suite
type TestCase struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Skip        interface{} `yaml:"skip,omitempty"` // bool or reason string
	Source      string      `yaml:"source"`         // the script to run
	Expect      Expectation `yaml:"expect"`
}

// Expectation defines what outcome is expected from a test. Exactly
// one of the result checks applies; output may combine with value.
type Expectation struct {
	Value  interface{}   `yaml:"value,omitempty"`  // first returned value
	Values []interface{} `yaml:"values,omitempty"` // all returned values
	Output []string      `yaml:"output,omitempty"` // lines printed via print()
	Error  string        `yaml:"error,omitempty"`  // runtime error code or "SyntaxError"
	Type   string        `yaml:"type,omitempty"`   // type name of the first value
}

// IsSkipped returns true if this test should be skipped
func (tc *TestCase) IsSkipped() (bool, string) {
	switch v := tc.Skip.(type) {
	case bool:
		if v {
			return true, "skipped"
		}
		return false, ""
	case string:
		return true, v
	default:
		return false, ""
	}
}
