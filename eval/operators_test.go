package eval

import (
	"math"
	"testing"

	"moonlet/types"
)

func TestArithmeticMetamethods(t *testing.T) {
	// A two-element vector type built entirely in script
	prelude := `
		local Vec = {};
		Vec.__add = function(a, b) return mk(a.x + b.x, a.y + b.y) end;
		Vec.__sub = function(a, b) return mk(a.x - b.x, a.y - b.y) end;
		Vec.__mul = function(a, b) return mk(a.x * b, a.y * b) end;
		Vec.__unm = function(a) return mk(-a.x, -a.y) end;
		function mk(x, y) return setmetatable({x = x, y = y}, Vec) end;
		local v = mk(1, 2);
		local w = mk(10, 20);
	`
	tests := []struct {
		name  string
		src   string
		wantX float64
		wantY float64
	}{
		{"__add", "local r = v + w; return r.x, r.y", 11, 22},
		{"__sub", "local r = w - v; return r.x, r.y", 9, 18},
		{"__mul right operand plain", "local r = v * 3; return r.x, r.y", 3, 6},
		{"__unm", "local r = -v; return r.x, r.y", -1, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := run(t, prelude+tt.src)
			if len(result.Vals) != 2 {
				t.Fatalf("got %d values, want 2", len(result.Vals))
			}
			if !result.Vals[0].Equal(types.NewNumber(tt.wantX)) || !result.Vals[1].Equal(types.NewNumber(tt.wantY)) {
				t.Errorf("got (%s, %s), want (%v, %v)", result.Vals[0], result.Vals[1], tt.wantX, tt.wantY)
			}
		})
	}
}

// The right operand's handler applies when the left has none
func TestMetamethodRightOperand(t *testing.T) {
	src := `
		local meta = {__add = function(a, b) return "handled" end};
		local t = setmetatable({}, meta);
		return 1 + t
	`
	got := runValue(t, src)
	if !got.Equal(types.NewStr("handled")) {
		t.Errorf("got %s, want handled", got)
	}
}

func TestMetamethodMissing(t *testing.T) {
	runErr(t, "return {} + 1", types.UnsupportedOperation)
	runErr(t, "return nil .. \"x\"", types.UnsupportedOperation)
	runErr(t, "return -{}", types.UnsupportedOperation)
	runErr(t, "return {} < {}", types.UnsupportedOperation)
}

func TestConcatMetamethod(t *testing.T) {
	src := `
		local meta = {__concat = function(a, b) return "glued" end};
		local t = setmetatable({}, meta);
		return "x" .. t
	`
	got := runValue(t, src)
	if !got.Equal(types.NewStr("glued")) {
		t.Errorf("got %s, want glued", got)
	}
}

func TestLenMetamethod(t *testing.T) {
	src := `
		local meta = {__len = function(t) return 99 end};
		local t = setmetatable({1, 2, 3}, meta);
		return #t
	`
	got := runValue(t, src)
	if !got.Equal(types.NewNumber(99)) {
		t.Errorf("got %s, want 99", got)
	}
}

func TestEqMetamethod(t *testing.T) {
	t.Run("shared handler consulted", func(t *testing.T) {
		src := `
			local meta = {__eq = function(a, b) return a.id == b.id end};
			local a = setmetatable({id = 7}, meta);
			local b = setmetatable({id = 7}, meta);
			local c = setmetatable({id = 8}, meta);
			return a == b, a == c
		`
		result := run(t, src)
		if !result.Vals[0].Equal(types.NewBool(true)) || !result.Vals[1].Equal(types.NewBool(false)) {
			t.Errorf("got (%s, %s), want (true, false)", result.Vals[0], result.Vals[1])
		}
	})

	t.Run("identity wins without handler", func(t *testing.T) {
		got := runValue(t, "local t = {}; return t == t")
		if !got.Equal(types.NewBool(true)) {
			t.Errorf("got %s, want true", got)
		}
	})

	t.Run("distinct tables unequal without handler", func(t *testing.T) {
		got := runValue(t, "return {} == {}")
		if !got.Equal(types.NewBool(false)) {
			t.Errorf("got %s, want false", got)
		}
	})

	t.Run("mixed types never consult handlers", func(t *testing.T) {
		src := `
			local meta = {__eq = function(a, b) return true end};
			local t = setmetatable({}, meta);
			return t == 5
		`
		got := runValue(t, src)
		if !got.Equal(types.NewBool(false)) {
			t.Errorf("got %s, want false", got)
		}
	})
}

func TestOrderingMetamethods(t *testing.T) {
	prelude := `
		local meta = {__lt = function(a, b) return a.rank < b.rank end};
		local lo = setmetatable({rank = 1}, meta);
		local hi = setmetatable({rank = 2}, meta);
	`
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"lt", "return lo < hi", true},
		{"gt swaps operands", "return hi > lo", true},
		{"le falls back to not lt", "return lo <= hi", true},
		{"le reflexive via fallback", "return lo <= lo", true},
		{"ge via fallback", "return lo >= hi", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := runValue(t, prelude+tt.src)
			if !got.Equal(types.NewBool(tt.want)) {
				t.Errorf("got %s, want %v", got, tt.want)
			}
		})
	}
}

func TestLeHandlerPreferred(t *testing.T) {
	src := `
		local meta = {
			__lt = function(a, b) return false end,
			__le = function(a, b) return true end
		};
		local a = setmetatable({}, meta);
		local b = setmetatable({}, meta);
		return a <= b
	`
	got := runValue(t, src)
	if !got.Equal(types.NewBool(true)) {
		t.Errorf("got %s, want true", got)
	}
}

func TestKindMetatable(t *testing.T) {
	e := NewEvaluator()
	env := NewEnvironment()

	meta := types.NewTable()
	meta.Set(types.NewStr("__add"), types.NewBuiltin("strcat", func(args []types.Value) ([]types.Value, error) {
		return []types.Value{types.NewStr(types.ToString(args[0]) + types.ToString(args[1]))}, nil
	}))
	e.SetKindMetatable(types.TYPE_STR, meta)

	result, err := e.RunString(`return "a" + "b"`, env)
	if err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if len(result.Vals) != 1 || !result.Vals[0].Equal(types.NewStr("ab")) {
		t.Errorf("got %v, want ab", result.Vals)
	}

	// Table kind stays excluded
	e.SetKindMetatable(types.TYPE_TABLE, meta)
	if e.KindMetatable(types.TYPE_TABLE) != nil {
		t.Error("table kind metatable should stay unset")
	}
}

func TestDivisionByZero(t *testing.T) {
	got := runValue(t, "return 1 / 0")
	num, ok := got.(types.NumberValue)
	if !ok || !math.IsInf(num.Val, 1) {
		t.Errorf("got %s, want inf", got)
	}

	got = runValue(t, "return 0 / 0")
	num, ok = got.(types.NumberValue)
	if !ok || !math.IsNaN(num.Val) {
		t.Errorf("got %s, want nan", got)
	}
}
