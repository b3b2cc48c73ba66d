package eval

import (
	"testing"

	"moonlet/types"
)

func TestIndexMetamethod(t *testing.T) {
	t.Run("table handler chains", func(t *testing.T) {
		src := `
			local base = {greeting = "hello"};
			local mid = setmetatable({name = "mid"}, {__index = base});
			local leaf = setmetatable({}, {__index = mid});
			return leaf.greeting, leaf.name, leaf.absent
		`
		result := run(t, src)
		if len(result.Vals) != 3 {
			t.Fatalf("got %d values, want 3", len(result.Vals))
		}
		if !result.Vals[0].Equal(types.NewStr("hello")) {
			t.Errorf("leaf.greeting = %s, want hello", result.Vals[0])
		}
		if !result.Vals[1].Equal(types.NewStr("mid")) {
			t.Errorf("leaf.name = %s, want mid", result.Vals[1])
		}
		if !types.IsNil(result.Vals[2]) {
			t.Errorf("leaf.absent = %s, want nil", result.Vals[2])
		}
	})

	t.Run("function handler receives object and key", func(t *testing.T) {
		src := `
			local t = setmetatable({}, {__index = function(obj, key) return key .. "!" end});
			return t.ping
		`
		got := runValue(t, src)
		if !got.Equal(types.NewStr("ping!")) {
			t.Errorf("got %s, want ping!", got)
		}
	})

	t.Run("raw hit bypasses handler", func(t *testing.T) {
		src := `
			local t = setmetatable({x = 1}, {__index = function() return "trap" end});
			return t.x
		`
		got := runValue(t, src)
		if !got.Equal(types.NewNumber(1)) {
			t.Errorf("got %s, want 1", got)
		}
	})

	t.Run("false raw value still a hit", func(t *testing.T) {
		src := `
			local t = setmetatable({flag = false}, {__index = function() return "trap" end});
			return t.flag
		`
		got := runValue(t, src)
		if !got.Equal(types.NewBool(false)) {
			t.Errorf("got %s, want false", got)
		}
	})
}

func TestIndexFaults(t *testing.T) {
	runErr(t, "return (5).x", types.CannotIndex)
	runErr(t, "local n; return n.x", types.CannotIndex)
	runErr(t, "local n; n.x = 1", types.CannotIndex)
}

func TestNewIndexMetamethod(t *testing.T) {
	t.Run("function handler intercepts fresh keys", func(t *testing.T) {
		src := `
			local log = {};
			local t = setmetatable({}, {__newindex = function(obj, key, val)
				log[key] = val
			end});
			t.a = 1;
			return log.a, t.a
		`
		result := run(t, src)
		if !result.Vals[0].Equal(types.NewNumber(1)) {
			t.Errorf("log.a = %s, want 1", result.Vals[0])
		}
		if !types.IsNil(result.Vals[1]) {
			t.Errorf("t.a = %s, want nil (write diverted)", result.Vals[1])
		}
	})

	t.Run("existing key writes in place", func(t *testing.T) {
		src := `
			local t = setmetatable({a = 1}, {__newindex = function() end});
			t.a = 2;
			return t.a
		`
		got := runValue(t, src)
		if !got.Equal(types.NewNumber(2)) {
			t.Errorf("got %s, want 2", got)
		}
	})

	t.Run("table handler redirects the store", func(t *testing.T) {
		src := `
			local target = {};
			local t = setmetatable({}, {__newindex = target});
			t.k = "v";
			return target.k, t.k
		`
		result := run(t, src)
		if !result.Vals[0].Equal(types.NewStr("v")) {
			t.Errorf("target.k = %s, want v", result.Vals[0])
		}
		if !types.IsNil(result.Vals[1]) {
			t.Errorf("t.k = %s, want nil", result.Vals[1])
		}
	})
}

// Assigning nil removes the key, so a later __index handler sees it
// as absent
func TestNilAssignmentRestoresHandler(t *testing.T) {
	src := `
		local t = setmetatable({x = "raw"}, {__index = function() return "fallback" end});
		t.x = nil;
		return t.x
	`
	got := runValue(t, src)
	if !got.Equal(types.NewStr("fallback")) {
		t.Errorf("got %s, want fallback", got)
	}
}

func TestValueKinds(t *testing.T) {
	src := `
		local t = {};
		t[1] = "number key";
		t["1"] = "string key";
		t[true] = "bool key";
		return t[1], t["1"], t[true]
	`
	result := run(t, src)
	want := []string{"number key", "string key", "bool key"}
	for i, w := range want {
		if !result.Vals[i].Equal(types.NewStr(w)) {
			t.Errorf("value %d = %s, want %q", i, result.Vals[i], w)
		}
	}
}

func TestNegativeZeroKey(t *testing.T) {
	src := `
		local t = {};
		t[0] = "zero";
		return t[-0], 0 == -0
	`
	result := run(t, src)
	if !result.Vals[0].Equal(types.NewStr("zero")) {
		t.Errorf("t[-0] = %s, want the entry stored at 0", result.Vals[0])
	}
	if !result.Vals[1].Truthy() {
		t.Error("0 == -0 is false")
	}

	got := runValue(t, `local t = {}; t[-0] = "written"; return t[0]`)
	if !got.Equal(types.NewStr("written")) {
		t.Errorf("t[0] = %s, want the entry stored at -0", got)
	}
}

func TestNanIndex(t *testing.T) {
	runErr(t, `local t = {}; t[0 / 0] = 1`, types.CannotIndex)
	runErr(t, `return {[0 / 0] = 1}`, types.CannotIndex)

	// Reading a nan key is fine and always misses
	got := runValue(t, `local t = {1, 2}; return t[0 / 0]`)
	if !types.IsNil(got) {
		t.Errorf("t[nan] = %s, want nil", got)
	}
}
