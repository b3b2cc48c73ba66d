package types

import "testing"

func TestTruthy(t *testing.T) {
	tests := []struct {
		name     string
		value    Value
		expected bool
	}{
		{"nil", Nil, false},
		{"false", NewBool(false), false},
		{"true", NewBool(true), true},
		{"zero", NewNumber(0), true},
		{"number", NewNumber(3), true},
		{"empty string", NewStr(""), true},
		{"string", NewStr("x"), true},
		{"table", NewTable(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value.Truthy() != tt.expected {
				t.Errorf("Truthy(%s) = %v, want %v", tt.name, tt.value.Truthy(), tt.expected)
			}
		})
	}
}

func TestNumberString(t *testing.T) {
	tests := []struct {
		val      float64
		expected string
	}{
		{7, "7"},
		{720, "720"},
		{-3, "-3"},
		{3.14, "3.14"},
		{0.5, "0.5"},
		{0, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := NewNumber(tt.val).String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestToString(t *testing.T) {
	if got := ToString(NewStr("hi")); got != "hi" {
		t.Errorf("ToString(string) = %q, want unquoted contents", got)
	}
	if got := ToString(NewNumber(7)); got != "7" {
		t.Errorf("ToString(7) = %q, want \"7\"", got)
	}
	if got := ToString(Nil); got != "nil" {
		t.Errorf("ToString(nil) = %q, want \"nil\"", got)
	}
}

func TestEqualIdentity(t *testing.T) {
	t1 := NewTable()
	t2 := NewTable()
	if t1.Equal(t2) {
		t.Error("distinct tables compare equal")
	}
	if !t1.Equal(t1) {
		t.Error("table does not equal itself")
	}

	f1 := NewBuiltin("f", func(args []Value) ([]Value, error) { return nil, nil })
	f2 := NewBuiltin("f", func(args []Value) ([]Value, error) { return nil, nil })
	if f1.Equal(f2) {
		t.Error("distinct builtins compare equal")
	}
}

func TestScalarEquality(t *testing.T) {
	if !NewStr("abc").Equal(NewStr("abc")) {
		t.Error("equal strings compare unequal")
	}
	if NewStr("abc").Equal(NewStr("ABC")) {
		t.Error("string comparison is case-insensitive")
	}
	if !NewNumber(2).Equal(NewNumber(2)) {
		t.Error("equal numbers compare unequal")
	}
	if NewNumber(2).Equal(NewStr("2")) {
		t.Error("number equals string")
	}
}
