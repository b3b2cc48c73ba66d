package types

import (
	"math"
	"testing"
)

func TestTableSetGet(t *testing.T) {
	tbl := NewTable()
	tbl.Set(NewStr("a"), NewNumber(1))
	tbl.Set(NewNumber(2), NewStr("two"))

	v, ok := tbl.Get(NewStr("a"))
	if !ok || !v.Equal(NewNumber(1)) {
		t.Errorf("Get(\"a\") = %v, %v", v, ok)
	}
	v, ok = tbl.Get(NewNumber(2))
	if !ok || !v.Equal(NewStr("two")) {
		t.Errorf("Get(2) = %v, %v", v, ok)
	}
	if _, ok := tbl.Get(NewStr("missing")); ok {
		t.Error("missing key reported present")
	}
}

func TestTableNilAssignmentRemoves(t *testing.T) {
	tbl := NewTable()
	tbl.Set(NewStr("k"), NewNumber(1))
	tbl.Set(NewStr("k"), Nil)
	if _, ok := tbl.Get(NewStr("k")); ok {
		t.Error("nil assignment did not remove the entry")
	}
	if tbl.Size() != 0 {
		t.Errorf("Size() = %d after removal", tbl.Size())
	}
}

func TestTableNilKeyIgnored(t *testing.T) {
	tbl := NewTable()
	tbl.Set(Nil, NewNumber(1))
	if tbl.Size() != 0 {
		t.Error("nil key was stored")
	}
}

func TestTableNegativeZeroKey(t *testing.T) {
	negZero := NewNumber(math.Copysign(0, -1))

	tbl := NewTable()
	tbl.Set(NewNumber(0), NewStr("zero"))
	v, ok := tbl.Get(negZero)
	if !ok || !v.Equal(NewStr("zero")) {
		t.Errorf("Get(-0) = %v, %v, want the entry stored at 0", v, ok)
	}

	tbl.Set(negZero, NewStr("negzero"))
	if tbl.Size() != 1 {
		t.Errorf("Size() = %d, want 1 (0 and -0 share a slot)", tbl.Size())
	}
	v, _ = tbl.Get(NewNumber(0))
	if !v.Equal(NewStr("negzero")) {
		t.Errorf("Get(0) = %v after Set(-0)", v)
	}
}

func TestTableNanKeyIgnored(t *testing.T) {
	tbl := NewTable()
	tbl.Set(NewNumber(math.NaN()), NewNumber(1))
	if tbl.Size() != 0 {
		t.Error("nan key was stored")
	}
	if _, ok := tbl.Get(NewNumber(math.NaN())); ok {
		t.Error("nan key reported present")
	}
}

func TestTableIdentityKeys(t *testing.T) {
	tbl := NewTable()
	k1 := NewTable()
	k2 := NewTable()
	tbl.Set(k1, NewNumber(1))
	tbl.Set(k2, NewNumber(2))

	v, _ := tbl.Get(k1)
	if !v.Equal(NewNumber(1)) {
		t.Errorf("Get(k1) = %v", v)
	}
	v, _ = tbl.Get(k2)
	if !v.Equal(NewNumber(2)) {
		t.Errorf("Get(k2) = %v", v)
	}
}

func TestTableBorderLength(t *testing.T) {
	tests := []struct {
		name     string
		keys     []float64
		expected int
	}{
		{"empty", nil, 0},
		{"contiguous", []float64{1, 2, 3}, 3},
		{"gap after two", []float64{1, 2, 4}, 2},
		{"no one", []float64{2, 3}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := NewTable()
			for _, k := range tt.keys {
				tbl.Set(NewNumber(k), NewBool(true))
			}
			if got := tbl.Len(); got != tt.expected {
				t.Errorf("Len() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestTableMeta(t *testing.T) {
	tbl := NewTable()
	if tbl.Meta() != nil {
		t.Error("fresh table has a metatable")
	}
	meta := NewTable()
	tbl.SetMeta(meta)
	if tbl.Meta() != meta {
		t.Error("SetMeta did not attach")
	}
	tbl.SetMeta(nil)
	if tbl.Meta() != nil {
		t.Error("SetMeta(nil) did not detach")
	}
}
