package arith_test

import (
	"testing"

	"github.com/bms-1984/lisp64/builtins/arith"
	"github.com/bms-1984/lisp64/value"
)

func TestAddLong(t *testing.T) {
	got := arith.Add(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewLong(2), value.NewLong(3)))
	l, ok := got.(value.Long)
	if !ok || l != 6 {
		t.Fatalf("Add = %v, want Long(6)", got)
	}
}

func TestSubUnaryNegate(t *testing.T) {
	got := arith.Sub(value.NewEnv(), value.NewSExp(value.NewLong(5)))
	if got.(value.Long) != -5 {
		t.Fatalf("Sub(5) = %v, want -5", got)
	}
}

func TestDivByZero(t *testing.T) {
	got := arith.Div(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewLong(0)))
	if !value.IsErr(got) {
		t.Fatalf("Div by zero = %v, want Err", got)
	}
}

func TestMixedKindsIsErr(t *testing.T) {
	got := arith.Add(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewDouble(2.5)))
	if !value.IsErr(got) {
		t.Fatalf("mixed-kind Add = %v, want Err", got)
	}
}

func TestNonNumberIsErr(t *testing.T) {
	got := arith.Add(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewStr("x")))
	if !value.IsErr(got) {
		t.Fatalf("non-number Add = %v, want Err", got)
	}
}

func TestDoubleArith(t *testing.T) {
	got := arith.Mul(value.NewEnv(), value.NewSExp(value.NewDouble(2.5), value.NewDouble(4)))
	d, ok := got.(value.Double)
	if !ok || float64(d) != 10 {
		t.Fatalf("Mul = %v, want Double(10)", got)
	}
}
