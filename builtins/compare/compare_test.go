package compare_test

import (
	"testing"

	"github.com/bms-1984/lisp64/builtins/compare"
	"github.com/bms-1984/lisp64/value"
)

func TestOrdering(t *testing.T) {
	got := compare.Lt(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewLong(2)))
	if got != value.True {
		t.Fatalf("1 < 2 = %v, want true", got)
	}
}

func TestTypeMismatchIsFalseNotErr(t *testing.T) {
	got := compare.Gt(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewStr("x")))
	if value.IsErr(got) {
		t.Fatalf("type mismatch on > produced Err: %v", got)
	}
	if got != value.False {
		t.Fatalf("type mismatch on > = %v, want false", got)
	}
}

func TestStringEquality(t *testing.T) {
	got := compare.Eq(value.NewEnv(), value.NewSExp(value.NewStr("a"), value.NewStr("a")))
	if got != value.True {
		t.Fatalf("\"a\" = \"a\" -> %v, want true", got)
	}
}

func TestStringOrderingIsErr(t *testing.T) {
	got := compare.Lt(value.NewEnv(), value.NewSExp(value.NewStr("a"), value.NewStr("b")))
	if !value.IsErr(got) {
		t.Fatalf("string ordering comparison = %v, want Err", got)
	}
}

func TestQExpEqualityIsErrNotBool(t *testing.T) {
	a := value.NewQExp(value.NewLong(1))
	b := value.NewQExp(value.NewLong(1))
	got := compare.Eq(value.NewEnv(), value.NewSExp(a, b))
	if !value.IsErr(got) {
		t.Fatalf("{1} = {1} = %v, want Err (Q-Expression is not comparable)", got)
	}
}

func TestBoolEqualityIsErr(t *testing.T) {
	got := compare.Ne(value.NewEnv(), value.NewSExp(value.True, value.False))
	if !value.IsErr(got) {
		t.Fatalf("#true ! #false = %v, want Err (Boolean is not comparable)", got)
	}
}
