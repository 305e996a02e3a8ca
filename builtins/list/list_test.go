package list_test

import (
	"testing"

	"github.com/bms-1984/lisp64/builtins/list"
	"github.com/bms-1984/lisp64/value"
)

func TestListRetypes(t *testing.T) {
	got := list.List(value.NewEnv(), value.NewSExp(value.NewLong(1), value.NewLong(2)))
	q, ok := got.(*value.QExp)
	if !ok || q.Len() != 2 {
		t.Fatalf("List = %v, want QExp of 2", got)
	}
}

func TestHead(t *testing.T) {
	q := value.NewQExp(value.NewLong(1), value.NewLong(2), value.NewLong(3))
	got := list.Head(value.NewEnv(), value.NewSExp(q))
	r, ok := got.(*value.QExp)
	if !ok || r.Len() != 1 || r.Cells()[0].(value.Long) != 1 {
		t.Fatalf("Head = %v, want {1}", got)
	}
}

func TestHeadEmptyIsErr(t *testing.T) {
	got := list.Head(value.NewEnv(), value.NewSExp(value.NewQExp()))
	if !value.IsErr(got) {
		t.Fatalf("Head({}) = %v, want Err", got)
	}
}

func TestTail(t *testing.T) {
	q := value.NewQExp(value.NewLong(1), value.NewLong(2), value.NewLong(3))
	got := list.Tail(value.NewEnv(), value.NewSExp(q))
	r := got.(*value.QExp)
	if r.Len() != 2 {
		t.Fatalf("Tail len = %d, want 2", r.Len())
	}
}

func TestJoin(t *testing.T) {
	a := value.NewQExp(value.NewLong(1))
	b := value.NewQExp(value.NewLong(2), value.NewLong(3))
	got := list.Join(value.NewEnv(), value.NewSExp(a, b))
	r := got.(*value.QExp)
	if r.Len() != 3 {
		t.Fatalf("Join len = %d, want 3", r.Len())
	}
}

func TestEval(t *testing.T) {
	env := value.NewEnv()
	env.Put("+", value.NewBuiltinFun("+", func(_ *value.Env, args *value.SExp) value.Value {
		sum := int64(0)
		for _, c := range args.Cells() {
			sum += int64(c.(value.Long))
		}
		return value.NewLong(sum)
	}))
	q := value.NewQExp(value.NewSym("+"), value.NewLong(1), value.NewLong(2))
	got := list.Eval(env, value.NewSExp(q))
	if got.(value.Long) != 3 {
		t.Fatalf("Eval({+ 1 2}) = %v, want 3", got)
	}
}
