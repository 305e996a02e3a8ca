package value_test

import (
	"testing"

	"github.com/bms-1984/lisp64/value"
)

func TestEnvGetPutDef(t *testing.T) {
	root := value.NewEnv()
	root.Put("x", value.NewLong(1))
	if got := root.Get("x"); got.String() != "1" {
		t.Errorf("Get(x) = %v, want 1", got)
	}
	if got := root.Get("y"); !value.IsErr(got) {
		t.Errorf("Get(y) = %v, want an Err", got)
	}

	child := value.NewChildEnv(root)
	child.Put("x", value.NewLong(2))
	if got := child.Get("x"); got.String() != "2" {
		t.Errorf("child Get(x) = %v, want 2 (local shadows parent)", got)
	}
	if got := root.Get("x"); got.String() != "1" {
		t.Errorf("root Get(x) = %v, want 1 (unaffected by child Put)", got)
	}

	child.Def("z", value.NewLong(3))
	if got := root.Get("z"); got.String() != "3" {
		t.Errorf("root Get(z) = %v, want 3 (def writes to root)", got)
	}
	if _, found := child.Lookup("z"); found {
		t.Error("child should not locally hold z, def wrote to root")
	}
}

func TestEnvChainedLookup(t *testing.T) {
	root := value.NewEnv()
	root.Put("a", value.NewLong(10))
	child := value.NewChildEnv(root)
	if got := child.Get("a"); got.String() != "10" {
		t.Errorf("Get(a) via parent chain = %v, want 10", got)
	}
}

func TestEnvCopyIsIndependent(t *testing.T) {
	e := value.NewEnv()
	e.Put("n", value.NewLong(5))
	cp := e.Copy()
	cp.Put("n", value.NewLong(99))
	if got := e.Get("n"); got.String() != "5" {
		t.Errorf("original env mutated after copy's Put: got %v", got)
	}
}
