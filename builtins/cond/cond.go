// Package cond implements the conditional builtin: cond.
package cond

import (
	"github.com/bms-1984/lisp64/builtins"
	"github.com/bms-1984/lisp64/eval"
	"github.com/bms-1984/lisp64/value"
)

// Cond takes a Bool and two QExp branches, evaluates exactly the
// selected branch, and discards the other unevaluated, per §4.5.
func Cond(env *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("cond", args, 3); !ok {
		return e
	}
	if e, ok := builtins.CheckType("cond", args, 0, value.KindBool); !ok {
		return e
	}
	if e, ok := builtins.CheckType("cond", args, 1, value.KindQExp); !ok {
		return e
	}
	if e, ok := builtins.CheckType("cond", args, 2, value.KindQExp); !ok {
		return e
	}

	b := bool(args.Cells()[0].(value.Bool))
	t := args.Cells()[1].(*value.QExp)
	f := args.Cells()[2].(*value.QExp)

	if b {
		return eval.Eval(env, t.Copy().(*value.QExp).ToSExp())
	}
	return eval.Eval(env, f.Copy().(*value.QExp).ToSExp())
}
