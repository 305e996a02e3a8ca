// Package list implements the list-manipulation builtins that operate on
// QExp values: list, head, tail, join, eval.
package list

import (
	"github.com/bms-1984/lisp64/builtins"
	"github.com/bms-1984/lisp64/eval"
	"github.com/bms-1984/lisp64/value"
)

// List retypes the argument SExp to a QExp, per §4.5.
func List(_ *value.Env, args *value.SExp) value.Value {
	return args.ToQExp()
}

// Head returns a QExp containing only the first element of its argument.
func Head(_ *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("head", args, 1); !ok {
		return e
	}
	if e, ok := builtins.CheckType("head", args, 0, value.KindQExp); !ok {
		return e
	}
	if e, ok := builtins.CheckQExpNotEmpty("head", args, 0); !ok {
		return e
	}
	q := args.Pop(0).(*value.QExp)
	for q.Len() > 1 {
		q.Pop(1)
	}
	return q
}

// Tail returns its argument QExp without its first element.
func Tail(_ *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("tail", args, 1); !ok {
		return e
	}
	if e, ok := builtins.CheckType("tail", args, 0, value.KindQExp); !ok {
		return e
	}
	if e, ok := builtins.CheckQExpNotEmpty("tail", args, 0); !ok {
		return e
	}
	q := args.Pop(0).(*value.QExp)
	q.Pop(0)
	return q
}

// Join concatenates all argument QExps, left to right.
func Join(_ *value.Env, args *value.SExp) value.Value {
	for i := range args.Cells() {
		if e, ok := builtins.CheckType("join", args, i, value.KindQExp); !ok {
			return e
		}
	}
	if args.Len() == 0 {
		return value.NewQExp()
	}
	acc := args.Pop(0).(*value.QExp)
	for args.Len() > 0 {
		next := args.Pop(0).(*value.QExp)
		for _, c := range next.Cells() {
			acc.Add(c)
		}
	}
	return acc
}

// Eval retypes its single QExp argument to an SExp and evaluates it.
func Eval(env *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("eval", args, 1); !ok {
		return e
	}
	if e, ok := builtins.CheckType("eval", args, 0, value.KindQExp); !ok {
		return e
	}
	q := args.Pop(0).(*value.QExp)
	return eval.Eval(env, q.ToSExp())
}
