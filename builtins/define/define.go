// Package define implements the binding builtins: define, set, and
// lambda.
package define

import (
	"github.com/bms-1984/lisp64/builtins"
	"github.com/bms-1984/lisp64/value"
)

func bindVars(name string, env *value.Env, args *value.SExp, global bool) value.Value {
	if e, ok := builtins.CheckMinArity(name, args, 1); !ok {
		return e
	}
	if e, ok := builtins.CheckType(name, args, 0, value.KindQExp); !ok {
		return e
	}

	syms := args.Cells()[0].(*value.QExp)
	for _, c := range syms.Cells() {
		if _, ok := value.GetSym(c); !ok {
			return value.NewErr("Function '%s' cannot define non-symbol. Got %s, Expected %s.",
				name, value.TypeName(c.Kind()), value.TypeName(value.KindSym))
		}
	}

	vals := args.Cells()[1:]
	if syms.Len() != len(vals) {
		return value.NewErr("Function '%s' passed too many arguments for symbols. Got %d, Expected %d.",
			name, len(vals), syms.Len())
	}

	for i, c := range syms.Cells() {
		sym := c.(value.Sym)
		if global {
			env.Def(sym.Name(), vals[i])
		} else {
			env.Put(sym.Name(), vals[i])
		}
	}
	return value.NewSExp()
}

// Define binds symbols in the root environment.
func Define(env *value.Env, args *value.SExp) value.Value {
	return bindVars("define", env, args, true)
}

// Set binds symbols in the current (local) environment.
func Set(env *value.Env, args *value.SExp) value.Value {
	return bindVars("set", env, args, false)
}

// Lambda constructs a closure from a QExp of formal-parameter symbols
// and a QExp body. The closure's captured environment is chained to
// env, the scope the lambda literal is evaluated in, so it can still
// see those bindings on every later invocation.
func Lambda(env *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("lambda", args, 2); !ok {
		return e
	}
	if e, ok := builtins.CheckType("lambda", args, 0, value.KindQExp); !ok {
		return e
	}
	if e, ok := builtins.CheckType("lambda", args, 1, value.KindQExp); !ok {
		return e
	}

	formals := args.Cells()[0].(*value.QExp)
	for _, c := range formals.Cells() {
		if _, ok := value.GetSym(c); !ok {
			return value.NewErr("Cannot define non-symbol. Got %s, Expected %s.",
				value.TypeName(c.Kind()), value.TypeName(value.KindSym))
		}
	}

	body := args.Cells()[1].(*value.QExp)
	return value.NewLambda(formals.Copy().(*value.QExp), body.Copy().(*value.QExp), env)
}
