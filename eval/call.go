package eval

import "github.com/bms-1984/lisp64/value"

// Call applies fn to args (an SExp of already-evaluated values), per
// §4.4. Builtins are invoked directly; lambdas bind their formals one by
// one, support a single variadic "&" rest parameter, and either execute
// their body (all formals consumed) or return a partially-applied copy
// of themselves (formals remain). A lambda's captured environment is
// normally already chained to its defining scope (see value.NewLambda);
// it is chained to the calling environment here only as a fallback, for
// a lambda constructed with no parent at all.
func Call(env *value.Env, fn *value.Fun, args *value.SExp) value.Value {
	if fn.IsBuiltin() {
		return fn.Builtin()(env, args)
	}

	given := args.Len()
	total := fn.Formals().Len()
	formals := fn.Formals()
	lambdaEnv := fn.Env()

	for args.Len() > 0 {
		if formals.Len() == 0 {
			return value.NewErr("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}
		sym := formals.Pop(0).(value.Sym)
		if sym.IsAmp() {
			if formals.Len() != 1 {
				return value.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := formals.Pop(0).(value.Sym)
			lambdaEnv.Put(rest.Name(), args.ToQExp())
			break
		}
		val := args.Pop(0)
		lambdaEnv.Put(sym.Name(), val)
	}

	if formals.Len() > 0 {
		if sym, ok := formals.Cells()[0].(value.Sym); ok && sym.IsAmp() {
			if formals.Len() != 2 {
				return value.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			formals.Pop(0)
			rest := formals.Pop(0).(value.Sym)
			lambdaEnv.Put(rest.Name(), value.NewQExp())
		}
	}

	if formals.Len() == 0 {
		if lambdaEnv.Parent == nil {
			lambdaEnv.Parent = env
		}
		return Eval(lambdaEnv, fn.Body().Copy().(*value.QExp).ToSExp())
	}
	return fn.Copy()
}
