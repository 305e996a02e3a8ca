// Package eval implements the evaluator (§4.3) and function application
// (§4.4): a single-expression evaluator, the S-expression reducer, and
// the unified call path for builtins and lambdas.
package eval

import "github.com/bms-1984/lisp64/value"

// Eval evaluates a single Value in env, per §4.3:
//   - Sym resolves via env.Get.
//   - SExp reduces via EvalSExp.
//   - every other variant (Long, Double, Bool, Str, Err, QExp, Fun)
//     evaluates to itself.
func Eval(env *value.Env, v value.Value) value.Value {
	switch x := v.(type) {
	case value.Sym:
		return env.Get(x.Name())
	case *value.SExp:
		return EvalSExp(env, x)
	default:
		return v
	}
}

// EvalSExp reduces an S-expression: every child is evaluated left to
// right, the first Err among the results short-circuits the whole
// reduction, an empty or singleton result passes through unchanged, and
// otherwise the first (evaluated) child must be a Fun applied to the
// rest.
func EvalSExp(env *value.Env, v *value.SExp) value.Value {
	cells := v.Cells()
	evaluated := make([]value.Value, len(cells))
	for i, c := range cells {
		evaluated[i] = Eval(env, c)
	}
	for _, e := range evaluated {
		if value.IsErr(e) {
			return e
		}
	}

	switch len(evaluated) {
	case 0:
		return value.NewSExp()
	case 1:
		return evaluated[0]
	}

	fn, ok := value.GetFun(evaluated[0])
	if !ok {
		return value.NewErr("S-Expression starts with incorrect type. Got %s, Expected %s.",
			value.TypeName(evaluated[0].Kind()), value.TypeName(value.KindFun))
	}
	return Call(env, fn, value.NewSExp(evaluated[1:]...))
}
