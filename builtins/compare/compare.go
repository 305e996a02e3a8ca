// Package compare implements the comparison builtins: > >= = ! < <=.
// Per §4.5 every comparison takes exactly two arguments and always
// yields a Bool. A type mismatch between operands yields Bool(false)
// rather than an Err, for every operator including = and !. Only
// Long, Double and Str are comparable at all; Str supports only = and
// !, and every other same-typed pair (Bool, Sym, SExp, QExp, Fun) is
// an Err regardless of operator, matching builtin_comp in the original
// implementation.
package compare

import (
	"github.com/bms-1984/lisp64/builtins"
	"github.com/bms-1984/lisp64/value"
)

func numeric(v value.Value) (float64, bool) {
	switch x := v.(type) {
	case value.Long:
		return float64(x), true
	case value.Double:
		return float64(x), true
	default:
		return 0, false
	}
}

// Op dispatches to the correct comparison by symbol.
func Op(sym string) value.Builtin {
	return func(_ *value.Env, args *value.SExp) value.Value {
		if e, ok := builtins.CheckArity(sym, args, 2); !ok {
			return e
		}

		a, b := args.Cells()[0], args.Cells()[1]

		if a.Kind() != b.Kind() {
			return value.NewBool(false)
		}

		if an, aok := numeric(a); aok {
			bn, _ := numeric(b)
			return compareNumeric(sym, an, bn)
		}

		if s, ok := value.GetStr(a); ok {
			t := b.(value.Str)
			switch sym {
			case "=":
				return value.NewBool(s == t)
			case "!":
				return value.NewBool(s != t)
			default:
				return value.NewErr("Type %s is not comparable.", value.TypeName(value.KindStr))
			}
		}

		return value.NewErr("Type %s is not comparable.", value.TypeName(a.Kind()))
	}
}

func compareNumeric(sym string, a, b float64) value.Value {
	switch sym {
	case ">":
		return value.NewBool(a > b)
	case ">=":
		return value.NewBool(a >= b)
	case "=":
		return value.NewBool(a == b)
	case "!":
		return value.NewBool(a != b)
	case "<":
		return value.NewBool(a < b)
	case "<=":
		return value.NewBool(a <= b)
	}
	return value.NewErr("Unknown comparison operator '%s'.", sym)
}

// Gt, Ge, Eq, Ne, Lt, and Le are the registered builtin procedures for
// >, >=, =, !, <, and <= respectively.
var (
	Gt = Op(">")
	Ge = Op(">=")
	Eq = Op("=")
	Ne = Op("!")
	Lt = Op("<")
	Le = Op("<=")
)
