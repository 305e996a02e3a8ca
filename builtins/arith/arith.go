// Package arith implements the arithmetic builtins: + - * / % ^.
// Per §4.5, operands must all be the same numeric kind (Long or Double);
// mixing or non-numeric operands is an error, as is division or modulus
// by zero. A single-argument "-" negates its operand.
package arith

import (
	"math"

	"github.com/bms-1984/lisp64/builtins"
	"github.com/bms-1984/lisp64/value"
)

func checkOperands(name string, args *value.SExp) (value.Value, bool) {
	if e, ok := builtins.CheckMinArity(name, args, 1); !ok {
		return e, false
	}
	for _, c := range args.Cells() {
		if !value.IsNumber(c) {
			return value.NewErr("Cannot operate on non-number!"), false
		}
	}
	kind := args.Cells()[0].Kind()
	for _, c := range args.Cells()[1:] {
		if c.Kind() != kind {
			return value.NewErr("Cannot operate on non-number!"), false
		}
	}
	return nil, true
}

// Op dispatches to the correct numeric operation by symbol.
func Op(sym string) value.Builtin {
	return func(_ *value.Env, args *value.SExp) value.Value {
		if e, ok := checkOperands(sym, args); !ok {
			return e
		}

		if _, isLong := args.Cells()[0].(value.Long); isLong {
			return opLong(sym, args)
		}
		return opDouble(sym, args)
	}
}

func opLong(sym string, args *value.SExp) value.Value {
	acc := int64(args.Cells()[0].(value.Long))
	rest := args.Cells()[1:]

	if sym == "-" && len(rest) == 0 {
		return value.NewLong(-acc)
	}

	for _, c := range rest {
		n := int64(c.(value.Long))
		switch sym {
		case "+":
			acc += n
		case "-":
			acc -= n
		case "*":
			acc *= n
		case "/":
			if n == 0 {
				return value.NewErr("Division By Zero!")
			}
			acc /= n
		case "%":
			if n == 0 {
				return value.NewErr("Division By Zero!")
			}
			acc %= n
		case "^":
			acc = int64(math.Pow(float64(acc), float64(n)))
		}
	}
	return value.NewLong(acc)
}

func opDouble(sym string, args *value.SExp) value.Value {
	acc := float64(args.Cells()[0].(value.Double))
	rest := args.Cells()[1:]

	if sym == "-" && len(rest) == 0 {
		return value.NewDouble(-acc)
	}

	for _, c := range rest {
		n := float64(c.(value.Double))
		switch sym {
		case "+":
			acc += n
		case "-":
			acc -= n
		case "*":
			acc *= n
		case "/":
			if n == 0 {
				return value.NewErr("Division By Zero!")
			}
			acc /= n
		case "%":
			if n == 0 {
				return value.NewErr("Division By Zero!")
			}
			acc = math.Mod(acc, n)
		case "^":
			acc = math.Pow(acc, n)
		}
	}
	return value.NewDouble(acc)
}

// Add, Sub, Mul, Div, Mod, and Pow are the registered builtin procedures
// for +, -, *, /, %, and ^ respectively.
var (
	Add = Op("+")
	Sub = Op("-")
	Mul = Op("*")
	Div = Op("/")
	Mod = Op("%")
	Pow = Op("^")
)
