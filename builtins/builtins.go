// Package builtins collects the assertion helpers shared by every builtin
// procedure, mirroring the LASSERT family of macros in the original C
// implementation and the validation helpers of sxpf/builtins.
package builtins

import "github.com/bms-1984/lisp64/value"

// CheckArity returns an Err unless args has exactly n cells.
func CheckArity(name string, args *value.SExp, n int) (value.Value, bool) {
	if args.Len() != n {
		return value.NewErr("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, args.Len(), n), false
	}
	return nil, true
}

// CheckMinArity returns an Err unless args has at least n cells.
func CheckMinArity(name string, args *value.SExp, n int) (value.Value, bool) {
	if args.Len() < n {
		return value.NewErr("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, args.Len(), n), false
	}
	return nil, true
}

// CheckType returns an Err unless args's cell at index has the given kind.
func CheckType(name string, args *value.SExp, index int, k value.Kind) (value.Value, bool) {
	got := args.Cells()[index].Kind()
	if got != k {
		return value.NewErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			name, index, value.TypeName(got), value.TypeName(k)), false
	}
	return nil, true
}

// CheckQExpNotEmpty returns an Err unless args's cell at index is a
// non-empty QExp. Callers must have already checked the cell is a QExp.
func CheckQExpNotEmpty(name string, args *value.SExp, index int) (value.Value, bool) {
	q := args.Cells()[index].(*value.QExp)
	if q.Len() == 0 {
		return value.NewErr("Function '%s' passed {} for argument %d.", name, index), false
	}
	return nil, true
}
