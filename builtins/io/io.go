// Package io implements the input/output builtins: load, print, and
// error.
package io

import (
	"fmt"
	"os"
	"strings"

	"github.com/bms-1984/lisp64/builtins"
	"github.com/bms-1984/lisp64/eval"
	"github.com/bms-1984/lisp64/parser"
	"github.com/bms-1984/lisp64/reader"
	"github.com/bms-1984/lisp64/value"
)

// Load reads and evaluates every top-level form in the named file.
// Opening the file is a hard failure (Err("file failure")); a form that
// evaluates to an Err is printed and evaluation continues with the next
// form, per §4.5's load/open asymmetry.
func Load(env *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("load", args, 1); !ok {
		return e
	}
	if e, ok := builtins.CheckType("load", args, 0, value.KindStr); !ok {
		return e
	}

	path := args.Cells()[0].(value.Str).Value()
	contents, err := os.ReadFile(path)
	if err != nil {
		return value.NewErr("file failure")
	}

	node, perr := parser.New().Parse(contents)
	if perr != nil {
		return value.NewErr("Could not parse Library %s: %v", path, perr)
	}

	top, ok := reader.Read(node).(*value.SExp)
	if !ok {
		return value.NewErr("Could not read Library %s", path)
	}

	for _, form := range top.Cells() {
		result := eval.Eval(env, form)
		if value.IsErr(result) {
			fmt.Println(result.String())
		}
	}
	return value.NewSExp()
}

// Print writes its arguments to stdout, space-separated, followed by a
// newline, and returns an empty SExp.
func Print(_ *value.Env, args *value.SExp) value.Value {
	parts := make([]string, len(args.Cells()))
	for i, c := range args.Cells() {
		parts[i] = c.String()
	}
	fmt.Println(strings.Join(parts, " "))
	return value.NewSExp()
}

// Error wraps a Str message into an Err value.
func Error(_ *value.Env, args *value.SExp) value.Value {
	if e, ok := builtins.CheckArity("error", args, 1); !ok {
		return e
	}
	if e, ok := builtins.CheckType("error", args, 0, value.KindStr); !ok {
		return e
	}
	return value.NewErr("%s", args.Cells()[0].(value.Str).Value())
}
