// Package stdlib wires every builtin procedure into a fresh root
// environment, mirroring the builtinsA registration table of sxpf's
// command driver.
package stdlib

import (
	"github.com/bms-1984/lisp64/builtins/arith"
	"github.com/bms-1984/lisp64/builtins/compare"
	"github.com/bms-1984/lisp64/builtins/cond"
	"github.com/bms-1984/lisp64/builtins/define"
	"github.com/bms-1984/lisp64/builtins/io"
	"github.com/bms-1984/lisp64/builtins/list"
	"github.com/bms-1984/lisp64/value"
)

var table = []struct {
	name string
	fn   value.Builtin
}{
	{"list", list.List}, {"head", list.Head}, {"tail", list.Tail},
	{"join", list.Join}, {"eval", list.Eval},

	{"+", arith.Add}, {"-", arith.Sub}, {"*", arith.Mul},
	{"/", arith.Div}, {"%", arith.Mod}, {"^", arith.Pow},

	{">", compare.Gt}, {">=", compare.Ge}, {"=", compare.Eq},
	{"!", compare.Ne}, {"<", compare.Lt}, {"<=", compare.Le},

	{"cond", cond.Cond},

	{"define", define.Define}, {"set", define.Set}, {"lambda", define.Lambda},

	{"load", io.Load}, {"print", io.Print}, {"error", io.Error},
}

// Register binds every builtin procedure into env.
func Register(env *value.Env) {
	for _, b := range table {
		env.Put(b.name, value.NewBuiltinFun(b.name, b.fn))
	}
}

// New returns a fresh root environment with every builtin registered.
func New() *value.Env {
	env := value.NewEnv()
	Register(env)
	return env
}
