package value

// Builtin is the signature every built-in procedure implements. It
// receives the current environment and an already-evaluated SExp of
// arguments, and returns the result — which may itself be an Err.
type Builtin func(env *Env, args *SExp) Value

// Fun is the unified function value: either a built-in procedure or a
// user lambda with formals, a body and a captured environment. Exactly
// one of the two subvariants is populated.
type Fun struct {
	builtin Builtin
	name    string // display name of a builtin, for error messages

	formals *QExp
	body    *QExp
	env     *Env
}

// NewBuiltinFun wraps a Go function as a builtin Fun value.
func NewBuiltinFun(name string, fn Builtin) *Fun {
	return &Fun{builtin: fn, name: name}
}

// NewLambda builds a lambda Fun value with a freshly allocated, empty
// captured environment chained to parent — the environment active when
// the lambda literal was evaluated. Chaining at construction, rather
// than only at call time, is what lets a lambda returned from inside
// another lambda's body still see the enclosing call's bindings once
// the defining call has returned (see §8's mkadder/inc5 scenario).
// Passing a nil parent leaves the environment unchained, in which case
// Call chains it to the caller's environment on first invocation.
func NewLambda(formals, body *QExp, parent *Env) *Fun {
	return &Fun{formals: formals, body: body, env: NewChildEnv(parent)}
}

func (*Fun) Kind() Kind { return KindFun }

// IsBuiltin reports whether this Fun is the built-in subvariant.
func (f *Fun) IsBuiltin() bool { return f.builtin != nil }

// Name returns the builtin's registered name. Only meaningful when
// IsBuiltin is true.
func (f *Fun) Name() string { return f.name }

// Builtin returns the wrapped Go function. Only meaningful when
// IsBuiltin is true.
func (f *Fun) Builtin() Builtin { return f.builtin }

// Formals, Body and Env expose a lambda's components. Only meaningful
// when IsBuiltin is false.
func (f *Fun) Formals() *QExp { return f.formals }
func (f *Fun) Body() *QExp    { return f.body }
func (f *Fun) Env() *Env      { return f.env }

func (f *Fun) Copy() Value {
	if f.IsBuiltin() {
		return &Fun{builtin: f.builtin, name: f.name}
	}
	return &Fun{
		formals: f.formals.Copy().(*QExp),
		body:    f.body.Copy().(*QExp),
		env:     f.env.Copy(),
	}
}

func (f *Fun) String() string {
	if f.IsBuiltin() {
		return "<builtin>"
	}
	return "(lambda " + f.formals.String() + " " + f.body.String() + ")"
}

// GetFun returns v as a *Fun, if possible.
func GetFun(v Value) (*Fun, bool) {
	fn, ok := v.(*Fun)
	return fn, ok
}
