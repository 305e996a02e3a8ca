package value

// Env is the lexical environment: a mapping from symbol name to Value,
// chained to an optional parent. A nil Parent identifies the global
// (root) environment.
type Env struct {
	Parent *Env
	names  []string
	vals   []Value
}

// NewEnv creates an empty, parentless (global) environment.
func NewEnv() *Env { return &Env{} }

// NewChildEnv creates an empty environment chained to parent.
func NewChildEnv(parent *Env) *Env { return &Env{Parent: parent} }

// Get looks up name, walking the parent chain. A hit returns a fresh copy
// of the bound value, per the ownership discipline in §3; a miss returns
// an Err("Unbound Symbol '<name>'").
func (e *Env) Get(name string) Value {
	for env := e; env != nil; env = env.Parent {
		for i, n := range env.names {
			if n == name {
				return env.vals[i].Copy()
			}
		}
	}
	return NewErr("Unbound Symbol '%s'", name)
}

// Lookup searches only the current scope, without consulting the parent.
func (e *Env) Lookup(name string) (Value, bool) {
	for i, n := range e.names {
		if n == name {
			return e.vals[i], true
		}
	}
	return nil, false
}

// Put writes name to the current (innermost) scope, overwriting any
// existing local binding.
func (e *Env) Put(name string, v Value) {
	for i, n := range e.names {
		if n == name {
			e.vals[i] = v.Copy()
			return
		}
	}
	e.names = append(e.names, name)
	e.vals = append(e.vals, v.Copy())
}

// Def writes name to the root of the parent chain.
func (e *Env) Def(name string, v Value) {
	root := e
	for root.Parent != nil {
		root = root.Parent
	}
	root.Put(name, v)
}

// Copy deep-copies the environment, used when a lambda's captured
// environment must be duplicated along with the Fun that owns it.
// The parent link is shared, never copied: environments above the point
// of capture are not owned by the lambda.
func (e *Env) Copy() *Env {
	if e == nil {
		return nil
	}
	cp := &Env{
		Parent: e.Parent,
		names:  append([]string(nil), e.names...),
		vals:   make([]Value, len(e.vals)),
	}
	for i, v := range e.vals {
		cp.vals[i] = v.Copy()
	}
	return cp
}
