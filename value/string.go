package value

// Str is a byte string value.
type Str string

// NewStr wraps s as a Value.
func NewStr(s string) Str { return Str(s) }

func (Str) Kind() Kind    { return KindStr }
func (s Str) Copy() Value { return s }

// String prints the escaped, double-quoted representation (§4.5 printing
// contract), which differs from Value().
func (s Str) String() string { return "\"" + Escape(string(s)) + "\"" }

// Value returns the raw, unescaped contents.
func (s Str) Value() string { return string(s) }

// GetStr returns v as a Str, if possible.
func GetStr(v Value) (Str, bool) {
	s, ok := v.(Str)
	return s, ok
}
