package value

import "strings"

// SExp is an evaluable ordered sequence of values.
type SExp struct{ cells []Value }

// QExp is a quoted (non-evaluated) ordered sequence of values.
type QExp struct{ cells []Value }

// NewSExp builds an SExp from the given cells, taking ownership of the slice.
func NewSExp(cells ...Value) *SExp { return &SExp{cells: cells} }

// NewQExp builds a QExp from the given cells, taking ownership of the slice.
func NewQExp(cells ...Value) *QExp { return &QExp{cells: cells} }

func (s *SExp) Kind() Kind { return KindSExp }
func (q *QExp) Kind() Kind { return KindQExp }

func (s *SExp) Copy() Value { return &SExp{cells: copyCells(s.cells)} }
func (q *QExp) Copy() Value { return &QExp{cells: copyCells(q.cells)} }

func (s *SExp) String() string { return exprString('(', s.cells, ')') }
func (q *QExp) String() string { return exprString('{', q.cells, '}') }

// Cells returns the sequence's children, in source order. Callers must not
// mutate the returned slice.
func (s *SExp) Cells() []Value { return s.cells }
func (q *QExp) Cells() []Value { return q.cells }

// Len returns the number of children.
func (s *SExp) Len() int { return len(s.cells) }
func (q *QExp) Len() int { return len(q.cells) }

// Add appends x to the sequence, in place, and returns the receiver for
// chaining while reading.
func (s *SExp) Add(x Value) *SExp { s.cells = append(s.cells, x); return s }
func (q *QExp) Add(x Value) *QExp { q.cells = append(q.cells, x); return q }

// Pop removes and returns the child at index i.
func (s *SExp) Pop(i int) Value {
	x := s.cells[i]
	s.cells = append(s.cells[:i], s.cells[i+1:]...)
	return x
}
func (q *QExp) Pop(i int) Value {
	x := q.cells[i]
	q.cells = append(q.cells[:i], q.cells[i+1:]...)
	return x
}

// ToQExp retypes an SExp's cells into a QExp, consuming the receiver. This
// models the original `a->type = LVAL_QEXP` retyping done in `builtin_list`.
func (s *SExp) ToQExp() *QExp { return &QExp{cells: s.cells} }

// ToSExp retypes a QExp's cells into an SExp, consuming the receiver. This
// models `x->type = LVAL_SEXP` done in `builtin_eval`.
func (q *QExp) ToSExp() *SExp { return &SExp{cells: q.cells} }

func copyCells(cells []Value) []Value {
	if cells == nil {
		return nil
	}
	out := make([]Value, len(cells))
	for i, c := range cells {
		out[i] = c.Copy()
	}
	return out
}

func exprString(open byte, cells []Value, close byte) string {
	var sb strings.Builder
	sb.WriteByte(open)
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteByte(close)
	return sb.String()
}

// GetSExp returns v as an *SExp, if possible.
func GetSExp(v Value) (*SExp, bool) {
	s, ok := v.(*SExp)
	return s, ok
}

// GetQExp returns v as a *QExp, if possible.
func GetQExp(v Value) (*QExp, bool) {
	q, ok := v.(*QExp)
	return q, ok
}
