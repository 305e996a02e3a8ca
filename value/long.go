package value

import "strconv"

// Long is a 64-bit signed integer value.
type Long int64

// NewLong wraps x as a Value.
func NewLong(x int64) Long { return Long(x) }

func (Long) Kind() Kind     { return KindLong }
func (l Long) Copy() Value  { return l }
func (l Long) String() string { return strconv.FormatInt(int64(l), 10) }
