package value

import "strconv"

// Double is an IEEE-754 double precision value.
type Double float64

// NewDouble wraps x as a Value.
func NewDouble(x float64) Double { return Double(x) }

func (Double) Kind() Kind    { return KindDouble }
func (d Double) Copy() Value { return d }

// String renders with six fractional digits, matching the original
// printf("%f", ...) display contract.
func (d Double) String() string { return strconv.FormatFloat(float64(d), 'f', 6, 64) }
