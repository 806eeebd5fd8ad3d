/*
Package num implements a small numeric tower of 64-bit integers and exact
rationals.

Numbers switch representation automatically: every rational is kept in lowest
terms with a positive denominator, and a rational with denominator 1 collapses
to an integer. Normalization happens in exactly one place, MakeRational, and all
arithmetic constructs its results through it. Clients therefore never observe
a non-canonical value.

	half := num.MustRational(1, 2)
	third := num.MustRational(1, 3)
	sum, err := num.Add(half, third) // 5/6

Besides numbers there is a non-numeric value type, Text. Text is a valid
value (e.g., as a leaf of an expression tree), but every arithmetic operation
rejects it with a *NonNumericOperandError.

Arithmetic is overflow-aware. Whenever an intermediate product or sum leaves the
range of int64, the operation fails with ErrOverflow instead of wrapping around.
Dividing by zero, or constructing a rational with denominator 0, fails with
ErrDivisionByZero.

Arithmetic traces to the global equations tracer of package gtrace.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package num

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global equations tracer.
func T() tracing.Trace {
	return gtrace.EquationsTracer
}
