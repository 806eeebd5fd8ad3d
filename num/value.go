package num

import (
	"fmt"
	"strconv"
)

// Kind is the operand kind of a value.
type Kind int8

// Kinds of values. The set is closed.
const (
	IntegerKind Kind = iota
	RationalKind
	TextKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "integer"
	case RationalKind:
		return "rational"
	case TextKind:
		return "text"
	}
	return "<unknown>"
}

// Value is a value of the numeric tower, or a non-numeric Text. The only
// implementations are Integer, Rational and Text.
//
// Values are comparable with ==. As all rationals are canonical, two numeric
// values are equal if and only if they denote the same number.
type Value interface {
	Kind() Kind
	String() string
	isValue()
}

// --- Integer ---------------------------------------------------------------

// Integer is a signed 64-bit integer value.
type Integer int64

// MakeInteger wraps n into a value.
func MakeInteger(n int64) Value {
	return Integer(n)
}

// Kind is part of interface Value.
func (i Integer) Kind() Kind { return IntegerKind }

func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (Integer) isValue() {}

// --- Rational --------------------------------------------------------------

// Rational is an exact fraction in lowest terms. The denominator is always
// greater than 1, the sign is carried by the numerator.
//
// The zero value is not a valid rational. Rationals are created by MakeRational
// and by arithmetic only.
type Rational struct {
	num, den int64
}

// Num returns the numerator of r.
func (r Rational) Num() int64 { return r.num }

// Den returns the denominator of r, which is always > 1.
func (r Rational) Den() int64 { return r.den }

// Kind is part of interface Value.
func (r Rational) Kind() Kind { return RationalKind }

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

func (Rational) isValue() {}

// --- Text ------------------------------------------------------------------

// Text is a non-numeric value. It may be used wherever a value is expected, but
// arithmetic on it fails.
type Text string

// Kind is part of interface Value.
func (t Text) Kind() Kind { return TextKind }

func (t Text) String() string {
	return strconv.Quote(string(t))
}

func (Text) isValue() {}

// ---------------------------------------------------------------------------

// Fraction returns numerator and denominator of a numeric value. Integers have
// denominator 1. For non-numeric values ok is false.
func Fraction(v Value) (n, d int64, ok bool) {
	switch x := v.(type) {
	case Integer:
		return int64(x), 1, true
	case Rational:
		return x.num, x.den, true
	}
	return 0, 0, false
}

var _ Value = Integer(0)
var _ Value = Rational{}
var _ Value = Text("")
