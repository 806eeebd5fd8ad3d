package num

import "fmt"

// gcd calculates the greatest common divisor using Euclid's algorithm.
//
// gcd(n, 0) = n and gcd(0, d) = d, including gcd(0, 0) = 0. Because of
// truncated remainders the result may be negative if an argument is negative;
// callers normalize the sign afterwards.
func gcd(a, b int64) int64 {
	for a != 0 {
		a, b = b%a, a
	}
	return b
}

// MakeRational creates the canonical value for the fraction n/d.
//
// The fraction is reduced to lowest terms and the sign is moved to the numerator.
// If the reduced denominator is 1, the result is an Integer. A denominator of 0
// results in ErrDivisionByZero. ErrOverflow is returned if normalizing would leave
// the range of int64 (this may only happen for math.MinInt64).
func MakeRational(n, d int64) (Value, error) {
	if d == 0 {
		return nil, ErrDivisionByZero
	}
	var c checker
	g := gcd(n, d)
	rn, rd := c.quo(n, g), c.quo(d, g)
	if rd < 0 {
		rn, rd = c.neg(rn), c.neg(rd)
	}
	if c.overflow {
		T().Debugf("normalizing %d/%d overflows", n, d)
		return nil, ErrOverflow
	}
	if rd == 1 {
		return Integer(rn), nil
	}
	return Rational{num: rn, den: rd}, nil
}

// MustRational is like MakeRational, but panics if the fraction cannot be
// represented. It simplifies the construction of literal values.
func MustRational(n, d int64) Value {
	v, err := MakeRational(n, d)
	if err != nil {
		panic(fmt.Sprintf("num: cannot make rational %d/%d: %v", n, d, err))
	}
	return v
}

// rationalAdd adds n1/d1 and n2/d2. We could let MakeRational handle the gcd
// of the cross products, but dividing the gcd of the denominators in first keeps
// intermediate values smaller.
func rationalAdd(n1, d1, n2, d2 int64) (Value, error) {
	var c checker
	if d1 == d2 { // fast path for common denominators
		s := c.add(n1, n2)
		if c.overflow {
			return nil, ErrOverflow
		}
		return MakeRational(s, d1)
	}
	g := gcd(d1, d2)
	n := c.add(c.mul(n1, d2/g), c.mul(n2, d1/g))
	d := c.mul(d1/g, d2)
	if c.overflow {
		T().Debugf("%d/%d + %d/%d overflows", n1, d1, n2, d2)
		return nil, ErrOverflow
	}
	return MakeRational(n, d)
}
