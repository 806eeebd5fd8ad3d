package num

// Arithmetic on values. Every operation is a case analysis over the operand
// kinds; results which may be fractions are built by MakeRational, so they are
// canonical. A non-numeric operand fails the whole operation.

// Add returns left + right.
func Add(left, right Value) (Value, error) {
	T().Debugf("%v + %v", left, right)
	switch l := left.(type) {
	case Integer:
		switch r := right.(type) {
		case Integer:
			return integer(add64(int64(l), int64(r)))
		case Rational:
			return rationalAdd(int64(l), 1, r.num, r.den)
		}
	case Rational:
		switch r := right.(type) {
		case Integer:
			return rationalAdd(l.num, l.den, int64(r), 1)
		case Rational:
			return rationalAdd(l.num, l.den, r.num, r.den)
		}
	}
	return nil, nonNumeric(OpAdd)
}

// Subtract returns left - right.
func Subtract(left, right Value) (Value, error) {
	T().Debugf("%v - %v", left, right)
	var c checker
	switch l := left.(type) {
	case Integer:
		switch r := right.(type) {
		case Integer:
			return integer(sub64(int64(l), int64(r)))
		case Rational:
			n := c.neg(r.num)
			if c.overflow {
				return nil, ErrOverflow
			}
			return rationalAdd(int64(l), 1, n, r.den)
		}
	case Rational:
		switch r := right.(type) {
		case Integer:
			b := c.neg(int64(r))
			if c.overflow {
				return nil, ErrOverflow
			}
			return rationalAdd(l.num, l.den, b, 1)
		case Rational:
			n := c.neg(r.num) // negate the numerator only
			if c.overflow {
				return nil, ErrOverflow
			}
			return rationalAdd(l.num, l.den, n, r.den)
		}
	}
	return nil, nonNumeric(OpSubtract)
}

// Multiply returns left * right.
func Multiply(left, right Value) (Value, error) {
	T().Debugf("%v * %v", left, right)
	var c checker
	switch l := left.(type) {
	case Integer:
		switch r := right.(type) {
		case Integer:
			return integer(mul64(int64(l), int64(r)))
		case Rational:
			return c.fraction(c.mul(int64(l), r.num), r.den)
		}
	case Rational:
		switch r := right.(type) {
		case Integer:
			return c.fraction(c.mul(l.num, int64(r)), l.den)
		case Rational:
			return c.fraction(c.mul(l.num, r.num), c.mul(l.den, r.den))
		}
	}
	return nil, nonNumeric(OpMultiply)
}

// Divide returns left / right. Dividing by zero results in ErrDivisionByZero.
func Divide(left, right Value) (Value, error) {
	T().Debugf("%v / %v", left, right)
	var c checker
	switch l := left.(type) {
	case Integer:
		switch r := right.(type) {
		case Integer:
			return MakeRational(int64(l), int64(r))
		case Rational:
			return c.fraction(c.mul(int64(l), r.den), r.num)
		}
	case Rational:
		switch r := right.(type) {
		case Integer:
			return c.fraction(l.num, c.mul(l.den, int64(r)))
		case Rational:
			return c.fraction(c.mul(l.num, r.den), c.mul(l.den, r.num))
		}
	}
	return nil, nonNumeric(OpDivide)
}

// Negate returns -value. The result of negating a rational needs no
// re-normalization, as the sign is already carried by the numerator.
func Negate(value Value) (Value, error) {
	T().Debugf("-%v", value)
	switch v := value.(type) {
	case Integer:
		return integer(neg64(int64(v)))
	case Rational:
		n, ok := neg64(v.num)
		if !ok {
			return nil, ErrOverflow
		}
		return Rational{num: n, den: v.den}, nil
	}
	return nil, nonNumeric(OpNegate)
}

// integer wraps the result of a checked operation.
func integer(n int64, ok bool) (Value, error) {
	if !ok {
		return nil, ErrOverflow
	}
	return Integer(n), nil
}

// fraction creates a rational from checked numerator and denominator.
func (c *checker) fraction(n, d int64) (Value, error) {
	if c.overflow {
		return nil, ErrOverflow
	}
	return MakeRational(n, d)
}
