package num

import "math"

// Overflow-checked int64 operations. Each returns the (possibly wrapped)
// result and a flag which is false if the true result does not fit.

func add64(a, b int64) (int64, bool) {
	c := a + b
	if (a >= 0) == (b >= 0) && (c >= 0) != (a >= 0) {
		return c, false
	}
	return c, true
}

func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (a >= 0) != (b >= 0) && (c >= 0) != (a >= 0) {
		return c, false
	}
	return c, true
}

func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return math.MinInt64, false
	}
	c := a * b
	if c/b != a {
		return c, false
	}
	return c, true
}

func neg64(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return a, false
	}
	return -a, true
}

// quo64 is truncated division; b must not be 0.
func quo64(a, b int64) (int64, bool) {
	if b == -1 {
		return neg64(a)
	}
	return a / b, true
}

// checker collects the first overflow of a chain of checked operations. This
// keeps the arithmetic formulas readable:
//
//	var c checker
//	s := c.add(c.mul(n1, d2), c.mul(n2, d1))
//	if c.overflow { … }
type checker struct {
	overflow bool
}

func (c *checker) track(r int64, ok bool) int64 {
	if !ok {
		c.overflow = true
	}
	return r
}

func (c *checker) add(a, b int64) int64 { return c.track(add64(a, b)) }
func (c *checker) mul(a, b int64) int64 { return c.track(mul64(a, b)) }
func (c *checker) neg(a int64) int64 { return c.track(neg64(a)) }
func (c *checker) quo(a, b int64) int64 { return c.track(quo64(a, b)) }
