package num

import "errors"

// ErrDivisionByZero is returned when a rational would get a zero denominator,
// either by construction or by dividing by zero.
var ErrDivisionByZero = errors.New("division by zero")

// ErrOverflow is returned when an intermediate or final result of an integer
// operation does not fit into 64 bits. Rational arithmetic checks the
// unreduced cross products and sums, so an operation may overflow even if
// its reduced result would fit: MaxInt64/2 + 1/2 overflows in the sum of the
// numerators, although the result is 2^62.
var ErrOverflow = errors.New("integer overflow")

// Names of the arithmetic operations, as reported by NonNumericOperandError.
const (
	OpAdd      = "add"
	OpSubtract = "subtract"
	OpMultiply = "multiply"
	OpDivide   = "divide"
	OpNegate   = "negate"
)

// NonNumericOperandError is returned when an arithmetic operation receives at
// least one operand which is not a number.
type NonNumericOperandError struct {
	// Operation is the name of the operation, e.g. "add".
	Operation string
}

func (err *NonNumericOperandError) Error() string {
	switch err.Operation {
	case OpAdd:
		return "Add requires two numbers"
	case OpSubtract:
		return "Subtract requires two numbers"
	case OpMultiply:
		return "Multiply requires two numbers"
	case OpDivide:
		return "Divide requires two numbers"
	case OpNegate:
		return "Negate requires a number"
	}
	return err.Operation + " requires numbers"
}

func nonNumeric(op string) error {
	return &NonNumericOperandError{Operation: op}
}
