package expr

import (
	"fmt"

	"github.com/npillmayer/rateval/num"
)

// Op is the kind of a node: either a literal or an arithmetic operator.
type Op int8

// Node kinds.
const (
	OpLiteral Op = iota // terminal, holds a value
	OpAdd               // left + right
	OpSub               // left - right
	OpMul               // left * right
	OpDiv               // left / right
	OpNeg               // -operand
)

func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "lit"
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpNeg:
		return "neg"
	}
	return fmt.Sprintf("<op %d>", int8(op))
}

// IsBinary is a predicate: is op one of the four binary operators?
func (op Op) IsBinary() bool {
	return op >= OpAdd && op <= OpDiv
}

// Apply applies an operator to operand values. For OpNeg the right operand is
// ignored. Applying OpLiteral or an unknown operator panics.
func (op Op) Apply(left, right num.Value) (num.Value, error) {
	switch op {
	case OpAdd:
		return num.Add(left, right)
	case OpSub:
		return num.Subtract(left, right)
	case OpMul:
		return num.Multiply(left, right)
	case OpDiv:
		return num.Divide(left, right)
	case OpNeg:
		return num.Negate(left)
	}
	panic("expr: attempt to apply non-operator " + op.String())
}

// precedence is used for printing.
func (op Op) precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 1
	case OpMul, OpDiv:
		return 2
	case OpNeg:
		return 3
	}
	return 4
}

// ---------------------------------------------------------------------------

// Node is a node of an expression tree. A *Node is a shared, immutable
// reference: it may be the child of any number of parents.
//
// The zero value is not a valid node; nodes are created with Literal, Binary,
// Neg and the shorthands Add, Sub, Mul and Div.
type Node struct {
	op    Op
	value num.Value // for literals
	left  *Node     // left operand, or operand of negation
	right *Node
}

// Literal creates a terminal node holding value v. Non-numeric values are
// allowed; they make every operator they are fed into fail.
func Literal(v num.Value) *Node {
	if v == nil {
		panic("expr: attempt to create literal without value")
	}
	return &Node{op: OpLiteral, value: v}
}

// Binary creates an operator node combining two existing nodes.
// op must be one of OpAdd, OpSub, OpMul or OpDiv.
func Binary(op Op, left, right *Node) *Node {
	if !op.IsBinary() {
		panic("expr: attempt to create binary node for operator " + op.String())
	}
	if left == nil || right == nil {
		panic("expr: attempt to create binary node with missing operand")
	}
	return &Node{op: op, left: left, right: right}
}

// Neg creates a negation node for an existing node.
func Neg(operand *Node) *Node {
	if operand == nil {
		panic("expr: attempt to negate missing operand")
	}
	return &Node{op: OpNeg, left: operand}
}

// Add is a shorthand for Binary(OpAdd, left, right).
func Add(left, right *Node) *Node { return Binary(OpAdd, left, right) }

// Sub is a shorthand for Binary(OpSub, left, right).
func Sub(left, right *Node) *Node { return Binary(OpSub, left, right) }

// Mul is a shorthand for Binary(OpMul, left, right).
func Mul(left, right *Node) *Node { return Binary(OpMul, left, right) }

// Div is a shorthand for Binary(OpDiv, left, right).
func Div(left, right *Node) *Node { return Binary(OpDiv, left, right) }

// Op returns the kind of node n.
func (n *Node) Op() Op { return n.op }

// IsLiteral is a predicate: is n a terminal?
func (n *Node) IsLiteral() bool { return n.op == OpLiteral }

// Value returns the value of a literal node, nil for operator nodes.
func (n *Node) Value() num.Value { return n.value }

// Left returns the left operand of a binary node, nil otherwise.
func (n *Node) Left() *Node {
	if n.op.IsBinary() {
		return n.left
	}
	return nil
}

// Right returns the right operand of a binary node, nil otherwise.
func (n *Node) Right() *Node { return n.right }

// Operand returns the operand of a negation node, nil otherwise.
func (n *Node) Operand() *Node {
	if n.op == OpNeg {
		return n.left
	}
	return nil
}

// children returns the child nodes of n, left to right.
func (n *Node) children() []*Node {
	switch {
	case n.op == OpLiteral:
		return nil
	case n.op == OpNeg:
		return []*Node{n.left}
	}
	return []*Node{n.left, n.right}
}
