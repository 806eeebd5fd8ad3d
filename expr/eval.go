package expr

import (
	"github.com/npillmayer/rateval/num"
)

// Eval evaluates the expression tree rooted at root and returns its value. If
// an operation fails, e.g. because of a non-numeric operand or a division by
// zero, the result is nil and the error of the first failing operation is
// returned as is.
//
// Operands are evaluated strictly left to right; an error from the left operand
// prevents the right operand from being evaluated.
func Eval(root *Node) (num.Value, error) {
	if root == nil {
		panic("expr: attempt to evaluate nil node")
	}
	v, err := root.eval()
	tracer().Debugf("eval %s node => %v, err=%v", root.Op(), v, err)
	return v, err
}

// Eval evaluates the tree rooted at n. See function Eval.
func (n *Node) Eval() (num.Value, error) {
	return Eval(n)
}

// eval returns the value of n, post-order.
func (n *Node) eval() (num.Value, error) {
	switch n.op {
	case OpLiteral:
		return n.value, nil
	case OpNeg:
		x, err := n.left.eval()
		if err != nil {
			return nil, err
		}
		return num.Negate(x)
	case OpAdd, OpSub, OpMul, OpDiv:
		l, err := n.left.eval()
		if err != nil {
			return nil, err
		}
		r, err := n.right.eval()
		if err != nil {
			return nil, err
		}
		return n.op.Apply(l, r)
	}
	panic("expr: invalid node kind " + n.op.String())
}
