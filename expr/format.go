package expr

import (
	"strings"

	"github.com/npillmayer/rateval/num"
)

// String returns an infix rendering of the tree rooted at n, e.g.
//
//	(1/2 + 1/3) / (2 - 5)
//
// Parentheses are inserted only where operator precedence or associativity
// requires them. Negative numbers and negations are parenthesized unless they
// start a sum, and rational literals are parenthesized as operands of
// multiplication, division and negation. Shared sub-trees are printed at each
// occurrence.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	n.format(&b)
	return b.String()
}

func (n *Node) format(b *strings.Builder) {
	switch n.op {
	case OpLiteral:
		b.WriteString(n.value.String())
	case OpNeg:
		b.WriteByte('-')
		n.left.formatOperand(b, OpNeg, false)
	default:
		n.left.formatOperand(b, n.op, false)
		b.WriteByte(' ')
		b.WriteString(n.op.String())
		b.WriteByte(' ')
		n.right.formatOperand(b, n.op, true)
	}
}

func (n *Node) formatOperand(b *strings.Builder, parent Op, isRight bool) {
	if n.needsParens(parent, isRight) {
		b.WriteByte('(')
		n.format(b)
		b.WriteByte(')')
		return
	}
	n.format(b)
}

// needsParens decides if n, printed as an operand of parent, has to be
// enclosed in parentheses.
func (n *Node) needsParens(parent Op, isRight bool) bool {
	startsSum := !isRight && (parent == OpAdd || parent == OpSub)
	switch n.op {
	case OpLiteral:
		if r, ok := n.value.(num.Rational); ok {
			if parent == OpMul || parent == OpDiv || parent == OpNeg {
				return true
			}
			return r.Num() < 0 && !startsSum
		}
		if i, ok := n.value.(num.Integer); ok {
			return i < 0 && !startsSum
		}
		return false
	case OpNeg:
		return !startsSum
	}
	if parent == OpNeg {
		return true
	}
	pp, cp := parent.precedence(), n.op.precedence()
	if cp < pp {
		return true
	}
	// left associative: a - (b - c), a / (b * c)
	return cp == pp && isRight && (parent == OpSub || parent == OpDiv)
}
