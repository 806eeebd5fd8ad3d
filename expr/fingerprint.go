package expr

import (
	"fmt"

	"github.com/cnf/structhash"
	"github.com/npillmayer/rateval/num"
)

// shape is the hashable description of a node. Children are represented by
// their own fingerprints.
type shape struct {
	Op    int8
	Kind  int8
	Num   int64
	Den   int64
	Text  string
	Left  string
	Right string
}

// Fingerprints computes structural fingerprints of nodes. Two nodes have the
// same fingerprint if and only if they describe the same expression, regardless
// of whether they are the same object. Fingerprints of visited nodes are
// remembered, so a Fingerprints should be re-used when fingerprinting many
// nodes of the same DAG.
type Fingerprints struct {
	memo map[*Node]string
}

// NewFingerprints creates an empty fingerprint cache.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{memo: make(map[*Node]string)}
}

// Of returns the fingerprint of node n.
func (fps *Fingerprints) Of(n *Node) string {
	if fp, ok := fps.memo[n]; ok {
		return fp
	}
	s := shape{Op: int8(n.op)}
	if n.op == OpLiteral {
		s.Kind = int8(n.value.Kind())
		var ok bool
		if s.Num, s.Den, ok = num.Fraction(n.value); !ok {
			s.Text = n.value.String()
		}
	}
	if n.left != nil {
		s.Left = fps.Of(n.left)
	}
	if n.right != nil {
		s.Right = fps.Of(n.right)
	}
	fp, err := structhash.Hash(s, 1)
	if err != nil { // cannot happen for plain int and string fields
		panic(fmt.Sprintf("expr: cannot fingerprint node: %v", err))
	}
	fps.memo[n] = fp
	return fp
}

// Fingerprint returns the structural fingerprint of the tree rooted at n.
// See type Fingerprints.
func (n *Node) Fingerprint() string {
	return NewFingerprints().Of(n)
}
