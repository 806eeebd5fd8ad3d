package expr

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/rateval/num"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func integer(n int64) *Node {
	return Literal(num.MakeInteger(n))
}

func ratio(n, d int64) *Node {
	return Literal(num.MustRational(n, d))
}

func text(s string) *Node {
	return Literal(num.Text(s))
}

func TestEvalLiteral(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	v, err := Eval(ratio(44, 14))
	if err != nil {
		t.Fatal(err)
	}
	if v != num.MustRational(22, 7) {
		t.Errorf("expected literal to evaluate to 22/7, is %v", v)
	}
	v, err = Eval(text("Input string"))
	if err != nil || v != num.Text("Input string") {
		t.Errorf("expected text literal to evaluate to itself, is %v (err=%v)", v, err)
	}
}

func TestEvalSum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	sum := Binary(OpAdd, ratio(1, 2), ratio(1, 3))
	v, err := sum.Eval()
	if err != nil {
		t.Fatal(err)
	}
	if v != num.MustRational(5, 6) {
		t.Errorf("expected 1/2 + 1/3 = 5/6, is %v", v)
	}
}

func TestEvalQuotient(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	q := Div(Add(ratio(1, 2), ratio(1, 3)), Sub(integer(2), integer(5)))
	v, err := Eval(q)
	if err != nil {
		t.Fatal(err)
	}
	if v != num.MustRational(-5, 18) {
		t.Errorf("expected (1/2 + 1/3) / (2 - 5) = -5/18, is %v", v)
	}
}

func TestEvalOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	cases := []struct {
		name   string
		tree   *Node
		result num.Value
	}{
		{"collapse", Mul(ratio(2, 2), ratio(2, 1)), num.MakeInteger(2)},
		{"int-quotient", Div(integer(44), integer(14)), num.MustRational(22, 7)},
		{"neg-int", Neg(integer(7)), num.MakeInteger(-7)},
		{"neg-rat", Neg(ratio(1, 2)), num.MustRational(-1, 2)},
		{"neg-neg", Neg(Neg(ratio(3, 4))), num.MustRational(3, 4)},
		{"sub-to-int", Sub(ratio(3, 2), ratio(1, 2)), num.MakeInteger(1)},
		{"mixed", Add(Mul(integer(3), ratio(1, 6)), Neg(integer(1))), num.MustRational(-1, 2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v, err := Eval(c.tree)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if v != c.result {
				t.Errorf("expected %s = %v, is %v", c.tree, c.result, v)
			}
		})
	}
}

func TestEvalNonNumeric(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	cases := []struct {
		tree *Node
		op   string
	}{
		{Add(text("Input string"), integer(1)), num.OpAdd},
		{Sub(integer(1), text("x")), num.OpSubtract},
		{Mul(ratio(1, 2), text("x")), num.OpMultiply},
		{Div(text("x"), ratio(1, 2)), num.OpDivide},
		{Neg(text("x")), num.OpNegate},
	}
	for _, c := range cases {
		v, err := Eval(c.tree)
		if v != nil {
			t.Errorf("expected no result for %s, have %v", c.tree, v)
		}
		var nerr *num.NonNumericOperandError
		if !errors.As(err, &nerr) {
			t.Errorf("expected non-numeric operand error for %s, have %v", c.tree, err)
			continue
		}
		if nerr.Operation != c.op {
			t.Errorf("expected failing operation %q for %s, have %q", c.op, c.tree, nerr.Operation)
		}
	}
}

func TestLeftErrorWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	nonNumeric := Add(text("x"), integer(1))
	divByZero := Div(integer(1), integer(0))
	_, err := Eval(Mul(nonNumeric, divByZero))
	var nerr *num.NonNumericOperandError
	if !errors.As(err, &nerr) || nerr.Operation != num.OpAdd {
		t.Errorf("expected error of left operand, have %v", err)
	}
	_, err = Eval(Mul(divByZero, nonNumeric))
	if !errors.Is(err, num.ErrDivisionByZero) {
		t.Errorf("expected division by zero from left operand, have %v", err)
	}
	// the error of an inner node is returned unchanged
	_, err = Eval(Neg(Add(integer(2), divByZero)))
	if err != num.ErrDivisionByZero {
		t.Errorf("expected unwrapped division by zero, have %#v", err)
	}
}

func TestEvalOverflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	big := integer(1 << 62)
	_, err := Eval(Add(big, big))
	if !errors.Is(err, num.ErrOverflow) {
		t.Errorf("expected overflow, have %v", err)
	}
}

func TestSharedSubtree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	x := Add(ratio(1, 2), ratio(1, 3))
	sq := Mul(x, x)
	v, err := Eval(sq)
	if err != nil {
		t.Fatal(err)
	}
	if v != num.MustRational(25, 36) {
		t.Errorf("expected (5/6)^2 = 25/36, is %v", v)
	}
	vx, _ := Eval(x)
	if vx != num.MustRational(5, 6) {
		t.Errorf("expected shared sub-tree to still evaluate to 5/6, is %v", vx)
	}
	occ, dist := CountNodes(sq)
	if occ != 7 || dist != 4 {
		t.Errorf("expected 7 occurrences of 4 distinct nodes, have %d/%d", occ, dist)
	}
}

func TestDeepSharing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	d := integer(1)
	for i := 0; i < 16; i++ {
		d = Add(d, d)
	}
	occ, dist := CountNodes(d)
	if occ != 1<<17-1 {
		t.Errorf("expected %d occurrences, have %d", 1<<17-1, occ)
	}
	if dist != 17 {
		t.Errorf("expected 17 distinct nodes, have %d", dist)
	}
	if d.Depth() != 16 {
		t.Errorf("expected depth 16, have %d", d.Depth())
	}
	v, err := Eval(d)
	if err != nil || v != num.MakeInteger(1<<16) {
		t.Errorf("expected 2^16, have %v (err=%v)", v, err)
	}
}

func TestDeepSharingFailsFast(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	d := Div(integer(1), integer(0))
	for i := 0; i < 80; i++ {
		d = Add(d, d)
	}
	if _, err := Eval(d); !errors.Is(err, num.ErrDivisionByZero) {
		t.Errorf("expected division by zero, have %v", err)
	}
	occ, dist := CountNodes(d)
	if occ != math.MaxInt || dist != 83 {
		t.Errorf("expected saturated count and 83 distinct nodes, have %d, %d", occ, dist)
	}
	if d.Depth() != 81 {
		t.Errorf("expected depth 81, have %d", d.Depth())
	}
}

func TestPurity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rateval.expr")
	defer teardown()
	//
	q := Div(Add(ratio(1, 2), ratio(1, 3)), Sub(integer(2), integer(5)))
	before := q.String()
	v1, err1 := Eval(q)
	v2, err2 := Eval(q)
	if v1 != v2 || err1 != err2 {
		t.Errorf("repeated evaluation differs: %v/%v vs %v/%v", v1, err1, v2, err2)
	}
	if q.String() != before {
		t.Errorf("evaluation changed the tree: %s -> %s", before, q)
	}
	bad := Add(text("x"), integer(1))
	_, e1 := Eval(bad)
	_, e2 := Eval(bad)
	if e1.Error() != e2.Error() {
		t.Errorf("repeated failing evaluation differs: %v vs %v", e1, e2)
	}
}

func TestAccessors(t *testing.T) {
	l, r := integer(1), ratio(1, 2)
	b := Sub(l, r)
	if b.Op() != OpSub || b.Left() != l || b.Right() != r || b.Operand() != nil || b.IsLiteral() {
		t.Errorf("binary node accessors broken: %v", b)
	}
	n := Neg(b)
	if n.Op() != OpNeg || n.Operand() != b || n.Left() != nil || n.Right() != nil {
		t.Errorf("negation node accessors broken: %v", n)
	}
	if !l.IsLiteral() || l.Value() != num.MakeInteger(1) || b.Value() != nil {
		t.Errorf("literal accessors broken")
	}
}

func TestConstructorPanics(t *testing.T) {
	cases := map[string]func(){
		"nil-literal": func() { Literal(nil) },
		"neg-binary":  func() { Binary(OpNeg, integer(1), integer(2)) },
		"lit-binary":  func() { Binary(OpLiteral, integer(1), integer(2)) },
		"nil-left":    func() { Add(nil, integer(2)) },
		"nil-operand": func() { Neg(nil) },
		"nil-eval":    func() { Eval(nil) },
		"apply-lit":   func() { OpLiteral.Apply(num.MakeInteger(1), num.MakeInteger(1)) },
	}
	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic")
				}
			}()
			f()
		})
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		tree *Node
		s    string
	}{
		{Add(ratio(1, 2), ratio(1, 3)), "1/2 + 1/3"},
		{Div(Add(ratio(1, 2), ratio(1, 3)), Sub(integer(2), integer(5))), "(1/2 + 1/3) / (2 - 5)"},
		{Sub(integer(2), integer(-3)), "2 - (-3)"},
		{Sub(integer(-3), integer(2)), "-3 - 2"},
		{Mul(integer(-3), integer(2)), "(-3) * 2"},
		{Neg(ratio(1, 2)), "-(1/2)"},
		{Neg(integer(3)), "-3"},
		{Neg(Neg(integer(3))), "-(-3)"},
		{Neg(Add(integer(1), integer(2))), "-(1 + 2)"},
		{Add(Neg(integer(1)), integer(2)), "-1 + 2"},
		{Add(integer(2), Neg(integer(1))), "2 + (-1)"},
		{Sub(integer(1), Sub(integer(2), integer(3))), "1 - (2 - 3)"},
		{Sub(Sub(integer(1), integer(2)), integer(3)), "1 - 2 - 3"},
		{Add(integer(1), Add(integer(2), integer(3))), "1 + 2 + 3"},
		{Mul(Add(integer(1), integer(2)), integer(3)), "(1 + 2) * 3"},
		{Div(integer(1), Mul(integer(2), integer(3))), "1 / (2 * 3)"},
		{Div(ratio(1, 2), integer(3)), "(1/2) / 3"},
		{Add(ratio(-1, 2), ratio(-1, 3)), "-1/2 + (-1/3)"},
		{Add(text("Input string"), integer(1)), `"Input string" + 1`},
	}
	for _, c := range cases {
		if s := c.tree.String(); s != c.s {
			t.Errorf("expected %q, have %q", c.s, s)
		}
	}
	var n *Node
	if n.String() != "<nil>" {
		t.Errorf("expected nil node to print as <nil>")
	}
}

func TestWalk(t *testing.T) {
	tree := Div(Add(integer(1), ratio(1, 2)), Neg(integer(3)))
	var b strings.Builder
	Walk(tree, func(n *Node, depth int) bool {
		fmt.Fprintf(&b, "%d:%s ", depth, label(n))
		return true
	})
	if s := b.String(); s != "0:/ 1:+ 2:1 2:1/2 1:neg 2:3 " {
		t.Errorf("unexpected pre-order walk: %q", s)
	}
	b.Reset()
	Walk(tree, func(n *Node, depth int) bool {
		fmt.Fprintf(&b, "%s ", label(n))
		return n.Op() != OpAdd
	})
	if s := b.String(); s != "/ + neg 3 " {
		t.Errorf("expected walk to skip children of '+', have %q", s)
	}
	Walk(nil, func(*Node, int) bool {
		t.Error("walk of nil tree visited a node")
		return true
	})
}

func label(n *Node) string {
	if n.IsLiteral() {
		return n.Value().String()
	}
	return n.Op().String()
}

func TestFingerprint(t *testing.T) {
	a := Div(Add(ratio(1, 2), ratio(1, 3)), Neg(integer(3)))
	b := Div(Add(ratio(1, 2), ratio(1, 3)), Neg(integer(3)))
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("structurally equal trees have different fingerprints")
	}
	different := []*Node{
		Div(Add(ratio(1, 3), ratio(1, 2)), Neg(integer(3))),
		Div(Sub(ratio(1, 2), ratio(1, 3)), Neg(integer(3))),
		Div(Add(ratio(1, 2), ratio(1, 3)), integer(-3)),
		Div(Add(ratio(1, 2), ratio(1, 3)), Neg(text("3"))),
	}
	for _, d := range different {
		if d.Fingerprint() == a.Fingerprint() {
			t.Errorf("expected %s and %s to have different fingerprints", d, a)
		}
	}
	fps := NewFingerprints()
	x := Add(integer(1), integer(2))
	if fps.Of(Mul(x, x)) != fps.Of(Mul(Add(integer(1), integer(2)), x)) {
		t.Errorf("shared and copied sub-trees should have the same fingerprint")
	}
	if text("a").Fingerprint() == text("b").Fingerprint() || text("a").Fingerprint() != text("a").Fingerprint() {
		t.Errorf("text literals should be fingerprinted by their content")
	}
	if ratio(4, 2).Fingerprint() != integer(2).Fingerprint() {
		t.Errorf("expected 4/2 and 2 to have the same fingerprint")
	}
}
