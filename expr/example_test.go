package expr_test

import (
	"fmt"

	"github.com/npillmayer/rateval/expr"
	"github.com/npillmayer/rateval/num"
)

func ExampleEval() {
	sum := expr.Add(expr.Literal(num.MustRational(1, 2)), expr.Literal(num.MustRational(1, 3)))
	diff := expr.Sub(expr.Literal(num.MakeInteger(2)), expr.Literal(num.MakeInteger(5)))
	q := expr.Div(sum, diff)
	v, err := expr.Eval(q)
	fmt.Printf("%s = %v (err=%v)\n", q, v, err)

	bad := expr.Add(expr.Literal(num.Text("Input string")), expr.Literal(num.MakeInteger(1)))
	_, err = expr.Eval(bad)
	fmt.Printf("%s: %v\n", bad, err)

	// Output:
	// (1/2 + 1/3) / (2 - 5) = -5/18 (err=<nil>)
	// "Input string" + 1: Add requires two numbers
}

func ExampleCountNodes() {
	x := expr.Add(expr.Literal(num.MakeInteger(1)), expr.Literal(num.MakeInteger(2)))
	square := expr.Mul(x, x)
	fmt.Println(expr.CountNodes(square))

	// Output:
	// 7 4
}
