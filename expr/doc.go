/*
Package expr implements immutable arithmetic expression trees over the values of
package num, and their evaluation.

A tree is built bottom-up from literals and operators:

	half := expr.Literal(num.MustRational(1, 2))
	third := expr.Literal(num.MustRational(1, 3))
	sum := expr.Add(half, third)
	q := expr.Div(sum, expr.Sub(expr.Literal(num.MakeInteger(2)), expr.Literal(num.MakeInteger(5))))
	v, err := expr.Eval(q) // -5/18

Nodes are never modified after construction, so a sub-tree may be referenced by
more than one parent. Trees therefore are directed acyclic graphs (DAGs), and the
same sub-expression may be re-used without copying it. Cycles cannot be
constructed, as operators only accept already existing nodes as children.

Evaluation is a recursive post-order walk. Operands are evaluated left to right,
and the first error encountered aborts the evaluation and is returned unchanged.
Shared sub-trees are evaluated at each of their occurrences; evaluation has no
side effects and may be repeated any number of times.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package expr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rateval.expr'.
func tracer() tracing.Trace {
	return tracing.Select("rateval.expr")
}
