/*
Package flat compiles expression trees into flat slot programs.

A slot program is a sequence of instructions, each of which assigns exactly one
slot of a value array:

	s0 = 1/2
	s1 = 1/3
	s2 = s0 + s1
	s3 = s2 * s2

Instructions only refer to slots assigned before them, so a program is executed
by a single pass over the instruction list. The result of a program is the value
of its last slot.

Compilation assigns one slot to every structurally distinct sub-tree. Sub-trees
shared between parents, as well as sub-trees which are merely equal in structure,
are computed once. Otherwise the arithmetic is the same as for package expr:
running a program yields the same value, or the same error, as evaluating the
tree it was compiled from.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rateval.expr'.
func tracer() tracing.Trace {
	return tracing.Select("rateval.expr")
}
