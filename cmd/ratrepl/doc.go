/*
Package ratrepl/main provides an interactive command line tool (RatREPL) for
exact rational arithmetic. Users bind names to expression trees, which may
share sub-trees, and evaluate them, display them as trees, or compile them
into flat slot programs.

Commands, one per line:

	A B                       print quotient, product, sum and difference of two literals
	let NAME = OP ARG [ARG]   bind NAME; OP is one of lit neg add sub mul div
	let NAME = ARG            bind NAME to a literal or to another name's expression
	eval NAME …               evaluate expressions
	tree NAME                 display an expression as a tree
	flat NAME                 display and run the slot program of an expression
	vars                      list all bindings
	demo                      print the operation tables for a set of sample pairs
	reset                     drop all bindings of the session
	help                      print a command summary
	quit                      leave RatREPL

Literals are integers (-7), rationals (22/7) and strings ("text"). Strings are
accepted as operands but make every operation fail.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rateval.repl'
func tracer() tracing.Trace {
	return tracing.Select("rateval.repl")
}
