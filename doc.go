/*
Package rateval is an exact evaluator for arithmetic over integers and rational
numbers.

Numbers form a small auto-normalizing tower: every rational is kept in lowest
terms with a positive denominator, and collapses to an integer whenever its
denominator becomes 1. Arithmetic is overflow-checked and never silently wraps.
Package structure is as follows:

■ num: Package num implements numeric values (integers, rationals and
non-numeric text) and the arithmetic operations on them.

■ expr: Package expr implements immutable, shareable expression trees and their
evaluation. Sub-package flat compiles trees into flat slot programs.

■ scanner: Package scanner tokenizes the command lines of the interactive
evaluator.

■ runtime: Package runtime provides scoped symbol tables binding names to
expressions.

■ cmd/ratrepl: An interactive evaluator for building and evaluating
expressions.

The base package contains the token types shared by the scanner and its
clients.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rateval
