/*
Package scanner tokenizes command lines of the interactive evaluator.

The scanner is generated with lexmachine. It recognizes value literals,
identifiers and the assignment sign:

	7  -3  22/7  -1/2  "text"  let  x_1  =

Blanks separate tokens and are otherwise ignored, as are comments from `//` to
the end of the line. Characters which do not start any token are reported to an
error handler and skipped.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Literal tokens are converted into numeric values with function Literal.
Conversion normalizes rationals, thus "2/2" yields the integer 1.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rateval.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("rateval.scanner")
}
