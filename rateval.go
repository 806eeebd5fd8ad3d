package rateval

import "fmt"

// --- Tokens ----------------------------------------------------------------

// TokType is a category type for a Token. Constants for the token categories
// of the command language are defined in package scanner.
type TokType int

// Token is a lexical unit of a command line. Tokens are produced by a scanner
// and consumed by the command interpreter, which converts literal tokens
// into numeric values.
//
// An example would be a token for a rational literal:
//
//	TokType = Rational    // category, defined by package scanner
//	Lexeme  = "-3/4"      // lexeme as it appeared in the input line
//	Span    = 5…9         // byte positions within the input line
type Token interface {
	TokType() TokType
	Lexeme() string
	Span() Span
}

// --- Spans -----------------------------------------------------------------

// Span captures the position of a token within an input line. A span denotes
// the start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// Marker returns a line of blanks and carets underlining the span, to be
// printed below the input line. An empty span is marked by a single caret.
func (s Span) Marker() string {
	end := s[1]
	if end <= s[0] {
		end = s[0] + 1
	}
	b := make([]byte, end)
	for i := range b {
		if uint64(i) < s[0] {
			b[i] = ' '
		} else {
			b[i] = '^'
		}
	}
	return string(b)
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
