package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/rateval"
	"github.com/npillmayer/rateval/num"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// Token categories.
const (
	EOF rateval.TokType = iota - 1
	_
	Integer  // 42, -7
	Rational // 22/7, -1/2
	String   // "text"
	Ident    // let, x_1
	Equals   // =
)

// TokTypeString returns a printable name for a token category.
func TokTypeString(t rateval.TokType) string {
	switch t {
	case EOF:
		return "EOF"
	case Integer:
		return "integer"
	case Rational:
		return "rational"
	case String:
		return "string"
	case Ident:
		return "identifier"
	case Equals:
		return "'='"
	}
	return fmt.Sprintf("<token %d>", int(t))
}

// Scanner is a compiled lexer for command lines. A Scanner may be used for
// any number of input lines.
type Scanner struct {
	lexer *lexmachine.Lexer
	Error func(error) // error handler for unrecognized input
}

// NewScanner creates a scanner. It will return an error if compiling the
// DFA failed.
func NewScanner() (*Scanner, error) {
	lexer := lexmachine.NewLexer()
	lexer.Add([]byte(`//[^\n]*`), Skip)
	lexer.Add([]byte(`\-?[0-9]+\/\-?[0-9]+`), MakeToken(Rational))
	lexer.Add([]byte(`\-?[0-9]+`), MakeToken(Integer))
	lexer.Add([]byte(`\"[^"]*\"`), MakeToken(String))
	lexer.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), MakeToken(Ident))
	lexer.Add([]byte(`\=`), MakeToken(Equals))
	lexer.Add([]byte(`( |\t|\n|\r)+`), Skip)
	if err := lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	return &Scanner{lexer: lexer, Error: logError}, nil
}

// SetErrorHandler sets an error handler for the scanner.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	if h == nil {
		sc.Error = logError
		return
	}
	sc.Error = h
}

// Default error reporting function
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// Scan splits an input line into tokens. The returned slice does not contain
// the EOF token. Unrecognized input is reported to the error handler and
// skipped.
func (sc *Scanner) Scan(line string) ([]rateval.Token, error) {
	s, err := sc.lexer.Scanner([]byte(line))
	if err != nil {
		return nil, err
	}
	var tokens []rateval.Token
	for {
		tok, err, eof := s.Next()
		if err != nil {
			ui, is := err.(*machines.UnconsumedInput)
			if !is {
				return tokens, err
			}
			sc.Error(err)
			s.TC = ui.FailTC
			continue
		}
		if eof {
			break
		}
		token := tok.(*lexmachine.Token)
		t := Token{
			kind:   rateval.TokType(token.Type),
			lexeme: string(token.Lexeme),
			span:   rateval.Span{uint64(token.TC), uint64(token.TC + len(token.Lexeme))},
		}
		tracer().Debugf("token %s %q at %s", TokTypeString(t.kind), t.lexeme, t.span)
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// --- Tokens ----------------------------------------------------------------

// Token is the token type produced by Scanner.
type Token struct {
	kind   rateval.TokType
	lexeme string
	span   rateval.Span
}

var _ rateval.Token = Token{}

// MakeEOF creates an EOF token at a given position.
func MakeEOF(pos uint64) Token {
	return Token{kind: EOF, span: rateval.Span{pos, pos}}
}

// TokType is part of interface rateval.Token.
func (t Token) TokType() rateval.TokType { return t.kind }

// Lexeme is part of interface rateval.Token.
func (t Token) Lexeme() string { return t.lexeme }

// Span is part of interface rateval.Token.
func (t Token) Span() rateval.Span { return t.span }

func (t Token) String() string {
	if t.kind == EOF {
		return "<EOF>"
	}
	return t.lexeme
}

// IsLiteral is a predicate: is tok a value literal?
func IsLiteral(tok rateval.Token) bool {
	switch tok.TokType() {
	case Integer, Rational, String:
		return true
	}
	return false
}

// Literal converts a literal token into a value. Integer literals outside of
// the 64-bit range result in num.ErrOverflow, rational literals with a zero
// denominator in num.ErrDivisionByZero.
func Literal(tok rateval.Token) (num.Value, error) {
	lexeme := tok.Lexeme()
	switch tok.TokType() {
	case Integer:
		n, err := parseInt(lexeme)
		if err != nil {
			return nil, err
		}
		return num.MakeInteger(n), nil
	case Rational:
		slash := strings.IndexByte(lexeme, '/')
		n, err := parseInt(lexeme[:slash])
		if err != nil {
			return nil, err
		}
		d, err := parseInt(lexeme[slash+1:])
		if err != nil {
			return nil, err
		}
		return num.MakeRational(n, d)
	case String:
		return num.Text(lexeme[1 : len(lexeme)-1]), nil
	}
	return nil, fmt.Errorf("%s %q at %s is not a literal", TokTypeString(tok.TokType()), lexeme, tok.Span())
}

func parseInt(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("literal %s: %w", s, num.ErrOverflow)
	}
	return n, nil
}

// ---------------------------------------------------------------------------

// Skip is a lexmachine action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a lexmachine action which wraps a scanned match into a token
// of category t.
func MakeToken(t rateval.TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(t), string(m.Bytes), m), nil
	}
}
