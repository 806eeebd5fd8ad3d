package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/rateval"
	"github.com/npillmayer/rateval/expr"
	"github.com/npillmayer/rateval/expr/flat"
	"github.com/npillmayer/rateval/num"
	"github.com/npillmayer/rateval/runtime"
	"github.com/npillmayer/rateval/scanner"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

// Intp is our interpreter object
type Intp struct {
	rt      *runtime.Runtime
	scan    *scanner.Scanner
	globals bool  // bind names in the global scope
	scanErr error // first scanner error of the current line
}

// NewIntp creates an interpreter with an empty runtime environment.
func NewIntp() (*Intp, error) {
	sc, err := scanner.NewScanner()
	if err != nil {
		return nil, err
	}
	intp := &Intp{
		rt:   runtime.NewRuntimeEnvironment(),
		scan: sc,
	}
	sc.SetErrorHandler(func(e error) {
		if intp.scanErr == nil {
			intp.scanErr = e
		}
	})
	return intp, nil
}

// syntaxError reports an unexpected token.
type syntaxError struct {
	tok      rateval.Token
	expected string
}

func (e *syntaxError) Error() string {
	if e.tok.TokType() == scanner.EOF {
		return fmt.Sprintf("expected %s at end of line", e.expected)
	}
	return fmt.Sprintf("expected %s at %s, found %q", e.expected, e.tok.Span(), e.tok.Lexeme())
}

// Execute interprets a single command line. It returns true if the user
// requested to quit.
func (intp *Intp) Execute(line string) (bool, error) {
	intp.scanErr = nil
	tokens, err := intp.scan.Scan(line)
	if err == nil {
		err = intp.scanErr
	}
	if err != nil {
		return false, err
	}
	if len(tokens) == 0 {
		return false, nil
	}
	tokens = append(tokens, scanner.MakeEOF(uint64(len(line))))
	cmd, args := tokens[0], tokens[1:]
	if scanner.IsLiteral(cmd) {
		return false, intp.values(tokens)
	}
	if cmd.TokType() != scanner.Ident {
		return false, &syntaxError{cmd, "command or literal"}
	}
	tracer().Debugf("command %q with %d arguments", cmd.Lexeme(), len(args)-1)
	switch cmd.Lexeme() {
	case "quit", "exit":
		return true, nil
	case "let":
		err = intp.let(args)
	case "eval":
		err = intp.eval(args)
	case "tree":
		err = intp.tree(args)
	case "flat":
		err = intp.flat(args)
	case "vars":
		err = intp.vars()
	case "demo":
		err = demo()
	case "reset":
		intp.rt.Reset()
		pterm.Info.Println("session bindings dropped")
	case "help":
		help()
	default:
		err = fmt.Errorf("unknown command %q, try 'help'", cmd.Lexeme())
	}
	return false, err
}

// values handles a line of one or two literals. Both tokens and
// the trailing EOF are passed.
func (intp *Intp) values(tokens []rateval.Token) error {
	var vals []num.Value
	for _, tok := range tokens {
		if tok.TokType() == scanner.EOF {
			break
		}
		if len(vals) == 2 {
			return &syntaxError{tok, "end of line"}
		}
		if !scanner.IsLiteral(tok) {
			return &syntaxError{tok, "literal"}
		}
		v, err := scanner.Literal(tok)
		if err != nil {
			return err
		}
		vals = append(vals, v)
	}
	if len(vals) == 1 {
		pterm.Info.Println(vals[0].String())
		return nil
	}
	return pterm.DefaultTable.WithHasHeader().WithData(opTable(vals[0], vals[1])).Render()
}

var binaryOps = map[string]expr.Op{
	"add": expr.OpAdd,
	"sub": expr.OpSub,
	"mul": expr.OpMul,
	"div": expr.OpDiv,
}

// let binds a name to a new expression node:
//
//	let NAME = OP ARG [ARG]
//	let NAME = ARG
func (intp *Intp) let(args []rateval.Token) error {
	if args[0].TokType() != scanner.Ident {
		return &syntaxError{args[0], "name"}
	}
	name := args[0].Lexeme()
	if args[1].TokType() != scanner.Equals {
		return &syntaxError{args[1], "'='"}
	}
	rhs := args[2 : len(args)-1] // without EOF
	if len(rhs) == 0 {
		return &syntaxError{args[2], "operator or operand"}
	}
	var node *expr.Node
	var err error
	if len(rhs) == 1 { // alias or literal
		if node, err = intp.operand(rhs[0]); err != nil {
			return err
		}
	} else {
		if node, err = intp.operation(rhs[0], rhs[1:]); err != nil {
			return err
		}
	}
	if intp.globals {
		intp.rt.BindGlobal(name, node)
	} else {
		intp.rt.Bind(name, node)
	}
	pterm.Info.Printfln("%s = %s", name, display(node))
	return nil
}

func (intp *Intp) operation(op rateval.Token, args []rateval.Token) (*expr.Node, error) {
	if op.TokType() != scanner.Ident {
		return nil, &syntaxError{op, "operator"}
	}
	arity := 2
	switch op.Lexeme() {
	case "lit", "neg":
		arity = 1
	default:
		if _, ok := binaryOps[op.Lexeme()]; !ok {
			return nil, &syntaxError{op, "operator lit, neg, add, sub, mul or div"}
		}
	}
	if len(args) != arity {
		return nil, fmt.Errorf("operator %s takes %d operand(s), have %d", op.Lexeme(), arity, len(args))
	}
	operands := make([]*expr.Node, arity)
	for i, arg := range args {
		n, err := intp.operand(arg)
		if err != nil {
			return nil, err
		}
		operands[i] = n
	}
	switch op.Lexeme() {
	case "lit":
		if !scanner.IsLiteral(args[0]) {
			return nil, &syntaxError{args[0], "literal"}
		}
		return operands[0], nil
	case "neg":
		return expr.Neg(operands[0]), nil
	}
	return expr.Binary(binaryOps[op.Lexeme()], operands[0], operands[1]), nil
}

// operand creates a literal node for a literal token or resolves a name.
func (intp *Intp) operand(tok rateval.Token) (*expr.Node, error) {
	switch {
	case scanner.IsLiteral(tok):
		v, err := scanner.Literal(tok)
		if err != nil {
			return nil, err
		}
		return expr.Literal(v), nil
	case tok.TokType() == scanner.Ident:
		return intp.lookup(tok)
	}
	return nil, &syntaxError{tok, "literal or name"}
}

func (intp *Intp) lookup(tok rateval.Token) (*expr.Node, error) {
	if tok.TokType() != scanner.Ident {
		return nil, &syntaxError{tok, "name"}
	}
	n, ok := intp.rt.Lookup(tok.Lexeme())
	if !ok {
		return nil, fmt.Errorf("name %q is not bound", tok.Lexeme())
	}
	return n, nil
}

// names resolves a non-empty list of names, terminated by EOF.
func (intp *Intp) names(args []rateval.Token) ([]*expr.Node, error) {
	if len(args) == 1 {
		return nil, &syntaxError{args[0], "name"}
	}
	nodes := make([]*expr.Node, 0, len(args)-1)
	for _, tok := range args[:len(args)-1] {
		n, err := intp.lookup(tok)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (intp *Intp) eval(args []rateval.Token) error {
	nodes, err := intp.names(args)
	if err != nil {
		return err
	}
	for i, n := range nodes {
		var v num.Value
		if occ, _ := expr.CountNodes(n); occ > maxTreeEval {
			tracer().Infof("%s has %d node occurrences, evaluating slot program", args[i].Lexeme(), occ)
			v, err = flat.Compile(n).Run()
		} else {
			v, err = n.Eval()
		}
		if err != nil {
			return fmt.Errorf("%s: %w", args[i].Lexeme(), err)
		}
		pterm.Info.Printfln("%s = %s = %s", args[i].Lexeme(), display(n), v)
	}
	return nil
}

// Limits for the display and evaluation of expressions, counted in node
// occurrences. Shared sub-trees count once per reference.
const (
	maxShown    = 64      // larger expressions are summarized
	maxTreeView = 512     // larger expressions are not drawn as trees
	maxTreeEval = 1 << 20 // larger expressions are evaluated as slot programs
)

// display renders an expression as infix text, or summarizes it if the
// text would get too long.
func display(n *expr.Node) string {
	occ, dist := expr.CountNodes(n)
	if occ <= maxShown {
		return n.String()
	}
	return fmt.Sprintf("<%s with %d nodes (%d distinct), depth %d>", n.Op(), occ, dist, n.Depth())
}

func (intp *Intp) tree(args []rateval.Token) error {
	nodes, err := intp.names(args)
	if err != nil {
		return err
	}
	for i, n := range nodes {
		occ, dist := expr.CountNodes(n)
		pterm.Info.Printfln("%s: %d nodes (%d distinct), depth %d", args[i].Lexeme(), occ, dist, n.Depth())
		if occ > maxTreeView {
			return fmt.Errorf("%s is too large to draw as a tree, try 'flat'", args[i].Lexeme())
		}
		if err := pterm.DefaultTree.WithRoot(treeOf(n)).Render(); err != nil {
			return err
		}
	}
	return nil
}

// treeOf creates a pterm tree for the display of an expression.
func treeOf(n *expr.Node) pterm.TreeNode {
	var ll pterm.LeveledList
	expr.Walk(n, func(n *expr.Node, depth int) bool {
		ll = append(ll, pterm.LeveledListItem{Level: depth, Text: nodeLabel(n)})
		return true
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return putils.TreeFromLeveledList(ll)
}

func nodeLabel(n *expr.Node) string {
	if n.IsLiteral() {
		return n.Value().String()
	}
	return n.Op().String()
}

func (intp *Intp) flat(args []rateval.Token) error {
	nodes, err := intp.names(args)
	if err != nil {
		return err
	}
	for i, n := range nodes {
		p := flat.Compile(n)
		pterm.Println(strings.TrimRight(p.String(), "\n"))
		v, err := p.Run()
		if err != nil {
			return fmt.Errorf("%s: %w", args[i].Lexeme(), err)
		}
		pterm.Info.Printfln("%s = s%d = %s", args[i].Lexeme(), p.Len()-1, v)
	}
	return nil
}

func (intp *Intp) vars() error {
	names := intp.rt.Names()
	if len(names) == 0 {
		pterm.Info.Println("no bindings")
		return nil
	}
	data := pterm.TableData{{"name", "expression"}}
	for _, name := range names {
		n, _ := intp.rt.Lookup(name)
		data = append(data, []string{name, display(n)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// --- Operation tables ------------------------------------------------------

var opNames = []struct {
	op   expr.Op
	name string
}{
	{expr.OpDiv, num.OpDivide},
	{expr.OpMul, num.OpMultiply},
	{expr.OpAdd, num.OpAdd},
	{expr.OpSub, num.OpSubtract},
}

// opTable evaluates the four binary operations for a pair of values.
func opTable(a, b num.Value) pterm.TableData {
	data := pterm.TableData{{"operation", "expression", "result"}}
	l, r := expr.Literal(a), expr.Literal(b)
	for _, o := range opNames {
		e := expr.Binary(o.op, l, r)
		result := ""
		if v, err := e.Eval(); err != nil {
			result = err.Error()
		} else {
			result = v.String()
		}
		data = append(data, []string{o.name, e.String(), result})
	}
	return data
}

// demoPairs are sample operand pairs, covering all sign combinations, mixed
// operand kinds and a non-numeric operand.
func demoPairs() [][2]num.Value {
	i := num.MakeInteger
	r := num.MustRational
	return [][2]num.Value{
		{i(44), i(14)}, {i(14), i(44)},
		{i(44), i(-14)}, {i(14), i(-44)},
		{i(-44), i(14)}, {i(-14), i(44)},
		{i(-44), i(-14)}, {i(-14), i(-44)},
		{r(1, 2), r(2, 1)}, {r(2, 1), r(1, 2)},
		{r(1, 2), r(1, 2)}, {r(2, 2), r(2, 1)},
		{num.Text("Input string"), r(2, 1)},
	}
}

func demo() error {
	for _, pair := range demoPairs() {
		pterm.DefaultSection.Printfln("%s and %s", pair[0], pair[1])
		if err := pterm.DefaultTable.WithHasHeader().WithData(opTable(pair[0], pair[1])).Render(); err != nil {
			return err
		}
	}
	return nil
}

func help() {
	pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData{
		{"command", "effect"},
		{"A B", "quotient, product, sum and difference of two literals"},
		{"let NAME = OP ARG [ARG]", "bind NAME; OP is one of lit neg add sub mul div"},
		{"let NAME = ARG", "bind NAME to a literal or to another name's expression"},
		{"eval NAME …", "evaluate expressions"},
		{"tree NAME …", "display expressions as trees"},
		{"flat NAME …", "display and run slot programs"},
		{"vars", "list all bindings"},
		{"demo", "operation tables for sample pairs"},
		{"reset", "drop all bindings of the session"},
		{"quit", "leave"},
	}).Render()
}

// report prints an error. Syntax errors are marked in the input line.
func report(line string, err error) {
	pterm.Error.Println(err.Error())
	var se *syntaxError
	if errors.As(err, &se) {
		pterm.Println("  " + line)
		pterm.Println("  " + se.tok.Span().Marker())
	}
}
