package flat

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/hashmap"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/rateval/expr"
	"github.com/npillmayer/rateval/num"
)

// Instr is a single instruction of a slot program. Its result is stored in
// the slot with the same index as the instruction.
type Instr struct {
	Op    expr.Op
	Value num.Value // value for OpLiteral
	A, B  int       // operand slots; B is unused for OpNeg
}

func (ins Instr) String() string {
	switch ins.Op {
	case expr.OpLiteral:
		return ins.Value.String()
	case expr.OpNeg:
		return fmt.Sprintf("-s%d", ins.A)
	}
	return fmt.Sprintf("s%d %s s%d", ins.A, ins.Op, ins.B)
}

// Program is a compiled expression, ready to be run any number of times.
type Program struct {
	code   *arraylist.List // of Instr
	result int             // slot holding the value of the root
}

// Len returns the number of instructions (and slots) of a program.
func (p *Program) Len() int {
	return p.code.Size()
}

// At returns instruction i of a program.
func (p *Program) At(i int) Instr {
	ins, ok := p.code.Get(i)
	if !ok {
		panic(fmt.Sprintf("flat: attempt to access instruction %d of %d", i, p.Len()))
	}
	return ins.(Instr)
}

func (p *Program) String() string {
	var b strings.Builder
	it := p.code.Iterator()
	for it.Next() {
		fmt.Fprintf(&b, "s%d = %s\n", it.Index(), it.Value())
	}
	return b.String()
}

// Run executes a program on a fresh set of slots and returns the value of the
// root expression. The first failing instruction aborts the run, and its error
// is returned unchanged.
func (p *Program) Run() (num.Value, error) {
	slots := make([]num.Value, p.Len())
	for i := range slots {
		ins := p.At(i)
		var err error
		switch ins.Op {
		case expr.OpLiteral:
			slots[i] = ins.Value
		case expr.OpNeg:
			slots[i], err = num.Negate(slots[ins.A])
		default:
			slots[i], err = ins.Op.Apply(slots[ins.A], slots[ins.B])
		}
		if err != nil {
			tracer().Debugf("s%d = %s failed: %v", i, ins, err)
			return nil, err
		}
	}
	return slots[p.result], nil
}

// ---------------------------------------------------------------------------

// Compile translates the expression tree rooted at root into a slot program.
// Every structurally distinct sub-tree is assigned exactly one slot; slots are
// ordered as the tree evaluator would first reach the corresponding nodes.
func Compile(root *expr.Node) *Program {
	if root == nil {
		panic("flat: attempt to compile nil expression")
	}
	c := &compiler{
		prog:   &Program{code: arraylist.New()},
		byNode: hashmap.New(),
		byFP:   hashmap.New(),
		fps:    expr.NewFingerprints(),
	}
	// iterative post-order walk, children left to right
	stack := arraystack.New()
	stack.Push(&frame{node: root})
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*frame)
		if _, done := c.byNode.Get(f.node); done {
			stack.Pop()
			continue
		}
		if !f.expanded {
			f.expanded = true
			ch := children(f.node)
			for i := len(ch) - 1; i >= 0; i-- {
				stack.Push(&frame{node: ch[i]})
			}
			continue
		}
		stack.Pop()
		c.emit(f.node)
	}
	c.prog.result = c.slot(root)
	tracer().Debugf("compiled %s expression of depth %d into %d slots", root.Op(), root.Depth(), c.prog.Len())
	return c.prog
}

type frame struct {
	node     *expr.Node
	expanded bool
}

type compiler struct {
	prog   *Program
	byNode *hashmap.Map // *expr.Node -> slot
	byFP   *hashmap.Map // fingerprint -> slot
	fps    *expr.Fingerprints
}

// emit assigns a slot to node n, whose children already have slots.
func (c *compiler) emit(n *expr.Node) {
	fp := c.fps.Of(n)
	if s, found := c.byFP.Get(fp); found {
		c.byNode.Put(n, s)
		return
	}
	ins := Instr{Op: n.Op()}
	switch n.Op() {
	case expr.OpLiteral:
		ins.Value = n.Value()
	case expr.OpNeg:
		ins.A = c.slot(n.Operand())
	default:
		ins.A, ins.B = c.slot(n.Left()), c.slot(n.Right())
	}
	s := c.prog.code.Size()
	c.prog.code.Add(ins)
	c.byNode.Put(n, s)
	c.byFP.Put(fp, s)
}

func (c *compiler) slot(n *expr.Node) int {
	s, found := c.byNode.Get(n)
	if !found {
		panic("flat: attempt to reference node without slot")
	}
	return s.(int)
}

func children(n *expr.Node) []*expr.Node {
	switch {
	case n.IsLiteral():
		return nil
	case n.Op() == expr.OpNeg:
		return []*expr.Node{n.Operand()}
	}
	return []*expr.Node{n.Left(), n.Right()}
}
