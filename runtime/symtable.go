package runtime

import (
	"fmt"
	"sort"

	"github.com/npillmayer/rateval/expr"
)

// Symbol table for named expressions. Symbol tables are attached to scopes.
// Scopes are organized in a tree.

// --- Tags -------------------------------------------------------

// Tag is the symbol type to be stored into symbol tables. A tag binds a name
// to an expression node. A tag without a node is declared, but unbound.
type Tag struct {
	name string
	node *expr.Node
}

// NewTag creates a new, unbound tag.
func NewTag(nm string) *Tag {
	return &Tag{name: nm}
}

// Bind binds an expression node to a tag. Returns the tag (for chaining).
func (s *Tag) Bind(node *expr.Node) *Tag {
	s.node = node
	return s
}

// Name gets the tag's name.
func (s *Tag) Name() string {
	return s.name
}

// Node returns the expression node bound to a tag, or nil.
func (s *Tag) Node() *expr.Node {
	return s.node
}

// String is a debug Stringer for tags. Bound expressions are summarized by
// their root operation and depth.
func (s *Tag) String() string {
	if s.node == nil {
		return fmt.Sprintf("<tag '%s' unbound>", s.name)
	}
	return fmt.Sprintf("<tag '%s' = %s, depth %d>", s.name, s.node.Op(), s.node.Depth())
}

// === Symbol Tables =========================================================

// SymbolTable is a symbol table to store tags (map-like semantics).
type SymbolTable struct {
	table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]*Tag)}
}

// ResolveTag checks for a tag in the symbol table.
// Returns a tag or nil.
func (t *SymbolTable) ResolveTag(tagname string) *Tag {
	return t.table[tagname]
}

// ResolveOrDefineTag finds a tag in the table, inserts a new one if not found.
// Returns the tag and a flag, signalling wether the tag has already been present.
func (t *SymbolTable) ResolveOrDefineTag(tagname string) (*Tag, bool) {
	if tagname == "" {
		return nil, false
	}
	if tag := t.ResolveTag(tagname); tag != nil {
		return tag, true
	}
	tag, _ := t.DefineTag(tagname)
	return tag, false
}

// DefineTag creates a new tag to store into the symbol table.
// The tag's name may not be empty.
// Overwrites existing tag with this name, if any.
// Returns the new tag and the previously stored tag (or nil).
func (t *SymbolTable) DefineTag(tagname string) (*Tag, *Tag) {
	if tagname == "" {
		return nil, nil
	}
	tag := NewTag(tagname)
	return tag, t.InsertTag(tag)
}

// InsertTag inserts a pre-created tag. Returns the tag previously stored
// under this name, if any.
func (t *SymbolTable) InsertTag(tag *Tag) *Tag {
	old := t.table[tag.name]
	t.table[tag.name] = tag
	return old
}

// Size counts the tags in a symbol table.
func (t *SymbolTable) Size() int {
	return len(t.table)
}

// Each iterates over the tags in the table in order of their names,
// executing a mapper function.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	names := make([]string, 0, len(t.table))
	for k := range t.table {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		mapper(k, t.table[k])
	}
}

// === Scopes ================================================================

// Scope is a named scope, which may contain tag definitions. Scopes link back to a
// parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	symtab *SymbolTable
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		symtab: NewSymbolTable(),
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Tags returns the symbol table of a scope.
func (s *Scope) Tags() *SymbolTable {
	return s.symtab
}

// DefineTag defines a tag in the scope. Returns the new tag and the previously
// stored tag under this key, if any.
func (s *Scope) DefineTag(tagname string) (*Tag, *Tag) {
	return s.symtab.DefineTag(tagname)
}

// ResolveTag finds a tag. Returns the tag (or nil) and the scope (of a
// scope-tree-path) the tag was found in.
func (s *Scope) ResolveTag(tagname string) (*Tag, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if tag := sc.symtab.ResolveTag(tagname); tag != nil {
			return tag, sc
		}
	}
	return nil, nil
}

// ---------------------------------------------------------------------------

// ScopeTree is treated as a stack of scopes. Scopes are pushed and popped
// to/from the stack, building a tree.
type ScopeTree struct {
	ScopeBase *Scope
	ScopeTOS  *Scope
}

// Current gets the current scope of a stack (TOS).
func (scst *ScopeTree) Current() *Scope {
	if scst.ScopeTOS == nil {
		panic("attempt to access scope from empty stack")
	}
	return scst.ScopeTOS
}

// Globals gets the outermost scope, containing global tags.
func (scst *ScopeTree) Globals() *Scope {
	if scst.ScopeBase == nil {
		panic("attempt to access global scope from empty stack")
	}
	return scst.ScopeBase
}

// PushNewScope constructs a scope and pushes it onto the stack of scopes.
func (scst *ScopeTree) PushNewScope(nm string) *Scope {
	newsc := NewScope(nm, scst.ScopeTOS)
	if scst.ScopeTOS == nil { // the new scope is the global scope
		scst.ScopeBase = newsc
	}
	scst.ScopeTOS = newsc
	T().P("scope", newsc.Name).Debugf("pushing new scope")
	return newsc
}

// PopScope pops the top-most (recent) scope. The global scope cannot be popped.
func (scst *ScopeTree) PopScope() *Scope {
	if scst.ScopeTOS == nil || scst.ScopeTOS == scst.ScopeBase {
		panic("attempt to pop global scope")
	}
	sc := scst.ScopeTOS
	T().Debugf("popping scope [%s]", sc.Name)
	scst.ScopeTOS = sc.Parent
	return sc
}
