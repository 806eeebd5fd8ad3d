/*
Package runtime implements the runtime environment of the interactive
evaluator: scopes holding named expression trees.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Symbol Table and Scope Tree

Names are bound to expression nodes by tags, which are stored in symbol tables.
Every scope owns a symbol table, and scopes link to their parent scope, forming
a tree. Names are resolved from the current scope upwards.

A runtime starts with two scopes: a global scope for bindings which survive a
reset of the session (e.g., definitions of an init file), and a session scope
on top of it. Binding a name again replaces the previous binding in the current
scope; trees which already reference the previous node are not affected, as
nodes are immutable.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"sort"

	"github.com/npillmayer/rateval/expr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global interpreter tracer.
func T() tracing.Trace {
	return gtrace.InterpreterTracer
}

// Runtime is a runtime environment for the interactive evaluator.
type Runtime struct {
	ScopeTree *ScopeTree // global scope and session scope
}

// NewRuntimeEnvironment constructs a new runtime environment with an empty
// global scope and a session scope on top of it.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{ScopeTree: new(ScopeTree)}
	rt.ScopeTree.PushNewScope("globals") // push global scope first
	rt.ScopeTree.PushNewScope("session")
	return rt
}

// Bind binds a name to an expression node in the current scope. It returns
// the node previously bound to the name in this scope, if any.
func (rt *Runtime) Bind(name string, node *expr.Node) *expr.Node {
	tag, found := rt.ScopeTree.Current().Tags().ResolveOrDefineTag(name)
	var old *expr.Node
	if found {
		old = tag.Node()
	}
	tag.Bind(node)
	T().P("scope", rt.ScopeTree.Current().Name).Debugf("bind %s", tag)
	return old
}

// BindGlobal binds a name to an expression node in the global scope.
func (rt *Runtime) BindGlobal(name string, node *expr.Node) {
	tag, _ := rt.ScopeTree.Globals().Tags().ResolveOrDefineTag(name)
	tag.Bind(node)
	T().P("scope", "globals").Debugf("bind %s", tag)
}

// Lookup finds the expression node bound to a name, searching from the
// current scope up to the global scope.
func (rt *Runtime) Lookup(name string) (*expr.Node, bool) {
	tag, _ := rt.ScopeTree.Current().ResolveTag(name)
	if tag == nil || tag.Node() == nil {
		return nil, false
	}
	return tag.Node(), true
}

// Names returns all visible names, sorted.
func (rt *Runtime) Names() []string {
	seen := make(map[string]bool)
	for sc := rt.ScopeTree.Current(); sc != nil; sc = sc.Parent {
		sc.Tags().Each(func(name string, _ *Tag) {
			seen[name] = true
		})
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset drops all bindings of the session scope. Global bindings are kept.
func (rt *Runtime) Reset() {
	if rt.ScopeTree.Current() != rt.ScopeTree.Globals() {
		rt.ScopeTree.PopScope()
	}
	rt.ScopeTree.PushNewScope("session")
}
