/*
File    : signo/internal/environment/environment.go

Package environment implements the lexical scope chain:
immutable-from-outside bindings, `let` that only ever touches the current
scope, and a lookup that walks the parent chain raising a ReferenceError at
the end of it.

Deliberately just a single bindings+parent shape: no separate
const/type tables, since Signo has no typed declarations to back.
*/
package environment

import (
	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
)

// Env is one scope in the chain: its own bindings plus a pointer to the
// enclosing scope, or nil for the root.
type Env struct {
	bindings map[string]ast.Value
	parent   *Env
}

// NewRoot creates the root environment, pre-populated with kernel bindings. Passing a nil map is fine; it behaves like an
// empty one.
func NewRoot(kernelBindings map[string]ast.Value) *Env {
	e := &Env{bindings: make(map[string]ast.Value, len(kernelBindings))}
	for name, v := range kernelBindings {
		e.bindings[name] = v
	}
	return e
}

// Child creates a new scope whose parent is e, pre-populated with bindings
// (e.g. a lambda call's bound parameters). Passing a nil/empty map is the
// common case for `do` blocks, which introduce a scope with no bindings of
// their own.
func (e *Env) Child(bindings map[string]ast.Value) *Env {
	child := &Env{bindings: make(map[string]ast.Value, len(bindings)), parent: e}
	for name, v := range bindings {
		child.bindings[name] = v
	}
	return child
}

// Assign returns an environment where the current scope has name bound to
// value, overwriting any previous binding for name in this scope only;
// parent scopes are untouched. This never mutates e in a way visible to
// anyone holding a reference to e from before the call, so
// closures that captured e continue to see its prior bindings.
func (e *Env) Assign(name string, value ast.Value) *Env {
	next := &Env{bindings: make(map[string]ast.Value, len(e.bindings)+1), parent: e.parent}
	for k, v := range e.bindings {
		next.bindings[k] = v
	}
	next.bindings[name] = value
	return next
}

// Lookup searches the current scope, then the parent chain, for name. It
// fails with a ReferenceError at pos if no scope in the chain binds it.
func (e *Env) Lookup(name string, pos position.Position) (ast.Value, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.bindings[name]; ok {
			return v, nil
		}
	}
	return nil, sigerr.NewReference(pos, name)
}

// Bindings returns a flat snapshot of the scope chain's name→value map
// (innermost wins), for the REPL's `.scope` command.
func (e *Env) Bindings() map[string]ast.Value {
	out := make(map[string]ast.Value)
	for scope := e; scope != nil; scope = scope.parent {
		for name, v := range scope.bindings {
			if _, ok := out[name]; !ok {
				out[name] = v
			}
		}
	}
	return out
}
