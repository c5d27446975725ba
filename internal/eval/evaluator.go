/*
File    : signo/internal/eval/evaluator.go

Package eval implements Signo's tree-walking evaluator: a single Eval
function dispatching on ast.Expr's concrete variant, threading an
*environment.Env so a top-level `let` can extend the caller's scope
while scopes introduced by nested evaluation are discarded on exit.

A closure call opens a new child scope of its captured scope, binds
parameters, evaluates the body, and returns to the caller's original
scope unchanged. Error returns use idiomatic Go `error` values
(internal/sigerr) rather than a sentinel error value — see DESIGN.md.
*/
package eval

import (
	"io"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/closure"
	"github.com/RobinBoers/signo/internal/environment"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/RobinBoers/signo/internal/stdlib"
)

// Runtime is the concrete ast.Runtime every Eval call is threaded through:
// just an output sink today, but its own type so REPL/CLI callers can swap
// implementations (e.g. a buffering Runtime for snapshot tests) without
// touching the evaluator.
type Runtime struct {
	Out io.Writer
}

func (r *Runtime) Writer() io.Writer { return r.Out }

// NewKernelEnv builds the root environment: every special form name bound
// to an ast.SpecialForm, and every standard library procedure bound to its
// ast.Builtin.
func NewKernelEnv() *environment.Env {
	bindings := make(map[string]ast.Value, len(specialForms)+len(stdlib.All()))
	for name := range specialForms {
		bindings[name] = ast.SpecialForm{Name: name}
	}
	for name, fn := range stdlib.All() {
		bindings[name] = ast.Builtin{Name: name, Fn: fn}
	}
	return environment.NewRoot(bindings)
}

// Eval evaluates expr in env, returning its value and the (possibly
// extended) environment the caller should continue with
func Eval(expr ast.Expr, env *environment.Env, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	switch e := expr.(type) {
	case ast.Nil, ast.Number, ast.Atom, ast.String, ast.Builtin, ast.SpecialForm:
		return e, env, nil
	case *closure.Lambda, *ast.FileHandle:
		return e, env, nil
	case ast.Symbol:
		v, err := env.Lookup(e.Name, e.Position)
		if err != nil {
			return nil, env, err
		}
		return v, env, nil
	case ast.Quoted:
		return e.Inner, env, nil
	case ast.List:
		return evalList(e, env, rt)
	default:
		return nil, env, sigerr.NewRuntime(expr.Pos(), "cannot evaluate expression of kind %s", expr.Kind())
	}
}

// evalList implements List dispatch: evaluate the head, then
// branch on what it evaluated to.
func evalList(list ast.List, env *environment.Env, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	headVal, _, err := Eval(list.Elements[0], env, rt)
	if err != nil {
		return nil, env, err
	}
	tail := list.Elements[1:]

	switch head := headVal.(type) {
	case *closure.Lambda:
		return callLambda(head, tail, env, list.Position, rt)
	case ast.Builtin:
		return callBuiltin(head, tail, env, list.Position, rt)
	case ast.SpecialForm:
		handler, ok := specialForms[head.Name]
		if !ok {
			return nil, env, sigerr.NewRuntime(list.Position, "unknown special form %q", head.Name)
		}
		return handler(tail, env, list.Position, rt)
	default:
		return nil, env, sigerr.NewRuntime(list.Position, "%s is not callable", headVal.String())
	}
}

// evalArgs evaluates exprs left-to-right in env.
func evalArgs(exprs []ast.Expr, env *environment.Env, rt ast.Runtime) ([]ast.Value, error) {
	vals := make([]ast.Value, len(exprs))
	for i, e := range exprs {
		v, _, err := Eval(e, env, rt)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}

func callLambda(fn *closure.Lambda, argExprs []ast.Expr, callerEnv *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	args, err := evalArgs(argExprs, callerEnv, rt)
	if err != nil {
		return nil, callerEnv, err
	}
	if len(args) != len(fn.Params) {
		return nil, callerEnv, sigerr.NewType(pos, "%s expects %d argument(s), got %d", fn.String(), len(fn.Params), len(args))
	}
	bindings := make(map[string]ast.Value, len(fn.Params)+1)
	for i, p := range fn.Params {
		bindings[p] = args[i]
	}
	callScope := fn.Env.Child(bindings)
	if fn.SelfName != "" {
		callScope = callScope.Assign(fn.SelfName, fn)
	}
	result, _, err := Eval(fn.Body, callScope, rt)
	if err != nil {
		return nil, callerEnv, err
	}
	return result, callerEnv, nil
}

func callBuiltin(b ast.Builtin, argExprs []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	args, err := evalArgs(argExprs, env, rt)
	if err != nil {
		return nil, env, err
	}
	result, err := b.Fn(args, pos, rt)
	if err != nil {
		return nil, env, err
	}
	return result, env, nil
}
