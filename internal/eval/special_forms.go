/*
File    : signo/internal/eval/special_forms.go

Implements the handler for every special form in the dispatch table.
Each handler receives the unevaluated argument list, the current env,
and the call position, and is responsible for its own arity/shape
checking, failing with a TypeError on mismatch.
*/
package eval

import (
	"os"
	"path/filepath"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/closure"
	"github.com/RobinBoers/signo/internal/environment"
	"github.com/RobinBoers/signo/internal/lexer"
	"github.com/RobinBoers/signo/internal/parser"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
)

// specialFormHandler is the shape every special form implements: the raw
// (unevaluated) arguments, the current env, the call position, and the
// runtime (needed by `eval`/`include`, which recurse back through Eval).
type specialFormHandler func(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error)

// specialForms is the kernel's dispatch table, looked up by name from
// NewKernelEnv's ast.SpecialForm bindings. It lives here rather than on
// ast.SpecialForm itself so internal/ast doesn't need to import
// internal/environment (see DESIGN.md).
var specialForms = map[string]specialFormHandler{
	"let":     evalLet,
	"if":      evalIf,
	"do":      evalDo,
	"lambda":  evalLambda,
	"def":     evalDef,
	"eval":    evalEval,
	"include": evalInclude,
}

func evalLet(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) != 2 {
		return nil, env, sigerr.NewType(pos, "let expects (symbol expr), got %d argument(s)", len(args))
	}
	sym, ok := args[0].(ast.Symbol)
	if !ok {
		return nil, env, sigerr.NewType(pos, "let's first argument must be a symbol")
	}
	v, _, err := Eval(args[1], env, rt)
	if err != nil {
		return nil, env, err
	}
	return v, env.Assign(sym.Name, v), nil
}

func evalIf(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) != 2 && len(args) != 3 {
		return nil, env, sigerr.NewType(pos, "if expects (cond then [else]), got %d argument(s)", len(args))
	}
	cond, _, err := Eval(args[0], env, rt)
	if err != nil {
		return nil, env, err
	}
	if cond.Truthy() {
		v, _, err := Eval(args[1], env, rt)
		return v, env, err
	}
	if len(args) == 3 {
		v, _, err := Eval(args[2], env, rt)
		return v, env, err
	}
	return ast.Nil{}, env, nil
}

func evalDo(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) == 0 {
		return nil, env, sigerr.NewType(pos, "do expects at least one expression")
	}
	child := env.Child(nil)
	var result ast.Value = ast.Nil{}
	for _, e := range args {
		v, next, err := Eval(e, child, rt)
		if err != nil {
			return nil, env, err
		}
		result = v
		child = next
	}
	return result, env, nil
}

func evalLambda(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) != 2 {
		return nil, env, sigerr.NewType(pos, "lambda expects (params body), got %d argument(s)", len(args))
	}
	params, err := paramNames(args[0], pos)
	if err != nil {
		return nil, env, err
	}
	return &closure.Lambda{Params: params, Body: args[1], Env: env, Position: pos}, env, nil
}

func evalDef(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) != 3 {
		return nil, env, sigerr.NewType(pos, "def expects (symbol params body), got %d argument(s)", len(args))
	}
	sym, ok := args[0].(ast.Symbol)
	if !ok {
		return nil, env, sigerr.NewType(pos, "def's first argument must be a symbol")
	}
	params, err := paramNames(args[1], pos)
	if err != nil {
		return nil, env, err
	}
	fn := &closure.Lambda{SelfName: sym.Name, Params: params, Body: args[2], Env: env, Position: pos}
	return fn, env.Assign(sym.Name, fn), nil
}

// paramNames desugars a `lambda`/`def` params form: either a single Symbol
// (a one-element parameter list) or a List of Symbols.
func paramNames(expr ast.Expr, pos position.Position) ([]string, error) {
	switch p := expr.(type) {
	case ast.Symbol:
		return []string{p.Name}, nil
	case ast.List:
		names := make([]string, len(p.Elements))
		for i, el := range p.Elements {
			sym, ok := el.(ast.Symbol)
			if !ok {
				return nil, sigerr.NewType(pos, "lambda parameter list must contain only symbols")
			}
			names[i] = sym.Name
		}
		return names, nil
	case ast.Nil:
		return nil, nil
	default:
		return nil, sigerr.NewType(pos, "lambda parameters must be a symbol or a list of symbols")
	}
}

// evalEval implements the quote/eval duality: evaluate expr to
// get `inner`, then evaluate `inner` again. `eval` on a Quoted value turns
// program-data back into program-code.
func evalEval(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) != 1 {
		return nil, env, sigerr.NewType(pos, "eval expects exactly one argument, got %d", len(args))
	}
	inner, _, err := Eval(args[0], env, rt)
	if err != nil {
		return nil, env, err
	}
	result, _, err := Eval(inner, env, rt)
	if err != nil {
		return nil, env, err
	}
	return result, env, nil
}

// evalInclude reads a file, parses it, and evaluates its top-level
// expressions in order in the current env, threading the env between them
// the same way top-level sequencing does. The path is resolved
// relative to the calling file's directory when the call position names a
// real file; REPL-originated includes resolve relative to the process's
// working directory.
func evalInclude(args []ast.Expr, env *environment.Env, pos position.Position, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	if len(args) != 1 {
		return nil, env, sigerr.NewType(pos, "include expects exactly one path argument, got %d", len(args))
	}
	pathExpr, _, err := Eval(args[0], env, rt)
	if err != nil {
		return nil, env, err
	}
	str, ok := pathExpr.(ast.String)
	if !ok {
		return nil, env, sigerr.NewType(pos, "include expects a string path")
	}

	resolved := str.Value
	if !filepath.IsAbs(resolved) && pos.Path != position.REPLPath {
		resolved = filepath.Join(filepath.Dir(pos.Path), resolved)
	}

	src, readErr := os.ReadFile(resolved)
	if readErr != nil {
		return nil, env, sigerr.NewRuntime(pos, "include: %s", readErr)
	}

	toks, lexErr := lexer.New(string(src), resolved).Tokens()
	if lexErr != nil {
		return nil, env, lexErr
	}
	root, parseErr := parser.New(toks).Parse()
	if parseErr != nil {
		return nil, env, parseErr
	}

	result, finalEnv, err := evalRoot(root, env, rt)
	if err != nil {
		return nil, env, err
	}
	return result, finalEnv, nil
}

// evalRoot evaluates a parsed program's top-level expressions in order,
// threading env between them "top-level sequencing". An
// empty program evaluates to Nil.
func evalRoot(root *ast.Root, env *environment.Env, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	var result ast.Value = ast.Nil{}
	for _, expr := range root.Exprs {
		v, next, err := Eval(expr, env, rt)
		if err != nil {
			return nil, env, err
		}
		result = v
		env = next
	}
	return result, env, nil
}

// EvalRoot is the exported entry point callers (cmd/signo, internal/repl)
// use to run a whole parsed program.
func EvalRoot(root *ast.Root, env *environment.Env, rt ast.Runtime) (ast.Value, *environment.Env, error) {
	return evalRoot(root, env, rt)
}
