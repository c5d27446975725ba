/*
File    : signo/internal/stdlib/logic.go

`not`, `and`, `or`, `nor`, `xor`: accept any values, dispatch
on truthiness, return a boolean Atom. None of these short-circuit: every
Builtin's arguments are evaluated before the Builtin ever runs, so even
the logically boolean ones can't skip evaluating an argument.
*/
package stdlib

import (
	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"not": notFn,
		"and": andFn,
		"or":  orFn,
		"nor": norFn,
		"xor": xorFn,
	})
}

func notFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("not", args, 1, pos); err != nil {
		return nil, err
	}
	return ast.BoolAtom(!args[0].Truthy()), nil
}

func andFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	for _, a := range args {
		if !a.Truthy() {
			return ast.False, nil
		}
	}
	return ast.True, nil
}

func orFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	for _, a := range args {
		if a.Truthy() {
			return ast.True, nil
		}
	}
	return ast.False, nil
}

func norFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	v, err := orFn(args, pos, rt)
	if err != nil {
		return nil, err
	}
	return ast.BoolAtom(!v.Truthy()), nil
}

func xorFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	truthyCount := 0
	for _, a := range args {
		if a.Truthy() {
			truthyCount++
		}
	}
	return ast.BoolAtom(truthyCount%2 == 1), nil
}
