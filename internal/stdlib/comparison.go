/*
File    : signo/internal/stdlib/comparison.go

`==`, `!=` (any values, recursive structural equality);
`>`, `>=`, `<`, `<=` (numbers only).
*/
package stdlib

import (
	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"==": eqFn,
		"!=": neqFn,
		">":  gtFn,
		">=": geFn,
		"<":  ltFn,
		"<=": leFn,
	})
}

func eqFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("==", args, 2, pos); err != nil {
		return nil, err
	}
	return ast.BoolAtom(args[0].Equal(args[1])), nil
}

func neqFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("!=", args, 2, pos); err != nil {
		return nil, err
	}
	return ast.BoolAtom(!args[0].Equal(args[1])), nil
}

func gtFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair(">", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.BoolAtom(a.AsFloat() > b.AsFloat()), nil
}

func geFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair(">=", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.BoolAtom(a.AsFloat() >= b.AsFloat()), nil
}

func ltFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("<", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.BoolAtom(a.AsFloat() < b.AsFloat()), nil
}

func leFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("<=", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.BoolAtom(a.AsFloat() <= b.AsFloat()), nil
}

func numPair(name string, args []ast.Value, pos position.Position) (ast.Number, ast.Number, error) {
	if err := wantArity(name, args, 2, pos); err != nil {
		return ast.Number{}, ast.Number{}, err
	}
	a, err := wantNumber(name, args, 0, pos)
	if err != nil {
		return ast.Number{}, ast.Number{}, err
	}
	b, err := wantNumber(name, args, 1, pos)
	if err != nil {
		return ast.Number{}, ast.Number{}, err
	}
	return a, b, nil
}
