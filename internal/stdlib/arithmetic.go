/*
File    : signo/internal/stdlib/arithmetic.go

`+`, `-`, `*`, `/`, `^`, `sqrt`, `abs`: binary ops over
Number×Number. Mixing an int and a float promotes to float; `/` stays an
integer only when it divides evenly, else promotes to float; `^` always
returns a float. Domain errors (sqrt of a negative) raise a TypeError at
the call site.
*/
package stdlib

import (
	"math"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"+":    addFn,
		"-":    subFn,
		"*":    mulFn,
		"/":    divFn,
		"^":    powFn,
		"sqrt": sqrtFn,
		"abs":  absFn,
	})
}

func addFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("+", args, pos)
	if err != nil {
		return nil, err
	}
	if !a.IsFloat && !b.IsFloat {
		return ast.Int(a.I + b.I), nil
	}
	return ast.Float(a.AsFloat() + b.AsFloat()), nil
}

func subFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("-", args, pos)
	if err != nil {
		return nil, err
	}
	if !a.IsFloat && !b.IsFloat {
		return ast.Int(a.I - b.I), nil
	}
	return ast.Float(a.AsFloat() - b.AsFloat()), nil
}

func mulFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("*", args, pos)
	if err != nil {
		return nil, err
	}
	if !a.IsFloat && !b.IsFloat {
		return ast.Int(a.I * b.I), nil
	}
	return ast.Float(a.AsFloat() * b.AsFloat()), nil
}

func divFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("/", args, pos)
	if err != nil {
		return nil, err
	}
	if b.AsFloat() == 0 {
		return nil, sigerr.NewType(pos, "/ by zero")
	}
	if !a.IsFloat && !b.IsFloat && a.I%b.I == 0 {
		return ast.Int(a.I / b.I), nil
	}
	return ast.Float(a.AsFloat() / b.AsFloat()), nil
}

func powFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	a, b, err := numPair("^", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.Float(math.Pow(a.AsFloat(), b.AsFloat())), nil
}

func sqrtFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("sqrt", args, 1, pos); err != nil {
		return nil, err
	}
	n, err := wantNumber("sqrt", args, 0, pos)
	if err != nil {
		return nil, err
	}
	if n.AsFloat() < 0 {
		return nil, sigerr.NewType(pos, "sqrt of a negative number")
	}
	return ast.Float(math.Sqrt(n.AsFloat())), nil
}

func absFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("abs", args, 1, pos); err != nil {
		return nil, err
	}
	n, err := wantNumber("abs", args, 0, pos)
	if err != nil {
		return nil, err
	}
	if n.IsFloat {
		return ast.Float(math.Abs(n.F)), nil
	}
	if n.I < 0 {
		return ast.Int(-n.I), nil
	}
	return n, nil
}
