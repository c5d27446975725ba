/*
File    : signo/internal/stdlib/lists.go

`tie(...xs)`, `push(x, xs)`, `pop(xs)`, `sum`, `product`, `join(xs, sep)`,
plus the additive `sort(xs)` builtin (natural ordering via
github.com/maruel/natural — see DESIGN.md).
*/
package stdlib

import (
	"sort"
	"strings"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/maruel/natural"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"tie":     tieFn,
		"push":    pushFn,
		"pop":     popFn,
		"sum":     sumFn,
		"product": productFn,
		"join":    joinFn,
		"sort":    sortFn,
	})
}

// tieFn collects its already-evaluated arguments into a List — the
// builtin counterpart to `'(...)`, which keeps its elements unevaluated:
// `(tie 1 (+ 1 1))` yields `(1 2)`, while `'(1 (+ 1 1))` stays as written.
// With no arguments it returns Nil.
func tieFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if len(args) == 0 {
		return ast.Nil{}, nil
	}
	elems := make([]ast.Expr, len(args))
	copy(elems, args)
	return ast.List{Elements: elems, Position: pos}, nil
}

func pushFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("push", args, 2, pos); err != nil {
		return nil, err
	}
	x := args[0]
	switch xs := args[1].(type) {
	case ast.Nil:
		return ast.List{Elements: []ast.Expr{x}, Position: pos}, nil
	case ast.List:
		elems := make([]ast.Expr, len(xs.Elements)+1)
		copy(elems, xs.Elements)
		elems[len(xs.Elements)] = x
		return ast.List{Elements: elems, Position: pos}, nil
	default:
		return nil, sigerr.NewType(pos, "push expects a list as its second argument, got %s", xs.Kind())
	}
}

// popFn returns a two-element list `(head rest)`, or `(() ())` on an empty
// list.
func popFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("pop", args, 1, pos); err != nil {
		return nil, err
	}
	switch xs := args[0].(type) {
	case ast.Nil:
		return ast.List{Elements: []ast.Expr{ast.Nil{}, ast.Nil{}}, Position: pos}, nil
	case ast.List:
		if len(xs.Elements) == 0 {
			return ast.List{Elements: []ast.Expr{ast.Nil{}, ast.Nil{}}, Position: pos}, nil
		}
		head := xs.Elements[0]
		rest := xs.Elements[1:]
		var restVal ast.Expr = ast.Nil{}
		if len(rest) > 0 {
			tail := make([]ast.Expr, len(rest))
			copy(tail, rest)
			restVal = ast.List{Elements: tail, Position: pos}
		}
		return ast.List{Elements: []ast.Expr{head, restVal}, Position: pos}, nil
	default:
		return nil, sigerr.NewType(pos, "pop expects a list, got %s", xs.Kind())
	}
}

func sumFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	xs, err := wantList("sum", args, 0, pos)
	if err != nil {
		return nil, err
	}
	return reduceNumbers("sum", xs, pos, ast.Int(0), func(acc, n ast.Number) ast.Number {
		if !acc.IsFloat && !n.IsFloat {
			return ast.Int(acc.I + n.I)
		}
		return ast.Float(acc.AsFloat() + n.AsFloat())
	})
}

func productFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	xs, err := wantList("product", args, 0, pos)
	if err != nil {
		return nil, err
	}
	return reduceNumbers("product", xs, pos, ast.Int(1), func(acc, n ast.Number) ast.Number {
		if !acc.IsFloat && !n.IsFloat {
			return ast.Int(acc.I * n.I)
		}
		return ast.Float(acc.AsFloat() * n.AsFloat())
	})
}

func reduceNumbers(name string, xs ast.List, pos position.Position, seed ast.Number, step func(acc, n ast.Number) ast.Number) (ast.Value, error) {
	acc := seed
	for i, e := range xs.Elements {
		n, ok := e.(ast.Number)
		if !ok {
			return nil, sigerr.NewType(pos, "%s: element %d is not a number", name, i)
		}
		acc = step(acc, n)
	}
	return acc, nil
}

func joinFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("join", args, 2, pos); err != nil {
		return nil, err
	}
	xs, err := wantList("join", args, 0, pos)
	if err != nil {
		return nil, err
	}
	sep, err := wantString("join", args, 1, pos)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(xs.Elements))
	for i, e := range xs.Elements {
		parts[i] = e.String()
	}
	return ast.String{Value: strings.Join(parts, sep.Value)}, nil
}

// sortFn orders a List of Strings or Numbers. String ordering uses
// natural.Less so "item2" sorts before "item10"; Number ordering is plain
// numeric comparison across int/float.
func sortFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	xs, err := wantList("sort", args, 0, pos)
	if err != nil {
		return nil, err
	}
	if len(xs.Elements) == 0 {
		return ast.Nil{}, nil
	}

	sorted := make([]ast.Expr, len(xs.Elements))
	copy(sorted, xs.Elements)

	switch sorted[0].(type) {
	case ast.String:
		sort.Slice(sorted, func(i, j int) bool {
			return natural.Less(sorted[i].(ast.String).Value, sorted[j].(ast.String).Value)
		})
	case ast.Number:
		sort.Slice(sorted, func(i, j int) bool {
			return sorted[i].(ast.Number).AsFloat() < sorted[j].(ast.Number).AsFloat()
		})
	default:
		return nil, sigerr.NewType(pos, "sort expects a list of strings or numbers")
	}
	return ast.List{Elements: sorted, Position: pos}, nil
}
