/*
File    : signo/internal/stdlib/mathfn.go

`pi`, `tau` (nullary constants); `sin`, `cos`, `tan`, `asin`, `acos`,
`atan`, `ln`, `log` (base 10), `logn(n, x)`. A deliberately named
subset of math.* wrappers; no other math.* function is exposed.
*/
package stdlib

import (
	"math"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"pi":   piFn,
		"tau":  tauFn,
		"sin":  unaryMath("sin", math.Sin),
		"cos":  unaryMath("cos", math.Cos),
		"tan":  unaryMath("tan", math.Tan),
		"asin": unaryMath("asin", math.Asin),
		"acos": unaryMath("acos", math.Acos),
		"atan": unaryMath("atan", math.Atan),
		"ln":   unaryMath("ln", math.Log),
		"log":  unaryMath("log", math.Log10),
		"logn": lognFn,
	})
}

func piFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("pi", args, 0, pos); err != nil {
		return nil, err
	}
	return ast.Float(math.Pi), nil
}

func tauFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("tau", args, 0, pos); err != nil {
		return nil, err
	}
	return ast.Float(2 * math.Pi), nil
}

// unaryMath builds a Builtin from a single-argument math.Func, so each
// trig/log procedure is one table entry instead of a hand-written wrapper.
func unaryMath(name string, fn func(float64) float64) ast.BuiltinFunc {
	return func(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
		if err := wantArity(name, args, 1, pos); err != nil {
			return nil, err
		}
		n, err := wantNumber(name, args, 0, pos)
		if err != nil {
			return nil, err
		}
		return ast.Float(fn(n.AsFloat())), nil
	}
}

func lognFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("logn", args, 2, pos); err != nil {
		return nil, err
	}
	base, err := wantNumber("logn", args, 0, pos)
	if err != nil {
		return nil, err
	}
	x, err := wantNumber("logn", args, 1, pos)
	if err != nil {
		return nil, err
	}
	return ast.Float(math.Log(x.AsFloat()) / math.Log(base.AsFloat())), nil
}
