/*
File    : signo/internal/stdlib/registry.go

Package stdlib implements every standard-library procedure, split by
concern across logic.go, comparison.go, arithmetic.go, mathfn.go,
strings.go, lists.go, io.go, json.go, and fileio.go — one file per concern.

Each file's init() passes a map literal of its builtins to register(),
which copies them into one package-level `all` map, and All() returns a
defensive copy so callers (internal/eval's NewKernelEnv) can't mutate
the shared registry.
*/
package stdlib

import "github.com/RobinBoers/signo/internal/ast"

var all = make(map[string]ast.BuiltinFunc)

// register adds a concern's builtins to the shared registry. Called from
// each file's init().
func register(methods map[string]ast.BuiltinFunc) {
	for name, fn := range methods {
		all[name] = fn
	}
}

// All returns every standard library builtin, keyed by name. The caller
// owns the returned map.
func All() map[string]ast.BuiltinFunc {
	out := make(map[string]ast.BuiltinFunc, len(all))
	for name, fn := range all {
		out[name] = fn
	}
	return out
}
