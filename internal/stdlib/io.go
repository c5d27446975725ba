/*
File    : signo/internal/stdlib/io.go

`print(x)`: writes x's display form to the Runtime's writer
followed by a newline, and returns the reserved hidden Atom `ok` so the
REPL can suppress echoing it.
*/
package stdlib

import (
	"fmt"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"print": printFn,
	})
}

func printFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("print", args, 1, pos); err != nil {
		return nil, err
	}
	fmt.Fprintln(rt.Writer(), args[0].String())
	return ast.Atom{Name: "ok"}, nil
}
