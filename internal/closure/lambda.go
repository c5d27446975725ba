/*
File    : signo/internal/closure/lambda.go

Package closure defines Lambda: a user-constructed procedure bundled with
the environment chain captured at its creation. It is kept in its own
package, separate from internal/ast, purely to avoid the import cycle
internal/ast would otherwise form with internal/environment (Lambda
needs *environment.Env; environment's Child binds ast.Value, which
Lambda must itself satisfy).
*/
package closure

import (
	"strings"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/environment"
	"github.com/RobinBoers/signo/internal/position"
)

// Lambda is a user-defined procedure: an optional self-name (enabling named
// recursion via `def`), its parameter names, its unevaluated body
// Expression, and the environment chain visible at its construction site.
//
// Two Lambdas built from syntactically identical `lambda` forms are never
// equal — Equal here compares pointer
// identity, not structure.
type Lambda struct {
	SelfName string // "" for an anonymous lambda
	Params   []string
	Body     ast.Expr
	Env      *environment.Env
	Position position.Position
}

func (l *Lambda) Kind() ast.Kind          { return ast.KindLambda }
func (l *Lambda) Pos() position.Position  { return l.Position }
func (l *Lambda) Truthy() bool            { return true }

// String is the display form: "<lambda name(a b)>", or "<lambda (a b)>" for
// an anonymous one.
func (l *Lambda) String() string {
	var b strings.Builder
	b.WriteString("<lambda ")
	if l.SelfName != "" {
		b.WriteString(l.SelfName)
	}
	b.WriteByte('(')
	b.WriteString(strings.Join(l.Params, " "))
	b.WriteString(")>")
	return b.String()
}

func (l *Lambda) DebugString() string { return l.String() }

// Equal compares by pointer identity: a Lambda is only equal to itself,
// never to another Lambda with the same name/params/body.
func (l *Lambda) Equal(other ast.Expr) bool {
	o, ok := other.(*Lambda)
	return ok && o == l
}
