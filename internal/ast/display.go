/*
File    : signo/internal/ast/display.go

Holds the compound Expression variants — List and Quoted — whose
String()/DebugString()/Equal() recurse into their elements, plus the small
join helper they share.
*/
package ast

import (
	"strings"

	"github.com/RobinBoers/signo/internal/position"
)

// List is an ordered sequence of Expressions. A List produced by
// parsing non-empty source is never empty — empty parens parse directly to
// Nil — so List.Elements is never nil/empty for parser-produced Lists. The
// list-returning builtins (`tie`, `concat`, `sort`, ...) likewise return Nil
// rather than a zero-element List, and `pop(())`'s `(() ())` result holds
// two Nils.
type List struct {
	Elements []Expr
	Position position.Position
}

func (l List) Kind() Kind          { return KindList }
func (l List) Pos() position.Position { return l.Position }
func (l List) Truthy() bool        { return true }

func (l List) String() string  { return "(" + joinDisplay(l.Elements) + ")" }
func (l List) DebugString() string { return "(" + joinDebug(l.Elements) + ")" }

func (l List) Equal(other Expr) bool {
	o, ok := other.(List)
	if !ok || len(o.Elements) != len(l.Elements) {
		return false
	}
	for i, e := range l.Elements {
		if !e.Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

func joinDisplay(xs []Expr) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.String()
	}
	return strings.Join(parts, " ")
}

func joinDebug(xs []Expr) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = x.DebugString()
	}
	return strings.Join(parts, " ")
}

// Quoted defers evaluation of Inner: eval(Quoted{Inner}) returns Inner
// directly, unevaluated, so a Quoted only survives as a value when it was
// itself quoted (`''x` yields `'x`). Like Symbol it is a full Expr so the
// parser can treat every node uniformly.
type Quoted struct {
	Inner    Expr
	Position position.Position
}

func (q Quoted) Kind() Kind          { return KindQuoted }
func (q Quoted) Pos() position.Position { return q.Position }
func (q Quoted) Truthy() bool        { return q.Inner.Truthy() }
func (q Quoted) String() string      { return "'" + q.Inner.String() }
func (q Quoted) DebugString() string { return "'" + q.Inner.DebugString() }

func (q Quoted) Equal(other Expr) bool {
	o, ok := other.(Quoted)
	return ok && q.Inner.Equal(o.Inner)
}
