package ast

// Root is a parsed program: an ordered vector of top-level Expressions.
// An empty program is a Root with no Exprs, which the evaluator treats
// as evaluating to Nil.
type Root struct {
	Exprs []Expr
}
