package parser

import (
	"testing"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/lexer"
	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/stretchr/testify/assert"
)

func parseSrc(t *testing.T, src string) *ast.Root {
	t.Helper()
	toks, err := lexer.New(src, lexer.REPLPath).Tokens()
	assert.NoError(t, err)
	root, perr := New(toks).Parse()
	assert.NoError(t, perr)
	return root
}

func TestParser_EmptyListIsNil(t *testing.T) {
	root := parseSrc(t, "()")
	assert.Len(t, root.Exprs, 1)
	assert.Equal(t, ast.Nil{}, root.Exprs[0])
}

func TestParser_NonEmptyList(t *testing.T) {
	root := parseSrc(t, "(+ 1 2)")
	list, ok := root.Exprs[0].(ast.List)
	assert.True(t, ok)
	assert.Len(t, list.Elements, 3)
	assert.Equal(t, ast.Symbol{Name: "+", Position: list.Elements[0].Pos()}, list.Elements[0])
	assert.True(t, ast.Int(1).Equal(list.Elements[1]))
	assert.True(t, ast.Int(2).Equal(list.Elements[2]))
}

func TestParser_FloatLiteral(t *testing.T) {
	root := parseSrc(t, "3.14")
	assert.True(t, ast.Float(3.14).Equal(root.Exprs[0]))
}

func TestParser_AtomAndString(t *testing.T) {
	root := parseSrc(t, `#ok "hi"`)
	assert.Equal(t, ast.Atom{Name: "ok"}, root.Exprs[0])
	assert.Equal(t, ast.String{Value: "hi"}, root.Exprs[1])
}

func TestParser_QuoteOfSelfEvaluatingIsNoOp(t *testing.T) {
	root := parseSrc(t, "'1")
	assert.True(t, ast.Int(1).Equal(root.Exprs[0]), "quoting a literal should be a no-op")
}

func TestParser_QuoteOfSymbolWraps(t *testing.T) {
	root := parseSrc(t, "'x")
	q, ok := root.Exprs[0].(ast.Quoted)
	assert.True(t, ok)
	assert.Equal(t, "x", q.Inner.(ast.Symbol).Name)
}

func TestParser_QuoteOfListWraps(t *testing.T) {
	root := parseSrc(t, "'(1 2)")
	q, ok := root.Exprs[0].(ast.Quoted)
	assert.True(t, ok)
	_, ok = q.Inner.(ast.List)
	assert.True(t, ok)
}

func TestParser_UnclosedListErrors(t *testing.T) {
	toks, err := lexer.New("(1 2", lexer.REPLPath).Tokens()
	assert.NoError(t, err)
	_, perr := New(toks).Parse()
	assert.Error(t, perr)
	var pe *sigerr.ParseError
	assert.ErrorAs(t, perr, &pe)
}

func TestParser_UnexpectedClosingParen(t *testing.T) {
	toks, err := lexer.New(")", lexer.REPLPath).Tokens()
	assert.NoError(t, err)
	_, perr := New(toks).Parse()
	assert.Error(t, perr)
}

func TestParser_MultipleTopLevelExprs(t *testing.T) {
	root := parseSrc(t, "1 2 3")
	assert.Len(t, root.Exprs, 3)
}
