package eval

import (
	"bytes"
	"testing"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/lexer"
	"github.com/RobinBoers/signo/internal/parser"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) (ast.Value, *bytes.Buffer) {
	t.Helper()
	toks, err := lexer.New(src, lexer.REPLPath).Tokens()
	assert.NoError(t, err)
	root, perr := parser.New(toks).Parse()
	assert.NoError(t, perr)

	var out bytes.Buffer
	rt := &Runtime{Out: &out}
	env := NewKernelEnv()
	v, _, evalErr := EvalRoot(root, env, rt)
	assert.NoError(t, evalErr)
	return v, &out
}

func TestEval_Arithmetic(t *testing.T) {
	v, _ := run(t, "(+ 1 2)")
	assert.True(t, ast.Int(3).Equal(v))
}

func TestEval_LetExtendsEnv(t *testing.T) {
	v, _ := run(t, "(let x 10) (+ x 1)")
	assert.True(t, ast.Int(11).Equal(v))
}

func TestEval_IfTruthyBranch(t *testing.T) {
	v, _ := run(t, "(if #true 1 2)")
	assert.True(t, ast.Int(1).Equal(v))
}

func TestEval_IfFalsyBranch(t *testing.T) {
	v, _ := run(t, "(if #false 1 2)")
	assert.True(t, ast.Int(2).Equal(v))
}

func TestEval_IfWithoutElseIsNil(t *testing.T) {
	v, _ := run(t, "(if #false 1)")
	assert.Equal(t, ast.Nil{}, v)
}

func TestEval_DoIntroducesChildScope(t *testing.T) {
	v, _ := run(t, `(let x 1) (do (let x 2) x) x`)
	assert.True(t, ast.Int(1).Equal(v), "do's let must not leak into the outer scope")
}

func TestEval_LambdaCallAndClosureCapture(t *testing.T) {
	v, _ := run(t, `(let adder (lambda x (lambda y (+ x y)))) ((adder 1) 2)`)
	assert.True(t, ast.Int(3).Equal(v))
}

func TestEval_DefEnablesNamedRecursion(t *testing.T) {
	v, _ := run(t, `
		(def fact n (if (<= n 1) 1 (* n (fact (- n 1)))))
		(fact 5)
	`)
	assert.True(t, ast.Int(120).Equal(v))
}

func TestEval_QuoteEvalDuality(t *testing.T) {
	v, _ := run(t, `(eval '(+ 1 2))`)
	assert.True(t, ast.Int(3).Equal(v))
}

func TestEval_PrintWritesAndReturnsHiddenOk(t *testing.T) {
	v, out := run(t, `(print "hi")`)
	atom, ok := v.(ast.Atom)
	assert.True(t, ok)
	assert.True(t, atom.IsHidden())
	assert.Equal(t, "hi\n", out.String())
}

func TestEval_CallingNonCallableIsRuntimeError(t *testing.T) {
	toks, err := lexer.New("(1 2)", lexer.REPLPath).Tokens()
	assert.NoError(t, err)
	root, perr := parser.New(toks).Parse()
	assert.NoError(t, perr)
	var out bytes.Buffer
	_, _, evalErr := EvalRoot(root, NewKernelEnv(), &Runtime{Out: &out})
	assert.Error(t, evalErr)
}

func TestEval_EmptyProgramIsNil(t *testing.T) {
	v, _ := run(t, "")
	assert.Equal(t, ast.Nil{}, v)
}
