package stdlib

import (
	"io"
	"testing"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/stretchr/testify/assert"
)

type fakeRuntime struct{}

func (fakeRuntime) Writer() io.Writer { return discardWriter{} }

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func call(t *testing.T, name string, args ...ast.Value) ast.Value {
	t.Helper()
	fn, ok := All()[name]
	assert.True(t, ok, "builtin %s not registered", name)
	v, err := fn(args, position.Position{}, fakeRuntime{})
	assert.NoError(t, err)
	return v
}

func TestLogic(t *testing.T) {
	assert.Equal(t, ast.True, call(t, "not", ast.False))
	assert.Equal(t, ast.True, call(t, "and", ast.True, ast.True))
	assert.Equal(t, ast.False, call(t, "and", ast.True, ast.False))
	assert.Equal(t, ast.True, call(t, "or", ast.False, ast.True))
	assert.Equal(t, ast.True, call(t, "xor", ast.True, ast.False))
	assert.Equal(t, ast.False, call(t, "xor", ast.True, ast.True))
}

func TestComparison(t *testing.T) {
	assert.Equal(t, ast.True, call(t, "==", ast.Int(1), ast.Float(1.0)))
	assert.Equal(t, ast.True, call(t, ">", ast.Int(2), ast.Int(1)))
	assert.Equal(t, ast.False, call(t, "<=", ast.Int(2), ast.Int(1)))
}

func TestArithmetic(t *testing.T) {
	assert.True(t, ast.Int(5).Equal(call(t, "+", ast.Int(2), ast.Int(3))))
	assert.True(t, ast.Float(2.5).Equal(call(t, "/", ast.Int(5), ast.Int(2))))
	assert.True(t, ast.Int(2).Equal(call(t, "/", ast.Int(4), ast.Int(2))))
	assert.True(t, ast.Float(4).Equal(call(t, "^", ast.Int(2), ast.Int(2))))
	assert.True(t, ast.Int(3).Equal(call(t, "abs", ast.Int(-3))))
}

func TestStrings(t *testing.T) {
	assert.True(t, ast.Int(5).Equal(call(t, "length", ast.String{Value: "hello"})))
	assert.Equal(t, ast.String{Value: "HELLO"}, call(t, "upcase", ast.String{Value: "hello"}))
	assert.Equal(t, ast.String{Value: "Hello"}, call(t, "capitalize", ast.String{Value: "hello"}))
	assert.Equal(t, ast.String{Value: "ab"}, call(t, "concat", ast.String{Value: "a"}, ast.String{Value: "b"}))
}

func TestLists(t *testing.T) {
	list := call(t, "tie", ast.Int(1), ast.Int(2), ast.Int(3)).(ast.List)
	assert.Len(t, list.Elements, 3)

	pushed := call(t, "push", ast.Int(4), list).(ast.List)
	assert.Len(t, pushed.Elements, 4)
	assert.True(t, ast.Int(4).Equal(pushed.Elements[3]))

	popped := call(t, "pop", list).(ast.List)
	assert.True(t, ast.Int(1).Equal(popped.Elements[0]))

	sum := call(t, "sum", list)
	assert.True(t, ast.Int(6).Equal(sum))
}

func TestSortNatural(t *testing.T) {
	list := ast.List{Elements: []ast.Expr{
		ast.String{Value: "item10"},
		ast.String{Value: "item2"},
	}}
	sorted := call(t, "sort", list).(ast.List)
	assert.Equal(t, "item2", sorted.Elements[0].(ast.String).Value)
	assert.Equal(t, "item10", sorted.Elements[1].(ast.String).Value)
}

func TestJSONGetSet(t *testing.T) {
	v := call(t, "json-get", ast.String{Value: `{"a":{"b":2}}`}, ast.String{Value: "a.b"})
	assert.True(t, ast.Int(2).Equal(v))

	updated := call(t, "json-set", ast.String{Value: `{"a":1}`}, ast.String{Value: "a"}, ast.Int(9))
	s, ok := updated.(ast.String)
	assert.True(t, ok)
	assert.Contains(t, s.Value, `"a":9`)
}
