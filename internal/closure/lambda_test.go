package closure

import (
	"testing"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/environment"
	"github.com/stretchr/testify/assert"
)

func TestLambda_EqualIsIdentityNotStructure(t *testing.T) {
	env := environment.NewRoot(nil)
	a := &Lambda{SelfName: "id", Params: []string{"x"}, Body: ast.Symbol{Name: "x"}, Env: env}
	b := &Lambda{SelfName: "id", Params: []string{"x"}, Body: ast.Symbol{Name: "x"}, Env: env}

	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(b), "two syntactically identical lambdas must not be equal")
}

func TestLambda_StringIncludesNameAndParams(t *testing.T) {
	l := &Lambda{SelfName: "add", Params: []string{"a", "b"}}
	assert.Equal(t, "<lambda add(a b)>", l.String())
}

func TestLambda_AnonymousStringHasNoName(t *testing.T) {
	l := &Lambda{Params: []string{"x"}}
	assert.Equal(t, "<lambda (x)>", l.String())
}

func TestLambda_IsTruthyAndKindLambda(t *testing.T) {
	l := &Lambda{}
	assert.True(t, l.Truthy())
	assert.Equal(t, ast.KindLambda, l.Kind())
}
