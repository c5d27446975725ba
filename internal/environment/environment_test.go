package environment

import (
	"testing"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/stretchr/testify/assert"
)

func TestEnv_LookupFindsOwnBinding(t *testing.T) {
	root := NewRoot(map[string]ast.Value{"x": ast.Int(1)})
	v, err := root.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(1).Equal(v))
}

func TestEnv_LookupWalksParentChain(t *testing.T) {
	root := NewRoot(map[string]ast.Value{"x": ast.Int(1)})
	child := root.Child(map[string]ast.Value{"y": ast.Int(2)})
	grandchild := child.Child(nil)

	v, err := grandchild.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(1).Equal(v))

	v, err = grandchild.Lookup("y", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(2).Equal(v))
}

func TestEnv_LookupMissingIsReferenceError(t *testing.T) {
	root := NewRoot(nil)
	_, err := root.Lookup("nope", position.Position{Path: "<repl>", Row: 1, Column: 1})
	assert.Error(t, err)
	var rerr *sigerr.ReferenceError
	assert.ErrorAs(t, err, &rerr)
}

func TestEnv_AssignIsCurrentScopeOnly(t *testing.T) {
	root := NewRoot(map[string]ast.Value{"x": ast.Int(1)})
	child := root.Child(nil)

	extended := child.Assign("x", ast.Int(99))

	v, err := extended.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(99).Equal(v))

	// the parent (root) never sees the shadowing assignment.
	v, err = root.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(1).Equal(v))
}

func TestEnv_AssignDoesNotMutatePriorReferences(t *testing.T) {
	root := NewRoot(map[string]ast.Value{"x": ast.Int(1)})
	captured := root // simulates a closure capturing root before the assign

	_ = root.Assign("x", ast.Int(2))

	v, err := captured.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(1).Equal(v), "assign must not mutate the scope a closure already captured")
}

func TestEnv_BindingsSnapshotsWholeChain(t *testing.T) {
	root := NewRoot(map[string]ast.Value{"x": ast.Int(1)})
	child := root.Child(map[string]ast.Value{"y": ast.Int(2)})

	snapshot := child.Bindings()
	assert.True(t, ast.Int(1).Equal(snapshot["x"]))
	assert.True(t, ast.Int(2).Equal(snapshot["y"]))
}

func TestEnv_ChildShadowsParent(t *testing.T) {
	root := NewRoot(map[string]ast.Value{"x": ast.Int(1)})
	child := root.Child(map[string]ast.Value{"x": ast.Int(2)})

	v, err := child.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(2).Equal(v))

	v, err = root.Lookup("x", position.Position{})
	assert.NoError(t, err)
	assert.True(t, ast.Int(1).Equal(v))
}
