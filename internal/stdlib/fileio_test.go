package stdlib

import (
	"os"
	"testing"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/stretchr/testify/assert"
)

func TestFileRoundTrip(t *testing.T) {
	path := tempFilePath(t)
	defer os.Remove(path)

	handle := call(t, "fopen", ast.String{Value: path}, ast.String{Value: "w+"})
	f, ok := handle.(*ast.FileHandle)
	assert.True(t, ok)

	n := call(t, "fwrite", f, ast.String{Value: "hello"})
	assert.True(t, ast.Int(5).Equal(n))

	pos := call(t, "fseek", f, ast.Int(0), ast.Int(0))
	assert.True(t, ast.Int(0).Equal(pos))

	content := call(t, "fread", f, ast.Int(5))
	assert.Equal(t, ast.String{Value: "hello"}, content)

	cursor := call(t, "ftell", f)
	assert.True(t, ast.Int(5).Equal(cursor))

	assert.Equal(t, ast.Nil{}, call(t, "fclose", f))
}

func TestFopenInvalidMode(t *testing.T) {
	path := tempFilePath(t)
	defer os.Remove(path)

	fn := All()["fopen"]
	_, err := fn([]ast.Value{ast.String{Value: path}, ast.String{Value: "bogus"}}, position.Position{}, fakeRuntime{})
	assert.Error(t, err)
}

func tempFilePath(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "signo-fileio-*")
	assert.NoError(t, err)
	path := f.Name()
	assert.NoError(t, f.Close())
	assert.NoError(t, os.Remove(path))
	return path
}
