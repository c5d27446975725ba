package stdlib

import (
	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
)

// wantArity enforces an exact argument count.
func wantArity(name string, args []ast.Value, n int, pos position.Position) error {
	if len(args) != n {
		return sigerr.NewType(pos, "%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// wantNumber extracts args[i] as a Number, or fails with a TypeError.
func wantNumber(name string, args []ast.Value, i int, pos position.Position) (ast.Number, error) {
	n, ok := args[i].(ast.Number)
	if !ok {
		return ast.Number{}, sigerr.NewType(pos, "%s expects a number at argument %d, got %s", name, i+1, args[i].Kind())
	}
	return n, nil
}

// wantString extracts args[i] as a String, or fails with a TypeError.
func wantString(name string, args []ast.Value, i int, pos position.Position) (ast.String, error) {
	s, ok := args[i].(ast.String)
	if !ok {
		return ast.String{}, sigerr.NewType(pos, "%s expects a string at argument %d, got %s", name, i+1, args[i].Kind())
	}
	return s, nil
}

// wantList extracts args[i] as a List, or fails with a TypeError.
func wantList(name string, args []ast.Value, i int, pos position.Position) (ast.List, error) {
	l, ok := args[i].(ast.List)
	if !ok {
		return ast.List{}, sigerr.NewType(pos, "%s expects a list at argument %d, got %s", name, i+1, args[i].Kind())
	}
	return l, nil
}

// wantFile extracts args[i] as a *FileHandle, or fails with a TypeError.
func wantFile(name string, args []ast.Value, i int, pos position.Position) (*ast.FileHandle, error) {
	f, ok := args[i].(*ast.FileHandle)
	if !ok {
		return nil, sigerr.NewType(pos, "%s expects a file handle at argument %d, got %s", name, i+1, args[i].Kind())
	}
	return f, nil
}
