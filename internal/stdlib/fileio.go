/*
File    : signo/internal/stdlib/fileio.go

Stateful file I/O builtins: fopen, fclose, fread, fwrite, fseek, ftell.
fopen returns an opaque *ast.FileHandle and the others take one, rather
than exposing *os.File directly, with errors surfaced as idiomatic Go
(ast.Value, error) returns instead of a sentinel error value.
*/
package stdlib

import (
	"io"
	"os"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"fopen":  fopenFn,
		"fclose": fcloseFn,
		"fread":  freadFn,
		"fwrite": fwriteFn,
		"fseek":  fseekFn,
		"ftell":  ftellFn,
	})
}

// fopenModes mirrors fopen's mode argument to an os.OpenFile flag set.
var fopenModes = map[string]int{
	"r":  os.O_RDONLY,
	"w":  os.O_WRONLY | os.O_CREATE | os.O_TRUNC,
	"a":  os.O_WRONLY | os.O_CREATE | os.O_APPEND,
	"r+": os.O_RDWR,
	"w+": os.O_RDWR | os.O_CREATE | os.O_TRUNC,
}

func fopenFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("fopen", args, 2, pos); err != nil {
		return nil, err
	}
	path, err := wantString("fopen", args, 0, pos)
	if err != nil {
		return nil, err
	}
	mode, err := wantString("fopen", args, 1, pos)
	if err != nil {
		return nil, err
	}

	flag, ok := fopenModes[mode.Value]
	if !ok {
		return nil, sigerr.NewRuntime(pos, "fopen: invalid file mode '%s'", mode.Value)
	}

	handle, osErr := os.OpenFile(path.Value, flag, 0644)
	if osErr != nil {
		return nil, sigerr.NewRuntime(pos, "fopen: could not open file '%s': %v", path.Value, osErr)
	}
	return &ast.FileHandle{Handle: handle, Path: path.Value}, nil
}

func fcloseFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("fclose", args, 1, pos); err != nil {
		return nil, err
	}
	f, err := wantFile("fclose", args, 0, pos)
	if err != nil {
		return nil, err
	}
	if osErr := f.Handle.Close(); osErr != nil {
		return nil, sigerr.NewRuntime(pos, "fclose: %v", osErr)
	}
	return ast.Nil{}, nil
}

func freadFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("fread", args, 2, pos); err != nil {
		return nil, err
	}
	f, err := wantFile("fread", args, 0, pos)
	if err != nil {
		return nil, err
	}
	size, err := wantNumber("fread", args, 1, pos)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, size.I)
	n, osErr := f.Handle.Read(buf)
	if osErr != nil && osErr != io.EOF {
		return nil, sigerr.NewRuntime(pos, "fread: %v", osErr)
	}
	return ast.String{Value: string(buf[:n])}, nil
}

func fwriteFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("fwrite", args, 2, pos); err != nil {
		return nil, err
	}
	f, err := wantFile("fwrite", args, 0, pos)
	if err != nil {
		return nil, err
	}

	n, osErr := f.Handle.WriteString(args[1].String())
	if osErr != nil {
		return nil, sigerr.NewRuntime(pos, "fwrite: %v", osErr)
	}
	return ast.Int(int64(n)), nil
}

func fseekFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("fseek", args, 3, pos); err != nil {
		return nil, err
	}
	f, err := wantFile("fseek", args, 0, pos)
	if err != nil {
		return nil, err
	}
	offset, err := wantNumber("fseek", args, 1, pos)
	if err != nil {
		return nil, err
	}
	whence, err := wantNumber("fseek", args, 2, pos)
	if err != nil {
		return nil, err
	}

	newPos, osErr := f.Handle.Seek(offset.I, int(whence.I))
	if osErr != nil {
		return nil, sigerr.NewRuntime(pos, "fseek: %v", osErr)
	}
	return ast.Int(newPos), nil
}

func ftellFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("ftell", args, 1, pos); err != nil {
		return nil, err
	}
	f, err := wantFile("ftell", args, 0, pos)
	if err != nil {
		return nil, err
	}

	cur, osErr := f.Handle.Seek(0, io.SeekCurrent)
	if osErr != nil {
		return nil, sigerr.NewRuntime(pos, "ftell: %v", osErr)
	}
	return ast.Int(cur), nil
}
