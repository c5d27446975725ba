package ast

import (
	"fmt"
	"os"

	"github.com/RobinBoers/signo/internal/position"
)

// KindFile tags the FileHandle variant returned by the `fopen` builtin.
const KindFile Kind = KindSpecialForm + 1

// FileHandle wraps an open *os.File as an opaque Value, the way Number
// wraps a float64/int64 pair: the stdlib file builtins (`fread`, `fwrite`,
// `fseek`, `ftell`, `fclose`) all take and return FileHandle values rather
// than exposing *os.File directly.
type FileHandle struct {
	Handle *os.File
	Path   string
}

func (f *FileHandle) Kind() Kind             { return KindFile }
func (f *FileHandle) Pos() position.Position { return zeroPos }
func (f *FileHandle) Truthy() bool           { return true }
func (f *FileHandle) String() string         { return fmt.Sprintf("<file: %s>", f.Path) }
func (f *FileHandle) DebugString() string    { return f.String() }

// Equal compares FileHandles by identity: two fopen calls on the same path
// still yield distinct handles with independent cursors.
func (f *FileHandle) Equal(other Expr) bool {
	o, ok := other.(*FileHandle)
	return ok && o == f
}
