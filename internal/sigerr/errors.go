/*
File    : signo/internal/sigerr/errors.go

Package sigerr defines Signo's five error kinds, each carrying a
source Position and each a real Go error, formatted uniformly as
"[<Kind>] <message> at <path>:<row>:<col>".

Each kind is a distinct Go type (rather than one string-typed Error
value with a GetType() discriminator) so callers can tell kinds apart
with errors.As.
*/
package sigerr

import (
	"fmt"

	"github.com/RobinBoers/signo/internal/position"
)

// kindError is the shared shape behind every exported error type: a kind
// name, a Position, and a message. It is not exported — callers are meant
// to use errors.As with the concrete LexError/ParseError/... types, which
// embed it, not construct or match on kindError directly.
type kindError struct {
	kind string
	pos  position.Position
	msg  string
}

func (e *kindError) Error() string {
	return fmt.Sprintf("[%s] %s at %s", e.kind, e.msg, e.pos)
}

// LexError reports an unexpected character or a malformed token.
type LexError struct{ *kindError }

// NewLex builds a LexError at pos with a formatted message.
func NewLex(pos position.Position, format string, args ...interface{}) *LexError {
	return &LexError{&kindError{kind: "LexError", pos: pos, msg: fmt.Sprintf(format, args...)}}
}

// ParseError reports an unexpected token or an unclosed list.
type ParseError struct{ *kindError }

func NewParse(pos position.Position, format string, args ...interface{}) *ParseError {
	return &ParseError{&kindError{kind: "ParseError", pos: pos, msg: fmt.Sprintf(format, args...)}}
}

// ReferenceError reports a symbol that was not found in any reachable
// scope.
type ReferenceError struct{ *kindError }

func NewReference(pos position.Position, name string) *ReferenceError {
	return &ReferenceError{&kindError{kind: "ReferenceError", pos: pos, msg: fmt.Sprintf("identifier not found: %s", name)}}
}

// TypeError reports a wrong operand type, wrong arity, or an ill-formed
// special form.
type TypeError struct{ *kindError }

func NewType(pos position.Position, format string, args ...interface{}) *TypeError {
	return &TypeError{&kindError{kind: "TypeError", pos: pos, msg: fmt.Sprintf(format, args...)}}
}

// RuntimeError is the catch-all raised at call sites ("not callable") and
// for include's I/O failures.
type RuntimeError struct{ *kindError }

func NewRuntime(pos position.Position, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{&kindError{kind: "RuntimeError", pos: pos, msg: fmt.Sprintf(format, args...)}}
}

// positioned is implemented by every exported error type here (they all
// embed *kindError).
type positioned interface{ unwrapPos() position.Position }

func (e *kindError) unwrapPos() position.Position { return e.pos }

// Position extracts the Position carried by any of the five error kinds.
func Position(err error) (position.Position, bool) {
	if p, ok := err.(positioned); ok {
		return p.unwrapPos(), true
	}
	return position.Position{}, false
}
