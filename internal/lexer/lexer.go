package lexer

import (
	"strings"

	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// specialSymbolChars are the non-alphanumeric characters a Symbol may start
// or continue with.
const specialSymbolChars = "_=+-*/^%&@!?~<>"

// Lexer scans Signo source text into a stream of Tokens, tracking Position
// one grapheme cluster at a time (not one byte/rune), so a multi-codepoint
// emoji or combining character counts as a single column.
type Lexer struct {
	src    string
	path   string
	bounds []int // byte offsets of each grapheme cluster start, plus len(src) as sentinel
	gIdx   int    // index into bounds of the grapheme currently at pos
	pos    int    // byte offset of the start of the current grapheme
	row    int
	col    int
}

// New creates a Lexer over src, attributing every Position to origin (a
// file path, or lexer.REPLPath for REPL/internal input). \r\n sequences are
// normalized to \n before scanning.
func New(src, origin string) *Lexer {
	normalized := strings.ReplaceAll(src, "\r\n", "\n")
	l := &Lexer{
		src:    normalized,
		path:   origin,
		bounds: graphemeBoundaries(normalized),
		row:    1,
		col:    1,
	}
	return l
}

// graphemeBoundaries returns the byte offset of every grapheme cluster
// start in src, followed by len(src) as a closing sentinel. This lets the
// lexer advance Position by grapheme rather than by byte while still
// slicing lexemes out of src with ordinary byte indices.
func graphemeBoundaries(src string) []int {
	bounds := make([]int, 0, len(src)+1)
	seg := graphemes.FromString(src)
	offset := 0
	for seg.Next() {
		bounds = append(bounds, offset)
		offset += len(seg.Value())
	}
	bounds = append(bounds, len(src))
	return bounds
}

// current returns the byte at the lexer's current position, or 0 at EOF.
// Every multi-byte grapheme Signo's grammar cares about structurally
// (parens, quote, digits, ASCII letters/specials) is itself single-byte,
// so reading the leading byte is sufficient for all dispatch decisions;
// grapheme-awareness only affects Position bookkeeping.
func (l *Lexer) current() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// peek returns the byte at the start of the next grapheme cluster, or 0 at
// EOF.
func (l *Lexer) peek() byte {
	if l.gIdx+1 >= len(l.bounds)-1 {
		return 0
	}
	nextPos := l.bounds[l.gIdx+1]
	if nextPos >= len(l.src) {
		return 0
	}
	return l.src[nextPos]
}

// position returns the Position of the lexer's current grapheme.
func (l *Lexer) position() Position {
	return Position{Path: l.path, Row: l.row, Column: l.col}
}

// advance consumes the current grapheme cluster and moves to the next,
// updating Row/Column: a newline grapheme resets Column to 1 and
// increments Row; anything else just increments Column.
func (l *Lexer) advance() {
	if l.gIdx >= len(l.bounds)-1 {
		l.pos = len(l.src)
		return
	}
	start := l.bounds[l.gIdx]
	end := l.bounds[l.gIdx+1]
	consumed := l.src[start:end]
	l.gIdx++
	l.pos = end
	if consumed == "\n" {
		l.row++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.src)
}

// skipWhitespaceAndComments discards spaces/tabs/vtab/cr/lf and ';' line
// comments.
func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEOF() {
		c := l.current()
		switch c {
		case ' ', '\t', '\v', '\r', '\n':
			l.advance()
		case ';':
			for !l.atEOF() && l.current() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b >= utf8RuneSelf
}

// utf8RuneSelf marks the boundary below which bytes are single-byte ASCII;
// any byte at or above it is the leading byte of a multi-byte UTF-8
// sequence, which Signo identifiers are permitted to contain.
const utf8RuneSelf = 0x80

func isSpecialSymbolChar(b byte) bool {
	return strings.IndexByte(specialSymbolChars, b) >= 0
}

func isIdentStart(b byte) bool {
	return isLetter(b) || isSpecialSymbolChar(b)
}

func isIdentCont(b byte) bool {
	return isLetter(b) || isDigit(b) || isSpecialSymbolChar(b)
}

// Next scans and returns the next Token, or a *sigerr.LexError if the
// current position does not start any valid token.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespaceAndComments()
	start := l.position()

	if l.atEOF() {
		return NewToken(EOF, "", start), nil
	}

	c := l.current()

	switch {
	case c == '(':
		l.advance()
		return NewToken(LParen, "(", start), nil
	case c == ')':
		l.advance()
		return NewToken(RParen, ")", start), nil
	case c == '\'':
		l.advance()
		return NewToken(QuotePrefix, "'", start), nil
	case c == '"':
		return l.scanString(start)
	case c == '#':
		return l.scanAtom(start)
	case c == '-' && isDigit(l.peek()):
		return l.scanNumber(start)
	case isDigit(c):
		return l.scanNumber(start)
	case isIdentStart(c):
		return l.scanSymbol(start)
	default:
		return Token{}, sigerr.NewLex(start, "unexpected character %s", string(rune(c)))
	}
}

// scanNumber consumes an optional leading '-', digits, and at most one '.'
// followed by more digits. A second '.' ends the
// number (it is not consumed); a lone trailing '.' with no following digit
// is likewise left unconsumed, which fails downstream as "not a number"
// would only matter if a bare '.' could start a token — it cannot, since
// scanNumber is only entered with a leading digit or '-digit'.
func (l *Lexer) scanNumber(start Position) (Token, error) {
	startPos := l.pos
	isFloat := false

	if l.current() == '-' {
		l.advance()
	}
	for !l.atEOF() && isDigit(l.current()) {
		l.advance()
	}
	if !l.atEOF() && l.current() == '.' && isDigit(l.peek()) {
		isFloat = true
		l.advance() // consume '.'
		for !l.atEOF() && isDigit(l.current()) {
			l.advance()
		}
	}

	lexeme := l.src[startPos:l.pos]
	tok := NewToken(NumberLit, lexeme, start)
	tok.IsFloat = isFloat
	return tok, nil
}

// scanString consumes a double-quoted, UTF-8 string body. Escape sequences
// are not processed — the quote character is taken literally inside the
// body only by virtue of there being no escape mechanism to quote it with;
// see SPEC_FULL.md's Open Question decisions for why.
func (l *Lexer) scanString(start Position) (Token, error) {
	l.advance() // consume opening quote
	startPos := l.pos
	for {
		if l.atEOF() {
			return Token{}, sigerr.NewLex(start, "unterminated string literal")
		}
		if l.current() == '"' {
			lexeme := l.src[startPos:l.pos]
			l.advance() // consume closing quote
			return NewToken(StringLit, lexeme, start), nil
		}
		l.advance()
	}
}

// scanAtom consumes '#' followed by one or more identifier characters.
// The token's Lexeme is the name *after* the '#'.
func (l *Lexer) scanAtom(start Position) (Token, error) {
	l.advance() // consume '#'
	if l.atEOF() || !isIdentCont(l.current()) {
		return Token{}, sigerr.NewLex(start, "expected identifier after '#'")
	}
	startPos := l.pos
	for !l.atEOF() && isIdentCont(l.current()) {
		l.advance()
	}
	return NewToken(AtomLit, l.src[startPos:l.pos], start), nil
}

// scanSymbol consumes an identifier: a letter or special-symbol-char,
// continuing with letters, digits, or special-symbol-chars.
func (l *Lexer) scanSymbol(start Position) (Token, error) {
	startPos := l.pos
	for !l.atEOF() && isIdentCont(l.current()) {
		l.advance()
	}
	return NewToken(SymbolTok, l.src[startPos:l.pos], start), nil
}

// Tokens drains the lexer into a slice, terminated by (and including) an
// EOF token. It stops at the first LexError.
func (l *Lexer) Tokens() ([]Token, error) {
	var out []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return out, err
		}
		out = append(out, tok)
		if tok.Kind == EOF {
			return out, nil
		}
	}
}
