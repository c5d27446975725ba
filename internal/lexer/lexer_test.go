package lexer

import (
	"testing"

	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/stretchr/testify/assert"
)

func tokenKinds(t *testing.T, src string) []Kind {
	t.Helper()
	lex := New(src, REPLPath)
	toks, err := lex.Tokens()
	assert.NoError(t, err)
	kinds := make([]Kind, 0, len(toks))
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestLexer_Structural(t *testing.T) {
	kinds := tokenKinds(t, "(+ 1 2)")
	assert.Equal(t, []Kind{LParen, SymbolTok, NumberLit, NumberLit, RParen, EOF}, kinds)
}

func TestLexer_QuoteAndAtom(t *testing.T) {
	kinds := tokenKinds(t, "'(#true #false)")
	assert.Equal(t, []Kind{QuotePrefix, LParen, AtomLit, AtomLit, RParen, EOF}, kinds)
}

func TestLexer_NegativeNumberVsMinusSymbol(t *testing.T) {
	lex := New("(- 1 -2)", REPLPath)
	toks, err := lex.Tokens()
	assert.NoError(t, err)
	assert.Equal(t, SymbolTok, toks[1].Kind)
	assert.Equal(t, "-", toks[1].Lexeme)
	assert.Equal(t, NumberLit, toks[3].Kind)
	assert.Equal(t, "-2", toks[3].Lexeme)
}

func TestLexer_FloatVsInt(t *testing.T) {
	lex := New("42 3.14 -0.5", REPLPath)
	toks, err := lex.Tokens()
	assert.NoError(t, err)
	assert.False(t, toks[0].IsFloat)
	assert.True(t, toks[1].IsFloat)
	assert.True(t, toks[2].IsFloat)
}

func TestLexer_SecondDotEndsNumber(t *testing.T) {
	lex := New("1.2.3", REPLPath)
	first, err := lex.Next()
	assert.NoError(t, err)
	assert.Equal(t, "1.2", first.Lexeme)
	// the next token starts with the second '.', which is not a valid
	// token start on its own.
	_, err = lex.Next()
	assert.Error(t, err)
}

func TestLexer_String(t *testing.T) {
	lex := New(`"hello world"`, REPLPath)
	tok, err := lex.Next()
	assert.NoError(t, err)
	assert.Equal(t, StringLit, tok.Kind)
	assert.Equal(t, "hello world", tok.Lexeme)
}

func TestLexer_UnterminatedString(t *testing.T) {
	lex := New(`"hello`, REPLPath)
	_, err := lex.Next()
	assert.Error(t, err)
	var lerr *sigerr.LexError
	assert.ErrorAs(t, err, &lerr)
}

func TestLexer_LineComment(t *testing.T) {
	kinds := tokenKinds(t, "1 ; this is a comment\n2")
	assert.Equal(t, []Kind{NumberLit, NumberLit, EOF}, kinds)
}

func TestLexer_PositionsTrackLineAndColumn(t *testing.T) {
	lex := New("1\n  2", REPLPath)
	first, err := lex.Next()
	assert.NoError(t, err)
	assert.Equal(t, Position{Path: REPLPath, Row: 1, Column: 1}, first.Pos)

	second, err := lex.Next()
	assert.NoError(t, err)
	assert.Equal(t, Position{Path: REPLPath, Row: 2, Column: 3}, second.Pos)
}

func TestLexer_CRLFNormalized(t *testing.T) {
	lex := New("1\r\n2", REPLPath)
	_, err := lex.Next()
	assert.NoError(t, err)
	second, err := lex.Next()
	assert.NoError(t, err)
	assert.Equal(t, 2, second.Pos.Row)
}

func TestLexer_UnexpectedCharacter(t *testing.T) {
	lex := New("@@@", REPLPath)
	_, err := lex.Next()
	assert.NoError(t, err) // '@' is a valid special symbol char, starts a Symbol

	lex2 := New("[", REPLPath)
	_, err = lex2.Next()
	assert.Error(t, err)
}
