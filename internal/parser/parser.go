/*
File    : signo/internal/parser/parser.go

Package parser implements Signo's recursive-descent parser: a
token stream produced by internal/lexer becomes an ast.Root, a vector of
top-level Expressions.

The parser does not distinguish `if`/`let`/`lambda`/`def`/`do`/`eval` at
parse time — those are ordinary Symbols whose binding in the kernel
environment happens to be a SpecialForm. That keeps this package tiny
and keeps semantics entirely in internal/eval.

Parser records the typed *sigerr.ParseError it hits and stops parsing at
that first error.
*/
package parser

import (
	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/lexer"
	"github.com/RobinBoers/signo/internal/sigerr"
)

// Parser consumes a pre-scanned Token slice (the whole point of a
// recursive-descent design over Signo's small grammar: one token of
// lookahead is all it ever needs).
type Parser struct {
	tokens []lexer.Token
	pos    int
	errs   []*sigerr.ParseError
}

// New creates a Parser over an already-lexed token stream. Callers
// typically get the stream via (*lexer.Lexer).Tokens().
func New(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse drains the Parser into an ast.Root. If a construct fails to
// parse, it stops and returns that first error (also recorded in
// Errors()); later constructs are not parsed.
func (p *Parser) Parse() (*ast.Root, error) {
	root := &ast.Root{}
	for !p.atEOF() {
		expr, err := p.parseExpr()
		if err != nil {
			p.errs = append(p.errs, err)
			return root, err
		}
		root.Exprs = append(root.Exprs, expr)
	}
	return root, nil
}

// Errors returns every ParseError collected during the most recent Parse
// call.
func (p *Parser) Errors() []*sigerr.ParseError {
	return p.errs
}

func (p *Parser) atEOF() bool {
	return p.peek().Kind == lexer.EOF
}

func (p *Parser) peek() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// parseExpr parses one top-level construct: a list, a quote, a number,
// a string, an atom, or a bare symbol.
func (p *Parser) parseExpr() (ast.Expr, *sigerr.ParseError) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.LParen:
		return p.parseList()
	case lexer.QuotePrefix:
		return p.parseQuote()
	case lexer.NumberLit:
		return p.parseNumber()
	case lexer.AtomLit:
		p.advance()
		return ast.Atom{Name: tok.Lexeme}, nil
	case lexer.StringLit:
		p.advance()
		return ast.String{Value: tok.Lexeme}, nil
	case lexer.SymbolTok:
		p.advance()
		return ast.Symbol{Name: tok.Lexeme, Position: tok.Pos}, nil
	case lexer.RParen:
		p.advance()
		return nil, sigerr.NewParse(tok.Pos, "unexpected token )")
	case lexer.EOF:
		return nil, sigerr.NewParse(tok.Pos, "unexpected end of input")
	default:
		p.advance()
		return nil, sigerr.NewParse(tok.Pos, "unexpected token %s", tok.Kind)
	}
}

// parseNumber converts a NumberLit token's lexeme into an ast.Number,
// per the lexer's IsFloat classification. The lexer
// already validated the lexeme's shape, so parse failures here would be
// an internal inconsistency rather than user error; they are reported as
// ParseErrors all the same since nothing downstream should ever panic.
func (p *Parser) parseNumber() (ast.Expr, *sigerr.ParseError) {
	tok := p.advance()
	if tok.IsFloat {
		f, err := parseFloat(tok.Lexeme)
		if err != nil {
			return nil, sigerr.NewParse(tok.Pos, "malformed float literal %q", tok.Lexeme)
		}
		return ast.Float(f), nil
	}
	i, err := parseInt(tok.Lexeme)
	if err != nil {
		return nil, sigerr.NewParse(tok.Pos, "malformed integer literal %q", tok.Lexeme)
	}
	return ast.Int(i), nil
}

// parseList parses `( e1 e2 … en )`; an empty list parses directly to Nil
// rather than an empty ast.List.
func (p *Parser) parseList() (ast.Expr, *sigerr.ParseError) {
	open := p.advance() // consume '('
	var elems []ast.Expr
	for {
		if p.atEOF() {
			return nil, sigerr.NewParse(open.Pos, "unclosed list")
		}
		if p.peek().Kind == lexer.RParen {
			p.advance()
			break
		}
		elem, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	if len(elems) == 0 {
		return ast.Nil{}, nil
	}
	return ast.List{Elements: elems, Position: open.Pos}, nil
}

// parseQuote parses `' <expr>`. When the quoted expression is
// already self-evaluating (Nil/Number/Atom/String), quoting it is a no-op
// and the parser returns the value directly; Symbol and List still need
// evaluation suppressed, so those are wrapped in ast.Quoted.
func (p *Parser) parseQuote() (ast.Expr, *sigerr.ParseError) {
	p.advance() // consume '\''
	inner, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch inner.(type) {
	case ast.Nil, ast.Number, ast.Atom, ast.String:
		return inner, nil
	default:
		return ast.Quoted{Inner: inner, Position: inner.Pos()}, nil
	}
}
