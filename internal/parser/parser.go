// Package parser implements Oxygen's hand-written recursive-descent
// parser: one current token plus bounded lookahead delegated straight to
// the lexer's ViewNextToken, a user-type table for recognizing declared
// type names, and a single flat indent_level counter the parser advances
// itself independent of the lexer's per-token IndentLevel.
package parser

import (
	"fmt"
	"io"

	"github.com/oxygen-lang/oxygenc/internal/ast"
	"github.com/oxygen-lang/oxygenc/internal/errors"
	"github.com/oxygen-lang/oxygenc/internal/lexer"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// Parser consumes tokens from a Lexer one at a time and builds an AST.
// It never recovers from a malformed token stream: the first unexpected
// token returns an error that unwinds the whole parse.
type Parser struct {
	lex     *lexer.Lexer
	current token.Token
	file    string
	source  string

	indentLevel int
	userTypes   map[string]struct{}
	funcArgs    bool

	trace    bool
	traceOut io.Writer
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithTrace turns tracing on and stores w as the trace writer. No parser
// production calls tracef, so nothing is written to w.
func WithTrace(w io.Writer) Option {
	return func(p *Parser) {
		p.trace = true
		p.traceOut = w
	}
}

// WithFile records the source file name used in diagnostics.
func WithFile(name string) Option {
	return func(p *Parser) {
		p.file = name
	}
}

// WithSource records the raw source text so diagnostics can quote the
// offending line.
func WithSource(source string) Option {
	return func(p *Parser) {
		p.source = source
	}
}

// New constructs a Parser over lex and pre-loads the current token.
func New(lex *lexer.Lexer, opts ...Option) (*Parser, error) {
	p := &Parser{
		lex:       lex,
		userTypes: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) tracef(format string, args ...any) {
	if !p.trace {
		return
	}
	fmt.Fprintf(p.traceOut, "parse "+format+"\n", args...)
}

// fail builds a CompilerError anchored at the current token's line,
// naming the file and quoting the source line when both are known.
func (p *Parser) fail(format string, args ...any) error {
	return errors.NewCompilerError(token.Position{Line: p.current.Line}, fmt.Sprintf(format, args...), p.source, p.file)
}

// advance pulls the next token from the lexer into p.current.
func (p *Parser) advance() error {
	tok, err := p.lex.GetNextToken()
	if err != nil {
		return p.fail("%s", err.Error())
	}
	p.current = tok
	return nil
}

// next returns the current token and advances past it, mirroring the
// original's next_token (which hands back the token just consumed).
func (p *Parser) next() (token.Token, error) {
	tok := p.current
	if err := p.advance(); err != nil {
		return token.Token{}, err
	}
	return tok, nil
}

// consumeType requires the current token to have one of the given kinds.
func (p *Parser) consumeType(kinds ...token.Kind) error {
	for _, k := range kinds {
		if p.current.Kind == k {
			return p.advance()
		}
	}
	return p.fail("file=%s line=%d OxygenC Error: expected %v", p.file, p.current.Line, kinds)
}

// consumeValue requires the current token's value to be one of the given
// strings.
func (p *Parser) consumeValue(values ...string) error {
	cur := p.current.Str()
	for _, v := range values {
		if cur == v {
			return p.advance()
		}
	}
	return p.fail("file=%s line=%d OxygenC Error: expected %v", p.file, p.current.Line, values)
}

// preview delegates to the lexer's bounded lookahead, n=1 meaning "the
// token right after current".
func (p *Parser) preview(n int) (token.Token, error) {
	tok, err := p.lex.ViewNextToken(n)
	if err != nil {
		return token.Token{}, p.fail("%s", err.Error())
	}
	return tok, nil
}

// parseFindUntil scans the preview stream for a token whose value equals
// target before one equal to terminator, used to disambiguate a
// parenthesized expression from a tuple literal.
func (p *Parser) parseFindUntil(target, terminator string) (bool, error) {
	for n := 1; ; n++ {
		tok, err := p.preview(n)
		if err != nil {
			return false, err
		}
		v := tok.Str()
		if v == target {
			return true, nil
		}
		if v == terminator {
			return false, nil
		}
		if tok.Kind == token.EOF {
			return false, p.fail("file=%s line=%d OxygenC Error: expected %s", p.file, p.current.Line, target)
		}
	}
}

// parseHandleIndents skips blank lines and reports whether the next
// non-blank token's indent level matches the parser's own indentLevel
// counter — the signal that another statement belongs to the block
// currently being parsed.
func (p *Parser) parseHandleIndents() (bool, error) {
	for p.current.Kind == token.NEWLINE {
		if err := p.consumeType(token.NEWLINE); err != nil {
			return false, err
		}
	}
	return p.current.IndentLevel == p.indentLevel, nil
}

// Parse parses the whole input and returns its Program root.
func Parse(lex *lexer.Lexer, opts ...Option) (*ast.Program, error) {
	p, err := New(lex, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse runs the parser to completion. It is an error for any token to
// remain after the top-level compound statement besides EOF.
func (p *Parser) Parse() (*ast.Program, error) {
	root, err := p.parseProgramText()
	if err != nil {
		return nil, err
	}
	if p.current.Kind != token.EOF {
		return nil, p.fail("Unexpected end of program")
	}
	return root, nil
}

func (p *Parser) parseProgramText() (*ast.Program, error) {
	program := &ast.Program{}
	for p.current.Kind != token.EOF {
		comp, err := p.parseCompoundStmt()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, comp.Statements...)
	}
	return program, nil
}
