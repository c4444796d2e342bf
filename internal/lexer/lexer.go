// Package lexer tokenizes Oxygen source text into the closed token
// vocabulary described by internal/token, tracking the per-line
// indentation level the parser uses to recognize block structure.
package lexer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// ErrEmptyInput is returned by New when given an empty source string.
var ErrEmptyInput = errors.New("oxygen: empty input")

// Lexer scans one source file. It is not safe for concurrent use: callers
// that need to tokenize a file from multiple goroutines should construct
// one Lexer per goroutine (see spec's concurrency model).
type Lexer struct {
	text []rune
	pos  int

	currentChar  rune
	currentClass grammar.CharClass

	lineNum     int
	indentLevel int
	atLineStart bool

	tracing       bool
	traceOut      io.Writer
	suppressTrace bool
}

// Option configures a Lexer at construction time.
type Option func(*Lexer)

// WithTracing writes one line per token produced to w. Lookahead performed
// by ViewNextToken is not traced, since those tokens are never actually
// consumed by a caller.
func WithTracing(w io.Writer) Option {
	return func(l *Lexer) {
		l.tracing = true
		l.traceOut = w
	}
}

// New constructs a Lexer over source. Per the grammar, a lexer always
// operates on an already-decoded Go string — file reading, BOM sniffing
// and encoding detection happen in the CLI driver, not here.
func New(source string, opts ...Option) (*Lexer, error) {
	text, err := cleanText(source)
	if err != nil {
		return nil, err
	}

	l := &Lexer{
		text:        []rune(text),
		lineNum:     1,
		atLineStart: true,
	}
	for _, opt := range opts {
		opt(l)
	}
	if len(l.text) > 0 {
		l.currentChar = l.text[0]
		l.currentClass = grammar.ClassOf(l.currentChar)
	}
	return l, nil
}

func cleanText(source string) (string, error) {
	if source == "" {
		return "", ErrEmptyInput
	}
	if !strings.HasSuffix(source, "\n") {
		source += "\n"
	}
	return source, nil
}

func (l *Lexer) advance() {
	l.pos++
	if l.pos < len(l.text) {
		l.currentChar = l.text[l.pos]
		l.currentClass = grammar.ClassOf(l.currentChar)
	} else {
		l.currentChar = 0
		l.currentClass = grammar.Other
	}
}

func (l *Lexer) peekAt(offset int) rune {
	idx := l.pos + offset
	if idx < 0 || idx >= len(l.text) {
		return 0
	}
	return l.text[idx]
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.text)
}

func (l *Lexer) makeToken(kind token.Kind, value any) token.Token {
	return token.Token{
		Kind:        kind,
		Value:       value,
		Line:        l.lineNum,
		IndentLevel: l.indentLevel,
	}
}

func (l *Lexer) trace(tok token.Token) {
	if !l.tracing || l.suppressTrace {
		return
	}
	fmt.Fprintf(l.traceOut, "token %s %v line=%d indent=%d\n", tok.Kind, tok.Value, tok.Line, tok.IndentLevel)
}

// GetNextToken produces the next token, consuming whitespace, comments and
// indentation as it goes. The retry-style rules (runs of whitespace,
// chained comment lines, line continuations) loop internally rather than
// recursing, so a long run of blank or commented lines costs no stack
// depth.
func (l *Lexer) GetNextToken() (token.Token, error) {
	for {
		if err := l.handleIndent(); err != nil {
			return token.Token{}, err
		}
		if l.eof() {
			tok := l.makeToken(token.EOF, nil)
			l.trace(tok)
			return tok, nil
		}

		switch l.currentClass {
		case grammar.Newline:
			tok := l.scanNewline()
			l.trace(tok)
			return tok, nil
		case grammar.Whitespace:
			l.skipWhitespace()
			continue
		case grammar.Comment:
			l.skipComment()
			continue
		case grammar.Escape:
			tok, consumed, err := l.tryScanEscape()
			if err != nil {
				return token.Token{}, err
			}
			if consumed {
				continue
			}
			l.trace(tok)
			return tok, nil
		case grammar.Quote:
			tok, err := l.scanString()
			if err == nil {
				l.trace(tok)
			}
			return tok, err
		case grammar.Operatic:
			tok, err := l.scanOperator()
			if err == nil {
				l.trace(tok)
			}
			return tok, err
		case grammar.Numeric:
			tok, err := l.scanNumber()
			if err == nil {
				l.trace(tok)
			}
			return tok, err
		case grammar.Alphanumeric:
			tok, err := l.scanIdentifier()
			if err == nil {
				l.trace(tok)
			}
			return tok, err
		default:
			return token.Token{}, fmt.Errorf("unexpected character %q at line %d", l.currentChar, l.lineNum)
		}
	}
}

// handleIndent promotes runs of 4 spaces (or hard tabs, one tab per level)
// at the start of a line into indent-level increments. It is a no-op once
// a non-whitespace token has been seen on the current line.
func (l *Lexer) handleIndent() error {
	if !l.atLineStart {
		return nil
	}

	spaces, tabs := 0, 0
	for l.currentClass == grammar.Whitespace {
		if l.currentChar == '\t' {
			tabs++
		} else {
			spaces++
		}
		l.advance()
	}

	if tabs > 0 {
		l.indentLevel += tabs
	}
	if spaces > 0 {
		if spaces%4 != 0 {
			return fmt.Errorf("Indentation is locked to 4 spaces, found %d instead", spaces)
		}
		l.indentLevel += spaces / 4
	}

	l.atLineStart = false
	return nil
}

func (l *Lexer) scanNewline() token.Token {
	tok := l.makeToken(token.NEWLINE, "\n")
	l.advance()
	l.eatNewlineBookkeeping()
	return tok
}

func (l *Lexer) eatNewlineBookkeeping() {
	l.lineNum++
	l.indentLevel = 0
	l.atLineStart = true
}

func (l *Lexer) skipWhitespace() {
	for l.currentClass == grammar.Whitespace {
		l.advance()
	}
}

// skipComment consumes a '#' comment to end of line, and eats the
// trailing newline itself rather than leaving it to be tokenized — a
// comment line produces no NEWLINE token, so two comment lines in a row
// collapse into nothing at all, not an empty statement.
func (l *Lexer) skipComment() {
	for !l.eof() && l.currentChar != '\n' {
		l.advance()
	}
	if !l.eof() && l.currentChar == '\n' {
		l.advance()
		l.eatNewlineBookkeeping()
	}
}

// tryScanEscape handles a top-level backslash. A backslash directly
// followed by a newline is a line continuation: the newline is consumed
// without emitting a NEWLINE token, so the next line lexes as part of the
// same logical line. Any other use of a bare backslash becomes an ESCAPE
// token.
func (l *Lexer) tryScanEscape() (token.Token, bool, error) {
	l.advance()
	if l.currentChar == '\n' {
		l.advance()
		l.lineNum++
		return token.Token{}, true, nil
	}
	return l.makeToken(token.ESCAPE, "\\"), false, nil
}

func (l *Lexer) scanString() (token.Token, error) {
	quote := l.currentChar
	l.advance()

	var sb strings.Builder
	for {
		if l.eof() {
			return token.Token{}, fmt.Errorf("unterminated string literal starting at line %d", l.lineNum)
		}
		if l.currentChar == '\\' && l.peekAt(1) == quote {
			sb.WriteRune(quote)
			l.advance()
			l.advance()
			continue
		}
		if l.currentChar == quote {
			l.advance()
			break
		}
		if l.currentChar == '\n' {
			l.lineNum++
		}
		sb.WriteRune(l.currentChar)
		l.advance()
	}

	return l.makeToken(token.STRING, sb.String()), nil
}

// scanOperator accumulates an OPERATIC run, with '.' special-cased so
// ".", ".." and "..." are told apart before the generic single-operator
// break rule (which would otherwise stop at the very first '.') applies.
func (l *Lexer) scanOperator() (token.Token, error) {
	if l.currentChar == '.' {
		return l.scanDot(), nil
	}

	var sb strings.Builder
	sb.WriteRune(l.currentChar)
	l.advance()

	for l.currentClass == grammar.Operatic && l.currentChar != '.' {
		if grammar.IsSingleOperator(string(l.currentChar)) || grammar.IsSingleOperator(sb.String()) {
			break
		}
		sb.WriteRune(l.currentChar)
		l.advance()
	}

	return l.makeToken(token.OP, sb.String()), nil
}

func (l *Lexer) scanDot() token.Token {
	if l.peekAt(1) == '.' {
		if l.peekAt(2) == '.' {
			l.advance()
			l.advance()
			l.advance()
			return l.makeToken(token.OP, grammar.Ellipsis)
		}
		l.advance()
		l.advance()
		return l.makeToken(token.OP, grammar.Range)
	}
	l.advance()
	return l.makeToken(token.OP, grammar.Dot)
}

// scanIdentifier accumulates an alphanumeric run and classifies it by the
// lexer's fixed priority: word operators, then keywords, then types, then
// constants, falling back to NAME. Word operators and keywords each have a
// two-word combined form ("not in", "else if") resolved via a one-token
// lookahead before the token is emitted.
func (l *Lexer) scanIdentifier() (token.Token, error) {
	var sb strings.Builder
	for l.currentClass == grammar.Alphanumeric || l.currentClass == grammar.Numeric {
		sb.WriteRune(l.currentChar)
		l.advance()
	}
	word := sb.String()

	switch {
	case grammar.IsWordOperator(word):
		return l.combineWord(word, grammar.IsMultiWordOperator, token.OP)
	case grammar.IsKeyword(word):
		return l.combineWord(word, grammar.IsMultiWordKeyword, token.KEYWORD)
	case grammar.IsType(word):
		return l.makeToken(token.LTYPE, word), nil
	case grammar.IsConstant(word):
		return l.makeToken(token.CONSTANT, word), nil
	default:
		return l.makeToken(token.NAME, EscapeIdent(word)), nil
	}
}

// combineWord previews the following token (via the same bounded-lookahead
// machinery the parser uses, see ViewNextToken) before deciding whether to
// actually consume it and merge the two words into one lexeme.
func (l *Lexer) combineWord(word string, multiWord func(string) bool, kind token.Kind) (token.Token, error) {
	if multiWord(word) {
		next, err := l.ViewNextToken(1)
		if err == nil {
			if nv, ok := next.Value.(string); ok && multiWord(nv) {
				second, err2 := l.GetNextToken()
				if err2 == nil {
					return l.makeToken(kind, word+" "+second.Str()), nil
				}
			}
		}
	}
	return l.makeToken(kind, word), nil
}
