package lexer

import (
	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// snapshot is a full copy of every mutable field ViewNextToken needs to
// restore after a speculative scan: currentChar and currentClass are
// copied directly rather than recomputed from pos, so restoring is a pure
// field assignment that can't drift from how advance() derives them.
type snapshot struct {
	pos          int
	currentChar  rune
	currentClass grammar.CharClass
	lineNum      int
	indentLevel  int
	atLineStart  bool
}

func (l *Lexer) save() snapshot {
	return snapshot{
		pos:          l.pos,
		currentChar:  l.currentChar,
		currentClass: l.currentClass,
		lineNum:      l.lineNum,
		indentLevel:  l.indentLevel,
		atLineStart:  l.atLineStart,
	}
}

func (l *Lexer) restore(s snapshot) {
	l.pos = s.pos
	l.currentChar = s.currentChar
	l.currentClass = s.currentClass
	l.lineNum = s.lineNum
	l.indentLevel = s.indentLevel
	l.atLineStart = s.atLineStart
}

// ViewNextToken previews the token n calls of GetNextToken ahead, without
// disturbing the lexer's actual position: the full mutable state is saved,
// GetNextToken is called n times, and the state is restored before the
// preview result is returned. Used by the parser for its lookahead-based
// disambiguation (parenthesized expression vs. tuple literal) and by the
// lexer itself for multi-word keyword/operator combination.
func (l *Lexer) ViewNextToken(n int) (token.Token, error) {
	s := l.save()
	prevSuppress := l.suppressTrace
	l.suppressTrace = true

	var tok token.Token
	var err error
	for i := 0; i < n; i++ {
		tok, err = l.GetNextToken()
		if err != nil {
			break
		}
	}

	l.suppressTrace = prevSuppress
	l.restore(s)

	return tok, err
}
