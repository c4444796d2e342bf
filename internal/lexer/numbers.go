package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/oxygen-lang/oxygenc/internal/grammar"
	"github.com/oxygen-lang/oxygenc/internal/token"
)

// scanNumber reads an integer or double literal. A leading "0b"/"0o"/"0x"
// switches the base for the digits that follow; a single '.' promotes the
// literal to DOUBLE, while two consecutive dots terminate the number so
// the following ".." lexes as a Range operator instead of being absorbed
// (see the boundary case: "1..10" must not swallow the second dot).
func (l *Lexer) scanNumber() (token.Token, error) {
	base := 10
	kind := token.Int
	var sb strings.Builder

	for {
		switch {
		case l.currentClass == grammar.Numeric:
			sb.WriteRune(l.currentChar)
			l.advance()
			continue
		case l.currentChar == '.' && l.peekAt(1) != '.':
			if kind == token.Double {
				return token.Token{}, fmt.Errorf("Unexpected number parsing at line %d", l.lineNum)
			}
			kind = token.Double
			sb.WriteRune(l.currentChar)
			l.advance()
			continue
		case l.currentChar == '.' && l.peekAt(1) == '.':
			goto done
		case isBasePrefixLetter(l.currentChar):
			if (l.currentChar == 'b' || l.currentChar == 'x' || l.currentChar == 'o') && base == 10 && sb.String() == "0" {
				base = baseFor(l.currentChar)
				sb.Reset()
				l.advance()
				continue
			}
			if base == 16 && isHexLetter(l.currentChar) {
				sb.WriteRune(l.currentChar)
				l.advance()
				continue
			}
			return token.Token{}, fmt.Errorf("Unexpected number parsing at line %d", l.lineNum)
		default:
			goto done
		}
	}

done:
	word := sb.String()
	if word == "" {
		word = "0"
	}

	if kind == token.Double {
		f, err := strconv.ParseFloat(word, 64)
		if err != nil {
			return token.Token{}, fmt.Errorf("Unexpected number parsing at line %d: %w", l.lineNum, err)
		}
		return l.numberToken(f, token.Double), nil
	}

	n, err := strconv.ParseInt(word, base, 64)
	if err != nil {
		return token.Token{}, fmt.Errorf("Unexpected number parsing at line %d: %w", l.lineNum, err)
	}
	return l.numberToken(n, token.Int), nil
}

func (l *Lexer) numberToken(value any, kind token.NumberKind) token.Token {
	tok := l.makeToken(token.NUMBER, value)
	tok.NumberKind = kind
	return tok
}

func isBasePrefixLetter(r rune) bool {
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'A', 'B', 'C', 'D', 'E', 'F', 'x', 'o':
		return true
	}
	return false
}

func isHexLetter(r rune) bool {
	switch r {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'A', 'B', 'C', 'D', 'E', 'F':
		return true
	}
	return false
}

func baseFor(r rune) int {
	switch r {
	case 'b':
		return 2
	case 'o':
		return 8
	case 'x':
		return 16
	}
	return 10
}
