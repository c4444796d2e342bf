package errors

import (
	"strconv"
	"strings"
)

// UnescapeIdent is the inverse of lexer.EscapeIdent: it decodes \uXXXX
// sequences (including surrogate pairs) back into the original runes,
// applied right before a diagnostic is printed so the user never sees the
// ASCII-escaped form of their own identifiers.
func UnescapeIdent(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var sb strings.Builder
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if hasEscapeAt(runes, i) {
			hi, ok := decodeHex4(runes[i+2 : i+6])
			if ok {
				if hi >= 0xd800 && hi <= 0xdbff && hasEscapeAt(runes, i+6) {
					lo, ok2 := decodeHex4(runes[i+8 : i+12])
					if ok2 && lo >= 0xdc00 && lo <= 0xdfff {
						r := 0x10000 + (hi-0xd800)<<10 + (lo - 0xdc00)
						sb.WriteRune(rune(r))
						i += 11
						continue
					}
				}
				sb.WriteRune(rune(hi))
				i += 5
				continue
			}
		}
		sb.WriteRune(runes[i])
	}
	return sb.String()
}

// hasEscapeAt reports whether runes[i:] begins a \uXXXX escape.
func hasEscapeAt(runes []rune, i int) bool {
	return i+6 <= len(runes) && runes[i] == '\\' && runes[i+1] == 'u'
}

func decodeHex4(digits []rune) (int, bool) {
	n, err := strconv.ParseInt(string(digits), 16, 32)
	if err != nil {
		return 0, false
	}
	return int(n), true
}
