package lexer

import (
	"testing"

	"github.com/oxygen-lang/oxygenc/internal/token"
)

func TestStringLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"it\"s"`, `it"s`},
		{`'it\'s'`, "it's"},
		{`""`, ""},
	}
	for _, c := range cases {
		tok := scanOne(t, c.src)
		if tok.Kind != token.STRING {
			t.Fatalf("%q: kind = %v, want STRING", c.src, tok.Kind)
		}
		if tok.Str() != c.want {
			t.Fatalf("%q: value = %q, want %q", c.src, tok.Str(), c.want)
		}
	}
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	l, err := New(`"never closed`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.GetNextToken(); err == nil {
		t.Fatal("expected an unterminated string error")
	}
}
