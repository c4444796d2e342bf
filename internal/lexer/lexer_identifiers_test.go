package lexer

import (
	"testing"

	"github.com/oxygen-lang/oxygenc/internal/token"
)

func TestIdentifierClassification(t *testing.T) {
	cases := []struct {
		src      string
		wantKind token.Kind
	}{
		{"x", token.NAME},
		{"if", token.KEYWORD},
		{"int", token.LTYPE},
		{"true", token.CONSTANT},
		{"false", token.CONSTANT},
		{"null", token.CONSTANT},
		{"and", token.OP},
		{"self", token.KEYWORD},
	}
	for _, c := range cases {
		tok := scanOne(t, c.src)
		if tok.Kind != c.wantKind {
			t.Fatalf("%q: kind = %v, want %v", c.src, tok.Kind, c.wantKind)
		}
	}
}

func TestNonASCIIIdentifierIsEscaped(t *testing.T) {
	tok := scanOne(t, "café")
	if tok.Kind != token.NAME {
		t.Fatalf("kind = %v, want NAME", tok.Kind)
	}
	want := `caf\u00e9`
	if tok.Str() != want {
		t.Fatalf("value = %q, want %q", tok.Str(), want)
	}
}

func TestViewNextTokenDoesNotAdvance(t *testing.T) {
	l, err := New("a b c")
	if err != nil {
		t.Fatal(err)
	}
	preview, err := l.ViewNextToken(2)
	if err != nil {
		t.Fatal(err)
	}
	if preview.Str() != "b" {
		t.Fatalf("preview = %q, want %q", preview.Str(), "b")
	}

	first, err := l.GetNextToken()
	if err != nil {
		t.Fatal(err)
	}
	if first.Str() != "a" {
		t.Fatalf("after preview, first real token = %q, want %q (ViewNextToken must not consume input)", first.Str(), "a")
	}
}
