package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oxygen-lang/oxygenc/internal/token"
)

func TestCompilerErrorFormatWithFile(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 3}, "unexpected token", "a = 1\nb = 2\nc = +\n", "main.oxy")
	got := err.Format(false)
	if !strings.Contains(got, "Error in main.oxy:3") {
		t.Fatalf("Format() = %q, missing file:line header", got)
	}
	if !strings.Contains(got, "c = +") {
		t.Fatalf("Format() = %q, missing source line", got)
	}
	if !strings.Contains(got, "unexpected token") {
		t.Fatalf("Format() = %q, missing message", got)
	}
}

func TestCompilerErrorFormatWithoutFile(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1}, "bad indent", "x = 1\n", "")
	got := err.Format(false)
	if !strings.Contains(got, "Error at line 1") {
		t.Fatalf("Format() = %q, missing line-only header", got)
	}
}

func TestFormatErrorsSingleOmitsNumbering(t *testing.T) {
	errs := []*CompilerError{NewCompilerError(token.Position{Line: 1}, "oops", "", "")}
	got := FormatErrors(errs, false)
	if strings.Contains(got, "Error 1 of") {
		t.Fatalf("FormatErrors() numbered a single error: %q", got)
	}
}

func TestFormatErrorsMultipleAreNumbered(t *testing.T) {
	errs := []*CompilerError{
		NewCompilerError(token.Position{Line: 1}, "first", "", ""),
		NewCompilerError(token.Position{Line: 2}, "second", "", ""),
	}
	got := FormatErrors(errs, false)
	if !strings.Contains(got, "[Error 1 of 2]") || !strings.Contains(got, "[Error 2 of 2]") {
		t.Fatalf("FormatErrors() = %q, missing numbering", got)
	}
}

func TestReporterColorsSeverity(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, true)
	r.Error("bad thing: %s", "x")
	if !strings.Contains(buf.String(), "\033[1;31m") {
		t.Fatalf("Error() output = %q, missing red color code", buf.String())
	}
}

func TestReporterWithoutColorIsPlain(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.Warning("careful")
	if strings.Contains(buf.String(), "\033[") {
		t.Fatalf("Warning() output = %q, expected no color codes", buf.String())
	}
	if !strings.Contains(buf.String(), "careful") {
		t.Fatalf("Warning() output = %q, missing message", buf.String())
	}
}

func TestReporterUnescapesIdentifiers(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, false)
	r.Error(`undefined name: caf\u00e9`)
	if !strings.Contains(buf.String(), "café") {
		t.Fatalf("Error() output = %q, expected unescaped identifier", buf.String())
	}
}

func TestUnescapeIdentRoundTripsBMP(t *testing.T) {
	got := UnescapeIdent(`caf\u00e9`)
	if got != "café" {
		t.Fatalf("UnescapeIdent() = %q, want café", got)
	}
}

func TestUnescapeIdentRoundTripsSurrogatePair(t *testing.T) {
	// U+1F600 (GRINNING FACE) encodes as the surrogate pair D83D DE00.
	got := UnescapeIdent(`\ud83d\ude00`)
	want := "\U0001F600"
	if got != want {
		t.Fatalf("UnescapeIdent() = %q, want %q", got, want)
	}
}

func TestUnescapeIdentLeavesPlainTextAlone(t *testing.T) {
	got := UnescapeIdent("plain_name")
	if got != "plain_name" {
		t.Fatalf("UnescapeIdent() = %q, want unchanged", got)
	}
}
