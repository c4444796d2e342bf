// Package errors formats Oxygen compiler diagnostics: a CompilerError
// type carrying a message, source context and line-only position (Oxygen's
// lexer tracks no column), plus a Reporter that owns the severity-colored
// printing the lexer and parser themselves never do directly.
package errors

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/oxygen-lang/oxygenc/internal/token"
)

// CompilerError is a single diagnostic with position and source context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

func (e *CompilerError) Error() string {
	return e.Format(false)
}

// Format renders a one-line header, the offending source line, and the
// message. There is no caret: without column tracking there is nothing to
// point it at, so the whole line is the indicator.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d\n", e.File, e.Pos.Line)
	} else {
		fmt.Fprintf(&sb, "Error at line %d\n", e.Pos.Line)
	}

	if line := e.getSourceLine(e.Pos.Line); line != "" {
		fmt.Fprintf(&sb, "%4d | %s\n", e.Pos.Line, line)
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors formats multiple compiler errors, numbering them when more
// than one is present.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Compilation failed with %d error(s):\n\n", len(errs))
	for i, err := range errs {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(errs))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// Severity tags a Reporter message the way the original's
// error/warning/successful printers did: red for fatal errors, yellow for
// warnings, green for success notices.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeveritySuccess
)

var severityColor = map[Severity]string{
	SeverityError:   "\033[1;31m",
	SeverityWarning: "\033[1;33m",
	SeveritySuccess: "\033[1;32m",
}

// severityMarker is the prefix the original's utils.error/warning/successful
// print ahead of the message text itself.
var severityMarker = map[Severity]string{
	SeverityError:   "[-] Error: ",
	SeverityWarning: "[!] Warning: ",
	SeveritySuccess: "[+] Success: ",
}

const colorReset = "\033[0m"

// Reporter owns all diagnostic printing for the CLI driver. Neither the
// lexer nor the parser print anything themselves — they return Go errors,
// and it is the Reporter's job to decide how (and whether, in color) to
// show them to a terminal. Out defaults to os.Stderr, matching the
// original's sys.stderr target; callers can still inject a buffer for
// testing.
type Reporter struct {
	Out   io.Writer
	Color bool
}

func NewReporter(out io.Writer, color bool) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	return &Reporter{Out: out, Color: color}
}

// print writes "<marker><message>" the way utils.error/warning/successful
// do: only the marker is colored, the message itself is not.
func (r *Reporter) print(sev Severity, msg string) {
	marker := severityMarker[sev]
	text := UnescapeIdent(msg)
	if r.Color {
		fmt.Fprintln(r.Out, severityColor[sev]+marker+colorReset+text)
		return
	}
	fmt.Fprintln(r.Out, marker+text)
}

func (r *Reporter) Error(format string, args ...any) {
	r.print(SeverityError, fmt.Sprintf(format, args...))
}

func (r *Reporter) Warning(format string, args ...any) {
	r.print(SeverityWarning, fmt.Sprintf(format, args...))
}

func (r *Reporter) Success(format string, args ...any) {
	r.print(SeveritySuccess, fmt.Sprintf(format, args...))
}
