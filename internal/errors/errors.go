// Package errors defines Kael's structured error kinds and formats them
// with source context and a caret pointing at the offending position, for
// driver-facing (uncaught) reporting.
package errors

import (
	"fmt"
	"strings"

	"github.com/kaelscript/kael/internal/runtime"
	"github.com/kaelscript/kael/pkg/token"
)

// Kind names the category of a runtime or compile-time error.
type Kind string

const (
	KindSyntax    Kind = "SyntaxError"
	KindReference Kind = "ReferenceError"
	KindType      Kind = "TypeError"
	KindRange     Kind = "RangeError"
	KindHost      Kind = "HostError"
)

// KaelError is a structured error carrying its kind, message, and source
// position. SyntaxError values are produced by the lexer/parser and abort
// the run directly; the other four kinds are raised during evaluation and
// are convertible to a thrown Record via ToValue so user code can catch
// them.
type KaelError struct {
	Kind    Kind
	Message string
	Pos     token.Position
	Source  string     // full source text, for caret context; may be empty
	File    string     // source file name, for the "KIND in FILE:L:C" header
	Trace   StackTrace // call stack at the point of raise, when trace collection is enabled
}

func New(kind Kind, pos token.Position, format string, args ...any) *KaelError {
	return &KaelError{Kind: kind, Message: fmt.Sprintf(format, args...), Pos: pos}
}

func (e *KaelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ToValue converts the error to the Record a `catch` handler receives:
// `{name, message}`.
func (e *KaelError) ToValue() runtime.Value {
	rec := runtime.NewRecord()
	rec.Set("name", runtime.String(string(e.Kind)))
	rec.Set("message", runtime.String(e.Message))
	return rec
}

// Format renders the error with a source-line/caret diagram, optionally in
// ANSI color, matching the driver's uncaught-error reporting.
func (e *KaelError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "%s in %s:%d:%d\n", e.Kind, e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "%s at %d:%d\n", e.Kind, e.Pos.Line, e.Pos.Column)
	}

	if line := e.sourceLine(e.Pos.Line); line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(e.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	if len(e.Trace) > 0 {
		sb.WriteString("\n")
		sb.WriteString(e.Trace.String())
	}

	return sb.String()
}

func (e *KaelError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
