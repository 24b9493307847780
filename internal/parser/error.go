package parser

import (
	"fmt"

	"github.com/kaelscript/kael/pkg/token"
)

// SyntaxError is raised by the lexer or parser before evaluation begins.
// It is not catchable through the language's throw/catch channel; it
// terminates the entry point with an error result.
type SyntaxError struct {
	Message string
	Pos     token.Position
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError at %s: %s", e.Pos, e.Message)
}
