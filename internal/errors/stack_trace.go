package errors

import (
	"fmt"
	"strings"

	"github.com/kaelscript/kael/pkg/token"
)

// StackFrame represents a single frame in a call stack: the function being
// executed and its location in the source.
type StackFrame struct {
	Position     token.Position
	FunctionName string
	FileName     string
}

// String formats as "FunctionName [line: N, column: M]".
func (sf StackFrame) String() string {
	return fmt.Sprintf("%s [line: %d, column: %d]",
		sf.FunctionName, sf.Position.Line, sf.Position.Column)
}

// StackTrace is a complete call stack, ordered oldest (bottom) to newest (top).
type StackTrace []StackFrame

// String prints frames newest-first, one per line.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}

	var sb strings.Builder
	for i := len(st) - 1; i >= 0; i-- {
		sb.WriteString(st[i].String())
		if i > 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Top returns the most recent frame, or nil if empty.
func (st StackTrace) Top() *StackFrame {
	if len(st) == 0 {
		return nil
	}
	return &st[len(st)-1]
}

// Depth returns the number of frames in the stack.
func (st StackTrace) Depth() int {
	return len(st)
}

func NewStackFrame(functionName, fileName string, position token.Position) StackFrame {
	return StackFrame{FunctionName: functionName, FileName: fileName, Position: position}
}

func NewStackTrace() StackTrace {
	return make(StackTrace, 0)
}
