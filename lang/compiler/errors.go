package compiler

import (
	"fmt"
	"strings"
)

// CompileError collects every syntax error found while compiling a single
// source, in the order they were reported. A non-empty CompileError means
// compilation failed and no Chunk was produced.
type CompileError struct {
	Errors []string
}

func (e *CompileError) Error() string {
	return strings.Join(e.Errors, "\n")
}

// add appends a formatted "[line N] Error ...: message" entry.
func (e *CompileError) add(line int, where, message string) {
	e.Errors = append(e.Errors, fmt.Sprintf("[line %d] Error%s: %s", line, where, message))
}
