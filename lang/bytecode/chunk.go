package bytecode

import (
	"fmt"

	"github.com/loxlang/lox/lang/value"
)

// maxConstants is the constant pool's capacity: OpConstant, OpGetGlobal,
// OpDefineGlobal and OpSetGlobal all address it with a single operand byte.
const maxConstants = 256

// Chunk is a sequence of bytecode together with the constant pool and
// per-byte source line table the compiler emits alongside it. The
// three slices are parallel: Lines[i] is not indexed by instruction, but by
// byte offset into Code, same as Code itself.
type Chunk struct {
	Code      []byte
	Constants []value.Value
	Lines     []int
}

// Write appends a single instruction byte (an opcode or an operand byte)
// produced while compiling source line line.
func (c *Chunk) Write(b byte, line int) {
	c.Code = append(c.Code, b)
	c.Lines = append(c.Lines, line)
}

// WriteOp appends op's byte to the chunk.
func (c *Chunk) WriteOp(op Op, line int) {
	c.Write(byte(op), line)
}

// AddConstant appends v to the constant pool and returns its index, or
// returns an error if the pool is already full. Equal values are not
// deduplicated: each call takes a new slot.
func (c *Chunk) AddConstant(v value.Value) (byte, error) {
	if len(c.Constants) >= maxConstants {
		return 0, fmt.Errorf("too many constants in one chunk")
	}
	c.Constants = append(c.Constants, v)
	return byte(len(c.Constants) - 1), nil
}
