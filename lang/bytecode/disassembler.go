package bytecode

import (
	"fmt"
	"io"

	"golang.org/x/exp/slices"
)

// simpleOps lists the opcodes that carry no inline operand, used to drive
// disassembly without a type switch per case.
var simpleOps = []Op{
	OpNil, OpTrue, OpFalse, OpPop,
	OpEqual, OpGreater, OpLess,
	OpAdd, OpSubtract, OpMultiply, OpDivide,
	OpNot, OpNegate, OpPrint, OpReturn,
}

// byteOperandOps lists the opcodes whose single inline operand is a raw
// index byte (into the constant pool or the local-slot array).
var byteOperandOps = []Op{
	OpConstant, OpGetLocal, OpSetLocal,
	OpGetGlobal, OpDefineGlobal, OpSetGlobal,
}

// jumpOps lists the opcodes whose inline operand is a two-byte big-endian
// jump offset.
var jumpOps = []Op{OpJump, OpJumpIfFalse, OpLoop}

// Disassemble writes a human-readable listing of every instruction in c to
// w, prefixed by name. The sum of each instruction's returned width always
// equals len(c.Code); that invariant is what lets the VM and this
// disassembler walk the same chunk in lockstep.
func Disassemble(w io.Writer, c *Chunk, name string) {
	fmt.Fprintf(w, "== %s ==\n", name)
	for offset := 0; offset < len(c.Code); {
		offset = DisassembleInstruction(w, c, offset)
	}
}

// DisassembleInstruction writes the single instruction at offset to w and
// returns the offset of the next instruction.
func DisassembleInstruction(w io.Writer, c *Chunk, offset int) int {
	fmt.Fprintf(w, "%04d ", offset)
	if offset > 0 && c.Lines[offset] == c.Lines[offset-1] {
		fmt.Fprint(w, "   | ")
	} else {
		fmt.Fprintf(w, "%4d ", c.Lines[offset])
	}

	op := Op(c.Code[offset])
	switch {
	case slices.Contains(simpleOps, op):
		return simpleInstruction(w, op, offset)
	case slices.Contains(byteOperandOps, op):
		return byteInstruction(w, c, op, offset)
	case slices.Contains(jumpOps, op):
		return jumpInstruction(w, c, op, offset)
	default:
		fmt.Fprintf(w, "unknown opcode %s\n", op)
		return offset + 1
	}
}

func simpleInstruction(w io.Writer, op Op, offset int) int {
	fmt.Fprintf(w, "%s\n", op)
	return offset + 1
}

func byteInstruction(w io.Writer, c *Chunk, op Op, offset int) int {
	slot := c.Code[offset+1]
	switch op {
	case OpConstant, OpGetGlobal, OpDefineGlobal, OpSetGlobal:
		fmt.Fprintf(w, "%-16s %4d '%s'\n", op, slot, c.Constants[slot])
	default:
		fmt.Fprintf(w, "%-16s %4d\n", op, slot)
	}
	return offset + 2
}

func jumpInstruction(w io.Writer, c *Chunk, op Op, offset int) int {
	jump := int(c.Code[offset+1])<<8 | int(c.Code[offset+2])
	target := offset + 3
	if op == OpLoop {
		target -= jump
	} else {
		target += jump
	}
	fmt.Fprintf(w, "%-16s %4d -> %d\n", op, offset, target)
	return offset + 3
}
