// Package bytecode implements the Chunk (code + constant pool + line
// table) that the compiler emits into and the VM executes, and a
// disassembler for both.
package bytecode

import "fmt"

// Op is a one-byte instruction opcode, with zero or more inline operand
// bytes immediately following it in a Chunk's code.
//
// Comments use the stack-picture convention: "before OPCODE<operand>
// after", where a bare identifier is one stack slot and OP<n> denotes an
// inline operand byte that is an index into the table named by n
// (constants, locals); OP<offset> denotes a two-byte big-endian jump
// offset.
type Op uint8

//nolint:revive
const (
	OpConstant Op = iota //         - OpConstant<constants> v
	OpNil                //         - OpNil                 nil
	OpTrue               //         - OpTrue                true
	OpFalse              //         - OpFalse               false
	OpPop                //         v OpPop                 -
	OpGetLocal           //         - OpGetLocal<locals>     v
	OpSetLocal           //         v OpSetLocal<locals>     v
	OpGetGlobal          //         - OpGetGlobal<constants> v
	OpDefineGlobal       //         v OpDefineGlobal<constants> -
	OpSetGlobal          //         v OpSetGlobal<constants> v
	OpEqual              //       a b OpEqual                v
	OpGreater            //       a b OpGreater              v
	OpLess               //       a b OpLess                 v
	OpAdd                //       a b OpAdd                  v
	OpSubtract           //       a b OpSubtract             v
	OpMultiply           //       a b OpMultiply             v
	OpDivide             //       a b OpDivide               v
	OpNot                //         v OpNot                  v
	OpNegate             //         v OpNegate               v
	OpPrint              //         v OpPrint                -
	OpJump               //         - OpJump<offset>         -    (unconditional, ip += offset)
	OpJumpIfFalse        //         v OpJumpIfFalse<offset>  v    (ip += offset if v is falsey; v is not popped)
	OpLoop               //         - OpLoop<offset>         -    (ip -= offset)
	OpReturn             //         - OpReturn               -    (halts the VM)

	numOps
)

var opNames = [...]string{
	OpConstant:     "OP_CONSTANT",
	OpNil:          "OP_NIL",
	OpTrue:         "OP_TRUE",
	OpFalse:        "OP_FALSE",
	OpPop:          "OP_POP",
	OpGetLocal:     "OP_GET_LOCAL",
	OpSetLocal:     "OP_SET_LOCAL",
	OpGetGlobal:    "OP_GET_GLOBAL",
	OpDefineGlobal: "OP_DEFINE_GLOBAL",
	OpSetGlobal:    "OP_SET_GLOBAL",
	OpEqual:        "OP_EQUAL",
	OpGreater:      "OP_GREATER",
	OpLess:         "OP_LESS",
	OpAdd:          "OP_ADD",
	OpSubtract:     "OP_SUBTRACT",
	OpMultiply:     "OP_MULTIPLY",
	OpDivide:       "OP_DIVIDE",
	OpNot:          "OP_NOT",
	OpNegate:       "OP_NEGATE",
	OpPrint:        "OP_PRINT",
	OpJump:         "OP_JUMP",
	OpJumpIfFalse:  "OP_JUMP_IF_FALSE",
	OpLoop:         "OP_LOOP",
	OpReturn:       "OP_RETURN",
}

func (op Op) String() string {
	if op < numOps {
		return opNames[op]
	}
	return fmt.Sprintf("OP_<illegal %d>", byte(op))
}
