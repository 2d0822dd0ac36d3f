// Package compiler implements a single-pass Pratt compiler: it scans
// source and emits bytecode.Chunk instructions directly, with no
// intermediate AST. Precedence climbing ties expression parsing to
// bytecode emission in the parseRule table in expressions.go.
package compiler

import (
	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/scanner"
	"github.com/loxlang/lox/lang/strtable"
	"github.com/loxlang/lox/lang/token"
	"github.com/loxlang/lox/lang/value"
)

// maxLocals bounds the locals stack: OpGetLocal/OpSetLocal address a local
// slot with a single operand byte.
const maxLocals = 256

// local is one resolved block-scoped variable. depth is uninitialized
// while its initializer is still being compiled, so that a local's own
// initializer cannot refer to itself (e.g. `var a = a;`).
type local struct {
	name  token.Token
	depth int
}

const depthUninitialized = -1

// compiler holds all single-pass compilation state: the one-token
// lookahead over the scanner, the chunk being emitted into, and the
// locals stack used to resolve names to either a stack slot or a global.
type compiler struct {
	scanner *scanner.Scanner
	current token.Token
	prev    token.Token

	chunk   *bytecode.Chunk
	strings *strtable.Table

	locals     []local
	scopeDepth int

	errs      *CompileError
	panicMode bool
}

// Compile scans and compiles source into a bytecode.Chunk. strings is the
// interning table shared with the VM, used for string literal constants
// and global variable names alike. When it returns a non-nil
// *CompileError, the returned chunk is nil.
func Compile(source string, strings *strtable.Table) (*bytecode.Chunk, *CompileError) {
	c := &compiler{
		scanner: scanner.New(source),
		chunk:   &bytecode.Chunk{},
		strings: strings,
		errs:    &CompileError{},
	}
	c.advance()
	for !c.match(token.EOF) {
		c.declaration()
	}
	c.consume(token.EOF, "Expect end of expression.")
	c.emitOp(bytecode.OpReturn)

	if len(c.errs.Errors) > 0 {
		return nil, c.errs
	}
	return c.chunk, nil
}

// --- token stream -----------------------------------------------------

func (c *compiler) advance() {
	c.prev = c.current
	for {
		c.current = c.scanner.Token()
		if c.current.Kind != token.ILLEGAL {
			break
		}
		c.errorAtCurrent(c.current.Lexeme)
	}
}

func (c *compiler) check(k token.Kind) bool { return c.current.Kind == k }

func (c *compiler) match(k token.Kind) bool {
	if !c.check(k) {
		return false
	}
	c.advance()
	return true
}

func (c *compiler) consume(k token.Kind, message string) {
	if c.current.Kind == k {
		c.advance()
		return
	}
	c.errorAtCurrent(message)
}

// --- error reporting ----------------------------------------------------

func (c *compiler) errorAtCurrent(message string) { c.errorAt(c.current, message) }
func (c *compiler) error(message string)          { c.errorAt(c.prev, message) }

func (c *compiler) errorAt(tok token.Token, message string) {
	if c.panicMode {
		return
	}
	c.panicMode = true

	where := ""
	switch tok.Kind {
	case token.EOF:
		where = " at end"
	case token.ILLEGAL:
		// nothing, the lexeme already carries the detail
	default:
		where = " at '" + tok.Lexeme + "'"
	}
	c.errs.add(tok.Line, where, message)
}

// synchronize discards tokens until it reaches a likely statement
// boundary, so one syntax error does not cascade into a flood of
// spurious follow-on errors.
func (c *compiler) synchronize() {
	c.panicMode = false

	for c.current.Kind != token.EOF {
		if c.prev.Kind == token.SEMI {
			return
		}
		switch c.current.Kind {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF,
			token.WHILE, token.PRINT, token.RETURN:
			return
		}
		c.advance()
	}
}

// --- emission helpers ----------------------------------------------------

func (c *compiler) emitByte(b byte)       { c.chunk.Write(b, c.prev.Line) }
func (c *compiler) emitOp(op bytecode.Op) { c.chunk.WriteOp(op, c.prev.Line) }

func (c *compiler) emitOpByte(op bytecode.Op, b byte) {
	c.emitOp(op)
	c.emitByte(b)
}

func (c *compiler) emitConstant(v value.Value) {
	idx, err := c.chunk.AddConstant(v)
	if err != nil {
		c.error(err.Error())
		return
	}
	c.emitOpByte(bytecode.OpConstant, idx)
}

// emitJump emits op followed by a two-byte placeholder offset and returns
// the placeholder's position, to be patched once the jump target is known.
func (c *compiler) emitJump(op bytecode.Op) int {
	c.emitOp(op)
	c.emitByte(0xff)
	c.emitByte(0xff)
	return len(c.chunk.Code) - 2
}

// patchJump backfills the jump at offset with the distance from just past
// its operand to the current end of the chunk.
func (c *compiler) patchJump(offset int) {
	jump := len(c.chunk.Code) - (offset + 2)
	if jump > 0xffff {
		c.error("Too much code to jump over.")
		return
	}
	c.chunk.Code[offset] = byte(jump >> 8)
	c.chunk.Code[offset+1] = byte(jump & 0xff)
}

// emitLoop emits OpLoop with a back-jump to loopStart.
func (c *compiler) emitLoop(loopStart int) {
	c.emitOp(bytecode.OpLoop)
	offset := len(c.chunk.Code) - loopStart + 2
	if offset > 0xffff {
		c.error("Loop body too large.")
		return
	}
	c.emitByte(byte(offset >> 8))
	c.emitByte(byte(offset & 0xff))
}
