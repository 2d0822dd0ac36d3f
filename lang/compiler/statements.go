package compiler

import (
	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/token"
)

// declaration compiles one var-declaration or statement, resynchronizing
// on the next likely statement boundary if it reported an error.
func (c *compiler) declaration() {
	switch {
	case c.match(token.VAR):
		c.varDeclaration()
	default:
		c.statement()
	}
	if c.panicMode {
		c.synchronize()
	}
}

func (c *compiler) varDeclaration() {
	global := c.parseVariable("Expect variable name.")

	if c.match(token.EQ) {
		c.expression()
	} else {
		c.emitOp(bytecode.OpNil)
	}
	c.consume(token.SEMI, "Expect ';' after variable declaration.")
	c.defineVariable(global)
}

func (c *compiler) statement() {
	switch {
	case c.match(token.PRINT):
		c.printStatement()
	case c.match(token.IF):
		c.ifStatement()
	case c.match(token.WHILE):
		c.whileStatement()
	case c.match(token.FOR):
		c.forStatement()
	case c.match(token.LBRACE):
		c.beginScope()
		c.block()
		c.endScope()
	default:
		c.expressionStatement()
	}
}

func (c *compiler) printStatement() {
	c.expression()
	c.consume(token.SEMI, "Expect ';' after value.")
	c.emitOp(bytecode.OpPrint)
}

func (c *compiler) expressionStatement() {
	c.expression()
	c.consume(token.SEMI, "Expect ';' after expression.")
	c.emitOp(bytecode.OpPop)
}

func (c *compiler) block() {
	for !c.check(token.RBRACE) && !c.check(token.EOF) {
		c.declaration()
	}
	c.consume(token.RBRACE, "Expect '}' after block.")
}

func (c *compiler) ifStatement() {
	c.consume(token.LPAREN, "Expect '(' after 'if'.")
	c.expression()
	c.consume(token.RPAREN, "Expect ')' after condition.")

	thenJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitOp(bytecode.OpPop)
	c.statement()

	elseJump := c.emitJump(bytecode.OpJump)
	c.patchJump(thenJump)
	c.emitOp(bytecode.OpPop)

	if c.match(token.ELSE) {
		c.statement()
	}
	c.patchJump(elseJump)
}

func (c *compiler) whileStatement() {
	loopStart := len(c.chunk.Code)
	c.consume(token.LPAREN, "Expect '(' after 'while'.")
	c.expression()
	c.consume(token.RPAREN, "Expect ')' after condition.")

	exitJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitOp(bytecode.OpPop)
	c.statement()
	c.emitLoop(loopStart)

	c.patchJump(exitJump)
	c.emitOp(bytecode.OpPop)
}

// forStatement desugars the C-style for loop into the equivalent
// while-loop bytecode: the initializer runs once outside any loop, the
// condition guards a conditional exit jump, and the increment is spliced
// in between the body and the back-edge via a pair of unconditional jumps.
func (c *compiler) forStatement() {
	c.beginScope()
	c.consume(token.LPAREN, "Expect '(' after 'for'.")

	switch {
	case c.match(token.SEMI):
		// no initializer
	case c.match(token.VAR):
		c.varDeclaration()
	default:
		c.expressionStatement()
	}

	loopStart := len(c.chunk.Code)
	exitJump := -1
	if !c.match(token.SEMI) {
		c.expression()
		c.consume(token.SEMI, "Expect ';' after loop condition.")
		exitJump = c.emitJump(bytecode.OpJumpIfFalse)
		c.emitOp(bytecode.OpPop)
	}

	if !c.match(token.RPAREN) {
		bodyJump := c.emitJump(bytecode.OpJump)
		incrementStart := len(c.chunk.Code)
		c.expression()
		c.emitOp(bytecode.OpPop)
		c.consume(token.RPAREN, "Expect ')' after for clauses.")

		c.emitLoop(loopStart)
		loopStart = incrementStart
		c.patchJump(bodyJump)
	}

	c.statement()
	c.emitLoop(loopStart)

	if exitJump != -1 {
		c.patchJump(exitJump)
		c.emitOp(bytecode.OpPop)
	}
	c.endScope()
}
