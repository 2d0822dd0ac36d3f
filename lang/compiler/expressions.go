package compiler

import (
	"strconv"

	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/token"
	"github.com/loxlang/lox/lang/value"
)

// precedence orders Lox's binary operators from loosest- to
// tightest-binding; parsePrecedence consumes an infix operator only while
// its rule's precedence is at least the level being parsed.
type precedence int

const (
	precNone       precedence = iota
	precAssignment            // =
	precOr                    // or
	precAnd                   // and
	precEquality              // == !=
	precComparison            // < > <= >=
	precTerm                  // + -
	precFactor                // * /
	precUnary                 // ! -
	precCall                  // . ()
	precPrimary
)

type parseFn func(c *compiler, canAssign bool)

type parseRule struct {
	prefix     parseFn
	infix      parseFn
	precedence precedence
}

var rules [token.NumKinds]parseRule

func init() {
	rules[token.LPAREN] = parseRule{grouping, nil, precNone}
	rules[token.MINUS] = parseRule{unary, binary, precTerm}
	rules[token.PLUS] = parseRule{nil, binary, precTerm}
	rules[token.SLASH] = parseRule{nil, binary, precFactor}
	rules[token.STAR] = parseRule{nil, binary, precFactor}
	rules[token.BANG] = parseRule{unary, nil, precNone}
	rules[token.BANG_EQ] = parseRule{nil, binary, precEquality}
	rules[token.EQ_EQ] = parseRule{nil, binary, precEquality}
	rules[token.GT] = parseRule{nil, binary, precComparison}
	rules[token.GT_EQ] = parseRule{nil, binary, precComparison}
	rules[token.LT] = parseRule{nil, binary, precComparison}
	rules[token.LT_EQ] = parseRule{nil, binary, precComparison}
	rules[token.IDENT] = parseRule{variable, nil, precNone}
	rules[token.STRING] = parseRule{str, nil, precNone}
	rules[token.NUMBER] = parseRule{number, nil, precNone}
	rules[token.FALSE] = parseRule{literal, nil, precNone}
	rules[token.NIL] = parseRule{literal, nil, precNone}
	rules[token.TRUE] = parseRule{literal, nil, precNone}
	rules[token.AND] = parseRule{nil, and_, precAnd}
	rules[token.OR] = parseRule{nil, or_, precOr}
}

func (c *compiler) expression() {
	c.parsePrecedence(precAssignment)
}

func (c *compiler) parsePrecedence(prec precedence) {
	c.advance()
	prefix := rules[c.prev.Kind].prefix
	if prefix == nil {
		c.error("Expect expression.")
		return
	}

	canAssign := prec <= precAssignment
	prefix(c, canAssign)

	for prec <= rules[c.current.Kind].precedence {
		c.advance()
		infix := rules[c.prev.Kind].infix
		infix(c, canAssign)
	}

	if canAssign && c.match(token.EQ) {
		c.error("Invalid assignment target.")
	}
}

func number(c *compiler, _ bool) {
	f, err := strconv.ParseFloat(c.prev.Lexeme, 64)
	if err != nil {
		c.error("Invalid number literal.")
		return
	}
	c.emitConstant(value.Number(f))
}

// str strips the surrounding quotes from the lexeme before interning.
func str(c *compiler, _ bool) {
	lexeme := c.prev.Lexeme
	unquoted := lexeme[1 : len(lexeme)-1]
	c.emitConstant(value.String(c.strings.Intern(unquoted)))
}

func literal(c *compiler, _ bool) {
	switch c.prev.Kind {
	case token.FALSE:
		c.emitOp(bytecode.OpFalse)
	case token.NIL:
		c.emitOp(bytecode.OpNil)
	case token.TRUE:
		c.emitOp(bytecode.OpTrue)
	}
}

func grouping(c *compiler, _ bool) {
	c.expression()
	c.consume(token.RPAREN, "Expect ')' after expression.")
}

func unary(c *compiler, _ bool) {
	op := c.prev.Kind
	c.parsePrecedence(precUnary)
	switch op {
	case token.BANG:
		c.emitOp(bytecode.OpNot)
	case token.MINUS:
		c.emitOp(bytecode.OpNegate)
	}
}

func binary(c *compiler, _ bool) {
	op := c.prev.Kind
	rule := rules[op]
	c.parsePrecedence(rule.precedence + 1)

	switch op {
	case token.BANG_EQ:
		c.emitOp(bytecode.OpEqual)
		c.emitOp(bytecode.OpNot)
	case token.EQ_EQ:
		c.emitOp(bytecode.OpEqual)
	case token.GT:
		c.emitOp(bytecode.OpGreater)
	case token.GT_EQ:
		c.emitOp(bytecode.OpLess)
		c.emitOp(bytecode.OpNot)
	case token.LT:
		c.emitOp(bytecode.OpLess)
	case token.LT_EQ:
		c.emitOp(bytecode.OpGreater)
		c.emitOp(bytecode.OpNot)
	case token.PLUS:
		c.emitOp(bytecode.OpAdd)
	case token.MINUS:
		c.emitOp(bytecode.OpSubtract)
	case token.STAR:
		c.emitOp(bytecode.OpMultiply)
	case token.SLASH:
		c.emitOp(bytecode.OpDivide)
	}
}

// and_ short-circuits: if the LHS is falsey, the jump skips the RHS and
// leaves the LHS (falsey) as the result; otherwise the LHS is popped and
// the RHS becomes the result.
func and_(c *compiler, _ bool) {
	endJump := c.emitJump(bytecode.OpJumpIfFalse)
	c.emitOp(bytecode.OpPop)
	c.parsePrecedence(precAnd)
	c.patchJump(endJump)
}

// or_ short-circuits the other way: a truthy LHS skips the RHS.
func or_(c *compiler, _ bool) {
	elseJump := c.emitJump(bytecode.OpJumpIfFalse)
	endJump := c.emitJump(bytecode.OpJump)

	c.patchJump(elseJump)
	c.emitOp(bytecode.OpPop)
	c.parsePrecedence(precOr)
	c.patchJump(endJump)
}

func variable(c *compiler, canAssign bool) {
	namedVariable(c, c.prev, canAssign)
}

func namedVariable(c *compiler, name token.Token, canAssign bool) {
	var getOp, setOp bytecode.Op
	var arg byte

	if slot := c.resolveLocal(name); slot != -1 {
		arg = byte(slot)
		getOp, setOp = bytecode.OpGetLocal, bytecode.OpSetLocal
	} else {
		arg = c.identifierConstant(name)
		getOp, setOp = bytecode.OpGetGlobal, bytecode.OpSetGlobal
	}

	if canAssign && c.match(token.EQ) {
		c.expression()
		c.emitOpByte(setOp, arg)
	} else {
		c.emitOpByte(getOp, arg)
	}
}
