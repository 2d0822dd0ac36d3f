package compiler

import (
	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/token"
	"github.com/loxlang/lox/lang/value"
	"golang.org/x/exp/slices"
)

// parseVariable consumes an identifier, declares it as a local if inside
// a scope, and otherwise returns the constant-pool index of its name for
// a later OpDefineGlobal/OpGetGlobal/OpSetGlobal.
func (c *compiler) parseVariable(errMessage string) byte {
	c.consume(token.IDENT, errMessage)

	c.declareLocal()
	if c.scopeDepth > 0 {
		return 0 // locals are resolved by stack slot, not by constant index
	}
	return c.identifierConstant(c.prev)
}

func (c *compiler) identifierConstant(name token.Token) byte {
	idx, err := c.chunk.AddConstant(value.String(c.strings.Intern(name.Lexeme)))
	if err != nil {
		c.error(err.Error())
		return 0
	}
	return idx
}

// declareLocal adds the just-consumed identifier to the locals stack,
// rejecting a redeclaration of the same name within the current scope
// (shadowing an outer scope's variable is fine).
func (c *compiler) declareLocal() {
	if c.scopeDepth == 0 {
		return
	}
	name := c.prev

	shadowed := slices.IndexFunc(c.locals, func(l local) bool {
		return l.depth != depthUninitialized && l.depth >= c.scopeDepth && l.name.Lexeme == name.Lexeme
	})
	if shadowed != -1 {
		c.error("Already a variable with this name in this scope.")
		return
	}
	c.addLocal(name)
}

func (c *compiler) addLocal(name token.Token) {
	if len(c.locals) >= maxLocals {
		c.error("Too many local variables in function.")
		return
	}
	c.locals = append(c.locals, local{name: name, depth: depthUninitialized})
}

// defineVariable marks the most recently declared local as initialized,
// or emits OpDefineGlobal for a top-level/block-top global.
func (c *compiler) defineVariable(global byte) {
	if c.scopeDepth > 0 {
		c.markInitialized()
		return
	}
	c.emitOpByte(bytecode.OpDefineGlobal, global)
}

func (c *compiler) markInitialized() {
	if c.scopeDepth == 0 || len(c.locals) == 0 {
		return
	}
	c.locals[len(c.locals)-1].depth = c.scopeDepth
}

// resolveLocal searches the locals stack innermost-scope-first, returning
// the slot index or -1 if name is not a local (and so must be a global).
func (c *compiler) resolveLocal(name token.Token) int {
	for i := len(c.locals) - 1; i >= 0; i-- {
		if c.locals[i].name.Lexeme == name.Lexeme {
			if c.locals[i].depth == depthUninitialized {
				c.error("Can't read local variable in its own initializer.")
			}
			return i
		}
	}
	return -1
}

func (c *compiler) beginScope() { c.scopeDepth++ }

// endScope pops every local declared in the scope being left, emitting an
// OpPop for each so the VM's stack matches the compiler's static view of
// it.
func (c *compiler) endScope() {
	c.scopeDepth--
	for len(c.locals) > 0 && c.locals[len(c.locals)-1].depth > c.scopeDepth {
		c.emitOp(bytecode.OpPop)
		c.locals = c.locals[:len(c.locals)-1]
	}
}
