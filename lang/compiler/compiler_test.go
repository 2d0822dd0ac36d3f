package compiler_test

import (
	"bytes"
	"testing"

	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/compiler"
	"github.com/loxlang/lox/lang/strtable"
	"github.com/stretchr/testify/require"
)

func compile(t *testing.T, source string) *bytecode.Chunk {
	t.Helper()
	chunk, err := compiler.Compile(source, strtable.New())
	require.Nil(t, err, "unexpected compile error: %v", err)
	require.NotNil(t, chunk)
	return chunk
}

func TestCompileArithmeticPrecedence(t *testing.T) {
	chunk := compile(t, "print 1 + 2 * 3;")
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	out := buf.String()
	require.Contains(t, out, "OP_CONSTANT")
	require.Contains(t, out, "OP_MULTIPLY")
	require.Contains(t, out, "OP_ADD")
	require.Contains(t, out, "OP_PRINT")
}

func TestCompileGlobalVariable(t *testing.T) {
	chunk := compile(t, "var a = 1; print a;")
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	out := buf.String()
	require.Contains(t, out, "OP_DEFINE_GLOBAL")
	require.Contains(t, out, "OP_GET_GLOBAL")
}

func TestCompileLocalVariableUsesSlotNotConstant(t *testing.T) {
	chunk := compile(t, "{ var a = 1; print a; }")
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	out := buf.String()
	require.Contains(t, out, "OP_GET_LOCAL")
	require.NotContains(t, out, "OP_DEFINE_GLOBAL")
}

func TestCompileIfElseEmitsJumps(t *testing.T) {
	chunk := compile(t, `if (true) { print 1; } else { print 2; }`)
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	out := buf.String()
	require.Contains(t, out, "OP_JUMP_IF_FALSE")
	require.Contains(t, out, "OP_JUMP ")
}

func TestCompileWhileEmitsLoop(t *testing.T) {
	chunk := compile(t, `var i = 0; while (i < 3) { i = i + 1; }`)
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	require.Contains(t, buf.String(), "OP_LOOP")
}

func TestCompileForDesugarsToLoop(t *testing.T) {
	chunk := compile(t, `for (var i = 0; i < 3; i = i + 1) { print i; }`)
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	require.Contains(t, buf.String(), "OP_LOOP")
}

func TestCompileAndOrShortCircuit(t *testing.T) {
	chunk := compile(t, `print true and false; print true or false;`)
	var buf bytes.Buffer
	bytecode.Disassemble(&buf, chunk, "test")
	require.Contains(t, buf.String(), "OP_JUMP_IF_FALSE")
}

func TestCompileReportsSyntaxError(t *testing.T) {
	_, err := compiler.Compile("var ;", strtable.New())
	require.NotNil(t, err)
	require.NotEmpty(t, err.Errors)
}

func TestCompileRejectsSelfReferentialInitializer(t *testing.T) {
	_, err := compiler.Compile("{ var a = a; }", strtable.New())
	require.NotNil(t, err)
}

func TestCompileRejectsRedeclarationInSameScope(t *testing.T) {
	_, err := compiler.Compile("{ var a = 1; var a = 2; }", strtable.New())
	require.NotNil(t, err)
}

func TestCompileAllowsShadowingInNestedScope(t *testing.T) {
	_, err := compiler.Compile("{ var a = 1; { var a = 2; } }", strtable.New())
	require.Nil(t, err)
}

func TestCompileRejectsInvalidAssignmentTarget(t *testing.T) {
	_, err := compiler.Compile("1 + 2 = 3;", strtable.New())
	require.NotNil(t, err)
}
