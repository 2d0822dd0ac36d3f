package bytecode_test

import (
	"testing"

	"github.com/loxlang/lox/lang/bytecode"
	"github.com/loxlang/lox/lang/strtable"
	"github.com/loxlang/lox/lang/value"
	"github.com/stretchr/testify/require"
)

func TestAddConstantIndexesSequentially(t *testing.T) {
	c := &bytecode.Chunk{}
	i0, err := c.AddConstant(value.Number(1))
	require.NoError(t, err)
	require.Equal(t, byte(0), i0)

	i1, err := c.AddConstant(value.Number(2))
	require.NoError(t, err)
	require.Equal(t, byte(1), i1)
}

func TestAddConstantRejectsOverflow(t *testing.T) {
	c := &bytecode.Chunk{}
	for i := 0; i < 256; i++ {
		_, err := c.AddConstant(value.Number(float64(i)))
		require.NoError(t, err)
	}
	_, err := c.AddConstant(value.Number(256))
	require.Error(t, err)
}

func TestWriteTracksLinesParallelToCode(t *testing.T) {
	c := &bytecode.Chunk{}
	c.WriteOp(bytecode.OpNil, 1)
	c.WriteOp(bytecode.OpTrue, 2)
	require.Equal(t, []int{1, 2}, c.Lines)
	require.Len(t, c.Code, 2)
}

func TestInternedStringConstantRoundTrips(t *testing.T) {
	table := strtable.New()
	c := &bytecode.Chunk{}
	idx, err := c.AddConstant(value.String(table.Intern("hi")))
	require.NoError(t, err)
	require.Equal(t, "hi", c.Constants[idx].String())
}
