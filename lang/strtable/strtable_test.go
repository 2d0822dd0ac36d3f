package strtable_test

import (
	"testing"

	"github.com/loxlang/lox/lang/strtable"
	"github.com/stretchr/testify/require"
)

func TestInternReturnsSamePointerForEqualStrings(t *testing.T) {
	table := strtable.New()
	a := table.Intern("hello")
	b := table.Intern("hello")
	require.Same(t, a, b)
	require.Equal(t, 1, table.Len())
}

func TestInternDistinguishesDistinctStrings(t *testing.T) {
	table := strtable.New()
	a := table.Intern("hello")
	b := table.Intern("world")
	require.NotSame(t, a, b)
	require.Equal(t, 2, table.Len())
}
