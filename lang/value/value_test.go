package value_test

import (
	"math"
	"testing"

	"github.com/loxlang/lox/lang/strtable"
	"github.com/loxlang/lox/lang/value"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	require.False(t, value.Nil.Truthy())
	require.False(t, value.Bool(false).Truthy())
	require.True(t, value.Bool(true).Truthy())
	require.True(t, value.Number(0).Truthy())
	require.True(t, value.Number(1).Truthy())

	table := strtable.New()
	require.True(t, value.String(table.Intern("")).Truthy())
}

func TestEqualsIsCaseByCase(t *testing.T) {
	require.True(t, value.Nil.Equals(value.Nil))
	require.False(t, value.Nil.Equals(value.Bool(false)))
	require.True(t, value.Bool(true).Equals(value.Bool(true)))
	require.False(t, value.Bool(true).Equals(value.Bool(false)))
	require.True(t, value.Number(1).Equals(value.Number(1)))
	require.False(t, value.Number(1).Equals(value.Number(2)))

	nan := value.Number(math.NaN())
	require.False(t, nan.Equals(nan))

	table := strtable.New()
	a := value.String(table.Intern("x"))
	b := value.String(table.Intern("x"))
	require.True(t, a.Equals(b))
}

func TestStringFormatsShortestRoundTrip(t *testing.T) {
	require.Equal(t, "3", value.Number(3).String())
	require.Equal(t, "3.5", value.Number(3.5).String())
	require.Equal(t, "nil", value.Nil.String())
	require.Equal(t, "true", value.Bool(true).String())
	require.Equal(t, "false", value.Bool(false).String())
}
