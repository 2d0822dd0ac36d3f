package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindStringCoversAllKinds(t *testing.T) {
	for k := Kind(0); k < NumKinds; k++ {
		require.NotEmpty(t, k.String(), "kind %d has no string representation", k)
	}
}

func TestKeywordsRoundTripThroughKindString(t *testing.T) {
	for word, kind := range Keywords {
		require.Equal(t, word, kind.String())
	}
}

func TestTokenStringPrefersLexeme(t *testing.T) {
	tok := Token{Kind: PLUS, Lexeme: "+", Line: 1}
	require.Equal(t, "+", tok.String())

	str := Token{Kind: STRING, Lexeme: `"hello"`, Line: 1}
	require.Equal(t, STRING.String(), str.String())
}
