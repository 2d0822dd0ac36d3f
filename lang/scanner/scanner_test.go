package scanner_test

import (
	"testing"

	"github.com/loxlang/lox/lang/scanner"
	"github.com/loxlang/lox/lang/token"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, source string) []token.Token {
	t.Helper()
	s := scanner.New(source)
	var toks []token.Token
	for {
		tok := s.Token()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks := scanAll(t, "(){};,.+-*/! != = == < <= > >=")
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Equal(t, []token.Kind{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.SEMI,
		token.COMMA, token.DOT, token.PLUS, token.MINUS, token.STAR, token.SLASH,
		token.BANG, token.BANG_EQ, token.EQ, token.EQ_EQ, token.LT, token.LT_EQ,
		token.GT, token.GT_EQ, token.EOF,
	}, kinds)
}

func TestScanKeywordsVsIdentifiers(t *testing.T) {
	toks := scanAll(t, "var print x print2")
	require.Equal(t, token.VAR, toks[0].Kind)
	require.Equal(t, token.PRINT, toks[1].Kind)
	require.Equal(t, token.IDENT, toks[2].Kind)
	require.Equal(t, token.IDENT, toks[3].Kind)
	require.Equal(t, "print2", toks[3].Lexeme)
}

func TestScanNumbers(t *testing.T) {
	toks := scanAll(t, "123 1.5 1.")
	require.Equal(t, "123", toks[0].Lexeme)
	require.Equal(t, "1.5", toks[1].Lexeme)
	// A trailing '.' with no following digit is not consumed as part of the
	// number: "1" then a separate DOT token.
	require.Equal(t, "1", toks[2].Lexeme)
	require.Equal(t, token.DOT, toks[3].Kind)
}

func TestScanStrings(t *testing.T) {
	toks := scanAll(t, "\"hello\" \"multi\nline\"")
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, `"hello"`, toks[0].Lexeme)
	require.Equal(t, token.STRING, toks[1].Kind)
	require.Equal(t, 1, toks[0].Line)
	require.Equal(t, 2, toks[1].Line)
}

func TestScanUnterminatedString(t *testing.T) {
	toks := scanAll(t, `"oops`)
	require.Equal(t, token.ILLEGAL, toks[0].Kind)
	require.Equal(t, "Unterminated string.", toks[0].Lexeme)
}

func TestScanLineComments(t *testing.T) {
	toks := scanAll(t, "// a whole line\nvar")
	require.Equal(t, token.VAR, toks[0].Kind)
	require.Equal(t, 2, toks[0].Line)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	toks := scanAll(t, "@")
	require.Equal(t, token.ILLEGAL, toks[0].Kind)
	require.Equal(t, "Unexpected character.", toks[0].Lexeme)
}

func TestScanReturnsEOFIndefinitely(t *testing.T) {
	s := scanner.New("")
	require.Equal(t, token.EOF, s.Token().Kind)
	require.Equal(t, token.EOF, s.Token().Kind)
}

func TestLoneSlashIsSlashToken(t *testing.T) {
	toks := scanAll(t, "/")
	require.Equal(t, token.SLASH, toks[0].Kind)
}
