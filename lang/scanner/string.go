package scanner

import "github.com/loxlang/lox/lang/token"

// string scans a STRING token. The opening '"' has already been consumed.
// Strings may span multiple lines; there are no escape sequences, and the
// lexeme (quotes included) is handed to the compiler to strip and intern.
func (s *Scanner) string() token.Token {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		return s.errorToken("Unterminated string.")
	}

	s.advance() // the closing quote
	return s.make(token.STRING)
}
