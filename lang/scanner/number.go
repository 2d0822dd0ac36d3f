package scanner

import "github.com/loxlang/lox/lang/token"

// number scans NUMBER := digit+ ('.' digit+)?. A trailing '.' not followed
// by a digit is left unconsumed (it starts its own DOT token), matching the
// method-call-on-a-literal ambiguity this grammar otherwise avoids by
// having no first-class numeric methods.
func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	return s.make(token.NUMBER)
}
