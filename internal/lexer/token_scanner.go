package lexer

type TokenScanner interface {
	Peek() *Token
	Read() *Token
	Unread()
	HasTokens() bool
	Pos() int
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

// Peek returns the token under the cursor without consuming it, or nil once
// the sequence is exhausted.
func (s *SimpleTokenScanner) Peek() *Token {
	if !s.HasTokens() {
		return nil
	}

	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Read() *Token {
	token := s.Peek()
	if token != nil {
		s.pos++
	}

	return token
}

func (s *SimpleTokenScanner) Unread() {
	if s.pos > 0 {
		s.pos--
	}
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}

func (s *SimpleTokenScanner) Pos() int {
	return s.pos
}
