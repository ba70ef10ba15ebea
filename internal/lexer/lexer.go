package lexer

import (
	"fmt"
	"unicode"
)

type LexerError struct {
	Message string

	Line   int
	Column int
}

func newUnexpectedError(unexpected rune, line, column int) *LexerError {
	return &LexerError{
		Message: fmt.Sprintf("unexpected character: '%s'", string(unexpected)),
		Line:    line,
		Column:  column,
	}
}

func (e *LexerError) GetMessage() string { return e.Message }
func (e *LexerError) GetLine() int       { return e.Line }
func (e *LexerError) GetColumn() int     { return e.Column }

func (e *LexerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

type Lexer struct {
	buf []rune
	pos int

	line, col int

	dialect Dialect
	tokens  []Token
}

func NewLexer(buf []byte, dialect Dialect) *Lexer {
	if dialect.Keywords == nil {
		dialect = ASCII
	}

	return &Lexer{
		buf: []rune(string(buf)),
		pos: 0,

		line: 1,
		col:  1,

		dialect: dialect,
	}
}

// Tokenize scans the whole buffer. The returned sequence carries no EOF
// marker; the end of the slice is the end of the program.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.tokens = make([]Token, 0)

	for l.hasChars() {
		switch {
		case l.isCurrSkippable():
			if l.isCurrNewline() {
				l.line++
				l.col = 1
			} else {
				l.col++
			}
			l.advance()

		case l.isCurrDigit():
			l.processNumber()

		case l.isCurrIdentifierStart():
			l.processIdentifier()

		case l.isCurrPunctuation():
			l.processPunctuation()

		default:
			return nil, newUnexpectedError(l.read(), l.line, l.col)
		}
	}

	return l.tokens, nil
}

func (l *Lexer) isCurrIdentifierStart() bool {
	return unicode.IsLetter(l.read()) || l.read() == '_'
}

func (l *Lexer) isCurrIdentifierPart() bool {
	return l.isCurrIdentifierStart() || unicode.IsDigit(l.read())
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrPunctuation() bool {
	switch l.read() {
	case '+', '-', '=', '(', ')', ';':
		return true
	}
	return false
}

func (l *Lexer) isCurrNewline() bool {
	return l.read() == '\n'
}

func (l *Lexer) isCurrSkippable() bool {
	switch l.read() {
	case ' ', '\t', '\n', '\r':
		return true
	}

	return false
}

func (l *Lexer) processIdentifier() {
	start := l.pos
	for l.hasChars() && l.isCurrIdentifierPart() {
		l.advance()
	}
	identifier := string(l.buf[start:l.pos])

	if kind, ok := l.dialect.keyword(identifier); ok {
		l.emit(kind, identifier)
		return
	}

	l.emit(VARIABLE, identifier)
}

func (l *Lexer) processNumber() {
	start := l.pos
	for l.hasChars() && l.isCurrDigit() {
		l.advance()
	}

	l.emit(NUMBER, string(l.buf[start:l.pos]))
}

func (l *Lexer) processPunctuation() {
	var kind TokenKind
	switch l.read() {
	case '+':
		kind = PLUS
	case '-':
		kind = MINUS
	case '=':
		kind = ASSIGN
	case '(':
		kind = LPAR
	case ')':
		kind = RPAR
	case ';':
		kind = SEMICOLON
	}

	value := string(l.read())
	l.advance()
	l.emit(kind, value)
}

// emit appends a token whose text ends at the current position.
func (l *Lexer) emit(kind TokenKind, value string) {
	length := len([]rune(value))

	l.tokens = append(l.tokens, Token{
		Kind:  kind,
		Value: value,
		Pos:   len(l.tokens),

		Metadata: Metadata{
			Line:   l.line,
			Column: l.col,
			Length: length,
		},
	})

	l.col += length
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) read() rune { return l.buf[l.pos] }
