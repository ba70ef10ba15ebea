package lexer

import (
	"fmt"
)

type TokenKind int

const (
	NUMBER TokenKind = iota
	VARIABLE

	PLUS   // +
	MINUS  // -
	ASSIGN // =

	LOG // print

	LPAR // (
	RPAR // )

	SEMICOLON // ;
)

func (tk TokenKind) String() string {
	switch tk {
	case NUMBER:
		return "NUMBER"
	case VARIABLE:
		return "VARIABLE"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case ASSIGN:
		return "ASSIGN"
	case LOG:
		return "LOG"
	case LPAR:
		return "LPAR"
	case RPAR:
		return "RPAR"
	case SEMICOLON:
		return "SEMICOLON"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

type Metadata struct {
	Line   int
	Column int
	Length int
}

type Token struct {
	Kind  TokenKind
	Value string

	// Pos is the index of the token within its sequence.
	Pos int

	Metadata Metadata
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case NUMBER, VARIABLE:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Value)
}
