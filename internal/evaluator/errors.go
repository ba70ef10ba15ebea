package evaluator

import (
	"fmt"

	"github.com/kievzenit/konsol/internal/lexer"
)

type UndefinedVariableError struct {
	Name  string
	Token *lexer.Token
}

func (e *UndefinedVariableError) GetMessage() string {
	return fmt.Sprintf("undefined variable: '%s'", e.Name)
}

func (e *UndefinedVariableError) GetLine() int   { return tokenLine(e.Token) }
func (e *UndefinedVariableError) GetColumn() int { return tokenColumn(e.Token) }
func (e *UndefinedVariableError) Error() string  { return e.GetMessage() }

// NumericFormatError is raised when a NUMBER literal does not fit an int64.
type NumericFormatError struct {
	Text  string
	Token *lexer.Token
	Err   error
}

func (e *NumericFormatError) GetMessage() string {
	return fmt.Sprintf("invalid integer literal: '%s'", e.Text)
}

func (e *NumericFormatError) GetLine() int   { return tokenLine(e.Token) }
func (e *NumericFormatError) GetColumn() int { return tokenColumn(e.Token) }
func (e *NumericFormatError) Error() string  { return e.GetMessage() }
func (e *NumericFormatError) Unwrap() error  { return e.Err }

func tokenLine(t *lexer.Token) int {
	if t == nil {
		return 0
	}
	return t.Metadata.Line
}

func tokenColumn(t *lexer.Token) int {
	if t == nil {
		return 0
	}
	return t.Metadata.Column
}
