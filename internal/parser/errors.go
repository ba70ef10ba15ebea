package parser

import (
	"fmt"
	"strings"

	"github.com/kievzenit/konsol/internal/lexer"
)

// ParseError reports that the token under the cursor was not one of the
// expected kinds. Found is nil when the token sequence ran out.
type ParseError struct {
	Pos      int
	Expected []lexer.TokenKind
	Found    *lexer.Token
}

func (e *ParseError) GetMessage() string {
	unexpected := "end of input"
	if e.Found != nil {
		unexpected = fmt.Sprintf("token: '%s'", e.Found.Kind)
	}

	if len(e.Expected) == 1 {
		return fmt.Sprintf("unexpected %s, expected: '%s'", unexpected, e.Expected[0])
	}

	expectedKinds := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		expectedKinds[i] = kind.String()
	}
	return fmt.Sprintf("unexpected %s, expected one of: '%s'", unexpected, strings.Join(expectedKinds, "', '"))
}

func (e *ParseError) GetLine() int {
	if e.Found == nil {
		return 0
	}
	return e.Found.Metadata.Line
}

func (e *ParseError) GetColumn() int {
	if e.Found == nil {
		return 0
	}
	return e.Found.Metadata.Column
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("position %d: %s", e.Pos, e.GetMessage())
}
