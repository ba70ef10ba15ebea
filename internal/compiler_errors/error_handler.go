package compiler_errors

import (
	"fmt"
	"io"
	"os"
)

type CompilerError interface {
	GetMessage() string
}

// PositionedError is a CompilerError that knows where in the source it
// occurred. A line of 0 means the position is unknown.
type PositionedError interface {
	CompilerError
	GetLine() int
	GetColumn() int
}

type ErrorHandler interface {
	AddError(err CompilerError)
	HasErrors() bool
	Report() int
	FailNow()
}

var _ ErrorHandler = (*CompilerErrorHandler)(nil)

type CompilerErrorHandler struct {
	errors []CompilerError
	writer io.Writer

	exit func(code int)
}

func NewErrorHandler(outputWriter io.Writer) *CompilerErrorHandler {
	return &CompilerErrorHandler{
		errors: make([]CompilerError, 0),
		writer: outputWriter,

		exit: os.Exit,
	}
}

// SetExit replaces the function FailNow terminates with.
func (eh *CompilerErrorHandler) SetExit(exit func(code int)) {
	eh.exit = exit
}

func (eh *CompilerErrorHandler) AddError(err CompilerError) {
	eh.errors = append(eh.errors, err)
}

func (eh *CompilerErrorHandler) HasErrors() bool {
	return len(eh.errors) > 0
}

// Report writes every collected error and returns the exit status for it.
func (eh *CompilerErrorHandler) Report() int {
	if !eh.HasErrors() {
		return 0
	}

	fmt.Fprintln(eh.writer, "Run failed with errors:")

	for _, err := range eh.errors {
		if p, ok := err.(PositionedError); ok && p.GetLine() > 0 {
			fmt.Fprintf(eh.writer, "ERROR: %d:%d: %s\n", p.GetLine(), p.GetColumn(), err.GetMessage())
			continue
		}
		fmt.Fprintf(eh.writer, "ERROR: %s\n", err.GetMessage())
	}

	return 1
}

func (eh *CompilerErrorHandler) FailNow() {
	eh.exit(eh.Report())
}

type wrappedError struct {
	err error
}

func (w *wrappedError) GetMessage() string { return w.err.Error() }

// FromError adapts err so it can be added to an ErrorHandler. Errors that
// already implement CompilerError are returned unchanged.
func FromError(err error) CompilerError {
	if ce, ok := err.(CompilerError); ok {
		return ce
	}
	return &wrappedError{err: err}
}
