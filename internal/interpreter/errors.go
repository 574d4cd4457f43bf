package interpreter

import (
	"errors"
	"fmt"
)

// Error kinds reported while turning a line into a Command. Every one of
// them is fatal to the run that hit it.
var (
	ErrEmptyCommand       = errors.New("empty command")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrUnexpectedArgument = errors.New("unexpected argument")
	ErrMissingArgument    = errors.New("missing argument")
	ErrTooManyArguments   = errors.New("too many arguments")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrInvalidMode        = errors.New("invalid mode")

	// ErrAlreadyRun is returned by Run on an interpreter that has already
	// been used. An Interpreter drives exactly one run.
	ErrAlreadyRun = errors.New("interpreter already run")
)

// LineError ties an error to the program line that caused it.
// Index is 1-based.
type LineError struct {
	Index int
	Line  string
	Err   error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Index, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
