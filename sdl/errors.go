package sdl

import (
	"errors"
	"fmt"
)

// UnknownCommandError is returned when script uses command which is not
// registered.
type UnknownCommandError struct {
	Command string
	Line    int
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Unknown command '%s' in line %d", e.Command, e.Line)
}

// ArgumentCountError is returned when number of arguments is outside of
// command bounds.
type ArgumentCountError struct {
	Command string
	Line    int
	Got     int
	Min     int
	Max     int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("Incorrect number of arguments in line %d", e.Line)
}

// InvalidArgumentError names argument which failed validation. Err is
// optional underlying parsing error.
type InvalidArgumentError struct {
	Argument string
	Line     int
	Err      error
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("Invalid value for argument [%s] in line %d", e.Argument, e.Line)
}

func (e *InvalidArgumentError) Unwrap() error {
	return e.Err
}

// UnterminatedBlockError is returned when "{" block is not closed before end
// of script. Line is the line where block was opened.
type UnterminatedBlockError struct {
	Line int
}

func (e *UnterminatedBlockError) Error() string {
	return fmt.Sprintf("Missing end bracket for line %d", e.Line)
}

// IsScriptError reports whether err is caused by malformed script rather than
// by environment.
func IsScriptError(err error) bool {
	var (
		uc *UnknownCommandError
		ac *ArgumentCountError
		ia *InvalidArgumentError
		ub *UnterminatedBlockError
	)
	return errors.As(err, &uc) || errors.As(err, &ac) || errors.As(err, &ia) || errors.As(err, &ub)
}

// LineOf returns script line number carried by err or 0.
func LineOf(err error) int {
	var (
		uc *UnknownCommandError
		ac *ArgumentCountError
		ia *InvalidArgumentError
		ub *UnterminatedBlockError
	)
	switch {
	case errors.As(err, &uc):
		return uc.Line
	case errors.As(err, &ac):
		return ac.Line
	case errors.As(err, &ia):
		return ia.Line
	case errors.As(err, &ub):
		return ub.Line
	}
	return 0
}
