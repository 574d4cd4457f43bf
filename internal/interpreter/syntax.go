package interpreter

import (
	"fmt"
	"strings"
)

// ParsedLine is a line whose shape has been checked but whose argument has
// not been interpreted yet. Name is lower-case; Arg is nil exactly for the
// commands that take no argument.
type ParsedLine struct {
	Name string
	Arg  *string
}

// arity of every known command
var commandArgs = map[string]int{
	"move":  1,
	"turn":  1,
	"set":   1,
	"start": 0,
	"stop":  0,
}

// ParseSyntax checks the token count against the command named by the first
// token. Argument values are left alone.
func ParseSyntax(tokens []string) (ParsedLine, error) {
	if len(tokens) == 0 {
		return ParsedLine{}, ErrEmptyCommand
	}
	name := strings.ToLower(tokens[0])
	want, ok := commandArgs[name]
	if !ok {
		return ParsedLine{}, fmt.Errorf("%w %q", ErrUnknownCommand, tokens[0])
	}
	got := len(tokens) - 1

	if want == 0 {
		if got != 0 {
			return ParsedLine{}, fmt.Errorf("%w: %s takes no arguments, got %d", ErrUnexpectedArgument, name, got)
		}
		return ParsedLine{Name: name}, nil
	}

	switch {
	case got == 0:
		return ParsedLine{}, fmt.Errorf("%w: %s expects exactly 1 argument", ErrMissingArgument, name)
	case got > 1:
		return ParsedLine{}, fmt.Errorf("%w: %s expects exactly 1 argument, got %d", ErrTooManyArguments, name, got)
	}
	arg := tokens[1]
	return ParsedLine{Name: name, Arg: &arg}, nil
}
