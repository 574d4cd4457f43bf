package interpreter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

var decimalNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseSemantics turns a shape-checked line into a typed Command. This is
// the only place argument values are validated.
func ParseSemantics(p ParsedLine) (Command, error) {
	switch p.Name {
	case "start":
		return Start{}, nil
	case "stop":
		return Stop{}, nil
	}

	if p.Arg == nil {
		return nil, fmt.Errorf("%w: %s expects exactly 1 argument", ErrMissingArgument, p.Name)
	}
	arg := *p.Arg

	switch p.Name {
	case "move":
		d, err := parseNumber(p.Name, arg)
		if err != nil {
			return nil, err
		}
		return Move{Distance: d}, nil
	case "turn":
		a, err := parseNumber(p.Name, arg)
		if err != nil {
			return nil, err
		}
		return Turn{Angle: a}, nil
	case "set":
		m, err := ParseCleaningMode(arg)
		if err != nil {
			return nil, err
		}
		return SetMode{Mode: m}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownCommand, p.Name)
}

// parseNumber accepts signed decimal and exponent notation only. Hex
// floats, infinities, NaN and values out of float64 range are rejected.
func parseNumber(name, raw string) (float64, error) {
	if !decimalNumber.MatchString(raw) {
		return 0, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidNumber, name, raw)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidNumber, name, raw)
	}
	return v, nil
}

// ParseCommand runs a single line through the lexer and both parsers.
func ParseCommand(line string) (Command, error) {
	tokens, err := Lex(line)
	if err != nil {
		return nil, err
	}
	parsed, err := ParseSyntax(tokens)
	if err != nil {
		return nil, err
	}
	return ParseSemantics(parsed)
}
