package interpreter

import (
	"fmt"
	"strings"
)

// CleaningMode is the substance the washer cleans with.
type CleaningMode int

const (
	Water CleaningMode = iota
	Soap
	Brush
)

func (m CleaningMode) String() string {
	switch m {
	case Water:
		return "water"
	case Soap:
		return "soap"
	case Brush:
		return "brush"
	default:
		return fmt.Sprintf("CleaningMode(%d)", int(m))
	}
}

// ParseCleaningMode matches s case-insensitively against the known modes.
func ParseCleaningMode(s string) (CleaningMode, error) {
	switch strings.ToLower(s) {
	case "water":
		return Water, nil
	case "soap":
		return Soap, nil
	case "brush":
		return Brush, nil
	default:
		return 0, fmt.Errorf("%w %q: want water, soap or brush", ErrInvalidMode, s)
	}
}
