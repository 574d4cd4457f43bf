package interpreter

import (
	"fmt"
	"strconv"
)

// Command is one of Move, Turn, SetMode, Start or Stop. The set is closed:
// nothing outside this package can add a variant.
type Command interface {
	fmt.Stringer
	command()
}

type Move struct {
	Distance float64
}

type Turn struct {
	Angle float64
}

type SetMode struct {
	Mode CleaningMode
}

type Start struct{}

type Stop struct{}

func (Move) command()    {}
func (Turn) command()    {}
func (SetMode) command() {}
func (Start) command()   {}
func (Stop) command()    {}

func (c Move) String() string    { return "move " + strconv.FormatFloat(c.Distance, 'g', -1, 64) }
func (c Turn) String() string    { return "turn " + strconv.FormatFloat(c.Angle, 'g', -1, 64) }
func (c SetMode) String() string { return "set " + c.Mode.String() }
func (Start) String() string     { return "start" }
func (Stop) String() string      { return "stop" }

// Execute applies cmd to r. Each command touches only its own fields and
// emits exactly one status message.
func Execute(cmd Command, r *Robot) error {
	switch c := cmd.(type) {
	case Move:
		r.Move(c.Distance)
	case Turn:
		r.Turn(c.Angle)
	case SetMode:
		r.SetMode(c.Mode)
	case Start:
		r.Start()
	case Stop:
		r.Stop()
	default:
		return fmt.Errorf("cannot execute %T", cmd)
	}
	return nil
}
