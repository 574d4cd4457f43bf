package interpreter

import (
	"fmt"
	"math"
	"strconv"
)

// RobotState is a snapshot of everything the washer knows about itself.
// Angle is in degrees and always within [0, 360).
type RobotState struct {
	X, Y     float64
	Angle    float64
	Mode     CleaningMode
	Cleaning bool
}

// Robot is the washer state machine. It is changed only by executing
// commands, and reports every change to its sink.
type Robot struct {
	state RobotState
	sink  Sink
}

// NewRobot returns a robot at the origin facing 0 degrees in water mode,
// not cleaning. A nil sink discards messages.
func NewRobot(sink Sink) *Robot {
	if sink == nil {
		sink = Discard
	}
	return &Robot{sink: sink}
}

func (r *Robot) State() RobotState {
	return r.state
}

func (r *Robot) Move(distance float64) {
	rad := r.state.Angle * math.Pi / 180
	r.state.X += distance * math.Cos(rad)
	r.state.Y += distance * math.Sin(rad)
	r.sink.Emit(fmt.Sprintf("POS %s, %s", formatValue(r.state.X), formatValue(r.state.Y)))
}

func (r *Robot) Turn(angle float64) {
	r.state.Angle = normalizeAngle(r.state.Angle + angle)
	r.sink.Emit("ANGLE " + formatValue(r.state.Angle))
}

func (r *Robot) SetMode(mode CleaningMode) {
	r.state.Mode = mode
	r.sink.Emit("STATE " + mode.String())
}

func (r *Robot) Start() {
	r.state.Cleaning = true
	r.sink.Emit("START WITH " + r.state.Mode.String())
}

func (r *Robot) Stop() {
	r.state.Cleaning = false
	r.sink.Emit("STOP")
}

func (r *Robot) String() string {
	return fmt.Sprintf("(%s,%s) %s° %s cleaning=%t",
		formatValue(r.state.X), formatValue(r.state.Y), formatValue(r.state.Angle),
		r.state.Mode, r.state.Cleaning)
}

// normalizeAngle folds a into [0, 360) with a floored modulo.
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -1e-14 + 360 rounds up to 360
	if a >= 360 {
		a = 0
	}
	return a
}

// formatValue renders v with two decimals, never as "-0.00".
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}
