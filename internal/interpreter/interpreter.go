package interpreter

import (
	"fmt"
	"log/slog"
)

// RunState tracks where an Interpreter is in its single run.
type RunState int

const (
	Ready RunState = iota
	Running
	Finished
	Failed
)

func (s RunState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Finished:
		return "finished"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Interpreter owns one Robot and drives a program through it, line by
// line: lex, syntax, semantics, execute.
type Interpreter struct {
	robot    *Robot
	state    RunState
	executed int
	logger   *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger traces every executed line at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Interpreter) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// New returns a Ready interpreter holding a fresh Robot that reports to
// sink.
func New(sink Sink, opts ...Option) *Interpreter {
	in := &Interpreter{
		robot:  NewRobot(sink),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(in)
		}
	}
	return in
}

func (in *Interpreter) State() RunState { return in.state }

// Robot returns a snapshot of the robot's current state.
func (in *Interpreter) Robot() RobotState { return in.robot.State() }

// Executed reports how many commands have been applied to the robot.
func (in *Interpreter) Executed() int { return in.executed }

// Run executes lines in order and stops at the first line that fails to
// parse. Changes made by earlier lines are kept. The returned error is a
// *LineError for any line failure.
func (in *Interpreter) Run(lines []string) error {
	if in.state != Ready {
		return fmt.Errorf("%w (state %s)", ErrAlreadyRun, in.state)
	}
	in.state = Running

	for i, line := range lines {
		cmd, err := ParseCommand(line)
		if err == nil {
			err = Execute(cmd, in.robot)
		}
		if err != nil {
			in.state = Failed
			return &LineError{Index: i + 1, Line: line, Err: err}
		}
		in.executed++
		in.logger.Debug("executed", "line", i+1, "command", cmd.String(), "robot", in.robot)
	}

	in.state = Finished
	return nil
}

// Check parses every line without executing anything and returns the first
// failure as a *LineError.
func Check(lines []string) error {
	for i, line := range lines {
		if _, err := ParseCommand(line); err != nil {
			return &LineError{Index: i + 1, Line: line, Err: err}
		}
	}
	return nil
}
