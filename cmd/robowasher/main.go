package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"robowasher/internal/config"
	"robowasher/internal/interpreter"
)

const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		configPath string
		logLevel   string
		logFormat  string
		output     string
		demo       bool
		checkOnly  bool
	)

	flagSet := pflag.NewFlagSet("robowasher", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to YAML config file (default: $"+config.EnvVar+")")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flagSet.StringVarP(&output, "output", "o", "", `where status messages go ("-" for stdout)`)
	flagSet.BoolVar(&demo, "demo", false, "run the built-in demo program")
	flagSet.BoolVar(&checkOnly, "check", false, "validate the program without running it")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := config.Resolve(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "robowasher: %v\n", err)
		return exitUsage
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if logFormat != "" {
		cfg.Log.Format = logFormat
	}
	if output != "" {
		cfg.Output = output
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "robowasher: %v\n", err)
		return exitUsage
	}
	logger, err := cfg.Log.NewLogger(stderr)
	if err != nil {
		fmt.Fprintf(stderr, "robowasher: %v\n", err)
		return exitUsage
	}

	rest := flagSet.Args()
	var lines []string
	source := "demo"
	switch {
	case demo && len(rest) == 0:
		lines = interpreter.DemoProgram
	case !demo && len(rest) == 1:
		source = rest[0]
		lines, err = interpreter.LoadProgram(source)
		if err != nil {
			logger.Error("cannot load program", "path", source, "error", err)
			return exitRun
		}
	default:
		printHelp(stderr, flagSet)
		return exitUsage
	}

	if checkOnly {
		if err := interpreter.Check(lines); err != nil {
			logger.Error("program invalid", "program", source, "error", err)
			return exitRun
		}
		logger.Info("program valid", "program", source, "lines", len(lines))
		return exitOK
	}

	sink := interpreter.WriterSink(stdout)
	var transcript *os.File
	var buffered *bufio.Writer
	if cfg.Output != "-" {
		transcript, err = os.Create(cfg.Output)
		if err != nil {
			logger.Error("cannot open output", "path", cfg.Output, "error", err)
			return exitRun
		}
		buffered = bufio.NewWriter(transcript)
		sink = interpreter.WriterSink(buffered)
	}

	in := interpreter.New(sink, interpreter.WithLogger(logger))
	runErr := in.Run(lines)

	// The sink drops write errors; they surface here on flush or close.
	if transcript != nil {
		err := buffered.Flush()
		if closeErr := transcript.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			logger.Error("cannot write output", "path", cfg.Output, "error", err)
			return exitRun
		}
	}

	final := in.Robot()
	attrs := []any{
		"program", source,
		"executed", in.Executed(),
		"x", final.X,
		"y", final.Y,
		"angle", final.Angle,
		"mode", final.Mode.String(),
		"cleaning", final.Cleaning,
	}
	if runErr != nil {
		logger.Error("run failed", append(attrs, "error", runErr)...)
		return exitRun
	}
	logger.Info("run finished", attrs...)
	return exitOK
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `robowasher runs a robot washer program, one command per line:

  move <number>   drive forward along the current heading
  turn <number>   rotate by degrees (counter-clockwise)
  set <mode>      choose water, soap or brush
  start           start cleaning
  stop            stop cleaning

Usage:
  robowasher [flags] <program file | ->
  robowasher [flags] --demo

Flags:
%s`, flagSet.FlagUsages())
}
