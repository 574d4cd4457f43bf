package interpreter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// DemoProgram drives the washer through every command once.
var DemoProgram = []string{
	"move 100",
	"turn -90",
	"set soap",
	"start",
	"move 50",
	"stop",
}

const maxLineSize = 1 << 20

// ReadProgram splits r into lines. Line endings (\n or \r\n) are dropped and
// a trailing newline does not add an empty line. Blank lines in the middle
// are kept so the interpreter can report them.
func ReadProgram(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return lines, nil
}

// LoadProgram reads the program stored at path. The path "-" reads
// standard input, which must not be an interactive terminal.
func LoadProgram(path string) ([]string, error) {
	if path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("refusing to read program from a terminal; pipe it in or pass a file")
		}
		return ReadProgram(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadProgram(f)
}
