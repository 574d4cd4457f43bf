package interpreter

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestReadProgram(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"start\n", []string{"start"}},
		{"start\nstop", []string{"start", "stop"}},
		{"move 1\r\nturn 2\r\n", []string{"move 1", "turn 2"}},
		{"start\n\nstop\n", []string{"start", "", "stop"}},
	}

	for _, tt := range tests {
		got, err := ReadProgram(strings.NewReader(tt.input))
		if err != nil {
			t.Fatalf("ReadProgram(%q): %v", tt.input, err)
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ReadProgram(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestLoadProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wash.txt")
	if err := os.WriteFile(path, []byte(strings.Join(DemoProgram, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	lines, err := LoadProgram(path)
	if err != nil {
		t.Fatalf("LoadProgram: %v", err)
	}
	if !reflect.DeepEqual(lines, DemoProgram) {
		t.Fatalf("LoadProgram = %q, want %q", lines, DemoProgram)
	}

	if _, err := LoadProgram(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriterSink(t *testing.T) {
	var sb strings.Builder
	sink := WriterSink(&sb)
	sink.Emit("STOP")
	sink.Emit("START WITH soap")
	if got := sb.String(); got != "STOP\nSTART WITH soap\n" {
		t.Fatalf("WriterSink wrote %q", got)
	}
}
