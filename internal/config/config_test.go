package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Config
	}{
		{"", Default()},
		{"log:\n  level: debug\n", Config{Log: LogConfig{Level: "debug", Format: "text"}, Output: "-"}},
		{"log:\n  format: json\noutput: washer.log\n", Config{Log: LogConfig{Level: "info", Format: "json"}, Output: "washer.log"}},
	}

	for _, tt := range tests {
		got, err := Parse([]byte(tt.input))
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input    string
		mentions string
	}{
		{"log:\n  level: loud\n", "log.level"},
		{"log:\n  format: xml\n", "log.format"},
		{"output: \"\"\n", "output"},
		{"colour: red\n", "colour"},
		{"log: [\n", "parsing config"},
	}

	for _, tt := range tests {
		_, err := Parse([]byte(tt.input))
		if err == nil {
			t.Fatalf("Parse(%q): expected error", tt.input)
		}
		if !strings.Contains(err.Error(), tt.mentions) {
			t.Errorf("Parse(%q) error %q does not mention %q", tt.input, err, tt.mentions)
		}
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	flagFile := filepath.Join(dir, "flag.yaml")
	envFile := filepath.Join(dir, "env.yaml")
	if err := os.WriteFile(flagFile, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(envFile, []byte("log:\n  level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvVar, "")
	cfg, err := Resolve("")
	if err != nil || cfg != Default() {
		t.Fatalf("Resolve without config = %+v, %v", cfg, err)
	}

	t.Setenv(EnvVar, envFile)
	cfg, err = Resolve("")
	if err != nil || cfg.Log.Level != "error" {
		t.Fatalf("Resolve from env = %+v, %v", cfg, err)
	}

	cfg, err = Resolve(flagFile)
	if err != nil || cfg.Log.Level != "warn" {
		t.Fatalf("Resolve from flag = %+v, %v", cfg, err)
	}

	if _, err := Resolve(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"msg":"shown"`) {
		t.Fatalf("unexpected log output %q", out)
	}

	level, err := LogConfig{Level: "debug"}.SlogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("SlogLevel(debug) = %v, %v", level, err)
	}
}
