package common

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lni/dragonboat/v4/logger"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logger.LogLevel
		wantErr  bool
	}{
		{"debug", logger.DEBUG, false},
		{"INFO", logger.INFO, false},
		{"warn", logger.WARNING, false},
		{"warning", logger.WARNING, false},
		{"error", logger.ERROR, false},
		{"verbose", logger.INFO, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			level, err := ParseLogLevel(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("unexpected error state: %v", err)
			}
			if level != tc.expected {
				t.Errorf("expected level %v, got %v", tc.expected, level)
			}
		})
	}
}

func TestLoggerFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	old := logOutput
	logOutput = &buf
	defer func() { logOutput = old }()

	l := CreateLogger("store")
	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.SetLevel(logger.ERROR)
	l.Warningf("hidden %d", 3)
	l.Errorf("shown %d", 4)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected messages below the level to be dropped, got %q", out)
	}
	if !strings.Contains(out, "INFO  | store           | shown 2") {
		t.Errorf("unexpected info line in %q", out)
	}
	if !strings.Contains(out, "ERROR | store           | shown 4") {
		t.Errorf("unexpected error line in %q", out)
	}
}
