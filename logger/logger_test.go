package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitLevel(t *testing.T) {
	tests := []struct {
		value    string
		expected logrus.Level
	}{
		{value: "debug", expected: logrus.DebugLevel},
		{value: "warn", expected: logrus.WarnLevel},
		{value: "nonsense", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.value)
			InitWithOutput(&bytes.Buffer{})
			if Log.GetLevel() != tt.expected {
				t.Errorf("level = %v, expected %v", Log.GetLevel(), tt.expected)
			}
		})
	}
}

func TestInitJSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "JSON")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	Component("sim").Info("tick")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["component"] != "sim" || entry["msg"] != "tick" {
		t.Errorf("unexpected entry %v", entry)
	}
}

func TestInitTextFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")

	var buf bytes.Buffer
	InitWithOutput(&buf)
	Log.Info("hello")

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("expected text output, got %q", buf.String())
	}
}
