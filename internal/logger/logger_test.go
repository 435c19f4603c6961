package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn, &buf)

	l.Debug("debug msg", nil)
	l.Info("info msg", nil)
	l.Warn("warn msg", nil)
	l.Error("error msg", nil, nil)

	out := buf.String()
	if strings.Contains(out, "debug msg") || strings.Contains(out, "info msg") {
		t.Error("messages below the minimum level should be discarded")
	}
	if !strings.Contains(out, "warn msg") || !strings.Contains(out, "error msg") {
		t.Error("messages at or above the minimum level should be written")
	}
}

func TestLoggerJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo, &buf)

	l.Info("fetch failed", Fields{"date": "2025-12-13", "bytes": 0})

	var e struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Fields    map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("log output is not valid JSON: %v", err)
	}
	if e.Level != "INFO" || e.Message != "fetch failed" {
		t.Errorf("unexpected entry: %+v", e)
	}
	if e.Fields["date"] != "2025-12-13" {
		t.Errorf("unexpected fields: %v", e.Fields)
	}
	if e.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}
