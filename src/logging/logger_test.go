package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	SetOutput(zapcore.AddSync(&buf))
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel("info")
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("info")

	msg := "rendered results/Rabi_Model.pdf (100.0% of 4 panels)"
	infof := Infof
	infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% of 4 panels)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!o(MISSING)") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLogs(t)
	SetLogLevel("warn")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") {
		t.Fatalf("unexpected filtering: %s", out)
	}
	if GetLogLevel() != LevelWarn {
		t.Fatalf("level = %v", GetLogLevel())
	}
}

func TestUnknownLevelIgnored(t *testing.T) {
	captureLogs(t)
	SetLogLevel("debug")
	SetLogLevel("verbose")
	if GetLogLevel() != LevelDebug {
		t.Fatalf("unknown level changed state: %v", GetLogLevel())
	}
	if ValidLevel("verbose") || !ValidLevel("WARNING") {
		t.Fatalf("ValidLevel mismatch")
	}
}

func TestWithAddsFields(t *testing.T) {
	buf := captureLogs(t)
	With("backend", "gonum", "points", 5).Infof("wrote %s", "chart.pdf")
	out := buf.String()
	if !strings.Contains(out, "wrote chart.pdf") || !strings.Contains(out, `"backend": "gonum"`) {
		t.Fatalf("missing structured fields: %s", out)
	}
}
