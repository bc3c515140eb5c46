package ctxlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestFromContextReturnsEmbeddedLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, true)
	ctx := WithLogger(context.Background(), logger)

	FromContext(ctx).Debug("copied template", "files", 3)

	if !strings.Contains(buf.String(), "copied template") {
		t.Errorf("log output = %q, want it to contain the message", buf.String())
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}

func TestNewQuietByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("non-verbose logger emitted debug/info records: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("non-verbose logger dropped a warning: %q", out)
	}
}
