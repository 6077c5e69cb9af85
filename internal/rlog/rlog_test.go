package rlog

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestHandleWritesToFile(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	logger := slog.New(h)

	logger.Info("assembling", "file", "a.s")

	out := buf.String()
	if !strings.Contains(out, "assembling") {
		t.Fatalf("file output missing message: %q", out)
	}
	if !strings.Contains(out, "a.s") {
		t.Fatalf("file output missing attr value: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Fatalf("expected trailing newline, got %q", out)
	}
}

func TestHandleCommentPrefixMatchesDMPStyle(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	logger := slog.New(h)

	logger.Info("assembling")

	if !strings.HasPrefix(buf.String(), "# ") {
		t.Fatalf("expected line to open with a DMP-style comment marker, got %q", buf.String())
	}
}

func TestHandlePassTagPlacedBeforeMessage(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	logger := WithPass(slog.New(h), 1)

	logger.Info("resolving labels")

	if !strings.Contains(buf.String(), "[pass 1] resolving labels") {
		t.Fatalf("expected pass tag immediately before message, got %q", buf.String())
	}
}

func TestHandleLevelPrefix(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	logger := slog.New(h)

	logger.Warn("duplicate label")

	if !strings.Contains(buf.String(), "WARN:") {
		t.Fatalf("expected level prefix WARN:, got %q", buf.String())
	}
}

func TestEnabledRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}, false)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should not be enabled when floor is warn")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("error should be enabled when floor is warn")
	}
}

func TestWithAttrsCarriesConfiguration(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	tagged := h.WithAttrs([]slog.Attr{slog.Int("pass", 1)})

	logger := slog.New(tagged)
	logger.Info("emitted word")

	if !strings.Contains(buf.String(), "1") {
		t.Fatalf("expected pass attr in output, got %q", buf.String())
	}
}

func TestWithPassTagsRecords(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	logger := WithPass(slog.New(h), 2)

	logger.Info("resolved global")

	out := buf.String()
	if !strings.Contains(out, "pass") || !strings.Contains(out, "2") {
		t.Fatalf("expected pass=2 in output, got %q", out)
	}
}

func TestHandleWithNilFileStillHonorsDebugMirror(t *testing.T) {
	h := NewHandler(nil, &slog.HandlerOptions{Level: slog.LevelDebug}, false)
	logger := slog.New(h)

	// Should not panic when no file is configured and the record is
	// below the stderr mirror threshold.
	logger.Debug("no file configured")
}
