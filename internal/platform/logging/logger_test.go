package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	var out map[string]any
	if err := sonic.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("decode log line %q: %v", line, err)
	}
	return out
}

func TestLogger_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("component", "test")

	logger.Info("player created", "club_id", "c1", "error", errors.New("boom"), "dangling")

	entry := decodeLine(t, &buf)
	if entry["msg"] != "player created" {
		t.Fatalf("unexpected msg: %v", entry["msg"])
	}
	if entry["component"] != "test" || entry["club_id"] != "c1" {
		t.Fatalf("missing fields: %+v", entry)
	}
	if entry["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
	if _, ok := entry["dangling"]; !ok {
		t.Fatalf("expected dangling key to be kept")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("ignored")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be dropped, got %q", buf.String())
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelDebug)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "slow query")

	entry := decodeLine(t, &buf)
	if entry["trace_id"] != traceID.String() || entry["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %+v", entry)
	}
}

func TestLogger_NilIsSafe(t *testing.T) {
	var logger *Logger
	logger.Info("nothing happens")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
