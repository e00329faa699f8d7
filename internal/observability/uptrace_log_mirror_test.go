package observability

import (
	"errors"
	"testing"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietRequestLog(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		args []any
		want bool
	}{
		{name: "healthz request", msg: "http request", args: []any{"method", "GET", "path", "/healthz"}, want: true},
		{name: "docs request", msg: "http request", args: []any{"path", "/docs"}, want: true},
		{name: "career request", msg: "http request", args: []any{"path", "/v1/careers/c-1"}, want: false},
		{name: "other message", msg: "deal completed", args: []any{"path", "/healthz"}, want: false},
		{name: "missing path", msg: "http request", args: []any{"status", 200}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := isQuietRequestLog(tc.msg, tc.args); got != tc.want {
				t.Fatalf("isQuietRequestLog()=%v want %v", got, tc.want)
			}
		})
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"career_id", "c-1", "fee", int64(40_000_000), 7, "x", "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "career_id" || attrs[0].Value.AsString() != "c-1" {
		t.Fatalf("unexpected career_id attribute")
	}
	if attrs[1].Key != "fee" || attrs[1].Value.AsInt64() != 40_000_000 {
		t.Fatalf("unexpected fee attribute")
	}
	if attrs[2].Key != "arg_2" {
		t.Fatalf("expected positional key for non-string key, got %s", attrs[2].Key)
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestLogValue(t *testing.T) {
	if v := logValue(errors.New("boom"), 0); v.AsString() != "boom" {
		t.Fatalf("unexpected error value: %s", v.AsString())
	}
	if v := logValue([]string{"p-1", "p-2"}, 0); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("expected slice value, got %s", v.Kind())
	}
	var nilPtr *int
	if v := logValue(nilPtr, 0); v.Kind() != otellog.KindEmpty {
		t.Fatalf("expected empty value for nil pointer, got %s", v.Kind())
	}
}

func TestSeverityOf(t *testing.T) {
	if severityOf(zapcore.WarnLevel) != otellog.SeverityWarn {
		t.Fatalf("unexpected warn severity")
	}
	if severityOf(zapcore.ErrorLevel) != otellog.SeverityError {
		t.Fatalf("unexpected error severity")
	}
}
