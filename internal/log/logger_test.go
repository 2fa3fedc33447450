package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerComponentTag(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: "test",
		Handler:   slog.NewTextHandler(&buf, nil),
	})

	logger.Info("hello", "k", "v")
	line := buf.String()
	if !strings.Contains(line, "component=test") {
		t.Fatalf("missing component tag: %s", line)
	}
	if !strings.Contains(line, "k=v") {
		t.Fatalf("missing attribute: %s", line)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Component: "parent",
		Handler:   slog.NewTextHandler(&buf, nil),
	})
	child := logger.WithComponent("child")
	if child.Component() != "child" {
		t.Fatalf("component = %q", child.Component())
	}
	child.Info("x")
	if !strings.Contains(buf.String(), "component=child") {
		t.Fatalf("child tag missing: %s", buf.String())
	}
}
