// Copyright (C) 2026 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// =============================================================================
// Level Tests
// =============================================================================

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
		{Level(-1), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
			}
		})
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level Level
		want  slog.Level
	}{
		{LevelDebug, slog.LevelDebug},
		{LevelInfo, slog.LevelInfo},
		{LevelWarn, slog.LevelWarn},
		{LevelError, slog.LevelError},
		{Level(99), slog.LevelInfo}, // unknown defaults to Info
	}

	for _, tt := range tests {
		if got := tt.level.toSlogLevel(); got != tt.want {
			t.Errorf("Level(%d).toSlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

// =============================================================================
// Logger Construction Tests
// =============================================================================

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
	if logger.config.Service != "ordkit" {
		t.Errorf("Default() service = %q, want %q", logger.config.Service, "ordkit")
	}
	if logger.config.Level != LevelInfo {
		t.Errorf("Default() level = %v, want LevelInfo", logger.config.Level)
	}
	if logger.file != nil {
		t.Error("Default() should not open a log file")
	}
}

func TestNew_ZeroConfig(t *testing.T) {
	logger := New(Config{})
	if logger == nil {
		t.Fatal("New(Config{}) returned nil")
	}
	if logger.slog == nil {
		t.Fatal("New(Config{}) did not initialize the slog logger")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on zero-config logger: %v", err)
	}
}

func TestNew_FileLogging(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:   LevelDebug,
		LogDir:  dir,
		Service: "testsvc",
		Quiet:   true,
	})
	logger.Info("file test message", "key", "value")

	if err := logger.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	wantName := fmt.Sprintf("testsvc_%s.log", time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, wantName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	// File output is JSON regardless of the stderr format.
	var entry map[string]any
	line := strings.TrimSpace(string(data))
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("log file line is not JSON: %v\nline: %s", err, line)
	}
	if entry["msg"] != "file test message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "file test message")
	}
	if entry["key"] != "value" {
		t.Errorf("key attr = %v, want %q", entry["key"], "value")
	}
	if entry["service"] != "testsvc" {
		t.Errorf("service attr = %v, want %q", entry["service"], "testsvc")
	}
}

func TestNew_FileLogging_DefaultServiceName(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{LogDir: dir, Quiet: true})
	logger.Info("hello")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	wantName := fmt.Sprintf("ordkit_%s.log", time.Now().Format("2006-01-02"))
	if _, err := os.Stat(filepath.Join(dir, wantName)); err != nil {
		t.Errorf("expected log file %s: %v", wantName, err)
	}
}

func TestNew_FileLogging_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	logger := New(Config{LogDir: dir, Service: "svc", Quiet: true})
	logger.Info("creates directory")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("log directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("log path exists but is not a directory")
	}
}

func TestNew_FileLogging_BadDirectoryDegrades(t *testing.T) {
	// A file where the directory should be makes MkdirAll fail; the
	// logger must still work on the remaining destinations.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0640); err != nil {
		t.Fatal(err)
	}

	logger := New(Config{LogDir: blocker, Service: "svc", Quiet: true})
	logger.Info("degraded but alive")

	if logger.file != nil {
		t.Error("file handle should be nil when the directory is unusable")
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close(): %v", err)
	}
}

func TestNew_Quiet_NoDestinations(t *testing.T) {
	logger := New(Config{Quiet: true})
	// Must not panic despite having no real destination.
	logger.Info("into the void")
	logger.Error("still into the void")
	if err := logger.Close(); err != nil {
		t.Errorf("Close(): %v", err)
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger := New(Config{
		Level:   LevelWarn,
		LogDir:  dir,
		Service: "filter",
		Quiet:   true,
	})
	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn")
	logger.Error("kept error")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	name := fmt.Sprintf("filter_%s.log", time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	content := string(data)
	if strings.Contains(content, "dropped debug") || strings.Contains(content, "dropped info") {
		t.Error("entries below LevelWarn leaked into the log file")
	}
	if !strings.Contains(content, "kept warn") || !strings.Contains(content, "kept error") {
		t.Error("entries at or above LevelWarn are missing")
	}
}

// =============================================================================
// With / Slog Tests
// =============================================================================

func TestWith(t *testing.T) {
	dir := t.TempDir()

	parent := New(Config{LogDir: dir, Service: "with", Quiet: true})
	child := parent.With("request_id", "r-42")

	child.Info("child message")
	parent.Info("parent message")
	if err := parent.Close(); err != nil {
		t.Fatalf("Close(): %v", err)
	}

	name := fmt.Sprintf("with_%s.log", time.Now().Format("2006-01-02"))
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	var childSeen, parentTagged bool
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("non-JSON line: %s", line)
		}
		switch entry["msg"] {
		case "child message":
			childSeen = true
			if entry["request_id"] != "r-42" {
				t.Errorf("child entry missing request_id: %v", entry)
			}
		case "parent message":
			if _, ok := entry["request_id"]; ok {
				parentTagged = true
			}
		}
	}
	if !childSeen {
		t.Error("child message not logged")
	}
	if parentTagged {
		t.Error("With() leaked attributes back into the parent logger")
	}
}

func TestSlog(t *testing.T) {
	logger := New(Config{Quiet: true})
	defer logger.Close()

	if logger.Slog() == nil {
		t.Error("Slog() returned nil")
	}
}

// =============================================================================
// Exporter Tests
// =============================================================================

// waitForEntries polls the exporter until it holds want entries or
// the deadline passes. Export runs on a goroutine per entry.
func waitForEntries(t *testing.T, e *BufferedExporter, want int) []LogEntry {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if entries := e.Entries(); len(entries) >= want {
			return entries
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("exporter received %d entries, want %d", len(e.Entries()), want)
	return nil
}

func TestExporter_ReceivesEntries(t *testing.T) {
	exporter := NewBufferedExporter()
	logger := New(Config{
		Level:    LevelInfo,
		Service:  "export",
		Quiet:    true,
		Exporter: exporter,
	})

	logger.Info("exported message", "count", 3)
	entries := waitForEntries(t, exporter, 1)

	entry := entries[0]
	if entry.Message != "exported message" {
		t.Errorf("Message = %q, want %q", entry.Message, "exported message")
	}
	if entry.Level != LevelInfo {
		t.Errorf("Level = %v, want LevelInfo", entry.Level)
	}
	if entry.Service != "export" {
		t.Errorf("Service = %q, want %q", entry.Service, "export")
	}
	if entry.Attrs["count"] != 3 {
		t.Errorf("Attrs[count] = %v, want 3", entry.Attrs["count"])
	}
	if entry.Timestamp.IsZero() {
		t.Error("Timestamp is zero")
	}

	if err := logger.Close(); err != nil {
		t.Errorf("Close(): %v", err)
	}
}

func TestExporter_RespectsLevelFilter(t *testing.T) {
	exporter := NewBufferedExporter()
	logger := New(Config{
		Level:    LevelWarn,
		Quiet:    true,
		Exporter: exporter,
	})

	logger.Debug("filtered")
	logger.Info("filtered")
	logger.Warn("exported")

	entries := waitForEntries(t, exporter, 1)
	for _, e := range entries {
		if e.Level < LevelWarn {
			t.Errorf("entry below the configured level was exported: %+v", e)
		}
	}
	_ = logger.Close()
}

// failingExporter errors on demand, to verify Close surfaces the
// first failure while still attempting the rest.
type failingExporter struct {
	flushErr error
	closeErr error
	closed   bool
}

func (e *failingExporter) Export(ctx context.Context, entry LogEntry) error { return nil }
func (e *failingExporter) Flush(ctx context.Context) error                  { return e.flushErr }
func (e *failingExporter) Close() error {
	e.closed = true
	return e.closeErr
}

func TestClose_ExporterErrors(t *testing.T) {
	flushErr := errors.New("flush failed")
	exporter := &failingExporter{flushErr: flushErr}

	logger := New(Config{Quiet: true, Exporter: exporter})
	err := logger.Close()
	if !errors.Is(err, flushErr) {
		t.Errorf("Close() = %v, want wrapped %v", err, flushErr)
	}
	if !exporter.closed {
		t.Error("Close() must still close the exporter after a flush error")
	}
}

func TestNopExporter(t *testing.T) {
	e := &NopExporter{}
	ctx := context.Background()
	if err := e.Export(ctx, LogEntry{Message: "x"}); err != nil {
		t.Errorf("Export: %v", err)
	}
	if err := e.Flush(ctx); err != nil {
		t.Errorf("Flush: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

func TestBufferedExporter_EntriesIsACopy(t *testing.T) {
	e := NewBufferedExporter()
	_ = e.Export(context.Background(), LogEntry{Message: "original"})

	entries := e.Entries()
	entries[0].Message = "mutated"

	if got := e.Entries()[0].Message; got != "original" {
		t.Errorf("internal entry mutated through the returned copy: %q", got)
	}
}

func TestBufferedExporter_Concurrent(t *testing.T) {
	e := NewBufferedExporter()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = e.Export(context.Background(), LogEntry{Message: fmt.Sprintf("m%d", n)})
		}(i)
	}
	wg.Wait()

	if got := len(e.Entries()); got != 50 {
		t.Errorf("entries = %d, want 50", got)
	}
}

func TestWriterExporter(t *testing.T) {
	var buf bytes.Buffer
	e := NewWriterExporter(&buf)

	entry := LogEntry{
		Timestamp: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		Level:     LevelWarn,
		Message:   "writer test",
		Attrs:     map[string]any{"k": "v"},
	}
	if err := e.Export(context.Background(), entry); err != nil {
		t.Fatalf("Export: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"WARN", "writer test", "k:v"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
	if err := e.Flush(context.Background()); err != nil {
		t.Errorf("Flush: %v", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}

// =============================================================================
// Multi-Handler Tests
// =============================================================================

func TestMultiHandler_FanOut(t *testing.T) {
	var a, b bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	logger := slog.New(h)
	logger.Info("fan out", "n", 1)

	if !strings.Contains(a.String(), "fan out") {
		t.Error("text handler did not receive the record")
	}
	if !strings.Contains(b.String(), "fan out") {
		t.Error("JSON handler did not receive the record")
	}
}

func TestMultiHandler_PerHandlerLevels(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	h := &multiHandler{handlers: []slog.Handler{
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	}}

	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(Debug) should be true while any handler accepts it")
	}

	logger := slog.New(h)
	logger.Info("info only")

	if !strings.Contains(debugBuf.String(), "info only") {
		t.Error("debug-level handler missed an info record")
	}
	if warnBuf.Len() != 0 {
		t.Error("warn-level handler received a record below its level")
	}
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	base := &multiHandler{handlers: []slog.Handler{
		slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}}

	h := base.WithAttrs([]slog.Attr{slog.String("svc", "x")}).WithGroup("g")
	slog.New(h).Info("grouped", "k", "v")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("non-JSON output: %v", err)
	}
	if entry["svc"] != "x" {
		t.Errorf("svc attr = %v, want %q", entry["svc"], "x")
	}
	group, ok := entry["g"].(map[string]any)
	if !ok || group["k"] != "v" {
		t.Errorf("grouped attr missing: %v", entry)
	}
}

// =============================================================================
// Helper Tests
// =============================================================================

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde root", "~", home},
		{"tilde path", "~/.ordkit/logs", filepath.Join(home, ".ordkit/logs")},
		{"absolute", "/var/log/ordkit", "/var/log/ordkit"},
		{"relative", "logs", "logs"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := expandPath(tt.in); got != tt.want {
				t.Errorf("expandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestArgsToMap(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want map[string]any
	}{
		{
			name: "pairs",
			args: []any{"a", 1, "b", "two"},
			want: map[string]any{"a": 1, "b": "two"},
		},
		{
			name: "orphan value dropped",
			args: []any{"a", 1, "dangling"},
			want: map[string]any{"a": 1},
		},
		{
			name: "non-string key skipped",
			args: []any{42, "x", "b", 2},
			want: map[string]any{"b": 2},
		},
		{
			name: "empty",
			args: nil,
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := argsToMap(tt.args)
			if len(got) != len(tt.want) {
				t.Fatalf("argsToMap(%v) = %v, want %v", tt.args, got, tt.want)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("argsToMap(%v)[%q] = %v, want %v", tt.args, k, got[k], v)
				}
			}
		})
	}
}
