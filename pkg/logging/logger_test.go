package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestNewLogger tests logger construction with temp directories
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		baseDir string
		runID   string
		wantErr bool
	}{
		{
			name:    "valid directory and run ID",
			baseDir: t.TempDir(),
			runID:   "test-run-123",
			wantErr: false,
		},
		{
			name:    "creates directories if not exist",
			baseDir: filepath.Join(t.TempDir(), "nested", "path"),
			runID:   "run-456",
			wantErr: false,
		},
		{
			name:    "empty run ID gets generated",
			baseDir: t.TempDir(),
			runID:   "",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.baseDir, tt.runID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			defer logger.Close()

			if tt.runID != "" && logger.RunID() != tt.runID {
				t.Errorf("RunID() = %v, want %v", logger.RunID(), tt.runID)
			}
			if tt.runID == "" && logger.RunID() == "" {
				t.Error("empty run ID should be replaced with a generated one")
			}
			if logger.minLevel != LevelInfo {
				t.Errorf("minLevel = %v, want %v", logger.minLevel, LevelInfo)
			}

			// Run log file should exist
			runLog := filepath.Join(tt.baseDir, "runs", logger.RunID()+".jsonl")
			if _, err := os.Stat(runLog); err != nil {
				t.Errorf("run log not created: %v", err)
			}
		})
	}
}

func TestNewRunID_Unique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()

	if a == "" || b == "" {
		t.Fatal("NewRunID should not return empty string")
	}
	if a == b {
		t.Error("consecutive run IDs should differ")
	}
}

func TestLogger_Log(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-1")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	err = logger.Log(Event{
		Level:     LevelInfo,
		Category:  CategoryRender,
		EventType: "frame_painted",
		Message:   "painted frame",
		Details:   map[string]any{"cells": 240, "runs": 3},
	})
	if err != nil {
		t.Fatalf("Log() error = %v", err)
	}

	// Event lands in the run log with run ID and timestamp filled in
	events, err := ReadRecentEvents(filepath.Join(dir, "runs", "run-1.jsonl"), 10)
	if err != nil {
		t.Fatalf("ReadRecentEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].RunID != "run-1" {
		t.Errorf("RunID = %v, want run-1", events[0].RunID)
	}
	if events[0].Timestamp.IsZero() {
		t.Error("timestamp should be filled in")
	}
	if events[0].EventType != "frame_painted" {
		t.Errorf("EventType = %v, want frame_painted", events[0].EventType)
	}
}

func TestLogger_MinLevel(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-2")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	// Default min level is info: debug events are dropped
	if err := logger.Debug(CategoryApp, "ignored", "dropped", nil); err != nil {
		t.Fatalf("Debug() error = %v", err)
	}
	if err := logger.Info(CategoryApp, "kept", "written", nil); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	events, err := ReadRecentEvents(filepath.Join(dir, "runs", "run-2.jsonl"), 10)
	if err != nil {
		t.Fatalf("ReadRecentEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].EventType != "kept" {
		t.Errorf("EventType = %v, want kept", events[0].EventType)
	}

	// Lowering the level lets debug through
	logger.SetMinLevel(LevelDebug)
	if err := logger.Debug(CategoryApp, "now_kept", "written", nil); err != nil {
		t.Fatalf("Debug() error = %v", err)
	}
	events, _ = ReadRecentEvents(filepath.Join(dir, "runs", "run-2.jsonl"), 10)
	if len(events) != 2 {
		t.Errorf("got %d events after lowering level, want 2", len(events))
	}
}

func TestLogger_ErrorsDuplicatedToErrorLog(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-3")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	if err := logger.Error(CategoryBackend, "init_failed", "backend init failed", nil); err != nil {
		t.Fatalf("Error() error = %v", err)
	}

	events, err := ReadRecentEvents(filepath.Join(dir, "errors.jsonl"), 10)
	if err != nil {
		t.Fatalf("ReadRecentEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("error log has %d events, want 1", len(events))
	}
	if events[0].Level != LevelError {
		t.Errorf("Level = %v, want error", events[0].Level)
	}
}

func TestLogger_RenderEventsDuplicatedToFrameLog(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-4")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	if err := logger.Info(CategoryRender, "frame_painted", "", map[string]any{"changed": 12}); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	if err := logger.Info(CategoryInput, "key", "", nil); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	events, err := ReadRecentEvents(filepath.Join(dir, "frames.jsonl"), 10)
	if err != nil {
		t.Fatalf("ReadRecentEvents() error = %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("frame log has %d events, want 1", len(events))
	}
	if events[0].Category != CategoryRender {
		t.Errorf("Category = %v, want render", events[0].Category)
	}
}

func TestLogger_EventJSONShape(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-5")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	if err := logger.Info(CategoryTheme, "reloaded", "theme reloaded", map[string]any{"path": "theme.yaml"}); err != nil {
		t.Fatalf("Info() error = %v", err)
	}
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "runs", "run-5.jsonl"))
	if err != nil {
		t.Fatalf("reading run log: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("run log line is not valid JSON: %v", err)
	}
	for _, key := range []string{"timestamp", "level", "category", "type", "run_id"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("event JSON missing %q key", key)
		}
	}
}

func TestReadRecentEvents_Truncates(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-6")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	for i := 0; i < 5; i++ {
		if err := logger.Info(CategoryApp, "tick", "", map[string]any{"n": i}); err != nil {
			t.Fatalf("Info() error = %v", err)
		}
	}

	events, err := ReadRecentEvents(filepath.Join(dir, "runs", "run-6.jsonl"), 2)
	if err != nil {
		t.Fatalf("ReadRecentEvents() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Last two events survive
	if events[0].Details["n"].(float64) != 3 || events[1].Details["n"].(float64) != 4 {
		t.Errorf("expected last two events, got %v and %v", events[0].Details, events[1].Details)
	}
}

func TestLogger_TimestampClose(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, "run-7")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	before := time.Now()
	if err := logger.Info(CategoryApp, "start", "", nil); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	events, _ := ReadRecentEvents(filepath.Join(dir, "runs", "run-7.jsonl"), 1)
	if len(events) != 1 {
		t.Fatal("expected one event")
	}
	if events[0].Timestamp.Before(before.Add(-time.Second)) {
		t.Error("timestamp should be close to log time")
	}
}
