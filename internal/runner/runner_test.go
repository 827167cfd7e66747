// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEnvVar(t *testing.T) {
	tests := []struct {
		tool string
		want string
	}{
		{tool: "exiftool", want: "GLASSMARK_EXIFTOOL"},
		{tool: "ffmpeg", want: "GLASSMARK_FFMPEG"},
		{tool: "ffprobe", want: "GLASSMARK_FFPROBE"},
		{tool: "some-tool", want: "GLASSMARK_SOME_TOOL"},
	}
	for _, tt := range tests {
		if got := EnvVar(tt.tool); got != tt.want {
			t.Errorf("EnvVar(%q) = %q, want %q", tt.tool, got, tt.want)
		}
	}
}

func TestResolveOverrideWins(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "exiftool")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}

	// Environment variable points elsewhere; the override must win.
	t.Setenv(EnvVar("exiftool"), "/nonexistent/exiftool")

	r := New(map[string]string{"exiftool": fake}, nil)
	path, err := r.Resolve("exiftool")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != fake {
		t.Errorf("expected override path %q, got %q", fake, path)
	}
}

func TestResolveEnvFallback(t *testing.T) {
	dir := t.TempDir()
	fake := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(fake, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("failed to write fake tool: %v", err)
	}
	t.Setenv(EnvVar("ffmpeg"), fake)

	r := New(nil, nil)
	path, err := r.Resolve("ffmpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != fake {
		t.Errorf("expected env path %q, got %q", fake, path)
	}
}

func TestResolveMissingTool(t *testing.T) {
	r := New(nil, nil)

	_, err := r.Resolve("glassmark-test-tool-that-does-not-exist")
	if err == nil {
		t.Fatal("expected an error for a missing tool")
	}
	if !IsToolUnavailable(err) {
		t.Errorf("expected ToolUnavailableError, got %T", err)
	}
}

func TestResolveBrokenOverride(t *testing.T) {
	r := New(map[string]string{"exiftool": "/nonexistent/exiftool"}, nil)

	_, err := r.Resolve("exiftool")
	if !IsToolUnavailable(err) {
		t.Fatalf("expected ToolUnavailableError, got %v", err)
	}

	var unavailable *ToolUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatal("error does not unwrap to ToolUnavailableError")
	}
	if unavailable.Tool != "exiftool" {
		t.Errorf("expected tool name in error, got %q", unavailable.Tool)
	}
	if !strings.Contains(unavailable.Hint, "/nonexistent/exiftool") {
		t.Errorf("expected hint to name the broken path, got %q", unavailable.Hint)
	}
}

func TestToolFailureError(t *testing.T) {
	cause := errors.New("exit status 1")
	err := NewToolFailureError("ffmpeg", []string{"-i", "in.mp4"}, "  something broke\n", cause)

	if !IsToolFailure(err) {
		t.Error("expected IsToolFailure to match")
	}
	if IsToolUnavailable(err) {
		t.Error("failure error must not match the unavailable predicate")
	}
	if !errors.Is(err, cause) {
		t.Error("expected the cause to unwrap")
	}
	if err.Stderr != "something broke" {
		t.Errorf("expected trimmed stderr, got %q", err.Stderr)
	}
	if !strings.Contains(err.Error(), "ffmpeg failed") {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestStderrTailBounded(t *testing.T) {
	long := strings.Repeat("x", maxStderrTail*2)
	err := NewToolFailureError("exiftool", nil, long, errors.New("boom"))

	if len(err.Stderr) > maxStderrTail+3 {
		t.Errorf("expected bounded stderr tail, got %d bytes", len(err.Stderr))
	}
	if !strings.HasPrefix(err.Stderr, "...") {
		t.Error("expected truncated stderr to be marked")
	}
}
