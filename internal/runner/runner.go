// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package runner resolves and executes the external tools glassmark shells
// out to. Tool paths come from config overrides first, then environment
// variables, then the system PATH.
package runner

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"glassmark/internal/observability"
)

// CommandRunner abstracts external process execution so the tool adapters
// can be exercised without the real binaries installed.
type CommandRunner interface {
	// Resolve returns the executable path for a tool.
	Resolve(tool string) (string, error)

	// Run executes a tool and returns its standard output.
	Run(ctx context.Context, tool string, args ...string) ([]byte, error)

	// RunStream executes a tool, delivering each stdout line to onLine.
	RunStream(ctx context.Context, tool string, args []string, onLine func(string)) error
}

// Runner is the production CommandRunner backed by os/exec.
type Runner struct {
	overrides map[string]string
	observer  *observability.StandardObserver
}

// New creates a runner. Overrides map tool names to configured executable
// paths; the observer may be nil.
func New(overrides map[string]string, observer *observability.StandardObserver) *Runner {
	return &Runner{overrides: overrides, observer: observer}
}

// EnvVar returns the environment variable consulted for a tool's path,
// such as GLASSMARK_EXIFTOOL for exiftool.
func EnvVar(tool string) string {
	cleaned := strings.ToUpper(strings.ReplaceAll(tool, "-", "_"))
	return "GLASSMARK_" + cleaned
}

// Resolve returns the executable path for a tool, honoring config
// overrides, then the tool's environment variable, then PATH lookup.
func (r *Runner) Resolve(tool string) (string, error) {
	if path, ok := r.overrides[tool]; ok && path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", NewToolUnavailableError(tool, fmt.Sprintf("configured path %s is not usable", path))
		}
		return path, nil
	}

	if path := os.Getenv(EnvVar(tool)); path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", NewToolUnavailableError(tool, fmt.Sprintf("%s points to %s which is not usable", EnvVar(tool), path))
		}
		return path, nil
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return "", NewToolUnavailableError(tool, installHint(tool))
	}
	return path, nil
}

// Run executes a tool and returns its standard output. Stderr is captured
// and folded into the error on failure.
func (r *Runner) Run(ctx context.Context, tool string, args ...string) ([]byte, error) {
	path, err := r.Resolve(tool)
	if err != nil {
		return nil, err
	}

	finish := r.observer.StartTiming("runner", "exec "+tool, "")
	r.logInvocation(tool, args)

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	finish(runErr == nil, map[string]interface{}{"args": strings.Join(args, " ")})
	if runErr != nil {
		return nil, NewToolFailureError(tool, args, stderr.String(), runErr)
	}
	return stdout.Bytes(), nil
}

// RunStream executes a tool, delivering each line of standard output to
// onLine as it arrives. Used for encoder progress reporting.
func (r *Runner) RunStream(ctx context.Context, tool string, args []string, onLine func(string)) error {
	path, err := r.Resolve(tool)
	if err != nil {
		return err
	}

	finish := r.observer.StartTiming("runner", "exec "+tool, "")
	r.logInvocation(tool, args)

	cmd := exec.CommandContext(ctx, path, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		finish(false, nil)
		return NewToolFailureError(tool, args, "", err)
	}
	if err := cmd.Start(); err != nil {
		finish(false, nil)
		return NewToolFailureError(tool, args, stderr.String(), err)
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if onLine != nil {
			onLine(scanner.Text())
		}
	}

	waitErr := cmd.Wait()
	finish(waitErr == nil, map[string]interface{}{"args": strings.Join(args, " ")})
	if waitErr != nil {
		return NewToolFailureError(tool, args, stderr.String(), waitErr)
	}
	return nil
}

// logInvocation records the full argv at debug level.
func (r *Runner) logInvocation(tool string, args []string) {
	if r.observer != nil && r.observer.DebugObserver != nil {
		r.observer.DebugObserver.LogDetail("runner", tool+" "+strings.Join(args, " "))
	}
}

// installHint suggests how to obtain a missing tool.
func installHint(tool string) string {
	switch tool {
	case "exiftool":
		return "install it with your package manager, e.g. apt install libimage-exiftool-perl or brew install exiftool"
	case "ffmpeg", "ffprobe":
		return "install it with your package manager, e.g. apt install ffmpeg or brew install ffmpeg"
	default:
		return ""
	}
}
