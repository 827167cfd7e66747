// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package runner

import (
	"errors"
	"fmt"
	"strings"
)

// maxStderrTail bounds how much tool stderr is carried inside an error.
const maxStderrTail = 2048

// ToolUnavailableError reports that an external tool could not be found.
type ToolUnavailableError struct {
	Tool string
	Hint string
}

func (e *ToolUnavailableError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s is not available (%s)", e.Tool, e.Hint)
	}
	return fmt.Sprintf("%s is not available", e.Tool)
}

// NewToolUnavailableError creates a missing-tool error with an install hint.
func NewToolUnavailableError(tool, hint string) *ToolUnavailableError {
	return &ToolUnavailableError{Tool: tool, Hint: hint}
}

// ToolFailureError reports a failed invocation of an external tool,
// carrying the tail of its stderr output for diagnosis.
type ToolFailureError struct {
	Tool   string
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolFailureError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed: %v: %s", e.Tool, e.Err, e.Stderr)
	}
	return fmt.Sprintf("%s failed: %v", e.Tool, e.Err)
}

func (e *ToolFailureError) Unwrap() error {
	return e.Err
}

// NewToolFailureError creates a tool failure error, trimming stderr to a
// bounded tail.
func NewToolFailureError(tool string, args []string, stderr string, err error) *ToolFailureError {
	return &ToolFailureError{
		Tool:   tool,
		Args:   args,
		Stderr: tailOf(strings.TrimSpace(stderr), maxStderrTail),
		Err:    err,
	}
}

// IsToolUnavailable reports whether err is a missing-tool error.
func IsToolUnavailable(err error) bool {
	var e *ToolUnavailableError
	return errors.As(err, &e)
}

// IsToolFailure reports whether err is a failed tool invocation.
func IsToolFailure(err error) bool {
	var e *ToolFailureError
	return errors.As(err, &e)
}

// tailOf keeps the last n bytes of s, where failures usually surface.
func tailOf(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
