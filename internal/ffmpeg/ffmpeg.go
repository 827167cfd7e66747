// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package ffmpeg adapts the external ffmpeg and ffprobe binaries for
// transcoding, probing, and the auxiliary video operations.
package ffmpeg

import (
	"glassmark/internal/runner"
)

const (
	// ToolName is the transcoder executable.
	ToolName = "ffmpeg"

	// ProbeToolName is the prober executable.
	ProbeToolName = "ffprobe"
)

// Tool wraps ffmpeg and ffprobe invocations. Operations are single-shot
// and context-aware; progress callbacks are advisory and never alter
// control flow.
type Tool struct {
	runner runner.CommandRunner
}

// New creates an ffmpeg adapter on top of a command runner.
func New(r runner.CommandRunner) *Tool {
	return &Tool{runner: r}
}

// Available reports whether ffmpeg can be found, returning its path.
func (t *Tool) Available() (string, error) {
	return t.runner.Resolve(ToolName)
}

// ProbeAvailable reports whether ffprobe can be found, returning its path.
func (t *Tool) ProbeAvailable() (string, error) {
	return t.runner.Resolve(ProbeToolName)
}
