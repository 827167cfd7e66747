// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package exiftool adapts the external exiftool binary for metadata writes,
// reads, and stamped-file verification.
package exiftool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"glassmark/internal/metadata"
	"glassmark/internal/runner"
)

// ToolName is the executable this adapter shells out to.
const ToolName = "exiftool"

// Tool wraps exiftool invocations. All operations are single-shot with no
// retry; a failed write leaves the file in whatever state the tool left it.
type Tool struct {
	runner runner.CommandRunner
}

// New creates an exiftool adapter on top of a command runner.
func New(r runner.CommandRunner) *Tool {
	return &Tool{runner: r}
}

// Available reports whether exiftool can be found, returning its path.
func (t *Tool) Available() (string, error) {
	return t.runner.Resolve(ToolName)
}

// Write stamps every tag of the record onto the file in one invocation.
// The original is overwritten in place with no backup copy.
func (t *Tool) Write(ctx context.Context, path string, rec *metadata.Record) error {
	tags := rec.Tags()
	args := make([]string, 0, len(tags)+2)
	for _, pair := range tags {
		args = append(args, fmt.Sprintf("-%s=%s", pair[0], pair[1]))
	}
	args = append(args, "-overwrite_original", path)

	_, err := t.runner.Run(ctx, ToolName, args...)
	return err
}

// Read returns all tags exiftool reports for the file, with values
// normalized to strings.
func (t *Tool) Read(ctx context.Context, path string) (map[string]string, error) {
	out, err := t.runner.Run(ctx, ToolName, "-json", path)
	if err != nil {
		return nil, err
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(out, &entries); err != nil {
		return nil, NewReadError(path, err)
	}
	if len(entries) == 0 {
		return nil, NewReadError(path, errors.New("no metadata entries returned"))
	}

	tags := make(map[string]string, len(entries[0]))
	for key, value := range entries[0] {
		tags[key] = stringifyTagValue(value)
	}
	return tags, nil
}

// stringifyTagValue flattens the JSON value types exiftool emits.
func stringifyTagValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
