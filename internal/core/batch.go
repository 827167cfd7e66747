// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"glassmark/internal/paths"
)

// ListVideos enumerates the recognized video files directly inside dir,
// sorted by name. Subdirectories are not descended into.
func ListVideos(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// Skip hidden files. This covers macOS AppleDouble sidecars like
		// ._clip.mp4, which carry a video extension but no video stream,
		// and our own in-flight transcode artifacts.
		if strings.HasPrefix(entry.Name(), ".") || paths.IsTempArtifact(entry.Name()) {
			continue
		}
		if IsSupported(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// ProcessDir runs the pipeline over every recognized file in dir,
// strictly sequentially in sorted order. One file's failure is counted
// and the loop continues; cancellation stops between files. The explicit
// output option is ignored since it can only describe one file.
func (p *Processor) ProcessDir(ctx context.Context, dir string, opts Options, each func(Result)) (*Report, error) {
	files, err := ListVideos(dir)
	if err != nil {
		return nil, err
	}
	if p.observer != nil && p.observer.DebugObserver != nil {
		p.observer.DebugObserver.LogMetric("core", "files_to_process", len(files))
	}

	opts.Output = ""

	start := time.Now()
	report := &Report{Total: len(files)}
	defer func() {
		report.Elapsed = time.Since(start)
	}()

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res := p.Process(ctx, file, opts)
		report.Results = append(report.Results, res)
		if res.Err != nil {
			report.Failed++
		} else {
			report.Succeeded++
		}
		if each != nil {
			each(res)
		}
	}
	return report, nil
}
