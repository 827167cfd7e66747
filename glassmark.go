// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package glassmark stamps videos with the metadata a pair of Ray-Ban
// Stories smart glasses would record, and optionally transcodes them to
// the camera's output profile. It shells out to exiftool for tag
// writing and to ffmpeg/ffprobe for everything touching the video
// stream. The Client mirrors the CLI's commands one to one.
package glassmark

import (
	"context"
	"time"

	"glassmark/internal/config"
	"glassmark/internal/core"
	"glassmark/internal/exiftool"
	"glassmark/internal/ffmpeg"
	"glassmark/internal/metadata"
	"glassmark/internal/nativeprobe"
	"glassmark/internal/observability"
	"glassmark/internal/presets"
	"glassmark/internal/runner"
)

// Client bundles the tools and the processor behind one handle.
type Client struct {
	cfg       *config.Config
	table     *presets.Table
	resolver  *metadata.Resolver
	commands  *runner.Runner
	exif      *exiftool.Tool
	video     *ffmpeg.Tool
	processor *core.Processor
	observer  *observability.StandardObserver
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithObserver attaches an observer that receives operation timing and
// debug records.
func WithObserver(observer *observability.StandardObserver) Option {
	return func(c *Client) {
		c.observer = observer
	}
}

// New builds a Client from a configuration. A nil config uses the
// built-in defaults.
func New(cfg *config.Config, opts ...Option) *Client {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	c := &Client{cfg: cfg, table: presets.Builtin()}
	for _, opt := range opts {
		opt(c)
	}

	c.commands = runner.New(cfg.ToolOverrides(), c.observer)
	c.exif = exiftool.New(c.commands)
	c.video = ffmpeg.New(c.commands)
	c.resolver = metadata.NewResolver(c.table, cfg.Locations)
	c.processor = core.NewProcessor(core.ProcessorConfig{
		Table:    c.table,
		Resolver: c.resolver,
		Metadata: c.exif,
		Video:    c.video,
		Observer: c.observer,
	})
	return c
}

// AnalyzeResult is a full metadata read of one file plus the stamped
// verdict derived from it.
type AnalyzeResult struct {
	Path   string
	Source string // "exiftool" or "native"
	Tags   map[string]string
	Verify *exiftool.VerifyResult
}

// Add stamps one video, copying it to its output path first and
// transcoding it when the options ask for that.
func (c *Client) Add(ctx context.Context, input string, opts core.Options) core.Result {
	return c.processor.Process(ctx, input, opts)
}

// AddDir runs Add over every supported video in a directory. The each
// callback, when non-nil, observes results as they complete.
func (c *Client) AddDir(ctx context.Context, dir string, opts core.Options, each func(core.Result)) (*core.Report, error) {
	return c.processor.ProcessDir(ctx, dir, opts, each)
}

// Stamp writes the metadata tags directly to the file, leaving the
// video stream untouched.
func (c *Client) Stamp(ctx context.Context, path string, opts core.Options) core.Result {
	return c.processor.StampOnly(ctx, path, opts)
}

// Optimize transcodes the input to the camera profile without writing
// any metadata.
func (c *Client) Optimize(ctx context.Context, input string, opts core.Options) core.Result {
	return c.processor.TranscodeOnly(ctx, input, opts)
}

// Verify checks whether a file carries the stamped device identity.
func (c *Client) Verify(ctx context.Context, path string) *exiftool.VerifyResult {
	return c.exif.Verify(ctx, path)
}

// ListVideos returns the supported video files directly inside dir.
func (c *Client) ListVideos(dir string) ([]string, error) {
	return core.ListVideos(dir)
}

// Analyze reads every metadata tag of a file. When exiftool is not
// installed it degrades to the built-in reader for MP4/MOV containers
// and JPEG stills.
func (c *Client) Analyze(ctx context.Context, path string) (*AnalyzeResult, error) {
	tags, err := c.exif.Read(ctx, path)
	source := "exiftool"
	if runner.IsToolUnavailable(err) {
		tags, err = nativeprobe.File(path)
		source = "native"
	}
	if err != nil {
		return nil, err
	}
	return &AnalyzeResult{
		Path:   path,
		Source: source,
		Tags:   tags,
		Verify: exiftool.EvaluateTags(path, tags),
	}, nil
}

// Probe returns the container and stream details ffprobe reports.
func (c *Client) Probe(ctx context.Context, path string) (*ffmpeg.ProbeResult, error) {
	return c.video.Probe(ctx, path)
}

// Merge concatenates two or more clips, in order, into output.
func (c *Client) Merge(ctx context.Context, inputs []string, output string) error {
	return c.video.Concat(ctx, inputs, output)
}

// Thumbnail grabs one frame at the given offset as a JPEG.
func (c *Client) Thumbnail(ctx context.Context, input, output string, at time.Duration) error {
	return c.video.Thumbnail(ctx, input, output, at)
}

// ExtractFrames writes numbered JPEG frames sampled at the given
// interval into dir and returns how many were produced.
func (c *Client) ExtractFrames(ctx context.Context, input, dir string, every time.Duration) (int, error) {
	return c.video.ExtractFrames(ctx, input, dir, every)
}

// ReplaceAudio swaps the video's audio track for the given one.
func (c *Client) ReplaceAudio(ctx context.Context, video, audio, output string) error {
	return c.video.ReplaceAudio(ctx, video, audio, output)
}

// MixAudio blends the given track with the video's existing audio.
func (c *Client) MixAudio(ctx context.Context, video, audio, output string) error {
	return c.video.MixAudio(ctx, video, audio, output)
}

// CheckExiftool reports where the exiftool binary was found.
func (c *Client) CheckExiftool() (string, error) {
	return c.exif.Available()
}

// CheckFFmpeg reports where the ffmpeg binary was found.
func (c *Client) CheckFFmpeg() (string, error) {
	return c.video.Available()
}

// CheckFFprobe reports where the ffprobe binary was found.
func (c *Client) CheckFFprobe() (string, error) {
	return c.video.ProbeAvailable()
}
