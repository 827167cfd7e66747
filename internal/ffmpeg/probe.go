// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ProbeResult summarizes the container and stream layout of a video file.
type ProbeResult struct {
	Path          string
	FormatName    string
	Duration      time.Duration
	Size          int64
	BitRate       int64
	Width         int
	Height        int
	FrameRate     float64
	VideoCodec    string
	AudioCodec    string
	AudioChannels int
	SampleRate    string
	Tags          map[string]string
}

// HasAudio reports whether the file carries an audio stream.
func (p *ProbeResult) HasAudio() bool {
	return p.AudioCodec != ""
}

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Filename   string            `json:"filename"`
	FormatName string            `json:"format_name"`
	Duration   string            `json:"duration"`
	Size       string            `json:"size"`
	BitRate    string            `json:"bit_rate"`
	Tags       map[string]string `json:"tags"`
}

type ffprobeStream struct {
	Index      int    `json:"index"`
	CodecName  string `json:"codec_name"`
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
	SampleRate string `json:"sample_rate"`
	Channels   int    `json:"channels"`
}

// Probe runs ffprobe and decodes the container and stream summary.
func (t *Tool) Probe(ctx context.Context, path string) (*ProbeResult, error) {
	out, err := t.runner.Run(ctx, ProbeToolName,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if err != nil {
		return nil, err
	}

	var decoded ffprobeOutput
	if err := json.Unmarshal(out, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode ffprobe output for %s: %w", path, err)
	}

	res := &ProbeResult{
		Path:       path,
		FormatName: decoded.Format.FormatName,
		Tags:       decoded.Format.Tags,
	}
	if seconds, err := strconv.ParseFloat(decoded.Format.Duration, 64); err == nil {
		res.Duration = time.Duration(seconds * float64(time.Second))
	}
	if size, err := strconv.ParseInt(decoded.Format.Size, 10, 64); err == nil {
		res.Size = size
	}
	if rate, err := strconv.ParseInt(decoded.Format.BitRate, 10, 64); err == nil {
		res.BitRate = rate
	}

	// First stream of each type wins; later streams are attachments or
	// alternate tracks glassmark does not care about.
	for _, stream := range decoded.Streams {
		switch stream.CodecType {
		case "video":
			if res.VideoCodec == "" {
				res.VideoCodec = stream.CodecName
				res.Width = stream.Width
				res.Height = stream.Height
				res.FrameRate = parseRational(stream.RFrameRate)
			}
		case "audio":
			if res.AudioCodec == "" {
				res.AudioCodec = stream.CodecName
				res.AudioChannels = stream.Channels
				res.SampleRate = stream.SampleRate
			}
		}
	}
	return res, nil
}

// parseRational evaluates ffprobe frame rates such as "30000/1001".
func parseRational(s string) float64 {
	if s == "" {
		return 0
	}
	num, den, found := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	if !found {
		return n
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
