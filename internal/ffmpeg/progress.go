// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ffmpeg

import (
	"strconv"
	"strings"
	"time"
)

// Progress is one advisory progress report from the encoder.
type Progress struct {
	Percent float64
	OutTime time.Duration
	Speed   string
	Done    bool
}

// progressTracker folds the encoder's key=value progress stream into
// Progress reports, one per progress block.
type progressTracker struct {
	total   time.Duration
	current Progress
	report  func(Progress)
}

func newProgressTracker(total time.Duration, report func(Progress)) *progressTracker {
	return &progressTracker{total: total, report: report}
}

// consume handles one line of the -progress pipe:1 stream.
func (p *progressTracker) consume(line string) {
	key, value, found := strings.Cut(strings.TrimSpace(line), "=")
	if !found {
		return
	}

	switch key {
	case "out_time_us", "out_time_ms":
		// Both keys carry microseconds despite the _ms name.
		if us, err := strconv.ParseInt(value, 10, 64); err == nil && us >= 0 {
			p.current.OutTime = time.Duration(us) * time.Microsecond
		}
	case "speed":
		p.current.Speed = strings.TrimSpace(value)
	case "progress":
		p.current.Done = value == "end"
		p.current.Percent = p.percent()
		if p.report != nil {
			p.report(p.current)
		}
	}
}

// percent derives completion from encoded time over source duration,
// clamped to [0, 100]. Unknown duration stays at zero until done.
func (p *progressTracker) percent() float64 {
	if p.current.Done {
		return 100
	}
	if p.total <= 0 {
		return 0
	}
	pct := float64(p.current.OutTime) / float64(p.total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}
