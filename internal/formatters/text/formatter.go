// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"glassmark/internal/core"
	"glassmark/internal/formatters"
)

// Formatter implements text-based output formatting
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"green":  color.New(color.FgGreen),
			"yellow": color.New(color.FgYellow),
			"red":    color.New(color.FgRed),
			"cyan":   color.New(color.FgCyan),
			"white":  color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string {
	return "text"
}

func (f *Formatter) Description() string {
	return "Human-readable text output with colors and tables"
}

func (f *Formatter) FileExtension() string {
	return ".txt"
}

// FormatReport renders one line per file plus a summary line.
func (f *Formatter) FormatReport(report *core.Report, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	for _, res := range report.Results {
		mark := f.colors["green"].Sprint("✓")
		detail := res.Output
		if res.Err != nil {
			mark = f.colors["red"].Sprint("✗")
			detail = res.Err.Error()
		}
		if options.Verbose {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", mark, res.Input, detail, f.annotations(res),
				res.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", mark, res.Input, detail, f.annotations(res))
		}
	}
	w.Flush()

	summary := fmt.Sprintf("Processed %d file(s): %d succeeded, %d failed in %s",
		report.Total, report.Succeeded, report.Failed, report.Elapsed.Round(time.Millisecond))
	if report.Failed > 0 {
		builder.WriteString(f.colors["yellow"].Sprint(summary))
	} else {
		builder.WriteString(f.colors["green"].Sprint(summary))
	}
	return builder.String(), nil
}

// FormatTags renders a tag dump as an aligned key/value table with the
// stamped verdict underneath when one applies.
func (f *Formatter) FormatTags(dump formatters.TagDump, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var builder strings.Builder
	builder.WriteString(f.colors["white"].Sprint(dump.Path))
	if dump.Source != "" {
		builder.WriteString(f.colors["cyan"].Sprintf(" (%s)", dump.Source))
	}
	builder.WriteString("\n")

	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)
	for _, key := range formatters.SortedTagKeys(dump.Tags) {
		fmt.Fprintf(w, "  %s\t%s\n", key, dump.Tags[key])
	}
	w.Flush()

	if dump.Stamped != nil {
		if *dump.Stamped {
			builder.WriteString(f.colors["green"].Sprint("✓ Ray-Ban Stories metadata present"))
		} else {
			builder.WriteString(f.colors["red"].Sprint("✗ No Ray-Ban Stories metadata"))
		}
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// annotations summarizes what happened to one file.
func (f *Formatter) annotations(res core.Result) string {
	var notes []string
	if res.Camera != "" {
		notes = append(notes, string(res.Camera))
	}
	if res.Transcoded {
		notes = append(notes, "optimized")
	}
	if res.Stamped {
		notes = append(notes, "stamped")
	}
	if res.Verified {
		notes = append(notes, "verified")
	}
	return strings.Join(notes, ", ")
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
