// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders processing reports and metadata tag dumps
// in the output formats the CLI offers. Concrete formatters live in
// subpackages and register themselves with the default registry.
package formatters

import (
	"fmt"
	"sort"
	"strings"

	"glassmark/internal/core"
)

// Options defines configuration options for formatters.
type Options struct {
	NoColor bool // Whether to disable colored output
	Verbose bool // Whether to display per-file detail
}

// TagDump is one file's metadata read, as rendered by analyze and info.
// Stamped is nil when no verification verdict applies.
type TagDump struct {
	Path    string            `json:"path" yaml:"path"`
	Source  string            `json:"source" yaml:"source"`
	Tags    map[string]string `json:"tags" yaml:"tags"`
	Stamped *bool             `json:"stamped,omitempty" yaml:"stamped,omitempty"`
}

// Formatter interface defines methods that all output formatters must implement.
type Formatter interface {
	// FormatReport renders a single-file or batch processing report.
	FormatReport(report *core.Report, options Options) (string, error)

	// FormatTags renders a metadata tag dump.
	FormatTags(dump TagDump, options Options) (string, error)

	// Name returns the name of the formatter (e.g., "json", "text")
	Name() string

	// Description returns a brief description of what this formatter outputs
	Description() string

	// FileExtension returns the recommended file extension for this format
	FileExtension() string
}

// ResultView is the serializable projection of one file's outcome.
type ResultView struct {
	Input      string `json:"input" yaml:"input"`
	Output     string `json:"output,omitempty" yaml:"output,omitempty"`
	Camera     string `json:"camera,omitempty" yaml:"camera,omitempty"`
	Transcoded bool   `json:"transcoded" yaml:"transcoded"`
	Stamped    bool   `json:"stamped" yaml:"stamped"`
	Verified   bool   `json:"verified,omitempty" yaml:"verified,omitempty"`
	DurationMs int64  `json:"duration_ms" yaml:"duration_ms"`
	Error      string `json:"error,omitempty" yaml:"error,omitempty"`
}

// ReportView is the serializable projection of a processing report.
type ReportView struct {
	Total     int          `json:"total" yaml:"total"`
	Succeeded int          `json:"succeeded" yaml:"succeeded"`
	Failed    int          `json:"failed" yaml:"failed"`
	ElapsedMs int64        `json:"elapsed_ms" yaml:"elapsed_ms"`
	Results   []ResultView `json:"results" yaml:"results"`
}

// NewReportView projects a report into its serializable form.
func NewReportView(report *core.Report) ReportView {
	view := ReportView{
		Total:     report.Total,
		Succeeded: report.Succeeded,
		Failed:    report.Failed,
		ElapsedMs: report.Elapsed.Milliseconds(),
		Results:   make([]ResultView, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		rv := ResultView{
			Input:      res.Input,
			Output:     res.Output,
			Camera:     string(res.Camera),
			Transcoded: res.Transcoded,
			Stamped:    res.Stamped,
			Verified:   res.Verified,
			DurationMs: res.Duration.Milliseconds(),
		}
		if res.Err != nil {
			rv.Error = res.Err.Error()
		}
		view.Results = append(view.Results, rv)
	}
	return view
}

// SortedTagKeys returns the dump's tag names in alphabetical order.
func SortedTagKeys(tags map[string]string) []string {
	keys := make([]string, 0, len(tags))
	for key := range tags {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Registry holds all registered formatters
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates a new formatter registry
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
	}
}

// Register adds a formatter to the registry
func (r *Registry) Register(formatter Formatter) {
	r.formatters[formatter.Name()] = formatter
}

// Get retrieves a formatter by name
func (r *Registry) Get(name string) (Formatter, bool) {
	formatter, exists := r.formatters[name]
	return formatter, exists
}

// List returns all registered formatter names, sorted
func (r *Registry) List() []string {
	var names []string
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global formatter registry
var DefaultRegistry = NewRegistry()

// Register is a convenience function to register a formatter with the default registry
func Register(formatter Formatter) {
	DefaultRegistry.Register(formatter)
}

// Get is a convenience function to get a formatter from the default registry
func Get(name string) (Formatter, bool) {
	return DefaultRegistry.Get(name)
}

// List is a convenience function to list all formatters in the default registry
func List() []string {
	return DefaultRegistry.List()
}

// FormatReport renders a report in the named format from the default
// registry.
func FormatReport(format string, report *core.Report, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.FormatReport(report, options)
}

// FormatTags renders a tag dump in the named format from the default
// registry.
func FormatTags(format string, dump TagDump, options Options) (string, error) {
	formatter, exists := Get(format)
	if !exists {
		return "", fmt.Errorf("unsupported format '%s'. Available formats: %s", format, strings.Join(List(), ", "))
	}
	return formatter.FormatTags(dump, options)
}
