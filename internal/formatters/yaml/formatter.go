// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package yaml

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"glassmark/internal/core"
	"glassmark/internal/formatters"
)

// Formatter implements YAML output formatting
type Formatter struct{}

// NewFormatter creates a new YAML formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

func (f *Formatter) Name() string {
	return "yaml"
}

func (f *Formatter) Description() string {
	return "Structured YAML output for pipelines and tooling"
}

func (f *Formatter) FileExtension() string {
	return ".yaml"
}

func (f *Formatter) FormatReport(report *core.Report, _ formatters.Options) (string, error) {
	return marshal(formatters.NewReportView(report))
}

func (f *Formatter) FormatTags(dump formatters.TagDump, _ formatters.Options) (string, error) {
	return marshal(dump)
}

func marshal(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error formatting YAML: %w", err)
	}
	return string(data), nil
}

// Register the formatter during package initialization
func init() {
	formatters.Register(NewFormatter())
}
