// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package exiftool

import (
	"context"
	"strings"
)

// brandMarkers identify the glasses vendor inside identity fields.
var brandMarkers = []string{"Ray-Ban", "Meta"}

// identityTags are the fields every stamped file must carry.
var identityTags = []string{"Make", "Model", "Software", "LensModel"}

// FieldStatus reports one identity field's verification outcome.
type FieldStatus struct {
	Present bool
	Branded bool
}

// ok reports whether the field passes both checks.
func (s FieldStatus) ok() bool {
	return s.Present && s.Branded
}

// FieldCheck pairs an identity tag name with its status for display.
type FieldCheck struct {
	Tag string
	FieldStatus
}

// VerifyResult is the stamped-file verdict for one file.
type VerifyResult struct {
	Path     string
	Stamped  bool
	Make     FieldStatus
	Model    FieldStatus
	Software FieldStatus
	Lens     FieldStatus
	Tags     map[string]string

	// Err records a read failure; the verdict degrades to unstamped
	// rather than propagating it.
	Err error
}

// Checks lists the identity field results in display order.
func (r *VerifyResult) Checks() []FieldCheck {
	return []FieldCheck{
		{Tag: "Make", FieldStatus: r.Make},
		{Tag: "Model", FieldStatus: r.Model},
		{Tag: "Software", FieldStatus: r.Software},
		{Tag: "LensModel", FieldStatus: r.Lens},
	}
}

// Verify reads the file's tags and applies the stamped-file predicate.
// Read failures degrade to an unstamped verdict, never an error.
func (t *Tool) Verify(ctx context.Context, path string) *VerifyResult {
	tags, err := t.Read(ctx, path)
	if err != nil {
		return &VerifyResult{Path: path, Err: err}
	}
	return EvaluateTags(path, tags)
}

// EvaluateTags applies the stamped-file predicate to an already-read tag
// map: each of Make, Model, Software, and LensModel must be present and
// contain a brand marker. Shared with the native-probe analyze fallback.
func EvaluateTags(path string, tags map[string]string) *VerifyResult {
	res := &VerifyResult{Path: path, Tags: tags}

	statuses := []*FieldStatus{&res.Make, &res.Model, &res.Software, &res.Lens}
	res.Stamped = true
	for i, tag := range identityTags {
		value, present := tags[tag]
		statuses[i].Present = present && value != ""
		statuses[i].Branded = containsBrand(value)
		if !statuses[i].ok() {
			res.Stamped = false
		}
	}
	return res
}

// containsBrand reports whether a value carries one of the brand markers.
func containsBrand(value string) bool {
	for _, marker := range brandMarkers {
		if strings.Contains(value, marker) {
			return true
		}
	}
	return false
}
