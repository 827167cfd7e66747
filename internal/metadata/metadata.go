// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package metadata defines the resolved tag record written onto video files
// and the resolver that builds it from presets and caller overrides.
package metadata

import "strconv"

// TimeLayout is the lexical timestamp format the metadata tool expects.
const TimeLayout = "2006:01:02 15:04:05"

// dateTags all carry the record's single timestamp value. Create and
// modify dates are never independently settable.
var dateTags = []string{
	"CreateDate",
	"ModifyDate",
	"TrackCreateDate",
	"TrackModifyDate",
	"MediaCreateDate",
	"MediaModifyDate",
	"DateTimeOriginal",
	"CreationDate",
	"FileModifyDate",
}

// Record is the complete tag set for one stamping operation. Records are
// built fresh per invocation by the Resolver and never modified afterwards.
type Record struct {
	Make          string
	Model         string
	Software      string
	LensModel     string
	DeviceType    string
	CaptureMode   string
	FieldOfView   string
	Stabilization string
	Microphone    string
	AudioChannels int
	Comment       string

	// Timestamp is shared by every create/modify date tag.
	Timestamp string

	GPSLatitude     string
	GPSLatitudeRef  string
	GPSLongitude    string
	GPSLongitudeRef string
	GPSAltitude     string
}

// Tags renders the record as ordered tag/value pairs for the metadata tool.
// Empty values are skipped; the audio channel count is always emitted
// because zero is meaningful (muted).
func (r *Record) Tags() [][2]string {
	pairs := make([][2]string, 0, 16+len(dateTags))
	add := func(tag, value string) {
		if value == "" {
			return
		}
		pairs = append(pairs, [2]string{tag, value})
	}

	add("Make", r.Make)
	add("Model", r.Model)
	add("Software", r.Software)
	add("LensModel", r.LensModel)
	add("DeviceType", r.DeviceType)
	add("CaptureMode", r.CaptureMode)
	add("FieldOfView", r.FieldOfView)
	add("Stabilization", r.Stabilization)
	add("Microphone", r.Microphone)
	pairs = append(pairs, [2]string{"AudioChannels", strconv.Itoa(r.AudioChannels)})
	add("Comment", r.Comment)

	for _, tag := range dateTags {
		add(tag, r.Timestamp)
	}

	add("GPSLatitude", r.GPSLatitude)
	add("GPSLatitudeRef", r.GPSLatitudeRef)
	add("GPSLongitude", r.GPSLongitude)
	add("GPSLongitudeRef", r.GPSLongitudeRef)
	add("GPSAltitude", r.GPSAltitude)

	return pairs
}
