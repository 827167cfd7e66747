// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

import "testing"

func TestTagsOrderingAndOmission(t *testing.T) {
	rec := &Record{
		Make:           "Meta",
		Model:          "Ray-Ban Stories",
		AudioChannels:  0,
		Timestamp:      "2023:05:01 12:00:00",
		GPSLatitude:    "35.6762",
		GPSLatitudeRef: "N",
	}

	tags := rec.Tags()
	if len(tags) == 0 {
		t.Fatal("expected tags for a populated record")
	}

	if tags[0][0] != "Make" || tags[0][1] != "Meta" {
		t.Errorf("expected Make first, got %v", tags[0])
	}

	seen := make(map[string]string, len(tags))
	for _, pair := range tags {
		if pair[1] == "" && pair[0] != "AudioChannels" {
			t.Errorf("empty value emitted for tag %s", pair[0])
		}
		seen[pair[0]] = pair[1]
	}

	// Zero channels still serialize because muted is meaningful.
	if got, ok := seen["AudioChannels"]; !ok || got != "0" {
		t.Errorf("expected AudioChannels=0, got %q (present=%v)", got, ok)
	}

	// Unset fields stay out of the serialized form.
	if _, ok := seen["Software"]; ok {
		t.Error("expected empty Software to be omitted")
	}
	if _, ok := seen["GPSLongitude"]; ok {
		t.Error("expected empty GPSLongitude to be omitted")
	}
}

func TestTagsExpandTimestampIntoAllDateFields(t *testing.T) {
	rec := &Record{Timestamp: "2024:02:29 23:59:59"}

	want := []string{
		"CreateDate", "ModifyDate",
		"TrackCreateDate", "TrackModifyDate",
		"MediaCreateDate", "MediaModifyDate",
		"DateTimeOriginal", "CreationDate", "FileModifyDate",
	}

	seen := make(map[string]string)
	for _, pair := range rec.Tags() {
		seen[pair[0]] = pair[1]
	}

	for _, tag := range want {
		if seen[tag] != "2024:02:29 23:59:59" {
			t.Errorf("expected %s to carry the shared timestamp, got %q", tag, seen[tag])
		}
	}
}

func TestTagsSkipDatesWhenTimestampEmpty(t *testing.T) {
	rec := &Record{Make: "Meta"}
	for _, pair := range rec.Tags() {
		if pair[0] == "CreateDate" {
			t.Error("expected no date tags for an empty timestamp")
		}
	}
}
