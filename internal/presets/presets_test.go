// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package presets

import (
	"sort"
	"testing"
)

func TestCameraLookup(t *testing.T) {
	table := Builtin()

	tests := []struct {
		name   string
		input  string
		wantOK bool
		want   Camera
	}{
		{name: "main", input: "main", wantOK: true, want: CameraMain},
		{name: "front", input: "front", wantOK: true, want: CameraFront},
		{name: "mixed case", input: "Front", wantOK: true, want: CameraFront},
		{name: "padded", input: " main ", wantOK: true, want: CameraMain},
		{name: "unknown", input: "rear", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, ok := table.Camera(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Camera(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && preset.Camera != tt.want {
				t.Errorf("Camera(%q) = %s, want %s", tt.input, preset.Camera, tt.want)
			}
		})
	}
}

func TestCameraIdentityFields(t *testing.T) {
	table := Builtin()

	main, ok := table.Camera("main")
	if !ok {
		t.Fatal("main camera preset missing")
	}
	if main.Make != "Meta" {
		t.Errorf("expected make=Meta, got %q", main.Make)
	}
	if main.Model != "Ray-Ban Stories" {
		t.Errorf("expected model=Ray-Ban Stories, got %q", main.Model)
	}
	if main.AudioChannels != 2 {
		t.Errorf("expected 2 audio channels, got %d", main.AudioChannels)
	}
	if main.DefaultLocation == "" {
		t.Error("expected main camera to carry a default location")
	}

	front, ok := table.Camera("front")
	if !ok {
		t.Fatal("front camera preset missing")
	}
	if front.DefaultLocation == main.DefaultLocation {
		t.Error("front and main cameras must default to different cities")
	}
	if _, ok := table.Location(front.DefaultLocation); !ok {
		t.Errorf("front default location %q not in table", front.DefaultLocation)
	}
	if _, ok := table.Location(main.DefaultLocation); !ok {
		t.Errorf("main default location %q not in table", main.DefaultLocation)
	}
}

func TestLocationLookup(t *testing.T) {
	table := Builtin()

	tokyo, ok := table.Location("tokyo")
	if !ok {
		t.Fatal("tokyo preset missing")
	}
	if tokyo.Latitude != 35.6762 {
		t.Errorf("expected tokyo latitude 35.6762, got %v", tokyo.Latitude)
	}
	if tokyo.Longitude != 139.6503 {
		t.Errorf("expected tokyo longitude 139.6503, got %v", tokyo.Longitude)
	}
	if tokyo.Altitude != 20 {
		t.Errorf("expected tokyo altitude 20, got %v", tokyo.Altitude)
	}

	// Case-insensitive keys
	if _, ok := table.Location("Tokyo"); !ok {
		t.Error("expected case-insensitive location lookup")
	}
	if _, ok := table.Location("atlantis"); ok {
		t.Error("expected unknown location to miss")
	}
}

func TestQualityTiers(t *testing.T) {
	table := Builtin()

	tests := []struct {
		tier   string
		crf    int
		preset string
	}{
		{tier: "low", crf: 28, preset: "veryfast"},
		{tier: "medium", crf: 23, preset: "medium"},
		{tier: "high", crf: 20, preset: "slow"},
		{tier: "maximum", crf: 17, preset: "veryslow"},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			q, ok := table.Quality(tt.tier)
			if !ok {
				t.Fatalf("quality tier %q missing", tt.tier)
			}
			if q.CRF != tt.crf {
				t.Errorf("expected crf=%d, got %d", tt.crf, q.CRF)
			}
			if q.Preset != tt.preset {
				t.Errorf("expected preset=%q, got %q", tt.preset, q.Preset)
			}
		})
	}

	if _, ok := table.Quality("ultra"); ok {
		t.Error("expected unknown quality tier to miss")
	}
}

func TestListingsAreStable(t *testing.T) {
	table := Builtin()

	locs := table.Locations()
	if len(locs) < 5 {
		t.Fatalf("expected at least 5 built-in locations, got %d", len(locs))
	}
	keys := make([]string, 0, len(locs))
	for _, l := range locs {
		keys = append(keys, l.Key)
	}
	if !sort.StringsAreSorted(keys) {
		t.Errorf("expected location listing sorted by key, got %v", keys)
	}

	cams := table.Cameras()
	if len(cams) != 2 || cams[0].Camera != CameraMain || cams[1].Camera != CameraFront {
		t.Errorf("expected cameras listed main then front, got %v", cams)
	}

	tiers := table.Qualities()
	if len(tiers) != 4 || tiers[0].Quality != QualityLow || tiers[3].Quality != QualityMaximum {
		t.Errorf("expected four tiers low..maximum, got %v", tiers)
	}
}
