// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package presets holds the built-in camera, location, and quality tables
// that drive metadata resolution and transcoding. The catalog is built once
// at process start and never mutated; lookups return copies.
package presets

import (
	"sort"
	"strings"
)

// Camera selects one of the two simulated glasses cameras.
type Camera string

const (
	// CameraMain is the forward-facing wide camera profile.
	CameraMain Camera = "main"

	// CameraFront is the selfie camera profile.
	CameraFront Camera = "front"
)

// Quality tier names, ordered from fastest to best-looking.
const (
	QualityLow     = "low"
	QualityMedium  = "medium"
	QualityHigh    = "high"
	QualityMaximum = "maximum"
)

// CameraPreset describes the identity and capture characteristics of one
// camera type, including the transcode profile used by optimization.
type CameraPreset struct {
	Camera          Camera
	Make            string
	Model           string
	Software        string
	LensModel       string
	DeviceType      string
	CaptureMode     string
	FieldOfView     string
	Stabilization   string
	Microphone      string
	AudioChannels   int
	Comment         string
	DefaultLocation string

	// Transcode profile
	Width        int
	Height       int
	FrameRate    int
	VideoBitrate string
}

// Location is a named GPS position used for metadata stamping. The yaml
// tags allow user-defined locations in the config file to share the type.
type Location struct {
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Altitude  float64 `yaml:"altitude"`
}

// NamedLocation pairs a location with its lookup key for listings.
type NamedLocation struct {
	Key string
	Location
}

// QualityProfile maps a quality tier to encoder settings.
type QualityProfile struct {
	Quality string
	CRF     int
	Preset  string
}

// Table is the immutable preset catalog. Construct it with Builtin and
// pass it by reference into the resolver and the CLI.
type Table struct {
	cameras   map[Camera]CameraPreset
	locations map[string]Location
	qualities map[string]QualityProfile
}

var builtin = &Table{
	cameras: map[Camera]CameraPreset{
		CameraMain: {
			Camera:          CameraMain,
			Make:            "Meta",
			Model:           "Ray-Ban Stories",
			Software:        "Meta View v164.0",
			LensModel:       "Ray-Ban Stories Wide Camera 2.6mm f/2.2",
			DeviceType:      "Smart Glasses",
			CaptureMode:     "Wide",
			FieldOfView:     "105.0 deg",
			Stabilization:   "Electronic",
			Microphone:      "Ray-Ban Stories 3-Mic Array",
			AudioChannels:   2,
			Comment:         "POV video captured on Ray-Ban Stories",
			DefaultLocation: "newyork",
			Width:           1552,
			Height:          1936,
			FrameRate:       30,
			VideoBitrate:    "18M",
		},
		CameraFront: {
			Camera:          CameraFront,
			Make:            "Meta",
			Model:           "Ray-Ban Stories",
			Software:        "Meta View v164.0",
			LensModel:       "Ray-Ban Stories Selfie Camera 2.6mm f/2.2",
			DeviceType:      "Smart Glasses",
			CaptureMode:     "Selfie",
			FieldOfView:     "84.0 deg",
			Stabilization:   "Electronic",
			Microphone:      "Ray-Ban Stories 3-Mic Array",
			AudioChannels:   2,
			Comment:         "Selfie video captured on Ray-Ban Stories",
			DefaultLocation: "losangeles",
			Width:           1440,
			Height:          1920,
			FrameRate:       30,
			VideoBitrate:    "12M",
		},
	},
	locations: map[string]Location{
		"tokyo":      {Name: "Tokyo", Latitude: 35.6762, Longitude: 139.6503, Altitude: 20},
		"newyork":    {Name: "New York", Latitude: 40.7128, Longitude: -74.0060, Altitude: 10},
		"london":     {Name: "London", Latitude: 51.5074, Longitude: -0.1278, Altitude: 11},
		"paris":      {Name: "Paris", Latitude: 48.8566, Longitude: 2.3522, Altitude: 35},
		"sydney":     {Name: "Sydney", Latitude: -33.8688, Longitude: 151.2093, Altitude: 3},
		"losangeles": {Name: "Los Angeles", Latitude: 34.0522, Longitude: -118.2437, Altitude: 71},
		"milan":      {Name: "Milan", Latitude: 45.4642, Longitude: 9.1900, Altitude: 120},
	},
	qualities: map[string]QualityProfile{
		QualityLow:     {Quality: QualityLow, CRF: 28, Preset: "veryfast"},
		QualityMedium:  {Quality: QualityMedium, CRF: 23, Preset: "medium"},
		QualityHigh:    {Quality: QualityHigh, CRF: 20, Preset: "slow"},
		QualityMaximum: {Quality: QualityMaximum, CRF: 17, Preset: "veryslow"},
	},
}

// Builtin returns the process-wide preset catalog.
func Builtin() *Table {
	return builtin
}

// Camera looks up a camera preset by name. Names are case-insensitive.
func (t *Table) Camera(name string) (CameraPreset, bool) {
	preset, ok := t.cameras[Camera(strings.ToLower(strings.TrimSpace(name)))]
	return preset, ok
}

// Location looks up a location preset by key. Keys are case-insensitive.
func (t *Table) Location(key string) (Location, bool) {
	loc, ok := t.locations[NormalizeLocationKey(key)]
	return loc, ok
}

// Quality looks up a quality tier by name. Names are case-insensitive.
func (t *Table) Quality(name string) (QualityProfile, bool) {
	q, ok := t.qualities[strings.ToLower(strings.TrimSpace(name))]
	return q, ok
}

// Cameras lists the camera presets, main first.
func (t *Table) Cameras() []CameraPreset {
	return []CameraPreset{t.cameras[CameraMain], t.cameras[CameraFront]}
}

// Locations lists the built-in locations sorted by key.
func (t *Table) Locations() []NamedLocation {
	keys := make([]string, 0, len(t.locations))
	for key := range t.locations {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]NamedLocation, 0, len(keys))
	for _, key := range keys {
		out = append(out, NamedLocation{Key: key, Location: t.locations[key]})
	}
	return out
}

// Qualities lists the quality tiers in ascending quality order.
func (t *Table) Qualities() []QualityProfile {
	return []QualityProfile{
		t.qualities[QualityLow],
		t.qualities[QualityMedium],
		t.qualities[QualityHigh],
		t.qualities[QualityMaximum],
	}
}

// CameraNames returns the valid camera selector values.
func CameraNames() []string {
	return []string{string(CameraMain), string(CameraFront)}
}

// QualityNames returns the valid quality tier values in tier order.
func QualityNames() []string {
	return []string{QualityLow, QualityMedium, QualityHigh, QualityMaximum}
}

// NormalizeLocationKey canonicalizes a location lookup key.
func NormalizeLocationKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
