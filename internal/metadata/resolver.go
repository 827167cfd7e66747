// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"strconv"
	"strings"
	"time"

	"glassmark/internal/presets"
)

const (
	// MutedMicrophone is the microphone label stamped on muted videos.
	MutedMicrophone = "None"

	// DefaultExplicitAltitude applies when explicit coordinates arrive
	// without an altitude of their own.
	DefaultExplicitAltitude = "5"
)

// Config carries the caller's per-run stamping overrides. Every field is
// optional; empty values fall back per the resolution rules.
type Config struct {
	Camera    string
	Location  string
	Latitude  string
	Longitude string
	Altitude  string
	Date      string
	Comment   string
	MuteAudio bool
}

// Resolver merges camera presets, location presets, and caller overrides
// into complete metadata records.
type Resolver struct {
	table *presets.Table
	extra map[string]presets.Location
}

// NewResolver builds a resolver over the preset table plus user-defined
// locations from the config file. An extra entry shadows a built-in with
// the same key.
func NewResolver(table *presets.Table, extra map[string]presets.Location) *Resolver {
	normalized := make(map[string]presets.Location, len(extra))
	for key, loc := range extra {
		normalized[presets.NormalizeLocationKey(key)] = loc
	}
	return &Resolver{table: table, extra: normalized}
}

// Resolve builds the complete record for one run. It is total: unknown
// camera or location names fall back to defaults instead of failing, and
// explicit date strings are passed through without validation.
func (r *Resolver) Resolve(cfg Config) *Record {
	cam, ok := r.table.Camera(cfg.Camera)
	if !ok {
		cam, _ = r.table.Camera(string(presets.CameraMain))
	}

	rec := &Record{
		Make:          cam.Make,
		Model:         cam.Model,
		Software:      cam.Software,
		LensModel:     cam.LensModel,
		DeviceType:    cam.DeviceType,
		CaptureMode:   cam.CaptureMode,
		FieldOfView:   cam.FieldOfView,
		Stabilization: cam.Stabilization,
		Microphone:    cam.Microphone,
		AudioChannels: cam.AudioChannels,
		Comment:       cam.Comment,
	}

	r.resolveGPS(cfg, cam, rec)

	if cfg.Date != "" {
		rec.Timestamp = cfg.Date
	} else {
		rec.Timestamp = time.Now().Format(TimeLayout)
	}

	if cfg.Comment != "" {
		rec.Comment = cfg.Comment
	}

	// Applied after all other merging so presets can never reintroduce
	// audio on a muted record.
	if cfg.MuteAudio {
		rec.AudioChannels = 0
		rec.Microphone = MutedMicrophone
	}

	return rec
}

// LookupLocation resolves a location key against the user extras first,
// then the built-in table.
func (r *Resolver) LookupLocation(key string) (presets.Location, bool) {
	normalized := presets.NormalizeLocationKey(key)
	if normalized == "" {
		return presets.Location{}, false
	}
	if loc, ok := r.extra[normalized]; ok {
		return loc, true
	}
	return r.table.Location(normalized)
}

// resolveGPS applies the coordinate precedence: explicit pair, then named
// location, then the camera's default city. A lone latitude or longitude
// without its partner is ignored.
func (r *Resolver) resolveGPS(cfg Config, cam presets.CameraPreset, rec *Record) {
	if cfg.Latitude != "" && cfg.Longitude != "" {
		rec.GPSLatitude, rec.GPSLatitudeRef = splitSigned(cfg.Latitude, "N", "S")
		rec.GPSLongitude, rec.GPSLongitudeRef = splitSigned(cfg.Longitude, "E", "W")
		if cfg.Altitude != "" {
			rec.GPSAltitude = cfg.Altitude
		} else {
			rec.GPSAltitude = DefaultExplicitAltitude
		}
		return
	}

	loc, ok := r.LookupLocation(cfg.Location)
	if !ok {
		loc, _ = r.LookupLocation(cam.DefaultLocation)
	}

	rec.GPSLatitude, rec.GPSLatitudeRef = splitSigned(formatCoordinate(loc.Latitude), "N", "S")
	rec.GPSLongitude, rec.GPSLongitudeRef = splitSigned(formatCoordinate(loc.Longitude), "E", "W")
	if cfg.Altitude != "" {
		rec.GPSAltitude = cfg.Altitude
	} else {
		rec.GPSAltitude = formatCoordinate(loc.Altitude)
	}
}

// splitSigned turns a signed decimal string into an absolute value plus a
// hemisphere reference. The sign is handled lexically so arbitrary caller
// strings pass through untouched apart from the leading sign.
func splitSigned(value, positive, negative string) (string, string) {
	v := strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(v, "-"):
		return v[1:], negative
	case strings.HasPrefix(v, "+"):
		return v[1:], positive
	default:
		return v, positive
	}
}

// formatCoordinate renders a preset float without trailing zeros, so an
// altitude of 20 stamps as "20" rather than "20.0".
func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
