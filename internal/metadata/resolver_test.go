// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package metadata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glassmark/internal/presets"
)

func newTestResolver(extra map[string]presets.Location) *Resolver {
	return NewResolver(presets.Builtin(), extra)
}

func TestResolveTokyoMutedFrontCamera(t *testing.T) {
	r := newTestResolver(nil)

	rec := r.Resolve(Config{
		Camera:    "front",
		Location:  "tokyo",
		MuteAudio: true,
	})

	require.NotNil(t, rec)
	assert.Equal(t, "Meta", rec.Make)
	assert.Equal(t, "Ray-Ban Stories", rec.Model)
	assert.Equal(t, "35.6762", rec.GPSLatitude)
	assert.Equal(t, "N", rec.GPSLatitudeRef)
	assert.Equal(t, "139.6503", rec.GPSLongitude)
	assert.Equal(t, "E", rec.GPSLongitudeRef)
	assert.Equal(t, "20", rec.GPSAltitude)
	assert.Equal(t, 0, rec.AudioChannels)
	assert.Equal(t, "None", rec.Microphone)
}

func TestResolveDefaultCities(t *testing.T) {
	r := newTestResolver(nil)

	main := r.Resolve(Config{Camera: "main"})
	assert.Equal(t, "40.7128", main.GPSLatitude)
	assert.Equal(t, "N", main.GPSLatitudeRef)
	assert.Equal(t, "74.006", main.GPSLongitude)
	assert.Equal(t, "W", main.GPSLongitudeRef)
	assert.Equal(t, "10", main.GPSAltitude)

	front := r.Resolve(Config{Camera: "front"})
	assert.Equal(t, "34.0522", front.GPSLatitude)
	assert.Equal(t, "118.2437", front.GPSLongitude)
	assert.Equal(t, "W", front.GPSLongitudeRef)
	assert.Equal(t, "71", front.GPSAltitude)

	assert.NotEqual(t, main.GPSLatitude, front.GPSLatitude,
		"main and front cameras must default to different cities")
}

func TestResolveNamedLocationBothCameras(t *testing.T) {
	r := newTestResolver(nil)

	for _, camera := range []string{"main", "front"} {
		rec := r.Resolve(Config{Camera: camera, Location: "sydney"})
		assert.Equal(t, "33.8688", rec.GPSLatitude, camera)
		assert.Equal(t, "S", rec.GPSLatitudeRef, camera)
		assert.Equal(t, "151.2093", rec.GPSLongitude, camera)
		assert.Equal(t, "E", rec.GPSLongitudeRef, camera)
		assert.Equal(t, "3", rec.GPSAltitude, camera)
	}
}

func TestResolveExplicitCoordinates(t *testing.T) {
	r := newTestResolver(nil)

	tests := []struct {
		name   string
		cfg    Config
		lat    string
		latRef string
		lon    string
		lonRef string
		alt    string
	}{
		{
			name:   "no altitude falls back to sentinel",
			cfg:    Config{Latitude: "51.1789", Longitude: "-1.8262"},
			lat:    "51.1789",
			latRef: "N",
			lon:    "1.8262",
			lonRef: "W",
			alt:    "5",
		},
		{
			name:   "explicit altitude wins",
			cfg:    Config{Latitude: "-13.1631", Longitude: "-72.545", Altitude: "2430"},
			lat:    "13.1631",
			latRef: "S",
			lon:    "72.545",
			lonRef: "W",
			alt:    "2430",
		},
		{
			name:   "explicit pair beats named location",
			cfg:    Config{Latitude: "1.0", Longitude: "2.0", Location: "tokyo"},
			lat:    "1.0",
			latRef: "N",
			lon:    "2.0",
			lonRef: "E",
			alt:    "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := r.Resolve(tt.cfg)
			assert.Equal(t, tt.lat, rec.GPSLatitude)
			assert.Equal(t, tt.latRef, rec.GPSLatitudeRef)
			assert.Equal(t, tt.lon, rec.GPSLongitude)
			assert.Equal(t, tt.lonRef, rec.GPSLongitudeRef)
			assert.Equal(t, tt.alt, rec.GPSAltitude)
		})
	}
}

func TestResolveLoneCoordinateIgnored(t *testing.T) {
	r := newTestResolver(nil)

	rec := r.Resolve(Config{Camera: "main", Latitude: "12.34", Location: "tokyo"})

	// Latitude without longitude falls through to the named location.
	assert.Equal(t, "35.6762", rec.GPSLatitude)
	assert.Equal(t, "139.6503", rec.GPSLongitude)
}

func TestResolveCommentOverrideReplaces(t *testing.T) {
	r := newTestResolver(nil)

	preset := r.Resolve(Config{Camera: "main"})
	require.NotEmpty(t, preset.Comment)

	rec := r.Resolve(Config{Camera: "main", Comment: "beach day"})
	assert.Equal(t, "beach day", rec.Comment)
	assert.NotContains(t, rec.Comment, preset.Comment)
}

func TestResolveDateVerbatim(t *testing.T) {
	r := newTestResolver(nil)

	rec := r.Resolve(Config{Date: "2021:09:15 08:30:00"})
	assert.Equal(t, "2021:09:15 08:30:00", rec.Timestamp)

	// No validation on the date string at all.
	garbage := r.Resolve(Config{Date: "yesterday-ish"})
	assert.Equal(t, "yesterday-ish", garbage.Timestamp)
}

func TestResolveTimestampWindow(t *testing.T) {
	r := newTestResolver(nil)

	// The layout is lexicographically ordered, so bounds compare as strings.
	before := time.Now().Format(TimeLayout)
	rec := r.Resolve(Config{})
	after := time.Now().Format(TimeLayout)

	assert.GreaterOrEqual(t, rec.Timestamp, before)
	assert.LessOrEqual(t, rec.Timestamp, after)

	_, err := time.Parse(TimeLayout, rec.Timestamp)
	assert.NoError(t, err, "generated timestamp must match the fixed layout")
}

func TestResolveMuteForcesAudioFields(t *testing.T) {
	r := newTestResolver(nil)

	for _, camera := range []string{"main", "front"} {
		rec := r.Resolve(Config{Camera: camera, MuteAudio: true, Comment: "quiet"})
		assert.Equal(t, 0, rec.AudioChannels, camera)
		assert.Equal(t, "None", rec.Microphone, camera)
	}

	loud := r.Resolve(Config{Camera: "main"})
	assert.Equal(t, 2, loud.AudioChannels)
	assert.NotEqual(t, "None", loud.Microphone)
}

func TestResolveUnknownCameraFallsBack(t *testing.T) {
	r := newTestResolver(nil)

	rec := r.Resolve(Config{Camera: "rear"})

	assert.Equal(t, "Meta", rec.Make)
	assert.Equal(t, "Wide", rec.CaptureMode, "unknown camera falls back to main")
	assert.Equal(t, "40.7128", rec.GPSLatitude)
}

func TestResolveUnknownLocationFallsBack(t *testing.T) {
	r := newTestResolver(nil)

	rec := r.Resolve(Config{Camera: "front", Location: "atlantis"})

	// Unrecognized names fall back to the camera default city.
	assert.Equal(t, "34.0522", rec.GPSLatitude)
	assert.Equal(t, "118.2437", rec.GPSLongitude)
}

func TestResolveUserLocationsShadowBuiltins(t *testing.T) {
	extra := map[string]presets.Location{
		"Tokyo":  {Name: "Not Tokyo", Latitude: 1.5, Longitude: -2.5, Altitude: 3},
		"office": {Name: "HQ Roof", Latitude: 47.6062, Longitude: -122.3321, Altitude: 56},
	}
	r := newTestResolver(extra)

	shadowed := r.Resolve(Config{Location: "tokyo"})
	assert.Equal(t, "1.5", shadowed.GPSLatitude)
	assert.Equal(t, "2.5", shadowed.GPSLongitude)
	assert.Equal(t, "W", shadowed.GPSLongitudeRef)
	assert.Equal(t, "3", shadowed.GPSAltitude)

	custom := r.Resolve(Config{Location: "OFFICE"})
	assert.Equal(t, "47.6062", custom.GPSLatitude)
	assert.Equal(t, "122.3321", custom.GPSLongitude)
}

func TestResolveIsIdempotentWithExplicitDate(t *testing.T) {
	r := newTestResolver(nil)

	cfg := Config{
		Camera:   "front",
		Location: "paris",
		Date:     "2023:01:01 00:00:00",
		Comment:  "same every time",
	}

	first := r.Resolve(cfg)
	second := r.Resolve(cfg)
	require.Equal(t, first, second)
}

func TestResolveIdentityFieldsComeFromPreset(t *testing.T) {
	r := newTestResolver(nil)

	rec := r.Resolve(Config{Camera: "front"})

	assert.Equal(t, "Meta", rec.Make)
	assert.Equal(t, "Ray-Ban Stories", rec.Model)
	assert.Equal(t, "Meta View v164.0", rec.Software)
	assert.Equal(t, "Ray-Ban Stories Selfie Camera 2.6mm f/2.2", rec.LensModel)
	assert.Equal(t, "Smart Glasses", rec.DeviceType)
	assert.Equal(t, "Selfie", rec.CaptureMode)
	assert.Equal(t, "84.0 deg", rec.FieldOfView)
	assert.Equal(t, "Electronic", rec.Stabilization)
}
