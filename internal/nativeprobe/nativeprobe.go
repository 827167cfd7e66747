// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package nativeprobe reads metadata without external tools. It is the
// analyze fallback when exiftool is absent: MP4-family containers are
// read through dhowden/tag, JPEG stills through goexif. Writes always
// require the external tool; this package is strictly read-only.
package nativeprobe

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dhowden/tag"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"glassmark/internal/exiftool"
)

// File reads whatever metadata the pure-Go readers can surface for path.
// Extensions without a native reader fail with a ReadError.
func File(path string) (map[string]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp4", ".m4v", ".mov":
		return container(path)
	case ".jpg", ".jpeg":
		return still(path)
	default:
		return nil, exiftool.NewReadError(path, fmt.Errorf("no native reader for %s files", ext))
	}
}

// container reads MP4-family atom metadata.
func container(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, exiftool.NewReadError(path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, exiftool.NewReadError(path, err)
	}

	tags := map[string]string{
		"Format":   string(m.Format()),
		"FileType": string(m.FileType()),
	}
	put := func(key, value string) {
		if value != "" {
			tags[key] = value
		}
	}
	put("Title", m.Title())
	put("Artist", m.Artist())
	put("Album", m.Album())
	put("Comment", m.Comment())
	if m.Year() != 0 {
		tags["Year"] = strconv.Itoa(m.Year())
	}

	// Raw atom values, skipping binary payloads such as cover art.
	for key, value := range m.Raw() {
		if _, exists := tags[key]; exists {
			continue
		}
		switch v := value.(type) {
		case string:
			if v != "" {
				tags[key] = v
			}
		case int:
			tags[key] = strconv.Itoa(v)
		case uint8, uint16, uint32, int8, int16, int32, int64:
			tags[key] = fmt.Sprintf("%d", v)
		case bool:
			tags[key] = strconv.FormatBool(v)
		}
	}
	return tags, nil
}

// still reads EXIF metadata from a JPEG, including decimal GPS
// coordinates when the position tags are present.
func still(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, exiftool.NewReadError(path, err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, exiftool.NewReadError(path, err)
	}

	collector := &tagCollector{tags: make(map[string]string)}
	x.Walk(collector)

	if lat, long, err := x.LatLong(); err == nil {
		collector.tags["GPSLatitudeDecimal"] = strconv.FormatFloat(lat, 'f', 6, 64)
		collector.tags["GPSLongitudeDecimal"] = strconv.FormatFloat(long, 'f', 6, 64)
	}
	return collector.tags, nil
}

// tagCollector gathers every EXIF field the walker visits.
type tagCollector struct {
	tags map[string]string
}

// Walk implements the exif Walker interface.
func (c *tagCollector) Walk(name exif.FieldName, field *tiff.Tag) error {
	if field != nil {
		c.tags[string(name)] = field.String()
	}
	return nil
}
