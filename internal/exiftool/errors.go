// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package exiftool

import (
	"errors"
	"fmt"
)

// ReadError reports that a file's metadata could not be read or decoded.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read metadata from %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// NewReadError creates a metadata read error for a file.
func NewReadError(path string, err error) *ReadError {
	return &ReadError{Path: path, Err: err}
}

// IsReadError reports whether err is a metadata read error.
func IsReadError(err error) bool {
	var e *ReadError
	return errors.As(err, &e)
}
