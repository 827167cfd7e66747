// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"errors"
	"fmt"
	"strings"
)

// UnsupportedFileTypeError reports an input whose extension is not in the
// video allow-list.
type UnsupportedFileTypeError struct {
	Path string
	Ext  string
}

func (e *UnsupportedFileTypeError) Error() string {
	return fmt.Sprintf("unsupported file type %q for %s (supported: %s)",
		e.Ext, e.Path, strings.Join(SupportedExtensions(), " "))
}

// NewUnsupportedFileTypeError creates an unsupported-file-type error.
func NewUnsupportedFileTypeError(path, ext string) *UnsupportedFileTypeError {
	return &UnsupportedFileTypeError{Path: path, Ext: ext}
}

// IsUnsupportedFileType reports whether err is an unsupported-file-type error.
func IsUnsupportedFileType(err error) bool {
	var e *UnsupportedFileTypeError
	return errors.As(err, &e)
}
