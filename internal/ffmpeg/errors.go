// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ffmpeg

import (
	"errors"
	"fmt"
)

// InsufficientInputsError reports a concatenation attempted with fewer
// than two inputs. It fires before any external call.
type InsufficientInputsError struct {
	Count int
}

func (e *InsufficientInputsError) Error() string {
	return fmt.Sprintf("merge requires at least 2 input files, got %d", e.Count)
}

// NewInsufficientInputsError creates an insufficient-inputs error.
func NewInsufficientInputsError(count int) *InsufficientInputsError {
	return &InsufficientInputsError{Count: count}
}

// IsInsufficientInputs reports whether err is an insufficient-inputs error.
func IsInsufficientInputs(err error) bool {
	var e *InsufficientInputsError
	return errors.As(err, &e)
}
