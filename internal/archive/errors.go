// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package archive

import (
	"errors"
	"fmt"
)

var (
	// ErrArchiveFormat means the input path is not a readable compressed
	// package. Structural, never retried.
	ErrArchiveFormat = errors.New("not a valid compressed package")

	// ErrManifestNotFound means no contained XML document carries the
	// provisioning-template root element.
	ErrManifestNotFound = errors.New("no provisioning template document found in package")
)

// RewriteIOError is a repackaging failure. The scratch directory is still
// cleaned up when it is returned.
type RewriteIOError struct {
	Path string
	Err  error
}

func (e *RewriteIOError) Error() string {
	return fmt.Sprintf("failed to repackage archive at %s: %v", e.Path, e.Err)
}

func (e *RewriteIOError) Unwrap() error {
	return e.Err
}
