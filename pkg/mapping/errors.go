// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package mapping

import "fmt"

// Error codes for mapping file errors
const (
	ErrCodeMissingColumn = "MISSING_COLUMN"
	ErrCodeEmptyFile     = "EMPTY_FILE"
	ErrCodeUnreadable    = "UNREADABLE_FILE"
)

// MappingFileFormatError is a structural mapping-file failure: it aborts the
// run before any directory calls are made and names the offending file and,
// where applicable, the missing column.
type MappingFileFormatError struct {
	Code    string
	Path    string
	Column  string
	Message string
}

func (e *MappingFileFormatError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("mapping file %s: %s (add required column %q)", e.Path, e.Message, e.Column)
	}
	return fmt.Sprintf("mapping file %s: %s", e.Path, e.Message)
}

// Is implements error matching on the code, so callers can test against a
// prototype error.
func (e *MappingFileFormatError) Is(target error) bool {
	t, ok := target.(*MappingFileFormatError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newMissingColumnError(path, column string) *MappingFileFormatError {
	return &MappingFileFormatError{
		Code:    ErrCodeMissingColumn,
		Path:    path,
		Column:  column,
		Message: fmt.Sprintf("required column %q not found in header", column),
	}
}

func newEmptyFileError(path string) *MappingFileFormatError {
	return &MappingFileFormatError{
		Code:    ErrCodeEmptyFile,
		Path:    path,
		Message: "file is empty",
	}
}

func newUnreadableError(path string, err error) *MappingFileFormatError {
	return &MappingFileFormatError{
		Code:    ErrCodeUnreadable,
		Path:    path,
		Message: fmt.Sprintf("failed to read file: %v", err),
	}
}
