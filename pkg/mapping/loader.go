// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package mapping

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jszwec/csvutil"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

// Mandatory mapping file columns. The display name and notes columns are
// optional; absent display names default to the raw identity string.
const (
	columnSourceUser = "SourceUser"
	columnTargetUser = "TargetUser"
)

// Load reads the tabular mapping file at path into an immutable Table.
//
// Row handling: values are trimmed; rows with an empty SourceUser are
// silently dropped (blank-line tolerance); rows with an empty TargetUser
// become skip entries, logged but valid; duplicate sources keep the last
// occurrence. A missing mandatory column or an empty file is a
// *MappingFileFormatError and aborts before any directory calls are made.
func Load(path string, logger logging.LoggerInterface) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newUnreadableError(path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	dec, err := csvutil.NewDecoder(reader)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, newEmptyFileError(path)
		}
		return nil, newUnreadableError(path, err)
	}

	if err := checkHeader(path, dec.Header()); err != nil {
		return nil, err
	}

	validate := validator.New()
	table := newTable()

	for {
		var entry types.MappingEntry
		if err := dec.Decode(&entry); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, newUnreadableError(path, err)
		}

		trimEntry(&entry)

		if entry.SourceUser == "" {
			continue
		}

		applyDefaults(&entry)

		if entry.Skip() {
			logger.Infof("mapping entry %q has no target, excluded from substitution", entry.SourceUser)
		} else if err := validate.Struct(entry); err != nil {
			logger.Warnf("mapping entry %q has a non email-shaped target %q: %v", entry.SourceUser, entry.TargetUser, err)
		}

		table.add(entry)
	}

	if table.Len() == 0 {
		return nil, newEmptyFileError(path)
	}

	logger.Infof("loaded %d mapping entries from %s (%d skipped)", table.Len(), path, table.Skipped())
	return table, nil
}

func checkHeader(path string, header []string) error {
	present := make(map[string]bool, len(header))
	for _, column := range header {
		present[strings.TrimSpace(column)] = true
	}

	for _, required := range []string{columnSourceUser, columnTargetUser} {
		if !present[required] {
			return newMissingColumnError(path, required)
		}
	}
	return nil
}

func trimEntry(e *types.MappingEntry) {
	e.SourceUser = strings.TrimSpace(e.SourceUser)
	e.TargetUser = strings.TrimSpace(e.TargetUser)
	e.SourceDisplayName = strings.TrimSpace(e.SourceDisplayName)
	e.TargetDisplayName = strings.TrimSpace(e.TargetDisplayName)
	e.Notes = strings.TrimSpace(e.Notes)
}

func applyDefaults(e *types.MappingEntry) {
	if e.SourceDisplayName == "" {
		e.SourceDisplayName = e.SourceUser
	}
	if e.TargetDisplayName == "" && e.TargetUser != "" {
		e.TargetDisplayName = e.TargetUser
	}
}
