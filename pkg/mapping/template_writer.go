// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package mapping

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jszwec/csvutil"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

// WriteTemplate writes a starter mapping file for the extracted identities,
// with TargetUser pre-populated to SourceUser and the provenance carried in
// the Notes column. The result uses the same five-column schema Load reads.
func WriteTemplate(path string, identities []types.ExtractedIdentity) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create mapping template %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	enc := csvutil.NewEncoder(w)

	// The header is written up front so the generated file carries the
	// five-column schema even when the extraction found nothing.
	if err := enc.EncodeHeader(types.MappingEntry{}); err != nil {
		return fmt.Errorf("failed to write mapping template %s: %w", path, err)
	}

	for _, id := range identities {
		displayName := id.Reference.DisplayName
		if displayName == "" {
			displayName = id.Reference.Normalized
		}

		entry := types.MappingEntry{
			SourceUser:        id.Reference.Normalized,
			TargetUser:        id.Reference.Normalized,
			SourceDisplayName: displayName,
			TargetDisplayName: displayName,
			Notes:             id.Provenance.String(),
		}
		if err := enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to write mapping template %s: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write mapping template %s: %w", path, err)
	}
	return nil
}
