// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package types

// MappingEntry is one row of the identity mapping table. An entry with an
// empty TargetUser is a skip entry: valid, but excluded from substitution.
type MappingEntry struct {
	SourceUser        string `csv:"SourceUser" json:"source_user" validate:"required"`
	TargetUser        string `csv:"TargetUser" json:"target_user" validate:"omitempty,email"`
	SourceDisplayName string `csv:"SourceDisplayName,omitempty" json:"source_display_name,omitempty"`
	TargetDisplayName string `csv:"TargetDisplayName,omitempty" json:"target_display_name,omitempty"`
	Notes             string `csv:"Notes,omitempty" json:"notes,omitempty"`
}

// Skip reports whether the entry is excluded from substitution.
func (e MappingEntry) Skip() bool {
	return e.TargetUser == ""
}
