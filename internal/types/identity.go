// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package types

import "strings"

// ProvenanceKind tags the class of location an identity was found in.
type ProvenanceKind string

const (
	ProvenanceAdministrator ProvenanceKind = "administrator"
	ProvenanceGroupMember   ProvenanceKind = "group member"
	ProvenanceListField     ProvenanceKind = "list field"
	ProvenanceFileProperty  ProvenanceKind = "file property"
	ProvenanceDirectory     ProvenanceKind = "directory"
)

// Provenance records where a user reference was found. Only the first
// sighting is retained per identity.
type Provenance struct {
	Kind   ProvenanceKind `json:"kind"`
	Detail string         `json:"detail"`
}

func (p Provenance) String() string {
	if p.Detail == "" {
		return string(p.Kind)
	}
	return string(p.Kind) + " " + p.Detail
}

// UserReference is a normalized identity plus its original raw form and a
// display name. Equality is case-insensitive on the normalized form.
type UserReference struct {
	Normalized  string `json:"identity"`
	Raw         string `json:"raw,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// NewUserReference normalizes the raw identity by lowercasing.
func NewUserReference(raw, displayName string) UserReference {
	return UserReference{
		Normalized:  strings.ToLower(strings.TrimSpace(raw)),
		Raw:         raw,
		DisplayName: displayName,
	}
}

// Equal compares two references on their normalized identity.
func (r UserReference) Equal(other UserReference) bool {
	return r.Normalized == other.Normalized
}

// ExtractedIdentity pairs a user reference with the location it was first
// seen at.
type ExtractedIdentity struct {
	Reference  UserReference `json:"reference"`
	Provenance Provenance    `json:"provenance"`
}
