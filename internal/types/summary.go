// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package types

// EntityKind enumerates the entity classes surfaced by the inspection engine.
type EntityKind string

const (
	EntityLists        EntityKind = "lists"
	EntityLibraries    EntityKind = "libraries"
	EntityPages        EntityKind = "pages"
	EntityUsers        EntityKind = "users"
	EntityContentTypes EntityKind = "content_types"
	EntityFields       EntityKind = "fields"
)

// EntitySummary holds the count and key list for one entity kind. Keys are
// the comparison property for that kind: title for lists and pages, email
// for users, name for content types and fields.
type EntitySummary struct {
	Count int      `json:"count"`
	Keys  []string `json:"keys"`
}

// DocumentSummary is the normalized summary of one archive's manifest.
type DocumentSummary struct {
	Archive  string                       `json:"archive,omitempty"`
	Entities map[EntityKind]EntitySummary `json:"entities"`
}

// DiffSet is the per-kind set difference between two summaries. Comparison
// is exact-string on the kind's key property; titles are case-sensitive in
// the source system.
type DiffSet struct {
	OnlyInA []string `json:"only_in_a"`
	OnlyInB []string `json:"only_in_b"`
	InBoth  []string `json:"in_both"`
}

// DiffResult holds the set differences for every compared entity kind.
type DiffResult struct {
	ArchiveA string                 `json:"archive_a,omitempty"`
	ArchiveB string                 `json:"archive_b,omitempty"`
	Kinds    map[EntityKind]DiffSet `json:"kinds"`
}
