// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package mapping loads and validates the identity mapping table from a
// tabular mapping file and exposes case-insensitive lookup. The table is
// immutable once loaded.
package mapping

import (
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/identity"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

// Table is an ordered mapping from normalized source identity to its entry.
type Table struct {
	entries map[string]types.MappingEntry
	order   []string
	skipped int
}

// Lookup returns the entry for an identity, case-insensitively.
func (t *Table) Lookup(id string) (types.MappingEntry, bool) {
	entry, ok := t.entries[identity.Normalize(id)]
	return entry, ok
}

// Entries returns all entries in file order, skip entries included.
func (t *Table) Entries() []types.MappingEntry {
	out := make([]types.MappingEntry, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.entries[key])
	}
	return out
}

// Len is the number of entries, skip entries included.
func (t *Table) Len() int {
	return len(t.order)
}

// Skipped is the number of skip entries (empty target).
func (t *Table) Skipped() int {
	return t.skipped
}

// Mapped is the number of entries participating in substitution.
func (t *Table) Mapped() int {
	return len(t.order) - t.skipped
}

// add stores an entry keyed by its normalized source. The last occurrence
// of a duplicate source wins, retaining the first occurrence's position.
func (t *Table) add(entry types.MappingEntry) {
	key := identity.Normalize(entry.SourceUser)

	if previous, ok := t.entries[key]; ok {
		if previous.Skip() {
			t.skipped--
		}
	} else {
		t.order = append(t.order, key)
	}

	if entry.Skip() {
		t.skipped++
	}
	t.entries[key] = entry
}

func newTable() *Table {
	return &Table{entries: make(map[string]types.MappingEntry)}
}
