// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package types

type ValidationStatus string

const (
	ValidationValid   ValidationStatus = "valid"
	ValidationInvalid ValidationStatus = "invalid"
)

// ValidationOutcome is the per-entry result of checking a mapped target
// identity against the target directory.
type ValidationOutcome struct {
	Entry  MappingEntry     `json:"entry"`
	Status ValidationStatus `json:"status"`
	Reason string           `json:"reason,omitempty"`
}

// ValidationReport aggregates outcomes for every non-skip mapping entry.
type ValidationReport struct {
	Outcomes []ValidationOutcome `json:"outcomes"`
	Valid    int                 `json:"valid"`
	Invalid  int                 `json:"invalid"`
	Skipped  int                 `json:"skipped"`
}

// IsValid is false if any entry failed validation.
func (r *ValidationReport) IsValid() bool {
	return r.Invalid == 0
}

// Failures returns the invalid outcomes only.
func (r *ValidationReport) Failures() []ValidationOutcome {
	failures := make([]ValidationOutcome, 0, r.Invalid)
	for _, o := range r.Outcomes {
		if o.Status == ValidationInvalid {
			failures = append(failures, o)
		}
	}
	return failures
}
