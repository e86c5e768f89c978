// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"fmt"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

// IdentityValidationError carries the full per-entry failure list. It is
// surfaced to the caller, who decides whether to proceed; the default policy
// is to abort unless explicitly overridden.
type IdentityValidationError struct {
	Report *types.ValidationReport
}

func (e *IdentityValidationError) Error() string {
	return fmt.Sprintf("%d of %d mapped identities failed validation against the target directory", e.Report.Invalid, e.Report.Invalid+e.Report.Valid)
}
