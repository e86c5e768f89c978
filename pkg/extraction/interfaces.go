// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package extraction

import (
	"context"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

// DriverInterface defines the contract for identity sources. A driver
// reports every sighting it encounters, duplicates included; dedup and
// filtering are the service's concern.
type DriverInterface interface {
	Source() string
	FetchIdentities(ctx context.Context) ([]types.ExtractedIdentity, error)
}
