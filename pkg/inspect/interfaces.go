// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package inspect

import (
	"context"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

type ServiceInterface interface {
	Summarize(ctx context.Context, archivePath string, opts Options) (*types.DocumentSummary, error)
	Diff(ctx context.Context, a, b *types.DocumentSummary) *types.DiffResult
}

var _ ServiceInterface = (*Service)(nil)
