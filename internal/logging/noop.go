// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package logging

import "go.uber.org/zap"

// NewNoopLogger returns a logger that discards everything, for tests and
// optional wiring.
func NewNoopLogger() *Logger {
	return &Logger{zap.NewNop().Sugar()}
}
