// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the shared JSON envelope returned by every HTTP handler.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}
