// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package directory

import "context"

// User is a principal known to the target directory.
type User struct {
	Login       string `json:"login"`
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// DirectoryInterface is the external directory collaborator contract the core
// consumes. Absence is modeled as (nil, nil), not an error; errors are
// reserved for collaborator failures, including "not found in tenant" on
// EnsureUser.
type DirectoryInterface interface {
	FindUser(ctx context.Context, login string) (*User, error)
	EnsureUser(ctx context.Context, login string) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	ListGroups(ctx context.Context) ([]string, error)
	ListGroupMembers(ctx context.Context, groupName string) ([]*User, error)
}
