// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package directory

import "context"

var _ DirectoryInterface = (*NoopClient)(nil)

// NoopClient treats every looked-up user as present. It is wired when no
// directory endpoint is configured, so extraction and rewrite can run
// without a reachable target tenant.
type NoopClient struct{}

func (c *NoopClient) FindUser(ctx context.Context, login string) (*User, error) {
	return &User{Login: login}, nil
}

func (c *NoopClient) EnsureUser(ctx context.Context, login string) (*User, error) {
	return &User{Login: login}, nil
}

func (c *NoopClient) ListUsers(ctx context.Context) ([]*User, error) {
	return nil, nil
}

func (c *NoopClient) ListGroups(ctx context.Context) ([]string, error) {
	return nil, nil
}

func (c *NoopClient) ListGroupMembers(ctx context.Context, groupName string) ([]*User, error) {
	return nil, nil
}

func NewNoopClient() *NoopClient {
	return new(NoopClient)
}
