// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package extraction

import (
	"context"
	"fmt"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/directory"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/identity"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

var _ DriverInterface = (*DirectoryDriver)(nil)

// DirectoryDriver extracts identity sightings from a live directory source:
// site principals first, then group memberships. Per-item field listings are
// the template driver's concern.
type DirectoryDriver struct {
	client directory.DirectoryInterface
}

func NewDirectoryDriver(client directory.DirectoryInterface) *DirectoryDriver {
	return &DirectoryDriver{client: client}
}

func (d *DirectoryDriver) Source() string {
	return "directory"
}

func (d *DirectoryDriver) FetchIdentities(ctx context.Context) ([]types.ExtractedIdentity, error) {
	var sightings []types.ExtractedIdentity

	users, err := d.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory users: %w", err)
	}
	for _, user := range users {
		sightings = append(sightings, userSightings(user, types.Provenance{
			Kind:   types.ProvenanceDirectory,
			Detail: "site user",
		})...)
	}

	groups, err := d.client.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory groups: %w", err)
	}
	for _, group := range groups {
		members, err := d.client.ListGroupMembers(ctx, group)
		if err != nil {
			return nil, fmt.Errorf("failed to list members of group %q: %w", group, err)
		}
		for _, member := range members {
			sightings = append(sightings, userSightings(member, types.Provenance{
				Kind:   types.ProvenanceGroupMember,
				Detail: "of " + group,
			})...)
		}
	}

	return sightings, nil
}

// userSightings extracts identity tokens from a directory user. The login
// may be claims-encoded, so the token pattern is applied to it as well.
func userSightings(user *directory.User, provenance types.Provenance) []types.ExtractedIdentity {
	raw := user.Email
	if raw == "" {
		raw = user.Login
	}

	tokens := identity.Tokens(raw)
	sightings := make([]types.ExtractedIdentity, 0, len(tokens))
	for _, token := range tokens {
		sightings = append(sightings, types.ExtractedIdentity{
			Reference:  types.NewUserReference(token, user.DisplayName),
			Provenance: provenance,
		})
	}
	return sightings
}
