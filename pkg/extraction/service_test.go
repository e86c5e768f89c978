// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package extraction

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package extraction -destination ./mock_extraction.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package extraction -destination ./mock_directory.go -source=../../internal/directory/interfaces.go

func sighting(raw, displayName string, kind types.ProvenanceKind, detail string) types.ExtractedIdentity {
	return types.ExtractedIdentity{
		Reference:  types.NewUserReference(raw, displayName),
		Provenance: types.Provenance{Kind: kind, Detail: detail},
	}
}

func TestServiceExtract(t *testing.T) {
	tests := []struct {
		name           string
		includeSystem  bool
		sightings      []types.ExtractedIdentity
		driverErr      error
		wantIdentities []string
		wantErr        bool
	}{
		{
			name: "first sighting wins and output is sorted",
			sightings: []types.ExtractedIdentity{
				sighting("Zoe@a.com", "", types.ProvenanceListField, "list Tasks / field AssignedTo"),
				sighting("admin@a.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
				sighting("ZOE@A.COM", "", types.ProvenanceGroupMember, "of Owners"),
			},
			wantIdentities: []string{"admin@a.com", "zoe@a.com"},
		},
		{
			name: "system accounts dropped by default",
			sightings: []types.ExtractedIdentity{
				sighting("app@sharepoint.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
				sighting("john@a.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
			},
			wantIdentities: []string{"john@a.com"},
		},
		{
			name:          "system accounts kept when included",
			includeSystem: true,
			sightings: []types.ExtractedIdentity{
				sighting("app@sharepoint.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
				sighting("john@a.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
			},
			wantIdentities: []string{"app@sharepoint.com", "john@a.com"},
		},
		{
			name:      "driver error propagates",
			driverErr: errors.New("source unavailable"),
			wantErr:   true,
		},
		{
			name:           "empty source",
			sightings:      nil,
			wantIdentities: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			driver := NewMockDriverInterface(ctrl)
			driver.EXPECT().Source().Return("template").AnyTimes()
			driver.EXPECT().FetchIdentities(gomock.Any()).Return(tt.sightings, tt.driverErr)

			svc := NewService(driver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
			got, err := svc.Extract(context.Background(), tt.includeSystem)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.wantIdentities) {
				t.Fatalf("got %d identities, want %d: %+v", len(got), len(tt.wantIdentities), got)
			}
			for i, want := range tt.wantIdentities {
				if got[i].Reference.Normalized != want {
					t.Errorf("identity[%d] = %q, want %q", i, got[i].Reference.Normalized, want)
				}
			}
		})
	}
}

func TestServiceExtractRetainsFirstProvenance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driver := NewMockDriverInterface(ctrl)
	driver.EXPECT().Source().Return("template").AnyTimes()
	driver.EXPECT().FetchIdentities(gomock.Any()).Return([]types.ExtractedIdentity{
		sighting("john@a.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
		sighting("john@a.com", "", types.ProvenanceListField, "list Tasks / field AssignedTo"),
	}, nil)

	svc := NewService(driver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	got, err := svc.Extract(context.Background(), false)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d identities, want 1", len(got))
	}
	if got[0].Provenance.Kind != types.ProvenanceAdministrator {
		t.Errorf("provenance = %v, want first sighting retained", got[0].Provenance)
	}
}

func TestServiceExtractIsDeterministic(t *testing.T) {
	sightings := []types.ExtractedIdentity{
		sighting("charlie@a.com", "", types.ProvenanceListField, "list L / field F"),
		sighting("alice@a.com", "", types.ProvenanceAdministrator, "AdditionalAdministrators"),
		sighting("bob@a.com", "", types.ProvenanceGroupMember, "of G"),
	}

	var runs [][]types.ExtractedIdentity
	for i := 0; i < 2; i++ {
		ctrl := gomock.NewController(t)
		driver := NewMockDriverInterface(ctrl)
		driver.EXPECT().Source().Return("template").AnyTimes()
		driver.EXPECT().FetchIdentities(gomock.Any()).Return(sightings, nil)

		svc := NewService(driver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
		got, err := svc.Extract(context.Background(), false)
		if err != nil {
			t.Fatal(err)
		}
		runs = append(runs, got)
		ctrl.Finish()
	}

	if len(runs[0]) != len(runs[1]) {
		t.Fatalf("runs differ in length: %d vs %d", len(runs[0]), len(runs[1]))
	}
	for i := range runs[0] {
		if runs[0][i] != runs[1][i] {
			t.Errorf("runs differ at %d: %+v vs %+v", i, runs[0][i], runs[1][i])
		}
	}
}
