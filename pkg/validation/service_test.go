// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package validation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/directory"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
)

//go:generate mockgen -build_flags=--mod=mod -package validation -destination ./mock_directory.go -source=../../internal/directory/interfaces.go

func loadTable(t *testing.T, content string) *mapping.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	table, err := mapping.Load(path, logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func newService(client directory.DirectoryInterface) *Service {
	return NewService(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestValidate(t *testing.T) {
	ensureErr := errors.New("user not found in tenant target.com")

	tests := []struct {
		name        string
		mappingFile string
		setupMocks  func(*MockDirectoryInterface)
		wantValid   int
		wantInvalid int
		wantSkipped int
		wantIsValid bool
	}{
		{
			name:        "all targets found",
			mappingFile: "SourceUser,TargetUser\na@a.com,a@b.com\nb@a.com,b@b.com\n",
			setupMocks: func(client *MockDirectoryInterface) {
				client.EXPECT().FindUser(gomock.Any(), "a@b.com").Return(&directory.User{Login: "a@b.com"}, nil)
				client.EXPECT().FindUser(gomock.Any(), "b@b.com").Return(&directory.User{Login: "b@b.com"}, nil)
			},
			wantValid:   2,
			wantIsValid: true,
		},
		{
			name:        "absent user ensured successfully",
			mappingFile: "SourceUser,TargetUser\na@a.com,a@b.com\n",
			setupMocks: func(client *MockDirectoryInterface) {
				client.EXPECT().FindUser(gomock.Any(), "a@b.com").Return(nil, nil)
				client.EXPECT().EnsureUser(gomock.Any(), "a@b.com").Return(&directory.User{Login: "a@b.com"}, nil)
			},
			wantValid:   1,
			wantIsValid: true,
		},
		{
			name:        "ensure failure surfaces collaborator reason",
			mappingFile: "SourceUser,TargetUser\na@a.com,a@b.com\n",
			setupMocks: func(client *MockDirectoryInterface) {
				client.EXPECT().FindUser(gomock.Any(), "a@b.com").Return(nil, nil)
				client.EXPECT().EnsureUser(gomock.Any(), "a@b.com").Return(nil, ensureErr)
			},
			wantInvalid: 1,
		},
		{
			name:        "skip entries never reach the directory",
			mappingFile: "SourceUser,TargetUser\nold@a.com,\nnew@a.com,new@b.com\n",
			setupMocks: func(client *MockDirectoryInterface) {
				client.EXPECT().FindUser(gomock.Any(), "new@b.com").Return(&directory.User{Login: "new@b.com"}, nil)
			},
			wantValid:   1,
			wantSkipped: 1,
			wantIsValid: true,
		},
		{
			name:        "find error marks entry invalid without failing the run",
			mappingFile: "SourceUser,TargetUser\na@a.com,a@b.com\nb@a.com,b@b.com\n",
			setupMocks: func(client *MockDirectoryInterface) {
				client.EXPECT().FindUser(gomock.Any(), "a@b.com").Return(nil, errors.New("directory unreachable"))
				client.EXPECT().FindUser(gomock.Any(), "b@b.com").Return(&directory.User{Login: "b@b.com"}, nil)
			},
			wantValid:   1,
			wantInvalid: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := NewMockDirectoryInterface(ctrl)
			tt.setupMocks(client)

			report, err := newService(client).Validate(context.Background(), loadTable(t, tt.mappingFile))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if report.Valid != tt.wantValid || report.Invalid != tt.wantInvalid || report.Skipped != tt.wantSkipped {
				t.Errorf("report = %d valid / %d invalid / %d skipped, want %d/%d/%d",
					report.Valid, report.Invalid, report.Skipped,
					tt.wantValid, tt.wantInvalid, tt.wantSkipped)
			}
			if report.IsValid() != tt.wantIsValid {
				t.Errorf("IsValid = %v, want %v", report.IsValid(), tt.wantIsValid)
			}
		})
	}
}

func TestValidateReasonIsVerbatim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockDirectoryInterface(ctrl)
	client.EXPECT().FindUser(gomock.Any(), "a@b.com").Return(nil, nil)
	client.EXPECT().EnsureUser(gomock.Any(), "a@b.com").Return(nil, errors.New("tenant rejected the login"))

	report, err := newService(client).Validate(context.Background(), loadTable(t, "SourceUser,TargetUser\na@a.com,a@b.com\n"))
	if err != nil {
		t.Fatal(err)
	}

	failures := report.Failures()
	if len(failures) != 1 {
		t.Fatalf("got %d failures, want 1", len(failures))
	}
	if failures[0].Reason != "tenant rejected the login" {
		t.Errorf("reason = %q, want the collaborator's message verbatim", failures[0].Reason)
	}
	if failures[0].Status != types.ValidationInvalid {
		t.Errorf("status = %q", failures[0].Status)
	}
}
