// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package mapping

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

func writeMappingFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mapping.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantLen     int
		wantSkipped int
		wantErr     error
	}{
		{
			name:    "minimal two column file",
			content: "SourceUser,TargetUser\njohn@a.com,john@b.com\n",
			wantLen: 1,
		},
		{
			name:        "empty target becomes skip entry",
			content:     "SourceUser,TargetUser\nold@a.com,\n",
			wantLen:     1,
			wantSkipped: 1,
		},
		{
			name:    "blank source rows dropped",
			content: "SourceUser,TargetUser\n,\njohn@a.com,john@b.com\n ,ignored@b.com\n",
			wantLen: 1,
		},
		{
			name:    "missing TargetUser column",
			content: "SourceUser,SourceDisplayName\njohn@a.com,John\n",
			wantErr: &MappingFileFormatError{Code: ErrCodeMissingColumn},
		},
		{
			name:    "missing SourceUser column",
			content: "User,TargetUser\njohn@a.com,john@b.com\n",
			wantErr: &MappingFileFormatError{Code: ErrCodeMissingColumn},
		},
		{
			name:    "empty file",
			content: "",
			wantErr: &MappingFileFormatError{Code: ErrCodeEmptyFile},
		},
		{
			name:    "header only",
			content: "SourceUser,TargetUser\n",
			wantErr: &MappingFileFormatError{Code: ErrCodeEmptyFile},
		},
		{
			name:    "duplicate source keeps last occurrence",
			content: "SourceUser,TargetUser\njohn@a.com,first@b.com\nJOHN@A.COM,second@b.com\n",
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMappingFile(t, tt.content)
			table, err := Load(path, logging.NewNoopLogger())

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if table.Len() != tt.wantLen {
				t.Errorf("len = %d, want %d", table.Len(), tt.wantLen)
			}
			if table.Skipped() != tt.wantSkipped {
				t.Errorf("skipped = %d, want %d", table.Skipped(), tt.wantSkipped)
			}
		})
	}
}

func TestLoadMissingColumnNamesColumn(t *testing.T) {
	path := writeMappingFile(t, "SourceUser,Notes\njohn@a.com,hi\n")
	_, err := Load(path, logging.NewNoopLogger())

	var formatErr *MappingFileFormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("got %v, want *MappingFileFormatError", err)
	}
	if formatErr.Column != "TargetUser" {
		t.Errorf("column = %q, want TargetUser", formatErr.Column)
	}
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	path := writeMappingFile(t, "SourceUser,TargetUser\nUser@Domain.com,new@target.com\n")
	table, err := Load(path, logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	for _, probe := range []string{"user@domain.com", "USER@DOMAIN.COM", "User@Domain.com"} {
		entry, ok := table.Lookup(probe)
		if !ok {
			t.Fatalf("lookup %q failed", probe)
		}
		if entry.TargetUser != "new@target.com" {
			t.Errorf("lookup %q returned target %q", probe, entry.TargetUser)
		}
	}

	if _, ok := table.Lookup("absent@domain.com"); ok {
		t.Error("lookup of unknown identity succeeded")
	}
}

func TestLoadDuplicateLastWins(t *testing.T) {
	path := writeMappingFile(t, "SourceUser,TargetUser\njohn@a.com,first@b.com\nJOHN@A.COM,second@b.com\n")
	table, err := Load(path, logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := table.Lookup("john@a.com")
	if !ok || entry.TargetUser != "second@b.com" {
		t.Fatalf("got %+v, want last occurrence to win", entry)
	}
}

func TestLoadDefaultsDisplayNames(t *testing.T) {
	path := writeMappingFile(t, "SourceUser,TargetUser\njohn@a.com,jane@b.com\n")
	table, err := Load(path, logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	entry, _ := table.Lookup("john@a.com")
	if entry.SourceDisplayName != "john@a.com" {
		t.Errorf("source display name = %q, want raw identity default", entry.SourceDisplayName)
	}
	if entry.TargetDisplayName != "jane@b.com" {
		t.Errorf("target display name = %q, want raw identity default", entry.TargetDisplayName)
	}
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := writeMappingFile(t, "SourceUser,TargetUser,SourceDisplayName,TargetDisplayName,Notes\n john@a.com , jane@b.com , John , Jane , migrated \n")
	table, err := Load(path, logging.NewNoopLogger())
	if err != nil {
		t.Fatal(err)
	}

	entry, ok := table.Lookup("john@a.com")
	if !ok {
		t.Fatal("lookup failed after trim")
	}
	want := types.MappingEntry{
		SourceUser:        "john@a.com",
		TargetUser:        "jane@b.com",
		SourceDisplayName: "John",
		TargetDisplayName: "Jane",
		Notes:             "migrated",
	}
	if entry != want {
		t.Errorf("entry = %+v, want %+v", entry, want)
	}
}

func TestWriteTemplateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "template.csv")

	identities := []types.ExtractedIdentity{
		{
			Reference:  types.NewUserReference("Admin@Source.com", "Site Admin"),
			Provenance: types.Provenance{Kind: types.ProvenanceAdministrator},
		},
		{
			Reference:  types.NewUserReference("member@source.com", ""),
			Provenance: types.Provenance{Kind: types.ProvenanceGroupMember, Detail: "of Project Members"},
		},
	}

	if err := WriteTemplate(path, identities); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path, logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("generated template did not load: %v", err)
	}

	if table.Len() != 2 || table.Skipped() != 0 {
		t.Fatalf("len = %d skipped = %d", table.Len(), table.Skipped())
	}

	entry, ok := table.Lookup("admin@source.com")
	if !ok {
		t.Fatal("admin entry missing")
	}
	if entry.TargetUser != "admin@source.com" {
		t.Errorf("target = %q, want pre-populated source", entry.TargetUser)
	}
	if entry.SourceDisplayName != "Site Admin" {
		t.Errorf("display name = %q", entry.SourceDisplayName)
	}
	if entry.Notes != "administrator" {
		t.Errorf("notes = %q, want provenance string", entry.Notes)
	}
}
