// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package extraction

import (
	"context"
	"testing"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/template"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

const testManifest = `<?xml version="1.0" encoding="utf-8"?>
<pnp:Provisioning xmlns:pnp="http://schemas.dev.office.com/PnP/2021/03/ProvisioningSchema">
  <pnp:Templates>
    <pnp:ProvisioningTemplate ID="TEMPLATE-1">
      <pnp:Security>
        <pnp:AdditionalAdministrators>
          <pnp:User Login="i:0#.f|membership|admin@source.com" />
        </pnp:AdditionalAdministrators>
        <pnp:SiteGroups>
          <pnp:SiteGroup Title="Project Members">
            <pnp:Members>
              <pnp:User Name="member@source.com" />
            </pnp:Members>
          </pnp:SiteGroup>
        </pnp:SiteGroups>
      </pnp:Security>
      <pnp:Lists>
        <pnp:ListInstance Title="Tasks" TemplateType="100">
          <pnp:DataRows>
            <pnp:DataRow>
              <pnp:DataValue FieldRef="AssignedTo">admin@source.com;member@source.com</pnp:DataValue>
              <pnp:DataValue FieldRef="Title">No identities here</pnp:DataValue>
            </pnp:DataRow>
          </pnp:DataRows>
        </pnp:ListInstance>
      </pnp:Lists>
      <pnp:Files>
        <pnp:File Src="SitePages/Home.aspx">
          <pnp:Properties>
            <pnp:Property Key="ModifiedBy" Value="editor@source.com" />
          </pnp:Properties>
        </pnp:File>
      </pnp:Files>
    </pnp:ProvisioningTemplate>
  </pnp:Templates>
</pnp:Provisioning>`

func TestTemplateDriverFetchIdentities(t *testing.T) {
	doc, err := template.Parse([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}

	driver := NewTemplateDriver(doc)
	sightings, err := driver.FetchIdentities(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// admin (principal), member (group), admin + member (data field), editor
	// (file property); duplicates are preserved at the driver level.
	if len(sightings) != 5 {
		t.Fatalf("got %d sightings, want 5: %+v", len(sightings), sightings)
	}

	want := []struct {
		identity string
		kind     types.ProvenanceKind
	}{
		{"admin@source.com", types.ProvenanceAdministrator},
		{"member@source.com", types.ProvenanceGroupMember},
		{"admin@source.com", types.ProvenanceListField},
		{"member@source.com", types.ProvenanceListField},
		{"editor@source.com", types.ProvenanceFileProperty},
	}
	for i, w := range want {
		if sightings[i].Reference.Normalized != w.identity {
			t.Errorf("sighting[%d] identity = %q, want %q", i, sightings[i].Reference.Normalized, w.identity)
		}
		if sightings[i].Provenance.Kind != w.kind {
			t.Errorf("sighting[%d] kind = %q, want %q", i, sightings[i].Provenance.Kind, w.kind)
		}
	}
}

func TestTemplateDriverTolerantOfClaimsPrefixes(t *testing.T) {
	doc, err := template.Parse([]byte(testManifest))
	if err != nil {
		t.Fatal(err)
	}

	sightings, err := NewTemplateDriver(doc).FetchIdentities(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// The admin login is claims-encoded; the extracted token must be the
	// bare identity.
	if sightings[0].Reference.Normalized != "admin@source.com" {
		t.Fatalf("claims-encoded login not unwrapped: %q", sightings[0].Reference.Normalized)
	}
	if sightings[0].Reference.Raw != "admin@source.com" {
		t.Fatalf("raw token = %q", sightings[0].Reference.Raw)
	}
}
