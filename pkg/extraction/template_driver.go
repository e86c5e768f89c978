// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package extraction

import (
	"context"
	"fmt"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/identity"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/template"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
)

var _ DriverInterface = (*TemplateDriver)(nil)

// TemplateDriver extracts identity sightings from a parsed provisioning
// document by walking its four scalar location classes.
type TemplateDriver struct {
	doc *template.Document
}

func NewTemplateDriver(doc *template.Document) *TemplateDriver {
	return &TemplateDriver{doc: doc}
}

func (d *TemplateDriver) Source() string {
	return "template"
}

func (d *TemplateDriver) FetchIdentities(ctx context.Context) ([]types.ExtractedIdentity, error) {
	collector := new(identityCollector)
	if err := template.Walk(d.doc, collector); err != nil {
		return nil, fmt.Errorf("failed to walk provisioning document: %w", err)
	}
	return collector.sightings, nil
}

// identityCollector is the read-only visitor behind the template driver.
// Each scalar value may embed several identity tokens; every token becomes
// one sighting.
type identityCollector struct {
	sightings []types.ExtractedIdentity
}

func (c *identityCollector) collect(value *template.Scalar, provenance types.Provenance) {
	for _, token := range identity.Tokens(value.Get()) {
		c.sightings = append(c.sightings, types.ExtractedIdentity{
			Reference:  types.NewUserReference(token, ""),
			Provenance: provenance,
		})
	}
}

func (c *identityCollector) VisitPrincipal(role string, value *template.Scalar) error {
	c.collect(value, types.Provenance{Kind: types.ProvenanceAdministrator, Detail: role})
	return nil
}

func (c *identityCollector) VisitGroupMember(group string, value *template.Scalar) error {
	c.collect(value, types.Provenance{Kind: types.ProvenanceGroupMember, Detail: "of " + group})
	return nil
}

func (c *identityCollector) VisitDataField(list, field string, value *template.Scalar) error {
	c.collect(value, types.Provenance{Kind: types.ProvenanceListField, Detail: fmt.Sprintf("list %s / field %s", list, field)})
	return nil
}

func (c *identityCollector) VisitFileProperty(file, key string, value *template.Scalar) error {
	c.collect(value, types.Provenance{Kind: types.ProvenanceFileProperty, Detail: fmt.Sprintf("file %s / property %s", file, key)})
	return nil
}
