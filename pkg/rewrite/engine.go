// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package rewrite applies a validated mapping table to a provisioning
// archive, substituting identity tokens in place in a scratch copy and
// writing a new archive. The original archive is never mutated, so re-running
// a rewrite is always safe.
package rewrite

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/archive"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/identity"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/template"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/mapping"
)

// DefaultOutputSuffix is inserted before the archive extension when no
// suffix is configured.
const DefaultOutputSuffix = "remapped"

type Engine struct {
	table  *mapping.Table
	suffix string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Rewrite opens the archive, substitutes every mapped identity token in the
// manifest document, and repackages the scratch tree into a new archive at
// the derived output path. Archive and manifest errors propagate as fatal;
// substitution itself is a pure string operation and cannot fail. The
// returned path is the new archive.
func (e *Engine) Rewrite(ctx context.Context, archivePath string) (string, error) {
	_, span := e.tracer.Start(ctx, "rewrite.Engine.Rewrite")
	defer span.End()

	pkg, err := archive.Open(archivePath, e.logger)
	if err != nil {
		return "", err
	}
	defer pkg.Close()

	doc, err := template.Load(pkg.ManifestPath())
	if err != nil {
		return "", err
	}

	sub := &substituter{table: e.table}
	if err := template.Walk(doc, sub); err != nil {
		return "", fmt.Errorf("failed to walk manifest document: %w", err)
	}

	// Only a modified manifest is re-serialized; everything else in the
	// scratch tree passes through byte-for-byte.
	if doc.Modified() {
		if err := doc.Save(); err != nil {
			return "", err
		}
		e.monitor.IncrementDocumentsRewritten(1)
	}
	e.monitor.IncrementSubstitutions(sub.substitutions)

	out := OutputPath(archivePath, e.suffix)
	if err := pkg.Repack(out); err != nil {
		return "", err
	}

	e.logger.Infof("rewrote %s into %s (%d substitutions across %d scalar values)",
		archivePath, out, sub.substitutions, sub.touched)
	return out, nil
}

// OutputPath derives the rewritten archive path deterministically from the
// input name plus the suffix: site.pnp becomes site.remapped.pnp.
func OutputPath(in, suffix string) string {
	if suffix == "" {
		suffix = DefaultOutputSuffix
	}
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + "." + suffix + ext
}

// substituter is the mutating visitor: each scalar value has its embedded
// identity tokens looked up in the table and mapped tokens replaced
// literally, leaving surrounding text untouched. Unmapped and skip-entry
// tokens are left as-is.
type substituter struct {
	table *mapping.Table

	substitutions int
	touched       int
}

func (s *substituter) substitute(value *template.Scalar) {
	text := value.Get()
	changed := false

	seen := make(map[string]bool)
	for _, token := range identity.Tokens(text) {
		// The same token may be embedded more than once in one value;
		// ReplaceToken already substitutes every occurrence.
		if seen[token] {
			continue
		}
		seen[token] = true

		entry, ok := s.table.Lookup(token)
		if !ok || entry.Skip() {
			continue
		}
		text = identity.ReplaceToken(text, token, entry.TargetUser)
		s.substitutions++
		changed = true
	}

	if changed {
		value.Set(text)
		s.touched++
	}
}

func (s *substituter) VisitPrincipal(_ string, value *template.Scalar) error {
	s.substitute(value)
	return nil
}

func (s *substituter) VisitGroupMember(_ string, value *template.Scalar) error {
	s.substitute(value)
	return nil
}

func (s *substituter) VisitDataField(_, _ string, value *template.Scalar) error {
	s.substitute(value)
	return nil
}

func (s *substituter) VisitFileProperty(_, _ string, value *template.Scalar) error {
	s.substitute(value)
	return nil
}

func NewEngine(
	table *mapping.Table,
	suffix string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Engine {
	e := new(Engine)

	e.table = table
	e.suffix = suffix

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}
