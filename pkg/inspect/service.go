// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package inspect produces normalized summaries of provisioning archives and
// computes set differences between two summaries. It reuses the same document
// traversal as extraction and rewrite, read-only.
package inspect

import (
	"context"
	"sort"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/archive"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/monitoring"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/template"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/tracing"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/types"
	"github.com/TN-inTEC/SharepointTemplateExport-sub000/pkg/extraction"
)

// Options selects what a summary surfaces. Lists, libraries and pages are the
// content entities; users require a full identity extraction pass; Detailed
// additionally surfaces content types and schema fields.
type Options struct {
	IncludeUsers   bool
	IncludeContent bool
	Detailed       bool
}

// DefaultOptions summarizes content entities only.
func DefaultOptions() Options {
	return Options{IncludeContent: true}
}

type Service struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Summarize opens the archive, parses its manifest and returns the normalized
// summary. Archive and manifest errors propagate unchanged.
func (s *Service) Summarize(ctx context.Context, archivePath string, opts Options) (*types.DocumentSummary, error) {
	ctx, span := s.tracer.Start(ctx, "inspect.Service.Summarize")
	defer span.End()

	pkg, err := archive.Open(archivePath, s.logger)
	if err != nil {
		return nil, err
	}
	defer pkg.Close()

	doc, err := template.Load(pkg.ManifestPath())
	if err != nil {
		return nil, err
	}

	summary, err := s.SummarizeDocument(ctx, doc, opts)
	if err != nil {
		return nil, err
	}
	summary.Archive = archivePath
	return summary, nil
}

// SummarizeDocument summarizes an already-parsed manifest. The key list per
// kind is the comparison property for that kind: title for lists and pages,
// normalized email for users, name for content types and fields.
func (s *Service) SummarizeDocument(ctx context.Context, doc *template.Document, opts Options) (*types.DocumentSummary, error) {
	summary := &types.DocumentSummary{
		Entities: make(map[types.EntityKind]types.EntitySummary),
	}

	if opts.IncludeContent {
		var lists, libraries []string
		for _, list := range doc.Lists() {
			if list.IsLibrary() {
				libraries = append(libraries, list.Title)
			} else {
				lists = append(lists, list.Title)
			}
		}
		var pages []string
		for _, file := range doc.Files() {
			if file.IsPage() {
				pages = append(pages, file.Src)
			}
		}
		summary.Entities[types.EntityLists] = newEntitySummary(lists)
		summary.Entities[types.EntityLibraries] = newEntitySummary(libraries)
		summary.Entities[types.EntityPages] = newEntitySummary(pages)
	}

	if opts.IncludeUsers {
		extractor := extraction.NewService(extraction.NewTemplateDriver(doc), s.tracer, s.monitor, s.logger)
		identities, err := extractor.Extract(ctx, false)
		if err != nil {
			return nil, err
		}
		users := make([]string, 0, len(identities))
		for _, id := range identities {
			users = append(users, id.Reference.Normalized)
		}
		summary.Entities[types.EntityUsers] = newEntitySummary(users)
	}

	if opts.Detailed {
		summary.Entities[types.EntityContentTypes] = newEntitySummary(doc.ContentTypes())
		summary.Entities[types.EntityFields] = newEntitySummary(doc.Fields())
	}

	return summary, nil
}

// Diff computes the per-kind set difference between two summaries. Only kinds
// present on both sides are compared; keys are exact-string, never case-folded,
// because titles are case-sensitive in the source system.
func (s *Service) Diff(ctx context.Context, a, b *types.DocumentSummary) *types.DiffResult {
	_, span := s.tracer.Start(ctx, "inspect.Service.Diff")
	defer span.End()

	result := &types.DiffResult{
		ArchiveA: a.Archive,
		ArchiveB: b.Archive,
		Kinds:    make(map[types.EntityKind]types.DiffSet),
	}

	for kind, left := range a.Entities {
		right, ok := b.Entities[kind]
		if !ok {
			continue
		}
		result.Kinds[kind] = diffKeys(left.Keys, right.Keys)
	}

	return result
}

func diffKeys(a, b []string) types.DiffSet {
	inA := make(map[string]bool, len(a))
	for _, key := range a {
		inA[key] = true
	}
	inB := make(map[string]bool, len(b))
	for _, key := range b {
		inB[key] = true
	}

	set := types.DiffSet{
		OnlyInA: []string{},
		OnlyInB: []string{},
		InBoth:  []string{},
	}
	for _, key := range a {
		if inB[key] {
			set.InBoth = append(set.InBoth, key)
		} else {
			set.OnlyInA = append(set.OnlyInA, key)
		}
	}
	for _, key := range b {
		if !inA[key] {
			set.OnlyInB = append(set.OnlyInB, key)
		}
	}

	sort.Strings(set.OnlyInA)
	sort.Strings(set.OnlyInB)
	sort.Strings(set.InBoth)
	return set
}

// newEntitySummary deduplicates keys preserving first occurrence order.
func newEntitySummary(keys []string) types.EntitySummary {
	seen := make(map[string]bool, len(keys))
	unique := make([]string, 0, len(keys))
	for _, key := range keys {
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, key)
	}
	return types.EntitySummary{Count: len(unique), Keys: unique}
}

func NewService(
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
