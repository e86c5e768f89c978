// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package archive opens a compressed provisioning package, locates its
// manifest document, and repackages a scratch tree into a new archive. The
// input archive is never mutated; every operation works on a uniquely named
// scratch directory that is removed on all exit paths.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/beevik/etree"
	"github.com/google/uuid"

	"github.com/TN-inTEC/SharepointTemplateExport-sub000/internal/logging"
)

// manifestRootTag is the local name of the root element identifying the
// provisioning template document inside the package.
const manifestRootTag = "Provisioning"

// Package is an opened archive extracted into a scratch directory.
type Package struct {
	path       string
	scratchDir string
	manifest   string // scratch-relative path of the manifest document

	logger logging.LoggerInterface
}

// Open extracts the archive at path into a fresh scratch directory and
// locates the manifest. It fails with ErrArchiveFormat when the path is not
// a valid zip, and ErrManifestNotFound when no contained XML file's root
// element matches the provisioning-template tag; all XML entries are
// scanned, not just the first. On any failure the scratch directory is
// removed before returning.
func Open(path string, logger logging.LoggerInterface) (*Package, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrArchiveFormat, path, err)
	}
	defer reader.Close()

	scratch := filepath.Join(os.TempDir(), "sptmigrate-"+uuid.NewString())
	if err := os.MkdirAll(scratch, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create scratch directory: %w", err)
	}

	p := &Package{
		path:       path,
		scratchDir: scratch,
		logger:     logger,
	}

	if err := p.extract(&reader.Reader); err != nil {
		p.Close()
		return nil, err
	}

	manifest, err := p.locateManifest()
	if err != nil {
		p.Close()
		return nil, err
	}
	p.manifest = manifest

	logger.Debugf("opened package %s, manifest %s, scratch %s", path, manifest, scratch)
	return p, nil
}

func (p *Package) extract(r *zip.Reader) error {
	for _, f := range r.File {
		target, err := p.scratchPath(f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o700); err != nil {
				return fmt.Errorf("failed to extract %s: %w", f.Name, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o700); err != nil {
			return fmt.Errorf("failed to extract %s: %w", f.Name, err)
		}

		if err := p.extractFile(f, target); err != nil {
			return err
		}
	}
	return nil
}

func (p *Package) extractFile(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrArchiveFormat, f.Name, err)
	}
	defer src.Close()

	dst, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return nil
}

// scratchPath resolves an entry name inside the scratch directory, rejecting
// entries that would escape it.
func (p *Package) scratchPath(name string) (string, error) {
	target := filepath.Join(p.scratchDir, filepath.FromSlash(name))
	if !strings.HasPrefix(target, p.scratchDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: entry %q escapes package root", ErrArchiveFormat, name)
	}
	return target, nil
}

// locateManifest scans every extracted XML file for the provisioning root
// element and returns the first match's scratch-relative path.
func (p *Package) locateManifest() (string, error) {
	var candidates []string
	err := filepath.Walk(p.scratchDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".xml") {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to scan package contents: %w", err)
	}
	sort.Strings(candidates)

	for _, candidate := range candidates {
		doc := etree.NewDocument()
		if err := doc.ReadFromFile(candidate); err != nil {
			// Not well-formed XML; keep scanning the rest.
			p.logger.Debugf("skipping unparseable XML entry %s: %v", candidate, err)
			continue
		}
		if root := doc.Root(); root != nil && root.Tag == manifestRootTag {
			rel, err := filepath.Rel(p.scratchDir, candidate)
			if err != nil {
				return "", err
			}
			return rel, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrManifestNotFound, p.path)
}

// Path returns the original archive path.
func (p *Package) Path() string {
	return p.path
}

// ScratchDir returns the scratch directory the package was extracted into.
func (p *Package) ScratchDir() string {
	return p.scratchDir
}

// ManifestPath returns the absolute scratch path of the manifest document.
func (p *Package) ManifestPath() string {
	return filepath.Join(p.scratchDir, p.manifest)
}

// Repack serializes the scratch directory contents into a new archive at
// outPath, replacing any existing file there. The original archive is never
// touched. Failures surface as *RewriteIOError.
func (p *Package) Repack(outPath string) error {
	out, err := os.Create(outPath)
	if err != nil {
		return &RewriteIOError{Path: outPath, Err: err}
	}

	zw := zip.NewWriter(out)

	// filepath.Walk visits entries in lexical order, so repacking the same
	// scratch tree twice yields the same entry order.
	err = filepath.Walk(p.scratchDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(p.scratchDir, path)
		if err != nil {
			return err
		}

		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(w, src)
		return err
	})
	if err != nil {
		zw.Close()
		out.Close()
		os.Remove(outPath)
		return &RewriteIOError{Path: outPath, Err: err}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		return &RewriteIOError{Path: outPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return &RewriteIOError{Path: outPath, Err: err}
	}

	p.logger.Debugf("repacked %s into %s", p.scratchDir, outPath)
	return nil
}

// Close removes the scratch directory. Safe to call more than once.
func (p *Package) Close() error {
	if p.scratchDir == "" {
		return nil
	}
	err := os.RemoveAll(p.scratchDir)
	p.scratchDir = ""
	return err
}
