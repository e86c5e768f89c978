// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package template models the provisioning manifest as a typed tree over the
// parsed XML. The same visitor-driven traversal backs identity extraction,
// rewriting, and inspection; rewriting tracks a per-document modified flag so
// untouched documents are passed through byte-for-byte.
package template

import (
	"fmt"

	"github.com/beevik/etree"
)

// Document is the parsed, mutable manifest tree.
type Document struct {
	tree     *etree.Document
	path     string
	modified bool
}

// Load parses the manifest document at path.
func Load(path string) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("manifest %s has no root element", path)
	}
	return &Document{tree: tree, path: path}, nil
}

// Parse parses a manifest document from raw bytes.
func Parse(data []byte) (*Document, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if tree.Root() == nil {
		return nil, fmt.Errorf("manifest has no root element")
	}
	return &Document{tree: tree}, nil
}

// Path returns the file the document was loaded from, if any.
func (d *Document) Path() string {
	return d.path
}

// Modified reports whether any scalar in the document has been changed.
func (d *Document) Modified() bool {
	return d.modified
}

// Save writes the document back to the file it was loaded from. Only called
// for modified documents.
func (d *Document) Save() error {
	if d.path == "" {
		return fmt.Errorf("document has no backing file")
	}
	if err := d.tree.WriteToFile(d.path); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", d.path, err)
	}
	return nil
}

// Bytes serializes the current tree.
func (d *Document) Bytes() ([]byte, error) {
	return d.tree.WriteToBytes()
}

func (d *Document) root() *etree.Element {
	return d.tree.Root()
}

// Scalar is one mutable string value inside the document: either an
// attribute or an element's text content. Setting a different value marks
// the owning document modified.
type Scalar struct {
	doc  *Document
	attr *etree.Attr
	elem *etree.Element
}

// Get returns the current value.
func (s *Scalar) Get() string {
	if s.attr != nil {
		return s.attr.Value
	}
	return s.elem.Text()
}

// Set replaces the value. A no-op when the value is unchanged.
func (s *Scalar) Set(value string) {
	if value == s.Get() {
		return
	}
	if s.attr != nil {
		s.attr.Value = value
	} else {
		s.elem.SetText(value)
	}
	s.doc.modified = true
}

func attrScalar(d *Document, el *etree.Element, key string) *Scalar {
	attr := el.SelectAttr(key)
	if attr == nil {
		return nil
	}
	return &Scalar{doc: d, attr: attr}
}

func textScalar(d *Document, el *etree.Element) *Scalar {
	return &Scalar{doc: d, elem: el}
}
