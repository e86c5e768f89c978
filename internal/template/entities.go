// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package template

import "strings"

// Document library list template type in the source system.
const libraryTemplateType = "101"

// ListInfo describes one list instance in the manifest.
type ListInfo struct {
	Title        string
	URL          string
	TemplateType string
	Rows         int
}

// IsLibrary reports whether the list is a document library.
func (l ListInfo) IsLibrary() bool {
	return l.TemplateType == libraryTemplateType
}

// FileInfo describes one file entry in the manifest.
type FileInfo struct {
	Src    string
	Folder string
}

// IsPage reports whether the file is a site page.
func (f FileInfo) IsPage() bool {
	return strings.HasSuffix(strings.ToLower(f.Src), ".aspx")
}

// Lists returns every list instance in document order.
func (d *Document) Lists() []ListInfo {
	var lists []ListInfo
	for _, el := range findDescendants(d.root(), tagListInstance) {
		lists = append(lists, ListInfo{
			Title:        el.SelectAttrValue("Title", ""),
			URL:          el.SelectAttrValue("Url", ""),
			TemplateType: el.SelectAttrValue("TemplateType", ""),
			Rows:         len(findDescendants(el, tagDataRow)),
		})
	}
	return lists
}

// Files returns every file entry in document order.
func (d *Document) Files() []FileInfo {
	var files []FileInfo
	for _, el := range findDescendants(d.root(), tagFile) {
		files = append(files, FileInfo{
			Src:    el.SelectAttrValue("Src", ""),
			Folder: el.SelectAttrValue("Folder", ""),
		})
	}
	return files
}

// ContentTypes returns the names of content types declared in the manifest.
func (d *Document) ContentTypes() []string {
	var names []string
	for _, el := range findDescendants(d.root(), tagContentType) {
		if name := el.SelectAttrValue("Name", ""); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Fields returns the names of schema fields declared in the manifest.
// A field's display name wins over its internal name.
func (d *Document) Fields() []string {
	var names []string
	for _, el := range findDescendants(d.root(), tagField) {
		name := el.SelectAttrValue("DisplayName", "")
		if name == "" {
			name = el.SelectAttrValue("Name", "")
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SiteGroups returns the titles of site groups declared in the manifest.
func (d *Document) SiteGroups() []string {
	var titles []string
	for _, el := range findDescendants(d.root(), tagSiteGroup) {
		if title := el.SelectAttrValue("Title", ""); title != "" {
			titles = append(titles, title)
		}
	}
	return titles
}
