// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

package template

import "github.com/beevik/etree"

// Element tags recognized by the traversal. Namespace prefixes are ignored;
// matching is on local names.
const (
	tagUser         = "User"
	tagSiteGroup    = "SiteGroup"
	tagListInstance = "ListInstance"
	tagDataRow      = "DataRow"
	tagDataValue    = "DataValue"
	tagFile         = "File"
	tagProperty     = "Property"
	tagContentType  = "ContentType"
	tagField        = "Field"
)

// principalListTags are the security principal list containers. The tag
// doubles as the role name reported to visitors.
var principalListTags = map[string]bool{
	"AdditionalAdministrators": true,
	"AdditionalOwners":         true,
	"AdditionalMembers":        true,
	"AdditionalVisitors":       true,
}

// Visitor receives every scalar location class the remapping passes care
// about. Implementations must not retain Scalar values beyond the call.
type Visitor interface {
	// VisitPrincipal is called for each user entry in an administrator or
	// owner principal list; role is the containing list's tag.
	VisitPrincipal(role string, value *Scalar) error

	// VisitGroupMember is called for each member entry of a site group.
	VisitGroupMember(group string, value *Scalar) error

	// VisitDataField is called for each data value in a list instance row.
	VisitDataField(list, field string, value *Scalar) error

	// VisitFileProperty is called for each property attached to a file entry.
	VisitFileProperty(file, key string, value *Scalar) error
}

// Walk drives a visitor across the four scalar location classes in document
// order: principal lists, group memberships, list row data, file properties.
func Walk(d *Document, v Visitor) error {
	return walkElement(d, d.root(), v)
}

func walkElement(d *Document, el *etree.Element, v Visitor) error {
	for _, child := range el.ChildElements() {
		switch {
		case principalListTags[child.Tag]:
			if err := walkPrincipalList(d, child, v); err != nil {
				return err
			}
		case child.Tag == tagSiteGroup:
			if err := walkSiteGroup(d, child, v); err != nil {
				return err
			}
		case child.Tag == tagListInstance:
			if err := walkListInstance(d, child, v); err != nil {
				return err
			}
		case child.Tag == tagFile:
			if err := walkFile(d, child, v); err != nil {
				return err
			}
		default:
			if err := walkElement(d, child, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkPrincipalList(d *Document, list *etree.Element, v Visitor) error {
	for _, user := range list.ChildElements() {
		if user.Tag != tagUser {
			continue
		}
		if s := attrScalar(d, user, "Login"); s != nil {
			if err := v.VisitPrincipal(list.Tag, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkSiteGroup(d *Document, group *etree.Element, v Visitor) error {
	title := group.SelectAttrValue("Title", "")
	for _, user := range findDescendants(group, tagUser) {
		s := attrScalar(d, user, "Login")
		if s == nil {
			s = attrScalar(d, user, "Name")
		}
		if s == nil {
			continue
		}
		if err := v.VisitGroupMember(title, s); err != nil {
			return err
		}
	}

	// Owner is a scalar on the group element itself.
	if s := attrScalar(d, group, "Owner"); s != nil {
		if err := v.VisitGroupMember(title, s); err != nil {
			return err
		}
	}
	return nil
}

func walkListInstance(d *Document, list *etree.Element, v Visitor) error {
	title := list.SelectAttrValue("Title", "")
	for _, row := range findDescendants(list, tagDataRow) {
		for _, value := range row.ChildElements() {
			if value.Tag != tagDataValue {
				continue
			}
			field := value.SelectAttrValue("FieldRef", "")
			if err := v.VisitDataField(title, field, textScalar(d, value)); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkFile(d *Document, file *etree.Element, v Visitor) error {
	src := file.SelectAttrValue("Src", "")
	for _, prop := range findDescendants(file, tagProperty) {
		key := prop.SelectAttrValue("Key", "")
		if s := attrScalar(d, prop, "Value"); s != nil {
			if err := v.VisitFileProperty(src, key, s); err != nil {
				return err
			}
		}
	}
	return nil
}

// findDescendants collects every descendant element with the given local
// tag, in document order.
func findDescendants(el *etree.Element, tag string) []*etree.Element {
	var found []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			found = append(found, child)
		}
		found = append(found, findDescendants(child, tag)...)
	}
	return found
}
