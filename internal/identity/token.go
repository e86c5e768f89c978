// Copyright 2025 TN-inTEC
// SPDX-License-Identifier: AGPL-3.0

// Package identity holds the one identity-token pattern shared by the
// extraction, validation, and rewrite passes. Tokens are email-shaped
// substrings matched mid-string, so claims-encoded values such as
// "i:0#.f|membership|user@contoso.com" yield the embedded identity.
package identity

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Administrative service identities that are filtered from extraction output
// unless explicitly included.
var systemAccountPattern = regexp.MustCompile(`(?i)(app@sharepoint\.com|sharepoint\\system|system account|spocrawler|searchcrawl)`)

// Tokens returns every identity token embedded in text, in order of
// appearance. Duplicates are preserved; callers dedup.
func Tokens(text string) []string {
	return tokenPattern.FindAllString(text, -1)
}

// Normalize lowercases and trims an identity for case-insensitive comparison.
func Normalize(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// IsSystemAccount reports whether the identity or display name matches a
// known administrative service account.
func IsSystemAccount(identity, displayName string) bool {
	return systemAccountPattern.MatchString(identity) || systemAccountPattern.MatchString(displayName)
}

// ReplaceToken substitutes every occurrence of token inside text with
// replacement, leaving surrounding characters untouched. The token is
// treated as a literal, not a pattern.
func ReplaceToken(text, token, replacement string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(token))
	return re.ReplaceAllLiteralString(text, replacement)
}
