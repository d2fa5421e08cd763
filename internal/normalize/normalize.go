// Package normalize standardizes names, titles, and email domains ahead of
// fuzzy comparison, and owns the nickname/title variant tables.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCIIFold strips combining diacritical marks ("José" -> "Jose").
func ASCIIFold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// NameParts lowercases a full name, strips punctuation except hyphen,
// apostrophe, and slash, splits on whitespace, then splits any token
// containing "/" into separate tokens. Supports combined spreadsheet
// entries like "Michael/Mike Cozad".
func NameParts(s string) []string {
	s = ASCIIFold(strings.ToLower(strings.TrimSpace(s)))
	if s == "" {
		return nil
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '\'' || r == '/':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	var parts []string
	for _, tok := range strings.Fields(b.String()) {
		if !strings.Contains(tok, "/") {
			parts = append(parts, tok)
			continue
		}
		for _, sub := range strings.Split(tok, "/") {
			if sub != "" {
				parts = append(parts, sub)
			}
		}
	}
	return parts
}

// CanonicalName rejoins the normalized parts with single spaces. Empty
// result marks an invalid record at the loader boundary.
func CanonicalName(s string) string {
	return strings.Join(NameParts(s), " ")
}

// NormalizeTitle lowercases a title and collapses internal whitespace.
func NormalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// NormalizeDomain strips the protocol and a leading "www." from a domain
// or URL host and lowercases it.
func NormalizeDomain(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, prefix := range []string{"https://", "http://"} {
		s = strings.TrimPrefix(s, prefix)
	}
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return s
}

// EmailDomain returns the normalized domain part of an email address, or ""
// if the value is not a plausible address.
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return ""
	}
	return NormalizeDomain(email[at+1:])
}

// EmailLocal returns the lowercased local part of an email address, or ""
// if the value is not a plausible address.
func EmailLocal(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[:at]))
}
