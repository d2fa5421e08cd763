package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestMatcher() *Matcher {
	return New(DefaultConfig())
}

func TestCompareNameExact(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareName("Mike  Cozad", "mike cozad")
	assert.Equal(t, 1.0, fs.Score)
	assert.Equal(t, "exact normalized name match", fs.Reason)
}

func TestCompareNameVariant(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareName("Mike Cozad", "Michael/Mike Cozad")
	assert.GreaterOrEqual(t, fs.Score, 0.8)
	assert.Contains(t, fs.Reason, "name variant match")

	fs = m.CompareName("Bill Jones", "William Jones")
	assert.Equal(t, 1.0, fs.Score)
	assert.Contains(t, fs.Reason, "name variant match")
}

func TestCompareNameFuzzy(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareName("Jonn Smyth", "John Smith")
	assert.Greater(t, fs.Score, 0.6)
	assert.Less(t, fs.Score, 1.0)
	assert.Contains(t, fs.Reason, "fuzzy name similarity")
}

func TestCompareNameDissimilarHasNoReason(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareName("Xqzw Vbnm", "Robert Paulson")
	assert.Less(t, fs.Score, 0.6)
	assert.Empty(t, fs.Reason)
}

func TestCompareNameMissingInput(t *testing.T) {
	m := newTestMatcher()

	assert.Equal(t, 0.0, m.CompareName("", "Mike Cozad").Score)
	assert.Equal(t, 0.0, m.CompareName("Mike Cozad", "  ").Score)
}

func TestCompareEmail(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareEmail("Mike.Cozad@Acme.com", "mike.cozad@acme.com")
	assert.Equal(t, 1.0, fs.Score)
	assert.Equal(t, "exact email match", fs.Reason)

	fs = m.CompareEmail("mike@acme.com", "jane@acme.com")
	assert.Equal(t, 0.3, fs.Score)
	assert.Equal(t, "same email domain", fs.Reason)

	fs = m.CompareEmail("mike@acme.com", "mike@other.com")
	assert.Equal(t, 0.0, fs.Score)

	fs = m.CompareEmail("", "mike@acme.com")
	assert.Equal(t, 0.0, fs.Score)
}

func TestCompareProfile(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareProfile(
		"https://linkedin.com/in/mike-cozad/",
		"http://www.linkedin.com/in/Mike-Cozad?utm=abc",
	)
	assert.Equal(t, 1.0, fs.Score)
	assert.Equal(t, "profile identifier match", fs.Reason)

	// Bare host carries no identifying path segment.
	fs = m.CompareProfile("https://linkedin.com", "https://linkedin.com/in/mike-cozad")
	assert.Equal(t, 0.0, fs.Score)
}

func TestProfileIdentifier(t *testing.T) {
	assert.Equal(t, "mike-cozad", profileIdentifier("https://linkedin.com/in/Mike-Cozad/"))
	assert.Equal(t, "mike-cozad", profileIdentifier("linkedin.com/in/mike-cozad#section"))
	assert.Equal(t, "", profileIdentifier("https://linkedin.com"))
	assert.Equal(t, "", profileIdentifier(""))
}

func TestCompareTitle(t *testing.T) {
	m := newTestMatcher()

	fs := m.CompareTitle("Chief  Executive Officer", "chief executive officer")
	assert.Equal(t, 1.0, fs.Score)
	assert.Equal(t, "exact title match", fs.Reason)

	fs = m.CompareTitle("VP", "Vice President")
	assert.Equal(t, 0.9, fs.Score)
	assert.Equal(t, "title synonym match", fs.Reason)

	fs = m.CompareTitle("Sales Manager", "Sales Mgr")
	assert.Greater(t, fs.Score, 0.6)
	assert.Contains(t, fs.Reason, "similar titles")

	fs = m.CompareTitle("", "CEO")
	assert.Equal(t, 0.0, fs.Score)
}

func TestVariantOverlap(t *testing.T) {
	score, matched := variantOverlap([]string{"mike", "cozad"}, []string{"michael", "mike", "cozad"})
	assert.Equal(t, 1.0, score)
	assert.Equal(t, 3, matched)

	score, _ = variantOverlap([]string{"jane", "doe"}, []string{"robert", "paulson"})
	assert.Equal(t, 0.0, score)

	score, _ = variantOverlap(nil, nil)
	assert.Equal(t, 0.0, score)
}
