package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestASCIIFold(t *testing.T) {
	assert.Equal(t, "Jose", ASCIIFold("José"))
	assert.Equal(t, "Francois Muller", ASCIIFold("François Müller"))
	assert.Equal(t, "plain", ASCIIFold("plain"))
}

func TestNameParts(t *testing.T) {
	assert.Equal(t, []string{"mike", "cozad"}, NameParts("  Mike Cozad "))
	assert.Equal(t, []string{"dr", "john", "o'brien-smith"}, NameParts("Dr. John O'Brien-Smith,"))
	assert.Nil(t, NameParts(""))
	assert.Nil(t, NameParts("  ...  "))
}

func TestNamePartsSplitsSlashes(t *testing.T) {
	// Combined spreadsheet entries list alternate spellings with a slash.
	assert.Equal(t, []string{"michael", "mike", "cozad"}, NameParts("Michael/Mike Cozad"))
	assert.Equal(t, []string{"bill", "jones"}, NameParts("/Bill/ Jones"))
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "mike cozad", CanonicalName("Mike  Cozad"))
	assert.Equal(t, "", CanonicalName("!!!"))
}

func TestVariantEquivalent(t *testing.T) {
	assert.True(t, VariantEquivalent("bill", "william"))
	assert.True(t, VariantEquivalent("william", "bill"))
	assert.True(t, VariantEquivalent("bill", "billy"))
	assert.True(t, VariantEquivalent("mike", "michael"))
	assert.True(t, VariantEquivalent("cozad", "cozad"))

	assert.False(t, VariantEquivalent("bill", "robert"))
	assert.False(t, VariantEquivalent("", "william"))
	assert.False(t, VariantEquivalent("smith", "smyth"))
}

func TestVariantEquivalentSharedDiminutive(t *testing.T) {
	// "steve" belongs to both steven and stephen.
	assert.True(t, VariantEquivalent("steve", "steven"))
	assert.True(t, VariantEquivalent("steve", "stephen"))
}

func TestNormalizeTitle(t *testing.T) {
	assert.Equal(t, "chief executive officer", NormalizeTitle("  Chief   Executive  Officer "))
	assert.Equal(t, "", NormalizeTitle("   "))
}

func TestTitleEquivalent(t *testing.T) {
	assert.True(t, TitleEquivalent("vp", "vice president"))
	assert.True(t, TitleEquivalent("ceo", "chief executive officer"))
	assert.True(t, TitleEquivalent("owner", "principal"))
	assert.False(t, TitleEquivalent("ceo", "cfo"))
	assert.False(t, TitleEquivalent("", "ceo"))
}

func TestNormalizeDomain(t *testing.T) {
	assert.Equal(t, "example.com", NormalizeDomain("https://www.Example.com/path?q=1"))
	assert.Equal(t, "example.com", NormalizeDomain("example.com"))
	assert.Equal(t, "acme.co.uk", NormalizeDomain("http://acme.co.uk#top"))
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "acme.com", EmailDomain("Mike.Cozad@Acme.com"))
	assert.Equal(t, "", EmailDomain("not-an-email"))
	assert.Equal(t, "", EmailDomain("@acme.com"))
	assert.Equal(t, "", EmailDomain("mike@"))
}

func TestEmailLocal(t *testing.T) {
	assert.Equal(t, "mike.cozad", EmailLocal("Mike.Cozad@acme.com"))
	assert.Equal(t, "", EmailLocal("not-an-email"))
}
