package matcher

import (
	"fmt"
	"strings"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
	"github.com/sells-group/execmatch/internal/textsim"
)

// Field names used as keys in Match.FieldScores.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldProfile = "profile"
	FieldTitle   = "title"
)

// CompareName scores two person names. Exact normalized-parts equality wins
// outright; nickname-variant overlap covers "Bill"/"William" style pairs;
// otherwise the best of three fuzzy kernels is used, narrated only above
// the fuzzy floor. Missing input on either side is neutral.
func (m *Matcher) CompareName(a, b string) model.FieldScore {
	fs := model.FieldScore{Field: FieldName}
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return fs
	}

	partsA := normalize.NameParts(a)
	partsB := normalize.NameParts(b)
	if len(partsA) == 0 || len(partsB) == 0 {
		return fs
	}

	if strings.Join(partsA, " ") == strings.Join(partsB, " ") {
		fs.Score = 1.0
		fs.Reason = "exact normalized name match"
		return fs
	}

	if score, matched := variantOverlap(partsA, partsB); score > m.cfg.NameVariantDirect {
		fs.Score = score
		fs.Reason = fmt.Sprintf("name variant match (%d/%d parts)", matched, max(len(partsA), len(partsB)))
		return fs
	}

	la, lb := textsim.FoldCase(a), textsim.FoldCase(b)
	best, algo := bestOfThree(la, lb)
	fs.Score = best
	if best > m.cfg.NameFuzzyFloor {
		fs.Reason = fmt.Sprintf("fuzzy name similarity %.2f (%s)", best, algo)
	}
	return fs
}

// variantOverlap counts every variant-equivalent token pair and returns
// min(pairs/max(lenA,lenB), 1.0) plus the pair count. Pairs are counted
// non-exclusively so a combined entry like "michael/mike" credits both
// spellings against a single "mike"; the cap absorbs the overcount.
func variantOverlap(partsA, partsB []string) (float64, int) {
	matched := 0
	for _, ta := range partsA {
		for _, tb := range partsB {
			if normalize.VariantEquivalent(ta, tb) {
				matched++
			}
		}
	}
	denom := max(len(partsA), len(partsB))
	if denom == 0 {
		return 0, 0
	}
	score := float64(matched) / float64(denom)
	if score > 1.0 {
		score = 1.0
	}
	return score, matched
}

// bestOfThree takes the maximum of Jaro-Winkler, normalized Levenshtein,
// and sequence ratio, as a guard against single-algorithm bias.
func bestOfThree(a, b string) (float64, string) {
	best, algo := textsim.JaroWinkler(a, b), "jaro-winkler"
	if lv := textsim.NormalizedLevenshtein(a, b); lv > best {
		best, algo = lv, "levenshtein"
	}
	if sr := textsim.SequenceRatio(a, b); sr > best {
		best, algo = sr, "sequence"
	}
	return best, algo
}

// CompareEmail scores two email addresses: exact case-insensitive match, or
// partial credit for a shared domain (same organization, different person).
func (m *Matcher) CompareEmail(a, b string) model.FieldScore {
	fs := model.FieldScore{Field: FieldEmail}
	la, lb := textsim.FoldCase(a), textsim.FoldCase(b)
	if la == "" || lb == "" {
		return fs
	}

	if la == lb {
		fs.Score = 1.0
		fs.Reason = "exact email match"
		return fs
	}

	da, db := normalize.EmailDomain(la), normalize.EmailDomain(lb)
	if da != "" && da == db {
		fs.Score = m.cfg.EmailDomainPartial
		fs.Reason = "same email domain"
	}
	return fs
}

// CompareProfile scores two professional-profile URLs by their canonical
// identifier (the last non-empty path segment).
func (m *Matcher) CompareProfile(a, b string) model.FieldScore {
	fs := model.FieldScore{Field: FieldProfile}
	ida, idb := profileIdentifier(a), profileIdentifier(b)
	if ida == "" || idb == "" {
		return fs
	}

	if ida == idb {
		fs.Score = 1.0
		fs.Reason = "profile identifier match"
		return fs
	}

	if ratio := textsim.SequenceRatio(ida, idb); ratio > m.cfg.ProfileFuzzyFloor {
		fs.Score = ratio
		fs.Reason = fmt.Sprintf("similar profile identifiers %.2f", ratio)
	}
	return fs
}

// profileIdentifier extracts the lowercased last non-empty path segment of
// a profile URL, with query string and fragment stripped.
func profileIdentifier(rawURL string) string {
	s := strings.ToLower(strings.TrimSpace(rawURL))
	if s == "" {
		return ""
	}
	for _, prefix := range []string{"https://", "http://"} {
		s = strings.TrimPrefix(s, prefix)
	}
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimRight(s, "/")
	segments := strings.Split(s, "/")
	if len(segments) < 2 {
		// Bare host: no identifying path segment.
		return ""
	}
	return segments[len(segments)-1]
}

// CompareTitle scores two business titles: exact normalized match, synonym
// table match, or sequence ratio above the fuzzy floor.
func (m *Matcher) CompareTitle(a, b string) model.FieldScore {
	fs := model.FieldScore{Field: FieldTitle}
	na, nb := normalize.NormalizeTitle(a), normalize.NormalizeTitle(b)
	if na == "" || nb == "" {
		return fs
	}

	if na == nb {
		fs.Score = 1.0
		fs.Reason = "exact title match"
		return fs
	}

	if normalize.TitleEquivalent(na, nb) {
		fs.Score = m.cfg.TitleSynonymScore
		fs.Reason = "title synonym match"
		return fs
	}

	if ratio := textsim.SequenceRatio(na, nb); ratio > m.cfg.TitleFuzzyFloor {
		fs.Score = ratio
		fs.Reason = fmt.Sprintf("similar titles %.2f", ratio)
	}
	return fs
}
