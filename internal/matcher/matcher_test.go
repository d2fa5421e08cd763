package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/execmatch/internal/model"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.InDelta(t, 1.0, cfg.WeightSum(), 1e-9)
}

func TestConfigValidateRejectsBadWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NameWeight = 0.5
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sum to 1.0")
}

func TestConfigValidateRejectsBadThresholdOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeakOverall = 0.95
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weak_overall")
}

func TestScorePairIdenticalRecords(t *testing.T) {
	m := newTestMatcher()
	rec := model.EntityRecord{
		FullName:   "Mike Cozad",
		Title:      "CEO",
		Email:      "mcozad@acme.com",
		ProfileURL: "https://linkedin.com/in/mike-cozad",
	}

	match := m.ScorePair(rec, rec)
	assert.InDelta(t, 1.0, match.Confidence, 1e-9)
	assert.Equal(t, model.TierExact, match.Tier)
	assert.Len(t, match.FieldScores, 4)
	assert.NotEmpty(t, match.Reasons)
}

func TestScorePairConfidenceIsWeightedSum(t *testing.T) {
	m := newTestMatcher()
	cand := model.EntityRecord{FullName: "Mike Cozad", Email: "mcozad@acme.com"}
	ref := model.EntityRecord{FullName: "Mike Cozad", Email: "jane@acme.com"}

	match := m.ScorePair(cand, ref)
	// name 1.0 * 0.35 + email domain 0.3 * 0.35
	assert.InDelta(t, 0.35+0.3*0.35, match.Confidence, 1e-9)
}

func TestClassifyTierRules(t *testing.T) {
	m := newTestMatcher()

	cases := []struct {
		overall, name, email float64
		want                 model.MatchTier
	}{
		{0.95, 0, 0, model.TierExact},
		{0.5, 0.95, 0.95, model.TierExact}, // name+email rule fires before overall
		{0.75, 0, 0, model.TierStrong},
		{0.4, 0.85, 0.4, model.TierStrong},
		{0.55, 0, 0, model.TierPartial},
		{0.2, 0.7, 0, model.TierPartial},
		{0.35, 0, 0, model.TierWeak},
		{0.1, 0, 0, model.TierNoMatch},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, m.classify(tc.overall, tc.name, tc.email),
			"overall=%.2f name=%.2f email=%.2f", tc.overall, tc.name, tc.email)
	}
}

func TestResolveVariantNameAndExactEmail(t *testing.T) {
	m := newTestMatcher()
	candidates := []model.EntityRecord{
		{FullName: "Mike Cozad", Email: "mcozad@acme.com", Title: "CEO"},
	}
	references := []model.EntityRecord{
		{FullName: "Michael/Mike Cozad", Email: "mcozad@acme.com", Title: "Chief Executive Officer"},
	}

	matches, missing, falsePositives := m.Resolve(candidates, references)
	require.Len(t, matches, 1)
	assert.Empty(t, missing)
	assert.Empty(t, falsePositives)

	match := matches[0]
	assert.Equal(t, model.TierExact, match.Tier)
	require.NotNil(t, match.Reference)
	assert.Equal(t, "Michael/Mike Cozad", match.Reference.FullName)
	assert.GreaterOrEqual(t, match.FieldScores[FieldName].Score, 0.8)
	assert.Equal(t, 1.0, match.FieldScores[FieldEmail].Score)
}

func TestResolveGenericCandidateStaysUnmatched(t *testing.T) {
	m := newTestMatcher()
	candidates := []model.EntityRecord{
		{FullName: "Info Team", Email: "info@company.com"},
	}
	references := []model.EntityRecord{
		{FullName: "Jane Doe", Email: "jane@company.com"},
	}

	matches, missing, falsePositives := m.Resolve(candidates, references)
	require.Len(t, matches, 1)
	assert.False(t, matches[0].Tier.Confident())
	assert.Nil(t, matches[0].Reference)
	assert.Len(t, falsePositives, 1)
	assert.Len(t, missing, 1)
}

func TestResolveReferencesAreExclusive(t *testing.T) {
	m := newTestMatcher()
	candidates := []model.EntityRecord{
		{FullName: "Jane Doe", Email: "jane@acme.com"},
		{FullName: "Jane Doe", Email: "jane@acme.com"},
	}
	references := []model.EntityRecord{
		{FullName: "Jane Doe", Email: "jane@acme.com"},
	}

	matches, missing, falsePositives := m.Resolve(candidates, references)
	require.Len(t, matches, 2)
	assert.Empty(t, missing)

	// First candidate claims the reference; the duplicate gets nothing.
	require.NotNil(t, matches[0].Reference)
	assert.Equal(t, model.TierExact, matches[0].Tier)
	assert.Nil(t, matches[1].Reference)
	assert.Len(t, falsePositives, 1)
}

func TestResolveWeakMatchDoesNotConsumeReference(t *testing.T) {
	m := newTestMatcher()
	candidates := []model.EntityRecord{
		// Shares only the email domain: never better than Weak.
		{FullName: "Xqzw Vbnm", Email: "info@acme.com"},
		{FullName: "Bob Paulson", Email: "rpaulson@acme.com"},
	}
	references := []model.EntityRecord{
		{FullName: "Robert Paulson", Email: "rpaulson@acme.com"},
	}

	matches, missing, falsePositives := m.Resolve(candidates, references)
	require.Len(t, matches, 2)

	assert.False(t, matches[0].Tier.Confident())
	assert.Nil(t, matches[0].Reference)
	assert.Len(t, falsePositives, 1)

	// The weak first candidate left the reference in contention.
	assert.Equal(t, model.TierExact, matches[1].Tier)
	require.NotNil(t, matches[1].Reference)
	assert.Equal(t, "Robert Paulson", matches[1].Reference.FullName)
	assert.Empty(t, missing)
}

func TestResolveSkipsCandidatesWithEmptyNames(t *testing.T) {
	m := newTestMatcher()
	candidates := []model.EntityRecord{
		{FullName: "   "},
		{FullName: "!!!", Email: "x@acme.com"},
	}

	matches, missing, falsePositives := m.Resolve(candidates, nil)
	assert.Empty(t, matches)
	assert.Empty(t, missing)
	assert.Empty(t, falsePositives)
}

func TestResolveWithNoReferences(t *testing.T) {
	m := newTestMatcher()
	candidates := []model.EntityRecord{
		{FullName: "Jane Doe", Email: "jane@acme.com"},
	}

	matches, missing, falsePositives := m.Resolve(candidates, nil)
	require.Len(t, matches, 1)
	assert.Nil(t, matches[0].Reference)
	assert.Equal(t, model.TierNoMatch, matches[0].Tier)
	assert.Empty(t, missing)
	assert.Len(t, falsePositives, 1)
}

func TestResolveUnmatchedReferencesAreMissing(t *testing.T) {
	m := newTestMatcher()
	references := []model.EntityRecord{
		{FullName: "Jane Doe"},
		{FullName: "Mike Cozad"},
	}

	matches, missing, falsePositives := m.Resolve(nil, references)
	assert.Empty(t, matches)
	assert.Empty(t, falsePositives)
	assert.Len(t, missing, 2)
}

func TestExactNameNeverScoresWorseThanFuzzy(t *testing.T) {
	m := newTestMatcher()
	ref := model.EntityRecord{FullName: "Jonathan Smithers", Email: "js@acme.com"}

	fuzzy := m.ScorePair(model.EntityRecord{FullName: "Jonathon Smithers"}, ref)
	exact := m.ScorePair(model.EntityRecord{FullName: "Jonathan Smithers"}, ref)

	assert.GreaterOrEqual(t, exact.Confidence, fuzzy.Confidence)
	assert.GreaterOrEqual(t, int(exact.Tier), int(fuzzy.Tier))
}
