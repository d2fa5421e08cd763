package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sells-group/execmatch/internal/model"
)

func goodMatch(candidate string, contact bool) model.Match {
	rec := model.EntityRecord{FullName: candidate}
	if contact {
		rec.Email = "someone@acme.com"
	}
	ref := model.EntityRecord{FullName: candidate}
	return model.Match{Candidate: rec, Reference: &ref, Tier: model.TierStrong, Confidence: 0.8}
}

func weakMatch(candidate string) model.Match {
	return model.Match{Candidate: model.EntityRecord{FullName: candidate}, Tier: model.TierWeak, Confidence: 0.35}
}

func TestDiscoveryRate(t *testing.T) {
	matches := []model.Match{goodMatch("a", true), goodMatch("b", false), weakMatch("c")}

	assert.Equal(t, 100.0, DiscoveryRate(matches, 2))
	assert.Equal(t, 50.0, DiscoveryRate(matches, 4))
	// Weak matches never count as discovered.
	assert.Equal(t, 0.0, DiscoveryRate([]model.Match{weakMatch("c")}, 4))
}

func TestDiscoveryRateWithNoReferences(t *testing.T) {
	assert.Equal(t, 100.0, DiscoveryRate(nil, 0))
}

func TestDiscoveryRateClampsAt100(t *testing.T) {
	matches := []model.Match{goodMatch("a", false), goodMatch("b", false), goodMatch("c", false)}
	assert.Equal(t, 100.0, DiscoveryRate(matches, 2))
}

func TestAttributionRate(t *testing.T) {
	matches := []model.Match{goodMatch("a", true), goodMatch("b", false), weakMatch("c")}
	assert.Equal(t, 50.0, AttributionRate(matches))
}

func TestAttributionRateWithNoGoodMatches(t *testing.T) {
	assert.Equal(t, 0.0, AttributionRate(nil))
	assert.Equal(t, 0.0, AttributionRate([]model.Match{weakMatch("c")}))
}

func TestBuildEmptyRun(t *testing.T) {
	res := Build(nil, nil, nil, 0)
	assert.Equal(t, 100.0, res.DiscoveryRate)
	assert.Equal(t, 0.0, res.AttributionRate)
	assert.Empty(t, res.Matches)
	assert.Empty(t, res.Missing)
	assert.Empty(t, res.FalsePositives)
}

func TestRender(t *testing.T) {
	res := Build(
		[]model.Match{goodMatch("Jane Doe", true), weakMatch("Info Team")},
		[]model.EntityRecord{{FullName: "Mike Cozad"}},
		[]model.EntityRecord{{FullName: "Info Team"}},
		2,
	)

	out := Render(res)
	assert.Contains(t, out, "Matches: 2 (good: 1)")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Missing references: 1")
	assert.Contains(t, out, "Mike Cozad")
	assert.Contains(t, out, "False positives: 1")
	assert.Contains(t, out, "Discovery rate: 50.0%")
	assert.Contains(t, out, "Attribution rate: 100.0%")
}
