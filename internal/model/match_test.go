package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchTierOrdering(t *testing.T) {
	assert.True(t, TierExact > TierStrong)
	assert.True(t, TierStrong > TierPartial)
	assert.True(t, TierPartial > TierWeak)
	assert.True(t, TierWeak > TierNoMatch)
}

func TestMatchTierConfident(t *testing.T) {
	assert.True(t, TierExact.Confident())
	assert.True(t, TierStrong.Confident())
	assert.True(t, TierPartial.Confident())
	assert.False(t, TierWeak.Confident())
	assert.False(t, TierNoMatch.Confident())
}

func TestMatchTierJSON(t *testing.T) {
	data, err := json.Marshal(TierStrong)
	require.NoError(t, err)
	assert.Equal(t, `"strong"`, string(data))

	var tier MatchTier
	require.NoError(t, json.Unmarshal([]byte(`"exact"`), &tier))
	assert.Equal(t, TierExact, tier)

	// Unknown names degrade to no_match rather than failing the decode.
	require.NoError(t, json.Unmarshal([]byte(`"garbage"`), &tier))
	assert.Equal(t, TierNoMatch, tier)
}

func TestHasContact(t *testing.T) {
	assert.False(t, EntityRecord{FullName: "Jane Doe"}.HasContact())
	assert.True(t, EntityRecord{FullName: "Jane Doe", Email: "jane@acme.com"}.HasContact())
	assert.True(t, EntityRecord{FullName: "Jane Doe", Phone: "555-123-4567"}.HasContact())
}
