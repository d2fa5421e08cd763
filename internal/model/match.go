package model

import "encoding/json"

// MatchTier is a discrete confidence bucket for a candidate/reference match.
// Higher values indicate higher confidence.
type MatchTier int

const (
	TierNoMatch MatchTier = iota
	TierWeak
	TierPartial
	TierStrong
	TierExact
)

// tierNames maps tiers to their wire representation.
var tierNames = map[MatchTier]string{
	TierNoMatch: "no_match",
	TierWeak:    "weak",
	TierPartial: "partial",
	TierStrong:  "strong",
	TierExact:   "exact",
}

func (t MatchTier) String() string {
	if s, ok := tierNames[t]; ok {
		return s
	}
	return "no_match"
}

// Confident reports whether the tier is strong enough to consume a
// reference record during assignment (better than Weak).
func (t MatchTier) Confident() bool {
	return t > TierWeak
}

// MarshalJSON renders the tier as its string name.
func (t MatchTier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON parses a tier from its string name.
func (t *MatchTier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for tier, name := range tierNames {
		if name == s {
			*t = tier
			return nil
		}
	}
	*t = TierNoMatch
	return nil
}

// FieldScore is the outcome of one field comparator for one record pair.
// Never mutated after creation.
type FieldScore struct {
	Field  string  `json:"field"`
	Score  float64 `json:"score"`
	Reason string  `json:"reason,omitempty"`
}

// Match links a candidate to its best available reference (or to none).
// Created once per candidate during assignment and never mutated afterward.
type Match struct {
	Candidate   EntityRecord          `json:"candidate"`
	Reference   *EntityRecord         `json:"reference,omitempty"`
	Tier        MatchTier             `json:"tier"`
	Confidence  float64               `json:"confidence"`
	FieldScores map[string]FieldScore `json:"field_scores,omitempty"`
	Reasons     []string              `json:"reasons,omitempty"`
}

// ResolutionResult is the terminal artifact of one comparison run.
type ResolutionResult struct {
	Matches         []Match        `json:"matches"`
	Missing         []EntityRecord `json:"missing,omitempty"`
	FalsePositives  []EntityRecord `json:"false_positives,omitempty"`
	DiscoveryRate   float64        `json:"discovery_rate"`
	AttributionRate float64        `json:"attribution_rate"`
}
