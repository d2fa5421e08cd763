package matcher

import (
	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
)

// Matcher scores candidate records against reference records. It is
// stateless per invocation: each Resolve call reads only its two input
// slices, so callers may run one Matcher concurrently across companies.
type Matcher struct {
	cfg Config
}

// New creates a Matcher with the given configuration.
func New(cfg Config) *Matcher {
	return &Matcher{cfg: cfg}
}

// ScorePair computes field scores, the weighted overall confidence, and the
// tier for one candidate/reference pair. The returned Match carries the
// reference; assignment decides whether it is kept.
func (m *Matcher) ScorePair(candidate, reference model.EntityRecord) model.Match {
	scores := map[string]model.FieldScore{
		FieldName:    m.CompareName(candidate.FullName, reference.FullName),
		FieldEmail:   m.CompareEmail(candidate.Email, reference.Email),
		FieldProfile: m.CompareProfile(candidate.ProfileURL, reference.ProfileURL),
		FieldTitle:   m.CompareTitle(candidate.Title, reference.Title),
	}

	overall := m.cfg.NameWeight*scores[FieldName].Score +
		m.cfg.EmailWeight*scores[FieldEmail].Score +
		m.cfg.ProfileWeight*scores[FieldProfile].Score +
		m.cfg.TitleWeight*scores[FieldTitle].Score
	overall = clamp01(overall)

	var reasons []string
	for _, f := range []string{FieldName, FieldEmail, FieldProfile, FieldTitle} {
		if scores[f].Reason != "" {
			reasons = append(reasons, scores[f].Reason)
		}
	}

	ref := reference
	return model.Match{
		Candidate:   candidate,
		Reference:   &ref,
		Tier:        m.classify(overall, scores[FieldName].Score, scores[FieldEmail].Score),
		Confidence:  overall,
		FieldScores: scores,
		Reasons:     reasons,
	}
}

// classify buckets a score triple into a tier. Rules are evaluated in
// order; the first that fires wins.
func (m *Matcher) classify(overall, name, email float64) model.MatchTier {
	switch {
	case overall >= m.cfg.ExactOverall || (name >= m.cfg.ExactNameEmail && email >= m.cfg.ExactNameEmail):
		return model.TierExact
	case overall >= m.cfg.StrongOverall || (name >= m.cfg.StrongName && email >= m.cfg.StrongEmail):
		return model.TierStrong
	case overall >= m.cfg.PartialOverall || name >= m.cfg.PartialName:
		return model.TierPartial
	case overall >= m.cfg.WeakOverall:
		return model.TierWeak
	default:
		return model.TierNoMatch
	}
}

// Resolve performs the greedy exclusive assignment of candidates to
// references. Candidates are processed in input order; each claims the
// unused reference with the strictly highest overall score (first seen wins
// ties), and a reference is consumed only when the resulting tier is better
// than Weak, so a later candidate can still contend for a reference an
// earlier candidate only weakly matched. The assignment is deterministic
// and greedy, not globally optimal.
//
// Candidates with an empty normalized name are skipped entirely: validity
// is enforced at the loader boundary, this is the engine-side guard.
func (m *Matcher) Resolve(candidates, references []model.EntityRecord) (matches []model.Match, missing, falsePositives []model.EntityRecord) {
	used := make([]bool, len(references))

	for _, cand := range candidates {
		if normalize.CanonicalName(cand.FullName) == "" {
			zap.L().Debug("matcher: skipping candidate with empty normalized name",
				zap.String("source_url", cand.SourceURL),
			)
			continue
		}

		best := model.Match{Candidate: cand, Tier: model.TierNoMatch}
		bestIdx := -1
		for i, ref := range references {
			if used[i] {
				continue
			}
			pair := m.ScorePair(cand, ref)
			if bestIdx == -1 || pair.Confidence > best.Confidence {
				best = pair
				bestIdx = i
			}
		}

		if bestIdx >= 0 && best.Tier.Confident() {
			used[bestIdx] = true
		} else {
			// Weak guesses claim nothing: the candidate is reported
			// unmatched and the reference stays in contention.
			best.Reference = nil
			falsePositives = append(falsePositives, cand)
		}
		matches = append(matches, best)
	}

	for i, ref := range references {
		if !used[i] {
			missing = append(missing, ref)
		}
	}

	zap.L().Debug("matcher: resolution complete",
		zap.Int("candidates", len(candidates)),
		zap.Int("references", len(references)),
		zap.Int("matched", len(references)-len(missing)),
		zap.Int("missing", len(missing)),
		zap.Int("false_positives", len(falsePositives)),
	)

	return matches, missing, falsePositives
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
