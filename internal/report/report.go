// Package report derives summary statistics from a resolution run. Purely
// derived: no new matching logic lives here.
package report

import (
	"fmt"
	"strings"

	"github.com/sells-group/execmatch/internal/model"
)

// DiscoveryRate returns good matches (tier better than Weak) over the
// reference count, as a percentage. With no references there is nothing to
// discover, so the rate is 100.0 by convention.
func DiscoveryRate(matches []model.Match, referenceCount int) float64 {
	if referenceCount == 0 {
		return 100.0
	}
	return clampPct(float64(goodMatches(matches)) / float64(referenceCount) * 100.0)
}

// AttributionRate returns the share of good matches whose candidate carries
// a non-empty email or phone, as a percentage. With no good matches the
// rate is 0.0 by convention.
func AttributionRate(matches []model.Match) float64 {
	good := 0
	withContact := 0
	for _, m := range matches {
		if !m.Tier.Confident() {
			continue
		}
		good++
		if m.Candidate.HasContact() {
			withContact++
		}
	}
	if good == 0 {
		return 0.0
	}
	return clampPct(float64(withContact) / float64(good) * 100.0)
}

// Build assembles the terminal ResolutionResult from the matcher's output.
func Build(matches []model.Match, missing, falsePositives []model.EntityRecord, referenceCount int) model.ResolutionResult {
	return model.ResolutionResult{
		Matches:         matches,
		Missing:         missing,
		FalsePositives:  falsePositives,
		DiscoveryRate:   DiscoveryRate(matches, referenceCount),
		AttributionRate: AttributionRate(matches),
	}
}

// Render formats a resolution result as a human-readable text summary.
func Render(res model.ResolutionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Matches: %d (good: %d)\n", len(res.Matches), goodMatches(res.Matches))
	for _, m := range res.Matches {
		refName := "-"
		if m.Reference != nil {
			refName = m.Reference.FullName
		}
		fmt.Fprintf(&b, "  [%-8s %.2f] %s -> %s\n", m.Tier, m.Confidence, m.Candidate.FullName, refName)
		for _, reason := range m.Reasons {
			fmt.Fprintf(&b, "             %s\n", reason)
		}
	}

	if len(res.Missing) > 0 {
		fmt.Fprintf(&b, "Missing references: %d\n", len(res.Missing))
		for _, r := range res.Missing {
			fmt.Fprintf(&b, "  %s\n", r.FullName)
		}
	}
	if len(res.FalsePositives) > 0 {
		fmt.Fprintf(&b, "False positives: %d\n", len(res.FalsePositives))
		for _, c := range res.FalsePositives {
			fmt.Fprintf(&b, "  %s\n", c.FullName)
		}
	}

	fmt.Fprintf(&b, "Discovery rate: %.1f%%\n", res.DiscoveryRate)
	fmt.Fprintf(&b, "Attribution rate: %.1f%%\n", res.AttributionRate)

	return b.String()
}

func goodMatches(matches []model.Match) int {
	n := 0
	for _, m := range matches {
		if m.Tier.Confident() {
			n++
		}
	}
	return n
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
