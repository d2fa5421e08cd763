// Package pipeline orchestrates one company's validation pass: attribute
// contacts from page text, enrich the extracted candidates, resolve them
// against the reference set, and derive the summary report.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/attributor"
	"github.com/sells-group/execmatch/internal/matcher"
	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
	"github.com/sells-group/execmatch/internal/report"
)

// Engine bundles the attributor and matcher behind the two public entry
// points. It holds no per-run state: every call is self-contained given
// its inputs, so one Engine is safe to share across goroutines.
type Engine struct {
	matcher    *matcher.Matcher
	attributor *attributor.Attributor
}

// New creates an Engine from matcher and attributor configuration.
func New(mcfg matcher.Config, acfg attributor.Config) *Engine {
	return &Engine{
		matcher:    matcher.New(mcfg),
		attributor: attributor.New(acfg),
	}
}

// AttributeContacts links located contacts to located entities in raw page
// text. See the attributor package for the strategy precedence.
func (e *Engine) AttributeContacts(rawText string, contacts []model.LocatedContact, entities []model.LocatedEntity) []model.AttributionResult {
	return e.attributor.AttributeContacts(rawText, contacts, entities)
}

// ResolveEntities matches candidates against references and returns the
// full resolution artifact with derived rates.
func (e *Engine) ResolveEntities(candidates, references []model.EntityRecord) model.ResolutionResult {
	matches, missing, falsePositives := e.matcher.Resolve(candidates, references)
	return report.Build(matches, missing, falsePositives, len(references))
}

// CompanyInput is everything needed to validate one company's extraction.
type CompanyInput struct {
	CompanyURL string                 `json:"company_url"`
	RawText    string                 `json:"raw_text,omitempty"`
	Contacts   []model.LocatedContact `json:"contacts,omitempty"`
	Entities   []model.LocatedEntity  `json:"entities,omitempty"`
	Candidates []model.EntityRecord   `json:"candidates"`
	References []model.EntityRecord   `json:"references"`
}

// CompanyResult pairs the resolution artifact with the attributions that
// fed it.
type CompanyResult struct {
	CompanyURL   string                    `json:"company_url"`
	Attributions []model.AttributionResult `json:"attributions,omitempty"`
	Resolution   model.ResolutionResult    `json:"resolution"`
}

// Run validates one company end to end: attribution first (when page text
// is supplied), candidate enrichment, then resolution.
func (e *Engine) Run(input CompanyInput) CompanyResult {
	var attributions []model.AttributionResult
	candidates := input.Candidates

	if input.RawText != "" {
		attributions = e.AttributeContacts(input.RawText, input.Contacts, input.Entities)
		candidates = EnrichCandidates(candidates, attributions)
	}

	resolution := e.ResolveEntities(candidates, input.References)

	zap.L().Info("pipeline: company validated",
		zap.String("company_url", input.CompanyURL),
		zap.Int("candidates", len(candidates)),
		zap.Int("references", len(input.References)),
		zap.Float64("discovery_rate", resolution.DiscoveryRate),
		zap.Float64("attribution_rate", resolution.AttributionRate),
	)

	return CompanyResult{
		CompanyURL:   input.CompanyURL,
		Attributions: attributions,
		Resolution:   resolution,
	}
}

// EnrichCandidates copies attributed contact values onto the matching
// candidate records. An entity takes at most one email and one phone;
// fields already populated by the extractor are left alone. Inputs are
// not mutated.
func EnrichCandidates(candidates []model.EntityRecord, attributions []model.AttributionResult) []model.EntityRecord {
	if len(attributions) == 0 {
		return candidates
	}

	enriched := make([]model.EntityRecord, len(candidates))
	copy(enriched, candidates)

	for _, attr := range attributions {
		target := normalize.CanonicalName(attr.EntityName)
		if target == "" {
			continue
		}
		for i := range enriched {
			if normalize.CanonicalName(enriched[i].FullName) != target {
				continue
			}
			switch attr.ContactKind {
			case model.ContactEmail:
				if enriched[i].Email == "" {
					enriched[i].Email = attr.ContactValue
				}
			case model.ContactPhone:
				if enriched[i].Phone == "" {
					enriched[i].Phone = attr.ContactValue
				}
			}
			break
		}
	}

	return enriched
}
