package attributor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
)

// bySignature detects "Name ... Contact" or "Contact ... Name" within a
// bounded window around the contact, the shape of an email signature or
// staff listing line.
func (a *Attributor) bySignature(text string, contact model.LocatedContact, entities []entity) (model.AttributionResult, bool) {
	w := window(text, contact.Offset, len(contact.Value), a.cfg.SignatureWindow)
	gap := a.cfg.SignatureGap

	for _, e := range entities {
		name := regexp.QuoteMeta(e.Name)
		value := regexp.QuoteMeta(contact.Value)
		forward := regexp.MustCompile(`(?is)` + name + `.{0,` + strconv.Itoa(gap) + `}?` + value)
		backward := regexp.MustCompile(`(?is)` + value + `.{0,` + strconv.Itoa(gap) + `}?` + name)

		if forward.MatchString(w) || backward.MatchString(w) {
			return model.AttributionResult{
				ContactValue:   contact.Value,
				ContactKind:    contact.Kind,
				EntityName:     e.Name,
				Confidence:     a.cfg.SignatureConfidence,
				Method:         model.MethodSignature,
				ContextSnippet: a.snippet(text, contact),
			}, true
		}
	}
	return model.AttributionResult{}, false
}

// byContactSection attributes a contact whose surrounding window contains
// both a contact-section indicator phrase and all of an entity's name
// tokens. A title keyword in the window adds a bonus, capped.
func (a *Attributor) byContactSection(text string, contact model.LocatedContact, entities []entity) (model.AttributionResult, bool) {
	w := strings.ToLower(window(text, contact.Offset, len(contact.Value), a.cfg.SectionWindow))
	if !containsAny(w, contactSectionIndicators) {
		return model.AttributionResult{}, false
	}

	bestDist := -1
	var best entity
	for _, e := range entities {
		if !containsAllTokens(w, e.parts) {
			continue
		}
		dist := abs(e.Offset - contact.Offset)
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = e
		}
	}
	if bestDist < 0 {
		return model.AttributionResult{}, false
	}

	confidence := a.cfg.SectionBase
	if containsAny(w, normalize.ExecutiveTitleKeywords) {
		confidence += a.cfg.SectionTitleBonus
	}
	if confidence > a.cfg.SectionCap {
		confidence = a.cfg.SectionCap
	}
	if confidence < a.cfg.SectionFloor {
		return model.AttributionResult{}, false
	}

	return model.AttributionResult{
		ContactValue:   contact.Value,
		ContactKind:    contact.Kind,
		EntityName:     best.Name,
		Confidence:     confidence,
		Method:         model.MethodContactSection,
		ContextSnippet: a.snippet(text, contact),
	}, true
}

// byNamePattern attributes an email whose local part is derived from an
// entity's name: first.last beats first-initial+last beats bare lastname.
// Phones carry no name signal, so this strategy is email only.
func (a *Attributor) byNamePattern(text string, contact model.LocatedContact, entities []entity) (model.AttributionResult, bool) {
	if contact.Kind != model.ContactEmail {
		return model.AttributionResult{}, false
	}
	local := normalize.EmailLocal(contact.Value)
	if local == "" {
		return model.AttributionResult{}, false
	}
	localPlain := stripSeparators(local)

	bestConf := 0.0
	bestDist := -1
	var best entity
	for _, e := range entities {
		conf := a.patternConfidence(localPlain, e.parts)
		if conf == 0 {
			continue
		}
		dist := abs(e.Offset - contact.Offset)
		if conf > bestConf || (conf == bestConf && dist < bestDist) {
			bestConf = conf
			bestDist = dist
			best = e
		}
	}
	if bestConf == 0 {
		return model.AttributionResult{}, false
	}

	return model.AttributionResult{
		ContactValue:   contact.Value,
		ContactKind:    contact.Kind,
		EntityName:     best.Name,
		Confidence:     bestConf,
		Method:         model.MethodNamePattern,
		ContextSnippet: a.snippet(text, contact),
	}, true
}

// patternConfidence matches an email local part (separators removed)
// against an entity's normalized name parts.
func (a *Attributor) patternConfidence(localPlain string, parts []string) float64 {
	first := parts[0]
	last := parts[len(parts)-1]

	if len(parts) >= 2 && first != "" && last != "" {
		if strings.Contains(localPlain, stripSeparators(first)+stripSeparators(last)) {
			return a.cfg.PatternFullConfidence
		}
		if strings.Contains(localPlain, first[:1]+stripSeparators(last)) {
			return a.cfg.PatternInitialConfidence
		}
	}
	if len(last) >= a.cfg.PatternMinLastLen && strings.Contains(localPlain, stripSeparators(last)) {
		return a.cfg.PatternLastConfidence
	}
	return 0
}

// byProximity is the fallback: score entities by character distance to the
// contact, weighted by the contact's surrounding context, and let the
// closest qualifying entity claim it.
func (a *Attributor) byProximity(text string, contact model.LocatedContact, entities []entity) (model.AttributionResult, bool) {
	maxDist := a.cfg.EmailMaxDistance
	floor := a.cfg.EmailProximityFloor
	ceiling := a.cfg.EmailProximityCap
	if contact.Kind == model.ContactPhone {
		maxDist = a.cfg.PhoneMaxDistance
		floor = a.cfg.PhoneProximityFloor
		ceiling = a.cfg.PhoneProximityCap
	}

	w := strings.ToLower(window(text, contact.Offset, len(contact.Value), a.cfg.SectionWindow))
	weight := a.cfg.BaseWeight
	switch {
	case containsAny(w, contactSectionIndicators):
		weight = a.cfg.SectionWeight
	case containsAny(w, normalize.ExecutiveTitleKeywords):
		weight = a.cfg.TitleWeight
	}

	bestDist := -1
	bestScore := 0.0
	var best entity
	for _, e := range entities {
		dist := abs(e.Offset - contact.Offset)
		raw := 1.0 - float64(dist)/float64(maxDist)
		if raw <= 0 {
			continue
		}
		score := raw * weight
		if score > ceiling {
			score = ceiling
		}
		if score < floor {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			bestScore = score
			best = e
		}
	}
	if bestDist < 0 {
		return model.AttributionResult{}, false
	}

	return model.AttributionResult{
		ContactValue:   contact.Value,
		ContactKind:    contact.Kind,
		EntityName:     best.Name,
		Confidence:     bestScore,
		Method:         model.MethodProximity,
		ContextSnippet: a.snippet(text, contact),
	}, true
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || r == '_' || r == '-' || r == '\'' {
			return -1
		}
		return r
	}, s)
}
