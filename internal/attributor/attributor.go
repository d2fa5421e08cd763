package attributor

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/execmatch/internal/model"
	"github.com/sells-group/execmatch/internal/normalize"
)

// Attributor assigns discovered contacts to named entities. It is stateless
// per invocation and safe for concurrent use across pages.
type Attributor struct {
	cfg Config
}

// New creates an Attributor with the given configuration.
func New(cfg Config) *Attributor {
	return &Attributor{cfg: cfg}
}

// entity carries an input entity with its precomputed normalized parts.
type entity struct {
	model.LocatedEntity
	parts []string
}

// AttributeContacts assigns each contact to at most one entity. Strategies
// run in strict precedence; the first whose result clears its threshold
// wins and no later strategy is consulted for that contact. Contacts with
// out-of-bounds offsets are skipped; contacts no strategy can place are
// simply omitted from the result.
func (a *Attributor) AttributeContacts(rawText string, contacts []model.LocatedContact, entities []model.LocatedEntity) []model.AttributionResult {
	if rawText == "" || len(contacts) == 0 || len(entities) == 0 {
		return nil
	}

	named := make([]entity, 0, len(entities))
	for _, e := range entities {
		parts := normalize.NameParts(e.Name)
		if len(parts) == 0 {
			continue
		}
		named = append(named, entity{LocatedEntity: e, parts: parts})
	}
	if len(named) == 0 {
		return nil
	}

	var results []model.AttributionResult
	for _, contact := range contacts {
		if contact.Offset < 0 || contact.Offset+len(contact.Value) > len(rawText) {
			zap.L().Warn("attributor: contact offset out of bounds, skipping",
				zap.String("value", contact.Value),
				zap.Int("offset", contact.Offset),
			)
			continue
		}

		if res, ok := a.bySignature(rawText, contact, named); ok {
			results = append(results, res)
			continue
		}
		if res, ok := a.byContactSection(rawText, contact, named); ok {
			results = append(results, res)
			continue
		}
		if res, ok := a.byNamePattern(rawText, contact, named); ok {
			results = append(results, res)
			continue
		}
		if res, ok := a.byProximity(rawText, contact, named); ok {
			results = append(results, res)
		}
	}

	zap.L().Debug("attributor: attribution complete",
		zap.Int("contacts", len(contacts)),
		zap.Int("entities", len(named)),
		zap.Int("attributed", len(results)),
	)

	return results
}

// window returns text[center-radius : center+len+radius] clipped to bounds.
func window(text string, offset, length, radius int) string {
	lo := max(0, offset-radius)
	hi := min(len(text), offset+length+radius)
	return text[lo:hi]
}

// snippet renders a whitespace-collapsed context window around a contact.
func (a *Attributor) snippet(text string, contact model.LocatedContact) string {
	w := window(text, contact.Offset, len(contact.Value), a.cfg.SnippetRadius)
	return strings.Join(strings.Fields(w), " ")
}

// containsAllTokens reports whether every token occurs in the lowercased
// haystack.
func containsAllTokens(lowerHaystack string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(lowerHaystack, tok) {
			return false
		}
	}
	return true
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
