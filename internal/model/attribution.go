package model

// AttributionMethod identifies which strategy linked a contact to an entity.
// Methods are listed in precedence order: the attributor stops at the first
// strategy whose result clears its own threshold.
type AttributionMethod string

const (
	MethodSignature      AttributionMethod = "signature_co-occurrence"
	MethodContactSection AttributionMethod = "contact_section"
	MethodNamePattern    AttributionMethod = "name_pattern"
	MethodProximity      AttributionMethod = "proximity"
)

// AttributionResult links one contact value to one named entity.
type AttributionResult struct {
	ContactValue   string            `json:"contact_value"`
	ContactKind    ContactKind       `json:"contact_kind"`
	EntityName     string            `json:"entity_name"`
	Confidence     float64           `json:"confidence"`
	Method         AttributionMethod `json:"method"`
	ContextSnippet string            `json:"context_snippet,omitempty"`
}
