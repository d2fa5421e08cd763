package model

// SourceManualVerification tags reference records loaded from the
// hand-verified spreadsheet.
const SourceManualVerification = "manual_verification"

// EntityRecord represents one named person, either system-extracted
// (candidate) or hand-verified (reference). Records are value types: the
// engine never retains a pointer to a caller's record across calls.
type EntityRecord struct {
	FullName   string `json:"full_name"`
	Title      string `json:"title,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	ProfileURL string `json:"profile_url,omitempty"`
	SourceURL  string `json:"source_url,omitempty"`
	Source     string `json:"source,omitempty"`
}

// HasContact reports whether the record carries a non-empty email or phone.
func (r EntityRecord) HasContact() bool {
	return r.Email != "" || r.Phone != ""
}

// LocatedEntity is a named person found in page text at a character offset.
// Supplied by the upstream extractor; offsets drive all proximity logic.
type LocatedEntity struct {
	Name   string `json:"name"`
	Offset int    `json:"offset"`
}

// ContactKind distinguishes the two attributable contact types.
type ContactKind string

const (
	ContactEmail ContactKind = "email"
	ContactPhone ContactKind = "phone"
)

// LocatedContact is a contact value found in page text at a character offset.
type LocatedContact struct {
	Value  string      `json:"value"`
	Kind   ContactKind `json:"kind"`
	Offset int         `json:"offset"`
}
