// Package attributor links discovered contact values (emails, phones) to
// named entities found in the same page text, using a strict precedence of
// attribution strategies.
package attributor

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

// maxSignatureGap caps the bounded-gap repeat in the signature patterns;
// Go's regexp rejects counted repeats above 1000.
const maxSignatureGap = 1000

// Config holds every window, weight, and threshold used by the attribution
// strategies.
type Config struct {
	// Signature co-occurrence.
	SignatureConfidence float64 `yaml:"signature_confidence" mapstructure:"signature_confidence"`
	SignatureWindow     int     `yaml:"signature_window" mapstructure:"signature_window"`
	SignatureGap        int     `yaml:"signature_gap" mapstructure:"signature_gap"`

	// Contact-section proximity.
	SectionWindow     int     `yaml:"section_window" mapstructure:"section_window"`
	SectionBase       float64 `yaml:"section_base" mapstructure:"section_base"`
	SectionTitleBonus float64 `yaml:"section_title_bonus" mapstructure:"section_title_bonus"`
	SectionFloor      float64 `yaml:"section_floor" mapstructure:"section_floor"`
	SectionCap        float64 `yaml:"section_cap" mapstructure:"section_cap"`

	// Name-derived email patterns.
	PatternFullConfidence    float64 `yaml:"pattern_full_confidence" mapstructure:"pattern_full_confidence"`
	PatternInitialConfidence float64 `yaml:"pattern_initial_confidence" mapstructure:"pattern_initial_confidence"`
	PatternLastConfidence    float64 `yaml:"pattern_last_confidence" mapstructure:"pattern_last_confidence"`
	PatternMinLastLen        int     `yaml:"pattern_min_last_len" mapstructure:"pattern_min_last_len"`

	// Distance-weighted proximity.
	EmailMaxDistance    int     `yaml:"email_max_distance" mapstructure:"email_max_distance"`
	PhoneMaxDistance    int     `yaml:"phone_max_distance" mapstructure:"phone_max_distance"`
	SectionWeight       float64 `yaml:"section_weight" mapstructure:"section_weight"`
	TitleWeight         float64 `yaml:"title_weight" mapstructure:"title_weight"`
	BaseWeight          float64 `yaml:"base_weight" mapstructure:"base_weight"`
	EmailProximityFloor float64 `yaml:"email_proximity_floor" mapstructure:"email_proximity_floor"`
	PhoneProximityFloor float64 `yaml:"phone_proximity_floor" mapstructure:"phone_proximity_floor"`
	EmailProximityCap   float64 `yaml:"email_proximity_cap" mapstructure:"email_proximity_cap"`
	PhoneProximityCap   float64 `yaml:"phone_proximity_cap" mapstructure:"phone_proximity_cap"`

	// Snippet rendering.
	SnippetRadius int `yaml:"snippet_radius" mapstructure:"snippet_radius"`
}

// DefaultConfig returns the production attribution configuration.
func DefaultConfig() Config {
	return Config{
		SignatureConfidence: 0.9,
		SignatureWindow:     150,
		SignatureGap:        80,

		SectionWindow:     200,
		SectionBase:       0.8,
		SectionTitleBonus: 0.1,
		SectionFloor:      0.7,
		SectionCap:        0.9,

		PatternFullConfidence:    0.8,
		PatternInitialConfidence: 0.65,
		PatternLastConfidence:    0.5,
		PatternMinLastLen:        4,

		EmailMaxDistance:    1000,
		PhoneMaxDistance:    800,
		SectionWeight:       1.5,
		TitleWeight:         1.2,
		BaseWeight:          0.8,
		EmailProximityFloor: 0.3,
		PhoneProximityFloor: 0.4,
		EmailProximityCap:   0.7,
		PhoneProximityCap:   0.6,

		SnippetRadius: 60,
	}
}

// Validate checks that a Config is internally consistent.
func (c Config) Validate() error {
	var errs []string

	confidences := map[string]float64{
		"signature_confidence":       c.SignatureConfidence,
		"section_base":               c.SectionBase,
		"section_title_bonus":        c.SectionTitleBonus,
		"section_floor":              c.SectionFloor,
		"section_cap":                c.SectionCap,
		"pattern_full_confidence":    c.PatternFullConfidence,
		"pattern_initial_confidence": c.PatternInitialConfidence,
		"pattern_last_confidence":    c.PatternLastConfidence,
		"email_proximity_floor":      c.EmailProximityFloor,
		"phone_proximity_floor":      c.PhoneProximityFloor,
		"email_proximity_cap":        c.EmailProximityCap,
		"phone_proximity_cap":        c.PhoneProximityCap,
	}
	for name, v := range confidences {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("%s must be in [0,1]", name))
		}
	}

	windows := map[string]int{
		"signature_window":   c.SignatureWindow,
		"signature_gap":      c.SignatureGap,
		"section_window":     c.SectionWindow,
		"email_max_distance": c.EmailMaxDistance,
		"phone_max_distance": c.PhoneMaxDistance,
		"snippet_radius":     c.SnippetRadius,
	}
	for name, v := range windows {
		if v <= 0 {
			errs = append(errs, fmt.Sprintf("%s must be > 0", name))
		}
	}

	if c.SignatureGap > maxSignatureGap {
		errs = append(errs, fmt.Sprintf("signature_gap must be <= %d", maxSignatureGap))
	}

	if c.SectionFloor > c.SectionCap {
		errs = append(errs, "section_floor must be <= section_cap")
	}
	if c.BaseWeight <= 0 || c.SectionWeight <= 0 || c.TitleWeight <= 0 {
		errs = append(errs, "proximity context weights must be > 0")
	}

	if len(errs) > 0 {
		return eris.Errorf("attributor: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// contactSectionIndicators mark a region of text as a contact section.
var contactSectionIndicators = []string{
	"contact us", "contact-us", "get in touch", "reach out",
	"reach us", "email us", "call us", "contact information",
	"contact details", "our team", "meet the team",
}
