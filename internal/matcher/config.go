// Package matcher scores candidate executive records against reference
// records and performs the greedy exclusive best-match assignment.
package matcher

import (
	"fmt"
	"math"
	"strings"

	"github.com/rotisserie/eris"
)

// Config holds every weight and threshold used by the comparators and the
// tier classifier, so behavioral variants are configuration rather than
// copy-pasted code paths.
type Config struct {
	// Field weights. Must sum to 1.0; name and email dominate because they
	// are the most discriminating and least noisy fields.
	NameWeight    float64 `yaml:"name_weight" mapstructure:"name_weight"`
	EmailWeight   float64 `yaml:"email_weight" mapstructure:"email_weight"`
	ProfileWeight float64 `yaml:"profile_weight" mapstructure:"profile_weight"`
	TitleWeight   float64 `yaml:"title_weight" mapstructure:"title_weight"`

	// Tier classification thresholds, evaluated in order (first match wins).
	ExactOverall   float64 `yaml:"exact_overall" mapstructure:"exact_overall"`
	ExactNameEmail float64 `yaml:"exact_name_email" mapstructure:"exact_name_email"`
	StrongOverall  float64 `yaml:"strong_overall" mapstructure:"strong_overall"`
	StrongName     float64 `yaml:"strong_name" mapstructure:"strong_name"`
	StrongEmail    float64 `yaml:"strong_email" mapstructure:"strong_email"`
	PartialOverall float64 `yaml:"partial_overall" mapstructure:"partial_overall"`
	PartialName    float64 `yaml:"partial_name" mapstructure:"partial_name"`
	WeakOverall    float64 `yaml:"weak_overall" mapstructure:"weak_overall"`

	// Comparator thresholds.
	NameVariantDirect  float64 `yaml:"name_variant_direct" mapstructure:"name_variant_direct"`
	NameFuzzyFloor     float64 `yaml:"name_fuzzy_floor" mapstructure:"name_fuzzy_floor"`
	EmailDomainPartial float64 `yaml:"email_domain_partial" mapstructure:"email_domain_partial"`
	ProfileFuzzyFloor  float64 `yaml:"profile_fuzzy_floor" mapstructure:"profile_fuzzy_floor"`
	TitleSynonymScore  float64 `yaml:"title_synonym_score" mapstructure:"title_synonym_score"`
	TitleFuzzyFloor    float64 `yaml:"title_fuzzy_floor" mapstructure:"title_fuzzy_floor"`
}

// DefaultConfig returns the production matcher configuration.
// Weights sum to 1.0.
func DefaultConfig() Config {
	return Config{
		NameWeight:    0.35,
		EmailWeight:   0.35,
		ProfileWeight: 0.20,
		TitleWeight:   0.10,

		ExactOverall:   0.9,
		ExactNameEmail: 0.9,
		StrongOverall:  0.7,
		StrongName:     0.8,
		StrongEmail:    0.3,
		PartialOverall: 0.5,
		PartialName:    0.6,
		WeakOverall:    0.3,

		NameVariantDirect:  0.8,
		NameFuzzyFloor:     0.6,
		EmailDomainPartial: 0.3,
		ProfileFuzzyFloor:  0.8,
		TitleSynonymScore:  0.9,
		TitleFuzzyFloor:    0.6,
	}
}

// WeightSum returns the sum of the four field weights.
func (c Config) WeightSum() float64 {
	return c.NameWeight + c.EmailWeight + c.ProfileWeight + c.TitleWeight
}

// Validate checks that a Config is internally consistent.
func (c Config) Validate() error {
	var errs []string

	weights := map[string]float64{
		"name_weight":    c.NameWeight,
		"email_weight":   c.EmailWeight,
		"profile_weight": c.ProfileWeight,
		"title_weight":   c.TitleWeight,
	}
	for name, w := range weights {
		if w < 0 {
			errs = append(errs, fmt.Sprintf("%s must be >= 0", name))
		}
	}

	if math.Abs(c.WeightSum()-1.0) > 1e-9 {
		errs = append(errs, fmt.Sprintf("field weights must sum to 1.0, got %.4f", c.WeightSum()))
	}

	thresholds := map[string]float64{
		"exact_overall":        c.ExactOverall,
		"exact_name_email":     c.ExactNameEmail,
		"strong_overall":       c.StrongOverall,
		"strong_name":          c.StrongName,
		"strong_email":         c.StrongEmail,
		"partial_overall":      c.PartialOverall,
		"partial_name":         c.PartialName,
		"weak_overall":         c.WeakOverall,
		"name_variant_direct":  c.NameVariantDirect,
		"name_fuzzy_floor":     c.NameFuzzyFloor,
		"email_domain_partial": c.EmailDomainPartial,
		"profile_fuzzy_floor":  c.ProfileFuzzyFloor,
		"title_synonym_score":  c.TitleSynonymScore,
		"title_fuzzy_floor":    c.TitleFuzzyFloor,
	}
	for name, v := range thresholds {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("%s must be in [0,1]", name))
		}
	}

	if c.StrongOverall > c.ExactOverall {
		errs = append(errs, "strong_overall must be <= exact_overall")
	}
	if c.PartialOverall > c.StrongOverall {
		errs = append(errs, "partial_overall must be <= strong_overall")
	}
	if c.WeakOverall > c.PartialOverall {
		errs = append(errs, "weak_overall must be <= partial_overall")
	}

	if len(errs) > 0 {
		return eris.Errorf("matcher: config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
