package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/execmatch/internal/attributor"
	"github.com/sells-group/execmatch/internal/matcher"
)

// Config holds the full application configuration.
type Config struct {
	Store      StoreConfig       `yaml:"store" mapstructure:"store"`
	Matcher    matcher.Config    `yaml:"matcher" mapstructure:"matcher"`
	Attributor attributor.Config `yaml:"attributor" mapstructure:"attributor"`
	Batch      BatchConfig       `yaml:"batch" mapstructure:"batch"`
	Server     ServerConfig      `yaml:"server" mapstructure:"server"`
	Log        LogConfig         `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the local run-history database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// BatchConfig configures batch processing.
type BatchConfig struct {
	MaxConcurrentCompanies int `yaml:"max_concurrent_companies" mapstructure:"max_concurrent_companies"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("EXECMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if err := cfg.Matcher.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Attributor.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults registers every weight and threshold so a bare environment
// runs with the production defaults.
func setDefaults(v *viper.Viper) {
	v.SetDefault("store.path", "execmatch.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("batch.max_concurrent_companies", 5)

	mc := matcher.DefaultConfig()
	v.SetDefault("matcher.name_weight", mc.NameWeight)
	v.SetDefault("matcher.email_weight", mc.EmailWeight)
	v.SetDefault("matcher.profile_weight", mc.ProfileWeight)
	v.SetDefault("matcher.title_weight", mc.TitleWeight)
	v.SetDefault("matcher.exact_overall", mc.ExactOverall)
	v.SetDefault("matcher.exact_name_email", mc.ExactNameEmail)
	v.SetDefault("matcher.strong_overall", mc.StrongOverall)
	v.SetDefault("matcher.strong_name", mc.StrongName)
	v.SetDefault("matcher.strong_email", mc.StrongEmail)
	v.SetDefault("matcher.partial_overall", mc.PartialOverall)
	v.SetDefault("matcher.partial_name", mc.PartialName)
	v.SetDefault("matcher.weak_overall", mc.WeakOverall)
	v.SetDefault("matcher.name_variant_direct", mc.NameVariantDirect)
	v.SetDefault("matcher.name_fuzzy_floor", mc.NameFuzzyFloor)
	v.SetDefault("matcher.email_domain_partial", mc.EmailDomainPartial)
	v.SetDefault("matcher.profile_fuzzy_floor", mc.ProfileFuzzyFloor)
	v.SetDefault("matcher.title_synonym_score", mc.TitleSynonymScore)
	v.SetDefault("matcher.title_fuzzy_floor", mc.TitleFuzzyFloor)

	ac := attributor.DefaultConfig()
	v.SetDefault("attributor.signature_confidence", ac.SignatureConfidence)
	v.SetDefault("attributor.signature_window", ac.SignatureWindow)
	v.SetDefault("attributor.signature_gap", ac.SignatureGap)
	v.SetDefault("attributor.section_window", ac.SectionWindow)
	v.SetDefault("attributor.section_base", ac.SectionBase)
	v.SetDefault("attributor.section_title_bonus", ac.SectionTitleBonus)
	v.SetDefault("attributor.section_floor", ac.SectionFloor)
	v.SetDefault("attributor.section_cap", ac.SectionCap)
	v.SetDefault("attributor.pattern_full_confidence", ac.PatternFullConfidence)
	v.SetDefault("attributor.pattern_initial_confidence", ac.PatternInitialConfidence)
	v.SetDefault("attributor.pattern_last_confidence", ac.PatternLastConfidence)
	v.SetDefault("attributor.pattern_min_last_len", ac.PatternMinLastLen)
	v.SetDefault("attributor.email_max_distance", ac.EmailMaxDistance)
	v.SetDefault("attributor.phone_max_distance", ac.PhoneMaxDistance)
	v.SetDefault("attributor.section_weight", ac.SectionWeight)
	v.SetDefault("attributor.title_weight", ac.TitleWeight)
	v.SetDefault("attributor.base_weight", ac.BaseWeight)
	v.SetDefault("attributor.email_proximity_floor", ac.EmailProximityFloor)
	v.SetDefault("attributor.phone_proximity_floor", ac.PhoneProximityFloor)
	v.SetDefault("attributor.email_proximity_cap", ac.EmailProximityCap)
	v.SetDefault("attributor.phone_proximity_cap", ac.PhoneProximityCap)
	v.SetDefault("attributor.snippet_radius", ac.SnippetRadius)
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
