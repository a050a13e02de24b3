// Package config provides YAML configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vvaibhav/sem-planner/internal/filtering"
	"github.com/vvaibhav/sem-planner/internal/grouping"
	"github.com/vvaibhav/sem-planner/internal/types"
)

// Brand identifies the advertiser whose campaign is being planned.
type Brand struct {
	Name string `yaml:"name" validate:"required"`
}

// Competitor identifies the competing brand used for competitor keyword
// expansion and shopping references.
type Competitor struct {
	Name string `yaml:"name" validate:"required"`
}

// FilterSettings maps to filtering.FilterRules. Descriptors defaults to the
// brand name plus the seed keywords when left empty.
type FilterSettings struct {
	MinVolume          int      `yaml:"min_volume" validate:"gte=0"`
	MaxCPC             float64  `yaml:"max_cpc" validate:"gte=0"`
	ExcludedKeywords   []string `yaml:"excluded_keywords"`
	RelevanceThreshold float64  `yaml:"relevance_threshold" validate:"gte=0,lte=1"`
	Descriptors        []string `yaml:"descriptors"`
}

// GroupingSettings maps to grouping.Config.
type GroupingSettings struct {
	MaxGroupSize       int               `yaml:"max_group_size" validate:"gte=0"`
	ShoppingBidFactor  float64           `yaml:"shopping_bid_factor" validate:"gte=0"`
	DefaultMatchType   string            `yaml:"default_match_type"`
	MatchTypeOverrides map[string]string `yaml:"match_type_overrides"`
}

// OutputSettings controls where and how deliverables are written.
type OutputSettings struct {
	Directory string   `yaml:"directory"`
	Formats   []string `yaml:"formats" validate:"dive,oneof=csv json"`
}

// Config is the full planner configuration loaded from a YAML file.
type Config struct {
	Brand            Brand            `yaml:"brand"`
	Competitor       Competitor       `yaml:"competitor"`
	SeedKeywords     []string         `yaml:"seed_keywords" validate:"required,min=1,dive,required"`
	ServiceLocations []string         `yaml:"service_locations"`
	Filter           FilterSettings   `yaml:"filter"`
	Grouping         GroupingSettings `yaml:"grouping"`
	Output           OutputSettings   `yaml:"output"`
	DatabaseURL      string           `yaml:"database_url"`
}

// Load reads, defaults, and validates a configuration file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills optional sections with their documented defaults.
func (c *Config) ApplyDefaults() {
	if c.Grouping.MaxGroupSize == 0 {
		c.Grouping.MaxGroupSize = grouping.DefaultMaxGroupSize
	}
	if c.Grouping.ShoppingBidFactor == 0 {
		c.Grouping.ShoppingBidFactor = grouping.DefaultShoppingBidFactor
	}
	if c.Grouping.DefaultMatchType == "" {
		c.Grouping.DefaultMatchType = string(types.MatchPhrase)
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "output"
	}
	if len(c.Output.Formats) == 0 {
		c.Output.Formats = []string{"csv", "json"}
	}
	if len(c.Filter.Descriptors) == 0 {
		descriptors := make([]string, 0, len(c.SeedKeywords)+1)
		descriptors = append(descriptors, c.Brand.Name)
		descriptors = append(descriptors, c.SeedKeywords...)
		c.Filter.Descriptors = descriptors
	}
}

// Validate checks struct tags and cross-field constraints. It returns an
// error describing the first violated precondition; the pipeline must not
// run when validation fails.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if _, ok := types.ParseMatchType(c.Grouping.DefaultMatchType); !ok {
		return fmt.Errorf("config validation failed: unrecognized default_match_type %q", c.Grouping.DefaultMatchType)
	}
	for category, match := range c.Grouping.MatchTypeOverrides {
		if _, ok := types.ParseMatchType(match); !ok {
			return fmt.Errorf("config validation failed: unrecognized match type %q for category %q", match, category)
		}
	}
	return nil
}

// FilterRules converts the filter section into the core's rule struct.
func (c *Config) FilterRules() filtering.FilterRules {
	return filtering.FilterRules{
		MinVolume:          c.Filter.MinVolume,
		MaxCPC:             c.Filter.MaxCPC,
		ExcludedKeywords:   c.Filter.ExcludedKeywords,
		RelevanceThreshold: c.Filter.RelevanceThreshold,
		Descriptors:        c.Filter.Descriptors,
	}
}

// GroupingConfig converts the grouping section into the core's config
// struct. The shopping bid ceiling mirrors the filter stage's max CPC.
func (c *Config) GroupingConfig() grouping.Config {
	defaultMatch, _ := types.ParseMatchType(c.Grouping.DefaultMatchType)

	overrides := make(map[string]types.MatchType, len(c.Grouping.MatchTypeOverrides))
	for category, match := range c.Grouping.MatchTypeOverrides {
		parsed, _ := types.ParseMatchType(match)
		overrides[category] = parsed
	}

	return grouping.Config{
		MaxGroupSize:       c.Grouping.MaxGroupSize,
		ShoppingBidFactor:  c.Grouping.ShoppingBidFactor,
		BidCeiling:         c.Filter.MaxCPC,
		DefaultMatchType:   defaultMatch,
		MatchTypeOverrides: overrides,
		CompetitorTerm:     c.Competitor.Name,
	}
}

// Summary builds the traceability snapshot stamped onto campaigns.
func (c *Config) Summary() types.ConfigSummary {
	return types.ConfigSummary{
		Brand:        c.Brand.Name,
		Competitor:   c.Competitor.Name,
		SeedKeywords: len(c.SeedKeywords),
		MinVolume:    c.Filter.MinVolume,
		MaxCPC:       c.Filter.MaxCPC,
		MaxGroupSize: c.Grouping.MaxGroupSize,
	}
}
