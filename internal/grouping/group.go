// Package grouping clusters filtered keyword candidates into ad groups,
// Performance-Max themes, and shopping bid recommendations.
package grouping

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vvaibhav/sem-planner/internal/types"
)

// Defaults applied by DefaultConfig.
const (
	DefaultMaxGroupSize      = 20
	DefaultShoppingBidFactor = 1.0
)

// Config holds the grouping stage settings. BidCeiling is the max-CPC
// ceiling shopping bids are clamped to; it normally mirrors the filter
// rules' MaxCPC. CompetitorTerm is attached to competitor-origin shopping
// recommendations as the competing product reference.
type Config struct {
	MaxGroupSize       int
	ShoppingBidFactor  float64
	BidCeiling         float64
	DefaultMatchType   types.MatchType
	MatchTypeOverrides map[string]types.MatchType
	CompetitorTerm     string
}

// DefaultConfig returns a Config with the documented defaults.
func DefaultConfig() Config {
	return Config{
		MaxGroupSize:      DefaultMaxGroupSize,
		ShoppingBidFactor: DefaultShoppingBidFactor,
		DefaultMatchType:  types.MatchPhrase,
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.MaxGroupSize <= 0 {
		return &ConfigError{Field: "max_group_size", Message: "must be positive"}
	}
	if c.ShoppingBidFactor < 0 {
		return &ConfigError{Field: "shopping_bid_factor", Message: "must be non-negative"}
	}
	if c.BidCeiling < 0 {
		return &ConfigError{Field: "bid_ceiling", Message: "must be non-negative"}
	}
	if !c.DefaultMatchType.Valid() {
		return &ConfigError{Field: "default_match_type", Message: fmt.Sprintf("unrecognized match type %q", c.DefaultMatchType)}
	}
	for category, match := range c.MatchTypeOverrides {
		if !match.Valid() {
			return &ConfigError{Field: "match_type_overrides", Message: fmt.Sprintf("unrecognized match type %q for category %q", match, category)}
		}
	}
	return nil
}

// Result carries the three campaign structure collections built from one
// candidate set.
type Result struct {
	AdGroups                []types.AdGroup
	PMaxThemes              []types.PMaxTheme
	ShoppingRecommendations []types.ShoppingRecommendation
}

// Group clusters candidates into the three campaign structures. Candidates
// are partitioned by origin category first, then sub-clustered by the shared
// leading token of the term. Identical input always yields identical output,
// including group names.
func Group(candidates []types.KeywordCandidate, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Result{
		AdGroups:                buildAdGroups(candidates, cfg),
		PMaxThemes:              buildThemes(candidates),
		ShoppingRecommendations: buildRecommendations(candidates, cfg),
	}, nil
}

// cluster is an ordered partition bucket keyed by category label and leading
// token.
type cluster struct {
	category string
	token    string
	members  []types.KeywordCandidate
}

// buildAdGroups produces one ad group per cluster, splitting oversize
// clusters into volume-ordered chunks with numeric name suffixes.
func buildAdGroups(candidates []types.KeywordCandidate, cfg Config) []types.AdGroup {
	clusters := partition(candidates)

	groups := make([]types.AdGroup, 0, len(clusters))
	for _, cl := range clusters {
		matchType := cfg.DefaultMatchType
		if override, ok := cfg.MatchTypeOverrides[cl.category]; ok {
			matchType = override
		}

		members := make([]types.KeywordCandidate, len(cl.members))
		copy(members, cl.members)
		sort.SliceStable(members, func(i, j int) bool {
			return members[i].SearchVolume > members[j].SearchVolume
		})

		base := fmt.Sprintf("%s - %s", cl.category, cl.token)
		for chunk := 0; len(members) > 0; chunk++ {
			size := cfg.MaxGroupSize
			if size > len(members) {
				size = len(members)
			}
			name := base
			if chunk > 0 {
				name = fmt.Sprintf("%s %d", base, chunk+1)
			}
			groups = append(groups, types.AdGroup{
				Name:      name,
				Keywords:  members[:size:size],
				MatchType: matchType,
			})
			members = members[size:]
		}
	}
	return groups
}

// partition splits candidates by origin category, then by leading token,
// preserving first-seen order of both keys for deterministic output.
func partition(candidates []types.KeywordCandidate) []*cluster {
	order := make([]*cluster, 0)
	index := make(map[string]*cluster)

	for _, c := range candidates {
		key := c.Origin.Label() + "\x00" + leadingToken(c.Term)
		cl, ok := index[key]
		if !ok {
			cl = &cluster{category: c.Origin.Label(), token: leadingToken(c.Term)}
			index[key] = cl
			order = append(order, cl)
		}
		cl.members = append(cl.members, c)
	}
	return order
}

// leadingToken returns the first whitespace-separated token of a term.
func leadingToken(term string) string {
	fields := strings.Fields(term)
	if len(fields) == 0 {
		return term
	}
	return fields[0]
}
