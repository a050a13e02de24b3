package grouping

import "github.com/vvaibhav/sem-planner/internal/types"

// buildThemes aggregates candidates per top-level origin category, ignoring
// the ad-group sub-clustering. Signals are the deduplicated member terms and
// estimated volume is the sum of member volumes. Each candidate has exactly
// one origin, so a keyword contributes to at most one theme.
func buildThemes(candidates []types.KeywordCandidate) []types.PMaxTheme {
	order := make([]string, 0)
	signals := make(map[string][]string)
	seen := make(map[string]map[string]bool)
	volumes := make(map[string]int)

	for _, c := range candidates {
		label := c.Origin.Label()
		if _, ok := signals[label]; !ok {
			order = append(order, label)
			signals[label] = nil
			seen[label] = make(map[string]bool)
		}
		if !seen[label][c.Term] {
			seen[label][c.Term] = true
			signals[label] = append(signals[label], c.Term)
		}
		volumes[label] += c.SearchVolume
	}

	themes := make([]types.PMaxTheme, 0, len(order))
	for _, label := range order {
		themes = append(themes, types.PMaxTheme{
			ThemeName:       label,
			Signals:         signals[label],
			EstimatedVolume: volumes[label],
		})
	}
	return themes
}
