package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Suggest returns known strain IDs close to an unknown one, best match first
func (c *Catalog) Suggest(id string) []string {
	token := strings.ToLower(strings.TrimSpace(id))
	if token == "" {
		return nil
	}

	type scored struct {
		id   string
		dist int
	}

	var results []scored
	for _, cand := range c.StrainIDs() {
		if strings.HasPrefix(cand, token) {
			results = append(results, scored{id: cand, dist: 0})
			continue
		}
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > distanceLimit(len(cand)) {
			continue
		}
		results = append(results, scored{id: cand, dist: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].id < results[j].id
		}
		return results[i].dist < results[j].dist
	})

	if len(results) > MaxSuggestions {
		results = results[:MaxSuggestions]
	}
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.id)
	}
	return out
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
