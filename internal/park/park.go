package park

import "sort"

// Park represents one monitored park from the registry
type Park struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Slug     string   `yaml:"slug"`
	Keywords []string `yaml:"keywords"`
	Priority int      `yaml:"priority"`
	Emoji    string   `yaml:"emoji"`
}

// DefaultRegistry returns the built-in park registry, ordered by
// ascending priority (priority 1 is checked first).
func DefaultRegistry() []Park {
	parks := []Park{
		{
			ID:       "joffre-lakes",
			Name:     "Joffre Lakes Provincial Park",
			Slug:     "joffre-lakes-provincial-park",
			Keywords: []string{"joffre", "joffrey"},
			Priority: 1,
			Emoji:    "🏔️",
		},
		{
			ID:       "garibaldi",
			Name:     "Garibaldi Provincial Park",
			Slug:     "garibaldi-provincial-park",
			Keywords: []string{"garibaldi"},
			Priority: 2,
			Emoji:    "⛰️",
		},
		{
			ID:       "alice-lake",
			Name:     "Alice Lake Provincial Park",
			Slug:     "alice-lake-provincial-park",
			Keywords: []string{"alice lake", "alice"},
			Priority: 3,
			Emoji:    "🏞️",
		},
		{
			ID:       "golden-ears",
			Name:     "Golden Ears Provincial Park",
			Slug:     "golden-ears-provincial-park",
			Keywords: []string{"golden ears"},
			Priority: 4,
			Emoji:    "🌲",
		},
		{
			ID:       "cultus-lake",
			Name:     "Cultus Lake Provincial Park",
			Slug:     "cultus-lake-provincial-park",
			Keywords: []string{"cultus lake", "cultus"},
			Priority: 5,
			Emoji:    "🏖️",
		},
	}
	return SortByPriority(parks)
}

// SortByPriority returns parks ordered by ascending priority. The
// most time-sensitive park is always checked earliest, which bounds
// worst-case latency-to-detection for the highest-value target.
func SortByPriority(parks []Park) []Park {
	sorted := make([]Park, len(parks))
	copy(sorted, parks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}
