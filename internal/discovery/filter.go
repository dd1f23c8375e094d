package discovery

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"fpt/internal/domain"
)

// Filter filters fixtures by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps fixtures whose name matches pattern.
// Patterns with wildcards ("plus_*", "*_1_?") are glob-matched; plain text
// is a substring match ("div" keeps every division fixture).
func (f *Filter) FilterByName(fixtures []domain.Fixture, pattern string) []domain.Fixture {
	if pattern == "" {
		return fixtures
	}

	glob := strings.ContainsAny(pattern, "*?[{")
	var filtered []domain.Fixture
	for _, fixture := range fixtures {
		if glob {
			if ok, err := doublestar.Match(pattern, fixture.Name); err == nil && ok {
				filtered = append(filtered, fixture)
			}
			continue
		}
		if strings.Contains(fixture.Name, pattern) {
			filtered = append(filtered, fixture)
		}
	}

	return filtered
}
