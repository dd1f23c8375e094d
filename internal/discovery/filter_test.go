package discovery

import (
	"testing"

	"fpt/internal/domain"
)

func fixturesNamed(names ...string) []domain.Fixture {
	fixtures := make([]domain.Fixture, len(names))
	for i, n := range names {
		fixtures[i] = domain.Fixture{Name: n}
	}
	return fixtures
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	all := fixturesNamed("plus_0_1", "plus_1_1", "sub_0_1", "div_0_1", "print_0_12")

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{name: "empty pattern returns all", pattern: "", expected: 5},
		{name: "prefix wildcard", pattern: "plus_*", expected: 2},
		{name: "type wildcard", pattern: "*_0_*", expected: 4},
		{name: "single character wildcard", pattern: "print_0_1?", expected: 1},
		{name: "alternation", pattern: "{sub,div}_*", expected: 2},
		{name: "plain substring", pattern: "div", expected: 1},
		{name: "no matches", pattern: "mult_*", expected: 0},
		{name: "invalid pattern matches nothing", pattern: "[plus", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(all, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty fixture list", func(t *testing.T) {
		result := filter.FilterByName(nil, "plus_*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("order is preserved", func(t *testing.T) {
		result := filter.FilterByName(fixturesNamed("plus_0_2", "plus_0_1"), "plus")
		if len(result) != 2 || result[0].Name != "plus_0_2" {
			t.Errorf("unexpected order: %+v", result)
		}
	})
}
