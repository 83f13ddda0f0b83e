// Package project turns the full dataset plus criteria into the browse list.
// Pure functions: countries in, countries out. No side effects, no caching.
package project

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"atlascope/internal/country"
	"atlascope/internal/selection"
)

// Project filters and sorts countries according to criteria.
//
// Region matching is exact and case-sensitive; the search query matches
// case-insensitively against the common name, the official name, or any
// capital. The sort is stable, so ties keep their input order.
func Project(countries []country.Country, criteria selection.Criteria) []country.Country {
	result := make([]country.Country, 0, len(countries))

	query := strings.ToLower(criteria.SearchQuery)
	for _, c := range countries {
		if criteria.Region != "" && c.Region != criteria.Region {
			continue
		}
		if query != "" && !matchesQuery(c, query) {
			continue
		}
		result = append(result, c)
	}

	sortCountries(result, criteria.SortField, criteria.SortDirection)
	return result
}

// matchesQuery reports whether c matches the lowercased query.
func matchesQuery(c country.Country, query string) bool {
	if strings.Contains(strings.ToLower(c.Name.Common), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name.Official), query) {
		return true
	}
	for _, capital := range c.Capital {
		if strings.Contains(strings.ToLower(capital), query) {
			return true
		}
	}
	return false
}

func sortCountries(countries []country.Country, field selection.SortField, direction selection.SortDirection) {
	var cmp func(a, b country.Country) int

	switch field {
	case selection.SortPopulation:
		cmp = func(a, b country.Country) int {
			switch {
			case a.Population < b.Population:
				return -1
			case a.Population > b.Population:
				return 1
			default:
				return 0
			}
		}
	case selection.SortArea:
		cmp = func(a, b country.Country) int {
			switch {
			case a.Area < b.Area:
				return -1
			case a.Area > b.Area:
				return 1
			default:
				return 0
			}
		}
	default:
		col := collate.New(language.English, collate.IgnoreCase)
		cmp = func(a, b country.Country) int {
			return col.CompareString(a.Name.Common, b.Name.Common)
		}
	}

	sort.SliceStable(countries, func(i, j int) bool {
		c := cmp(countries[i], countries[j])
		if direction == selection.Descending {
			c = -c
		}
		return c < 0
	})
}
