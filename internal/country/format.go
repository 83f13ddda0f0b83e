package country

import (
	"fmt"
	"sort"
	"strings"
)

// FormatPopulation renders a population count in compact form (1.41B, 67.75M).
func FormatPopulation(population int64) string {
	switch {
	case population >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", float64(population)/1_000_000_000)
	case population >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(population)/1_000_000)
	case population >= 1_000:
		return fmt.Sprintf("%.1fK", float64(population)/1_000)
	default:
		return fmt.Sprintf("%d", population)
	}
}

// FormatArea renders an area in km² in compact form.
func FormatArea(area float64) string {
	switch {
	case area >= 1_000_000:
		return fmt.Sprintf("%.2fM km²", area/1_000_000)
	case area >= 1_000:
		return fmt.Sprintf("%.1fK km²", area/1_000)
	default:
		return fmt.Sprintf("%.0f km²", area)
	}
}

// FormatDensity renders population density. Countries with no recorded area
// (area == 0) get "N/A" rather than a division by zero.
func FormatDensity(population int64, area float64) string {
	if area == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f/km²", float64(population)/area)
}

// LanguagesString joins up to three languages for display.
// Map iteration order is random, so values are sorted first.
func LanguagesString(languages map[string]string) string {
	if len(languages) == 0 {
		return "N/A"
	}
	names := make([]string, 0, len(languages))
	for _, name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > 3 {
		names = names[:3]
	}
	return strings.Join(names, ", ")
}

// CurrenciesString joins up to two currencies for display, "Name (Symbol)".
func CurrenciesString(currencies map[string]Currency) string {
	if len(currencies) == 0 {
		return "N/A"
	}
	codes := make([]string, 0, len(currencies))
	for code := range currencies {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	if len(codes) > 2 {
		codes = codes[:2]
	}
	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		c := currencies[code]
		if c.Symbol != "" {
			parts = append(parts, fmt.Sprintf("%s (%s)", c.Name, c.Symbol))
		} else {
			parts = append(parts, c.Name)
		}
	}
	return strings.Join(parts, ", ")
}
