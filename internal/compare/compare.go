// Package compare derives the side-by-side comparison view.
// Pure functions over the dataset and the selected codes.
package compare

import "atlascope/internal/country"

// BySelection returns the countries whose codes appear in codes, ordered by
// codes (selection order, not dataset order). Codes missing from the dataset
// are silently dropped, so a stale persisted selection cannot error.
func BySelection(countries []country.Country, codes []string) []country.Country {
	byCode := make(map[string]country.Country, len(countries))
	for _, c := range countries {
		byCode[c.Code] = c
	}

	out := make([]country.Country, 0, len(codes))
	for _, code := range codes {
		if c, ok := byCode[code]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Density returns population per km². The second return is false when the
// country has no recorded area, the "N/A" case; never NaN or Inf.
func Density(c country.Country) (float64, bool) {
	if c.Area <= 0 {
		return 0, false
	}
	return float64(c.Population) / c.Area, true
}

// BarScale maps values to percentages of the largest value, for bar charts.
// The maximum is floored at 1 so an all-zero metric yields all-zero bars
// instead of a division by zero.
func BarScale(values []float64) []float64 {
	max := 1.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / max * 100
	}
	return out
}
