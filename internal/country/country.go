// Package country defines the country record that flows through atlascope.
//
// Records are decoded straight from the REST Countries v3.1 API and treated
// as immutable after fetch. The cca3 code is the stable identity; everything
// the selection, projection and comparison layers touch lives here.
package country

// Name holds the common and official names of a country.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags holds flag image URLs. Pass-through payload for the UI.
type Flags struct {
	SVG string `json:"svg"`
	PNG string `json:"png"`
}

// Currency is one currency entry as reported by the API.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// Country is a single record from the REST Countries API.
// Code (cca3) is unique within one fetch result.
type Country struct {
	Code       string              `json:"cca3"`
	Name       Name                `json:"name"`
	Capital    []string            `json:"capital"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Flags      Flags               `json:"flags"`
	Languages  map[string]string   `json:"languages"`
	Currencies map[string]Currency `json:"currencies"`
}

// Regions lists the region values the API uses, in display order.
func Regions() []string {
	return []string{"Africa", "Americas", "Asia", "Europe", "Oceania"}
}
