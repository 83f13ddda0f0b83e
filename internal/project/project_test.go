package project

import (
	"testing"

	"atlascope/internal/country"
	"atlascope/internal/selection"
)

func testCountries() []country.Country {
	return []country.Country{
		{
			Code:       "CHE",
			Name:       country.Name{Common: "Switzerland", Official: "Swiss Confederation"},
			Capital:    []string{"Bern"},
			Population: 8_654_622,
			Area:       41_284,
			Region:     "Europe",
		},
		{
			Code:       "JPN",
			Name:       country.Name{Common: "Japan", Official: "Japan"},
			Capital:    []string{"Tokyo"},
			Population: 125_836_021,
			Area:       377_930,
			Region:     "Asia",
		},
		{
			Code:       "BRA",
			Name:       country.Name{Common: "Brazil", Official: "Federative Republic of Brazil"},
			Capital:    []string{"Brasília"},
			Population: 212_559_409,
			Area:       8_515_767,
			Region:     "Americas",
		},
		{
			Code:       "AUT",
			Name:       country.Name{Common: "Austria", Official: "Republic of Austria"},
			Capital:    []string{"Vienna"},
			Population: 8_917_205,
			Area:       83_871,
			Region:     "Europe",
		},
	}
}

func codes(countries []country.Country) []string {
	out := make([]string, len(countries))
	for i, c := range countries {
		out[i] = c.Code
	}
	return out
}

func TestDefaultCriteriaReturnsAllSortedByName(t *testing.T) {
	got := Project(testCountries(), selection.DefaultCriteria())

	if len(got) != 4 {
		t.Fatalf("expected 4 countries, got %d", len(got))
	}

	want := []string{"AUT", "BRA", "JPN", "CHE"} // Austria, Brazil, Japan, Switzerland
	for i, code := range codes(got) {
		if code != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], code)
		}
	}
}

func TestRegionFilterIsExact(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.Region = "Europe"

	got := Project(testCountries(), criteria)
	if len(got) != 2 {
		t.Fatalf("expected 2 European countries, got %d", len(got))
	}

	// Case-sensitive: "europe" matches nothing.
	criteria.Region = "europe"
	got = Project(testCountries(), criteria)
	if len(got) != 0 {
		t.Errorf("expected case-sensitive region match, got %d countries", len(got))
	}
}

func TestSearchMatchesCommonName(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.SearchQuery = "jap"

	got := Project(testCountries(), criteria)
	if len(got) != 1 || got[0].Code != "JPN" {
		t.Errorf("expected [JPN], got %v", codes(got))
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.SearchQuery = "SWITZ"

	got := Project(testCountries(), criteria)
	if len(got) != 1 || got[0].Code != "CHE" {
		t.Errorf("expected [CHE], got %v", codes(got))
	}
}

func TestSearchMatchesOfficialName(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.SearchQuery = "federative"

	got := Project(testCountries(), criteria)
	if len(got) != 1 || got[0].Code != "BRA" {
		t.Errorf("expected [BRA], got %v", codes(got))
	}
}

func TestSearchMatchesCapital(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.SearchQuery = "tokyo"

	got := Project(testCountries(), criteria)
	if len(got) != 1 || got[0].Code != "JPN" {
		t.Errorf("expected [JPN], got %v", codes(got))
	}
}

func TestRegionAndSearchCompose(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.Region = "Europe"
	criteria.SearchQuery = "aus"

	got := Project(testCountries(), criteria)
	if len(got) != 1 || got[0].Code != "AUT" {
		t.Errorf("expected [AUT], got %v", codes(got))
	}
}

func TestSortByPopulationDescending(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.SortField = selection.SortPopulation
	criteria.SortDirection = selection.Descending

	got := Project(testCountries(), criteria)
	want := []string{"BRA", "JPN", "AUT", "CHE"}
	for i, code := range codes(got) {
		if code != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], code)
		}
	}
}

func TestSortByAreaAscending(t *testing.T) {
	criteria := selection.DefaultCriteria()
	criteria.SortField = selection.SortArea

	got := Project(testCountries(), criteria)
	want := []string{"CHE", "AUT", "JPN", "BRA"}
	for i, code := range codes(got) {
		if code != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], code)
		}
	}
}

func TestStableSortPreservesTies(t *testing.T) {
	countries := []country.Country{
		{Code: "AAA", Name: country.Name{Common: "Alpha"}, Population: 100},
		{Code: "BBB", Name: country.Name{Common: "Beta"}, Population: 100},
		{Code: "CCC", Name: country.Name{Common: "Gamma"}, Population: 100},
	}

	criteria := selection.DefaultCriteria()
	criteria.SortField = selection.SortPopulation

	got := Project(countries, criteria)
	want := []string{"AAA", "BBB", "CCC"}
	for i, code := range codes(got) {
		if code != want[i] {
			t.Errorf("equal keys should keep input order: position %d got %s", i, code)
		}
	}
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	countries := testCountries()
	criteria := selection.DefaultCriteria()
	criteria.SortField = selection.SortPopulation

	Project(countries, criteria)

	if countries[0].Code != "CHE" {
		t.Error("Project mutated its input slice")
	}
}

func TestProjectEmptyInput(t *testing.T) {
	got := Project(nil, selection.DefaultCriteria())
	if got == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 countries, got %d", len(got))
	}
}
