package restcountries

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleCountries = `[
	{
		"cca3": "CHE",
		"name": {"common": "Switzerland", "official": "Swiss Confederation"},
		"capital": ["Bern"],
		"population": 8654622,
		"area": 41284,
		"region": "Europe",
		"subregion": "Western Europe",
		"flags": {"svg": "https://example.com/che.svg", "png": "https://example.com/che.png"},
		"languages": {"deu": "German", "fra": "French"},
		"currencies": {"CHF": {"name": "Swiss franc", "symbol": "Fr."}}
	},
	{
		"cca3": "JPN",
		"name": {"common": "Japan", "official": "Japan"},
		"capital": ["Tokyo"],
		"population": 125836021,
		"area": 377930,
		"region": "Asia",
		"flags": {"svg": "https://example.com/jpn.svg", "png": "https://example.com/jpn.png"}
	}
]`

func TestAll(t *testing.T) {
	var gotPath, gotFields string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFields = r.URL.Query().Get("fields")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleCountries))
	}))
	defer server.Close()

	client := New(server.URL, 0)
	countries, err := client.All(context.Background())
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}

	if gotPath != "/all" {
		t.Errorf("expected path /all, got %s", gotPath)
	}
	if gotFields == "" {
		t.Error("expected a fields projection on the request")
	}
	if len(countries) != 2 {
		t.Fatalf("expected 2 countries, got %d", len(countries))
	}
	if countries[0].Code != "CHE" {
		t.Errorf("expected CHE, got %s", countries[0].Code)
	}
	if countries[0].Name.Common != "Switzerland" {
		t.Errorf("unexpected name: %s", countries[0].Name.Common)
	}
	if countries[0].Population != 8654622 {
		t.Errorf("unexpected population: %d", countries[0].Population)
	}
	if len(countries[0].Capital) != 1 || countries[0].Capital[0] != "Bern" {
		t.Errorf("unexpected capital: %v", countries[0].Capital)
	}
}

func TestAllServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, 0)
	_, err := client.All(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if se.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", se.Status)
	}
}

func TestByRegion(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, 0)
	countries, err := client.ByRegion(context.Background(), "Europe")
	if err != nil {
		t.Fatalf("ByRegion failed: %v", err)
	}
	if gotPath != "/region/Europe" {
		t.Errorf("unexpected path: %s", gotPath)
	}
	if len(countries) != 0 {
		t.Errorf("expected 0 countries, got %d", len(countries))
	}
}

func TestByCodes(t *testing.T) {
	var gotCodes string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCodes = r.URL.Query().Get("codes")
		w.Write([]byte(sampleCountries))
	}))
	defer server.Close()

	client := New(server.URL, 0)
	countries, err := client.ByCodes(context.Background(), []string{"CHE", "JPN"})
	if err != nil {
		t.Fatalf("ByCodes failed: %v", err)
	}
	if gotCodes != "CHE,JPN" {
		t.Errorf("expected codes CHE,JPN, got %q", gotCodes)
	}
	if len(countries) != 2 {
		t.Errorf("expected 2 countries, got %d", len(countries))
	}
}

func TestByCodesEmptyShortCircuits(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, 0)
	countries, err := client.ByCodes(context.Background(), nil)
	if err != nil {
		t.Fatalf("ByCodes failed: %v", err)
	}
	if countries == nil {
		t.Error("expected empty slice, got nil")
	}
	if len(countries) != 0 {
		t.Errorf("expected 0 countries, got %d", len(countries))
	}
	if calls != 0 {
		t.Errorf("expected no network call, server saw %d", calls)
	}
}

func TestSearchByName404IsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, 0)
	countries, err := client.SearchByName(context.Background(), "atlantis")
	if err != nil {
		t.Fatalf("expected 404 to be normalized, got error: %v", err)
	}
	if len(countries) != 0 {
		t.Errorf("expected 0 countries, got %d", len(countries))
	}
}

func TestSearchByNameOtherErrorsSurface(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL, 0)
	_, err := client.SearchByName(context.Background(), "swi")
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := New(server.URL, 0)
	_, err := client.All(ctx)
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
