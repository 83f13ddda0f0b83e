package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"atlascope/internal/compare"
	"atlascope/internal/country"
	"atlascope/internal/selection"
)

// comparisonModel renders the side-by-side comparison for the current
// selection. It owns no state of its own beyond layout; everything is
// derived from the dataset and the selection store on render.
type comparisonModel struct {
	sel    *selection.Store
	width  int
	height int
}

func newComparison(sel *selection.Store) comparisonModel {
	return comparisonModel{sel: sel}
}

func (m comparisonModel) View(countries []country.Country) string {
	picked := compare.BySelection(countries, m.sel.Selected())
	if len(picked) < 2 {
		return mutedStyle.Render(
			"Select at least two countries in the Browse tab, then press enter.") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.cards(picked))
	b.WriteString("\n")
	b.WriteString(m.metric(picked, "Population", func(c country.Country) (float64, string) {
		return float64(c.Population), country.FormatPopulation(c.Population)
	}))
	b.WriteString(m.metric(picked, "Area", func(c country.Country) (float64, string) {
		return c.Area, country.FormatArea(c.Area)
	}))
	b.WriteString(m.metric(picked, "Density", func(c country.Country) (float64, string) {
		d, ok := compare.Density(c)
		if !ok {
			return 0, "N/A"
		}
		return d, fmt.Sprintf("%.1f/km²", d)
	}))

	return b.String()
}

// cards renders one bordered card per country, in selection order.
func (m comparisonModel) cards(picked []country.Country) string {
	cards := make([]string, 0, len(picked))
	for _, c := range picked {
		capital := "N/A"
		if len(c.Capital) > 0 {
			capital = c.Capital[0]
		}
		place := c.Subregion
		if place == "" {
			place = c.Region
		}

		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(c.Name.Common))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(truncate(c.Name.Official, 26)))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%s, %s\n", capital, place))
		b.WriteString(mutedStyle.Render("Languages: "))
		b.WriteString(country.LanguagesString(c.Languages))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Currency:  "))
		b.WriteString(country.CurrenciesString(c.Currencies))

		cards = append(cards, cardStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// metric renders one labeled bar chart section across the comparison set.
func (m comparisonModel) metric(picked []country.Country, label string, value func(country.Country) (float64, string)) string {
	values := make([]float64, len(picked))
	formatted := make([]string, len(picked))
	for i, c := range picked {
		values[i], formatted[i] = value(c)
	}
	percentages := compare.BarScale(values)

	barWidth := m.width - 50
	if barWidth < 10 {
		barWidth = 30
	}

	var b strings.Builder
	b.WriteString(metricHeader.Render(label))
	b.WriteString("\n")
	for i, c := range picked {
		filled := int(percentages[i] / 100 * float64(barWidth))
		if filled > barWidth {
			filled = barWidth
		}

		bar := lipgloss.NewStyle().
			Foreground(barColors[i%len(barColors)]).
			Render(strings.Repeat("█", filled))
		empty := mutedStyle.Render(strings.Repeat("░", barWidth-filled))

		b.WriteString(fmt.Sprintf("%-16s %s%s %s\n",
			truncate(c.Name.Common, 16), bar, empty, formatted[i]))
	}
	return b.String()
}
