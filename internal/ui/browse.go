package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atlascope/internal/country"
	"atlascope/internal/project"
	"atlascope/internal/selection"
)

// browseModel is the country list with search, region filter and sorting.
type browseModel struct {
	sel    *selection.Store
	search textinput.Model
	spin   spinner.Model

	countries []country.Country // full dataset, immutable
	visible   []country.Country // current projection
	cursor    int

	loading   bool
	err       error
	offline   bool
	offlineAt time.Time

	regions   []string // "" (all) followed by the API regions
	regionIdx int

	width  int
	height int
}

func newBrowse(sel *selection.Store) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Search countries..."
	ti.CharLimit = 64
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)

	return browseModel{
		sel:     sel,
		search:  ti,
		spin:    sp,
		regions: append([]string{""}, country.Regions()...),
		loading: true,
	}
}

// setDataset installs a freshly loaded dataset and re-projects.
func (m *browseModel) setDataset(countries []country.Country, offline bool, offlineAt time.Time) {
	m.loading = false
	m.err = nil
	m.countries = countries
	m.offline = offline
	m.offlineAt = offlineAt
	m.reproject()
}

// setError records a load failure for the tri-state view.
func (m *browseModel) setError(err error) {
	m.loading = false
	m.err = err
}

// reproject recomputes the visible list from the dataset and the criteria,
// keeping the cursor in bounds.
func (m *browseModel) reproject() {
	m.visible = project.Project(m.countries, m.sel.Criteria())
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m browseModel) Update(msg tea.Msg) (browseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.search.Focused() {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

// updateSearch routes keys into the search input while it has focus.
func (m browseModel) updateSearch(msg tea.KeyMsg) (browseModel, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.sel.SetSearchQuery(m.search.Value())
	m.cursor = 0
	m.reproject()
	return m, cmd
}

func (m browseModel) handleKey(msg tea.KeyMsg) (browseModel, tea.Cmd) {
	switch msg.String() {
	case "/":
		m.search.Focus()
		return m, textinput.Blink

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.sel.SetSearchQuery("")
			m.cursor = 0
			m.reproject()
		}
		return m, nil

	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "g", "home":
		m.cursor = 0
		return m, nil

	case "G", "end":
		if len(m.visible) > 0 {
			m.cursor = len(m.visible) - 1
		}
		return m, nil

	case " ", "x":
		if m.cursor < len(m.visible) {
			m.sel.Toggle(m.visible[m.cursor].Code)
		}
		return m, nil

	case "c":
		m.sel.Clear()
		return m, nil

	case "r":
		m.regionIdx = (m.regionIdx + 1) % len(m.regions)
		m.sel.SetRegion(m.regions[m.regionIdx])
		m.cursor = 0
		m.reproject()
		return m, nil

	case "s":
		m.sel.SetSortField(nextSortField(m.sel.Criteria().SortField))
		m.reproject()
		return m, nil

	case "d":
		m.sel.ToggleSortDirection()
		m.reproject()
		return m, nil
	}

	return m, nil
}

// nextSortField cycles name -> population -> area -> name.
func nextSortField(field selection.SortField) selection.SortField {
	switch field {
	case selection.SortName:
		return selection.SortPopulation
	case selection.SortPopulation:
		return selection.SortArea
	default:
		return selection.SortName
	}
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.criteriaLine())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(fmt.Sprintf("%s Loading countries...\n", m.spin.View()))

	case m.err != nil:
		b.WriteString(errorStyle.Render("Failed to load countries — check your connection."))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press F to try again."))
		b.WriteString("\n")

	case len(m.visible) == 0:
		b.WriteString(mutedStyle.Render("No countries found. Try adjusting your search or filters."))
		b.WriteString("\n")

	default:
		b.WriteString(m.listView())
	}

	if tray := m.trayLine(); tray != "" {
		b.WriteString("\n")
		b.WriteString(tray)
	}

	return b.String()
}

// criteriaLine summarizes the active filters and sort.
func (m browseModel) criteriaLine() string {
	criteria := m.sel.Criteria()

	region := criteria.Region
	if region == "" {
		region = "All Regions"
	}

	line := fmt.Sprintf("%s · sort: %s %s · %d countries",
		region, criteria.SortField, criteria.SortDirection, len(m.visible))
	if m.offline {
		line += fmt.Sprintf(" · offline snapshot from %s", m.offlineAt.Format("Jan 2 15:04"))
	}
	return statusText.Render(line)
}

// listView renders a window of rows around the cursor.
func (m browseModel) listView() string {
	rows := m.height - 10
	if rows < 5 {
		rows = 5
	}

	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := start + rows
	if end > len(m.visible) {
		end = len(m.visible)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		c := m.visible[i]

		mark := "  "
		if m.sel.IsSelected(c.Code) {
			mark = pickedMark.Render("✓ ")
		}

		row := fmt.Sprintf("%s%-4s %-28s %-10s %10s %14s",
			mark, c.Code, truncate(c.Name.Common, 28), c.Region,
			country.FormatPopulation(c.Population), country.FormatArea(c.Area))

		if i == m.cursor {
			b.WriteString(selectedRow.Render(row))
		} else {
			b.WriteString(normalRow.Render(row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// trayLine shows the current selection below the list.
func (m browseModel) trayLine() string {
	codes := m.sel.Selected()
	if len(codes) == 0 {
		return ""
	}

	names := make([]string, 0, len(codes))
	for _, code := range codes {
		name := code
		for _, c := range m.countries {
			if c.Code == code {
				name = c.Name.Common
				break
			}
		}
		names = append(names, name)
	}

	line := fmt.Sprintf("Selected (%d/%d): %s",
		len(codes), m.sel.MaxSelection(), strings.Join(names, ", "))
	if len(codes) >= 2 {
		line += " · press enter to compare"
	}
	return trayStyle.Render(line)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
