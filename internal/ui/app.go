package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"atlascope/internal/country"
	"atlascope/internal/logging"
	"atlascope/internal/selection"
)

// loadTimeout bounds the initial dataset load.
const loadTimeout = 45 * time.Second

// DataSource is the cache query surface the UI loads from.
// *cache.Cache satisfies it.
type DataSource interface {
	All(ctx context.Context) ([]country.Country, error)
}

// SnapshotSource is the offline fallback read from persistence.
// *store.Store satisfies it; nil disables the fallback.
type SnapshotSource interface {
	LoadSnapshot() ([]country.Country, time.Time, error)
}

// tab identifies the dashboard views.
type tab int

const (
	tabBrowse tab = iota
	tabCompare
	tabQuiz
)

var tabNames = []string{"Browse", "Compare", "Quiz"}

// App is the root Bubble Tea model.
// The selection store is the single writer for selection state; App and its
// submodels only dispatch actions into it.
type App struct {
	data DataSource
	snap SnapshotSource
	sel  *selection.Store

	browse     browseModel
	comparison comparisonModel
	quiz       quizModel

	active    tab
	countries []country.Country
	width     int
	height    int
	ready     bool
}

// New creates the root model.
func New(data DataSource, snap SnapshotSource, sel *selection.Store) App {
	return App{
		data:       data,
		snap:       snap,
		sel:        sel,
		browse:     newBrowse(sel),
		comparison: newComparison(sel),
		quiz:       newQuiz(),
	}
}

// Init starts the dataset load and the loading spinner.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadDataset(), a.browse.spin.Tick)
}

// loadDataset fetches the dataset through the cache; on failure it falls
// back to the persisted snapshot so the dashboard still has data offline.
func (a App) loadDataset() tea.Cmd {
	data, snap := a.data, a.snap
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		countries, err := data.All(ctx)
		if err != nil {
			logging.Warn("dataset load failed", "error", err)
			if snap != nil {
				cached, fetchedAt, serr := snap.LoadSnapshot()
				if serr == nil && len(cached) > 0 {
					return DatasetLoaded{Countries: cached, FromSnapshot: true, SnapshotAt: fetchedAt}
				}
			}
			return DatasetLoaded{Err: err}
		}
		return DatasetLoaded{Countries: countries}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.browse.width = msg.Width
		a.browse.height = msg.Height
		a.comparison.width = msg.Width
		a.comparison.height = msg.Height
		return a, nil

	case DatasetLoaded:
		if msg.Err != nil {
			a.browse.setError(msg.Err)
			return a, nil
		}
		a.countries = msg.Countries
		a.browse.setDataset(msg.Countries, msg.FromSnapshot, msg.SnapshotAt)
		if len(a.quiz.questions) == 0 {
			a.quiz.generate(msg.Countries)
		}
		return a, nil

	case DatasetRefreshed:
		// Background warm: only adopt successful results; a failed warm
		// must not clobber data the user is already looking at.
		if msg.Err != nil || len(msg.Countries) == 0 {
			return a, nil
		}
		a.countries = msg.Countries
		a.browse.setDataset(msg.Countries, false, time.Time{})
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Everything else (spinner ticks, blink) goes to the browse model.
	var cmd tea.Cmd
	a.browse, cmd = a.browse.Update(msg)
	return a, cmd
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// While the search input is focused all other keys belong to it.
	if a.active == tabBrowse && a.browse.search.Focused() {
		var cmd tea.Cmd
		a.browse, cmd = a.browse.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "tab":
		a.active = (a.active + 1) % tab(len(tabNames))
		return a, nil

	case "shift+tab":
		a.active = (a.active + tab(len(tabNames)) - 1) % tab(len(tabNames))
		return a, nil

	case "F":
		a.browse.loading = true
		a.browse.err = nil
		return a, tea.Batch(a.loadDataset(), a.browse.spin.Tick)

	case "enter":
		if a.active == tabBrowse && a.sel.Count() >= 2 {
			a.sel.SetComparing(true)
			a.active = tabCompare
			return a, nil
		}

	case "esc":
		if a.active == tabCompare {
			a.sel.SetComparing(false)
			a.active = tabBrowse
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.active {
	case tabBrowse:
		a.browse, cmd = a.browse.Update(msg)
	case tabQuiz:
		a.quiz, cmd = a.quiz.Update(msg, a.countries)
	}
	return a, cmd
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.tabBar())
	b.WriteString("\n\n")

	switch a.active {
	case tabBrowse:
		b.WriteString(a.browse.View())
	case tabCompare:
		b.WriteString(a.comparison.View(a.countries))
	case tabQuiz:
		b.WriteString(a.quiz.View())
	}

	b.WriteString("\n")
	b.WriteString(a.statusLine())
	return b.String()
}

func (a App) tabBar() string {
	parts := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == a.active {
			parts[i] = tabActive.Render(name)
		} else {
			parts[i] = tabInactive.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) statusLine() string {
	var hints []string
	switch a.active {
	case tabBrowse:
		hints = []string{
			statusKey.Render("/") + statusText.Render(" search"),
			statusKey.Render("space") + statusText.Render(" select"),
			statusKey.Render("r") + statusText.Render(" region"),
			statusKey.Render("s") + statusText.Render(" sort"),
			statusKey.Render("d") + statusText.Render(" direction"),
			statusKey.Render("c") + statusText.Render(" clear"),
			statusKey.Render("enter") + statusText.Render(" compare"),
		}
	case tabCompare:
		hints = []string{
			statusKey.Render("esc") + statusText.Render(" back"),
		}
	case tabQuiz:
		hints = []string{
			statusKey.Render("1-3") + statusText.Render(" answer"),
			statusKey.Render("n") + statusText.Render(" next"),
			statusKey.Render("R") + statusText.Render(" restart"),
		}
	}
	hints = append(hints,
		statusKey.Render("tab")+statusText.Render(" views"),
		statusKey.Render("F")+statusText.Render(" refresh"),
		statusKey.Render("q")+statusText.Render(" quit"))

	return statusBar.Render(strings.Join(hints, "  "))
}
