package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorSuccess   = lipgloss.Color("78")  // Green
)

// barColors cycles through the comparison bar colors, one per country.
var barColors = []lipgloss.Color{
	lipgloss.Color("78"),  // green
	lipgloss.Color("39"),  // blue
	lipgloss.Color("135"), // purple
}

// tabActive style for the selected tab.
var tabActive = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 2)

// tabInactive style for unselected tabs.
var tabInactive = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 2)

// selectedRow style for the currently highlighted country.
var selectedRow = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// normalRow style for other countries.
var normalRow = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// pickedMark style for the selection marker on chosen countries.
var pickedMark = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// trayStyle for the selection tray above the status bar.
var trayStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Padding(0, 1)

// statusBar style for the bottom status bar.
var statusBar = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// statusKey style for key hints in the status bar.
var statusKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// statusText style for descriptive text in the status bar.
var statusText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// errorStyle for displaying errors.
var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// mutedStyle for secondary text.
var mutedStyle = lipgloss.NewStyle().
	Foreground(colorMuted)

// cardStyle frames one country in the comparison view.
var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorSecondary).
	Padding(0, 1).
	MarginRight(1)

// metricHeader labels a comparison metric section.
var metricHeader = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight).
	MarginTop(1)

// quizCorrect and quizWrong color quiz feedback.
var quizCorrect = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var quizWrong = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
