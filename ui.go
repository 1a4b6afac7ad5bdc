package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styling constants
var (
	// Colors
	primaryColor   = lipgloss.Color("#00FFFF") // Nebula cyan
	secondaryColor = lipgloss.Color("#F5F5F1") // Light cream color
	accentColor    = lipgloss.Color("#183D5A") // Deep blue
	mutedColor     = lipgloss.Color("#8A8A8A")

	// Text styles
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	brandStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	normalTextStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	mutedTextStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	highlightedTextStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	// Component styles
	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	fixedHeaderStyle = lipgloss.NewStyle().
				Background(accentColor).
				Padding(0, 1)

	welcomeStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(1, 2).
			Width(56).
			Align(lipgloss.Center)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(primaryColor)

	cardTitleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	cardYearStyle = mutedTextStyle

	popularStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)
)

// ViewportClass is the coarse size of the terminal, used for layout
// branching.
type ViewportClass int

const (
	viewportSmall ViewportClass = iota
	viewportMedium
	viewportLarge
)

// Columns is the number of result cards per grid row.
func (v ViewportClass) Columns() int {
	switch v {
	case viewportLarge:
		return 4
	case viewportMedium:
		return 3
	default:
		return 2
	}
}

// ViewportClassifier maps a terminal width to a ViewportClass.
type ViewportClassifier func(width int) ViewportClass

func classifyWidth(width int) ViewportClass {
	switch {
	case width < 80:
		return viewportSmall
	case width < 120:
		return viewportMedium
	default:
		return viewportLarge
	}
}

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Open     key.Binding
	Focus    key.Binding
	Blur     key.Binding
	Back     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "arriba")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "abajo")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "izquierda")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "derecha")),
		NextPage: key.NewBinding(key.WithKeys("pgdown", "n", "]"), key.WithHelp("n", "pág. siguiente")),
		PrevPage: key.NewBinding(key.WithKeys("pgup", "p", "["), key.WithHelp("p", "pág. anterior")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "abrir")),
		Focus:    key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "buscar")),
		Blur:     key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "salir del campo")),
		Back:     key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "atrás")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "salir")),
	}
}

// Application states
const (
	stateSearch = iota
	stateDetail
)

// Navigation messages. locationChangedMsg is the only way a controller
// learns about the address; navigateMsg and backMsg are requests to change it.
type (
	locationChangedMsg struct{ loc Location }
	navigateMsg        struct{ to Location }
	backMsg            struct{}
)

// Options carries what the pages need besides the metadata client.
type Options struct {
	ImageBaseURL string
	WikiLanguage string
	Classify     ViewportClassifier
}

// Model represents the application state
type Model struct {
	state    int
	ctx      context.Context
	client   MetadataClient
	logger   *slog.Logger
	opts     Options
	history  *History
	search   searchPage
	detail   detailPage
	keys     keyMap
	help     help.Model
	initCmd  tea.Cmd
	mounted  bool
	width    int
	height   int
	viewport ViewportClass
}

// NewModel creates the application model positioned at start.
func NewModel(ctx context.Context, client MetadataClient, logger *slog.Logger, opts Options, start Location) Model {
	if opts.Classify == nil {
		opts.Classify = classifyWidth
	}

	m := Model{
		ctx:     ctx,
		client:  client,
		logger:  logger,
		opts:    opts,
		history: NewHistory(start),
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   80,
		height:  24,
	}
	m.viewport = opts.Classify(m.width)
	m.initCmd = m.navigate(start)
	return m
}

// Init delivers the starting location to the mounted page.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Location is the address currently displayed.
func (m Model) Location() Location {
	return m.history.Current()
}

// navigate mounts the page for loc when needed and delivers the location.
func (m *Model) navigate(loc Location) tea.Cmd {
	m.logger.Info("navigate", "location", loc.String())

	if loc.Route() == routeDetail {
		m.state = stateDetail
		m.mounted = false
		m.detail = newDetailPage(m.ctx, m.client, m.logger, m.opts.ImageBaseURL, m.opts.WikiLanguage, m.keys, loc)
		m.detail.resize(m.width, m.height)
		return m.detail.Init()
	}

	var mountCmd tea.Cmd
	if m.state != stateSearch || !m.mounted {
		// Tokens keep counting across mounts so a response dispatched by an
		// earlier page can never match a request of this one.
		lastToken := m.search.state.token
		m.state = stateSearch
		m.mounted = true
		m.search = newSearchPage(m.ctx, m.client, m.logger, m.opts.ImageBaseURL, m.keys)
		m.search.state.token = lastToken
		m.search.resize(m.width, m.viewport)
		mountCmd = m.search.focusInput()
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(locationChangedMsg{loc: loc})
	return tea.Batch(mountCmd, cmd)
}

func (m Model) inputFocused() bool {
	if m.state == stateDetail {
		return m.detail.input.Focused()
	}
	return m.search.input.Focused()
}

// Update handles messages and user input
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || (!m.inputFocused() && key.Matches(msg, m.keys.Quit)) {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = m.opts.Classify(msg.Width)
		m.help.Width = msg.Width
		m.search.resize(msg.Width, m.viewport)
		if m.state == stateDetail {
			m.detail.resize(msg.Width, msg.Height)
		}
		return m, nil

	case navigateMsg:
		// Re-submitting the current query re-reads the same address.
		if msg.to != m.history.Current() {
			m.history.Push(msg.to)
		}
		return m, m.navigate(msg.to)

	case backMsg:
		loc, ok := m.history.Back()
		if !ok {
			return m, nil
		}
		return m, m.navigate(loc)
	}

	var cmd tea.Cmd
	switch m.state {
	case stateDetail:
		m.detail, cmd = m.detail.Update(msg)
	default:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// View renders the current UI
func (m Model) View() string {
	var sb strings.Builder

	switch m.state {
	case stateDetail:
		sb.WriteString(m.detail.View())
		sb.WriteString("\n\n")
		sb.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Open, m.keys.Focus, m.keys.Back, m.keys.Up, m.keys.Down, m.keys.Quit}))
	default:
		sb.WriteString(m.search.View())
		sb.WriteString("\n\n")
		if m.search.input.Focused() {
			sb.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Open, m.keys.Blur}))
		} else {
			sb.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Left, m.keys.Right, m.keys.NextPage, m.keys.PrevPage, m.keys.Open, m.keys.Focus, m.keys.Back, m.keys.Quit}))
		}
	}

	return lipgloss.NewStyle().
		Width(m.width).
		AlignHorizontal(lipgloss.Center).
		MaxHeight(m.height).
		Render(sb.String())
}
