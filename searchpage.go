package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// searchResolvedMsg carries the outcome of one dispatched search.
type searchResolvedMsg struct {
	token   int
	query   string
	results []MovieSummary
}

// searchPage connects SearchState to the terminal: it turns requests into
// commands, keys into transitions, and renders DeriveSearchView.
type searchPage struct {
	ctx       context.Context
	state     SearchState
	client    MetadataClient
	logger    *slog.Logger
	imageBase string
	keys      keyMap

	input   SearchInput
	spinner spinner.Model
	pager   paginator.Model
	cursor  int

	viewport ViewportClass
	width    int
}

func newSearchPage(ctx context.Context, client MetadataClient, logger *slog.Logger, imageBase string, keys keyMap) searchPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.PerPage = pageSize
	pg.ActiveDot = highlightedTextStyle.Render("•")
	pg.InactiveDot = mutedTextStyle.Render("•")

	return searchPage{
		ctx:       ctx,
		state:     NewSearchState(),
		client:    client,
		logger:    logger,
		imageBase: imageBase,
		keys:      keys,
		input:     NewSearchInput(),
		spinner:   sp,
		pager:     pg,
		width:     80,
	}
}

// focusInput is used when the page is mounted.
func (p *searchPage) focusInput() tea.Cmd {
	return p.input.Focus()
}

func (p *searchPage) resize(width int, vc ViewportClass) {
	p.width = width
	p.viewport = vc
	p.input.SetWidth(min(60, max(10, width-10)))
}

// fetch runs req against the metadata client. Failures are logged and
// delivered as an empty result so the controller only ever sees absence.
func (p searchPage) fetch(req searchRequest) tea.Cmd {
	ctx, client, logger := p.ctx, p.client, p.logger
	return func() tea.Msg {
		results, err := client.SearchMovies(ctx, req.query)
		if err != nil {
			logger.Warn("search failed", "query", req.query, "token", req.token, "error", err)
			results = nil
		}
		return searchResolvedMsg{token: req.token, query: req.query, results: results}
	}
}

func (p searchPage) Update(msg tea.Msg) (searchPage, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case locationChangedMsg:
		req := p.state.AddressChanged(msg.loc)
		p.input.SetValue(p.state.InputValue)
		p.cursor = 0
		if req != nil {
			p.logger.Debug("search dispatched", "query", req.query, "token", req.token)
			return p, tea.Batch(p.fetch(*req), p.spinner.Tick)
		}
		return p, nil

	case searchResolvedMsg:
		if msg.query == p.state.Query && p.state.Resolve(msg.token, msg.results) {
			p.cursor = 0
		} else {
			p.logger.Debug("stale search discarded", "query", msg.query, "token", msg.token)
		}
		return p, nil

	case queryEditedMsg:
		p.state.Edit(msg.value)
		return p, nil

	case querySubmittedMsg:
		loc := p.state.Submit(msg.value)
		cmds = append(cmds, emit(navigateMsg{to: loc}))
		if p.viewport == viewportSmall {
			cmds = append(cmds, p.input.Blur())
		}
		return p, tea.Batch(cmds...)

	case inputFocusMsg:
		p.state.SetFocus(msg.focused)
		return p, nil

	case spinner.TickMsg:
		if !p.state.Loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		if p.input.Focused() {
			if key.Matches(msg, p.keys.Blur) {
				cmd := p.input.Blur()
				return p, cmd
			}
			var cmd tea.Cmd
			p.input, cmd = p.input.Update(msg)
			return p, cmd
		}
		return p.handleGridKey(msg)
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p searchPage) handleGridKey(msg tea.KeyMsg) (searchPage, tea.Cmd) {
	view := DeriveSearchView(p.state, p.viewport)
	n := len(view.PageItems)
	cols := p.viewport.Columns()

	switch {
	case key.Matches(msg, p.keys.Focus):
		cmd := p.input.Focus()
		return p, cmd
	case key.Matches(msg, p.keys.Back):
		return p, emit(backMsg{})
	case key.Matches(msg, p.keys.Left):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(msg, p.keys.Right):
		if p.cursor < n-1 {
			p.cursor++
		}
	case key.Matches(msg, p.keys.Up):
		if p.cursor-cols >= 0 {
			p.cursor -= cols
		}
	case key.Matches(msg, p.keys.Down):
		if p.cursor+cols < n {
			p.cursor += cols
		}
	case key.Matches(msg, p.keys.NextPage):
		p.state.NextPage()
		p.cursor = 0
	case key.Matches(msg, p.keys.PrevPage):
		p.state.PrevPage()
		p.cursor = 0
	case key.Matches(msg, p.keys.Open):
		if m, ok := p.selected(); ok {
			return p, emit(navigateMsg{to: DetailLocation(m.ID)})
		}
	}
	return p, nil
}

// selected is the summary under the grid cursor, if any.
func (p searchPage) selected() (MovieSummary, bool) {
	items := DeriveSearchView(p.state, p.viewport).PageItems
	if p.cursor < 0 || p.cursor >= len(items) {
		return MovieSummary{}, false
	}
	return items[p.cursor], true
}

func (p searchPage) View() string {
	view := DeriveSearchView(p.state, p.viewport)

	var sb strings.Builder
	if view.HeaderFixed {
		sb.WriteString(fixedHeaderStyle.Width(p.width).Render(
			lipgloss.JoinHorizontal(lipgloss.Center, brandStyle.Render("NebulosaFilms "), p.input.View()),
		))
		sb.WriteString("\n")
	} else {
		sb.WriteString(titleStyle.Render("NebulosaFilms"))
		sb.WriteString("\n")
		sb.WriteString(inputStyle.Render(p.input.View()))
		sb.WriteString("\n")
	}

	switch {
	case view.WelcomeVisible:
		sb.WriteString(welcomeStyle.Render(
			subtitleStyle.Render("¡Bienvenido!") + "\n" +
				normalTextStyle.Render(wrapText("Explora y busca información sobre películas, descubre detalles, reparto y tráilers. Usa la barra de búsqueda para empezar.", 50)),
		))
	case view.Phase == phaseLoading:
		sb.WriteString(p.spinner.View() + " " + normalTextStyle.Render("Cargando..."))
	case view.NoResultsVisible:
		sb.WriteString(mutedTextStyle.Render("No se encontraron resultados."))
	default:
		sb.WriteString(p.renderGrid(view))
	}

	return sb.String()
}

func (p searchPage) renderGrid(view SearchView) string {
	if len(view.PageItems) == 0 {
		return ""
	}

	cols := p.viewport.Columns()
	cardWidth := max(12, (p.width-2)/cols)

	var rows []string
	var row []string
	for i, m := range view.PageItems {
		card := NewResultCard(m, p.imageBase)
		highlight := view.MostPopular != nil && view.MostPopular.ID == m.ID
		row = append(row, card.Render(cardWidth, i == p.cursor && !p.input.Focused(), highlight))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	pager := p.pager
	pager.SetTotalPages(len(view.DisplayedResults))
	pager.Page = view.CurrentPage - 1
	footer := fmt.Sprintf("%s  %s", pager.View(),
		mutedTextStyle.Render(fmt.Sprintf("Página %d/%d · %d resultados", view.CurrentPage, view.TotalPages, len(view.DisplayedResults))))

	return lipgloss.JoinVertical(lipgloss.Left, append(rows, "", footer)...)
}
