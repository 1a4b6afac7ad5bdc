package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// castLimit is how many cast entries the detail view shows.
const castLimit = 5

// Results of the three independent detail fetches.
type (
	detailLoadedMsg struct {
		id    int
		movie *MovieDetail
	}
	trailerLoadedMsg struct {
		id      int
		trailer *Trailer
	}
	castLoadedMsg struct {
		id   int
		cast []CastMember
	}
	browserOpenedMsg struct {
		url string
		err error
	}
)

type detailPage struct {
	ctx       context.Context
	client    MetadataClient
	logger    *slog.Logger
	imageBase string
	wikiLang  string
	keys      keyMap

	id      int
	loading bool
	movie   *MovieDetail
	trailer *Trailer
	cast    []CastMember
	notice  string

	input    SearchInput
	spinner  spinner.Model
	viewport viewport.Model
	renderer *glamour.TermRenderer
	width    int
}

func newDetailPage(ctx context.Context, client MetadataClient, logger *slog.Logger, imageBase, wikiLang string, keys keyMap, loc Location) detailPage {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(primaryColor)

	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle().BorderForeground(accentColor)

	id, ok := loc.MovieID()
	return detailPage{
		ctx:       ctx,
		client:    client,
		logger:    logger,
		imageBase: imageBase,
		wikiLang:  wikiLang,
		keys:      keys,
		id:        id,
		loading:   ok,
		input:     NewSearchInput(),
		spinner:   sp,
		viewport:  vp,
		width:     80,
	}
}

// Init dispatches the detail, trailer and cast fetches concurrently. Each
// one resolves into its own message and never waits on the others.
func (d detailPage) Init() tea.Cmd {
	if !d.loading {
		return nil
	}
	d.logger.Debug("detail dispatched", "id", d.id)
	return tea.Batch(d.fetchMovie(), d.fetchTrailer(), d.fetchCast(), d.spinner.Tick)
}

func (d detailPage) fetchMovie() tea.Cmd {
	ctx, client, logger, id := d.ctx, d.client, d.logger, d.id
	return func() tea.Msg {
		movie, err := client.GetMovie(ctx, id)
		if err != nil {
			logger.Warn("movie fetch failed", "id", id, "error", err)
			movie = nil
		}
		return detailLoadedMsg{id: id, movie: movie}
	}
}

func (d detailPage) fetchTrailer() tea.Cmd {
	ctx, client, logger, id := d.ctx, d.client, d.logger, d.id
	return func() tea.Msg {
		trailer, err := client.GetTrailer(ctx, id)
		if err != nil {
			logger.Warn("trailer fetch failed", "id", id, "error", err)
			trailer = nil
		}
		return trailerLoadedMsg{id: id, trailer: trailer}
	}
}

func (d detailPage) fetchCast() tea.Cmd {
	ctx, client, logger, id := d.ctx, d.client, d.logger, d.id
	return func() tea.Msg {
		cast, err := client.GetCast(ctx, id)
		if err != nil {
			logger.Warn("cast fetch failed", "id", id, "error", err)
			cast = nil
		}
		return castLoadedMsg{id: id, cast: cast}
	}
}

func (d *detailPage) resize(width, height int) {
	d.width = width
	d.viewport.Width = max(20, width-4)
	d.viewport.Height = max(5, height-8)
	d.input.SetWidth(min(60, max(10, width-10)))

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, d.viewport.Width-4)),
	)
	if err != nil {
		d.logger.Warn("markdown renderer unavailable", "error", err)
		r = nil
	}
	d.renderer = r
	d.refresh()
}

// DisplayedCast is the leading part of the cast that is shown.
func (d detailPage) DisplayedCast() []CastMember {
	if len(d.cast) > castLimit {
		return d.cast[:castLimit]
	}
	return d.cast
}

// TrailerKey is the key of the selected trailer, or "" when there is none.
func (d detailPage) TrailerKey() string {
	if d.trailer == nil {
		return ""
	}
	return d.trailer.Key
}

func (d detailPage) Update(msg tea.Msg) (detailPage, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if msg.id == d.id {
			d.movie = msg.movie
			d.loading = false
			d.refresh()
		}
		return d, nil

	case trailerLoadedMsg:
		if msg.id == d.id {
			d.trailer = msg.trailer
			d.refresh()
		}
		return d, nil

	case castLoadedMsg:
		if msg.id == d.id {
			d.cast = msg.cast
			d.refresh()
		}
		return d, nil

	case querySubmittedMsg:
		if msg.value == "" {
			return d, nil
		}
		blur := d.input.Blur()
		return d, tea.Batch(blur, emit(navigateMsg{to: SearchLocation(msg.value)}))

	case browserOpenedMsg:
		if msg.err != nil {
			d.logger.Warn("open browser failed", "url", msg.url, "error", msg.err)
			d.notice = "No se pudo abrir el navegador."
		} else {
			d.notice = ""
		}
		return d, nil

	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd

	case tea.KeyMsg:
		if d.input.Focused() {
			if key.Matches(msg, d.keys.Blur) {
				cmd := d.input.Blur()
				return d, cmd
			}
			var cmd tea.Cmd
			d.input, cmd = d.input.Update(msg)
			return d, cmd
		}

		switch {
		case key.Matches(msg, d.keys.Focus):
			cmd := d.input.Focus()
			return d, cmd
		case key.Matches(msg, d.keys.Back):
			return d, emit(backMsg{})
		case key.Matches(msg, d.keys.Open):
			if k := d.TrailerKey(); k != "" {
				return d, openInBrowser(youtubeURL(k))
			}
			return d, nil
		}

		var cmd tea.Cmd
		d.viewport, cmd = d.viewport.Update(msg)
		return d, cmd
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func openInBrowser(url string) tea.Cmd {
	return func() tea.Msg {
		return browserOpenedMsg{url: url, err: openURL(url)}
	}
}

// refresh re-renders the scrollable body after any piece of state changes.
func (d *detailPage) refresh() {
	if d.movie == nil {
		d.viewport.SetContent("")
		return
	}
	md := d.markdown()
	if d.renderer != nil {
		if out, err := d.renderer.Render(md); err == nil {
			d.viewport.SetContent(out)
			return
		}
	}
	d.viewport.SetContent(wrapText(md, d.viewport.Width))
}

// markdown describes the movie, its cast and trailer.
func (d detailPage) markdown() string {
	m := d.movie
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(m.Title))
	fmt.Fprintf(&sb, "**Fecha de lanzamiento:** %s\n\n", orNA(m.ReleaseDate))

	overview := m.Overview
	if overview == "" {
		overview = "No description available."
	}
	sb.WriteString(overview + "\n\n")

	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	fmt.Fprintf(&sb, "**Género:** %s\n\n", orNA(strings.Join(genres, ", ")))
	fmt.Fprintf(&sb, "**Calificación:** %.1f / 10 (%d votos)\n\n", m.VoteAverage, m.VoteCount)
	fmt.Fprintf(&sb, "**Póster:** %s\n\n", ImageURL(d.imageBase, detailSize, m.PosterPath))

	if cast := d.DisplayedCast(); len(cast) > 0 {
		sb.WriteString("## Reparto principal\n\n")
		for _, c := range cast {
			fmt.Fprintf(&sb, "- [%s](%s)", escapeMarkdown(c.Name), wikipediaURL(d.wikiLang, c.Name))
			if c.Character != "" {
				fmt.Fprintf(&sb, " — %s", escapeMarkdown(c.Character))
			}
			fmt.Fprintf(&sb, " · [foto](%s)", ImageURL(d.imageBase, profileSize, c.ProfilePath))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if k := d.TrailerKey(); k != "" {
		fmt.Fprintf(&sb, "## Tráiler\n\n%s\n", youtubeURL(k))
	}
	return sb.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func (d detailPage) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("NebulosaFilms"))
	sb.WriteString("\n")
	sb.WriteString(inputStyle.Render(d.input.View()))
	sb.WriteString("\n")

	switch {
	case d.loading:
		sb.WriteString(d.spinner.View() + " " + normalTextStyle.Render("Cargando..."))
	case d.movie == nil:
		sb.WriteString(errorStyle.Render("Película no encontrada."))
	default:
		sb.WriteString(d.viewport.View())
	}

	if d.notice != "" {
		sb.WriteString("\n" + errorStyle.Render(d.notice))
	}
	return sb.String()
}
