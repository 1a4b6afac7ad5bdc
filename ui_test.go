package main

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestModel(client MetadataClient, start Location) Model {
	return NewModel(context.Background(), client, discardLogger(), Options{
		ImageBaseURL: "https://image.tmdb.org/t/p",
		WikiLanguage: "es",
	}, start)
}

// step feeds msg to m and applies the fetch results it produces. Focus
// and blink commands are left alone.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	return applyFetches(t, m, cmd)
}

func applyFetches(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	var pending []tea.Cmd
	if batch, ok := cmd().(tea.BatchMsg); ok {
		pending = batch
	} else {
		pending = []tea.Cmd{cmd}
	}
	for _, c := range pending {
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case searchResolvedMsg, detailLoadedMsg, trailerLoadedMsg, castLoadedMsg, navigateMsg, backMsg:
			m = step(t, m, msg)
		case tea.BatchMsg:
			m = applyFetches(t, m, func() tea.Msg { return msg })
		}
	}
	return m
}

func TestModelStartsOnLanding(t *testing.T) {
	m := newTestModel(NewMockMetadataClient(gomock.NewController(t)), SearchLocation(""))

	assert.Equal(t, stateSearch, m.state)
	assert.Equal(t, "/", m.Location().String())
	assert.True(t, m.search.input.Focused(), "the field is focused when the page mounts")
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "¡Bienvenido!")
}

func TestModelStartsOnDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockMetadataClient(ctrl)
	client.EXPECT().GetMovie(gomock.Any(), 42).Return(duneDetail(), nil)
	client.EXPECT().GetTrailer(gomock.Any(), 42).Return(nil, nil)
	client.EXPECT().GetCast(gomock.Any(), 42).Return(castOf(2), nil)

	m := newTestModel(client, DetailLocation(42))
	require.Equal(t, stateDetail, m.state)

	m = applyFetches(t, m, m.Init())
	assert.False(t, m.detail.loading)
	assert.Equal(t, "Dune", m.detail.movie.Title)
}

func TestModelSearchDetailAndBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockMetadataClient(ctrl)
	client.EXPECT().SearchMovies(gomock.Any(), "dune").Return(summaries(3), nil).Times(2)
	client.EXPECT().GetMovie(gomock.Any(), 2).Return(&MovieDetail{MovieSummary: MovieSummary{ID: 2, Title: "Movie 2"}}, nil)
	client.EXPECT().GetTrailer(gomock.Any(), 2).Return(nil, nil)
	client.EXPECT().GetCast(gomock.Any(), 2).Return(nil, nil)

	m := newTestModel(client, SearchLocation(""))

	m = step(t, m, navigateMsg{to: SearchLocation("dune")})
	assert.Equal(t, "/?search=dune", m.Location().String())
	assert.Len(t, m.search.state.Results, 3)

	m = step(t, m, navigateMsg{to: DetailLocation(2)})
	assert.Equal(t, stateDetail, m.state)
	assert.Equal(t, "/movie/2", m.Location().String())
	assert.Equal(t, "Movie 2", m.detail.movie.Title)
	assert.Equal(t, 3, m.history.Len())

	// Returning re-reads the address, so the results are fetched again.
	m = step(t, m, backMsg{})
	assert.Equal(t, stateSearch, m.state)
	assert.Equal(t, "/?search=dune", m.Location().String())
	assert.Equal(t, "dune", m.search.state.Query)
	assert.Len(t, m.search.state.Results, 3)

	m = step(t, m, backMsg{})
	assert.Equal(t, "/", m.Location().String())
	assert.Empty(t, m.search.state.Results)

	m = step(t, m, backMsg{})
	assert.Equal(t, "/", m.Location().String(), "first entry stays put")
}

func TestModelResubmitSameQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockMetadataClient(ctrl)
	client.EXPECT().SearchMovies(gomock.Any(), "dune").Return(summaries(3), nil).Times(2)

	m := newTestModel(client, SearchLocation(""))
	m = step(t, m, navigateMsg{to: SearchLocation("dune")})
	m = step(t, m, navigateMsg{to: SearchLocation("dune")})

	assert.Equal(t, 2, m.history.Len())
	assert.Len(t, m.search.state.Results, 3)
}

func TestModelQuitOnlyWhenFieldUnfocused(t *testing.T) {
	m := newTestModel(NewMockMetadataClient(gomock.NewController(t)), SearchLocation(""))
	require.True(t, m.inputFocused())

	next, _ := m.Update(keyRunes("q"))
	m = next.(Model)
	assert.Equal(t, "q", m.search.input.Value(), "q is typed into the field")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	require.False(t, m.inputFocused())

	_, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = newTestModel(nil, SearchLocation("")).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelWindowSizeClassifiesViewport(t *testing.T) {
	m := newTestModel(nil, SearchLocation(""))

	tests := []struct {
		width int
		want  ViewportClass
	}{
		{width: 60, want: viewportSmall},
		{width: 100, want: viewportMedium},
		{width: 160, want: viewportLarge},
	}
	for _, tt := range tests {
		next, _ := m.Update(tea.WindowSizeMsg{Width: tt.width, Height: 40})
		m = next.(Model)
		assert.Equal(t, tt.want, m.viewport, "width %d", tt.width)
		assert.Equal(t, tt.want, m.search.viewport, "width %d", tt.width)
	}
}

func TestModelUsesInjectedClassifier(t *testing.T) {
	m := NewModel(context.Background(), nil, discardLogger(), Options{
		Classify: func(int) ViewportClass { return viewportSmall },
	}, SearchLocation(""))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 300, Height: 60})
	assert.Equal(t, viewportSmall, next.(Model).viewport)
}

func TestModelDiscardsSearchFromEarlierMount(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := NewMockMetadataClient(ctrl)
	client.EXPECT().GetMovie(gomock.Any(), 42).Return(duneDetail(), nil).Times(2)
	client.EXPECT().GetTrailer(gomock.Any(), 42).Return(nil, nil).Times(2)
	client.EXPECT().GetCast(gomock.Any(), 42).Return(nil, nil).Times(2)
	client.EXPECT().SearchMovies(gomock.Any(), "x").Return(summaries(5), nil)
	client.EXPECT().SearchMovies(gomock.Any(), "y").Return(summaries(3), nil)

	m := newTestModel(client, DetailLocation(42))
	m = applyFetches(t, m, m.Init())

	// The search for x is left in flight while the user goes back.
	next, xCmd := m.Update(navigateMsg{to: SearchLocation("x")})
	m = next.(Model)
	m = step(t, m, backMsg{})
	require.Equal(t, stateDetail, m.state)

	next, yCmd := m.Update(navigateMsg{to: SearchLocation("y")})
	m = next.(Model)
	require.Equal(t, "y", m.search.state.Query)

	for _, msg := range msgsOf[searchResolvedMsg](drain(t, xCmd)) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}
	assert.True(t, m.search.state.Loading, "response for x must not settle the search for y")
	assert.Empty(t, m.search.state.Results)

	for _, msg := range msgsOf[searchResolvedMsg](drain(t, yCmd)) {
		next, _ = m.Update(msg)
		m = next.(Model)
	}
	assert.False(t, m.search.state.Loading)
	assert.Len(t, m.search.state.Results, 3)
}

func TestModelBlankSearchFlagShowsWelcome(t *testing.T) {
	m := newTestModel(NewMockMetadataClient(gomock.NewController(t)), SearchLocation("   "))

	assert.Empty(t, m.search.state.Query)
	assert.False(t, m.search.state.Loading)
	assert.Contains(t, m.View(), "¡Bienvenido!")
}
