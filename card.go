package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// ResultCard is the display tile for one search result.
type ResultCard struct {
	ID        int
	Title     string
	Year      string
	PosterURL string
}

// NewResultCard maps a summary to its tile.
func NewResultCard(m MovieSummary, imageBase string) ResultCard {
	return ResultCard{
		ID:        m.ID,
		Title:     m.Title,
		Year:      releaseYear(m.ReleaseDate),
		PosterURL: ImageURL(imageBase, posterSize, m.PosterPath),
	}
}

func releaseYear(date string) string {
	if len(date) < 4 {
		return "N/A"
	}
	return date[:4]
}

// Render draws the tile at the given outer width. The title never wraps.
func (c ResultCard) Render(width int, selected bool, highlight bool) string {
	style := cardStyle
	if selected {
		style = selectedCardStyle
	}
	inner := width - style.GetHorizontalFrameSize()
	if inner < 4 {
		inner = 4
	}

	var title string
	if highlight {
		title = popularStyle.Render(ansi.Truncate("★ "+c.Title, inner, "…"))
	} else {
		title = cardTitleStyle.Render(ansi.Truncate(c.Title, inner, "…"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		cardYearStyle.Render(c.Year),
	)
	return style.Width(inner + style.GetHorizontalPadding()).Render(body)
}
