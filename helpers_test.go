package main

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// drain runs cmd and every command nested in batches, returning the
// resulting messages in order.
func drain(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// msgsOf keeps the messages of type T.
func msgsOf[T any](msgs []tea.Msg) []T {
	var out []T
	for _, m := range msgs {
		if v, ok := m.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// summaries builds n results; every entry whose index is in withoutPoster
// has no poster path.
func summaries(n int, withoutPoster ...int) []MovieSummary {
	skip := make(map[int]bool, len(withoutPoster))
	for _, i := range withoutPoster {
		skip[i] = true
	}
	out := make([]MovieSummary, n)
	for i := range out {
		out[i] = MovieSummary{
			ID:          i + 1,
			Title:       fmt.Sprintf("Movie %d", i+1),
			ReleaseDate: "2021-09-15",
			Popularity:  float64(i),
		}
		if !skip[i] {
			out[i].PosterPath = fmt.Sprintf("/poster%d.jpg", i+1)
		}
	}
	return out
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
