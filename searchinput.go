package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages emitted by SearchInput to its owner.
type (
	queryEditedMsg    struct{ value string }
	querySubmittedMsg struct{ value string }
	inputFocusMsg     struct{ focused bool }
)

// SearchInput is a text field whose value is owned by the enclosing
// controller. It reports edits, submissions and focus changes; it never
// starts a search itself.
type SearchInput struct {
	input  textinput.Model
	submit key.Binding
}

// NewSearchInput creates a blurred search field.
func NewSearchInput() SearchInput {
	ti := textinput.New()
	ti.Placeholder = "Buscar películas..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 100
	ti.Width = 40

	// Create explicit key mappings for Option+Backspace (Alt+Backspace)
	ti.KeyMap.DeleteWordBackward = key.NewBinding(
		key.WithKeys("alt+backspace", "ctrl+w"),
	)

	return SearchInput{
		input:  ti,
		submit: key.NewBinding(key.WithKeys("enter")),
	}
}

// SetValue mirrors the owner's value into the field.
func (s *SearchInput) SetValue(v string) {
	if s.input.Value() != v {
		s.input.SetValue(v)
	}
}

func (s SearchInput) Value() string {
	return s.input.Value()
}

func (s SearchInput) Focused() bool {
	return s.input.Focused()
}

// SetWidth sets the visible width of the field.
func (s *SearchInput) SetWidth(w int) {
	s.input.Width = w
}

// Focus gives the field keyboard focus and notifies the owner.
func (s *SearchInput) Focus() tea.Cmd {
	return tea.Batch(s.input.Focus(), emit(inputFocusMsg{focused: true}))
}

// Blur drops keyboard focus and notifies the owner.
func (s *SearchInput) Blur() tea.Cmd {
	s.input.Blur()
	return emit(inputFocusMsg{focused: false})
}

// Update handles key presses while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && !s.input.Focused() {
		return s, nil
	}
	if isKey && key.Matches(keyMsg, s.submit) {
		return s, emit(querySubmittedMsg{value: strings.TrimSpace(s.input.Value())})
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if after := s.input.Value(); after != before {
		cmd = tea.Batch(cmd, emit(queryEditedMsg{value: after}))
	}
	return s, cmd
}

func (s SearchInput) View() string {
	return s.input.View()
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
