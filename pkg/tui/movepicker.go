package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/megakid/Terraform/pkg/engine"
	"github.com/megakid/Terraform/pkg/terraform"
)

// A Choice is the operator's decision for one suggestion: either one of
// the ranked candidates, or Skip.
type Choice struct {
	Candidate engine.Candidate
	Skip      bool
}

var movePickerKeys = struct {
	Up     key.Binding
	Down   key.Binding
	Choose key.Binding
	Abort  key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter")),
	Abort:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// MovePickerModel walks the operator through suggestions one at a time.
// Each screen lists the candidates for one deleted resource, nearest
// first, with an explicit skip entry at the bottom.
type MovePickerModel struct {
	suggestions []engine.Suggestion
	current     int
	cursor      int
	choices     []Choice

	aborted bool
}

func NewMovePicker(suggestions []engine.Suggestion) MovePickerModel {
	return MovePickerModel{suggestions: suggestions}
}

func (m MovePickerModel) Init() tea.Cmd {
	return nil
}

func (m MovePickerModel) done() bool {
	return m.current >= len(m.suggestions)
}

// numChoices counts the current screen's entries: candidates plus skip.
func (m MovePickerModel) numChoices() int {
	return len(m.suggestions[m.current].Candidates) + 1
}

func (m MovePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, movePickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, movePickerKeys.Down):
		if m.cursor < m.numChoices()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, movePickerKeys.Choose):
		suggestion := m.suggestions[m.current]
		if m.cursor < len(suggestion.Candidates) {
			m.choices = append(m.choices, Choice{Candidate: suggestion.Candidates[m.cursor]})
		} else {
			m.choices = append(m.choices, Choice{Skip: true})
		}

		m.current++
		m.cursor = 0
		if m.done() {
			return m, tea.Quit
		}
	case key.Matches(keyMsg, movePickerKeys.Abort):
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

func (m MovePickerModel) View() string {
	if m.done() {
		return ""
	}

	suggestion := m.suggestions[m.current]

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Move %s to: (%d/%d)\n\n",
		suggestion.FromAddress, m.current+1, len(m.suggestions)))

	for i, c := range suggestion.Candidates {
		sb.WriteString(m.renderChoice(i, fmt.Sprintf("%s (distance %d)", c.Address, c.Distance)))
	}
	sb.WriteString(m.renderChoice(len(suggestion.Candidates), "skip this resource"))

	sb.WriteString("\n" + helpStyle.Render("enter choose · q abort"))
	sb.WriteString("\n")

	return sb.String()
}

func (m MovePickerModel) renderChoice(i int, label string) string {
	if i == m.cursor {
		return cursorStyle.Render("> ") + label + "\n"
	}
	return "  " + label + "\n"
}

// Moves converts the accepted choices into state move operations, in a
// deterministic order.
func (m MovePickerModel) Moves() []terraform.Move {
	var moves []terraform.Move
	for i, choice := range m.choices {
		if choice.Skip {
			continue
		}
		moves = append(moves, terraform.Move{
			FromAddress: m.suggestions[i].FromAddress,
			ToAddress:   choice.Candidate.Address,
		})
	}

	terraform.SortMoves(moves)
	return moves
}

// PickMoves runs the suggestion chooser and returns the accepted moves.
func PickMoves(suggestions []engine.Suggestion) ([]terraform.Move, error) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	final, err := tea.NewProgram(NewMovePicker(suggestions)).Run()
	if err != nil {
		return nil, err
	}

	m := final.(MovePickerModel)
	if m.aborted {
		return nil, ErrAborted
	}

	return m.Moves(), nil
}
