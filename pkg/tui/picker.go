// Package tui implements the interactive terminal widgets: a tree
// multi-select over the resource forest, and a per-suggestion chooser for
// state moves. It follows bubbletea's Elm architecture: a model holds all
// state, Update reacts to messages, View renders a string.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/megakid/Terraform/pkg/hierarchy"
)

// ErrAborted is returned when the operator quits without confirming.
var ErrAborted = errors.New("selection aborted")

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	All     key.Binding
	None    key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k")),
	Down:    key.NewBinding(key.WithKeys("down", "j")),
	Toggle:  key.NewBinding(key.WithKeys(" ")),
	All:     key.NewBinding(key.WithKeys("a")),
	None:    key.NewBinding(key.WithKeys("n")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Abort:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// A row is one visible line of the tree: a node at its depth.
type row struct {
	node  *hierarchy.Node
	depth int
}

// PickerModel is the tree multi-select. Selection is tracked per leaf;
// toggling an internal node toggles its whole leaf closure.
type PickerModel struct {
	rows     []row
	cursor   int
	selected map[*hierarchy.Node]bool

	confirmed bool
	aborted   bool
}

// NewPicker builds a picker over a compacted forest.
func NewPicker(f *hierarchy.Forest) PickerModel {
	m := PickerModel{
		selected: make(map[*hierarchy.Node]bool),
	}

	var walk func(n *hierarchy.Node, depth int)
	walk = func(n *hierarchy.Node, depth int) {
		m.rows = append(m.rows, row{node: n, depth: depth})
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, r := range f.Roots {
		walk(r, 0)
	}

	return m
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Toggle):
		if len(m.rows) > 0 {
			m.toggle(m.rows[m.cursor].node)
		}
	case key.Matches(keyMsg, pickerKeys.All):
		for _, r := range m.rows {
			if r.node.IsLeaf() {
				m.selected[r.node] = true
			}
		}
	case key.Matches(keyMsg, pickerKeys.None):
		for leaf := range m.selected {
			delete(m.selected, leaf)
		}
	case key.Matches(keyMsg, pickerKeys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Abort):
		m.aborted = true
		return m, tea.Quit
	}

	return m, nil
}

// toggle flips a node's leaf closure: everything on if anything was off,
// everything off otherwise.
func (m PickerModel) toggle(n *hierarchy.Node) {
	leaves := n.Leaves()

	allSelected := true
	for _, leaf := range leaves {
		if !m.selected[leaf] {
			allSelected = false
			break
		}
	}

	for _, leaf := range leaves {
		if allSelected {
			delete(m.selected, leaf)
		} else {
			m.selected[leaf] = true
		}
	}
}

func (m PickerModel) View() string {
	var sb strings.Builder

	for i, r := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		line := checkbox(m.checkState(r.node)) + " " + strings.Repeat("  ", r.depth) + r.node.Name
		if m.checkState(r.node) == checkAll {
			line = selectedStyle.Render(line)
		}

		sb.WriteString(cursor + line + "\n")
	}

	sb.WriteString(helpStyle.Render("space toggle · a all · n none · enter confirm · q abort"))
	sb.WriteString("\n")

	return sb.String()
}

type checkState int

const (
	checkNone checkState = iota
	checkSome
	checkAll
)

func (m PickerModel) checkState(n *hierarchy.Node) checkState {
	leaves := n.Leaves()

	count := 0
	for _, leaf := range leaves {
		if m.selected[leaf] {
			count++
		}
	}

	switch count {
	case 0:
		return checkNone
	case len(leaves):
		return checkAll
	default:
		return checkSome
	}
}

func checkbox(state checkState) string {
	switch state {
	case checkAll:
		return "[x]"
	case checkSome:
		return "[~]"
	default:
		return "[ ]"
	}
}

// Selection returns the selected leaves in forest order.
func (m PickerModel) Selection() []*hierarchy.Node {
	var leaves []*hierarchy.Node
	for _, r := range m.rows {
		if r.node.IsLeaf() && m.selected[r.node] {
			leaves = append(leaves, r.node)
		}
	}
	return leaves
}

// Pick runs the tree multi-select and returns the chosen leaves.
func Pick(f *hierarchy.Forest) ([]*hierarchy.Node, error) {
	final, err := tea.NewProgram(NewPicker(f)).Run()
	if err != nil {
		return nil, err
	}

	m := final.(PickerModel)
	if m.aborted {
		return nil, ErrAborted
	}

	return m.Selection(), nil
}
