package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
)

type ViewButton struct {
	Name    string
	OnClick func() (tea.Model, tea.Cmd)
}

type MenuButtons struct {
	buttons []ViewButton
	index   int
}

func NewMenuButton(buttons []ViewButton) MenuButtons {
	return MenuButtons{
		buttons: buttons,
	}
}

func (m MenuButtons) Index() int {
	return m.index
}

// MenuButtons only return a non nil model when a button is selected
func (m *MenuButtons) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.MoveDownKey, global.DownTabKey) {
			m.index++
			if m.index >= len(m.buttons) {
				m.index = 0
			}
		}

		if key.Matches(msg, global.MoveUpKey, global.UpTabKey) {
			m.index--

			if m.index < 0 {
				m.index = len(m.buttons) - 1
			}
		}

		if key.Matches(msg, global.SelectKey) && m.index >= 0 && m.index < len(m.buttons) {
			return m.buttons[m.index].OnClick()
		}
	}

	return nil, nil
}

func (m MenuButtons) View() string {
	views := make([]string, len(m.buttons))
	for i, button := range m.buttons {
		if i == m.index {
			views[i] = rendering.HighlightedButtonStyle.Render(button.Name)
		} else {
			views[i] = rendering.ButtonStyle.Render(button.Name)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, views...)
}
