package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/porygon"
)

// TeamView is a vertical list of team members, one panel each
type TeamView struct {
	Team    []porygon.Battler
	Focused bool
	// Shown under each member's name, defaults to their types and level
	Describe func(porygon.Battler) string

	CurrentPokemonIndex int
}

var (
	pokemonTeamStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Align(lipgloss.Center).Width(24)
	highlightedPokemonTeamStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Align(lipgloss.Center).Width(24).BorderForeground(rendering.HighlightedColor)
)

func NewTeamView(team []porygon.Battler) TeamView {
	return TeamView{
		Team:    team,
		Focused: false,
	}
}

func defaultDescription(b porygon.Battler) string {
	return fmt.Sprintf("%s\nLevel: %d", rendering.TypeBadges(b.Types), b.Level)
}

func (m TeamView) Current() (porygon.Battler, bool) {
	if m.CurrentPokemonIndex < 0 || m.CurrentPokemonIndex >= len(m.Team) {
		return porygon.Battler{}, false
	}

	return m.Team[m.CurrentPokemonIndex], true
}

func (m TeamView) Init() tea.Cmd { return nil }
func (m TeamView) View() string {
	describe := m.Describe
	if describe == nil {
		describe = defaultDescription
	}

	teamPanels := make([]string, 0)

	for i, battler := range m.Team {
		panel := fmt.Sprintf("%s\n%s", battler.Name, describe(battler))

		if i == m.CurrentPokemonIndex && m.Focused {
			teamPanels = append(teamPanels, highlightedPokemonTeamStyle.Render(panel))
		} else {
			teamPanels = append(teamPanels, pokemonTeamStyle.Render(panel))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Center, teamPanels...)
}

func (m TeamView) Update(msg tea.Msg) (TeamView, tea.Cmd) {
	if len(m.Team) == 0 {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Focused {
			if key.Matches(msg, global.MoveDownKey) {
				m.CurrentPokemonIndex++

				if m.CurrentPokemonIndex > len(m.Team)-1 {
					m.CurrentPokemonIndex = 0
				}
			}

			if key.Matches(msg, global.MoveUpKey) {
				m.CurrentPokemonIndex--

				if m.CurrentPokemonIndex < 0 {
					m.CurrentPokemonIndex = len(m.Team) - 1
				}
			}
		}
	}

	return m, nil
}
