package mainmenu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/poketerm/rendering/components"
	"github.com/nathanieltooley/porycalc/poketerm/views/calcview"
	"github.com/nathanieltooley/porycalc/poketerm/views/matchupview"
	"github.com/nathanieltooley/porycalc/poketerm/views/synergyview"
	"github.com/nathanieltooley/porycalc/poketerm/views/teampicker"
	"github.com/nathanieltooley/porycalc/porygon"
)

type MainMenuModel struct {
	buttons components.MenuButtons
}

func NewModel() MainMenuModel {
	backtrack := components.NewBreadcrumb().PushNew(func() tea.Model { return NewModel() })

	buttons := []components.ViewButton{
		{
			Name: "Analyze Team",
			OnClick: func() (tea.Model, tea.Cmd) {
				return teampicker.NewModel("Team Synergy", backtrack, func(team []porygon.Battler, backtrack components.Breadcrumbs) tea.Model {
					return synergyview.NewModel(team, backtrack)
				}), nil
			},
		},
		{
			Name: "Damage Calc",
			OnClick: func() (tea.Model, tea.Cmd) {
				return teampicker.NewModel("Damage Calculator", backtrack, func(team []porygon.Battler, backtrack components.Breadcrumbs) tea.Model {
					return calcview.NewModel(team, backtrack)
				}), nil
			},
		},
		{
			Name: "Type Matchups",
			OnClick: func() (tea.Model, tea.Cmd) {
				matchups := matchupview.NewModel(backtrack)
				return matchups, matchups.Init()
			},
		},
		{
			Name: "Options",
			OnClick: func() (tea.Model, tea.Cmd) {
				return newOptionsMenu(backtrack), nil
			},
		},
		{
			Name: "Help",
			OnClick: func() (tea.Model, tea.Cmd) {
				return newHelpMenu(backtrack), nil
			},
		},
	}

	return MainMenuModel{
		buttons: components.NewMenuButton(buttons),
	}
}

func (m MainMenuModel) Init() tea.Cmd {
	return nil
}

func (m MainMenuModel) View() string {
	header := rendering.TitleStyle.Render("Porycalc")
	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, header, m.buttons.View()))
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, startCmd := m.buttons.Update(msg)
	if newModel != nil {
		return newModel, startCmd
	}

	return m, nil
}
