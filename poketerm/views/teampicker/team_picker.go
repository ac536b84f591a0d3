package teampicker

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/poketerm/rendering/components"
	"github.com/nathanieltooley/porycalc/poketerm/shared/teamfs"
	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/rs/zerolog/log"
)

// OnPick creates the view shown once a team is chosen.
// backtrack leads back to the picker.
type OnPick func(team []porygon.Battler, backtrack components.Breadcrumbs) tea.Model

type TeamPickerModel struct {
	backtrack components.Breadcrumbs
	title     string
	onPick    OnPick

	teams list.Model
	err   error
}

type clearErrorMessage struct{}

func NewModel(title string, backtrack components.Breadcrumbs, onPick OnPick) TeamPickerModel {
	saveLocation := global.Opt.TeamSaveLocation

	if err := teamfs.SeedDemoTeam(saveLocation); err != nil {
		log.Err(err).Str("location", saveLocation).Msg("could not seed the demo team")
	}

	names, err := teamfs.TeamNames(saveLocation)
	if err != nil {
		log.Err(err).Str("location", saveLocation).Msg("could not load saved teams")
	}

	items := make([]rendering.SimpleItem, 0, len(names))
	teams, _ := teamfs.LoadTeamMap(saveLocation)
	for _, name := range names {
		items = append(items, rendering.SimpleItem{Name: name, Detail: fmt.Sprintf("(%d)", len(teams[name]))})
	}

	return TeamPickerModel{
		backtrack: backtrack,
		title:     title,
		onPick:    onPick,
		teams:     rendering.NewSimpleList(items, 40, 12),
		err:       err,
	}
}

func (m TeamPickerModel) Init() tea.Cmd { return nil }

func (m TeamPickerModel) View() string {
	body := m.teams.View()
	if len(m.teams.Items()) == 0 {
		body = "No saved teams"
	}

	views := []string{rendering.TitleStyle.Render(m.title), "Pick a team", body}
	if m.err != nil {
		views = append(views, rendering.ErrorStyle.Render(m.err.Error()))
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, views...))
}

func (m TeamPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearErrorMessage:
		m.err = nil
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}

		if key.Matches(msg, global.SelectKey) {
			return m.pick()
		}
	}

	var cmd tea.Cmd
	m.teams, cmd = m.teams.Update(msg)

	return m, cmd
}

func (m TeamPickerModel) pick() (tea.Model, tea.Cmd) {
	item, ok := m.teams.SelectedItem().(rendering.SimpleItem)
	if !ok {
		return m, nil
	}

	saved, err := teamfs.LoadTeam(global.Opt.TeamSaveLocation, item.Name)
	if err != nil {
		return m.showError(err)
	}

	team, err := teamfs.ResolveTeam(global.Dex, saved, global.Opt.DefaultLevel)
	if err != nil {
		return m.showError(err)
	}

	log.Info().Str("team", item.Name).Int("size", len(team)).Msg("picked team")

	return m.onPick(team, m.backtrack.Push(m)), nil
}

func (m TeamPickerModel) showError(err error) (tea.Model, tea.Cmd) {
	m.err = err
	log.Err(err).Msg("error picking team")

	return m, tea.Tick(time.Second*2, func(time.Time) tea.Msg {
		return clearErrorMessage{}
	})
}
