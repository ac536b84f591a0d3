package calcview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/poketerm/rendering/components"
	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/rs/zerolog/log"
)

var (
	critKey        = key.NewBinding(key.WithKeys("c"))
	weatherKey     = key.NewBinding(key.WithKeys("w"))
	reflectKey     = key.NewBinding(key.WithKeys("r"))
	lightScreenKey = key.NewBinding(key.WithKeys("s"))

	weathers = [...]string{
		porygon.WEATHER_NONE,
		porygon.WEATHER_SUN,
		porygon.WEATHER_RAIN,
		porygon.WEATHER_SAND,
		porygon.WEATHER_SNOW,
	}

	moveNameStyle = lipgloss.NewStyle().Width(16)
	rangeStyle    = lipgloss.NewStyle().Width(12).Align(lipgloss.Right)
	percentStyle  = lipgloss.NewStyle().Width(18).Align(lipgloss.Right)
	koStyle       = lipgloss.NewStyle().PaddingLeft(2)
)

// CalcModel shows every damaging move of one team member used against another
type CalcModel struct {
	backtrack components.Breadcrumbs

	team          []porygon.Battler
	attackerIndex int
	defenderIndex int

	weatherIndex int
	mods         porygon.DamageModifiers
}

func NewModel(team []porygon.Battler, backtrack components.Breadcrumbs) CalcModel {
	m := CalcModel{
		backtrack: backtrack,
		team:      team,
	}

	if len(team) > 1 {
		m.defenderIndex = 1
	}

	return m
}

func (m CalcModel) Attacker() porygon.Battler {
	return m.team[m.attackerIndex]
}

func (m CalcModel) Defender() porygon.Battler {
	return m.team[m.defenderIndex]
}

func (m CalcModel) Modifiers() porygon.DamageModifiers {
	return m.mods
}

func (m CalcModel) Results() []porygon.MoveDamage {
	if len(m.team) == 0 {
		return nil
	}

	return porygon.RankMoves(m.Attacker(), m.Defender(), m.mods)
}

func (m CalcModel) Init() tea.Cmd { return nil }

func (m CalcModel) View() string {
	if len(m.team) == 0 {
		return rendering.GlobalCenter("This team has no members")
	}

	attacker := m.Attacker()
	defender := m.Defender()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		memberPanel(attacker),
		"  vs  ",
		memberPanel(defender),
	)

	rows := []string{rendering.TitleStyle.Render("Moves")}
	results := m.Results()
	for _, result := range results {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			moveNameStyle.Render(result.Move.Name),
			rendering.TypeBadge(result.Move.Type),
			rangeStyle.Render(fmt.Sprintf("%d-%d", result.Result.Min, result.Result.Max)),
			percentStyle.Render(fmt.Sprintf("%.1f%%-%.1f%%", result.Result.MinPercent, result.Result.MaxPercent)),
			koStyle.Render(result.Result.KOChance.String()),
		))
	}
	if len(results) == 0 {
		rows = append(rows, "No damaging moves")
	}

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center,
		header,
		m.modifierView(),
		rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		"h/l: attacker  j/k: defender  c: crit  w: weather  r: reflect  s: light screen",
	))
}

func (m CalcModel) modifierView() string {
	weather := m.mods.Weather
	if weather == "" {
		weather = porygon.WEATHER_NONE
	}

	return fmt.Sprintf("Weather: %s  Crit: %s  Reflect: %s  Light Screen: %s",
		rendering.Title(weather), onOff(m.mods.Critical), onOff(m.mods.Reflect), onOff(m.mods.LightScreen))
}

func (m CalcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}

		if len(m.team) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, global.MoveLeftKey):
			m.attackerIndex = wrap(m.attackerIndex-1, len(m.team))
		case key.Matches(msg, global.MoveRightKey):
			m.attackerIndex = wrap(m.attackerIndex+1, len(m.team))
		case key.Matches(msg, global.MoveUpKey):
			m.defenderIndex = wrap(m.defenderIndex-1, len(m.team))
		case key.Matches(msg, global.MoveDownKey):
			m.defenderIndex = wrap(m.defenderIndex+1, len(m.team))
		case key.Matches(msg, critKey):
			m.mods.Critical = !m.mods.Critical
		case key.Matches(msg, weatherKey):
			m.weatherIndex = wrap(m.weatherIndex+1, len(weathers))
			m.mods.Weather = weathers[m.weatherIndex]
		case key.Matches(msg, reflectKey):
			m.mods.Reflect = !m.mods.Reflect
		case key.Matches(msg, lightScreenKey):
			m.mods.LightScreen = !m.mods.LightScreen
		default:
			return m, nil
		}

		log.Debug().
			Str("attacker", m.Attacker().Name).
			Str("defender", m.Defender().Name).
			Interface("mods", m.mods).
			Msg("damage calc updated")
	}

	return m, nil
}

func memberPanel(b porygon.Battler) string {
	return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Center,
		b.Name,
		rendering.TypeBadges(b.Types),
		fmt.Sprintf("HP %d  Atk %d  Def %d", b.Stats.Hp, b.Stats.Attack, b.Stats.Def),
		fmt.Sprintf("SpA %d  SpD %d  Spe %d", b.Stats.SpAttack, b.Stats.SpDef, b.Stats.Speed),
	))
}

func onOff(b bool) string {
	if b {
		return "on"
	}

	return "off"
}

func wrap(i int, length int) int {
	return (i%length + length) % length
}
