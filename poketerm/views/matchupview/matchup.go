package matchupview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/poketerm/rendering/components"
	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/samber/lo"
)

type mode int

const (
	MODE_DEFENSIVE mode = iota
	MODE_OFFENSIVE
)

// MatchupModel looks up how types fare. Defensive mode classifies one or two defending types,
// offensive mode lists what a set of move types hits super effectively.
type MatchupModel struct {
	backtrack components.Breadcrumbs

	input textinput.Model
	mode  mode

	result string
	err    error
}

func NewModel(backtrack components.Breadcrumbs) MatchupModel {
	input := textinput.New()
	input.Placeholder = "fire flying"
	input.Focus()

	return MatchupModel{
		backtrack: backtrack,
		input:     input,
	}
}

// ParseTypes splits user input on spaces, commas and slashes
func ParseTypes(input string) []string {
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/'
	})

	return lo.Map(fields, func(f string, _ int) string {
		return strings.ToLower(f)
	})
}

func (m MatchupModel) Init() tea.Cmd { return textinput.Blink }

func (m MatchupModel) View() string {
	title := "Defensive Matchups"
	prompt := "Enter one or two defending types"
	if m.mode == MODE_OFFENSIVE {
		title = "Offensive Coverage"
		prompt = "Enter your move types"
	}

	views := []string{rendering.TitleStyle.Render(title), prompt, m.input.View()}
	if m.err != nil {
		views = append(views, rendering.ErrorStyle.Render(m.err.Error()))
	} else if m.result != "" {
		views = append(views, m.result)
	}
	views = append(views, "tab: switch mode  enter: look up  esc: back")

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, views...))
}

func (m MatchupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}

		if key.Matches(msg, global.DownTabKey, global.UpTabKey) {
			if m.mode == MODE_DEFENSIVE {
				m.mode = MODE_OFFENSIVE
			} else {
				m.mode = MODE_DEFENSIVE
			}
			m.result = ""
			m.err = nil

			return m, nil
		}

		if key.Matches(msg, global.SelectKey) {
			m.result, m.err = m.lookup(ParseTypes(m.input.Value()))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m MatchupModel) lookup(types []string) (string, error) {
	if m.mode == MODE_OFFENSIVE {
		covered, err := porygon.OffensiveCoverageStrict(types...)
		if err != nil {
			return "", err
		}

		return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("Super effective against %d / %d types", len(covered), len(porygon.TYPE_ORDER)),
			rendering.TypeBadges(covered),
		)), nil
	}

	classification, err := porygon.ClassifyStrict(types...)
	if err != nil {
		return "", err
	}

	return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		bucket("Weak", classification.Weak, types),
		bucket("Resists", classification.Resistant, types),
		bucket("Immune", classification.Immune, types),
	)), nil
}

func bucket(label string, attackTypes []string, defendingTypes []string) string {
	if len(attackTypes) == 0 {
		return fmt.Sprintf("%s: none", label)
	}

	lines := []string{label + ":"}
	for _, attackType := range attackTypes {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			rendering.TypeBadge(attackType),
			fmt.Sprintf(" x%g", porygon.Multiplier(attackType, defendingTypes...)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
