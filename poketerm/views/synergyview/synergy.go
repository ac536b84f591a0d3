package synergyview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/poketerm/rendering/components"
	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/rs/zerolog/log"
)

const barWidth = 20

type SynergyModel struct {
	backtrack components.Breadcrumbs

	team     components.TeamView
	analysis porygon.TeamAnalysis
}

func NewModel(team []porygon.Battler, backtrack components.Breadcrumbs) SynergyModel {
	analysis, err := porygon.AnalyzeStrict(team)
	if err != nil {
		log.Warn().Err(err).Msg("analyzing an oversized team, only the first members are scored")
		analysis = porygon.Analyze(team[:porygon.MAX_TEAM_SIZE])
	}

	teamView := components.NewTeamView(team)
	teamView.Describe = func(b porygon.Battler) string {
		return fmt.Sprintf("%s\n%s", rendering.TypeBadges(b.Types), porygon.DetectRole(b))
	}

	return SynergyModel{
		backtrack: backtrack,
		team:      teamView,
		analysis:  analysis,
	}
}

func (m SynergyModel) Init() tea.Cmd { return nil }

func (m SynergyModel) View() string {
	return rendering.GlobalCenter(lipgloss.JoinHorizontal(lipgloss.Top,
		m.team.View(),
		lipgloss.JoinVertical(lipgloss.Left,
			scoreView(m.analysis.Score),
			rolesView(m.analysis.Roles),
			weaknessView(m.analysis.WeaknessOverlap),
			suggestionView(m.analysis.Suggestions),
		),
	))
}

func (m SynergyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	return m, nil
}

func scoreView(score porygon.SynergyScore) string {
	return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		rendering.TitleStyle.Render(fmt.Sprintf("Synergy: %d / 100", score.Overall)),
		rendering.ScoreBar("Type Coverage", score.TypeCoverage, barWidth),
		rendering.ScoreBar("Role Balance", score.RoleBalance, barWidth),
		rendering.ScoreBar("Weakness Coverage", score.WeaknessCoverage, barWidth),
		rendering.ScoreBar("Speed Tiers", score.SpeedTiers, barWidth),
		rendering.ScoreBar("Move Coverage", score.MoveCoverage, barWidth),
	))
}

func rolesView(roles []porygon.RoleGroup) string {
	lines := []string{rendering.TitleStyle.Render("Roles")}
	for _, group := range roles {
		lines = append(lines, fmt.Sprintf("%s (%d): %s", group.Role, group.Count, strings.Join(group.Members, ", ")))
	}

	return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func weaknessView(weaknesses []porygon.WeaknessOverlap) string {
	lines := []string{rendering.TitleStyle.Render("Shared Weaknesses")}
	for _, w := range weaknesses {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			rendering.TypeBadge(w.Type),
			fmt.Sprintf(" x%d  %s", w.Count, strings.Join(w.Members, ", ")),
		))
	}

	return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func suggestionView(suggestions []string) string {
	lines := []string{rendering.TitleStyle.Render("Suggestions")}
	for _, s := range suggestions {
		lines = append(lines, "- "+s)
	}

	return rendering.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
