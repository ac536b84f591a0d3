package rendering

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/porygon"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	HighlightedColor = lipgloss.Color("33")
	BlackTextColor   = lipgloss.Color("0")
	ErrorColor       = lipgloss.Color("160")

	ButtonStyle            = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center)
	HighlightedButtonStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder(), true).Width(30).Padding(1, 3).Align(lipgloss.Center).Foreground(HighlightedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(4).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(4)

	PanelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder(), true).Padding(0, 2)
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightedColor)
	ErrorStyle = lipgloss.NewStyle().Foreground(ErrorColor)

	typeBadgeStyle = lipgloss.NewStyle().Padding(0, 1).Width(10).Align(lipgloss.Center)

	// Colors each type is usually drawn with
	TypeColors = map[string]lipgloss.Color{
		porygon.TYPENAME_NORMAL:   lipgloss.Color("#A8A77A"),
		porygon.TYPENAME_FIRE:     lipgloss.Color("#EE8130"),
		porygon.TYPENAME_WATER:    lipgloss.Color("#6390F0"),
		porygon.TYPENAME_ELECTRIC: lipgloss.Color("#F7D02C"),
		porygon.TYPENAME_GRASS:    lipgloss.Color("#7AC74C"),
		porygon.TYPENAME_ICE:      lipgloss.Color("#96D9D6"),
		porygon.TYPENAME_FIGHTING: lipgloss.Color("#C22E28"),
		porygon.TYPENAME_POISON:   lipgloss.Color("#A33EA1"),
		porygon.TYPENAME_GROUND:   lipgloss.Color("#E2BF65"),
		porygon.TYPENAME_FLYING:   lipgloss.Color("#A98FF3"),
		porygon.TYPENAME_PSYCHIC:  lipgloss.Color("#F95587"),
		porygon.TYPENAME_BUG:      lipgloss.Color("#A6B91A"),
		porygon.TYPENAME_ROCK:     lipgloss.Color("#B6A136"),
		porygon.TYPENAME_GHOST:    lipgloss.Color("#735797"),
		porygon.TYPENAME_DRAGON:   lipgloss.Color("#6F35FC"),
		porygon.TYPENAME_DARK:     lipgloss.Color("#705746"),
		porygon.TYPENAME_STEEL:    lipgloss.Color("#B7B7CE"),
		porygon.TYPENAME_FAIRY:    lipgloss.Color("#D685AD"),
	}
)

func Center(width int, height int, text string) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
}

func GlobalCenter(text string) string {
	return Center(global.TERM_WIDTH, global.TERM_HEIGHT, text)
}

func CenterBlock(block string, text string) string {
	w, h := lipgloss.Size(block)
	return Center(w, h, text)
}

// BestTextColor picks black or white text for a hex background color. Non hex colors get white text.
// lipgloss.Color.RGBA goes through the terminal's color profile and is all zeros without a TTY, so parse the hex instead.
func BestTextColor(backgroundColor lipgloss.Color) lipgloss.Color {
	background, err := colorful.Hex(string(backgroundColor))
	if err != nil {
		return lipgloss.Color("#FFFFFF")
	}

	// thanks https://andrisignorell.github.io/DescTools/reference/TextContrastColor.html
	mean := (background.R + background.G + background.B) / 3 * 255

	if mean < 127 {
		return lipgloss.Color("#FFFFFF")
	} else {
		return lipgloss.Color("#000000")
	}
}

func Title(s string) string {
	return cases.Title(language.English).String(s)
}

// TypeBadge draws a type name on its type color
func TypeBadge(typeName string) string {
	color, ok := TypeColors[strings.ToLower(typeName)]
	if !ok {
		return typeBadgeStyle.Render(Title(typeName))
	}

	return typeBadgeStyle.Background(color).Foreground(BestTextColor(color)).Render(Title(typeName))
}

func TypeBadges(typeNames []string) string {
	badges := make([]string, 0, len(typeNames))
	for _, t := range typeNames {
		badges = append(badges, TypeBadge(t))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

// ScoreBar draws a 0-100 score as a bar of width cells
func ScoreBar(label string, score float64, width int) string {
	filled := int(math.Round(math.Max(0, math.Min(score, 100)) / 100 * float64(width)))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	return fmt.Sprintf("%-18s %s %5.1f", label, bar, score)
}
