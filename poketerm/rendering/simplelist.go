package rendering

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SimpleItem is a list item that is just its name, with an optional detail shown next to it
type SimpleItem struct {
	Name   string
	Detail string
}

func (i SimpleItem) FilterValue() string { return i.Name }

type simpleDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style
	DetailStyle          lipgloss.Style

	spacing int
}

func (d simpleDelegate) Height() int {
	// Get the smaller style's height
	height := math.Min(float64(d.ItemStyle.GetHeight()), float64(d.HighlightedItemStyle.GetHeight()))
	// Make sure the height is atleast 1
	intHeight := int(math.Max(1, height))
	return intHeight
}
func (d simpleDelegate) Spacing() int                            { return d.spacing }
func (d simpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d simpleDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	style := d.ItemStyle
	if index == m.Index() {
		style = d.HighlightedItemStyle
	}

	text := style.Render(listItem.FilterValue())
	if item, ok := listItem.(SimpleItem); ok && item.Detail != "" {
		text = lipgloss.JoinHorizontal(lipgloss.Top, text, " ", d.DetailStyle.Render(item.Detail))
	}

	fmt.Fprint(w, text)
}

func (d *simpleDelegate) SetSpacing(spacing int) {
	d.spacing = spacing
}

func NewSimpleListDelegate() simpleDelegate {
	return simpleDelegate{HighlightedItemStyle, ItemStyle, lipgloss.NewStyle().Faint(true), 0}
}

// NewSimpleList creates a list of SimpleItems without the bubbles chrome
func NewSimpleList(items []SimpleItem, width int, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	l := list.New(listItems, NewSimpleListDelegate(), width, height)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)

	return l
}
