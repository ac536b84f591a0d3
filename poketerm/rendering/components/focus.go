package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/porycalc/poketerm/global"
)

type Focusable interface {
	OnFocus(tea.Model, tea.Msg) (tea.Model, tea.Cmd)
	Blur()
	View() string
	FocusedView() string
}

// FocusRing sends input to one of its widgets at a time. Tab and shift+tab move around the ring,
// blurring the widget that is left. A ring always has at least one widget.
type FocusRing struct {
	items []Focusable
	index int
}

func NewFocusRing(first Focusable, rest ...Focusable) FocusRing {
	return FocusRing{items: append([]Focusable{first}, rest...)}
}

func (f FocusRing) Index() int {
	return f.index
}

func (f *FocusRing) Move(delta int) {
	f.items[f.index].Blur()

	n := len(f.items)
	f.index = ((f.index+delta)%n + n) % n
}

// HandleKeys moves focus on tab and shift+tab and reports whether msg was one of them
func (f *FocusRing) HandleKeys(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}

	switch {
	case key.Matches(keyMsg, global.DownTabKey):
		f.Move(1)
	case key.Matches(keyMsg, global.UpTabKey):
		f.Move(-1)
	default:
		return false
	}

	return true
}

// Update hands msg to the focused widget, which gets the owning model m to modify and return
func (f FocusRing) Update(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	return f.items[f.index].OnFocus(m, msg)
}

func (f FocusRing) Views() []string {
	views := make([]string, len(f.items))
	for i, item := range f.items {
		if i == f.index {
			views[i] = item.FocusedView()
		} else {
			views[i] = item.View()
		}
	}

	return views
}
