package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is a stack of the views that led to the current one.
// Views hold a copy and pop it when the user backs out.
type Breadcrumbs struct {
	backtrace []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

// Push a model onto the breadcrumb stack.
// Returns the modified copy.
func (b Breadcrumbs) Push(model tea.Model) Breadcrumbs {
	return b.PushNew(func() tea.Model {
		return model
	})
}

// Push a function that creates a new model onto the stack.
// Returns the modified copy.
func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	// Copy so that sibling views sharing a backtrace don't write over each other
	backtrace := make([]func() tea.Model, len(b.backtrace), len(b.backtrace)+1)
	copy(backtrace, b.backtrace)
	b.backtrace = append(backtrace, modelFunc)

	log.Debug().Int("depth", len(b.backtrace)).Msg("breadcrumb push")

	return b
}

func (b Breadcrumbs) Len() int {
	return len(b.backtrace)
}

// Returns a pointer for an optional nil value
// Does not return the modified version since the primary use case does not use it,
// it uses an older copy of the struct from a previous push
func (b Breadcrumbs) Pop() *tea.Model {
	l := len(b.backtrace)

	if l == 0 {
		return nil
	}

	model := b.backtrace[l-1]()

	log.Debug().Int("depth", l-1).Msg("breadcrumb pop")
	return &model
}

func (b Breadcrumbs) PopDefault(def func() tea.Model) tea.Model {
	poppedModel := b.Pop()

	if poppedModel == nil {
		return def()
	}

	return *poppedModel
}
