package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// Breadcrumbs is a stack of views to go back to.
// Push and PushNew return the modified copy; Pop does not.
type Breadcrumbs struct {
	backtrace []func() tea.Model
}

func NewBreadcrumb() Breadcrumbs {
	return Breadcrumbs{}
}

func (b Breadcrumbs) Push(model tea.Model) Breadcrumbs {
	return b.PushNew(func() tea.Model {
		return model
	})
}

// Push a function that creates a new model onto the stack.
func (b Breadcrumbs) PushNew(modelFunc func() tea.Model) Breadcrumbs {
	b.backtrace = append(b.backtrace, modelFunc)
	log.Debug().Int("depth", len(b.backtrace)).Msg("breadcrumb push")

	return b
}

// Returns a pointer for an optional nil value
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

func (b Breadcrumbs) Len() int {
	return len(b.backtrace)
}
