package components

import tea "github.com/charmbracelet/bubbletea"

// Focusable is one field of a form. Only the focused field sees key presses.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
	Update(tea.Msg) tea.Cmd
	View(focused bool) string
}

// Focus cycles key input between a list of fields. Items are held by pointer so
// copies of the owning model share field state.
type Focus struct {
	index int
	items []Focusable
}

func NewFocus(items ...Focusable) Focus {
	f := Focus{items: items}
	if len(items) > 0 {
		items[0].Focus()
	}

	return f
}

func (f *Focus) Next() tea.Cmd {
	return f.move(1)
}

func (f *Focus) Prev() tea.Cmd {
	return f.move(-1)
}

func (f *Focus) move(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}

	f.items[f.index].Blur()
	f.index = (f.index + delta + len(f.items)) % len(f.items)

	return f.items[f.index].Focus()
}

func (f Focus) Index() int {
	return f.index
}

func (f Focus) Update(msg tea.Msg) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}

	return f.items[f.index].Update(msg)
}

func (f Focus) Views() []string {
	views := make([]string, len(f.items))
	for i, item := range f.items {
		views[i] = item.View(i == f.index)
	}

	return views
}
