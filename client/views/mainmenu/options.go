package mainmenu

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/broadside/client/global"
	"github.com/nathanieltooley/broadside/client/rendering"
	"github.com/nathanieltooley/broadside/client/rendering/components"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const _MAX_NAME_LENGTH = 20

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus           components.Focus
	shouldShowError bool
	err             error
}

type clearErrorMessage struct {
	t time.Time
}

type optionsErrorMsg struct {
	err error
}

func saveOptions() tea.Cmd {
	if err := global.SaveConfig(global.Opt); err != nil {
		return func() tea.Msg { return optionsErrorMsg{err} }
	}

	log.Info().Interface("config", global.Opt).Msg("options saved")
	return nil
}

// Enter saves the name, space is just a space.
var saveNameKey = key.NewBinding(key.WithKeys(tea.KeyEnter.String()))

type playerNameInput struct {
	label string
	inner textinput.Model
	// points into global.Opt
	name *string
	def  string
}

func newPlayerNameInput(label string, name *string, def string) *playerNameInput {
	inner := textinput.New()
	inner.CharLimit = _MAX_NAME_LENGTH
	inner.Placeholder = def
	inner.SetValue(*name)

	return &playerNameInput{label: label, inner: inner, name: name, def: def}
}

func (p *playerNameInput) Focus() tea.Cmd { return p.inner.Focus() }
func (p *playerNameInput) Blur()          { p.inner.Blur() }

func (p *playerNameInput) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, saveNameKey) {
		name := strings.TrimSpace(p.inner.Value())
		if name == "" {
			name = p.def
		}

		p.inner.SetValue(name)
		*p.name = name
		return saveOptions()
	}

	var cmd tea.Cmd
	p.inner, cmd = p.inner.Update(msg)
	return cmd
}

func (p *playerNameInput) View(focused bool) string {
	label := p.label
	if focused {
		label = rendering.HighlightedItemStyle.Render(label)
	}

	return lipgloss.JoinVertical(lipgloss.Center, label, p.inner.View())
}

type toggleOption struct {
	label string
	// points into global.Opt
	value    *bool
	onToggle func(bool)
}

func (t *toggleOption) Focus() tea.Cmd { return nil }
func (t *toggleOption) Blur()          {}

func (t *toggleOption) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, global.SelectKey) {
		*t.value = !*t.value
		if t.onToggle != nil {
			t.onToggle(*t.value)
		}

		return saveOptions()
	}

	return nil
}

func (t *toggleOption) View(focused bool) string {
	box := "[ ]"
	if *t.value {
		box = "[x]"
	}

	if focused {
		return rendering.HighlightedItemStyle.Render(box + " " + t.label)
	}
	return rendering.ItemStyle.Render(box + " " + t.label)
}

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	return optionsMenuModel{
		backtrack: backtrack,
		focus: components.NewFocus(
			newPlayerNameInput("Player One Name", &global.Opt.PlayerOneName, "Player 1"),
			newPlayerNameInput("Player Two Name", &global.Opt.PlayerTwoName, "Player 2"),
			&toggleOption{label: "Pass-the-terminal screen before player two places", value: &global.Opt.ShowPlacementHandoff},
			&toggleOption{label: "Debug logging", value: &global.Opt.Debug, onToggle: func(debug bool) {
				if debug {
					global.UpdateLogLevel(zerolog.DebugLevel)
				} else {
					global.UpdateLogLevel(zerolog.InfoLevel)
				}
			}},
		),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	}

	views := append([]string{rendering.TitleStyle.Render("Options")}, m.focus.Views()...)
	views = append(views, rendering.SubtleStyle.Render("tab / shift+tab to move, enter to save, esc to go back"))

	return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, views...))
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearErrorMessage:
		m.shouldShowError = false
		m.err = nil
		return m, nil
	case optionsErrorMsg:
		return m, m.showError(msg.err)
	case tea.KeyMsg:
		if m.shouldShowError {
			return m, nil
		}

		switch {
		case key.Matches(msg, global.DownTabKey):
			return m, m.focus.Next()
		case key.Matches(msg, global.UpTabKey):
			return m, m.focus.Prev()
		case key.Matches(msg, global.BackKey):
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	return m, m.focus.Update(msg)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.shouldShowError = true
	m.err = err

	log.Err(err).Msg("error in options")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
