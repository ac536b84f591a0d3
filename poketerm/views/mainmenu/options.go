package mainmenu

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/rendering"
	"github.com/nathanieltooley/porycalc/poketerm/rendering/components"
	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type optionsMenuModel struct {
	backtrack components.Breadcrumbs

	focus           components.FocusRing
	shouldShowError bool
	err             error
}

type clearErrorMessage struct {
	t time.Time
}

type saveLocationInput struct {
	inner textinput.Model
}

func (s *saveLocationInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := make([]tea.Cmd, 0)

	s.inner.Focus()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) && s.inner.Value() != "" {
			saveLocation, err := resolveSaveLocation(s.inner.Value())
			if err != nil {
				cmds = append(cmds, opM.showError(err))
			} else {
				global.Opt.TeamSaveLocation = saveLocation
				if err := global.SaveConfig(global.Opt); err != nil {
					cmds = append(cmds, opM.showError(err))
				}

				s.inner.SetValue(saveLocation)
			}
		}
	}

	var uCmd tea.Cmd
	s.inner, uCmd = s.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

// resolveSaveLocation keeps the directory of input, relative to the config dir if it isn't absolute,
// creates it and points at the teams file inside
func resolveSaveLocation(input string) (string, error) {
	saveDir := filepath.Clean(filepath.Dir(input))

	if !filepath.IsAbs(saveDir) {
		saveDir = filepath.Join(global.DefaultConfigDir(), saveDir)
	}

	if err := os.MkdirAll(saveDir, 0750); err != nil {
		return "", err
	}

	return filepath.Join(saveDir, "teams.json"), nil
}

func (s *saveLocationInput) Blur() {
	s.inner.Blur()
}

func (s saveLocationInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Save Location", s.inner.View())
}

func (s saveLocationInput) FocusedView() string {
	return s.View()
}

type defaultLevelInput struct {
	inner textinput.Model
}

func (d *defaultLevelInput) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	cmds := []tea.Cmd{d.inner.Focus()}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			level, err := parseLevel(d.inner.Value())
			if err != nil {
				cmds = append(cmds, opM.showError(err))
			} else {
				global.Opt.DefaultLevel = level
				if err := global.SaveConfig(global.Opt); err != nil {
					cmds = append(cmds, opM.showError(err))
				}
			}
		}
	}

	var uCmd tea.Cmd
	d.inner, uCmd = d.inner.Update(msg)
	cmds = append(cmds, uCmd)

	return opM, tea.Batch(cmds...)
}

func parseLevel(input string) (int, error) {
	level, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("level %q is not a number", input)
	}

	if level < porygon.MIN_LEVEL || level > porygon.MAX_LEVEL {
		return 0, fmt.Errorf("level %d is outside %d-%d: %w", level, porygon.MIN_LEVEL, porygon.MAX_LEVEL, porygon.ErrStatRangeInvalid)
	}

	return level, nil
}

func (d *defaultLevelInput) Blur() {
	d.inner.Blur()
}

func (d *defaultLevelInput) View() string {
	return lipgloss.JoinVertical(lipgloss.Center, "Default Level", d.inner.View())
}
func (d *defaultLevelInput) FocusedView() string { return d.View() }

type debugToggle struct {
	focused bool
}

func (d *debugToggle) OnFocus(m tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	opM := m.(optionsMenuModel)
	d.focused = true

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, global.SelectKey) {
			global.Opt.Debug = !global.Opt.Debug

			level := zerolog.InfoLevel
			if global.Opt.Debug {
				level = zerolog.DebugLevel
			}
			global.UpdateLogLevel(level)

			if err := global.SaveConfig(global.Opt); err != nil {
				return opM, opM.showError(err)
			}
		}
	}

	return opM, nil
}

func (d *debugToggle) Blur() {
	d.focused = false
}

func (d *debugToggle) View() string {
	state := "Off"
	if global.Opt.Debug {
		state = "On"
	}

	return lipgloss.JoinVertical(lipgloss.Center, "Debug Logging", state)
}

func (d *debugToggle) FocusedView() string {
	return rendering.HighlightedItemStyle.Render(d.View())
}

func newOptionsMenu(backtrack components.Breadcrumbs) optionsMenuModel {
	prompt := textinput.New()
	prompt.Focus()
	prompt.SetValue(global.Opt.TeamSaveLocation)

	levelPrompt := textinput.New()
	levelPrompt.CharLimit = 3
	levelPrompt.SetValue(strconv.Itoa(global.Opt.DefaultLevel))

	return optionsMenuModel{
		backtrack: backtrack,
		focus:     components.NewFocusRing(&saveLocationInput{prompt}, &defaultLevelInput{levelPrompt}, &debugToggle{}),
	}
}

func (m optionsMenuModel) Init() tea.Cmd { return nil }
func (m optionsMenuModel) View() string {
	if m.shouldShowError {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, "Error!", rendering.ButtonStyle.Render(m.err.Error())))
	} else {
		return rendering.GlobalCenter(lipgloss.JoinVertical(lipgloss.Center, m.focus.Views()...))
	}
}

func (m optionsMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0)

	switch msg := msg.(type) {
	case clearErrorMessage:
		m.shouldShowError = false
		m.err = nil
	case tea.KeyMsg:
		if m.shouldShowError {
			return m, nil
		}

		// the newly focused widget still gets the key below so it can take focus
		m.focus.HandleKeys(msg)

		if key.Matches(msg, global.BackKey) {
			return m.backtrack.PopDefault(func() tea.Model { return m }), nil
		}
	}

	newModel, focusCmd := m.focus.Update(m, msg)
	m = newModel.(optionsMenuModel)
	cmds = append(cmds, focusCmd)

	return m, tea.Batch(cmds...)
}

func (m *optionsMenuModel) showError(err error) tea.Cmd {
	m.shouldShowError = true
	m.err = err

	log.Err(err).Msg("error in options")

	return tea.Tick(time.Second*2, func(t time.Time) tea.Msg {
		return clearErrorMessage{t}
	})
}
