package main

import (
	"embed"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nathanieltooley/porycalc/poketerm/global"
	"github.com/nathanieltooley/porycalc/poketerm/views/mainmenu"
	"github.com/rs/zerolog/log"
)

//go:embed data
var dataFiles embed.FS

type model struct {
	currentView tea.Model
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		global.TERM_WIDTH = msg.Width
		global.TERM_HEIGHT = msg.Height
	}

	newView, cmd := m.currentView.Update(msg)
	m.currentView = newView

	return m, cmd
}

func (m model) View() string {
	return m.currentView.View()
}

func main() {
	if err := global.GlobalInit(dataFiles, true); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load pokemon data: %s\n", err)
		os.Exit(1)
	}

	m := model{
		currentView: mainmenu.NewModel(),
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Err(err).Msg("error running program")
		fmt.Fprintf(os.Stderr, "Error running program: %s\n", err)
		os.Exit(1)
	}
}
