package global

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/porycalc/porygon"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()))

	Opt = GlobalConfig{
		TeamSaveLocation: "",
		DefaultLevel:     porygon.MAX_LEVEL,
	}

	// Species and moves loaded at startup, read only afterwards
	Dex = porygon.NewDex(nil, nil)

	initLogger    zerolog.Logger
	previousLevel zerolog.Level
)

// GlobalInit reads the config, sets up logging and loads the dex from files.
// Errors that stop the dex from loading are returned joined together.
func GlobalInit(files fs.FS, shouldLog bool) error {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout}

	configDir := DefaultConfigDir()

	// Basic logging for config debugging
	initLogger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occured trying to create config dir")
	}

	config, err := loadConfig(configDir, DefaultConfigLocation())
	if err != nil {
		initLogger.Err(err).Msg("error occurred while loading config, using defaults")
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	// Main global logger
	log.Logger = createLogger(configDir, level)
	if !shouldLog {
		log.Logger = zerolog.Nop()
	}
	bindEngineLogger(Opt.Debug)

	dex, errs := porygon.DefaultLoader(files)
	if len(errs) > 0 {
		for _, err := range errs {
			initLogger.Err(err).Msg("error loading pokemon data")
		}

		return errors.Join(errs...)
	}

	Dex = dex
	initLogger.Info().Int("species", len(Dex.AllSpecies())).Msg("Loaded pokemon data")

	return nil
}

// bindEngineLogger routes porygon's logr output into the global zerolog logger.
// Calculation traces (V(2)) only show up in debug mode.
func bindEngineLogger(debug bool) {
	if debug {
		zerologr.SetMaxV(2)
	} else {
		zerologr.SetMaxV(0)
	}

	engineLogger := log.Logger.With().Str("location", "engine").Logger()
	porygon.SetInternalLogger(zerologr.New(&engineLogger))
}

func createFileWriter(configDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "porycalc")
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Logger().Level(level)
}

func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = zerolog.Nop()
	porygon.SetInternalLogger(zerologr.New(&log.Logger))
}

func ContinueLogging() {
	log.Logger = createLogger(DefaultConfigDir(), previousLevel)
	bindEngineLogger(Opt.Debug)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
	bindEngineLogger(level <= zerolog.DebugLevel)
}
