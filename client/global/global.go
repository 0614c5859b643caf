package global

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-logr/zerologr"
	"github.com/joho/godotenv"
	"github.com/nathanieltooley/broadside/armada"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

type GlobalConfig struct {
	PlayerOneName string
	PlayerTwoName string
	// Show a "pass the terminal" screen before the second player places their fleet
	ShowPlacementHandoff bool
	Debug                bool
}

var (
	TERM_WIDTH, TERM_HEIGHT, _ = term.GetSize(int(os.Stdout.Fd()))

	SelectKey = key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "place / fire / continue"),
	)
	MoveLeftKey = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "left"),
	)
	MoveRightKey = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "right"),
	)
	MoveDownKey = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	)
	MoveUpKey = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	)
	RotateLeftKey = key.NewBinding(
		key.WithKeys("(", "q"),
		key.WithHelp("(/q", "rotate left"),
	)
	RotateRightKey = key.NewBinding(
		key.WithKeys(")", "e"),
		key.WithHelp(")/e", "rotate right"),
	)

	DownTabKey = key.NewBinding(key.WithKeys(tea.KeyTab.String()))
	UpTabKey   = key.NewBinding(key.WithKeys(tea.KeyShiftTab.String()))

	BackKey = key.NewBinding(key.WithKeys(tea.KeyEsc.String()), key.WithHelp("esc", "menu"))
	HelpKey = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	QuitKey = key.NewBinding(key.WithKeys(tea.KeyCtrlC.String()), key.WithHelp("ctrl+c", "quit"))

	Opt = GlobalConfig{
		PlayerOneName:        "Player 1",
		PlayerTwoName:        "Player 2",
		ShowPlacementHandoff: true,
	}

	initLogger    zerolog.Logger
	previousLevel zerolog.Level
)

// GlobalInit loads the config file, creating it with defaults if needed, and sets up
// logging for both the front end and the engine.
func GlobalInit(shouldLog bool) {
	// Basic logging for config debugging
	initLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	if !shouldLog {
		initLogger = zerolog.Nop()
	}

	// .env is optional, it only exists on dev machines
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		initLogger.Err(err).Msg("error occurred while reading .env")
	}

	configDir := DefaultConfigDir()
	configFilepath := DefaultConfigLocation()

	if err := os.MkdirAll(configDir, 0750); err != nil {
		initLogger.Err(err).Msg("error occurred trying to create config dir")
	}

	config, err := LoadConfig(configFilepath)
	if err != nil {
		initLogger.Err(err).Msg("error occurred while trying to read config file, using defaults")
		config = populateConfig(GlobalConfig{ShowPlacementHandoff: true})

		if err := SaveConfig(config); err != nil {
			initLogger.Err(err).Msg("error occurred while trying to write default config values")
		}
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug || envFlag("BROADSIDE_DEBUG") {
		level = zerolog.DebugLevel
	}

	if shouldLog {
		initLogger = zerolog.New(zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stdout}, createFileWriter(configDir))).
			With().Timestamp().Logger().Level(level)
	}

	// Main global logger
	log.Logger = createLogger(configDir, level)
	setEngineLogger()

	initLogger.Info().Str("config", configFilepath).Str("level", level.String()).Msg("broadside initialized")
}

func createFileWriter(configDir string) zerolog.ConsoleWriter {
	rollingWriter := NewRollingFileWriter(filepath.Join(configDir, "logs/"), "broadside")
	return zerolog.ConsoleWriter{Out: rollingWriter, NoColor: true}
}

func createLogger(configDir string, level zerolog.Level) zerolog.Logger {
	return zerolog.New(createFileWriter(configDir)).With().Timestamp().Caller().Logger().Level(level)
}

// The engine logs through logr, route it into the global zerolog logger.
// V(1) lands on zerolog's debug level and V(2) on trace.
func setEngineLogger() {
	zerologr.SetMaxV(2)
	armada.SetInternalLogger(zerologr.New(&log.Logger))
}

func StopLogging() {
	previousLevel = log.Logger.GetLevel()
	log.Logger = zerolog.Nop()
	setEngineLogger()
}

func ContinueLogging() {
	log.Logger = createLogger(DefaultConfigDir(), previousLevel)
	setEngineLogger()
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
	setEngineLogger()
}

func populateConfig(config GlobalConfig) GlobalConfig {
	if config.PlayerOneName == "" {
		config.PlayerOneName = "Player 1"
	}
	if config.PlayerTwoName == "" {
		config.PlayerTwoName = "Player 2"
	}

	return config
}

func envFlag(name string) bool {
	value, ok := os.LookupEnv(name)
	if !ok {
		return false
	}

	enabled, err := strconv.ParseBool(value)
	return err == nil && enabled
}
