package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/gridsheet/internal/config"
	"github.com/young1lin/gridsheet/internal/grid"
	"github.com/young1lin/gridsheet/internal/store"
	"github.com/young1lin/gridsheet/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	ConfigPath string
	// Flag overrides; empty values keep the config file setting
	Filter   string
	LogFile  string
	SeedPath string
	NoWatch  bool

	ConfigLoader   func(string) (*config.Config, error)
	DBOpener       func(string) (*store.DB, error)
	LogOpener      func(string) (io.WriteCloser, error)
	WatcherCreator func(string) (config.WatcherInterface, error)
	ProgramRunner  func(*tea.Program) error
}

func run(deps *AppDependencies) error {
	loadConfig := deps.ConfigLoader
	if loadConfig == nil {
		loadConfig = config.Load
	}

	cfg, err := loadConfig(deps.ConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyOverrides(cfg, deps); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(deps, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	records, err := loadRecords(deps, cfg.Seed.Path)
	if err != nil {
		return err
	}
	logger.Info("grid loaded", "records", len(records), "seed", cfg.Seed.Path)

	g := grid.New(records, cfg.GridOptions())
	g.SetFilter(cfg.InitialFilter())

	model := tui.NewModel(g, tui.StylesFromTheme(cfg.Theme), logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if !deps.NoWatch && deps.ConfigPath != "" && deps.WatcherCreator != nil {
		watcher, err := deps.WatcherCreator(deps.ConfigPath)
		if err != nil {
			// hot reload is optional; the grid still runs
			logger.Warn("config watcher not started", "path", deps.ConfigPath, "err", err)
		} else {
			defer watcher.Close()
			go runWatchLoop(p, watcher, logger)
		}
	}

	return deps.ProgramRunner(p)
}

// applyOverrides copies flag values over the loaded config and revalidates it
func applyOverrides(cfg *config.Config, deps *AppDependencies) error {
	if deps.Filter != "" {
		cfg.Filter = deps.Filter
	}
	if deps.LogFile != "" {
		cfg.Log.File = deps.LogFile
	}
	if deps.SeedPath != "" {
		cfg.Seed.Path = deps.SeedPath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// openLogger returns a logger writing to the configured log file. The
// terminal belongs to the TUI, so nothing is logged to stdout or stderr.
func openLogger(deps *AppDependencies, cfg *config.Config) (*slog.Logger, func(), error) {
	path := cfg.Log.File
	if path == "" {
		path = config.DefaultLogFile()
	}

	open := deps.LogOpener
	if open == nil {
		open = openLogFile
	}

	w, err := open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel()})
	return slog.New(handler), func() { _ = w.Close() }, nil
}

func openLogFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// loadRecords reads the seed database, or returns the built-in sample
// records when no seed is configured
func loadRecords(deps *AppDependencies, seedPath string) ([]grid.Record, error) {
	if seedPath == "" {
		return grid.SampleRecords(), nil
	}

	if _, err := os.Stat(seedPath); err != nil {
		return nil, fmt.Errorf("seed database not found: %w", err)
	}

	openDB := deps.DBOpener
	if openDB == nil {
		openDB = store.OpenReadOnly
	}

	db, err := openDB(seedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed database: %w", err)
	}
	defer db.Close()

	records, err := db.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to load seed records: %w", err)
	}
	return records, nil
}

// runWatchLoop forwards config reloads and watcher errors to the program
// until the watcher is closed
func runWatchLoop(sender ProgramSender, watcher config.WatcherInterface, logger *slog.Logger) {
	changes := watcher.Changes()
	errs := watcher.Errors()

	for changes != nil || errs != nil {
		select {
		case cfg, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			logger.Debug("config reloaded")
			sender.Send(tui.ConfigReloadedMsg{Config: cfg})

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Debug("config reload error forwarded", "err", err)
			sender.Send(tui.ConfigErrorMsg{Err: fmt.Errorf("config reload: %w", err)})
		}
	}
}
