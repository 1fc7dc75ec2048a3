// Package app wires configuration, logging and the Bubble Tea program.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kyaoi/mdreader/internal/config"
	"github.com/kyaoi/mdreader/internal/logging"
	"github.com/kyaoi/mdreader/internal/ui"
)

// Options carries command line choices.
type Options struct {
	Target     string
	Tag        string
	ConfigPath string
	LogLevel   string
}

// Run executes the Bubble Tea program for the article reader.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.File = cfg.Logging.File
	logger, closeLog, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	state, err := LoadInitialState(opts.Target, opts.Tag, cfg)
	if err != nil {
		logger.Error().Err(err).Str("target", opts.Target).Msg("load articles")
		return fmt.Errorf("load %s: %w", opts.Target, err)
	}
	state.Logger = logger
	logger.Info().Str("target", opts.Target).Int("articles", state.Library.Len()).Msg("starting reader")

	return runProgram(logging.WithContext(ctx, logger), state, cfg.Reader.Mouse)
}

func runProgram(ctx context.Context, state ui.State, mouse bool) error {
	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	program := tea.NewProgram(ui.NewModel(state), programOpts...)
	_, err := program.Run()
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("program exited")
	}
	return err
}
