package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"mosaic/internal/config"
	"mosaic/internal/dispatch"
	"mosaic/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	model Model
	loop  *dispatch.Loop
}

// New creates a new TUI application
func New(cfg *config.Config, logger *logging.Logger) (*App, error) {
	opts := []dispatch.Option{dispatch.WithLogger(logger)}
	if cfg.Dispatch.QueueSize > 0 {
		opts = append(opts, dispatch.WithQueueSize(cfg.Dispatch.QueueSize))
	}
	loop := dispatch.NewLoop(opts...)

	model, err := NewModel(cfg, logger, loop)
	if err != nil {
		return nil, err
	}
	return &App{model: model, loop: loop}, nil
}

// Run starts the UI dispatcher and the TUI application
func (a *App) Run() error {
	if err := a.loop.Start(context.Background()); err != nil {
		return err
	}
	defer a.loop.Stop()

	program := tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	return err
}
