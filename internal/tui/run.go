package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/san-kum/paaviz/internal/config"
)

// Run starts the full-screen study app and blocks until the user quits or
// ctx ends.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...Option) error {
	if logger == nil {
		logger = log.Default()
	}
	m := New(ctx, cfg, logger, opts...)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.Close()
		logger.Info("session ended", "completed", fm.Completed())
	} else {
		m.Close()
	}
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
