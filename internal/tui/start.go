// internal/tui/start.go
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwiater/scorecard/internal/appconfig"
	"github.com/mwiater/scorecard/internal/dataset"
)

// Start runs the dashboard program until the user quits. The store owns the
// memoized export cache for the whole session.
func Start(ctx context.Context, cfg *appconfig.Config, store *dataset.Store) error {
	m := NewModel(ctx, cfg, store)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
