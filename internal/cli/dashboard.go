// internal/cli/dashboard.go
package scorecard

import (
	"context"

	"github.com/mwiater/scorecard/internal/dataset"
	"github.com/mwiater/scorecard/internal/logging"
	"github.com/mwiater/scorecard/internal/tui"
	"github.com/spf13/cobra"
)

// dashboardCmd launches the interactive dashboard; it is also what the bare
// root command runs.
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive benchmark dashboard",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	cfg := getConfig()

	if err := logging.Init(cfg.LogFilePath()); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store := dataset.NewStore(dataset.FileLoader(cfg.DataPathOrDefault()))
	return tui.Start(ctx, cfg, store)
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
