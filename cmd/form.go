// ABOUTME: Interactive form command launching the TUI
// ABOUTME: Wires config, file logging, the HTTP client, and the controller

package cmd

import (
	"github.com/katyalpiyush/workload-estimator-poc/internal/client"
	"github.com/katyalpiyush/workload-estimator-poc/internal/estimator"
	"github.com/katyalpiyush/workload-estimator-poc/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive estimation form",
	Long: `Open the interactive form. Fill in the number of documents, the average
document size, and the workload nature to get a recommendation.

Keys:
  Enter   Next field / submit
  Esc     Leave the form
  e       Edit the form again
  s       Resubmit the current input
  Ctrl+R  Reset everything
  q       Quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm()
	},
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg, true)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info("starting interactive form", zap.String("api_url", cfg.APIURL))

	c := client.New(cfg.APIURL, client.WithLogger(logger))
	ctrl := estimator.NewController(c, logger)
	return tui.Run(ctrl, c.BaseURL())
}
