package cmd

import (
	"github.com/spf13/cobra"

	"github.com/papapumpkin/bubbleforge/internal/config"
	"github.com/papapumpkin/bubbleforge/internal/ui"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Show the configured grid size and row lengths",
	Args:  cobra.NoArgs,
	RunE:  runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ui.New(cmd.OutOrStdout()).Grid(cfg.Grid.Dimensions())
	return nil
}
