package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bubbleforge/internal/ui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List saved level titles",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Render a saved level",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <title>",
	Short: "Delete a custom level",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	levelsCmd.Flags().Bool("presets", false, "list the preset level catalog instead of custom levels")
	showCmd.Flags().Bool("preset", false, "read from the preset level catalog")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runLevels(cmd *cobra.Command, _ []string) error {
	presets, _ := cmd.Flags().GetBool("presets")

	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	printer := ui.New(cmd.OutOrStdout())
	if presets {
		printer.Levels("preset levels", ws.session.PresetLevels())
		return nil
	}
	printer.Levels("levels", ws.session.Levels())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	fromPresets, _ := cmd.Flags().GetBool("preset")
	title := levelTitle(args)

	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	load := ws.session.LoadLevel
	if fromPresets {
		load = ws.session.LoadPresetLevel
	}
	if err := load(title); err != nil {
		return err
	}
	ui.New(cmd.OutOrStdout()).Stage(ws.session.CopyOfStage())
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	title := levelTitle(args)

	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	if !slices.Contains(ws.session.Levels(), title) {
		return fmt.Errorf("delete: no custom level titled %q", title)
	}
	if err := ws.session.DeleteLevel(cmd.Context(), title); err != nil {
		return err
	}
	ui.New(cmd.OutOrStdout()).Success(fmt.Sprintf("deleted %q", title))
	return nil
}

// levelTitle is the title argument as every level command stores and looks
// it up.
func levelTitle(args []string) string {
	return strings.TrimSpace(args[0])
}
