package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bubbleforge/internal/store"
	"github.com/papapumpkin/bubbleforge/internal/ui"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the effect, obstacle and creature definitions",
	Long: `Lists the reference definitions a session resolves bubbles against.

With --dump FORMAT, writes the definitions as json, toml or yaml instead. The
yaml output can be edited and passed back through presets_file.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func init() {
	presetsCmd.Flags().String("dump", "", "write definitions in the given format (json, toml, yaml)")
	rootCmd.AddCommand(presetsCmd)
}

func runPresets(cmd *cobra.Command, _ []string) error {
	dump, _ := cmd.Flags().GetString("dump")

	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.Close()

	s := ws.session
	if dump == "" {
		ui.New(cmd.OutOrStdout()).Presets(s.Effects(), s.Obstacles(), s.Creatures())
		return nil
	}

	codec, err := store.CodecByName(dump)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(s.Presets().Document())
	if err != nil {
		return fmt.Errorf("presets: encode %s: %w", codec.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
