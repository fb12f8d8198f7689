package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/bubbleforge/internal/store"
	"github.com/papapumpkin/bubbleforge/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the file store and reprint level listings on change",
	Long: `Watches the file store directory for level catalogs written by other
sessions or edited by hand, reloads them and reprints the listings. Only the
file backend can be watched.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	printer := ui.New(cmd.OutOrStdout())
	ctx, cancel := setupSignalContext(ui.New(cmd.ErrOrStderr()))
	defer cancel()

	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.Close()

	fs, ok := ws.store.(*store.FileStore)
	if !ok {
		return fmt.Errorf("watch: the %s backend cannot be watched; use --store file", ws.cfg.Store.Backend)
	}

	w, err := fs.Watch()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Stop()
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch: start: %w", err)
	}

	printer.Info(fmt.Sprintf("watching %s", fs.Dir()))
	printListings(printer, ws)

	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-w.Changes:
			if !ok {
				return nil
			}
			if change.Key != store.KeyCustomLevels && change.Key != store.KeyPresetLevels {
				continue
			}
			printer.Info(fmt.Sprintf("%s %s", change.Key, change.Kind))
			if err := ws.session.Refresh(ctx); err != nil {
				printer.Error(err.Error())
				continue
			}
			printListings(printer, ws)
		}
	}
}

func printListings(printer *ui.Printer, ws *workspace) {
	printer.Levels("levels", ws.session.Levels())
	printer.Levels("preset levels", ws.session.PresetLevels())
}
