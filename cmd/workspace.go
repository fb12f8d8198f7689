package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/papapumpkin/bubbleforge/internal/config"
	"github.com/papapumpkin/bubbleforge/internal/design"
	"github.com/papapumpkin/bubbleforge/internal/logging"
	"github.com/papapumpkin/bubbleforge/internal/preset"
	"github.com/papapumpkin/bubbleforge/internal/store"
	"github.com/papapumpkin/bubbleforge/internal/telemetry"
	"github.com/papapumpkin/bubbleforge/internal/ui"
)

// workspace bundles an open store with the design session built on it.
type workspace struct {
	cfg     config.Config
	store   store.Store
	session *design.Session
	logger  *zap.Logger
	emitter *telemetry.Emitter
}

// openWorkspace loads configuration, opens the configured store and starts a
// design session on it with extra applied after the configured options.
// Callers must Close the returned workspace.
func openWorkspace(ctx context.Context, extra ...design.Option) (*workspace, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return nil, err
	}

	defaults, err := loadDefaults(cfg.PresetsFile)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.Store.Options()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", opts.Backend, err)
	}

	ws := &workspace{cfg: cfg, store: st, logger: logger}
	if cfg.EventsFile != "" {
		ws.emitter, err = telemetry.NewEmitter(cfg.EventsFile)
		if err != nil {
			_ = ws.Close()
			return nil, err
		}
	}

	sessionOpts := append([]design.Option{
		design.WithLogger(logger),
		design.WithEmitter(ws.emitter),
		design.WithCodec(opts.Codec),
	}, extra...)
	ws.session, err = design.New(ctx, st, cfg.Grid.Dimensions(), defaults, sessionOpts...)
	if err != nil {
		_ = ws.Close()
		return nil, err
	}
	return ws, nil
}

// Close releases the emitter and the store and flushes the logger.
func (w *workspace) Close() error {
	var errs []error
	if w.emitter != nil {
		errs = append(errs, w.emitter.Close())
	}
	errs = append(errs, w.store.Close())
	_ = w.logger.Sync()
	return errors.Join(errs...)
}

func loadDefaults(path string) (preset.Defaults, error) {
	if path == "" {
		return preset.DefaultDefinitions()
	}
	return preset.LoadDefaultsFile(path)
}

// setupSignalContext returns a context that is canceled on SIGINT or SIGTERM.
func setupSignalContext(printer *ui.Printer) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			printer.Info("\nshutting down...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()
	return ctx, cancel
}
