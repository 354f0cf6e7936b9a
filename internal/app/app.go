package app

import (
	"context"
	"fmt"
	"log"

	"github.com/five82/pomo/internal/config"
	"github.com/five82/pomo/internal/ui"
)

// Options configure the pomo application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/pomo/config.toml
	LogFile    string // overrides log_file from the config when set
}

// Run boots the pomo TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if opts.LogFile != "" {
		path, err := config.ExpandPath(opts.LogFile)
		if err != nil {
			return fmt.Errorf("log path: %w", err)
		}
		cfg.LogFile = path
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	log.Printf("pomo starting (ring radius %d, alt screen %v)", cfg.RingRadius, cfg.AltScreen)
	err = ui.Run(ctx, ui.Options{Config: cfg})
	log.Printf("pomo stopped")
	return err
}
