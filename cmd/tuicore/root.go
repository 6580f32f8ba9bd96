package main

import (
	"fmt"

	"github.com/grindlemire/tuicore"
	"github.com/grindlemire/tuicore/internal/config"
	"github.com/grindlemire/tuicore/internal/debug"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const version = "0.1.0"

// options is shared by every subcommand once the root's pre-run hook has
// loaded it.
type options struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "tuicore",
		Short:         "Demo runner for the tuicore terminal UI runtime",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configFile)
			if err != nil {
				return err
			}
			logOpts := cfg.Log.DebugOptions()
			if env := debug.FromEnv(); env.File != "" {
				logOpts = env
			}
			if err := debug.Init(logOpts); err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			debug.Log("%s: frame rate %d, queue %d, mouse %t, theme %q",
				cmd.Name(), cfg.FrameRate, cfg.EventQueueSize, cfg.Mouse, cfg.Theme)
			opts.cfg = cfg
			opts.logger = debug.Logger().Named("tuicore")
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = debug.Sync()
		},
	}
	root.SetVersionTemplate("tuicore {{.Version}}\n")
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file (default ./tuicore.yaml)")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newSnapshotCmd(opts))
	return root
}

// styles returns the theme named by the config, or the built-in one.
func (o *options) styles() (*tui.StyleMap, error) {
	if o.cfg.Theme == "" {
		return defaultTheme(), nil
	}
	m, err := tui.LoadTheme(o.cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("load theme %s: %w", o.cfg.Theme, err)
	}
	return m, nil
}
