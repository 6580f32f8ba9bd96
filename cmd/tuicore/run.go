package main

import (
	"errors"
	"os"

	"github.com/grindlemire/tuicore"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(opts *options) *cobra.Command {
	var items int
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive demo",
		Long: `Run the interactive demo.

Tab and Shift+Tab move focus, arrows scroll the list or move focus between
buttons, Enter presses the focused button and Ctrl+C quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("run needs an interactive terminal; try snapshot instead")
			}
			styles, err := opts.styles()
			if err != nil {
				return err
			}
			core := tui.NewCore(tui.WithLogger(opts.logger), tui.WithStyleMap(styles))
			if _, err := buildDemo(core, items); err != nil {
				return err
			}

			backend, err := tui.NewTcellBackend(opts.cfg.Mouse)
			if err != nil {
				return err
			}
			app, err := tui.NewApp(core, backend,
				tui.WithFrameRate(opts.cfg.FrameRate),
				tui.WithEventQueueSize(opts.cfg.EventQueueSize),
			)
			if err != nil {
				backend.Exit(1)
				return err
			}
			opts.logger.Info("starting demo", zap.String("session", app.Session()))
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().IntVarP(&items, "items", "n", 40, "number of list items")
	return cmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
