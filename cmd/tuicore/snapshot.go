package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/tuicore"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"go.uber.org/multierr"
)

var (
	snapshotFrame = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	snapshotTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
)

func newSnapshotCmd(opts *options) *cobra.Command {
	var (
		width, height int
		items         int
		plain         bool
		focus         []string
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render one demo frame headlessly and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size := snapshotSize(width, height)
			styles, err := opts.styles()
			if err != nil {
				return err
			}
			core := tui.NewCore(tui.WithLogger(opts.logger), tui.WithStyleMap(styles))
			if _, err := buildDemo(core, items); err != nil {
				return err
			}
			lines, err := snapshot(core, size, focus)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain {
				_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
				return err
			}
			title := snapshotTitle.Render(fmt.Sprintf("tuicore %dx%d", size.Width, size.Height))
			_, err = fmt.Fprintln(out, lipgloss.JoinVertical(lipgloss.Left, title, snapshotFrame.Render(strings.Join(lines, "\n"))))
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "screen width (default: terminal width or 80)")
	cmd.Flags().IntVar(&height, "height", 0, "screen height (default: terminal height or 24)")
	cmd.Flags().IntVarP(&items, "items", "n", 40, "number of list items")
	cmd.Flags().BoolVar(&plain, "plain", false, "print the bare screen without a frame")
	cmd.Flags().StringSliceVar(&focus, "focus", nil, "node patterns to focus before rendering, last one wins")
	return cmd
}

// snapshot lays out and renders core once on a headless screen and returns
// its rows. Focus patterns are applied in order between two layout passes,
// since focus needs geometry.
func snapshot(core *tui.Core, size tui.Size, focus []string) ([]string, error) {
	backend := tui.NewHeadlessBackend(size.Width, size.Height)
	if err := core.Layout(size); err != nil {
		return nil, err
	}
	var errs error
	for _, pattern := range focus {
		ids, err := core.FindNodes(pattern)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if len(ids) == 0 {
			errs = multierr.Append(errs, fmt.Errorf("no node matches %q", pattern))
			continue
		}
		errs = multierr.Append(errs, core.SetFocus(ids[0]))
	}
	if errs != nil {
		return nil, errs
	}
	if err := core.Layout(size); err != nil {
		return nil, err
	}
	if err := core.Render(backend); err != nil {
		return nil, err
	}
	return backend.Lines(), nil
}

// snapshotSize fills unset dimensions from the terminal, or 80x24 when
// stdout is not one.
func snapshotSize(width, height int) tui.Size {
	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		tw, th = 80, 24
	}
	if width <= 0 {
		width = tw
	}
	if height <= 0 {
		height = th
	}
	return tui.Size{Width: width, Height: height}
}
