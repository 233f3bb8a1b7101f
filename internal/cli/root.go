package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"swift-calc/internal/calc"
	"swift-calc/internal/format"
)

// Options holds the flags of the calc command.
type Options struct {
	Verbose  bool
	ShowGrid bool
}

// NewRootCommand builds the calc command. With no key arguments it calls
// launchGUI; otherwise it presses the keys on a fresh engine and prints the
// display.
func NewRootCommand(launchGUI func()) *cobra.Command {
	var opts Options

	cmd := &cobra.Command{
		Use:   "calc [keys...]",
		Short: "Single-screen calculator",
		Long: `Single-screen calculator.

Run without arguments to open the window. Pass key labels to press them
headlessly and print the resulting display, e.g.

  calc 7 + 3 =
  calc -v 0 .
  calc --grid`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if opts.ShowGrid {
				fmt.Fprintln(out, format.Grid(calc.Grid()))
				return nil
			}

			if len(args) == 0 {
				launchGUI()
				return nil
			}

			display, err := RunKeys(args, opts, func(line string) {
				fmt.Fprintln(out, line)
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(out, display)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "print the display after every key")
	cmd.Flags().BoolVar(&opts.ShowGrid, "grid", false, "print the keypad layout and exit")

	return cmd
}
