package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/schem"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "schemgen",
	Short: "Schemgen - schematic diagram generator",
	Long: `Schemgen renders electrical schematic diagrams built from the
schem element catalog.

Examples:
  schemgen elements                    # List available elements
  schemgen elements --preview out/     # Render one image per element
  schemgen render rc -o rc.svg         # Render a demo circuit to SVG
  schemgen render opamp -o amp.png     # Render a demo circuit to PNG`,
	Version: schem.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			schem.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
