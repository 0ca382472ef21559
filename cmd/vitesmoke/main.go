package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/solotrader/vitesmoke/pkg/vitecheck"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prints usage and argument errors. Failed checks have
// already been reported in the transcript.
func reportError(w io.Writer, err error) {
	if errors.Is(err, ErrChecksFailed) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

var rootCmd = &cobra.Command{
	Use:           "vitesmoke",
	Short:         "Smoke test the Solo Trader frontend dev server",
	Long:          "vitesmoke checks that the Vite dev server at " + vitecheck.DefaultTarget + " is up, serves the app shell and exposes the Vite client.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSmoke(cmd.OutOrStdout(), vitecheck.DefaultTarget, nil)
	},
}
