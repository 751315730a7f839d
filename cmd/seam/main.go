package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seam",
		Short: "Incremental HTML generation for Go",
		Long: `Seam is a producer/sink library for incremental HTML generation.

Producers - text leaves, raw markup, closures and boxed values - feed a
single append-only sink with escaping handled at the write boundary.
This CLI ships a small demo server for exploring the element builder
and the instrumented page handler.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
