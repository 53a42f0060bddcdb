package main

import (
	"os"

	"github.com/spf13/cobra"

	// Logging backend for --verbose rule tracing.
	_ "github.com/tliron/commonlog/simple"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parc",
		Short: "Tools built on the parc parser combinators",
	}

	rootCmd.AddCommand(newURLCmd())
	rootCmd.AddCommand(newCheckCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
