package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parc/parse"
	"github.com/dhamidi/parc/urls"
)

func newURLCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "url <url>",
		Short:        "Parse a URL and print its parts",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				commonlog.Configure(2, nil)
			}

			u, err := urls.Parse(args[0])
			if err != nil {
				var perr *parse.Error
				if errors.As(err, &perr) {
					return fmt.Errorf("parse url at %s: %w", perr.Position(), err)
				}
				return fmt.Errorf("parse url: %w", err)
			}

			fmt.Printf("protocol: %s\n", u.Protocol)
			fmt.Printf("domain:   %s\n", u.Domain)
			fmt.Printf("path:     %s\n", u.Path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each rule as it runs")

	return cmd
}
