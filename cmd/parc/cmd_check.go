package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/parc/urls"
)

type checkSuite struct {
	Cases []checkCase `yaml:"cases"`
}

type checkCase struct {
	Name     string `yaml:"name"`
	Input    string `yaml:"input"`
	Protocol string `yaml:"protocol"`
	Domain   string `yaml:"domain"`
	Path     string `yaml:"path"`
	Fail     bool   `yaml:"fail"`
}

func loadSuite(filename string) (*checkSuite, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read suite: %w", err)
	}

	var suite checkSuite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("decode suite: %w", err)
	}

	return &suite, nil
}

func runCase(c checkCase) error {
	u, err := urls.Parse(c.Input)
	if c.Fail {
		if err == nil {
			return fmt.Errorf("parsed %q as %+v, want failure", c.Input, u)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("parse %q: %w", c.Input, err)
	}
	if u.Protocol != c.Protocol || u.Domain != c.Domain || u.Path != c.Path {
		return fmt.Errorf("parsed %q as %+v, want protocol=%q domain=%q path=%q",
			c.Input, u, c.Protocol, c.Domain, c.Path)
	}
	return nil
}

func newCheckCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "check <suite.yaml>",
		Short:         "Run a YAML suite of inputs against the URL grammar",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				commonlog.Configure(2, nil)
			}

			suite, err := loadSuite(args[0])
			if err != nil {
				fmt.Println(err)
				return err
			}

			failed := 0
			for _, c := range suite.Cases {
				if err := runCase(c); err != nil {
					failed++
					fmt.Printf("FAIL %s: %v\n", c.Name, err)
					continue
				}
				fmt.Printf("ok   %s\n", c.Name)
			}

			if failed > 0 {
				err := fmt.Errorf("%d of %d cases failed", failed, len(suite.Cases))
				fmt.Println(err)
				return err
			}

			fmt.Printf("all %d cases passed\n", len(suite.Cases))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log each rule as it runs")

	return cmd
}
