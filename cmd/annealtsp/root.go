package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/annealtsp/config"
)

// version is overridden at build time with -ldflags "-X main.version=…".
var version = "dev"

// app carries the state shared by subcommands.
type app struct {
	out        io.Writer
	errOut     io.Writer
	configPath string
	jsonOut    bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "annealtsp",
		Short:         "Approximate TSP tours with simulated annealing",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML or JSON config file")
	root.PersistentFlags().BoolVar(&a.jsonOut, "json", false, "print machine-readable JSON")

	root.AddCommand(a.newSolveCmd(), a.newRunsCmd(), a.newVersionCmd())

	return root
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return cfg, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the annealtsp version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(a.out, "annealtsp %s\n", version)

			return err
		},
	}
}
