package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/annealtsp/archive"
)

func (a *app) newRunsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List archived runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}
			log := newLogger(cfg.Observability, a.errOut)
			store, err := archive.Open(cmd.Context(), cfg.Archive.Path, log)
			if err != nil {
				return err
			}
			defer store.Close()

			recs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if a.jsonOut {
				if recs == nil {
					recs = []archive.Record{}
				}

				return writeJSON(a.out, recs)
			}

			return renderRuns(a.out, recs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum runs to list (0 = all)")

	return cmd
}
