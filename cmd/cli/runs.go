package main

import (
	"errors"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/FutureQuant/Random-walk/internal/recorder"
)

func newRunsCmd() *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List recently recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return errors.New("--db is required")
			}
			rec, err := recorder.NewSQLiteRecorder(dbPath)
			if err != nil {
				return err
			}
			defer rec.Close()

			runs, err := rec.RecentRuns(limit)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"id", "created", "source", "count", "window", "seed", "final price", "errors"})
			for _, r := range runs {
				errs := ""
				if r.PricesError != "" || r.MovingAverageError != "" {
					errs = "yes"
				}
				table.Append([]string{
					shortID(r.ID),
					r.CreatedAt.Format("2006-01-02 15:04:05"),
					r.Source,
					strconv.Itoa(r.Params.Count),
					strconv.Itoa(r.Params.Window),
					strconv.FormatInt(r.Params.Seed, 10),
					strconv.FormatFloat(r.FinalPrice, 'f', 4, 64),
					errs,
				})
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite run history file")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of runs to show")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
