package main

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/FutureQuant/Random-walk/internal/simulation"
)

func newSMACmd() *cobra.Command {
	var in, out string
	var window int

	cmd := &cobra.Command{
		Use:   "sma",
		Short: "Compute the moving average of an existing series file",
		Example: `  randomwalk sma --in prices.csv --window 50 --out sma50.csv
  randomwalk sma --in prices.csv -w 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if in == "" {
				return errors.New("--in is required")
			}
			series, err := simulation.ReadSeriesCSV(in)
			if err != nil {
				return err
			}
			ma, err := simulation.MovingAverage(series, window)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"in": in, "values": len(series), "window": window}).Debug("moving average computed")

			if out == "" || out == "-" {
				return simulation.WriteSeries(cmd.OutOrStdout(), ma)
			}
			if err := simulation.WriteSeriesCSV(out, ma); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d values to %s\n", len(ma), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "Input series file (one value per line, or comma-separated)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (stdout when empty or -)")
	cmd.Flags().IntVarP(&window, "window", "w", 20, "Moving average window size")
	return cmd
}
