package main

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/FutureQuant/Random-walk/internal/analysis"
	"github.com/FutureQuant/Random-walk/internal/config"
	"github.com/FutureQuant/Random-walk/internal/recorder"
	"github.com/FutureQuant/Random-walk/internal/simulation"
)

type simulateFlags struct {
	configPath string

	count      int
	startPrice float64
	meanReturn float64
	stdReturn  float64
	window     int
	seed       int64

	pricesOut string
	maOut     string
	preview   int
	noSave    bool
	summary   bool
	dbPath    string
}

func newSimulateCmd() *cobra.Command {
	f := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a simulation, print a preview and save both series",
		Example: `  randomwalk simulate
  randomwalk simulate --count 2520 --std 0.02 --window 50 --prices-out out/prices.csv
  randomwalk simulate --config examples/config.yaml --summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			return runSimulate(cmd.OutOrStdout(), cfg, f)
		},
	}
	addParamFlags(cmd, f)
	cmd.Flags().StringVar(&f.pricesOut, "prices-out", "", "Prices output file (default from config, else prices.csv)")
	cmd.Flags().StringVar(&f.maOut, "ma-out", "", "Moving average output file (default from config, else moving_avg.csv)")
	cmd.Flags().IntVar(&f.preview, "preview", 10, "Number of leading values to print")
	cmd.Flags().BoolVar(&f.noSave, "no-save", false, "Skip writing output files")
	cmd.Flags().BoolVar(&f.summary, "summary", false, "Print summary statistics")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "SQLite file to record the run in (default from config)")
	return cmd
}

func newParamsCmd() *cobra.Command {
	f := &simulateFlags{}
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the effective simulation parameters as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			p := cfg.Simulation.ToParams()
			if err := p.Validate(); err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(map[string]config.SimulationConfig{"simulation": config.FromParams(p)})
		},
	}
	addParamFlags(cmd, f)
	return cmd
}

func addParamFlags(cmd *cobra.Command, f *simulateFlags) {
	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, "config", "c", "", "Path to YAML config")
	fl.IntVarP(&f.count, "count", "n", 0, "Number of daily returns to simulate (default 1000000)")
	fl.Float64Var(&f.startPrice, "start-price", 0, "Initial price (default 100)")
	fl.Float64Var(&f.meanReturn, "mean", 0, "Mean of daily returns (default 0)")
	fl.Float64Var(&f.stdReturn, "std", 0, "Standard deviation of daily returns (default 0.01)")
	fl.IntVarP(&f.window, "window", "w", 0, "Moving average window size (default 20)")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (default 42)")
}

// loadConfig reads --config (if any) and overlays explicitly set flags.
func loadConfig(cmd *cobra.Command, f *simulateFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.LoadUnchecked(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	var override config.SimulationConfig
	if fl.Changed("count") {
		override.Count = &f.count
	}
	if fl.Changed("start-price") {
		override.StartPrice = &f.startPrice
	}
	if fl.Changed("mean") {
		override.MeanReturn = &f.meanReturn
	}
	if fl.Changed("std") {
		override.StdReturn = &f.stdReturn
	}
	if fl.Changed("window") {
		override.Window = &f.window
	}
	if fl.Changed("seed") {
		override.Seed = &f.seed
	}
	cfg.Simulation = config.MergeSimulation(cfg.Simulation, override)

	if fl.Lookup("prices-out") != nil {
		if fl.Changed("prices-out") {
			cfg.Output.PricesFile = f.pricesOut
		}
		if fl.Changed("ma-out") {
			cfg.Output.MovingAverageFile = f.maOut
		}
		if fl.Changed("db") {
			cfg.Database.SQLitePath = f.dbPath
		}
		if fl.Changed("preview") {
			cfg.Output.Preview = &f.preview
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runSimulate(out io.Writer, cfg *config.Config, f *simulateFlags) error {
	params := cfg.Simulation.ToParams()

	res, err := simulation.New().Run(params)
	if err != nil {
		return err
	}

	analysis.RenderPreview(out, res, cfg.Output.PreviewRows())

	summary, err := analysis.SummarizeResult(res)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}
	if f.summary {
		fmt.Fprintln(out)
		analysis.RenderSummary(out, summary)
	}

	var report simulation.PersistReport
	if !f.noSave {
		report = simulation.Persist(res, simulation.OutputPaths{
			Prices:        cfg.Output.PricesFile,
			MovingAverage: cfg.Output.MovingAverageFile,
		})
	}

	if cfg.Database.SQLitePath != "" {
		rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.WithError(err).Warn("run history disabled")
		} else {
			defer rec.Close()
			if err := rec.RecordRun(recorder.NewRunRecord("", "cli", res, summary.Prices.Mean, report)); err != nil {
				log.WithError(err).Warn("record run failed")
			}
		}
	}

	if err := report.Err(); err != nil {
		return errors.Join(errors.New("some output files were not written"), err)
	}
	return nil
}
