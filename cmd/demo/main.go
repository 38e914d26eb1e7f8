package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/FutureQuant/Random-walk/internal/analysis"
	"github.com/FutureQuant/Random-walk/internal/config"
	"github.com/FutureQuant/Random-walk/internal/simulation"
)

// Demo:
// - Load every preset in a directory
// - Run each one (optionally capped to n steps)
// - Print a side-by-side comparison of the resulting paths
func main() {
	dir := flag.String("presets", config.DefaultPresetsDir, "Directory of preset YAML files")
	n := flag.Int("n", 10_000, "Cap on the number of steps per preset (0 = use the preset's count)")
	flag.Parse()

	presets, skipped, err := config.ListPresets(*dir)
	if err != nil {
		log.Fatalf("list presets: %v", err)
	}
	for name, err := range skipped {
		log.WithError(err).Warnf("skipping %s", name)
	}
	if len(presets) == 0 {
		log.Fatalf("no presets in %s", *dir)
	}

	engine := simulation.New()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"preset", "steps", "window", "seed", "final price", "min", "max", "total return %", "ann. vol %"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, id := range config.SortedPresetIDs(presets) {
		params := presets[id].Simulation.ToParams()
		if *n > 0 && params.Count > *n {
			params.Count = *n
			if params.Window > params.Count {
				params.Window = params.Count
			}
		}

		res, err := engine.Run(params)
		if err != nil {
			log.WithError(err).Errorf("preset %s", id)
			continue
		}
		s, err := analysis.SummarizeResult(res)
		if err != nil {
			log.WithError(err).Errorf("summarize %s", id)
			continue
		}

		table.Append([]string{
			id,
			strconv.Itoa(params.Count),
			strconv.Itoa(params.Window),
			strconv.FormatInt(params.Seed, 10),
			fmt.Sprintf("%.4f", res.FinalPrice()),
			fmt.Sprintf("%.4f", s.Prices.Min),
			fmt.Sprintf("%.4f", s.Prices.Max),
			fmt.Sprintf("%.2f", s.TotalReturn*100),
			fmt.Sprintf("%.2f", s.AnnualizedVolatility*100),
		})
	}

	fmt.Printf("Loaded %d presets from %s\n\n", len(presets), *dir)
	table.Render()
}
