package analysis

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/FutureQuant/Random-walk/internal/simulation"
)

const DefaultPreviewRows = 10

// Preview holds the leading values of each series for a human sanity check.
type Preview struct {
	Prices        []float64 `json:"prices"`
	MovingAverage []float64 `json:"moving_average"`
}

func BuildPreview(res *simulation.Result, n int) Preview {
	if n < 0 {
		n = 0
	}
	return Preview{
		Prices:        head(res.Prices, n),
		MovingAverage: head(res.MovingAverage, n),
	}
}

// RenderPreview prints the first n prices and moving averages side by side,
// followed by both lengths.
func RenderPreview(w io.Writer, res *simulation.Result, n int) {
	pv := BuildPreview(res, n)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"i", "price", "moving avg"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	rows := len(pv.Prices)
	if len(pv.MovingAverage) > rows {
		rows = len(pv.MovingAverage)
	}
	for i := 0; i < rows; i++ {
		table.Append([]string{strconv.Itoa(i), cell(pv.Prices, i), cell(pv.MovingAverage, i)})
	}
	table.Render()

	fmt.Fprintf(w, "Total prices: %d, Total moving averages: %d\n", len(res.Prices), len(res.MovingAverage))
}

// RenderSummary prints one row per series.
func RenderSummary(w io.Writer, s RunSummary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"series", "count", "first", "last", "min", "max", "mean", "std dev"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range []struct {
		name string
		s    SeriesSummary
	}{
		{"returns", s.Returns},
		{"prices", s.Prices},
		{"moving avg", s.MovingAverage},
	} {
		table.Append([]string{
			r.name,
			strconv.Itoa(r.s.Count),
			fmtFloat(r.s.First),
			fmtFloat(r.s.Last),
			fmtFloat(r.s.Min),
			fmtFloat(r.s.Max),
			fmtFloat(r.s.Mean),
			fmtFloat(r.s.StdDev),
		})
	}
	table.Render()

	fmt.Fprintf(w, "Total return=%.4f%%  Annualized volatility=%.4f%%\n", s.TotalReturn*100, s.AnnualizedVolatility*100)
}

func head(s []float64, n int) []float64 {
	if n > len(s) {
		n = len(s)
	}
	out := make([]float64, n)
	copy(out, s[:n])
	return out
}

func cell(s []float64, i int) string {
	if i >= len(s) {
		return ""
	}
	return fmtFloat(s[i])
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
