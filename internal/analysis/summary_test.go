package analysis

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FutureQuant/Random-walk/internal/model"
	"github.com/FutureQuant/Random-walk/internal/simulation"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 4.0, s.First)
	assert.Equal(t, 2.0, s.Last)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
	assert.Equal(t, 2.5, s.Mean)
	assert.InDelta(t, math.Sqrt(1.25), s.StdDev, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	s, err := Summarize(nil)
	require.NoError(t, err)
	assert.Equal(t, SeriesSummary{}, s)
}

func TestSummarizeResult_FlatPath(t *testing.T) {
	res, err := simulation.New().Run(model.Params{Count: 5, StartPrice: 100, Window: 2})
	require.NoError(t, err)

	s, err := SummarizeResult(res)
	require.NoError(t, err)
	assert.Equal(t, 5, s.Prices.Count)
	assert.Equal(t, 4, s.MovingAverage.Count)
	assert.Equal(t, 100.0, s.MovingAverage.Mean)
	assert.Zero(t, s.TotalReturn)
	assert.Zero(t, s.AnnualizedVolatility)
}

func TestSummarizeResult_Nil(t *testing.T) {
	_, err := SummarizeResult(nil)
	assert.Error(t, err)
}

func TestRenderPreview(t *testing.T) {
	p := model.DefaultParams()
	p.Count = 30
	p.Window = 25
	res, err := simulation.New().Run(p)
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderPreview(&buf, res, DefaultPreviewRows)
	out := buf.String()

	assert.Contains(t, out, "MOVING AVG")
	assert.Contains(t, out, "Total prices: 30, Total moving averages: 6")
	// Moving-average column runs out after 6 rows, prices keep going to 10.
	assert.Contains(t, out, strings.TrimSpace(fmtFloat(res.Prices[9])))

	pv := BuildPreview(res, DefaultPreviewRows)
	assert.Len(t, pv.Prices, 10)
	assert.Len(t, pv.MovingAverage, 6)
}

func TestRenderSummary(t *testing.T) {
	res, err := simulation.New().Run(model.Params{Count: 5, StartPrice: 100, Window: 2})
	require.NoError(t, err)
	s, err := SummarizeResult(res)
	require.NoError(t, err)

	var buf bytes.Buffer
	RenderSummary(&buf, s)
	assert.Contains(t, buf.String(), "Total return=0.0000%")
}

func TestRunSummaryFinite(t *testing.T) {
	res, err := simulation.New().Run(model.Params{Count: 5, StartPrice: 100, Window: 2})
	require.NoError(t, err)
	s, err := SummarizeResult(res)
	require.NoError(t, err)
	assert.True(t, s.Finite())

	s.Prices.Max = math.Inf(1)
	assert.False(t, s.Finite())

	s = RunSummary{AnnualizedVolatility: math.NaN()}
	assert.False(t, s.Finite())
}
