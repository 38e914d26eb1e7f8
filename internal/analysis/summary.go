package analysis

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/FutureQuant/Random-walk/internal/simulation"
)

// TradingDaysPerYear annualizes daily volatility.
const TradingDaysPerYear = 252

// SeriesSummary describes one series. It is informational only; nothing
// downstream depends on its exact values.
type SeriesSummary struct {
	Count  int     `json:"count" yaml:"count"`
	First  float64 `json:"first" yaml:"first"`
	Last   float64 `json:"last" yaml:"last"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"std_dev" yaml:"std_dev"`
	P05    float64 `json:"p05" yaml:"p05"`
	P95    float64 `json:"p95" yaml:"p95"`
}

type RunSummary struct {
	Returns       SeriesSummary `json:"returns" yaml:"returns"`
	Prices        SeriesSummary `json:"prices" yaml:"prices"`
	MovingAverage SeriesSummary `json:"moving_average" yaml:"moving_average"`

	// TotalReturn is final price / start price - 1.
	TotalReturn float64 `json:"total_return" yaml:"total_return"`
	// AnnualizedVolatility is the sample std-dev of daily returns scaled by sqrt(252).
	AnnualizedVolatility float64 `json:"annualized_volatility" yaml:"annualized_volatility"`
}

// Finite reports whether every statistic is a finite number.
func (s SeriesSummary) Finite() bool {
	return finite(s.First, s.Last, s.Min, s.Max, s.Mean, s.StdDev, s.P05, s.P95)
}

func (s RunSummary) Finite() bool {
	return s.Returns.Finite() && s.Prices.Finite() && s.MovingAverage.Finite() &&
		finite(s.TotalReturn, s.AnnualizedVolatility)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func Summarize(series []float64) (SeriesSummary, error) {
	s := SeriesSummary{Count: len(series)}
	if len(series) == 0 {
		return s, nil
	}
	data := stats.Float64Data(series)
	s.First = series[0]
	s.Last = series[len(series)-1]

	var err error
	if s.Min, err = stats.Min(data); err != nil {
		return s, fmt.Errorf("min: %w", err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return s, fmt.Errorf("max: %w", err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return s, fmt.Errorf("mean: %w", err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return s, fmt.Errorf("std dev: %w", err)
	}
	if s.P05, err = stats.Percentile(data, 5); err != nil {
		return s, fmt.Errorf("p05: %w", err)
	}
	if s.P95, err = stats.Percentile(data, 95); err != nil {
		return s, fmt.Errorf("p95: %w", err)
	}
	return s, nil
}

func SummarizeResult(res *simulation.Result) (RunSummary, error) {
	var out RunSummary
	if res == nil {
		return out, fmt.Errorf("result is nil")
	}

	var err error
	if out.Returns, err = Summarize(res.Returns); err != nil {
		return out, fmt.Errorf("returns: %w", err)
	}
	if out.Prices, err = Summarize(res.Prices); err != nil {
		return out, fmt.Errorf("prices: %w", err)
	}
	if out.MovingAverage, err = Summarize(res.MovingAverage); err != nil {
		return out, fmt.Errorf("moving average: %w", err)
	}

	if res.Params.StartPrice > 0 && len(res.Prices) > 0 {
		out.TotalReturn = res.FinalPrice()/res.Params.StartPrice - 1
	}
	if len(res.Returns) > 1 {
		sd, err := stats.StandardDeviationSample(stats.Float64Data(res.Returns))
		if err != nil {
			return out, fmt.Errorf("volatility: %w", err)
		}
		out.AnnualizedVolatility = sd * math.Sqrt(TradingDaysPerYear)
	}
	return out, nil
}
