package simulation

import (
	"math"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// Result is everything one run produced. Nothing in it is mutated after Run returns.
type Result struct {
	Params        model.Params
	Returns       model.ReturnSeries
	Prices        model.PriceSeries
	MovingAverage model.MovingAverageSeries
}

func (r *Result) FinalPrice() float64 {
	if r == nil || len(r.Prices) == 0 {
		return 0
	}
	return r.Prices[len(r.Prices)-1]
}

// Series returns the series persisted under kind, or nil for an unknown kind.
func (r *Result) Series(kind model.SeriesKind) []float64 {
	switch kind {
	case model.SeriesPrices:
		return r.Prices
	case model.SeriesMovingAverage:
		return r.MovingAverage
	default:
		return nil
	}
}

// Finite reports whether every price and moving-average value is a finite
// number. Extreme parameters can overflow float64 without being invalid.
func (r *Result) Finite() bool {
	return allFinite(r.Prices) && allFinite(r.MovingAverage)
}

func allFinite(s []float64) bool {
	for _, v := range s {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}
