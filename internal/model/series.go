package model

// ReturnSeries holds one sampled daily return per step.
type ReturnSeries []float64

// PriceSeries holds the compounded price after each step.
// p[0] = start*(1+r[0]); p[i] = p[i-1]*(1+r[i]).
type PriceSeries []float64

// MovingAverageSeries holds "valid" window means: ma[i] = mean(p[i..i+w-1]).
type MovingAverageSeries []float64

// SeriesKind names a persisted series. Keep these values stable; they appear
// in file names, API routes and the run history.
type SeriesKind string

const (
	SeriesPrices        SeriesKind = "prices"
	SeriesMovingAverage SeriesKind = "moving_avg"
)
