package model

import "fmt"

// Params fully determines a simulation run given the random-number algorithm.
// Units:
// - Count: number of daily steps
// - StartPrice: price before the first return is applied
// - MeanReturn, StdReturn: fractional daily return, e.g. 0.01 = 1%
// - Window: moving-average window in steps
type Params struct {
	Count      int
	StartPrice float64
	MeanReturn float64
	StdReturn  float64
	Window     int
	Seed       int64
}

// Suggested defaults. None of them is a constant of the domain.
const (
	DefaultCount      = 1_000_000
	DefaultStartPrice = 100.0
	DefaultMeanReturn = 0.0
	DefaultStdReturn  = 0.01
	DefaultWindow     = 20
	DefaultSeed       = int64(42)
)

func DefaultParams() Params {
	return Params{
		Count:      DefaultCount,
		StartPrice: DefaultStartPrice,
		MeanReturn: DefaultMeanReturn,
		StdReturn:  DefaultStdReturn,
		Window:     DefaultWindow,
		Seed:       DefaultSeed,
	}
}

// Validate checks every field. Window violations match both ErrInvalidParameter
// and ErrInvalidWindow.
func (p Params) Validate() error {
	if p.Count <= 0 {
		return fmt.Errorf("%w: count must be > 0, got %d", ErrInvalidParameter, p.Count)
	}
	if p.StartPrice <= 0 {
		return fmt.Errorf("%w: start_price must be > 0, got %g", ErrInvalidParameter, p.StartPrice)
	}
	if p.StdReturn < 0 {
		return fmt.Errorf("%w: std_return must be >= 0, got %g", ErrInvalidParameter, p.StdReturn)
	}
	if p.Window < 1 || p.Window > p.Count {
		return fmt.Errorf("%w: %w: window must satisfy 1 <= window <= count (%d), got %d",
			ErrInvalidParameter, ErrInvalidWindow, p.Count, p.Window)
	}
	return nil
}

// MovingAverageLen is the length of the "valid" moving-average series.
func (p Params) MovingAverageLen() int {
	if p.Window < 1 || p.Window > p.Count {
		return 0
	}
	return p.Count - p.Window + 1
}
