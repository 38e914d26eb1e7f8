package simulation

import (
	"fmt"
	"math"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// MovingAverage computes the trailing simple moving average in "valid" mode:
// len(prices)-window+1 values, no padding and no partial windows.
//
// The window sum slides in O(n) with compensated summation, so drift stays
// far below 1e-9 relative even for million-step series.
func MovingAverage(prices model.PriceSeries, window int) (model.MovingAverageSeries, error) {
	n := len(prices)
	if window < 1 || window > n {
		return nil, fmt.Errorf("%w: window must satisfy 1 <= window <= %d, got %d", model.ErrInvalidWindow, n, window)
	}

	out := make(model.MovingAverageSeries, n-window+1)
	if window == 1 {
		copy(out, prices)
		return out, nil
	}

	w := float64(window)
	var acc compensatedSum
	for i := 0; i < window; i++ {
		acc.add(prices[i])
	}
	out[0] = acc.value() / w

	for i := window; i < n; i++ {
		acc.add(prices[i])
		acc.add(-prices[i-window])
		out[i-window+1] = acc.value() / w
	}
	return out, nil
}

// NaiveMovingAverage is the O(n*window) reference: every window summed from scratch.
func NaiveMovingAverage(prices model.PriceSeries, window int) (model.MovingAverageSeries, error) {
	n := len(prices)
	if window < 1 || window > n {
		return nil, fmt.Errorf("%w: window must satisfy 1 <= window <= %d, got %d", model.ErrInvalidWindow, n, window)
	}

	out := make(model.MovingAverageSeries, n-window+1)
	for i := range out {
		sum := 0.0
		for j := i; j < i+window; j++ {
			sum += prices[j]
		}
		out[i] = sum / float64(window)
	}
	return out, nil
}

// compensatedSum is a Neumaier running sum.
type compensatedSum struct {
	sum float64
	c   float64
}

func (s *compensatedSum) add(x float64) {
	t := s.sum + x
	if math.Abs(s.sum) >= math.Abs(x) {
		s.c += (s.sum - t) + x
	} else {
		s.c += (x - t) + s.sum
	}
	s.sum = t
}

func (s *compensatedSum) value() float64 {
	return s.sum + s.c
}
