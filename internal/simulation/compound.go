package simulation

import (
	"fmt"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// Compound turns a return path into a price path:
// out[i] = startPrice * (1+r[0]) * ... * (1+r[i]).
func Compound(returns model.ReturnSeries, startPrice float64) (model.PriceSeries, error) {
	if startPrice <= 0 {
		return nil, fmt.Errorf("%w: start_price must be > 0, got %g", model.ErrInvalidParameter, startPrice)
	}

	out := make(model.PriceSeries, len(returns))
	price := startPrice
	for i, r := range returns {
		price *= 1 + r
		out[i] = price
	}
	return out, nil
}
