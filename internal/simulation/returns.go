package simulation

import (
	"fmt"
	"math/rand"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// NewRand returns a generator owned by a single run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// GenerateReturns samples p.Count i.i.d. normal daily returns with mean
// p.MeanReturn and standard deviation p.StdReturn.
//
// rng is owned by the caller; a nil rng is seeded from p.Seed. The same seed
// and params always produce the same sequence.
func GenerateReturns(p model.Params, rng *rand.Rand) (model.ReturnSeries, error) {
	if p.Count <= 0 {
		return nil, fmt.Errorf("%w: count must be > 0, got %d", model.ErrInvalidParameter, p.Count)
	}
	if p.StdReturn < 0 {
		return nil, fmt.Errorf("%w: std_return must be >= 0, got %g", model.ErrInvalidParameter, p.StdReturn)
	}
	if rng == nil {
		rng = NewRand(p.Seed)
	}

	out := make(model.ReturnSeries, p.Count)
	for i := range out {
		out[i] = p.MeanReturn + p.StdReturn*rng.NormFloat64()
	}
	return out, nil
}
