package simulation

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/FutureQuant/Random-walk/internal/model"
)

type Engine struct {
	logger *log.Entry
}

func New() *Engine {
	return &Engine{logger: log.WithField("component", "simulation")}
}

// Run executes the full pipeline: returns -> prices -> moving average.
// Each call owns its generator, so concurrent runs never share random state.
func (e *Engine) Run(p model.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	started := time.Now()
	rng := NewRand(p.Seed)

	returns, err := GenerateReturns(p, rng)
	if err != nil {
		return nil, fmt.Errorf("generate returns: %w", err)
	}

	prices, err := Compound(returns, p.StartPrice)
	if err != nil {
		return nil, fmt.Errorf("compound returns: %w", err)
	}

	ma, err := MovingAverage(prices, p.Window)
	if err != nil {
		return nil, fmt.Errorf("moving average: %w", err)
	}

	e.logger.WithFields(log.Fields{
		"count":   p.Count,
		"window":  p.Window,
		"seed":    p.Seed,
		"elapsed": time.Since(started).String(),
	}).Debug("simulation finished")

	return &Result{
		Params:        p,
		Returns:       returns,
		Prices:        prices,
		MovingAverage: ma,
	}, nil
}
