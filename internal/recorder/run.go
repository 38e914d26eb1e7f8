package recorder

import (
	"time"

	"github.com/google/uuid"

	"github.com/FutureQuant/Random-walk/internal/model"
	"github.com/FutureQuant/Random-walk/internal/simulation"
)

// NewRunRecord builds a history row for res. id may be empty, in which case a
// new UUID is assigned.
func NewRunRecord(id, source string, res *simulation.Result, priceMean float64, report simulation.PersistReport) *RunRecord {
	if id == "" {
		id = uuid.NewString()
	}
	rec := &RunRecord{
		ID:               id,
		CreatedAt:        time.Now(),
		Source:           source,
		Params:           res.Params,
		FinalPrice:       res.FinalPrice(),
		PriceMean:        priceMean,
		MovingAverageLen: len(res.MovingAverage),
	}
	if out, ok := report.Outcome(model.SeriesPrices); ok {
		rec.PricesFile = out.Path
		rec.PricesError = errString(out.Err)
	}
	if out, ok := report.Outcome(model.SeriesMovingAverage); ok {
		rec.MovingAverageFile = out.Path
		rec.MovingAverageError = errString(out.Err)
	}
	return rec
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
