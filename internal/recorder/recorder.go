package recorder

import (
	"time"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// RunRecord is one simulation run as kept in the run history.
type RunRecord struct {
	ID        string
	CreatedAt time.Time
	Source    string // "cli" or "api"
	Params    model.Params

	FinalPrice       float64
	PriceMean        float64
	MovingAverageLen int

	PricesFile         string
	PricesError        string
	MovingAverageFile  string
	MovingAverageError string
}

// Recorder persists run history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecentRuns(limit int) ([]RunRecord, error)
	Close() error
}
