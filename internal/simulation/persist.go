package simulation

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// OutputPaths names the destination of each series. An empty path skips that series.
type OutputPaths struct {
	Prices        string
	MovingAverage string
}

// FileOutcome is the result of writing one series.
type FileOutcome struct {
	Kind model.SeriesKind
	Path string
	Rows int
	Err  error
}

type PersistReport struct {
	Files []FileOutcome
}

// Err joins every per-file failure, or returns nil.
func (r PersistReport) Err() error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errors.Join(errs...)
}

// Outcome returns the outcome for kind, if that series was written.
func (r PersistReport) Outcome(kind model.SeriesKind) (FileOutcome, bool) {
	for _, f := range r.Files {
		if f.Kind == kind {
			return f, true
		}
	}
	return FileOutcome{}, false
}

// Persist writes each series independently: a failed prices file never stops
// the moving-average file, and res is left untouched either way.
func Persist(res *Result, paths OutputPaths) PersistReport {
	var report PersistReport
	targets := []struct {
		kind model.SeriesKind
		path string
	}{
		{model.SeriesPrices, paths.Prices},
		{model.SeriesMovingAverage, paths.MovingAverage},
	}

	for _, t := range targets {
		if t.path == "" {
			continue
		}
		series := res.Series(t.kind)
		err := WriteSeriesCSV(t.path, series)
		out := FileOutcome{Kind: t.kind, Path: t.path, Err: err}
		entry := log.WithFields(log.Fields{"series": t.kind, "file": t.path})
		if err != nil {
			entry.Errorf("Error saving %s: %v", t.path, err)
		} else {
			out.Rows = len(series)
			entry.WithField("rows", out.Rows).Infof("Successfully saved %s", t.path)
		}
		report.Files = append(report.Files, out)
	}
	return report
}
