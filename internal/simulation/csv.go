package simulation

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/FutureQuant/Random-walk/internal/model"
)

// seriesValue formats with the shortest representation that parses back to
// the same float64.
type seriesValue float64

func (v seriesValue) MarshalCSV() (string, error) {
	return strconv.FormatFloat(float64(v), 'g', -1, 64), nil
}

func (v *seriesValue) UnmarshalCSV(s string) error {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*v = seriesValue(f)
	return nil
}

type seriesRow struct {
	Value seriesValue `csv:"value"`
}

// WriteSeries writes one value per line, no header.
func WriteSeries(w io.Writer, series []float64) error {
	rows := make([]seriesRow, len(series))
	for i, v := range series {
		rows[i].Value = seriesValue(v)
	}
	return gocsv.MarshalWithoutHeaders(&rows, w)
}

// WriteSeriesCSV writes series to path, creating parent directories.
// Any failure comes back as *model.IOWriteError.
func WriteSeriesCSV(path string, series []float64) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &model.IOWriteError{Path: path, Err: err}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return &model.IOWriteError{Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &model.IOWriteError{Path: path, Err: cerr}
		}
	}()

	if err := WriteSeries(f, series); err != nil {
		return &model.IOWriteError{Path: path, Err: err}
	}
	return nil
}

// ReadSeries parses a series written one value per line. Comma-separated
// lines are accepted too and read left to right. An empty input is an empty
// series.
func ReadSeries(r io.Reader) ([]float64, error) {
	fr, err := newFlatReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse series: %w", err)
	}
	if len(fr.records) == 0 {
		return []float64{}, nil
	}

	var rows []seriesRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(fr, &rows); err != nil {
		return nil, fmt.Errorf("parse series: %w", err)
	}
	out := make([]float64, len(rows))
	for i, row := range rows {
		out[i] = float64(row.Value)
	}
	return out, nil
}

// flatReader is a gocsv.CSVReader that yields every non-empty field of a
// variable-width CSV as its own one-column record.
type flatReader struct {
	records [][]string
}

func newFlatReader(r io.Reader) (*flatReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	raw, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	fr := &flatReader{}
	for _, rec := range raw {
		for _, field := range rec {
			if field = strings.TrimSpace(field); field != "" {
				fr.records = append(fr.records, []string{field})
			}
		}
	}
	return fr, nil
}

func (f *flatReader) Read() ([]string, error) {
	if len(f.records) == 0 {
		return nil, io.EOF
	}
	rec := f.records[0]
	f.records = f.records[1:]
	return rec, nil
}

func (f *flatReader) ReadAll() ([][]string, error) {
	out := f.records
	f.records = nil
	return out, nil
}

func ReadSeriesCSV(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, err := ReadSeries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return series, nil
}
