package simulation

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FutureQuant/Random-walk/internal/model"
)

func TestWriteSeries_OneValuePerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, []float64{100, 100.5, 0.1}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"100", "100.5", "0.1"}, lines)
}

func TestWriteSeries_Lossless(t *testing.T) {
	in := []float64{math.Pi, 1.0 / 3.0, 123456.789012345678, 1e-300, 99.99999999999999}

	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, in))
	out, err := ReadSeries(&buf)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestWriteSeriesCSV_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "prices.csv")
	require.NoError(t, WriteSeriesCSV(path, []float64{1, 2, 3}))

	got, err := ReadSeriesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}

func TestWriteSeriesCSV_ReportsIOWriteError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	path := filepath.Join(blocker, "prices.csv")
	err := WriteSeriesCSV(path, []float64{1})
	require.Error(t, err)

	var ioErr *model.IOWriteError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, path, ioErr.Path)
}

func TestReadSeries_RejectsGarbage(t *testing.T) {
	_, err := ReadSeries(strings.NewReader("1.5\nnot-a-number\n"))
	assert.Error(t, err)
}

func TestReadSeries_CommaSeparated(t *testing.T) {
	got, err := ReadSeries(strings.NewReader("1,2\n3\n4.5, 6,\n"))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4.5, 6}, got)
}

func TestReadSeries_EmptyInput(t *testing.T) {
	got, err := ReadSeries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = MovingAverage(got, 1)
	assert.True(t, errors.Is(err, model.ErrInvalidWindow))
}
