package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for any parameter outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidWindow is returned when a window is not in [1, len(series)].
	ErrInvalidWindow = errors.New("invalid window")
)

// IOWriteError reports a failed write of one output file.
// The computed series stay valid when this is returned.
type IOWriteError struct {
	Path string
	Err  error
}

func (e *IOWriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOWriteError) Unwrap() error { return e.Err }
