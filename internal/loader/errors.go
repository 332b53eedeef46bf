package loader

import (
	"errors"
	"fmt"
)

// Sentinel causes distinguishable through errors.Is on a *LoadError.
var (
	// ErrSourceUnavailable: the raw bytes could not be fetched (missing
	// file, network failure, timeout, non-2xx blob response).
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrDecode: the bytes are not a valid workbook or contain no sheets.
	ErrDecode = errors.New("invalid workbook")
)

// LoadError wraps any failure to produce a dataset from the source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
