package core

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when a CSV source has no data rows.
var ErrEmptyInput = errors.New("file is empty or has no data rows")

// ReadError covers every load failure other than an empty input.
type ReadError struct {
	Path string
	Line int // 0 when the failure is not tied to a row
	Err  error
}

func (e *ReadError) Error() string {
	switch {
	case e.Path != "" && e.Line > 0:
		return fmt.Sprintf("read %s: line %d: %v", e.Path, e.Line, e.Err)
	case e.Path != "":
		return fmt.Sprintf("read %s: %v", e.Path, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("read csv: line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("read csv: %v", e.Err)
	}
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// WriteError is returned when a dataset cannot be saved.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("write csv: %v", e.Err)
	}
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
