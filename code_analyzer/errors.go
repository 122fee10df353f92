package code_analyzer

import (
	"errors"
	"fmt"
)

// ErrInvalidRequest indicates a caller contract violation: exactly one of
// repo_url or local_path must be provided. It is returned before any I/O.
var ErrInvalidRequest = errors.New("exactly one of repo_url or local_path must be provided")

// AcquisitionError indicates a remote source could not be fetched. It is
// fatal for the whole analysis run and is never retried here.
type AcquisitionError struct {
	Source string
	Err    error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("failed to acquire source %s: %v", e.Source, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
