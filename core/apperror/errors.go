package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds surfaced by the pipeline and the read operations.
var (
	ErrSourceUnavailable = errors.New("source_unavailable")
	ErrSourceError       = errors.New("source_error")
	ErrNotFound          = errors.New("not_found")
	ErrInternal          = errors.New("internal_error")
	ErrInvalidRequest    = errors.New("invalid_request")
	ErrRunInProgress     = errors.New("run_in_progress")
)

// SourceError describes a failed call to the external country source.
// Status is the upstream HTTP status, or 0 when no response was received.
type SourceError struct {
	Status  int
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("source error (status %d): %s", e.Status, e.Message)
	}
	return "source error: " + e.Message
}

// Is reports a match against ErrSourceError so callers can use errors.Is.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceError
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as ErrSourceUnavailable.
func Unavailable(err error) error {
	if err == nil {
		return ErrSourceUnavailable
	}
	return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
}

// Internal wraps err as ErrInternal unless it already carries a known kind.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	if Kind(err) != ErrInternal {
		return err
	}
	if errors.Is(err, ErrInternal) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

// NotFoundf builds an ErrNotFound with a formatted detail.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Kind returns the sentinel that classifies err. Unknown errors are internal.
func Kind(err error) error {
	switch {
	case errors.Is(err, ErrSourceUnavailable):
		return ErrSourceUnavailable
	case errors.Is(err, ErrSourceError):
		return ErrSourceError
	case errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrInvalidRequest):
		return ErrInvalidRequest
	case errors.Is(err, ErrRunInProgress):
		return ErrRunInProgress
	default:
		return ErrInternal
	}
}

// HTTPStatus maps an error to the status code the transport layer reports.
func HTTPStatus(err error) int {
	switch Kind(err) {
	case ErrSourceUnavailable:
		return http.StatusServiceUnavailable
	case ErrSourceError:
		return http.StatusBadGateway
	case ErrNotFound:
		return http.StatusNotFound
	case ErrInvalidRequest:
		return http.StatusBadRequest
	case ErrRunInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
