package facade

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks caller mistakes: an empty or malformed URL, slug or
// query, an unknown site, or an operation the site does not offer. These are
// rejected before anything is fetched.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// FetchError reports that the page for an operation could not be fetched.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
