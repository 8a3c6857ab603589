package importer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers classify flow failures for callers. Validation and
// configuration problems are the user's to fix; provider faults deserve a
// retry hint; storage faults mean the save was rejected and can be retried.
var (
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrProvider      = errors.New("provider error")
	ErrNoMatches     = errors.New("no matching releases")
	ErrNotFound      = errors.New("not found")
	ErrStorage       = errors.New("storage error")
)

// wrap tags an error with a sentinel marker and operation context so callers
// can classify it with errors.Is while keeping the underlying cause.
func wrap(marker error, operation string, err error) error {
	operation = strings.TrimSpace(operation)
	if marker == nil {
		marker = ErrProvider
	}
	if err != nil {
		if operation == "" {
			return fmt.Errorf("%w: %w", marker, err)
		}
		return fmt.Errorf("%w: %s: %w", marker, operation, err)
	}
	return fmt.Errorf("%w: %s", marker, operation)
}
