package window

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned by New for an unknown window kind.
	// The check happens at construction so a bad kind surfaces before
	// any coefficients are generated.
	ErrUnsupportedType = errors.New("unsupported window type")

	// ErrZeroLength is returned when a window of length zero (or less)
	// is requested.
	ErrZeroLength = errors.New("window length must be > 0")

	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("length %d: %w", length, ErrZeroLength)
	}

	return nil
}
