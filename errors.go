package buckethash

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a nil key or value reaches an operation that rejects it.
// The table is never modified when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnsupportedOperation marks operations the Table deliberately does not provide.
var ErrUnsupportedOperation = fmt.Errorf("buckethash: %w", errors.ErrUnsupported)

func nilKeyError(op string) error {
	return fmt.Errorf("%s: nil key: %w", op, ErrInvalidArgument)
}

func nilValueError(op string) error {
	return fmt.Errorf("%s: nil value: %w", op, ErrInvalidArgument)
}
