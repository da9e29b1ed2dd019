package ranged

import (
	"errors"
	"fmt"
)

// Sentinel errors for branching on the failure kind with errors.Is.
// The concrete error returned by New is always one of the typed errors
// below, which unwrap to these.
var (
	// ErrTooSmall is returned when the value is below the minimum of the range.
	ErrTooSmall = errors.New("ranged: value below minimum")
	// ErrTooLarge is returned when the value is above the maximum of the range.
	ErrTooLarge = errors.New("ranged: value above maximum")
	// ErrInvalidRange is returned when the minimum of the range exceeds its
	// maximum, so no value can satisfy it.
	ErrInvalidRange = errors.New("ranged: minimum exceeds maximum")
)

// TooSmallError reports a value below the minimum of the range.
type TooSmallError[T Integer] struct {
	// Value is the value that was provided.
	Value T
	// Minimum is the smallest value the range admits.
	Minimum T
}

func (e TooSmallError[T]) Error() string {
	return fmt.Sprintf("value provided, %d, is lesser than the minimum value, %d, for the type", e.Value, e.Minimum)
}

func (e TooSmallError[T]) Unwrap() error { return ErrTooSmall }

// TooLargeError reports a value above the maximum of the range.
type TooLargeError[T Integer] struct {
	// Value is the value that was provided.
	Value T
	// Maximum is the largest value the range admits.
	Maximum T
}

func (e TooLargeError[T]) Error() string {
	return fmt.Sprintf("value provided, %d, is greater than the maximum value, %d, for the type", e.Value, e.Maximum)
}

func (e TooLargeError[T]) Unwrap() error { return ErrTooLarge }

// InvalidRangeError reports a range whose minimum exceeds its maximum.
// Such a range is empty: every construction attempt fails with this error
// regardless of the value supplied.
type InvalidRangeError[T Integer] struct {
	// Minimum is the declared minimum of the range.
	Minimum T
	// Maximum is the declared maximum of the range.
	Maximum T
}

func (e InvalidRangeError[T]) Error() string {
	return fmt.Sprintf("the minimum value, %d, is greater than the maximum value, %d", e.Minimum, e.Maximum)
}

func (e InvalidRangeError[T]) Unwrap() error { return ErrInvalidRange }
