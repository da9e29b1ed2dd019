package ranged

import "fmt"

// Ranged wraps a single integer together with the inclusive range it is
// guaranteed to lie in. The range is fixed at construction and the value is
// immutable afterward, so once a Ranged exists its consumers can rely on
// min <= value <= max without re-validating.
//
// Ranged values are plain comparable structs: == reports two values equal
// only when both the stored value and the range match, so values carrying
// different ranges never compare equal. The zero value is 0 in [0, 0].
type Ranged[T Integer] struct {
	value T
	min   T
	max   T
}

// New validates value against the inclusive range [min, max] and wraps it.
//
// Failures are classified in a fixed order: an inverted range (min > max)
// fails with an InvalidRangeError before the value is even considered, then
// a value below min fails with a TooSmallError and a value above max with a
// TooLargeError. On success the value is stored unchanged, never clamped or
// rounded. New never panics.
func New[T Integer](value, min, max T) (Ranged[T], error) {
	if min > max {
		return Ranged[T]{}, InvalidRangeError[T]{Minimum: min, Maximum: max}
	}
	if value < min {
		return Ranged[T]{}, TooSmallError[T]{Value: value, Minimum: min}
	}
	if value > max {
		return Ranged[T]{}, TooLargeError[T]{Value: value, Maximum: max}
	}
	return Ranged[T]{value: value, min: min, max: max}, nil
}

// NewUnchecked wraps value with no validation at all.
//
// The caller must guarantee min <= value <= max; if min > max the call is
// always a contract violation. The type does not re-check afterward, so a
// Ranged built from an out-of-range value silently carries a broken
// invariant. Use this only when the invariant is already established, e.g.
// the value came from another Ranged with an equal or narrower range.
// Otherwise use New.
func NewUnchecked[T Integer](value, min, max T) Ranged[T] {
	return Ranged[T]{value: value, min: min, max: max}
}

// Value returns the stored value. For values built with New, or with
// NewUnchecked under its contract, the result lies in [Min, Max].
func (r Ranged[T]) Value() T {
	return r.value
}

// Min returns the inclusive minimum of the range.
func (r Ranged[T]) Min() T {
	return r.min
}

// Max returns the inclusive maximum of the range.
func (r Ranged[T]) Max() T {
	return r.max
}

// Contains reports whether v lies within the range of r. It can be used to
// establish the NewUnchecked contract before handing a raw value over.
func (r Ranged[T]) Contains(v T) bool {
	return v >= r.min && v <= r.max
}

// Compare orders two ranged values by their stored values, ignoring the
// ranges. It returns -1 when r is smaller, 0 when the values are equal and
// +1 when r is greater.
func (r Ranged[T]) Compare(other Ranged[T]) int {
	switch {
	case r.value < other.value:
		return -1
	case r.value > other.value:
		return 1
	default:
		return 0
	}
}

// String renders the stored value exactly as the underlying integer would
// render itself. The range is a construction-time fact, not part of the
// printed value.
func (r Ranged[T]) String() string {
	return fmt.Sprintf("%d", r.value)
}
