// Package ranged provides bounded integer value types: wrappers around
// fixed-width integers that are guaranteed to lie inside an inclusive range
// declared at construction.
//
// The point of the package is to move a recurring runtime invariant ("this
// field is always between X and Y") into a value that carries the invariant
// with it. Validation happens exactly once, at the construction site; every
// consumer downstream can read the value without re-checking it.
//
// # Overview
//
// The package exports one generic type, Ranged[T], instantiable for any
// signed or unsigned integer type (aliases RangedU8 through RangedI64 cover
// the fixed-width representations). A Ranged value is immutable: there is no
// setter, and the accessors hand the scalar back by value.
//
// Construction comes in two forms:
//
//   - New validates the value against [min, max] and returns a typed error
//     on violation. It never panics.
//   - NewUnchecked skips validation entirely. It exists to avoid redundant
//     checks when the caller already holds proof the value is in range; out
//     of contract use silently breaks the invariant.
//
// # Usage
//
//	import "github.com/zwhiteley/ranger/pkg/ranged"
//
//	// A legal adult age: an 8-bit value in [18, 255].
//	age, err := ranged.New[uint8](21, 18, 255)
//	if err != nil {
//	    return err
//	}
//
//	// The invariant travels with the value.
//	fmt.Println(age.Value(), age.Min(), age.Max()) // 21 18 255
//
//	// A value already proven in range can skip the check.
//	same := ranged.NewUnchecked(age.Value(), age.Min(), age.Max())
//
// # Error Handling
//
// New classifies failures in a fixed order and reports each with a typed
// error carrying the offending value and the violated bound:
//
//   - InvalidRangeError: min > max, so the range admits no value at all.
//     Checked first; an inverted range would misclassify every input.
//   - TooSmallError: the value is below min.
//   - TooLargeError: the value is above max.
//
// Each typed error unwraps to a matching sentinel (ErrInvalidRange,
// ErrTooSmall, ErrTooLarge), so callers can branch with errors.Is or pull
// the diagnostic data out with errors.As:
//
//	var tooSmall ranged.TooSmallError[uint8]
//	if errors.As(err, &tooSmall) {
//	    log.Printf("got %d, need at least %d", tooSmall.Value, tooSmall.Minimum)
//	}
//
// # Concurrency
//
// Every operation is a pure function of its inputs. A constructed Ranged is
// immutable and safe to share across goroutines without locking.
//
// # Limitations
//
// Arithmetic between ranged values is deliberately not defined: the range of
// a sum or product of two ranged values has no single obvious answer, so the
// package takes no position. Extract with Value, compute on the raw integer
// and re-validate the result with New.
package ranged
