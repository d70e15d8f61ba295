// Package levenshtein defines tunable options and error definitions
// for the edit-distance engines.
package levenshtein

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the distance entry points.
var (
	// ErrNegativeMaxDistance is returned when a negative cap is supplied
	// via WithMaxDistance. Use the default (Unbounded) to disable capping.
	ErrNegativeMaxDistance = errors.New("levenshtein: MaxDistance must be non-negative")
)

// Unbounded marks MaxDistance as unset: the full distance is computed
// with no cap and no banding.
const Unbounded = -1

// CostFunc is the substitution-cost capability injected into the engines:
// a pure function from a symbol pair to a non-negative cost (0 or 1 in
// this design). It must be total over every pair the inputs can produce
// and symmetric if the resulting distance is expected to be symmetric.
// Insertion and deletion always cost 1 regardless of CostFunc.
type CostFunc func(a, b rune) int

// IdentityCost is the default CostFunc: 0 if the symbols are equal, 1
// otherwise. With IdentityCost the resulting distance is a proper metric.
func IdentityCost(a, b rune) int {
	if a == b {
		return 0
	}

	return 1
}

// Options configures a distance computation.
//
// Cost        – substitution cost function (default IdentityCost).
// MaxDistance – cap on the returned distance. When set to a value ≥ 0 the
//
//	banded bounded engine runs and the result is
//	min(true distance, MaxDistance). Unbounded (default)
//	disables the cap and runs the full engine.
type Options struct {
	Cost        CostFunc // substitution cost for a symbol pair
	MaxDistance int      // cap; Unbounded means no cap

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a distance call.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults:
//   - IdentityCost substitution cost
//   - no cap (MaxDistance == Unbounded)
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Cost:        IdentityCost,
		MaxDistance: Unbounded,
		err:         nil,
	}
}

// WithCost injects a custom substitution cost function.
// A nil fn is ignored and the default IdentityCost is kept.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxDistance caps the returned distance at k and switches to the
// banded bounded engine.
//
//	k > 0: result is min(true distance, k)
//	k == 0: result is 0 — the cap itself — for any inputs
//	k < 0: invalid option → ErrNegativeMaxDistance
func WithMaxDistance(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrNegativeMaxDistance, k)

			return
		}
		o.MaxDistance = k
	}
}
