// Package phonetic defines tunable options and the homophone-lookup
// capability for phonetic distance computation.
package phonetic

import (
	"fmt"

	"github.com/katalvlaran/phonolev/levenshtein"
)

// GroupFunc is the one external collaborator of this package: a keyed
// lookup that returns the homophone group of word — the set of words
// considered interchangeable with it — or an empty/nil set when the word
// has none.
//
// Implementations may hit a file, a database or an in-memory map (see
// package homophone). A non-nil error is treated exactly like "no group
// found": the gate degrades gracefully and the DP engines run as usual.
type GroupFunc func(word string) (map[string]struct{}, error)

// Options configures a phonetic distance computation.
//
// MaxDistance – cap on the returned distance, as in package levenshtein.
//
//	levenshtein.Unbounded (default) disables the cap.
//
// Homophones  – optional homophone-group lookup; nil disables the gate.
type Options struct {
	MaxDistance int
	Homophones  GroupFunc

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Distance.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults:
//   - no cap (MaxDistance == levenshtein.Unbounded)
//   - no homophone gate
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		MaxDistance: levenshtein.Unbounded,
		Homophones:  nil,
		err:         nil,
	}
}

// WithMaxDistance caps the returned distance at k, delegating to the
// banded bounded engine.
//
//	k >= 0: result is min(true phonetic distance, k)
//	k < 0:  invalid option → levenshtein.ErrNegativeMaxDistance
func WithMaxDistance(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: got %d", levenshtein.ErrNegativeMaxDistance, k)

			return
		}
		o.MaxDistance = k
	}
}

// WithHomophones enables the homophone gate backed by fn.
// A nil fn is ignored and the gate stays disabled.
func WithHomophones(fn GroupFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Homophones = fn
		}
	}
}
