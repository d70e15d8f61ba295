// Package levenshtein computes edit distances between sequences of
// Unicode codepoints, with an optional early-exit bound and a pluggable
// per-symbol substitution cost.
//
// 🚀 What is levenshtein?
//
//	The classic minimum-edit-cost problem: how many single-symbol
//	insertions, deletions and substitutions turn one sequence into the
//	other?  It’s widely used in:
//	  • Spelling correction & fuzzy search
//	  • Record linkage & deduplication
//	  • OCR and speech-recognition post-processing
//	  • Bioinformatics-style sequence comparison
//
// ✨ Key features:
//   - unbounded engine: exact O(N·M) time, one rolling row of memory
//   - bounded engine: banded DP around the alignment diagonal with early
//     exit once the result is provably at/above the cap (WithMaxDistance)
//   - substitution cost as a first-class function value (WithCost);
//     insertions and deletions always cost 1
//   - accepts pre-decoded []rune sequences, so one side can be reused
//     across many comparisons without re-decoding
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phonolev/levenshtein"
//
//	// plain distance
//	d, err := levenshtein.DistanceStrings("kitten", "sitting")
//
//	// capped distance: returns min(true distance, 2)
//	d, err = levenshtein.DistanceStrings("kitten", "sitting",
//	    levenshtein.WithMaxDistance(2),
//	)
//
// No Unicode normalization is performed on either input; callers must
// normalize beforehand if combining characters matter to them.
//
// Performance:
//
//   - Time:   O(N·M) unbounded, O(min(N,M)·k) bounded with cap k
//   - Memory: O(M) unbounded, O(min(N,M)) bounded (shorter side swapped
//     into the row role)
//
// See examples in example_test.go for detailed walkthroughs.
package levenshtein
