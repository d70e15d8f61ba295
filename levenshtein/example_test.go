package levenshtein_test

import (
	"fmt"

	"github.com/katalvlaran/phonolev/levenshtein"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistanceStrings
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The textbook pair: "kitten" → "sitting".
//	  k→s substitution, e→i substitution, +g insertion.
//
// Options:
//   - none (identity cost, no cap)
//
// Use case:
//
//	Plain edit distance for spell-check style ranking.
//
// Complexity: O(N·M) time, O(M) memory
func ExampleDistanceStrings() {
	d, err := levenshtein.DistanceStrings("kitten", "sitting")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%d\n", d)
	// Output:
	// distance=3
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistanceStrings_maxDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Fuzzy lookup where anything beyond 1 edit is "no match": the banded
//	engine stops as soon as the result is provably at/above the cap.
//	  "abc" vs "xyz" has true distance 3, returned as the cap 1.
//
// Options:
//   - WithMaxDistance(1)
//
// Use case:
//
//	Filtering candidate words against a query under a tight edit budget.
//
// Complexity: O(min(N,M)·k) time, O(min(N,M)) memory
func ExampleDistanceStrings_maxDistance() {
	d, err := levenshtein.DistanceStrings("abc", "xyz", levenshtein.WithMaxDistance(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%d\n", d)
	// Output:
	// distance=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance_reusedSequence
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One query compared against many candidates: decode the query once and
//	reuse the []rune sequence for every call.
//
// Options:
//   - WithMaxDistance(2)
//
// Use case:
//
//	Dictionary scans where re-decoding the query would dominate runtime.
func ExampleDistance_reusedSequence() {
	query := []rune("gopher")
	for _, candidate := range []string{"gopher", "gophers", "graphite"} {
		d, err := levenshtein.Distance(query, []rune(candidate), levenshtein.WithMaxDistance(2))
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("%s=%d\n", candidate, d)
	}
	// Output:
	// gopher=0
	// gophers=1
	// graphite=2
}
