package levenshtein

import "slices"

// bounded — banded edit distance with early exit.
//
// Description:
//
//	bounded returns min(true distance, maxDist) while avoiding full
//	O(n·m) work when the true distance is far below or at/above the cap.
//	Only a diagonal band of width ~2·maxDist+1 around the alignment
//	diagonal is ever computed; cells outside the band behave as if they
//	held a sentinel larger than any achievable distance.
//
// Algorithm Outline:
//  1. Fast paths: equal sequences → 0; |n−m| ≥ maxDist → maxDist
//     (length difference alone meets the cap).
//  2. Swap so the shorter sequence indexes rows: memory stays
//     O(min(n,m)) and the band logic may assume n ≤ m.
//  3. Seed the rolling row with d[j] = j for j ≤ maxDist and the
//     sentinel beyond — columns past the cutoff are outside every band
//     until the band catches up and must never look cheaply reachable.
//  4. For row i, sweep j over [max(0, i−maxDist−1), min(m−1, i+maxDist)].
//     The diagonal scalar e seeds to i+1 while the band still includes
//     column 0; once the band's start moves right of it, e re-seeds to
//     the sentinel, because the previous row may have left a stale value
//     to the left of the current band's start.
//  5. Early exit: before computing column j == (m−n)+i, if the stored
//     previous-row value there is already ≥ maxDist, return maxDist —
//     values along a diagonal never decrease as the band advances.
//  6. After the sweep, store x into d[jEnd+1] so the next row sees a
//     correct "row above" value at the band's trailing edge.
//
// Complexity:
//
//	Time   = O(min(n,m)·maxDist) worst case, far less with early exit
//	Memory = O(min(n,m))
func bounded(s, t []rune, maxDist int, cost CostFunc) int {
	if slices.Equal(s, t) {
		return 0
	}

	// The shorter sequence plays the row role.
	if len(s) > len(t) {
		s, t = t, s
	}
	n, m := len(s), len(t)

	// Insertions alone already meet or exceed the cap.
	// For maxDist == 0 this always fires on unequal inputs.
	if m-n >= maxDist {
		return maxDist
	}
	if n == 0 {
		return m // m < maxDist here
	}

	// Sentinel strictly above any achievable distance (≤ m ≤ n·m).
	big := n*m + 1

	d := make([]int, m+1)
	for j := range d {
		if j <= maxDist {
			d[j] = j
		} else {
			d[j] = big
		}
	}

	offset := m - n // column shift of the true alignment diagonal

	var x int
	for i := 0; i < n; i++ {
		jStart := i - maxDist - 1
		if jStart < 0 {
			jStart = 0
		}
		jEnd := i + maxDist
		if jEnd > m-1 {
			jEnd = m - 1
		}
		diag := offset + i

		// While the band still touches column 0 the cell to its left is
		// real: transforming s[:i+1] into nothing costs i+1 deletions.
		// Once the band's start moves past column 0, whatever the previous
		// row left there is stale and must read as unreachable.
		e := big
		if jStart == 0 {
			e = i + 1
		}

		for j := jStart; j <= jEnd; j++ {
			// d[j] still holds the previous row here; once it is at or
			// above the cap on the alignment diagonal, no later row can
			// come back under it.
			if j == diag && d[j] >= maxDist {
				return maxDist
			}
			x = min3(d[j+1]+1, e+1, d[j]+cost(s[i], t[j]))
			d[j] = e
			e = x
		}
		d[jEnd+1] = x
	}

	if x > maxDist {
		return maxDist
	}

	return x
}
