package levenshtein

// Distance — Levenshtein edit distance over codepoint sequences.
//
// Description:
//
//	Distance returns the minimum total cost of transforming s into t
//	using unit-cost insertions, unit-cost deletions and CostFunc-weighted
//	substitutions. With the default options this is the classic
//	Levenshtein distance.
//
// Algorithm Outline (unbounded):
//  1. Let n = len(s), m = len(t). Keep one rolling row d[0..m],
//     seeded d[j] = j (cost of building each t-prefix from nothing).
//  2. For i = 0..n-1 keep a scalar e = i+1 (cost of erasing the s-prefix),
//     then for j = 0..m-1:
//     x    = min(d[j+1]+1, e+1, d[j]+cost(s[i], t[j]))
//     d[j] = e   // shift the previous row's diagonal forward
//     e    = x
//  3. After the inner pass d[m] = x; the final x is the distance.
//
// When WithMaxDistance is set, Distance dispatches to the banded bounded
// engine instead (see bounded.go) and returns min(true distance, cap).
//
// Complexity:
//
//	Time   = O(n·m) unbounded, O(min(n,m)·k) bounded with cap k
//	Memory = O(min(n,m)) in the bounded engine, O(m) unbounded
//
// Errors:
//   - ErrNegativeMaxDistance — if WithMaxDistance was given a negative cap.
func Distance(s, t []rune, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	if o.MaxDistance != Unbounded {
		return bounded(s, t, o.MaxDistance, o.Cost), nil
	}

	return unbounded(s, t, o.Cost), nil
}

// DistanceStrings decodes a and b into codepoint sequences and delegates
// to Distance. Prefer Distance with pre-decoded []rune inputs when one
// side is compared against many candidates.
func DistanceStrings(a, b string, opts ...Option) (int, error) {
	return Distance([]rune(a), []rune(b), opts...)
}

// unbounded is the full dynamic-programming engine: a single rolling row
// plus one scalar diagonal accumulator, reused across outer iterations.
func unbounded(s, t []rune, cost CostFunc) int {
	n, m := len(s), len(t)
	if n == 0 {
		return m
	}
	if m == 0 {
		return n
	}

	d := make([]int, m+1)
	for j := range d {
		d[j] = j
	}

	var x int
	for i := 0; i < n; i++ {
		e := i + 1
		for j := 0; j < m; j++ {
			// d[j+1] is the previous row above, d[j] its diagonal
			// predecessor (still pre-update here), e the cell to the left.
			x = min3(d[j+1]+1, e+1, d[j]+cost(s[i], t[j]))
			d[j] = e
			e = x
		}
		d[m] = x
	}

	return x
}

// min3 returns the minimum of three int values.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}

		return c
	}
	if b < c {
		return b
	}

	return c
}
