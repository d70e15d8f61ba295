package phonetic

import "github.com/katalvlaran/phonolev/levenshtein"

// Distance — phonetic edit distance between two words.
//
// Description:
//
//	Distance measures how many edits separate word1 from word2 when
//	voiced/voiceless consonant swaps are free (see Cost). When a
//	homophone lookup is configured, known homophone pairs short-circuit
//	to 0 before any DP runs.
//
// Control flow:
//  1. Homophone gate (only with WithHomophones): fetch word1's group;
//     if both words are members, return 0 immediately. To keep
//     Distance(a, b) == Distance(b, a) even over asymmetric datasets,
//     a miss retries the lookup keyed on word2.
//  2. Otherwise delegate to levenshtein.Distance with Cost as the
//     substitution cost and any configured cap.
//
// A lookup error or a missing group is never fatal: the gate simply
// falls through to the engines.
//
// Errors:
//   - levenshtein.ErrNegativeMaxDistance — if WithMaxDistance was given
//     a negative cap.
func Distance(word1, word2 string, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	if o.Homophones != nil {
		if sameGroup(o.Homophones, word1, word2) || sameGroup(o.Homophones, word2, word1) {
			return 0, nil
		}
	}

	args := []levenshtein.Option{levenshtein.WithCost(Cost)}
	if o.MaxDistance != levenshtein.Unbounded {
		args = append(args, levenshtein.WithMaxDistance(o.MaxDistance))
	}

	return levenshtein.Distance([]rune(word1), []rune(word2), args...)
}

// sameGroup reports whether key's homophone group contains both key and
// other. Lookup failures count as an empty group.
func sameGroup(lookup GroupFunc, key, other string) bool {
	group, err := lookup(key)
	if err != nil || len(group) == 0 {
		return false
	}
	_, hasKey := group[key]
	_, hasOther := group[other]

	return hasKey && hasOther
}
