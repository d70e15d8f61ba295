package phonetic

// voicingPairs maps each consonant to its voiced/voiceless partner in
// both directions, so one lookup answers either orientation. Built once
// at process start, never mutated: concurrent reads need no locking.
var voicingPairs = map[rune]rune{
	'p': 'b', 'b': 'p',
	't': 'd', 'd': 't',
	'k': 'g', 'g': 'k',
	'f': 'v', 'v': 'f',
	's': 'z', 'z': 's',
}

// Paired reports the voiced/voiceless partner of r, if it has one.
// Useful for building custom relaxations on top of the same table.
func Paired(r rune) (rune, bool) {
	p, ok := voicingPairs[r]

	return p, ok
}

// Cost is a levenshtein.CostFunc scoring substitution between symbols
// that sound alike at 0: equal symbols are free, and so is swapping a
// consonant with its voicing partner (p↔b, t↔d, k↔g, f↔v, s↔z). Every
// other pair costs 1.
//
// Cost is symmetric because the table holds both directions of each
// pair. It is a relaxation, not a metric: Cost(a, b) == 0 does not
// imply a == b.
func Cost(a, b rune) int {
	if a == b {
		return 0
	}
	if p, ok := voicingPairs[a]; ok && p == b {
		return 0
	}

	return 1
}
