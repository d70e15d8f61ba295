// Package phonetic relaxes Levenshtein distance for how words sound:
// voiced/voiceless consonant pairs substitute for free, and known
// homophone pairs short-circuit to distance 0 before any DP runs.
//
// 🚀 What is phonetic distance?
//
//	Plain edit distance treats "do"→"to" like any other substitution.
//	Phonetically the two are near-identical: d and t differ only in
//	voicing. This package scores such pairs at cost 0, so words that
//	sound alike measure closer than they look. Useful for:
//	  • Matching misheard or dictated words
//	  • Ranking speech-recognition hypotheses
//	  • Name matching across transliterations
//
// ✨ Key features:
//   - Cost: a levenshtein.CostFunc where p↔b, t↔d, k↔g, f↔v, s↔z are free
//   - homophone gate: an injected group lookup (GroupFunc) that returns 0
//     immediately when both words share a homophone group
//   - same cap semantics as the core engines (WithMaxDistance)
//   - lookup failures degrade to "no group found" — never an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/phonolev/phonetic"
//
//	d, err := phonetic.Distance("do", "to",
//	    phonetic.WithMaxDistance(3),
//	)
//	// d == 0: d/t is a voicing pair
//
//	// with a homophone dictionary:
//	dict, _ := homophone.LoadFile("homophones.txt")
//	d, err = phonetic.Distance("two", "too",
//	    phonetic.WithHomophones(dict.Group),
//	)
//	// d == 0: short-circuited, no DP ran
//
// The voicing table is built once at process start and never mutated;
// every entry point here is safe for concurrent use.
//
// Note: Cost is a relaxation, not a metric — Cost(a,b) == 0 does not
// imply a == b, so the phonetic distance of distinct words can be 0.
package phonetic
