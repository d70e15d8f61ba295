// Package phonolev is a small toolkit for measuring how far apart two
// words are — from plain Levenshtein edit distance to phonetically
// relaxed distances backed by a homophone dictionary.
//
// 🚀 What is phonolev?
//
//	A focused, zero-dependency library that brings together:
//		• Core engine: unbounded Levenshtein distance over Unicode codepoints
//		• Bounded engine: banded DP with early exit once a cap is provably met
//		• Pluggable cost: substitution cost as a first-class function value
//		• Phonetic cost: voiced/voiceless consonant pairs substitute for free
//		• Homophone gate: known homophone pairs short-circuit to distance 0
//
// ✨ Why choose phonolev?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – pure functions, rolling-row working memory
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – inject your own CostFunc or homophone lookup
//
// Under the hood, everything is organized under three subpackages:
//
//	levenshtein/ — unbounded & bounded (banded, early-exit) distance engines
//	phonetic/    — voicing-pair cost function & homophone short-circuit
//	homophone/   — in-memory homophone-group dictionary loader
//
// Quick sketch:
//
//	    k i t t e n
//	    s i t t i n g   →   distance = 3
//
//	one substitution (k→s), one substitution (e→i), one insertion (g).
//
// Inputs are sequences of Unicode codepoints; no normalization is
// performed — normalize beforehand if your data needs it. Dive into
// README.md for full examples and the per-package doc.go files for
// algorithmic detail.
//
//	go get github.com/katalvlaran/phonolev
package phonolev
