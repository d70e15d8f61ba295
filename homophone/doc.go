// Package homophone loads homophone-group word lists into an in-memory
// dictionary whose Group method plugs straight into phonetic.Distance.
//
// The on-disk format is one comma-separated group per line:
//
//	# English homophones
//	two,too,to
//	ate,eight
//	there,their,they're
//
// Blank lines and lines starting with '#' are skipped; surrounding
// whitespace around words is trimmed. A word appearing on several lines
// keeps the union of its groups.
//
// ⚙️ Usage:
//
//	dict, err := homophone.LoadFile("homophones.txt")
//	if err != nil {
//	    // handle unreadable file
//	}
//	d, err := phonetic.Distance("two", "too",
//	    phonetic.WithHomophones(dict.Group),
//	)
//
// A loaded Dict is read-only and safe for concurrent use.
package homophone
