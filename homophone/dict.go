package homophone

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dict maps each word to its homophone group. Read-only after Load;
// concurrent lookups need no locking.
type Dict struct {
	groups map[string]map[string]struct{}
}

// Load reads a homophone word list from r: one comma-separated group per
// line, blank lines and '#' comments skipped. Words are trimmed; empty
// fields are dropped. A word listed in several groups keeps their union.
func Load(r io.Reader) (*Dict, error) {
	d := &Dict{groups: make(map[string]map[string]struct{})}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var words []string
		for _, field := range strings.Split(line, ",") {
			if w := strings.TrimSpace(field); w != "" {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}

		for _, w := range words {
			set, ok := d.groups[w]
			if !ok {
				set = make(map[string]struct{}, len(words))
				d.groups[w] = set
			}
			for _, member := range words {
				set[member] = struct{}{}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("homophone: reading word list: %w", err)
	}

	return d, nil
}

// LoadFile is a convenience wrapper that opens a file path.
func LoadFile(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("homophone: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Group returns the homophone group of word, or a nil set when the word
// is unknown. The signature matches phonetic.GroupFunc, so a Dict plugs
// in as a method value: phonetic.WithHomophones(dict.Group).
//
// The returned set is shared with the Dict and must not be mutated.
func (d *Dict) Group(word string) (map[string]struct{}, error) {
	return d.groups[word], nil
}

// Words returns all words known to the dictionary, in no particular order.
func (d *Dict) Words() []string {
	words := make([]string, 0, len(d.groups))
	for w := range d.groups {
		words = append(words, w)
	}

	return words
}

// Len reports the number of distinct words in the dictionary.
func (d *Dict) Len() int {
	return len(d.groups)
}
