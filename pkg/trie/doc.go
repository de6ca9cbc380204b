// ## Overview
// Package trie implements a prefix tree over the fixed alphabet A-Z.
// Each node owns up to 26 children, one per letter, so child access is a
// single array index and iterating children in slot order yields results
// in lexicographic order. The trie answers exact membership, prefix
// lookups, and enumeration of all stored words matching a fixed-length
// wildcard pattern, where '.' stands for any single letter.
//
// ## Example usage:
//
//	t, err := trie.FromWords([]string{"word", "ward", "wind"})
//	if err != nil {
//		// a word contained a character outside A-Z
//	}
//
//	t.Contains("WORD") // true
//	t.Contains("WOR")  // false, only a prefix
//
//	words, _ := t.Matches("W..D") // [WARD WIND WORD]
//
//	// stop after the first match
//	t.WalkMatches("W..D", func(word string) bool {
//		fmt.Println(word)
//		return false
//	})
//
// Words are never removed; build the trie once, then query it freely from
// any number of goroutines.
package trie
