// Package scrabble manages a hand of letter tiles and scores words found by
// a trie traversal. It answers which matched words are playable from the
// tiles available and ranks them by their letter values.
package scrabble

import (
	"math/rand"
	"sort"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Number of top scoring and random words shown by the CLI front-end.
const (
	ShowBest   = 20
	ShowRandom = 10
)

// letterValues holds the standard English point value per letter.
var letterValues [trie.AlphabetSize]int

func init() {
	for _, group := range []struct {
		value   int
		letters string
	}{
		{1, "LSUNRTOAIE"},
		{2, "GD"},
		{3, "BCMP"},
		{4, "FHVWY"},
		{5, "K"},
		{8, "JX"},
		{10, "QZ"},
	} {
		for i := 0; i < len(group.letters); i++ {
			letterValues[group.letters[i]-'A'] = group.value
		}
	}
}

// Score sums the standard letter values of a word. Characters outside A-Z
// contribute nothing.
func Score(word string) int {
	score := 0
	for i := 0; i < len(word); i++ {
		if c := word[i]; c >= 'A' && c <= 'Z' {
			score += letterValues[c-'A']
		}
	}
	return score
}

// ScoredWord pairs a word with its score for ranked output.
type ScoredWord struct {
	Word  string
	Score int
}

// scoreAll attaches scores to a word list, keeping order.
func scoreAll(words []string) []ScoredWord {
	scored := make([]ScoredWord, len(words))
	for i, word := range words {
		scored[i] = ScoredWord{Word: word, Score: Score(word)}
	}
	return scored
}

// Best returns up to n words with the highest scores, descending. Ties keep
// the input order, which for trie matches is lexicographic.
func Best(words []string, n int) []ScoredWord {
	scored := scoreAll(words)
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if n > len(scored) {
		n = len(scored)
	}
	return scored[:n]
}

// Sample returns up to n words drawn uniformly without replacement.
func Sample(words []string, n int, rng *rand.Rand) []ScoredWord {
	if n > len(words) {
		n = len(words)
	}
	sampled := make([]string, 0, n)
	for _, idx := range rng.Perm(len(words))[:n] {
		sampled = append(sampled, words[idx])
	}
	return scoreAll(sampled)
}
