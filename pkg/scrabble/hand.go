package scrabble

import (
	"errors"
	"fmt"
	"strings"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// ErrInvalidTiles is returned when a tile string contains a character
// outside A-Z or is empty.
var ErrInvalidTiles = errors.New("invalid tiles")

// Hand is a multiset of tiles, counted per letter (A=0 .. Z=25). The zero
// value is an empty hand. When playing against tiles already on the board,
// add those to the hand before testing playability.
type Hand [trie.AlphabetSize]int

// NewHand builds a hand from a tile string matching [A-Z]+.
func NewHand(tiles string) (Hand, error) {
	var hand Hand
	if tiles == "" {
		return hand, fmt.Errorf("%w: no tiles given", ErrInvalidTiles)
	}
	for i := 0; i < len(tiles); i++ {
		c := tiles[i]
		if c < 'A' || c > 'Z' {
			return Hand{}, fmt.Errorf("%w: %q at byte %d of %q", ErrInvalidTiles, c, i, tiles)
		}
		hand[c-'A']++
	}
	return hand, nil
}

// DefaultBag returns the standard English tile distribution, 98 tiles in
// total. The two blank tiles are excluded since the trie has no wildcard
// letters to spend them on.
func DefaultBag() Hand {
	var hand Hand
	for _, group := range []struct {
		count   int
		letters string
	}{
		{12, "E"},
		{9, "AI"},
		{8, "O"},
		{6, "NRT"},
		{4, "LSDU"},
		{3, "G"},
		{2, "BCMPFHVWY"},
		{1, "KJXQZ"},
	} {
		for i := 0; i < len(group.letters); i++ {
			hand[group.letters[i]-'A'] = group.count
		}
	}
	return hand
}

// Total returns the number of tiles in the hand.
func (h Hand) Total() int {
	total := 0
	for _, count := range h {
		total += count
	}
	return total
}

// Count returns how many tiles of the given letter the hand holds.
func (h Hand) Count(letter byte) int {
	if letter < 'A' || letter > 'Z' {
		return 0
	}
	return h[letter-'A']
}

// String renders the hand as a sorted tile string, e.g. "AEELNST".
func (h Hand) String() string {
	var sb strings.Builder
	sb.Grow(h.Total())
	for pos, count := range h {
		for i := 0; i < count; i++ {
			sb.WriteByte('A' + byte(pos))
		}
	}
	return sb.String()
}

// CanPlay reports whether the hand covers the word's letter multiset.
// Words with characters outside A-Z are never playable.
func (h Hand) CanPlay(word string) bool {
	var needed Hand
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'A' || c > 'Z' {
			return false
		}
		needed[c-'A']++
	}
	for pos, count := range needed {
		if count > h[pos] {
			return false
		}
	}
	return true
}

// Play removes the word's tiles from the hand if they are all available,
// reporting whether the word was played.
func (h *Hand) Play(word string) bool {
	if !h.CanPlay(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		h[word[i]-'A']--
	}
	return true
}

// Unplay returns the tiles of a previously played word back to the hand.
func (h *Hand) Unplay(word string) {
	for i := 0; i < len(word); i++ {
		c := word[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		h[c-'A']++
	}
}

// Playable filters words down to those the hand can play, keeping order.
// Each word is tested against the full hand; tiles are not consumed.
func Playable(words []string, hand Hand) []string {
	var playable []string
	for _, word := range words {
		if hand.CanPlay(word) {
			playable = append(playable, word)
		}
	}
	return playable
}
