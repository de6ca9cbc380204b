package trie

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewTrie verifies that a new Trie is empty with only a root node.
func TestNewTrie(t *testing.T) {
	tr := New()
	assert.NotNil(t, tr.Root(), "Root node should exist upon creation")
	assert.False(t, tr.Root().IsTerminal(), "Root should not be terminal in an empty trie")
	assert.True(t, tr.Root().IsLeaf(), "Root should have no children in an empty trie")
	assert.Equal(t, 0, tr.Len(), "An empty trie should store zero words")
	assert.False(t, tr.Contains(""), "Empty string should not be a member until inserted")
}

// TestInsertAndContains verifies membership after inserting a small word set.
func TestInsertAndContains(t *testing.T) {
	tr := New()
	for _, word := range []string{"CAT", "CAR", "CARD", "DOG"} {
		assert.NoError(t, tr.Insert(word), "Inserting %q should succeed", word)
	}

	assert.True(t, tr.Contains("CAR"), "Inserted word CAR should be a member")
	assert.True(t, tr.Contains("CARD"), "A word extending another word should be a member")
	assert.False(t, tr.Contains("CA"), "A prefix-only path should not be a member")
	assert.False(t, tr.Contains("CARS"), "A word extending past a stored word should not be a member")
	assert.False(t, tr.Contains("car"), "Membership is case sensitive; lowercase is never stored")
	assert.Equal(t, 4, tr.Len(), "Trie should report four distinct words")
}

// TestInsertRejectsInvalidCharacter verifies the strict A-Z contract.
func TestInsertRejectsInvalidCharacter(t *testing.T) {
	for _, word := range []string{"cat", "CA T", "CAT1", "CAfÉ", "C-T"} {
		tr := New()
		err := tr.Insert(word)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "Inserting %q should fail with ErrInvalidCharacter", word)
		assert.Equal(t, 0, tr.Len(), "A rejected insert should leave the trie unchanged")
		assert.True(t, tr.Root().IsLeaf(), "A rejected insert should not create nodes")
	}
}

// TestInsertEmptyWord verifies that inserting "" marks the root terminal.
func TestInsertEmptyWord(t *testing.T) {
	tr := New()
	assert.NoError(t, tr.Insert(""), "Inserting the empty string should succeed")
	assert.True(t, tr.Contains(""), "Empty string should be a member after insertion")
	assert.True(t, tr.Root().IsTerminal(), "Root should be terminal after inserting the empty string")
	assert.Equal(t, 1, tr.Len(), "Empty string counts as one stored word")
}

// TestInsertIdempotent verifies membership is a flag, not a counter.
func TestInsertIdempotent(t *testing.T) {
	tr := New()
	assert.NoError(t, tr.Insert("CAT"))
	assert.NoError(t, tr.Insert("CAT"))

	assert.True(t, tr.Contains("CAT"), "Word should still be a member after a duplicate insert")
	assert.Equal(t, 1, tr.Len(), "Duplicate inserts should not change the word count")
	// Descendant counters track insert operations, duplicates included.
	assert.Equal(t, 2, tr.Root().NumDescendants(), "Root should count both insert operations")
}

// TestLookupPrefix verifies prefix resolution without node creation.
func TestLookupPrefix(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("CARD"))

	assert.Equal(t, tr.Root(), tr.LookupPrefix(""), "Empty prefix should resolve to the root")
	assert.NotNil(t, tr.LookupPrefix("CA"), "Existing prefix path should resolve to a node")
	assert.False(t, tr.LookupPrefix("CA").IsTerminal(), "Prefix-only node should not be terminal")
	assert.Nil(t, tr.LookupPrefix("CAT"), "Missing path should resolve to nil")
	assert.Nil(t, tr.LookupPrefix("ca"), "Out-of-alphabet characters should resolve to nil")
	assert.Nil(t, tr.LookupPrefix("CAT"), "Lookup of a missing path should not have created it")
}

// TestNumDescendants verifies the per-node strict-prefix counters.
func TestNumDescendants(t *testing.T) {
	tr := New()
	for _, word := range []string{"CAT", "CAR", "CARD", "DOG"} {
		require.NoError(t, tr.Insert(word))
	}

	assert.Equal(t, 4, tr.Root().NumDescendants(), "Every insert strictly extends the root path")
	assert.Equal(t, 3, tr.LookupPrefix("CA").NumDescendants(), "CAT, CAR and CARD strictly extend CA")
	assert.Equal(t, 1, tr.LookupPrefix("CAR").NumDescendants(), "Only CARD strictly extends CAR")
	assert.Equal(t, 0, tr.LookupPrefix("CARD").NumDescendants(), "Nothing extends CARD")
	assert.Equal(t, 1, tr.LookupPrefix("D").NumDescendants(), "Only DOG strictly extends D")
}

// TestMatches verifies wildcard traversal over a known word set.
func TestMatches(t *testing.T) {
	tr, err := FromWords([]string{"CAT", "CAR", "CARD", "DOG"})
	require.NoError(t, err)

	testCases := []struct {
		pattern  string
		expected []string
	}{
		{"CAT", []string{"CAT"}},
		{"CA.", []string{"CAR", "CAT"}},
		{"C..", []string{"CAR", "CAT"}},
		{"C...", []string{"CARD"}},
		{"...", []string{"CAR", "CAT", "DOG"}},
		{"....", []string{"CARD"}},
		{".O.", []string{"DOG"}},
		{"..", nil},
		{".....", nil},
		{"BAT", nil},
	}

	for _, tc := range testCases {
		words, err := tr.Matches(tc.pattern)
		assert.NoError(t, err, "Pattern %q should be valid", tc.pattern)
		assert.Equal(t, tc.expected, words, "Pattern %q should yield exactly its matches in order", tc.pattern)
	}
}

// TestMatchesEmptyPattern verifies the empty pattern only matches a stored "".
func TestMatchesEmptyPattern(t *testing.T) {
	tr := New()
	require.NoError(t, tr.Insert("CAT"))

	words, err := tr.Matches("")
	assert.NoError(t, err)
	assert.Empty(t, words, "Empty pattern should yield nothing when the root is not terminal")

	// A blank word-list line inserts "".
	require.NoError(t, tr.InsertLine("  "))
	words, err = tr.Matches("")
	assert.NoError(t, err)
	assert.Equal(t, []string{""}, words, "Empty pattern should yield the empty string once it is stored")
}

// TestMatchesInvalidPattern verifies boundary validation of patterns.
func TestMatchesInvalidPattern(t *testing.T) {
	tr, err := FromWords([]string{"CAT"})
	require.NoError(t, err)

	for _, pattern := range []string{"c.t", "C T", "C*T", "CAT\n"} {
		words, err := tr.Matches(pattern)
		assert.ErrorIs(t, err, ErrInvalidPattern, "Pattern %q should fail with ErrInvalidPattern", pattern)
		assert.Nil(t, words, "A rejected pattern should yield no words")
	}
}

// TestWalkMatchesEarlyStop verifies the visitor can cut the walk short.
func TestWalkMatchesEarlyStop(t *testing.T) {
	tr, err := FromWords([]string{"CAR", "CAT", "COG", "CUP"})
	require.NoError(t, err)

	var visited []string
	err = tr.WalkMatches("C..", func(word string) bool {
		visited = append(visited, word)
		return len(visited) < 2
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"CAR", "CAT"}, visited, "Walk should stop as soon as the visitor returns false")
}

// TestMatchesLexicographicOrder inserts words in random order and verifies
// traversal order is independent of insertion order.
func TestMatchesLexicographicOrder(t *testing.T) {
	words := []string{}
	for i := 0; i < 200; i++ {
		length := 3 + rand.Intn(4)
		word := make([]byte, length)
		for j := range word {
			word[j] = 'A' + byte(rand.Intn(AlphabetSize))
		}
		words = append(words, string(word))
	}
	rand.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })

	tr, err := FromWords(words)
	require.NoError(t, err)

	for length := 3; length <= 6; length++ {
		matches, err := tr.Matches(strings.Repeat(".", length))
		require.NoError(t, err)
		assert.True(t, sort.StringsAreSorted(matches), "All-wildcard matches of length %d should be sorted", length)
	}
}

// TestAllWildcardRoundTrip verifies that dot patterns of each observed length
// reproduce exactly the inserted words of that length.
func TestAllWildcardRoundTrip(t *testing.T) {
	lines := []string{"cat\n", " dog ", "DOG", "horse", "ox", "weasel", ""}
	tr, err := FromLines(lines)
	require.NoError(t, err)

	byLength := map[int][]string{
		0: {""},
		2: {"OX"},
		3: {"CAT", "DOG"},
		5: {"HORSE"},
		6: {"WEASEL"},
	}
	for length, expected := range byLength {
		matches, err := tr.Matches(strings.Repeat(".", length))
		require.NoError(t, err)
		assert.Equal(t, expected, matches, "Length %d should round-trip its inserted words, duplicates collapsed", length)
	}

	matches, err := tr.Matches("....")
	require.NoError(t, err)
	assert.Empty(t, matches, "A length with no inserted words should yield nothing")
}

// TestFromWordsUppercases verifies normalization and the strict abort policy.
func TestFromWordsUppercases(t *testing.T) {
	tr, err := FromWords([]string{"Word", "ward"})
	require.NoError(t, err)
	assert.True(t, tr.Contains("WORD"), "FromWords should uppercase before inserting")
	assert.True(t, tr.Contains("WARD"))

	tr, err = FromWords([]string{"WORD", "W RD"})
	assert.ErrorIs(t, err, ErrInvalidCharacter, "A bad word should abort the whole build")
	assert.Nil(t, tr, "An aborted build should not return a trie")
}

// TestForEachChild verifies children are visited in ascending letter order.
func TestForEachChild(t *testing.T) {
	tr, err := FromWords([]string{"BAT", "ANT", "COW"})
	require.NoError(t, err)

	var order []int
	tr.Root().ForEachChild(func(pos int, child *Node) {
		order = append(order, pos)
		assert.NotNil(t, child, "ForEachChild should only visit populated slots")
	})
	assert.Equal(t, []int{0, 1, 2}, order, "Children should be visited A first, then B, then C")
}
