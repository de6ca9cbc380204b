package trie

import (
	"errors"
	"fmt"
	"strings"
)

// AlphabetSize is the number of child slots per node, one per letter A-Z.
const AlphabetSize = 26

// Wildcard is the pattern character that matches any single letter.
const Wildcard = '.'

var (
	// ErrInvalidCharacter is returned when a word contains a character
	// outside A-Z.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInvalidPattern is returned when a traversal pattern contains a
	// character outside A-Z and '.'.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// Node is a single position in the trie. The path of letters from the root
// to a node spells the string the node represents; the root represents "".
type Node struct {
	// children is nil for a leaf. Once any child is added, all 26 slots
	// are allocated together and indexed by letter (A=0 .. Z=25).
	children *[AlphabetSize]*Node

	// terminal marks the node's path as a stored word.
	terminal bool

	// numDescendants counts the insert operations for which this node's
	// path was a strict prefix. Duplicate inserts count again.
	numDescendants int
}

// IsTerminal reports whether the node's path is a stored word.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// IsLeaf reports whether the node has no children. Children are never
// removed, so an allocated child array always holds at least one child.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// NumDescendants returns how many insert operations passed through this node
// with letters still remaining, i.e. how many inserted words strictly extend
// this node's path. Duplicate inserts of the same word are counted each time.
func (n *Node) NumDescendants() int {
	return n.numDescendants
}

// Child returns the child node at the given letter position, or nil.
//
//	node.Child(0) // the 'A' child
func (n *Node) Child(pos int) *Node {
	if pos < 0 || pos >= AlphabetSize {
		panic("[BUG] Child: position out of range")
	}
	if n.children == nil {
		return nil
	}
	return n.children[pos]
}

// ForEachChild applies f to each non-nil child in ascending letter order.
func (n *Node) ForEachChild(f func(pos int, child *Node)) {
	if n.children == nil {
		return
	}
	for pos, child := range n.children {
		if child != nil {
			f(pos, child)
		}
	}
}

// Trie stores a set of uppercase words ([A-Z]*) and answers membership and
// wildcard-pattern queries. The zero value is not usable; call New.
//
// A Trie is not safe for concurrent mutation. Build it from a single
// goroutine; afterwards any number of goroutines may run the read-only
// operations (Contains, LookupPrefix, WalkMatches, Matches) concurrently.
type Trie struct {
	root *Node
	size int
}

// New returns an empty trie holding only a root node.
func New() *Trie {
	return &Trie{root: &Node{}}
}

// FromWords builds a trie by uppercasing and inserting each word in turn.
// The first word containing a character outside A-Z aborts the build and
// returns ErrInvalidCharacter.
func FromWords(words []string) (*Trie, error) {
	t := New()
	for _, word := range words {
		if err := t.Insert(strings.ToUpper(word)); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FromLines builds a trie from raw word-list lines, trimming surrounding
// whitespace and uppercasing each line before insertion. Blank lines insert
// the empty string, which marks the root as terminal.
func FromLines(lines []string) (*Trie, error) {
	t := New()
	for _, line := range lines {
		if err := t.InsertLine(line); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Len returns the number of distinct words stored in the trie.
func (t *Trie) Len() int {
	return t.size
}

// Root returns the root node.
func (t *Trie) Root() *Node {
	return t.root
}

// Insert stores a word in the trie. The word must already be normalized to
// match [A-Z]*; any other character fails with ErrInvalidCharacter and
// leaves the trie unchanged. Inserting the empty string marks the root as
// terminal. Inserting a word twice is idempotent for membership, but each
// insert still bumps the descendant counters along the path.
func (t *Trie) Insert(word string) error {
	for i := 0; i < len(word); i++ {
		if c := word[i]; c < 'A' || c > 'Z' {
			return fmt.Errorf("%w: %q at byte %d of %q", ErrInvalidCharacter, c, i, word)
		}
	}
	node := t.root
	for i := 0; i < len(word); i++ {
		node.numDescendants++
		if node.children == nil {
			node.children = new([AlphabetSize]*Node)
		}
		pos := int(word[i] - 'A')
		if node.children[pos] == nil {
			node.children[pos] = &Node{}
		}
		node = node.children[pos]
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
	return nil
}

// InsertLine trims and uppercases a raw word-list line, then inserts it.
func (t *Trie) InsertLine(line string) error {
	return t.Insert(strings.ToUpper(strings.TrimSpace(line)))
}

// Contains reports whether the word is stored in the trie. It is read-only:
// walking a missing path never creates nodes. Words containing characters
// outside A-Z are never stored, so they report false.
func (t *Trie) Contains(word string) bool {
	node := t.LookupPrefix(word)
	return node != nil && node.terminal
}

// LookupPrefix returns the node reached by following prefix from the root,
// or nil if the path breaks. The empty prefix returns the root.
func (t *Trie) LookupPrefix(prefix string) *Node {
	node := t.root
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		if c < 'A' || c > 'Z' || node.children == nil {
			return nil
		}
		node = node.children[c-'A']
		if node == nil {
			return nil
		}
	}
	return node
}

// WalkMatches visits every stored word matching pattern, in lexicographic
// order, without materializing the result set. The pattern must match
// [A-Z.]*, where Wildcard matches any single letter at its position; any
// other character fails with ErrInvalidPattern before the walk starts.
// Matched words have exactly the pattern's length. The visit callback may
// return false to stop the walk early; the remaining branches are skipped.
// The walk never mutates the trie.
//
// An empty pattern visits the empty string if and only if the root is
// terminal. Each call walks from the root again; there is no resumption.
func (t *Trie) WalkMatches(pattern string, visit func(word string) bool) error {
	for i := 0; i < len(pattern); i++ {
		if c := pattern[i]; (c < 'A' || c > 'Z') && c != Wildcard {
			return fmt.Errorf("%w: %q at byte %d of %q", ErrInvalidPattern, c, i, pattern)
		}
	}
	prefix := make([]byte, 0, len(pattern))
	t.root.walkMatches(pattern, prefix, visit)
	return nil
}

// walkMatches descends the pattern and the trie in lock step. It returns
// false once visit asks to stop, which unwinds the whole walk.
func (n *Node) walkMatches(pattern string, prefix []byte, visit func(string) bool) bool {
	if len(pattern) == 0 {
		if n.terminal {
			return visit(string(prefix))
		}
		return true
	}
	if n.children == nil {
		return true
	}
	if c := pattern[0]; c == Wildcard {
		for pos, child := range n.children {
			if child == nil {
				continue
			}
			if !child.walkMatches(pattern[1:], append(prefix, 'A'+byte(pos)), visit) {
				return false
			}
		}
	} else if child := n.children[c-'A']; child != nil {
		return child.walkMatches(pattern[1:], append(prefix, c), visit)
	}
	return true
}

// Matches collects every stored word matching pattern, in lexicographic
// order. See WalkMatches for the pattern contract.
func (t *Trie) Matches(pattern string) ([]string, error) {
	var words []string
	err := t.WalkMatches(pattern, func(word string) bool {
		words = append(words, word)
		return true
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}
