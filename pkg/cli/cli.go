// Package cli implements the kong commands behind the wordtrie and scrabble
// front-ends. Commands load a word list into a trie, run a wildcard pattern
// over it, and render the results with pterm.
package cli

import (
	"log/slog"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
	"github.com/khalid-nowaf/wordtrie/pkg/wordlist"
)

// Context carries the shared dependencies for a command run.
type Context struct {
	Logger *slog.Logger
}

// loadTrie builds the trie from a word-list file and logs what was ingested.
func loadTrie(ctx *Context, path string) (*trie.Trie, error) {
	t, err := wordlist.Load(path)
	if err != nil {
		return nil, err
	}
	ctx.Logger.Info("word list loaded", "path", path, "words", t.Len())
	return t, nil
}

// literalPrefix returns the wildcard-free leading portion of a pattern.
func literalPrefix(pattern string) string {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == trie.Wildcard {
			return pattern[:i]
		}
	}
	return pattern
}
