// Package wordlist loads line-delimited word lists, plain or gzipped, into a
// trie. Lines are trimmed and uppercased before insertion and blank lines are
// not filtered, so an empty line stores the empty string.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

// Load builds a trie from a word-list file, one word per line. Files whose
// name ends in ".gz" are decompressed on the fly. I/O and decompression
// errors propagate unmodified; a line containing a character outside A-Z
// aborts the load with trie.ErrInvalidCharacter.
func Load(path string) (*trie.Trie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		lines = gz
	}

	return FromReader(lines)
}

// FromReader builds a trie from a stream of word-list lines.
func FromReader(r io.Reader) (*trie.Trie, error) {
	t := trie.New()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := t.InsertLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}
