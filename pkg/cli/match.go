package cli

import (
	"strings"

	"github.com/pterm/pterm"
)

// MatchCmd prints every stored word matching a wildcard pattern.
type MatchCmd struct {
	Pattern  string `arg:"" help:"Pattern over A-Z, with '.' matching any single letter."`
	TrieFile string `arg:"" type:"existingfile" help:"Word list file, one word per line (.gz supported)."`
}

// Run executes the match command.
func (cmd *MatchCmd) Run(ctx *Context) error {
	t, err := loadTrie(ctx, cmd.TrieFile)
	if err != nil {
		return err
	}

	// Matches rejects patterns outside [A-Z.]* before walking.
	words, err := t.Matches(cmd.Pattern)
	if err != nil {
		return err
	}

	if prefix := literalPrefix(cmd.Pattern); prefix != "" {
		if node := t.LookupPrefix(prefix); node != nil {
			ctx.Logger.Info("prefix statistics",
				"prefix", prefix,
				"extending_inserts", node.NumDescendants(),
				"is_word", node.IsTerminal())
		}
	}

	pterm.Info.Printfln("%d words match %q", len(words), cmd.Pattern)
	if len(words) > 0 {
		pterm.DefaultParagraph.Println(strings.Join(words, " "))
	}
	return nil
}
