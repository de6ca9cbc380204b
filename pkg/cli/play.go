package cli

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/pterm/pterm"

	"github.com/khalid-nowaf/wordtrie/pkg/scrabble"
)

// PlayCmd finds the best and some random words playable from a tile hand.
type PlayCmd struct {
	Pattern  string `arg:"" help:"Pattern over A-Z, with '.' matching any single letter."`
	TrieFile string `arg:"" type:"existingfile" help:"Word list file, one word per line (.gz supported)."`
	Tiles    string `arg:"" optional:"" help:"Tiles in hand as capital letters; defaults to the full 98-tile bag."`
	Seed     int64  `help:"Seed for the random word sample; 0 uses the current time." env:"SCRABBLE_SEED" default:"0"`
}

// Run executes the play command.
func (cmd *PlayCmd) Run(ctx *Context) error {
	hand := scrabble.DefaultBag()
	if cmd.Tiles != "" {
		var err error
		if hand, err = scrabble.NewHand(cmd.Tiles); err != nil {
			return err
		}
		pterm.Info.Printfln("Using custom tiles: %s (%d total)", cmd.Tiles, hand.Total())
	} else {
		pterm.Info.Printfln("Using the default Scrabble bag, blanks excluded (%d total)", hand.Total())
	}

	t, err := loadTrie(ctx, cmd.TrieFile)
	if err != nil {
		return err
	}

	// Filter during the traversal so unplayable matches are never collected.
	var playable []string
	err = t.WalkMatches(cmd.Pattern, func(word string) bool {
		if hand.CanPlay(word) {
			playable = append(playable, word)
		}
		return true
	})
	if err != nil {
		return err
	}

	best := scrabble.Best(playable, scrabble.ShowBest)
	pterm.Info.Printfln("Top %d of %d playable words matching %q", len(best), len(playable), cmd.Pattern)
	if err := renderScored(best); err != nil {
		return err
	}

	seed := cmd.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	random := scrabble.Sample(playable, scrabble.ShowRandom, rng)
	pterm.Info.Printfln("%d random playable words matching %q", len(random), cmd.Pattern)
	return renderScored(random)
}

// renderScored prints scored words as a two-column table.
func renderScored(words []scrabble.ScoredWord) error {
	if len(words) == 0 {
		pterm.Println("(none)")
		return nil
	}
	data := pterm.TableData{{"WORD", "SCORE"}}
	for _, sw := range words {
		data = append(data, []string{sw.Word, strconv.Itoa(sw.Score)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
