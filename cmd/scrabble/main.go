package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/khalid-nowaf/wordtrie/pkg/cli"
)

func main() {
	var cmd cli.PlayCmd
	ctx := kong.Parse(&cmd,
		kong.Name("scrabble"),
		kong.Description("Rank the words playable from a tile hand matching a wildcard pattern, e.g. scrabble W..D words.txt.gz"),
		kong.UsageOnError(),
	)

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	if err := ctx.Run(&cli.Context{Logger: logger}); err != nil {
		logger.Error("scrabble failed", "error", err)
		os.Exit(1)
	}
}
