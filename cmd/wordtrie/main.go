package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"

	"github.com/khalid-nowaf/wordtrie/pkg/cli"
)

func main() {
	var cmd cli.MatchCmd
	ctx := kong.Parse(&cmd,
		kong.Name("wordtrie"),
		kong.Description("Print every word in a word list matching a wildcard pattern, e.g. wordtrie W..D words.txt.gz"),
		kong.UsageOnError(),
	)

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	if err := ctx.Run(&cli.Context{Logger: logger}); err != nil {
		logger.Error("wordtrie failed", "error", err)
		os.Exit(1)
	}
}
