package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

var trieFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "words",
		Aliases: []string{"w"},
		Usage:   "word list, one word per line (\"-\" for stdin)",
		Value:   "-",
		EnvVars: []string{"CTRIE_WORDS"},
	},
	&cli.BoolFlag{
		Name:    "case-insensitive",
		Usage:   "fold case when storing and querying words",
		EnvVars: []string{"CTRIE_CASE_INSENSITIVE"},
	},
	&cli.BoolFlag{
		Name:    "normalise",
		Usage:   "strip accents when storing and querying words",
		EnvVars: []string{"CTRIE_NORMALISE"},
	},
	&cli.BoolFlag{
		Name:    "prune",
		Usage:   "drop dead nodes when removing words",
		EnvVars: []string{"CTRIE_PRUNE"},
	},
	&cli.StringSliceFlag{
		Name:    "remove",
		Usage:   "words to remove after loading the list",
		EnvVars: []string{"CTRIE_REMOVE"},
	},
}

func run(args []string, out io.Writer) error {

	app := cli.App{
		Name:    "ctrie",
		Usage:   "query a word list through a compressed trie",
		Version: versioninfo.Short(),
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: warn, info, debug)",
				Value:   "warn",
				EnvVars: []string{"CTRIE_LOG_LEVEL", "LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(cctx.String("log-level"))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdMatch,
		cmdContains,
		cmdTree,
		cmdCount,
	}
	return app.Run(args)
}
