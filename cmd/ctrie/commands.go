package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

var cmdMatch = &cli.Command{
	Name:      "match",
	Usage:     "print every word starting with the given prefix",
	ArgsUsage: `<prefix>`,
	Flags:     trieFlags,
	Action: func(cctx *cli.Context) error {
		t, err := loadTrie(cctx)
		if err != nil {
			return err
		}
		prefix := cctx.Args().First()
		matches := t.Matches(prefix)
		for _, w := range matches {
			fmt.Fprintln(cctx.App.Writer, w)
		}
		log(cctx).Debug("matched prefix", "prefix", prefix, "matches", len(matches))
		return nil
	},
}

var cmdContains = &cli.Command{
	Name:      "contains",
	Usage:     "report whether each given word is in the list",
	ArgsUsage: `<word>...`,
	Flags:     trieFlags,
	Action: func(cctx *cli.Context) error {
		if cctx.Args().Len() == 0 {
			return fmt.Errorf("need at least one word")
		}
		t, err := loadTrie(cctx)
		if err != nil {
			return err
		}
		for _, w := range cctx.Args().Slice() {
			fmt.Fprintf(cctx.App.Writer, "%s\t%t\n", w, t.Contains(w))
		}
		return nil
	},
}

var cmdTree = &cli.Command{
	Name:  "tree",
	Usage: "draw the node structure of the trie",
	Flags: trieFlags,
	Action: func(cctx *cli.Context) error {
		t, err := loadTrie(cctx)
		if err != nil {
			return err
		}
		fmt.Fprint(cctx.App.Writer, t.String())
		return nil
	},
}

var cmdCount = &cli.Command{
	Name:  "count",
	Usage: "print the number of distinct words",
	Flags: trieFlags,
	Action: func(cctx *cli.Context) error {
		t, err := loadTrie(cctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cctx.App.Writer, t.Len())
		return nil
	},
}
