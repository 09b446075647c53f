package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	trie "github.com/sarthakjha889/go-compressed-trie"
	"github.com/urfave/cli/v2"
)

func log(cctx *cli.Context) *slog.Logger {
	return slog.Default().With("cmd", cctx.Command.Name)
}

// loadTrie builds a trie from the --words list and applies --remove.
func loadTrie(cctx *cli.Context) (*trie.Trie, error) {
	t := trie.New()
	if cctx.Bool("case-insensitive") {
		t.CaseInsensitive()
	}
	if cctx.Bool("normalise") {
		t.WithNormalisation()
	}
	if cctx.Bool("prune") {
		t.WithPruning()
	}

	path := cctx.String("words")
	var r io.Reader = cctx.App.Reader
	if r == nil {
		r = os.Stdin
	}
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening word list: %w", err)
		}
		defer f.Close()
		r = f
	}

	lines, err := readWords(t, r)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	log(cctx).Info("loaded word list", "path", path, "lines", lines, "words", t.Len())

	for _, w := range cctx.StringSlice("remove") {
		if !t.Remove(w) {
			log(cctx).Warn("word not in list", "word", w)
		}
	}
	return t, nil
}

// readWords adds every line of r to t and returns the number of lines read.
// Trailing carriage returns are dropped and blank lines skipped.
func readWords(t *trie.Trie, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	lines := 0
	for scanner.Scan() {
		lines++
		if w := strings.TrimSuffix(scanner.Text(), "\r"); w != "" {
			t.Add(w)
		}
	}
	return lines, scanner.Err()
}
