package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWords(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(append([]string{"ctrie"}, args...), &out)
	return out.String(), err
}

func TestCLI(t *testing.T) {
	path := writeWords(t, "test", "testing", "", "twitter", "twerk", "Twerk\r")

	t.Run("match", func(t *testing.T) {
		out, err := runCLI(t, "match", "--words", path, "tw")
		require.NoError(t, err)
		assert.Equal(t, "twerk\ntwitter\n", out)
	})

	t.Run("match case insensitive", func(t *testing.T) {
		out, err := runCLI(t, "match", "--words", path, "--case-insensitive", "TW")
		require.NoError(t, err)
		assert.Equal(t, "twerk\ntwitter\n", out)
	})

	t.Run("contains", func(t *testing.T) {
		out, err := runCLI(t, "contains", "--words", path, "test", "tes")
		require.NoError(t, err)
		assert.Equal(t, "test\ttrue\ntes\tfalse\n", out)

		_, err = runCLI(t, "contains", "--words", path)
		assert.Error(t, err)
	})

	t.Run("count with removals", func(t *testing.T) {
		out, err := runCLI(t, "count", "--words", path)
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)

		out, err = runCLI(t, "count", "--words", path, "--remove", "test", "--remove", "nope")
		require.NoError(t, err)
		assert.Equal(t, "4\n", out)
	})

	t.Run("tree", func(t *testing.T) {
		out, err := runCLI(t, "tree", "--words", path, "--remove", "testing", "--prune")
		require.NoError(t, err)
		assert.Contains(t, out, "[est, true]")
		assert.NotContains(t, out, "[ing")
	})

	t.Run("missing word list", func(t *testing.T) {
		_, err := runCLI(t, "count", "--words", filepath.Join(t.TempDir(), "missing.txt"))
		assert.ErrorContains(t, err, "opening word list")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := runCLI(t, "--log-level", "loud", "count", "--words", path)
		assert.ErrorContains(t, err, "invalid log level")
	})
}
