package trie

import (
	"iter"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Trie is a compressed trie holding a set of strings. The zero value is not
// usable; create one with New.
type Trie struct {
	root *node
	// size is kept alongside the tree because soft-deleted nodes stay in it.
	size int

	normalised, caseSensitive, pruning bool
	// originals maps a folded key to the first spelling added for it.
	originals map[string]string
}

// New creates a trie holding words. By default the trie is case sensitive,
// does no normalisation and removes words by clearing their flag only.
func New(words ...string) *Trie {
	t := &Trie{
		root:      newNode("", false),
		originals: make(map[string]string),
	}
	t.CaseSensitive()
	t.WithoutNormalisation()
	t.WithoutPruning()
	t.AddAll(words...)
	return t
}

// CaseSensitive makes the trie distinguish upper and lower case.
func (t *Trie) CaseSensitive() *Trie {
	t.caseSensitive = true
	return t
}

// CaseInsensitive makes the trie fold case on every operation.
func (t *Trie) CaseInsensitive() *Trie {
	t.caseSensitive = false
	return t
}

// WithNormalisation strips combining marks from keys, so Jurgen matches Jürgen.
func (t *Trie) WithNormalisation() *Trie {
	t.normalised = true
	return t
}

// WithoutNormalisation stores keys exactly as given.
func (t *Trie) WithoutNormalisation() *Trie {
	t.normalised = false
	return t
}

// WithPruning makes Remove tidy the path to the removed word, dropping nodes
// that no longer lead to any word and merging single-child chains.
func (t *Trie) WithPruning() *Trie {
	t.pruning = true
	return t
}

// WithoutPruning makes Remove only clear the word's flag, leaving the node
// structure in place.
func (t *Trie) WithoutPruning() *Trie {
	t.pruning = false
	return t
}

func (t *Trie) folding() bool {
	return t.normalised || !t.caseSensitive
}

// key maps word to the form stored in the tree under the current settings.
func (t *Trie) key(word string) string {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !t.caseSensitive {
		word = strings.ToLower(word)
	}
	return word
}

// original returns the spelling reported for a stored key.
func (t *Trie) original(key string) string {
	if orig, ok := t.originals[key]; ok {
		return orig
	}
	return key
}

// Add stores word and reports whether the set changed.
func (t *Trie) Add(word string) bool {
	k := t.key(word)
	if t.root.findWord(k) {
		return false
	}
	t.root.insert(k)
	if t.folding() {
		t.originals[k] = word
	}
	t.size++
	return true
}

// Contains reports whether word is stored.
func (t *Trie) Contains(word string) bool {
	return t.root.findWord(t.key(word))
}

// Remove deletes word and reports whether the set changed.
func (t *Trie) Remove(word string) bool {
	k := t.key(word)
	path := t.root.findPath(k)
	if path == nil || !path[len(path)-1].complete {
		return false
	}
	path[len(path)-1].complete = false
	delete(t.originals, k)
	t.size--
	if t.pruning {
		prunePath(path)
	}
	return true
}

// Matches returns every stored word beginning with prefix, in lexicographic
// order of their keys. An empty prefix matches every word.
func (t *Trie) Matches(prefix string) []string {
	subtree, word := t.root.locateSubtree("", t.key(prefix))
	if subtree == nil {
		return []string{}
	}
	words := subtree.collectWords(word, []string{})
	if t.folding() {
		for i, w := range words {
			words[i] = t.original(w)
		}
	}
	return words
}

// Words returns every stored word.
func (t *Trie) Words() []string {
	return t.Matches("")
}

// All iterates over every stored word. The words are collected before the
// first is yielded, so the trie may be modified during iteration.
func (t *Trie) All() iter.Seq[string] {
	words := t.Words()
	return func(yield func(string) bool) {
		for _, w := range words {
			if !yield(w) {
				return
			}
		}
	}
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

// IsEmpty reports whether the trie holds no words.
func (t *Trie) IsEmpty() bool {
	return t.size == 0
}

// Clear removes every word and all nodes.
func (t *Trie) Clear() {
	t.root = newNode("", false)
	t.originals = make(map[string]string)
	t.size = 0
}
