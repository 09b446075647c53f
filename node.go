package trie

import (
	"sort"
	"strings"
)

// node is a node of the compressed trie. prefix is the edge label consumed to
// reach it from its parent and is empty only for the root. complete marks the
// path from the root to this node as a stored word.
//
// Children are keyed by prefix, so two nodes with the same prefix occupy the
// same slot. No two siblings share a non-empty common prefix, which means they
// also differ in their first byte.
type node struct {
	prefix   string
	complete bool
	children map[string]*node
}

func newNode(prefix string, complete bool, children ...*node) *node {
	n := &node{
		prefix:   prefix,
		complete: complete,
		children: make(map[string]*node, len(children)),
	}
	for _, c := range children {
		n.children[c.prefix] = c
	}
	return n
}

// replace swaps old for the given nodes in n's children.
func (n *node) replace(old *node, with ...*node) {
	delete(n.children, old.prefix)
	for _, c := range with {
		n.children[c.prefix] = c
	}
}

// prefixMatchingChild returns the child whose prefix is a leading substring
// of text.
func (n *node) prefixMatchingChild(text string) *node {
	for prefix, c := range n.children {
		if strings.HasPrefix(text, prefix) {
			return c
		}
	}
	return nil
}

// extendingChild returns the child whose prefix starts with text.
func (n *node) extendingChild(text string) *node {
	for prefix, c := range n.children {
		if strings.HasPrefix(prefix, text) {
			return c
		}
	}
	return nil
}

// overlappingChild returns the child sharing a non-empty common prefix with
// text, together with that common prefix.
func (n *node) overlappingChild(text string) (*node, string) {
	for prefix, c := range n.children {
		if common := LongestCommonPrefix(prefix, text); common != "" {
			return c, common
		}
	}
	return nil, ""
}

// sortedChildren returns the children ordered by prefix so traversals are
// deterministic.
func (n *node) sortedChildren() []*node {
	out := make([]*node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].prefix < out[j].prefix })
	return out
}

// insert stores text, which is relative to n, in the subtree rooted at n.
func (n *node) insert(text string) {
	if text == "" {
		n.complete = true
		return
	}
	if child := n.prefixMatchingChild(text); child != nil {
		if len(child.prefix) == len(text) {
			child.complete = true
			return
		}
		child.insert(text[len(child.prefix):])
		return
	}
	// text ends inside an existing edge: split the edge at len(text)
	if old := n.extendingChild(text); old != nil {
		keeper := &node{prefix: old.prefix[len(text):], complete: old.complete, children: old.children}
		n.replace(old, newNode(text, true, keeper))
		return
	}
	// text diverges partway along an edge: branch at the common prefix
	if old, common := n.overlappingChild(text); old != nil {
		keeper := &node{prefix: old.prefix[len(common):], complete: old.complete, children: old.children}
		inserted := newNode(text[len(common):], true)
		n.replace(old, newNode(common, false, keeper, inserted))
		return
	}
	n.children[text] = newNode(text, true)
}

// locateSubtree finds the shallowest node whose path from the root begins
// with word+rest. word is the text already consumed to reach n. It returns
// the node and the full path spelled up to it, or nil and word when nothing
// under n starts with rest.
func (n *node) locateSubtree(word, rest string) (*node, string) {
	if rest == "" {
		return n, word
	}
	if child := n.prefixMatchingChild(rest); child != nil {
		if child.prefix == rest {
			return child, word + rest
		}
		return child.locateSubtree(word+child.prefix, rest[len(child.prefix):])
	}
	if child := n.extendingChild(rest); child != nil {
		return child, word + child.prefix
	}
	return nil, word
}

// collectWords appends word, if n is complete, and every complete word below
// n to out. word is the path spelled up to and including n.
func (n *node) collectWords(word string, out []string) []string {
	if n.complete {
		out = append(out, word)
	}
	for _, c := range n.sortedChildren() {
		out = c.collectWords(word+c.prefix, out)
	}
	return out
}

// findPath descends from n consuming text edge by edge and returns the nodes
// visited, n first. It returns nil when text does not end exactly on a node.
func (n *node) findPath(text string) []*node {
	path := []*node{n}
	current := n
	for text != "" {
		child := current.prefixMatchingChild(text)
		if child == nil {
			return nil
		}
		text = text[len(child.prefix):]
		current = child
		path = append(path, current)
	}
	return path
}

// findNode returns the node whose path from n spells text exactly.
func (n *node) findNode(text string) *node {
	path := n.findPath(text)
	if path == nil {
		return nil
	}
	return path[len(path)-1]
}

// findWord reports whether text is stored below n.
func (n *node) findWord(text string) bool {
	found := n.findNode(text)
	return found != nil && found.complete
}
