package trie

// tidy restores compactness for child, a direct child of n. An incomplete
// leaf is dropped and an incomplete node with a single child is merged with
// that child. It reports whether n's children changed.
func (n *node) tidy(child *node) bool {
	if child.complete {
		return false
	}
	switch len(child.children) {
	case 0:
		delete(n.children, child.prefix)
		return true
	case 1:
		var only *node
		for _, c := range child.children {
			only = c
		}
		merged := &node{prefix: child.prefix + only.prefix, complete: only.complete, children: only.children}
		n.replace(child, merged)
		return true
	}
	return false
}

// compact tidies the whole subtree below n, children first.
func (n *node) compact() int {
	changed := 0
	for _, c := range n.sortedChildren() {
		changed += c.compact()
		if n.tidy(c) {
			changed++
		}
	}
	return changed
}

// prunePath tidies the nodes along a root-to-node path from the bottom up.
func prunePath(path []*node) {
	for i := len(path) - 1; i > 0; i-- {
		path[i-1].tidy(path[i])
	}
}

// Compact removes the dead nodes that soft deletes leave behind and merges
// single-child chains, returning the number of nodes changed. Stored words are
// unaffected.
func (t *Trie) Compact() int {
	return t.root.compact()
}
