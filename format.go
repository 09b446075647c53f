package trie

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// String draws the node structure, one "[prefix, complete]" label per node.
// Nodes left behind by removals show up as incomplete leaves.
func (t *Trie) String() string {
	tree := treeprint.NewWithRoot(label(t.root))
	addBranches(tree, t.root)
	return tree.String()
}

func addBranches(tree treeprint.Tree, n *node) {
	for _, c := range n.sortedChildren() {
		if len(c.children) == 0 {
			tree.AddNode(label(c))
			continue
		}
		addBranches(tree.AddBranch(label(c)), c)
	}
}

func label(n *node) string {
	return fmt.Sprintf("[%s, %t]", n.prefix, n.complete)
}
