/*
Package trie provides a compressed trie (radix tree) holding a set of strings.
Each edge carries a multi-character label, so chains of single-child nodes are
merged. It supports exact membership tests, prefix matching and removal, with
optional case folding, accent normalisation and structural pruning.

A Trie is not safe for concurrent use; callers must serialise access.
*/
package trie
