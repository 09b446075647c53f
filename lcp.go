package trie

// LongestCommonPrefix returns the longest leading substring shared by a and b.
// It compares bytes, so the result may end inside a multi-byte rune.
func LongestCommonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
