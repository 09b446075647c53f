package trie

import "fmt"

func Example() {
	t := New("test", "testing", "twitter", "twerk")

	fmt.Println(t.Matches("tes"))
	fmt.Println(t.Matches("tw"))
	fmt.Println(t.Contains("tes"), t.Contains("test"))

	// Output:
	// [test testing]
	// [twerk twitter]
	// false true
}

func Example_folding() {
	t := New().CaseInsensitive().WithNormalisation()
	t.AddAll("Jürgen", "Jürg", "Monday")

	fmt.Println(t.Matches("jurg"))
	fmt.Println(t.Contains("MONDAY"))

	// Output:
	// [Jürg Jürgen]
	// true
}

func ExampleTrie_Remove() {
	t := New("box", "boxes", "boxing")
	t.Remove("boxes")
	fmt.Println(t.Words(), t.Len())

	t = New("box", "boxes", "boxing").WithPruning()
	t.Remove("boxes")
	t.Remove("box")
	fmt.Println(t.Words(), t.Len())

	// Output:
	// [box boxing] 2
	// [boxing] 1
}
