package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongestCommonPrefix(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"test", "testing", "test"},
		{"box", "boxer", "box"},
		{"bo", "boss", "bo"},
		{"blue", "blue", "blue"},
		{"", "anything", ""},
		{"anything", "", ""},
		{"", "", ""},
		{"apple", "banana", ""},
		{"boxes", "boxing", "box"},
	}
	for _, tt := range tests {
		t.Run(tt.a+"|"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestCommonPrefix(tt.a, tt.b))
			assert.Equal(t, tt.want, LongestCommonPrefix(tt.b, tt.a))
		})
	}
}
