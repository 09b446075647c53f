package trie

import "errors"

var (
	// ErrInvalidArgument is returned when a nil word is handed to the trie.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTypeMismatch is returned when a non-string value is added.
	ErrTypeMismatch = errors.New("type mismatch")
)
