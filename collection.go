package trie

import "fmt"

// asWord unpacks a string or *string. ok is false for any other type.
// A nil value or nil *string yields ErrInvalidArgument.
func asWord(v any) (word string, ok bool, err error) {
	switch w := v.(type) {
	case nil:
		return "", false, fmt.Errorf("%w: nil word", ErrInvalidArgument)
	case string:
		return w, true, nil
	case *string:
		if w == nil {
			return "", false, fmt.Errorf("%w: nil word", ErrInvalidArgument)
		}
		return *w, true, nil
	default:
		return "", false, nil
	}
}

// AddValue adds v, which must be a string or *string.
func (t *Trie) AddValue(v any) (bool, error) {
	word, ok, err := asWord(v)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, fmt.Errorf("%w: cannot add %T", ErrTypeMismatch, v)
	}
	return t.Add(word), nil
}

// ContainsValue reports whether v is a stored word. Values that are not
// strings are never contained.
func (t *Trie) ContainsValue(v any) (bool, error) {
	word, ok, err := asWord(v)
	if err != nil || !ok {
		return false, err
	}
	return t.Contains(word), nil
}

// RemoveValue removes v if it is a stored word. Values that are not strings
// are ignored.
func (t *Trie) RemoveValue(v any) (bool, error) {
	word, ok, err := asWord(v)
	if err != nil || !ok {
		return false, err
	}
	return t.Remove(word), nil
}

// AddAll adds words and reports whether any of them was new.
func (t *Trie) AddAll(words ...string) bool {
	changed := false
	for _, w := range words {
		if t.Add(w) {
			changed = true
		}
	}
	return changed
}

// ContainsAll reports whether every item is a stored word. It stops at the
// first item that is not.
func (t *Trie) ContainsAll(items ...any) (bool, error) {
	for _, item := range items {
		found, err := t.ContainsValue(item)
		if err != nil || !found {
			return false, err
		}
	}
	return true, nil
}

// ContainsAny reports whether at least one item is a stored word. It stops at
// the first item that is.
func (t *Trie) ContainsAny(items ...any) (bool, error) {
	for _, item := range items {
		found, err := t.ContainsValue(item)
		if err != nil {
			return false, err
		}
		if found {
			return true, nil
		}
	}
	return false, nil
}

// RemoveAll removes every item and reports whether any was stored. Items are
// validated before anything is removed.
func (t *Trie) RemoveAll(items ...any) (bool, error) {
	words := make([]string, 0, len(items))
	for _, item := range items {
		word, ok, err := asWord(item)
		if err != nil {
			return false, err
		}
		if ok {
			words = append(words, word)
		}
	}
	changed := false
	for _, w := range words {
		if t.Remove(w) {
			changed = true
		}
	}
	return changed, nil
}

// RetainAll removes every stored word that is not among items and reports
// whether anything was removed.
func (t *Trie) RetainAll(items ...any) (bool, error) {
	keep := New()
	keep.caseSensitive, keep.normalised = t.caseSensitive, t.normalised
	for _, item := range items {
		word, ok, err := asWord(item)
		if err != nil {
			return false, err
		}
		if ok {
			keep.Add(word)
		}
	}
	changed := false
	for _, w := range t.Words() {
		if !keep.Contains(w) && t.Remove(w) {
			changed = true
		}
	}
	return changed, nil
}
