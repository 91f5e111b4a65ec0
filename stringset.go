package wire

// StringSet is a deduplicating set of strings that preserves insertion
// order, so that encoding the same set always produces the same bytes.
// The zero value is ready to use. Not safe for concurrent use.
type StringSet struct {
	items []string
	index map[string]struct{}
}

// NewStringSet creates a set holding the given items, duplicates
// collapsed, first occurrence deciding the order.
func NewStringSet(items ...string) *StringSet {
	s := &StringSet{}
	for _, v := range items {
		s.Add(v)
	}
	return s
}

// Add inserts v, reporting whether it was not already present.
func (s *StringSet) Add(v string) bool {
	if s.index == nil {
		s.index = make(map[string]struct{})
	}
	if _, ok := s.index[v]; ok {
		return false
	}
	s.index[v] = struct{}{}
	s.items = append(s.items, v)
	return true
}

// Contains reports whether v is in the set.
func (s *StringSet) Contains(v string) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *StringSet) Len() int { return len(s.items) }

// Items returns the elements in insertion order. The slice is a view;
// callers must not modify it.
func (s *StringSet) Items() []string { return s.items }

// Equal reports whether both sets hold the same elements, ignoring
// order.
func (s *StringSet) Equal(o *StringSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	for _, v := range s.items {
		if !o.Contains(v) {
			return false
		}
	}
	return true
}
