package powerset

// Set is an unordered collection of distinct comparable elements.
// The zero value is an empty set ready to use.
type Set[E comparable] struct {
	items map[E]struct{}
}

// New returns an empty set with room for size elements.
func New[E comparable](size int) Set[E] {
	return Set[E]{items: make(map[E]struct{}, size)}
}

// Of returns a set holding the given elements; duplicates collapse.
func Of[E comparable](elems ...E) Set[E] {
	s := New[E](len(elems))
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts e. Adding an element already present is a no-op.
func (s *Set[E]) Add(e E) {
	if s.items == nil {
		s.items = make(map[E]struct{})
	}
	s.items[e] = struct{}{}
}

// Has reports whether e is in the set.
func (s Set[E]) Has(e E) bool {
	_, ok := s.items[e]

	return ok
}

// Len returns the number of elements.
func (s Set[E]) Len() int {
	return len(s.items)
}

// Values returns the elements in unspecified order.
func (s Set[E]) Values() []E {
	out := make([]E, 0, len(s.items))
	for e := range s.items {
		out = append(out, e)
	}

	return out
}

// Clone returns an independent copy of s.
func (s Set[E]) Clone() Set[E] {
	c := New[E](len(s.items))
	for e := range s.items {
		c.items[e] = struct{}{}
	}

	return c
}

// SubsetOf reports whether every element of s is also in other.
func (s Set[E]) SubsetOf(other Set[E]) bool {
	if len(s.items) > len(other.items) {
		return false
	}
	for e := range s.items {
		if !other.Has(e) {
			return false
		}
	}

	return true
}

// Equal reports whether s and other hold exactly the same elements.
func (s Set[E]) Equal(other Set[E]) bool {
	return len(s.items) == len(other.items) && s.SubsetOf(other)
}
