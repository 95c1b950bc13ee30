package powerset

// Family is a collection of distinct subsets, as returned by Generate
// and OfSet. Subset order is unspecified.
type Family[E comparable] []Set[E]

// Len returns the number of subsets.
func (f Family[E]) Len() int {
	return len(f)
}

// Contains reports whether a subset equal to s is in the family.
// Complexity: O(len(f)·|s|).
func (f Family[E]) Contains(s Set[E]) bool {
	for _, sub := range f {
		if sub.Equal(s) {
			return true
		}
	}

	return false
}

// Generate returns the power set of the elements of seq.
// Duplicate elements collapse, keeping the first occurrence.
//
// Example:
//
//	Generate([]string{"a", "b"}) // {}, {a}, {b}, {a b}
func Generate[E comparable](seq []E) Family[E] {
	return GenerateFrom(seq, 0)
}

// GenerateFrom returns the power set of seq[start:]. A start at or past
// the end yields a family holding only the empty set.
func GenerateFrom[E comparable](seq []E, start int) Family[E] {
	if start < 0 {
		start = 0
	}
	if start > len(seq) {
		start = len(seq)
	}

	return generate(distinct(seq[start:]), 0)
}

// generate is the cursor recursion: the power set of seq[start:] is the
// power set of seq[start+1:] plus a copy of every subset with seq[start]
// added. seq must hold distinct elements, so no two results coincide.
func generate[E comparable](seq []E, start int) Family[E] {
	if start >= len(seq) {
		return Family[E]{New[E](0)}
	}

	head := seq[start]
	rest := generate(seq, start+1)
	out := make(Family[E], 0, 2*len(rest))
	for _, sub := range rest {
		with := sub.Clone()
		with.Add(head)
		out = append(out, sub, with)
	}

	return out
}

// OfSet returns the power set of s. Each step removes one element and
// recurses on a fresh copy of the remainder; s itself is not modified.
func OfSet[E comparable](s Set[E]) Family[E] {
	if s.Len() == 0 {
		return Family[E]{New[E](0)}
	}

	var head E
	for e := range s.items {
		head = e
		break
	}
	remainder := s.Clone()
	delete(remainder.items, head)

	rest := OfSet(remainder)
	out := make(Family[E], 0, 2*len(rest))
	for _, sub := range rest {
		with := sub.Clone()
		with.Add(head)
		out = append(out, sub, with)
	}

	return out
}

// distinct returns the elements of seq with later duplicates dropped.
func distinct[E comparable](seq []E) []E {
	seen := make(map[E]struct{}, len(seq))
	out := make([]E, 0, len(seq))
	for _, e := range seq {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}

	return out
}
