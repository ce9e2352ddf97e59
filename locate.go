package objstore

import "strings"

// sorted reports whether an ordering discipline is active.
func (s *Store[T]) sorted() bool {
	return s.ordering != Unordered || s.compare != nil
}

// locate resolves id (and, for value-ordered stores, an optional probe
// value) to a position in the backing sequences. The boolean result reports
// a hit; on a miss the returned position is where a new entry must be
// inserted to preserve the active order.
//
// The position of the most recent hit is cached, which short-circuits
// repeated probes of the same identifier (the common check-then-insert
// sequence).
//
// When a compare function is active the sequences are ordered by value, so
// the binary search needs a probe; an id-only call falls back to a linear
// scan and its miss position is meaningless for insertion.
func (s *Store[T]) locate(id string, probe *T) (int, bool) {
	n := len(s.ids)

	if id != "" && s.lastIdx >= 0 && s.lastIdx < n && s.ids[s.lastIdx] == id {
		return s.lastIdx, true
	}

	if s.sorted() && (s.compare == nil || probe != nil) {
		// Lower-bound binary search.
		first := 0
		count := n
		for count > 0 {
			step := count / 2
			mid := first + step
			cmp := s.compareAt(mid, id, probe)
			switch {
			case cmp < 0:
				first = mid + 1
				count -= step + 1
			case cmp == 0:
				s.lastIdx = mid
				return mid, true
			default:
				count = step
			}
		}
		s.lastIdx = first
		return first, false
	}

	for i := 0; i < n; i++ {
		if s.ids[i] == id {
			s.lastIdx = i
			return i, true
		}
	}
	s.lastIdx = n
	return n, false
}

// compareAt orders the entry at position i against the (id, probe) pair:
// negative when the stored entry sorts before it, zero on a match, positive
// when it sorts after.
//
// With a compare function and a probe, values are compared first and ties
// are broken by identifier; a tie with an empty probe id is a match. Without
// either, identifiers are compared directly, inverted under Descending.
func (s *Store[T]) compareAt(i int, id string, probe *T) int {
	if s.compare != nil && probe != nil {
		if c := s.compare(s.values[i], *probe); c != 0 {
			return c
		}
		if id == "" {
			return 0
		}
		return strings.Compare(s.ids[i], id)
	}

	c := strings.Compare(s.ids[i], id)
	if s.ordering == Descending {
		c = -c
	}
	return c
}
