package objstore

import "time"

// DefaultCapacityIncrement is the default chunk size by which backing
// storage grows on overflow.
const DefaultCapacityIncrement = 10

// CapacityIncrement returns the configured capacity-growth increment.
func (s *Store[T]) CapacityIncrement() int {
	return s.capInc
}

// SetCapacityIncrement sets the chunk size by which backing storage grows.
// Values of 1 or less are ignored and the prior increment is retained.
func (s *Store[T]) SetCapacityIncrement(n int) {
	if n > 1 {
		s.capInc = n
	}
}

// Ordering returns the configured ordering discipline.
func (s *Store[T]) Ordering() Ordering {
	return s.ordering
}

// IDSeparator returns the separator joining synthesized identifier parts.
func (s *Store[T]) IDSeparator() string {
	return s.sep
}

// SetIDSeparator sets the separator joining synthesized identifier parts.
// An empty separator is ignored.
func (s *Store[T]) SetIDSeparator(sep string) {
	if sep != "" {
		s.sep = sep
	}
}

// IDDigits returns the fixed width of numeric identifier parts.
func (s *Store[T]) IDDigits() int {
	return s.digits
}

// SetIDDigits sets the fixed width of numeric identifier parts. A width of
// zero or less is ignored.
func (s *Store[T]) SetIDDigits(n int) {
	if n > 0 {
		s.digits = n
	}
}

// IDDecimals returns the precision of floating-point identifier parts.
func (s *Store[T]) IDDecimals() int {
	return s.decimals
}

// SetIDDecimals sets the precision of floating-point identifier parts. A
// precision of zero or less is ignored.
func (s *Store[T]) SetIDDecimals(n int) {
	if n > 0 {
		s.decimals = n
	}
}

// SetOrdering switches the identifier ordering discipline at runtime. If it
// differs from the current one, the store is rebuilt: every entry is
// re-inserted at its position under the new order. The rebuild invalidates
// all previously returned value pointers.
func (s *Store[T]) SetOrdering(o Ordering) {
	if o == s.ordering {
		return
	}
	s.ordering = o
	s.rebuild(false)
}

// SetCompare installs (or, with nil, removes) the compare function ordering
// entries by value content, and rebuilds the store under the new order. The
// rebuild invalidates all previously returned value pointers.
func (s *Store[T]) SetCompare(cmp CompareFunc[T]) {
	if cmp == nil && s.compare == nil {
		return
	}
	s.compare = cmp
	s.rebuild(false)
}

// SetSynth installs (or, with nil, removes) the identifier synthesizer.
// Every stored entry has its identifier regenerated through the new
// synthesizer (or the internal counter) and is re-inserted; the old
// identifiers are discarded. Entries whose regenerated identifiers collide
// overwrite each other. The rebuild invalidates all previously returned
// value pointers.
func (s *Store[T]) SetSynth(fn SynthFunc[T]) {
	s.synth = fn
	s.rebuild(true)
}

// rebuild re-creates the backing sequences: it snapshots all pairs, clears
// the store and re-inserts every pair through the upsert path so the active
// ordering invariant is restored. With regenIDs, identifiers are re-derived
// from the values instead of being kept.
func (s *Store[T]) rebuild(regenIDs bool) {
	start := time.Now()

	ids := s.ids
	values := s.values
	n := len(ids)

	s.ids = make([]string, 0, n)
	s.values = make([]T, 0, n)
	s.lastIdx = -1

	for i := range values {
		id := ids[i]
		if regenIDs {
			id = s.synthesizeID(values[i])
		}
		s.Set(id, values[i])
	}

	s.metrics.RecordRebuild(n, time.Since(start))
	s.logger.LogRebuild(n, regenIDs)
}
