package objstore

import (
	"fmt"
	"time"
)

// Store is a generic in-memory object store that associates unique string
// identifiers with values of type T.
//
// Entries live in two position-aligned sequences, one for identifiers and
// one for values. Depending on configuration the sequences are kept in
// insertion order, sorted by identifier, or sorted by value content via a
// compare function. Capacity grows eagerly in increments to amortize
// reallocation across bursts of insertions.
//
// A Store is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access externally.
//
// Pointers returned by Add, Set, Get and friends stay valid until the entry
// is deleted, Reset is called, or any reconfiguration (SetOrdering,
// SetCompare, SetSynth) rebuilds the backing sequences. Do not retain them
// across those calls.
type Store[T any] struct {
	ids    []string
	values []T

	ordering Ordering
	compare  CompareFunc[T]
	synth    SynthFunc[T]

	capInc   int
	sep      string
	digits   int
	decimals int

	seq     uint64
	added   bool
	lastIdx int

	logger  *Logger
	metrics MetricsCollector
}

// New creates a Store configured by the given options.
//
// Example:
//
//	s := objstore.New[City](
//	    objstore.WithOrdering[City](objstore.Ascending),
//	    objstore.WithCapacityIncrement[City](100),
//	)
func New[T any](optFns ...Option[T]) *Store[T] {
	opts := applyOptions(optFns)

	return &Store[T]{
		ordering: opts.ordering,
		compare:  opts.compare,
		synth:    opts.synth,
		capInc:   opts.capInc,
		sep:      opts.sep,
		digits:   opts.digits,
		decimals: opts.decimals,
		seq:      idCounterBase,
		lastIdx:  -1,
		logger:   opts.logger,
		metrics:  opts.metrics,
	}
}

// Len returns the number of stored entries.
func (s *Store[T]) Len() int {
	return len(s.ids)
}

// Added reports whether the most recent Add, AddValue, Set, Get or GetOrAdd
// call created a new entry.
func (s *Store[T]) Added() bool {
	return s.added
}

// Add inserts or replaces the entry addressed by id and returns a pointer to
// the stored value.
//
// If no entry exists, a new one is created from build (or the zero value of
// T when build is nil) and Added reports true. If an entry exists, it is
// replaced with build() when build is non-nil and left untouched otherwise;
// Added reports false either way.
func (s *Store[T]) Add(id string, build func() T) *T {
	start := time.Now()

	i, found := s.locate(id, nil)
	if found {
		if build != nil {
			i = s.replaceAt(i, id, build())
		}
		s.setAdded(false)
		s.metrics.RecordInsert(time.Since(start), false)
		s.logger.LogInsert(id, false)
		return &s.values[i]
	}

	var v T
	if build != nil {
		v = build()
	}
	if s.compare != nil {
		// Order is by value content; the id miss above came from a linear
		// scan and carries no insertion position.
		i, _ = s.locate(id, &v)
	}
	s.insertAt(i, id, v)
	s.setAdded(true)
	s.metrics.RecordInsert(time.Since(start), true)
	s.logger.LogInsert(id, true)
	return &s.values[i]
}

// AddValue builds a value, synthesizes an identifier for it and stores it as
// a fresh entry. The identifier comes from the configured synth function, or
// from the internal counter when none is set.
//
// Synthesized identifiers are expected to be unique: if one collides with an
// existing entry, AddValue returns ErrIDCollision and the store is left
// unchanged.
func (s *Store[T]) AddValue(build func() T) (*T, error) {
	start := time.Now()

	if build == nil {
		return nil, ErrNilBuild
	}
	v := build()
	id := s.synthesizeID(v)

	i, found := s.locate(id, nil)
	if found {
		s.setAdded(false)
		s.metrics.RecordInsert(time.Since(start), false)
		return nil, fmt.Errorf("%w: %q", ErrIDCollision, id)
	}
	if s.compare != nil {
		i, _ = s.locate(id, &v)
	}
	s.insertAt(i, id, v)
	s.setAdded(true)
	s.metrics.RecordInsert(time.Since(start), true)
	s.logger.LogInsert(id, true)
	return &s.values[i], nil
}

// Set upserts a copy of value under id and returns a pointer to the stored
// copy, never to the caller's variable. Added reports whether a new entry
// was created.
func (s *Store[T]) Set(id string, value T) *T {
	start := time.Now()

	i, found := s.locate(id, nil)
	if found {
		i = s.replaceAt(i, id, value)
		s.setAdded(false)
		s.metrics.RecordInsert(time.Since(start), false)
		s.logger.LogInsert(id, false)
		return &s.values[i]
	}
	if s.compare != nil {
		i, _ = s.locate(id, &value)
	}
	s.insertAt(i, id, value)
	s.setAdded(true)
	s.metrics.RecordInsert(time.Since(start), true)
	s.logger.LogInsert(id, true)
	return &s.values[i]
}

// Get returns a pointer to the value addressed by id, or (nil, false) when
// no such entry exists. Get never inserts.
func (s *Store[T]) Get(id string) (*T, bool) {
	start := time.Now()

	s.setAdded(false)
	i, found := s.locate(id, nil)
	s.metrics.RecordLookup(time.Since(start), found)
	if !found {
		return nil, false
	}
	return &s.values[i], true
}

// GetOrAdd returns the value addressed by id, inserting one first when it is
// absent. The new value comes from build, or is the zero value of T when
// build is nil. The boolean result (also available via Added) reports
// whether an insert happened.
func (s *Store[T]) GetOrAdd(id string, build func() T) (*T, bool) {
	start := time.Now()

	i, found := s.locate(id, nil)
	if found {
		s.setAdded(false)
		s.metrics.RecordLookup(time.Since(start), true)
		return &s.values[i], false
	}

	var v T
	if build != nil {
		v = build()
	}
	if s.compare != nil {
		i, _ = s.locate(id, &v)
	}
	s.insertAt(i, id, v)
	s.setAdded(true)
	s.metrics.RecordInsert(time.Since(start), true)
	s.logger.LogInsert(id, true)
	return &s.values[i], true
}

// GetByValue returns a pointer to a stored value that the configured compare
// function reports equal to probe. When several entries compare equal, the
// first position the search encounters wins.
//
// Without a compare function there is no way to match values; the call then
// returns ErrComparatorRequired. A miss returns ErrNotFound.
func (s *Store[T]) GetByValue(probe T) (*T, error) {
	start := time.Now()

	if s.compare == nil {
		return nil, ErrComparatorRequired
	}
	i, found := s.locate("", &probe)
	s.metrics.RecordLookup(time.Since(start), found)
	if !found {
		return nil, ErrNotFound
	}
	return &s.values[i], nil
}

// IDByValue returns the identifier of a stored value equal to probe, under
// the same contract as GetByValue.
func (s *Store[T]) IDByValue(probe T) (string, error) {
	start := time.Now()

	if s.compare == nil {
		return "", ErrComparatorRequired
	}
	i, found := s.locate("", &probe)
	s.metrics.RecordLookup(time.Since(start), found)
	if !found {
		return "", ErrNotFound
	}
	return s.ids[i], nil
}

// Delete removes the entry addressed by id, preserving the relative order of
// the remaining entries. It reports whether an entry was removed.
func (s *Store[T]) Delete(id string) bool {
	start := time.Now()

	i, found := s.locate(id, nil)
	if found {
		s.removeAt(i)
	}
	s.metrics.RecordDelete(time.Since(start), found)
	s.logger.LogDelete(id, found)
	return found
}

// DeleteByValue removes a stored entry whose value compares equal to probe,
// under the same contract as GetByValue. It reports whether an entry was
// removed.
func (s *Store[T]) DeleteByValue(probe T) (bool, error) {
	start := time.Now()

	if s.compare == nil {
		return false, ErrComparatorRequired
	}
	i, found := s.locate("", &probe)
	if found {
		s.removeAt(i)
	}
	s.metrics.RecordDelete(time.Since(start), found)
	return found, nil
}

// Reset removes all entries. Configuration (ordering, compare function,
// capacity increment, id-format parameters) and the internal id counter are
// retained, as is the allocated capacity.
func (s *Store[T]) Reset() {
	clear(s.values)
	s.ids = s.ids[:0]
	s.values = s.values[:0]
	s.lastIdx = -1
}

// ForEach calls fn for every stored value in storage order, first to last.
// Returning false from fn stops the iteration early. The store must not be
// mutated while ForEach runs.
func (s *Store[T]) ForEach(fn func(v *T) bool) {
	for i := range s.values {
		if !fn(&s.values[i]) {
			return
		}
	}
}

// ForEachWithID calls fn for every (identifier, value) pair in storage
// order, first to last. Returning false from fn stops the iteration early.
// The store must not be mutated while ForEachWithID runs.
func (s *Store[T]) ForEachWithID(fn func(id string, v *T) bool) {
	for i := range s.values {
		if !fn(s.ids[i], &s.values[i]) {
			return
		}
	}
}

// replaceAt overwrites the entry at i with v. When a compare function is
// active the new value may sort elsewhere, so the entry is removed and
// reinserted at its ordered position. Returns the entry's position.
func (s *Store[T]) replaceAt(i int, id string, v T) int {
	if s.compare != nil {
		s.removeAt(i)
		j, _ := s.locate(id, &v)
		s.insertAt(j, id, v)
		return j
	}
	s.values[i] = v
	return i
}

// insertAt places (id, v) at position i in both sequences, shifting the
// tail right.
func (s *Store[T]) insertAt(i int, id string, v T) {
	s.grow()

	s.ids = append(s.ids, "")
	copy(s.ids[i+1:], s.ids[i:])
	s.ids[i] = id

	var zero T
	s.values = append(s.values, zero)
	copy(s.values[i+1:], s.values[i:])
	s.values[i] = v

	s.lastIdx = i
}

// removeAt deletes the entry at position i from both sequences, shifting the
// tail left. Capacity is never given back.
func (s *Store[T]) removeAt(i int) {
	n := len(s.ids)
	copy(s.ids[i:], s.ids[i+1:])
	s.ids[n-1] = ""
	s.ids = s.ids[:n-1]

	var zero T
	copy(s.values[i:], s.values[i+1:])
	s.values[n-1] = zero
	s.values = s.values[:n-1]

	s.lastIdx = -1
}

// grow ensures room for one more entry, extending capacity by the configured
// increment so that reallocation cost is amortized across bursts of inserts.
func (s *Store[T]) grow() {
	need := len(s.ids) + 1
	if need <= cap(s.ids) && need <= cap(s.values) {
		return
	}
	newCap := len(s.ids) + s.capInc
	if newCap < need {
		newCap = need
	}

	ids := make([]string, len(s.ids), newCap)
	copy(ids, s.ids)
	s.ids = ids

	values := make([]T, len(s.values), newCap)
	copy(values, s.values)
	s.values = values
}

func (s *Store[T]) setAdded(added bool) {
	s.added = added
}
