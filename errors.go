package objstore

import "errors"

var (
	// ErrNotFound is returned when a value-based lookup finds no match.
	// Identifier-based lookups report misses via their boolean result instead.
	ErrNotFound = errors.New("objstore: not found")

	// ErrComparatorRequired is returned when a value-based operation
	// (GetByValue, IDByValue, DeleteByValue) is called on a store that has
	// no compare function configured. Without one there is no way to match
	// a probe value against stored entries.
	ErrComparatorRequired = errors.New("objstore: compare function required for value-based access")

	// ErrIDCollision is returned by AddValue when the synthesized identifier
	// already addresses an entry. Synthesized identifiers are expected to be
	// unique; a collision leaves the store unchanged.
	ErrIDCollision = errors.New("objstore: synthesized id collides with existing entry")

	// ErrNilBuild is returned by AddValue when no build function is supplied.
	ErrNilBuild = errors.New("objstore: build function must not be nil")
)
