// Package objstore provides a generic, embeddable in-memory object store
// that associates unique string identifiers with values of an arbitrary
// element type.
//
// It is meant to be embedded by other components wherever a lightweight
// map-with-optional-ordering is needed, without pulling in a database or
// hashing infrastructure. Entries live in two position-aligned sequences
// (identifiers and values) and every operation works over that pair.
//
// # Quick Start
//
//	s := objstore.New[City](objstore.WithOrdering[City](objstore.Ascending))
//
//	s.Set("BER", City{Name: "Berlin"})
//	s.Add("TYO", func() City { return City{Name: "Tokyo"} })
//
//	if c, ok := s.Get("BER"); ok {
//	    fmt.Println(c.Name)
//	}
//
//	s.ForEachWithID(func(id string, c *City) bool {
//	    fmt.Println(id, c.Name) // ascending id order
//	    return true
//	})
//
// # Ordering
//
// A store is unordered (insertion order), sorted by identifier (Ascending or
// Descending), or sorted by value content via a compare function:
//
//	s := objstore.New[City](objstore.WithCompareFunc[City](func(a, b City) int {
//	    return int(a.Population) - int(b.Population)
//	}))
//
// Ordered stores resolve identifiers with a lower-bound binary search; a
// compare function additionally enables value-based lookups (GetByValue,
// IDByValue, DeleteByValue). Ordering, compare function and id synthesizer
// can be changed at runtime; doing so rebuilds the store and invalidates all
// previously returned value pointers.
//
// # Identifier Synthesis
//
// AddValue stores a value without an explicit identifier, deriving one from
// a configured synthesizer or from an internal counter. MakeID builds
// sort-compatible identifiers from heterogeneous argument tuples using
// fixed-width formatting:
//
//	s.MakeID(42, "x") // "00000042#/#x"
//
// # Concurrency
//
// A Store performs no locking. Callers sharing one across goroutines must
// serialize access externally.
package objstore
