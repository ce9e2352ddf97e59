package objstore

// Ordering selects the identifier-based ordering discipline of a Store.
//
// When a compare function is configured (see WithCompareFunc), entries are
// ordered by value content instead and the Ordering is not consulted.
type Ordering int

const (
	// Unordered keeps entries in insertion order.
	Unordered Ordering = iota
	// Ascending keeps entries sorted by identifier, A to Z.
	Ascending
	// Descending keeps entries sorted by identifier, Z to A.
	Descending
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Unordered:
		return "unordered"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// CompareFunc compares two stored values. It must return a negative number
// if a sorts before b, zero if they are equal, and a positive number if a
// sorts after b. Ties are broken by identifier comparison.
type CompareFunc[T any] func(a, b T) int

// SynthFunc derives an identifier from a value's content. It is used by
// AddValue and by SetSynth when regenerating identifiers. Derived
// identifiers are expected to be unique per value.
type SynthFunc[T any] func(v T) string
