package objstore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// DefaultIDSeparator joins the parts of a synthesized identifier. The
	// multi-character sentinel is unlikely to occur in natural keys.
	DefaultIDSeparator = "#/#"

	// DefaultIDDigits is the default fixed width of numeric identifier parts.
	DefaultIDDigits = 8

	// DefaultIDDecimals is the default precision of floating-point
	// identifier parts.
	DefaultIDDecimals = 4

	// idCounterBase seeds the internal auto-incrementing identifier counter.
	idCounterBase = 10000
)

// MakeID synthesizes a single identifier from the given arguments.
//
// Each argument is converted through a type-directed rule and the parts are
// joined with the configured separator:
//
//   - signed and unsigned integers: zero-padded to the configured digit
//     width (negative values keep their sign in front of the padding)
//   - floating-point numbers: explicit sign, integer part zero-padded to the
//     digit width, fractional part at the configured decimal width
//   - strings and fmt.Stringer values: verbatim
//   - anything else: fmt.Sprint
//
// The fixed widths make identifiers derived from heterogeneous tuples sort
// compatibly under plain lexicographic comparison. With no arguments, MakeID
// formats the internal counter, which starts at 10000 and never resets.
//
//	s.MakeID(42, "x") // "00000042#/#x" with default separator and width
func (s *Store[T]) MakeID(args ...any) string {
	if len(args) == 0 {
		return s.nextCounterID()
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = s.formatPart(a)
	}
	return strings.Join(parts, s.sep)
}

func (s *Store[T]) nextCounterID() string {
	id := fmt.Sprintf("%0*d", s.digits, s.seq)
	s.seq++
	return id
}

// synthesizeID derives the identifier for v via the configured synth
// function, falling back to the counter.
func (s *Store[T]) synthesizeID(v T) string {
	if s.synth != nil {
		return s.synth(v)
	}
	return s.nextCounterID()
}

func (s *Store[T]) formatPart(a any) string {
	switch v := a.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return s.formatInt(int64(v))
	case int8:
		return s.formatInt(int64(v))
	case int16:
		return s.formatInt(int64(v))
	case int32:
		return s.formatInt(int64(v))
	case int64:
		return s.formatInt(v)
	case uint:
		return fmt.Sprintf("%0*d", s.digits, uint64(v))
	case uint8:
		return fmt.Sprintf("%0*d", s.digits, uint64(v))
	case uint16:
		return fmt.Sprintf("%0*d", s.digits, uint64(v))
	case uint32:
		return fmt.Sprintf("%0*d", s.digits, uint64(v))
	case uint64:
		return fmt.Sprintf("%0*d", s.digits, v)
	case float32:
		return s.formatFloat(float64(v))
	case float64:
		return s.formatFloat(v)
	default:
		return fmt.Sprint(v)
	}
}

func (s *Store[T]) formatInt(v int64) string {
	if v < 0 {
		// Width includes the sign, so widen by one to keep the digit count.
		return fmt.Sprintf("%0*d", s.digits+1, v)
	}
	return fmt.Sprintf("%0*d", s.digits, v)
}

func (s *Store[T]) formatFloat(v float64) string {
	// Sign + integer part at digit width + point + fixed decimals.
	return fmt.Sprintf("%+0*.*f", s.digits+s.decimals+2, s.decimals, v)
}

// UUIDSynth returns a SynthFunc that ignores the value and produces a random
// UUIDv4 string. Useful when values carry no natural key and entries must
// survive SetSynth regeneration without collisions.
func UUIDSynth[T any]() SynthFunc[T] {
	return func(T) string {
		return uuid.NewString()
	}
}
