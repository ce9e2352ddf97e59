package objstore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/objstore"
)

func TestStore_SetOrdering_Rebuilds(t *testing.T) {
	s := objstore.New[string](objstore.WithOrdering[string](objstore.Ascending))
	s.Set("b", "two")
	s.Set("a", "one")
	require.Equal(t, []string{"a", "b"}, collectIDs(s))

	s.SetOrdering(objstore.Descending)
	assert.Equal(t, objstore.Descending, s.Ordering())
	assert.Equal(t, []string{"b", "a"}, collectIDs(s))

	// Entries survive the rebuild intact.
	v, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "one", *v)
}

func TestStore_SetOrdering_FromUnordered(t *testing.T) {
	s := objstore.New[string]()
	for _, id := range []string{"c", "a", "b"} {
		s.Set(id, id)
	}
	require.Equal(t, []string{"c", "a", "b"}, collectIDs(s))

	s.SetOrdering(objstore.Ascending)
	assert.Equal(t, []string{"a", "b", "c"}, collectIDs(s))
}

func TestStore_SetOrdering_NoChangeNoRebuild(t *testing.T) {
	metrics := &objstore.BasicMetricsCollector{}
	s := objstore.New[string](
		objstore.WithOrdering[string](objstore.Ascending),
		objstore.WithMetricsCollector[string](metrics),
	)
	s.Set("a", "one")

	s.SetOrdering(objstore.Ascending)
	assert.Zero(t, metrics.RebuildCount.Load())
}

func TestStore_SetCompare_Rebuilds(t *testing.T) {
	s := objstore.New[city](objstore.WithOrdering[city](objstore.Ascending))
	s.Set("BER", city{Name: "Berlin", Population: 3_700_000})
	s.Set("REK", city{Name: "Reykjavik", Population: 140_000})
	s.Set("TYO", city{Name: "Tokyo", Population: 13_900_000})
	require.Equal(t, []string{"BER", "REK", "TYO"}, collectIDs(s))

	s.SetCompare(byPopulation)
	assert.Equal(t, []string{"REK", "BER", "TYO"}, collectIDs(s))

	// Removing the comparator falls back to identifier ordering.
	s.SetCompare(nil)
	assert.Equal(t, []string{"BER", "REK", "TYO"}, collectIDs(s))
}

func TestStore_SetSynth_RegeneratesIDs(t *testing.T) {
	s := objstore.New[city](objstore.WithOrdering[city](objstore.Ascending))
	s.Set("zz-1", city{Name: "Berlin"})
	s.Set("zz-2", city{Name: "Tokyo"})

	s.SetSynth(func(c city) string {
		return strings.ToLower(c.Name)
	})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"berlin", "tokyo"}, collectIDs(s))

	_, ok := s.Get("zz-1")
	assert.False(t, ok, "old identifiers are discarded")

	v, ok := s.Get("berlin")
	require.True(t, ok)
	assert.Equal(t, "Berlin", v.Name)
}

func TestStore_SetSynth_NilRegeneratesFromCounter(t *testing.T) {
	s := objstore.New[string]()
	s.Set("x", "one")
	s.Set("y", "two")

	s.SetSynth(nil)
	require.Equal(t, 2, s.Len())
	for _, id := range collectIDs(s) {
		assert.Len(t, id, objstore.DefaultIDDigits)
	}
}

func TestStore_ConfigValidation(t *testing.T) {
	s := objstore.New[int]()

	s.SetCapacityIncrement(50)
	assert.Equal(t, 50, s.CapacityIncrement())
	s.SetCapacityIncrement(1)
	assert.Equal(t, 50, s.CapacityIncrement(), "increments <= 1 are ignored")
	s.SetCapacityIncrement(0)
	assert.Equal(t, 50, s.CapacityIncrement())

	s.SetIDSeparator("::")
	assert.Equal(t, "::", s.IDSeparator())
	s.SetIDSeparator("")
	assert.Equal(t, "::", s.IDSeparator(), "empty separator is ignored")

	s.SetIDDigits(4)
	assert.Equal(t, 4, s.IDDigits())
	s.SetIDDigits(0)
	assert.Equal(t, 4, s.IDDigits(), "zero digit width is ignored")

	s.SetIDDecimals(2)
	assert.Equal(t, 2, s.IDDecimals())
	s.SetIDDecimals(0)
	assert.Equal(t, 2, s.IDDecimals(), "zero decimal width is ignored")
}

func TestOptions_Defaults(t *testing.T) {
	s := objstore.New[int]()

	assert.Equal(t, objstore.Unordered, s.Ordering())
	assert.Equal(t, objstore.DefaultCapacityIncrement, s.CapacityIncrement())
	assert.Equal(t, objstore.DefaultIDSeparator, s.IDSeparator())
	assert.Equal(t, objstore.DefaultIDDigits, s.IDDigits())
	assert.Equal(t, objstore.DefaultIDDecimals, s.IDDecimals())
}

func TestOptions_WithIDFormat(t *testing.T) {
	s := objstore.New[int](objstore.WithIDFormat[int]("::", 4, 2))
	assert.Equal(t, "::", s.IDSeparator())
	assert.Equal(t, 4, s.IDDigits())
	assert.Equal(t, 2, s.IDDecimals())

	// Invalid parts are ignored individually.
	s = objstore.New[int](objstore.WithIDFormat[int]("", 0, 0))
	assert.Equal(t, objstore.DefaultIDSeparator, s.IDSeparator())
	assert.Equal(t, objstore.DefaultIDDigits, s.IDDigits())
	assert.Equal(t, objstore.DefaultIDDecimals, s.IDDecimals())
}

func TestOrdering_String(t *testing.T) {
	assert.Equal(t, "unordered", objstore.Unordered.String())
	assert.Equal(t, "ascending", objstore.Ascending.String())
	assert.Equal(t, "descending", objstore.Descending.String())
	assert.Equal(t, "unknown", objstore.Ordering(99).String())
}
