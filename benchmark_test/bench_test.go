package benchmark_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/objstore"
	"github.com/hupe1980/objstore/testutil"
)

func seedIDs(b *testing.B, n int) []string {
	b.Helper()
	rng := testutil.NewRNG(1)
	ids := rng.UniqueIDs(n, 12)
	rng.Shuffle(ids)
	return ids
}

// BenchmarkInsert compares insertion cost across ordering disciplines.
// Ordered inserts pay an O(log n) search plus an O(n) shift; unordered
// inserts append.
func BenchmarkInsert(b *testing.B) {
	for _, size := range []int{100, 1_000, 10_000} {
		ids := seedIDs(b, size)

		orderings := []struct {
			name string
			mode objstore.Ordering
		}{
			{"unordered", objstore.Unordered},
			{"ascending", objstore.Ascending},
		}

		for _, o := range orderings {
			b.Run(fmt.Sprintf("%s_%d", o.name, size), func(b *testing.B) {
				b.ReportAllocs()
				for n := 0; n < b.N; n++ {
					s := objstore.New[int](
						objstore.WithOrdering[int](o.mode),
						objstore.WithCapacityIncrement[int](size),
					)
					for i, id := range ids {
						s.Set(id, i)
					}
				}
			})
		}
	}
}

// BenchmarkGet measures lookup cost: binary search for the ordered store,
// linear scan for the unordered one.
func BenchmarkGet(b *testing.B) {
	const size = 10_000
	ids := seedIDs(b, size)

	build := func(mode objstore.Ordering) *objstore.Store[int] {
		s := objstore.New[int](objstore.WithOrdering[int](mode))
		for i, id := range ids {
			s.Set(id, i)
		}
		return s
	}

	b.Run("ascending", func(b *testing.B) {
		s := build(objstore.Ascending)
		i := 0
		for n := 0; n < b.N; n++ {
			s.Get(ids[i%size])
			i++
		}
	})

	b.Run("unordered", func(b *testing.B) {
		s := build(objstore.Unordered)
		i := 0
		for n := 0; n < b.N; n++ {
			s.Get(ids[i%size])
			i++
		}
	})

	// Repeated probes of one identifier hit the cached-index fast path.
	b.Run("ascending_repeated", func(b *testing.B) {
		s := build(objstore.Ascending)
		for n := 0; n < b.N; n++ {
			s.Get(ids[size/2])
		}
	})
}

// BenchmarkCapacityIncrement shows the amortization effect of chunked
// growth on insert-heavy workloads.
func BenchmarkCapacityIncrement(b *testing.B) {
	const size = 5_000
	ids := seedIDs(b, size)

	for _, inc := range []int{2, 10, 1_000} {
		b.Run(fmt.Sprintf("inc_%d", inc), func(b *testing.B) {
			b.ReportAllocs()
			for n := 0; n < b.N; n++ {
				s := objstore.New[int](objstore.WithCapacityIncrement[int](inc))
				for i, id := range ids {
					s.Set(id, i)
				}
			}
		})
	}
}

// BenchmarkRebuild measures the cost of an ordering change.
func BenchmarkRebuild(b *testing.B) {
	const size = 1_000
	ids := seedIDs(b, size)

	for n := 0; n < b.N; n++ {
		b.StopTimer()
		s := objstore.New[int](objstore.WithOrdering[int](objstore.Ascending))
		for i, id := range ids {
			s.Set(id, i)
		}
		b.StartTimer()

		s.SetOrdering(objstore.Descending)
	}
}
