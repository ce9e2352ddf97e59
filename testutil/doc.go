// Package testutil provides testing utilities for objstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating deterministic identifier sets and for
// checking the ordering of iterated identifiers.
//
// # Identifier Generation
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.UniqueIDs(100, 8) // 100 distinct ids of length 8
//	rng.Shuffle(ids)             // random insertion order
//
// # Order Verification
//
//	testutil.IsAscending(ids)
//	testutil.IsDescending(ids)
package testutil
