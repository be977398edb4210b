// Package testutil provides testing utilities for vecframe.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded generator for column values and labels.
//
// # Random Columns
//
//	rng := testutil.NewRNG(seed)
//	ints := rng.Ints(100, 20)           // ties are likely
//	floats := rng.Floats(100)           // uniform [0, 1)
//	sparse := rng.WithMissing(ints, 0.1) // roughly 10% nil
//	labels := rng.Labels(100)           // unique symbolic labels
package testutil
