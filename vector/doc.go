// Package vector provides fixed 3-component vector algebra.
//
// Vec3 is a plain value type: it is copied on assignment, owns no heap
// storage, and every operation is pure — values in, a new value out,
// arguments never mutated. There are no error paths; the one degenerate
// case (normalizing a zero-magnitude vector) is defined as a no-op on
// the input rather than a failure.
//
// See the examples in this package for usage patterns.
package vector
