// Package buffer holds the memory and layout helpers shared by the
// generators and the diagnostics.
//
// Every helper works on flat column-major storage: element (i,j) of a
// rows×cols matrix lives at buf[i+j*rows]. The helpers carry no numerical
// semantics beyond column norms; they size, reshape, permute and slice
// buffers so the numeric packages never index by hand.
//
// Dense wraps such a slice together with its shape and is the buffer type
// the generator writes into.
//
// Policies:
//   - Storage only grows (EnsureCapacity); shrinking a shape keeps the
//     backing array.
//   - Malformed sizes, short buffers and bad permutations return
//     ErrInvalidArgument; out-of-bounds At/Set return ErrOutOfRange.
//   - No helper retains a reference to a caller's slice after it returns.
package buffer
