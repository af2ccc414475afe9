// SPDX-License-Identifier: MIT

// Package algebra applies compiled operator sums to vectors and builds
// dense matrices from them.
//
// Apply accumulates H|v> into an output vector without materializing H.
// Matrix materializes H for blocks small enough to fit in memory. Both
// are generic over float64 and complex128 amplitudes; real amplitudes are
// only accepted when the operator and both blocks are real.
//
// Parallel apply splits the input basis into contiguous chunks, one per
// worker. Diagonal terms write disjoint output entries directly; every
// off-diagonal contribution goes to a per-worker buffer and the buffers are
// merged in worker order, so results do not depend on scheduling.
//
// For distributed blocks, contributions to configurations owned by other
// ranks are buffered per destination and sent in a single Exchange per
// apply; any local failure aborts the communicator.
package algebra
