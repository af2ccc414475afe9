// SPDX-License-Identifier: MIT

// Package states holds wave functions: a block together with a real or
// complex amplitude vector indexed by the block's basis.
//
// Random states derive every amplitude from a hash of the seed and the
// basis configuration, so the same seed gives the same vector whether the
// block is distributed or not. Encode and Decode checkpoint a state as a
// msgpack document inside a zstd stream; Decode rejects data written for a
// different block.
package states
