// SPDX-License-Identifier: MIT

// Package comm is the message-passing layer used by distributed blocks.
//
// A Comm is one rank of a fixed-size world. All collectives (Exchange,
// AllReduce*, Barrier) are synchronous rendezvous points: every rank must
// call them in the same order. A rank that fails before reaching a
// collective must call Abort, which releases all peers with an error
// wrapping ErrAborted and the original cause instead of deadlocking them.
//
// Two implementations are provided:
//   - Self(): a single-rank world; collectives are local.
//   - NewWorld(n): n ranks in one process, one goroutine per rank, with
//     shared mailboxes. Reductions are summed in fixed rank order so that
//     results do not depend on goroutine scheduling.
package comm
