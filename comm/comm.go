// SPDX-License-Identifier: MIT

package comm

import (
	"errors"
	"fmt"
)

var (
	// ErrAborted is returned by collectives after some rank called Abort.
	ErrAborted = errors.New("comm: world aborted")

	// ErrInvalidWorld is returned for a world of fewer than one rank.
	ErrInvalidWorld = errors.New("comm: world size must be positive")

	// ErrBufferCount is returned when Exchange is given a send buffer count
	// other than Size().
	ErrBufferCount = errors.New("comm: one send buffer per rank required")
)

// Amplitude is the unit of exchange between ranks: a configuration and the
// coefficient accumulated for it.
type Amplitude struct {
	State uint64
	Value complex128
}

// Comm is one rank of a message-passing world.
type Comm interface {
	// Rank returns this process' rank in [0, Size()).
	Rank() int
	// Size returns the number of ranks.
	Size() int
	// Exchange sends send[dst] to every rank dst and returns recv[src], the
	// buffers every rank src addressed to this rank. Send buffers may be
	// reused after Exchange returns.
	Exchange(send [][]Amplitude) ([][]Amplitude, error)
	// AllReduceFloat64 returns the sum of x over all ranks.
	AllReduceFloat64(x float64) (float64, error)
	// AllReduceComplex returns the sum of x over all ranks.
	AllReduceComplex(x complex128) (complex128, error)
	// AllReduceInt64 returns the sum of x over all ranks.
	AllReduceInt64(x int64) (int64, error)
	// Barrier blocks until every rank reached it.
	Barrier() error
	// Abort releases every rank blocked in, or later entering, a collective.
	Abort(cause error)
}

func abortedError(cause error) error {
	if cause == nil {
		return ErrAborted
	}
	return fmt.Errorf("%w: %w", ErrAborted, cause)
}

// self is the single-rank world.
type self struct {
	err error
}

// Self returns a communicator for a world of one rank.
func Self() Comm { return &self{} }

func (s *self) Rank() int { return 0 }
func (s *self) Size() int { return 1 }

func (s *self) Exchange(send [][]Amplitude) ([][]Amplitude, error) {
	if s.err != nil {
		return nil, abortedError(s.err)
	}
	if len(send) != 1 {
		return nil, ErrBufferCount
	}
	return [][]Amplitude{append([]Amplitude(nil), send[0]...)}, nil
}

func (s *self) AllReduceFloat64(x float64) (float64, error) {
	if s.err != nil {
		return 0, abortedError(s.err)
	}
	return x, nil
}

func (s *self) AllReduceComplex(x complex128) (complex128, error) {
	if s.err != nil {
		return 0, abortedError(s.err)
	}
	return x, nil
}

func (s *self) AllReduceInt64(x int64) (int64, error) {
	if s.err != nil {
		return 0, abortedError(s.err)
	}
	return x, nil
}

func (s *self) Barrier() error {
	if s.err != nil {
		return abortedError(s.err)
	}
	return nil
}

func (s *self) Abort(cause error) {
	if s.err == nil {
		if cause == nil {
			cause = ErrAborted
		}
		s.err = cause
	}
}
