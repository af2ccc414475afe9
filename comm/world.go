// SPDX-License-Identifier: MIT

package comm

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// World is an in-process message-passing world of fixed size.
type World struct {
	size  int
	comms []*rank

	mu         sync.Mutex
	cond       *sync.Cond
	arrived    int
	generation uint64
	cause      error
	aborted    bool

	mailbox [][][]Amplitude // mailbox[src][dst]
	floats  []complex128
	ints    []int64
}

// NewWorld creates a world with n ranks.
func NewWorld(n int) (*World, error) {
	if n < 1 {
		return nil, ErrInvalidWorld
	}
	w := &World{
		size:    n,
		mailbox: make([][][]Amplitude, n),
		floats:  make([]complex128, n),
		ints:    make([]int64, n),
	}
	w.cond = sync.NewCond(&w.mu)
	w.comms = make([]*rank, n)
	for r := 0; r < n; r++ {
		w.comms[r] = &rank{world: w, rank: r}
	}
	return w, nil
}

// Size returns the number of ranks.
func (w *World) Size() int { return w.size }

// Comm returns the communicator of rank r.
func (w *World) Comm(r int) Comm { return w.comms[r] }

// Run executes fn once per rank, each on its own goroutine, and waits for
// all of them. A rank returning an error aborts the world so that peers
// blocked in collectives return instead of deadlocking. The first error
// is returned.
func (w *World) Run(fn func(c Comm) error) error {
	var g errgroup.Group
	for _, c := range w.comms {
		g.Go(func() error {
			if err := fn(c); err != nil {
				c.Abort(err)
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

// barrierLocked waits until all ranks arrived. w.mu must be held.
func (w *World) barrierLocked() error {
	if w.aborted {
		return abortedError(w.cause)
	}
	gen := w.generation
	w.arrived++
	if w.arrived == w.size {
		w.arrived = 0
		w.generation++
		w.cond.Broadcast()
		return nil
	}
	for gen == w.generation && !w.aborted {
		w.cond.Wait()
	}
	if gen == w.generation {
		return abortedError(w.cause)
	}
	return nil
}

func (w *World) abort(cause error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.aborted {
		w.aborted = true
		w.cause = cause
	}
	w.cond.Broadcast()
}

// rank is the Comm handed to each goroutine of a World.
type rank struct {
	world *World
	rank  int
}

func (r *rank) Rank() int { return r.rank }
func (r *rank) Size() int { return r.world.size }

func (r *rank) Barrier() error {
	w := r.world
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.barrierLocked()
}

func (r *rank) Abort(cause error) { r.world.abort(cause) }

func (r *rank) Exchange(send [][]Amplitude) ([][]Amplitude, error) {
	w := r.world
	if len(send) != w.size {
		err := ErrBufferCount
		w.abort(err)
		return nil, err
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.mailbox[r.rank] = send
	if err := w.barrierLocked(); err != nil {
		return nil, err
	}
	recv := make([][]Amplitude, w.size)
	for src := 0; src < w.size; src++ {
		recv[src] = append([]Amplitude(nil), w.mailbox[src][r.rank]...)
	}
	// Second rendezvous: nobody may overwrite a mailbox before every rank
	// copied its inbox.
	if err := w.barrierLocked(); err != nil {
		return nil, err
	}
	return recv, nil
}

func (r *rank) AllReduceComplex(x complex128) (complex128, error) {
	w := r.world
	w.mu.Lock()
	defer w.mu.Unlock()

	w.floats[r.rank] = x
	if err := w.barrierLocked(); err != nil {
		return 0, err
	}
	var sum complex128
	for _, v := range w.floats {
		sum += v
	}
	if err := w.barrierLocked(); err != nil {
		return 0, err
	}
	return sum, nil
}

func (r *rank) AllReduceFloat64(x float64) (float64, error) {
	sum, err := r.AllReduceComplex(complex(x, 0))
	return real(sum), err
}

func (r *rank) AllReduceInt64(x int64) (int64, error) {
	w := r.world
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ints[r.rank] = x
	if err := w.barrierLocked(); err != nil {
		return 0, err
	}
	var sum int64
	for _, v := range w.ints {
		sum += v
	}
	if err := w.barrierLocked(); err != nil {
		return 0, err
	}
	return sum, nil
}
