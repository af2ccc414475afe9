// SPDX-License-Identifier: MIT

package states

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/awietek/xdiag-sub007/blocks"
)

// checkpoint is the msgpack document stored inside the zstd stream.
// Complex amplitudes are interleaved as (re, im) pairs.
type checkpoint struct {
	Version     int       `msgpack:"version"`
	Fingerprint uint64    `msgpack:"fingerprint"`
	Rank        int       `msgpack:"rank"`
	Ranks       int       `msgpack:"ranks"`
	Real        bool      `msgpack:"real"`
	Amplitudes  []float64 `msgpack:"amplitudes"`
}

const checkpointVersion = 1

func rankOf(b blocks.Block) (int, int) {
	if d, ok := b.(blocks.Distributed); ok {
		return d.Comm().Rank(), d.Comm().Size()
	}
	return 0, 1
}

// Encode writes s to w. For distributed blocks every rank writes its own
// local part.
func Encode(w io.Writer, s *State) error {
	cp := checkpoint{
		Version:     checkpointVersion,
		Fingerprint: blocks.Fingerprint(s.block),
		Real:        s.IsReal(),
	}
	cp.Rank, cp.Ranks = rankOf(s.block)
	if s.IsReal() {
		cp.Amplitudes = s.re
	} else {
		cp.Amplitudes = make([]float64, 0, 2*len(s.cplx))
		for _, z := range s.cplx {
			cp.Amplitudes = append(cp.Amplitudes, real(z), imag(z))
		}
	}

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return statesErrorf("Encode", err)
	}
	if err := msgpack.NewEncoder(enc).Encode(&cp); err != nil {
		enc.Close()
		return statesErrorf("Encode", err)
	}
	if err := enc.Close(); err != nil {
		return statesErrorf("Encode", err)
	}
	return nil
}

// Decode reads a state written by Encode and binds it to block.
//
// Errors: ErrBlockMismatch if the checkpoint belongs to another block or
// another rank layout, ErrCorruptCheckpoint for malformed data.
func Decode(r io.Reader, block blocks.Block) (*State, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, statesErrorf("Decode", err)
	}
	defer dec.Close()

	var cp checkpoint
	if err := msgpack.NewDecoder(dec).Decode(&cp); err != nil {
		return nil, statesErrorf("Decode", fmt.Errorf("%w: %v", ErrCorruptCheckpoint, err))
	}
	if cp.Version != checkpointVersion {
		return nil, statesErrorf("Decode", fmt.Errorf("%w: version %d", ErrCorruptCheckpoint, cp.Version))
	}
	rank, ranks := rankOf(block)
	if cp.Fingerprint != blocks.Fingerprint(block) || cp.Rank != rank || cp.Ranks != ranks {
		return nil, statesErrorf("Decode", ErrBlockMismatch)
	}

	want := block.Size()
	if !cp.Real {
		want *= 2
	}
	if int64(len(cp.Amplitudes)) != want {
		return nil, statesErrorf("Decode", fmt.Errorf("%w: %d amplitudes for block size %d",
			ErrCorruptCheckpoint, len(cp.Amplitudes), block.Size()))
	}
	if cp.Real {
		return &State{block: block, re: cp.Amplitudes}, nil
	}
	s := New(block, false)
	for i := range s.cplx {
		s.cplx[i] = complex(cp.Amplitudes[2*i], cp.Amplitudes[2*i+1])
	}
	return s, nil
}
