// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

import "sync"

// windowIndex is a hash-chain index keyed by a 3-byte fingerprint, mapping
// each fingerprint to a chain of prior positions within the sliding window.
// It is ephemeral: created at encode start, mutated monotonically, and
// discarded at encode end. It never appears in the artifact.
type windowIndex struct {
	input  []byte
	bucket [hashSize]int32 // head position for fingerprint h, or -1 ("none")
	prev   []int32         // prev[p]: previous position sharing p's fingerprint, or -1
}

// windowIndexPool recycles windowIndex backing arrays across Compress calls.
// Pooling is an allocation-reuse optimization only: every acquire resets the
// buckets, and no state is shared between concurrent live encodes.
var windowIndexPool = sync.Pool{
	New: func() any {
		return &windowIndex{}
	},
}

// acquireWindowIndex returns a windowIndex reset for input, growing prev if
// the pooled instance's backing array is too small.
func acquireWindowIndex(input []byte) *windowIndex {
	w := windowIndexPool.Get().(*windowIndex)
	w.input = input

	for i := range w.bucket {
		w.bucket[i] = -1
	}

	if cap(w.prev) < len(input) {
		w.prev = make([]int32, len(input))
	} else {
		w.prev = w.prev[:len(input)]
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	return w
}

// releaseWindowIndex returns w to the pool. w must not be used afterward.
func releaseWindowIndex(w *windowIndex) {
	if w == nil {
		return
	}
	w.input = nil
	windowIndexPool.Put(w)
}

// fingerprint computes the 15-bit hash of input[p:p+3]. Only defined when
// p+3 <= len(input).
func fingerprint(input []byte, p int) uint32 {
	b0, b1, b2 := uint32(input[p]), uint32(input[p+1]), uint32(input[p+2])
	return ((b0 << 10) ^ (b1 << 5) ^ b2) & hashMask
}

// insert links position p into the chain for its fingerprint. Requires
// p+3 <= len(w.input); callers check that bound before calling.
func (w *windowIndex) insert(p int) {
	h := fingerprint(w.input, p)
	w.prev[p] = w.bucket[h]
	w.bucket[h] = int32(p)
}
