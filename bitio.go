// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// bitWriter packs variable-width fields (1..25 bits) into dst, LSB-first.
// All state is instance-local: two bitWriters never share an accumulator,
// unlike the original C source's function-local statics (see DESIGN.md).
type bitWriter struct {
	dst  []byte
	pos  int
	acc  uint32
	bits uint
}

func newBitWriter(dst []byte) bitWriter {
	return bitWriter{dst: dst}
}

// append packs the low n bits of value into the stream. 0 <= n <= 25 and
// value must fit in n bits. Returns ErrOutputTooSmall if dst's capacity is
// exhausted.
func (w *bitWriter) append(value uint32, n uint) error {
	w.acc |= value << w.bits
	w.bits += n

	for w.bits >= 8 {
		if w.pos >= len(w.dst) {
			return &outputTooSmallError{Required: w.pos + 1}
		}
		w.dst[w.pos] = byte(w.acc)
		w.pos++
		w.acc >>= 8
		w.bits -= 8
	}

	return nil
}

// finish flushes any remaining buffered bits as one zero-padded byte and
// returns the total number of bytes written.
func (w *bitWriter) finish() (int, error) {
	if w.bits > 0 {
		if w.pos >= len(w.dst) {
			return 0, &outputTooSmallError{Required: w.pos + 1}
		}
		w.dst[w.pos] = byte(w.acc)
		w.pos++
		w.acc = 0
		w.bits = 0
	}
	return w.pos, nil
}

// bitReader unpacks fields written by bitWriter, LSB-first, from src.
type bitReader struct {
	src  []byte
	pos  int
	acc  uint32
	bits uint
}

func newBitReader(src []byte) bitReader {
	return bitReader{src: src}
}

// read returns the next n bits (0 <= n <= 25) as an unsigned integer,
// refilling the accumulator one byte at a time. Returns ErrMalformed if the
// stream is exhausted before n bits can be produced.
func (r *bitReader) read(n uint) (uint32, error) {
	for r.bits < n {
		if r.pos >= len(r.src) {
			return 0, ErrMalformed
		}
		r.acc |= uint32(r.src[r.pos]) << r.bits
		r.pos++
		r.bits += 8
	}

	mask := uint32(1)<<n - 1
	value := r.acc & mask
	r.acc >>= n
	r.bits -= n

	return value, nil
}
