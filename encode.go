// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// clampLevel bounds an advisory compression level to 1..9.
func clampLevel(level int) uint8 {
	if level < 1 {
		level = 1
	}
	if level > 9 {
		level = 9
	}
	return uint8(level)
}

// encoder orchestrates the windowIndex and bitWriter to turn src into a
// Pied Piper artifact written into dst. One encoder instance serves exactly
// one Compress/CompressInto call; it holds no state that survives or is
// shared across calls.
type encoder struct {
	dst  []byte
	src  []byte
	opts *CompressOptions
	bw   bitWriter
}

func newEncoder(dst, src []byte, opts *CompressOptions) *encoder {
	return &encoder{dst: dst, src: src, opts: opts}
}

// run performs the five steps of §4.5: provisional header, windowIndex
// initialization, the literal/match token loop, bitWriter finish, and the
// checksum/compressed_size backpatch. It returns the total artifact length.
func (e *encoder) run() (int, error) {
	if len(e.dst) < headerSize {
		return 0, &outputTooSmallError{Required: outputCapacity(len(e.src))}
	}

	h := header{
		magic:            magic,
		versionMajor:     versionMajor,
		versionMinor:     versionMinor,
		uncompressedSize: uint32(len(e.src)),
		compressionLevel: clampLevel(e.opts.Level),
		fileType:         detectFileType(e.src),
	}
	putHeader(e.dst, h)

	e.bw = newBitWriter(e.dst[headerSize:])

	w := acquireWindowIndex(e.src)
	defer releaseWindowIndex(w)

	ticker := newProgressTicker(e.opts.Progress)
	n := len(e.src)

	pos := 0
	for pos < n {
		if pos+minMatch <= n {
			w.insert(pos)
		}

		m, ok := findMatch(w, pos)
		if ok {
			if err := e.emitMatch(m); err != nil {
				return 0, e.tooSmall(err)
			}

			for i := 1; i < m.length && pos+i+minMatch <= n; i++ {
				w.insert(pos + i)
			}

			pos += m.length
		} else {
			if err := e.emitLiteral(e.src[pos]); err != nil {
				return 0, e.tooSmall(err)
			}
			pos++
		}

		ticker.report(pos, n)
	}
	ticker.done()

	bodyLen, err := e.bw.finish()
	if err != nil {
		return 0, e.tooSmall(err)
	}

	total := headerSize + bodyLen
	h.compressedSize = uint32(total)
	h.checksum = checksum16(e.src)
	putHeader(e.dst, h)

	return total, nil
}

// tooSmall normalizes an output-capacity error from the bitWriter into the
// guaranteed-sufficient required size (outputCapacity), so callers retrying
// with that size always succeed.
func (e *encoder) tooSmall(err error) error {
	if _, ok := AsOutputTooSmall(err); ok {
		return &outputTooSmallError{Required: outputCapacity(len(e.src))}
	}
	return err
}

// emitLiteral writes a literal token: flag bit 0 followed by the 8-bit value.
func (e *encoder) emitLiteral(b byte) error {
	if err := e.bw.append(0, 1); err != nil {
		return err
	}
	return e.bw.append(uint32(b), 8)
}

// emitMatch writes a match token: flag bit 1, 15-bit offset, 8-bit
// length_minus_min.
func (e *encoder) emitMatch(m match) error {
	if err := e.bw.append(1, 1); err != nil {
		return err
	}
	if err := e.bw.append(uint32(m.offset), 15); err != nil {
		return err
	}
	return e.bw.append(uint32(m.length-minMatch), 8)
}
