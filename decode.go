// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// decoder reconstructs output from a Pied Piper artifact, copying
// self-overlapping back-references from its own output buffer. One decoder
// instance serves exactly one Decompress/DecompressInto call.
type decoder struct {
	dst    []byte
	opts   *DecompressOptions
	header header
	br     bitReader
}

func newDecoder(dst, src []byte, opts *DecompressOptions) *decoder {
	return &decoder{
		dst:    dst,
		opts:   opts,
		header: parseHeader(src),
		br:     newBitReader(src[headerSize:]),
	}
}

// run consumes tokens until uncompressedSize bytes have been reconstructed,
// then verifies the checksum against the header. It never writes past
// uncompressedSize bytes regardless of the input bitstream.
func (d *decoder) run(uncompressedSize int) (int, error) {
	ticker := newProgressTicker(d.opts.Progress)
	outPos := 0

	for outPos < uncompressedSize {
		flag, err := d.br.read(1)
		if err != nil {
			return 0, ErrMalformed
		}

		if flag == 1 {
			rawOffset, err := d.br.read(15)
			if err != nil {
				return 0, ErrMalformed
			}
			lenMinusMin, err := d.br.read(8)
			if err != nil {
				return 0, ErrMalformed
			}

			offset := int(rawOffset)
			length := int(lenMinusMin) + minMatch

			if offset < 1 || offset > outPos {
				return 0, ErrMalformed
			}
			if outPos+length > uncompressedSize {
				return 0, ErrMalformed
			}

			copySelfOverlap(d.dst, outPos, offset, length)
			outPos += length
		} else {
			lit, err := d.br.read(8)
			if err != nil {
				return 0, ErrMalformed
			}
			d.dst[outPos] = byte(lit)
			outPos++
		}

		ticker.report(outPos, uncompressedSize)
	}
	ticker.done()

	if checksum16(d.dst[:uncompressedSize]) != d.header.checksum {
		return 0, ErrChecksumMismatch
	}

	return outPos, nil
}
