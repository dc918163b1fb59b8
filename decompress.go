// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// Decompress decompresses a Pied Piper artifact produced by Compress. opts
// may be nil (uses DefaultDecompressOptions).
//
// Returns ErrInvalidArgument for a non-Pied-Piper header, ErrOutputTooSmall
// (use AsOutputTooSmall to recover the required length), ErrMalformed for any
// bitstream violation, or ErrChecksumMismatch.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	n, err := peekUncompressedSize(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, n)
	written, err := DecompressInto(dst, src, opts)
	if err != nil {
		return nil, err
	}
	return dst[:written], nil
}

// DecompressInto decompresses src into dst and returns the number of bytes
// written. dst's capacity (len(dst)) is the declared output capacity.
//
// Returns ErrInvalidArgument if src is shorter than the header or carries the
// wrong magic. Returns ErrOutputTooSmall (use AsOutputTooSmall to recover the
// required length) if dst cannot hold uncompressed_size bytes.
// Decompress never writes past uncompressed_size bytes regardless of input.
func DecompressInto(dst, src []byte, opts *DecompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	n, err := peekUncompressedSize(src)
	if err != nil {
		return 0, err
	}
	if len(dst) < n {
		return 0, &outputTooSmallError{Required: n}
	}

	d := newDecoder(dst, src, opts)
	return d.run(n)
}

// peekUncompressedSize validates the header and returns uncompressed_size.
func peekUncompressedSize(src []byte) (int, error) {
	if len(src) < headerSize {
		return 0, ErrInvalidArgument
	}

	h := parseHeader(src)
	if h.magic != magic {
		return 0, ErrInvalidArgument
	}

	return int(h.uncompressedSize), nil
}
