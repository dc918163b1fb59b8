// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// Compress compresses src and returns a self-describing artifact. opts may be
// nil (uses DefaultCompressOptions). Returns ErrInvalidArgument for an empty
// src.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	dst := make([]byte, outputCapacity(len(src)))
	n, err := CompressInto(dst, src, opts)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. dst's capacity (len(dst)) is the declared output capacity.
//
// Returns ErrInvalidArgument if src is empty. Returns ErrOutputTooSmall (use
// AsOutputTooSmall to recover the required length) if dst cannot hold the
// artifact; dst's contents are unspecified in that case.
func CompressInto(dst, src []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if len(src) == 0 {
		return 0, ErrInvalidArgument
	}

	e := newEncoder(dst, src, opts)
	return e.run()
}

// outputCapacity returns the output buffer size the encoder is sized against:
// inputSize + inputSize/10 + 1024, raised where needed to the all-literal
// worst case (header plus 9 bits per input byte; a 24-bit match token always
// covers at least 3 input bytes), so it is large enough for every input.
func outputCapacity(inputSize int) int {
	c := inputSize + inputSize/10 + 1024
	if worst := headerSize + (inputSize*9+7)/8; worst > c {
		c = worst
	}
	return c
}
