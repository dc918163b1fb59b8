// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

import "io"

// DecompressFromReader reads the full stream then calls Decompress. It has no
// decoding logic of its own — the format is single-frame, so there is
// nothing to decode incrementally (see Non-goals: no chunked/streaming I/O).
func DecompressFromReader(r io.Reader, opts *DecompressOptions) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decompress(src, opts)
}
