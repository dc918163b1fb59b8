// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

/*
Package piedpiper implements the Pied Piper container format: a single-pass
LZ77 dictionary coder over a bounded hash-chain index, with a fixed 16-byte
header and an LSB-first bit-packed token stream.

Every produced artifact starts with the magic bytes "PP" (0x5050), carries
its own uncompressed size, compressed size, and an additive checksum, and is
self-describing enough for Decompress to reconstruct the original exactly.

# Compress

Options may be nil (default advisory level 6):

	out, err := piedpiper.Compress(data, nil)
	out, err := piedpiper.Compress(data, &piedpiper.CompressOptions{Level: 9})

Compress allocates its own output buffer. To compress into a caller-owned
buffer, use CompressInto; it reports ErrOutputTooSmall (see AsOutputTooSmall)
if the buffer is too small.

# Decompress

	out, err := piedpiper.Decompress(compressed, nil)

Decompress reads uncompressed_size from the header itself, so no expected
length needs to be supplied by the caller. From an io.Reader:

	out, err := piedpiper.DecompressFromReader(r, nil)

# Progress

Both directions accept an optional ProgressFunc via CompressOptions.Progress
/ DecompressOptions.Progress, invoked at strictly increasing percent values.
*/
package piedpiper
