// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// Wire-format constants: header layout, magic, and LZ77 parameters.

// magic identifies the Pied Piper container format ("PP" packed little-endian).
const magic = 0x5050

const (
	versionMajor = 1
	versionMinor = 1
)

// headerSize is the fixed on-wire size of the container header in bytes.
const headerSize = 16

// Header field byte offsets, used when backpatching compressed_size and checksum.
const (
	offMagic            = 0
	offVersionMajor     = 2
	offVersionMinor     = 3
	offUncompressedSize = 4
	offCompressedSize   = 8
	offCompressionLevel = 12
	offFileType         = 13
	offChecksum         = 14
)

// LZ77 parameters shared by the match finder, encoder, and decoder.
const (
	minMatch      = 3
	maxLookahead  = 258
	maxWindowSize = 32768
	chainLimit    = 128

	// hashBits is the width of the fingerprint space used to index the window.
	hashBits = 15
	hashSize = 1 << hashBits
	hashMask = hashSize - 1
)

// File-type hint values written into the header's advisory file_type byte.
// Readers MUST ignore this field; it is never consulted by Decompress.
const (
	fileTypeUnknown = 0
	fileTypePNG     = 1
	fileTypeJPEG    = 2
	fileTypeGIF     = 3
	fileTypeZIP     = 4
	fileTypePDF     = 5
	fileTypeText    = 10
)
