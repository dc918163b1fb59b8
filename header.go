// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

import "encoding/binary"

// header is the fixed 16-octet container header, little-endian on the wire.
// See format_constants.go for field offsets.
type header struct {
	magic            uint16
	versionMajor     uint8
	versionMinor     uint8
	uncompressedSize uint32
	compressedSize   uint32
	compressionLevel uint8
	fileType         uint8
	checksum         uint16
}

// putHeader writes h into dst[:headerSize]. dst must have length >= headerSize.
func putHeader(dst []byte, h header) {
	binary.LittleEndian.PutUint16(dst[offMagic:], h.magic)
	dst[offVersionMajor] = h.versionMajor
	dst[offVersionMinor] = h.versionMinor
	binary.LittleEndian.PutUint32(dst[offUncompressedSize:], h.uncompressedSize)
	binary.LittleEndian.PutUint32(dst[offCompressedSize:], h.compressedSize)
	dst[offCompressionLevel] = h.compressionLevel
	dst[offFileType] = h.fileType
	binary.LittleEndian.PutUint16(dst[offChecksum:], h.checksum)
}

// parseHeader reads a header from src[:headerSize]. Caller must ensure
// len(src) >= headerSize.
func parseHeader(src []byte) header {
	return header{
		magic:            binary.LittleEndian.Uint16(src[offMagic:]),
		versionMajor:     src[offVersionMajor],
		versionMinor:     src[offVersionMinor],
		uncompressedSize: binary.LittleEndian.Uint32(src[offUncompressedSize:]),
		compressedSize:   binary.LittleEndian.Uint32(src[offCompressedSize:]),
		compressionLevel: src[offCompressionLevel],
		fileType:         src[offFileType],
		checksum:         binary.LittleEndian.Uint16(src[offChecksum:]),
	}
}

// checksum16 sums src modulo 2^16. This is a corruption-detection checksum,
// not a cryptographic hash.
func checksum16(src []byte) uint16 {
	var sum uint32
	for _, b := range src {
		sum += uint32(b)
	}
	return uint16(sum)
}

// detectFileType returns an advisory content-type hint for data, matching the
// signature/text heuristic of the original C sniffer. The result is recorded
// in the header's file_type byte for wire compatibility only; Decompress
// never consults it.
func detectFileType(data []byte) uint8 {
	if len(data) < 4 {
		return fileTypeUnknown
	}

	switch {
	case data[0] == 0x89 && string(data[1:4]) == "PNG":
		return fileTypePNG
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return fileTypeJPEG
	case string(data[:4]) == "GIF8":
		return fileTypeGIF
	case data[0] == 0x50 && data[1] == 0x4B && data[2] == 0x03 && data[3] == 0x04:
		return fileTypeZIP
	case string(data[:4]) == "%PDF":
		return fileTypePDF
	}

	sample := data
	if len(sample) > 1024 {
		sample = sample[:1024]
	}

	textChars := 0
	for _, b := range sample {
		if (b >= 32 && b <= 126) || b == '\n' || b == '\r' || b == '\t' {
			textChars++
		}
	}
	if float64(textChars) > float64(len(sample))*0.9 {
		return fileTypeText
	}

	return fileTypeUnknown
}
