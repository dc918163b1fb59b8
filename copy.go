// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// copySelfOverlap copies length bytes from dst[outPos-offset:] to
// dst[outPos:], one byte at a time in ascending order. This is required (not
// just a simplicity choice): when offset < length the source range overlaps
// the destination range, and a newly-written byte must become readable
// source for a later position in the same copy so that offset=1 reproduces a
// run of offset's byte repeated length times. Callers must have already
// validated offset and length against outPos and the output bound.
func copySelfOverlap(dst []byte, outPos, offset, length int) {
	srcPos := outPos - offset
	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[srcPos+i]
	}
}
