// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/parososi/piedpiper

package piedpiper

import (
	"bytes"
	"testing"
)

// chainSaturatingInput repeats a 4-byte cycle so that every fingerprint
// bucket in use holds a long chain (one entry every 4 positions). The nearest
// candidate already extends to maxLookahead, so each findMatch walk stops at
// its first candidate; the cost is in match extension and intra-match inserts.
func chainSaturatingInput(n int) []byte {
	cycle := []byte{0x10, 0x20, 0x30, 0x40}
	out := make([]byte, n)
	for i := range out {
		out[i] = cycle[i%len(cycle)]
	}
	return out
}

// incompressibleInput is a linear congruential byte stream: no 3-byte
// sequence should repeat often enough to build long chains, so findMatch
// mostly bails out on the first fingerprint probe.
func incompressibleInput(n int) []byte {
	out := make([]byte, n)
	state := uint32(0x2545F491)
	for i := range out {
		state = state*1664525 + 1013904223
		out[i] = byte(state >> 24)
	}
	return out
}

// matchBoundaryInput is built from blocks just over maxLookahead so the
// encoder repeatedly emits matches clamped to the 258-byte length ceiling.
func matchBoundaryInput(blocks int) []byte {
	block := bytes.Repeat([]byte{0xAB}, maxLookahead+16)
	return bytes.Repeat(block, blocks)
}

func BenchmarkCompress_ChainSaturation(b *testing.B) {
	data := chainSaturatingInput(64 * 1024)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Compress(data, nil); err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
	}
}

func BenchmarkCompress_Incompressible(b *testing.B) {
	data := incompressibleInput(64 * 1024)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Compress(data, nil); err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
	}
}

func BenchmarkCompress_MatchLengthBoundary(b *testing.B) {
	data := matchBoundaryInput(256)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Compress(data, nil); err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
	}
}

// BenchmarkDecompress_SelfOverlapOffsetSweep measures copySelfOverlap's
// byte-by-byte ascending copy at increasing back-reference distances, from a
// 1-byte offset (heaviest self-overlap, run-length style) up to an offset
// near maxWindowSize (no overlap, plain memmove-shaped copy).
func BenchmarkDecompress_SelfOverlapOffsetSweep(b *testing.B) {
	offsets := []int{1, 16, 4096, maxWindowSize - 1}

	for _, offset := range offsets {
		offset := offset
		b.Run(offsetBenchName(offset), func(b *testing.B) {
			data := selfOverlapProbe(offset)
			artifact, err := Compress(data, nil)
			if err != nil {
				b.Fatalf("setup Compress failed for offset=%d: %v", offset, err)
			}

			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := Decompress(artifact, nil); err != nil {
					b.Fatalf("Decompress failed: %v", err)
				}
			}
		})
	}
}

// selfOverlapProbe builds input whose repeats sit exactly offset bytes back:
// offset bytes of pseudo-random filler, then that same filler repeated four
// times, so the encoder emits matches at that offset (each at most
// maxLookahead long).
func selfOverlapProbe(offset int) []byte {
	prefix := incompressibleInput(offset)
	return append(prefix, bytes.Repeat(prefix, 4)...)
}

func offsetBenchName(offset int) string {
	switch {
	case offset == 1:
		return "offset-1"
	case offset < 1024:
		return "offset-small"
	case offset < maxWindowSize/2:
		return "offset-mid"
	default:
		return "offset-max"
	}
}

func BenchmarkRoundTrip_MixedWorkload(b *testing.B) {
	data := append(append(chainSaturatingInput(32*1024), incompressibleInput(16*1024)...),
		matchBoundaryInput(32)...)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		compressed, err := Compress(data, nil)
		if err != nil {
			b.Fatalf("Compress failed: %v", err)
		}
		if _, err := Decompress(compressed, nil); err != nil {
			b.Fatalf("Decompress failed: %v", err)
		}
	}
}
