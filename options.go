// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/parososi/piedpiper

package piedpiper

// ProgressFunc receives a percent complete value in [0, 100]. It is invoked
// synchronously on the calling goroutine at strictly increasing values during
// both Compress and Decompress, and is never invoked after an error. It MUST
// NOT call back into the Encoder/Decoder that is driving it.
type ProgressFunc func(percent int)

// CompressOptions configures compression.
type CompressOptions struct {
	// Level is an advisory hint in 1..9, clamped at the edges, written into the
	// header's compression_level byte. It never changes encoder behavior: two
	// artifacts for the same input with different Level values differ only in
	// that header byte.
	Level int
	// Progress, if non-nil, is called after every position advance that crosses
	// a new whole percent of the input.
	Progress ProgressFunc
}

// DefaultCompressOptions returns options for the advisory default level (6).
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: 6}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// Progress, if non-nil, is called after every position advance that crosses
	// a new whole percent of uncompressed_size.
	Progress ProgressFunc
}

// DefaultDecompressOptions returns options with no progress observer.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
