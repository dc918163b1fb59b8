// SPDX-License-Identifier: MIT
// Copyright (c) 2026 parososi
// Source: github.com/parososi/piedpiper

package piedpiper

// match is a candidate back-reference: length bytes starting offset bytes
// before pos.
type match struct {
	offset int
	length int
}

// findMatch walks up to chainLimit entries of w's chain for position pos and
// returns the best back-reference usable there, or ok=false if none reaches
// minMatch. Tie-break: the first chain entry to reach a given length wins
// (chains are most-recent-first, so ties favor the smaller offset).
func findMatch(w *windowIndex, pos int) (m match, ok bool) {
	input := w.input
	n := len(input)

	if pos+minMatch > n {
		return match{}, false
	}

	maxLen := maxLookahead
	if n-pos < maxLen {
		maxLen = n - pos
	}

	h := fingerprint(input, pos)
	cand := w.bucket[h]
	if int(cand) == pos {
		// The caller inserts pos before looking it up; start from the entry
		// before it so the walk does not stop on a zero offset.
		cand = w.prev[pos]
	}

	bestLen := 0
	bestOffset := 0

	for steps := 0; cand >= 0 && steps < chainLimit; steps++ {
		q := int(cand)
		offset := pos - q

		// The offset field is 15 bits wide, so maxWindowSize itself is out of range.
		if offset >= maxWindowSize || offset == 0 {
			break
		}

		if input[q+bestLen] == input[pos+bestLen] {
			length := 0
			for length < maxLen && input[q+length] == input[pos+length] {
				length++
			}

			if length > bestLen {
				bestLen = length
				bestOffset = offset

				if length == maxLen {
					break
				}
			}
		}

		cand = w.prev[q]
	}

	if bestLen >= minMatch {
		return match{offset: bestOffset, length: bestLen}, true
	}
	return match{}, false
}
