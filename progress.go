// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/parososi/piedpiper

package piedpiper

// progressTicker invokes a ProgressFunc at most once per whole percent,
// strictly increasing, tracking the last percent reported so repeated calls
// at the same percent are no-ops.
type progressTicker struct {
	fn   ProgressFunc
	last int
}

func newProgressTicker(fn ProgressFunc) progressTicker {
	return progressTicker{fn: fn, last: -1}
}

// report computes percent = (pos*100)/total and fires fn if it strictly
// increased since the previous report. total == 0 is treated as already done.
func (p *progressTicker) report(pos, total int) {
	if p.fn == nil {
		return
	}

	percent := 100
	if total > 0 {
		percent = (pos * 100) / total
	}

	if percent > p.last {
		p.last = percent
		p.fn(percent)
	}
}

// done reports a final 100% if it has not already been reported.
func (p *progressTicker) done() {
	if p.fn == nil {
		return
	}
	if p.last < 100 {
		p.last = 100
		p.fn(100)
	}
}
