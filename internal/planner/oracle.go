package planner

import "textab/internal/wrap"

// oracle reports, for one column, how many lines each cell takes when
// wrapped at a probed width. Results are cached per width; the DP probes
// the same widths from many cells of the same column step.
type oracle struct {
	column []string
	opts   wrap.Options
	cache  map[int]oracleEntry
}

type oracleEntry struct {
	counts lineCounts
	// over is set when some wrapped line exceeded the probed width.
	over bool
}

func newOracle(column []string, opts wrap.Options) *oracle {
	return &oracle{column: column, opts: opts, cache: make(map[int]oracleEntry)}
}

// lines returns the per-row line counts at width w. For a planner-chosen
// width an over-width line makes the whole column infeasible; a user-fixed
// width accepts over-width lines and counts them normally. The returned
// slice is shared with the cache and must not be mutated.
func (o *oracle) lines(w int, userFixed bool) lineCounts {
	entry, ok := o.cache[w]
	if !ok {
		entry = o.measure(w)
		o.cache[w] = entry
	}
	if entry.over && !userFixed {
		return newInf(len(o.column))
	}
	return entry.counts
}

func (o *oracle) measure(w int) oracleEntry {
	opts := o.opts
	opts.Width = w
	entry := oracleEntry{counts: make(lineCounts, len(o.column))}
	for r, cell := range o.column {
		lineWidths := wrap.LineWidths(cell, opts)
		entry.counts[r] = len(lineWidths)
		for _, lw := range lineWidths {
			if lw > w {
				entry.over = true
				break
			}
		}
	}
	return entry
}
