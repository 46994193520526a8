package planner

import (
	"errors"
	"fmt"
	"math"

	"textab/internal/table"
	"textab/internal/wrap"
)

// Unset marks a column whose width the planner must decide.
const Unset = 0

// MinColumnWidth is the narrowest width the planner will assign.
const MinColumnWidth = 2

// ErrInfeasible reports that no width assignment lets every undecided
// column wrap without over-width lines.
var ErrInfeasible = errors.New("some columns are not wide enough")

// TotalWidthError reports a table width too small to hold the fixed
// columns, the layout separators, and a minimal width per undecided column.
type TotalWidthError struct {
	Total int
}

func (e *TotalWidthError) Error() string {
	return fmt.Sprintf("table width %d is not large enough for the columns and table layout", e.Total)
}

// Layout reports the display width consumed by a table layout, as a
// function of the column count only.
type Layout interface {
	LayoutWidth(ncols int) int
}

// CompleteWidths decides the Unset entries of userWidths so that wrapping
// the table at the resulting widths takes the fewest output lines, subject
// to all columns plus layout fitting within totalWidth. Fixed entries are
// kept as given; when no entry is Unset, totalWidth is ignored.
func CompleteWidths(userWidths []int, totalWidth int, t *table.Table, layout Layout, opts wrap.Options) ([]int, error) {
	return completeWidths(userWidths, totalWidth, t, layout, opts, stepBisect)
}

type stepFunc func(o *oracle, nrows, w int, memo []lineCounts) (lineCounts, int)

func completeWidths(userWidths []int, totalWidth int, t *table.Table, layout Layout, opts wrap.Options, step stepFunc) ([]int, error) {
	ncols := t.NCols()
	nrows := t.NRows()
	if len(userWidths) != ncols {
		return nil, fmt.Errorf("got %d widths for %d columns", len(userWidths), ncols)
	}

	var unset []int
	sumFixed := 0
	for j, uw := range userWidths {
		if uw == Unset {
			unset = append(unset, j)
		} else {
			sumFixed += uw
		}
	}
	if len(unset) == 0 {
		out := make([]int, ncols)
		copy(out, userWidths)
		return out, nil
	}

	layoutWidth := layout.LayoutWidth(ncols)
	if totalWidth < sumFixed+layoutWidth+MinColumnWidth*len(unset) {
		return nil, &TotalWidthError{Total: totalWidth}
	}
	budget := totalWidth - sumFixed - layoutWidth

	// Rows never line up worse than the fixed columns force them to.
	base := newZero(nrows)
	for j, uw := range userWidths {
		if uw != Unset {
			base.maxWith(newOracle(t.Column(j), opts).lines(uw, true))
		}
	}

	// memo[w] holds dp(w, k-1); dp(_, k) depends on nothing older, so two
	// generations of budget+1 vectors suffice. decisions is filled step
	// by step and walked backwards at the end.
	memo := make([]lineCounts, budget+1)
	decisions := make([]int, 0, len(unset)*(budget+1))

	// The first undecided column absorbs the whole leftover width: handing
	// it everything the later columns do not claim never costs lines.
	first := newOracle(t.Column(unset[0]), opts)
	for w := 0; w <= budget; w++ {
		if w < MinColumnWidth {
			memo[w] = newInf(nrows)
			decisions = append(decisions, 0)
			continue
		}
		memo[w] = combine(base, first.lines(w, false))
		decisions = append(decisions, w)
	}

	for _, j := range unset[1:] {
		o := newOracle(t.Column(j), opts)
		next := make([]lineCounts, budget+1)
		for w := 0; w <= budget; w++ {
			dp, dec := step(o, nrows, w, memo)
			next[w] = dp
			decisions = append(decisions, dec)
		}
		memo = next
	}

	if memo[budget].isInf() {
		return nil, ErrInfeasible
	}

	chosen := make([]int, len(unset))
	w := budget
	for n := len(unset) - 1; n >= 0; n-- {
		dec := decisions[n*(budget+1)+w]
		chosen[n] = dec
		w -= dec
	}

	out := make([]int, ncols)
	copy(out, userWidths)
	for i, j := range unset {
		out[j] = chosen[i]
	}
	return out, nil
}

// stepBrute picks the best width for one column by trying every feasible
// candidate. Ties go to the smallest width. Reference rule; stepBisect must
// match it decision for decision.
func stepBrute(o *oracle, nrows, w int, memo []lineCounts) (lineCounts, int) {
	var best lineCounts
	bestI := 0
	for i := MinColumnWidth; i <= w; i++ {
		prev := memo[w-i]
		var cand lineCounts
		if prev.isInf() {
			cand = newInf(nrows)
		} else {
			cand = combine(prev, o.lines(i, false))
		}
		if best == nil || cand.total() < best.total() {
			best = cand
			bestI = i
		}
	}
	if best == nil {
		return newInf(nrows), 0
	}
	return best, bestI
}

// stepBisect computes the same decision as stepBrute in roughly
// O(log w) oracle probes. The objective g(i) = Σ_r max(prev_r(w-i), nl_r(i))
// is bounded below by L(i) = max(Σ prev(w-i), Σ nl(i)); the left sum is
// non-decreasing in i and the right sum non-increasing, so L is valley
// shaped. Bisect to the valley, then widen left while L stays at or below
// the best true objective seen and right while L stays strictly below it;
// outside that span g ≥ L rules out a better (or, on the right, a tying
// smaller) width.
func stepBisect(o *oracle, nrows, w int, memo []lineCounts) (lineCounts, int) {
	if w < MinColumnWidth {
		return newInf(nrows), 0
	}
	lo, hi := MinColumnWidth, w
	for lo < hi {
		i := lo + (hi-lo+1)/2
		prev := memo[w-i]
		if prev.isInf() {
			hi = i - 1
			continue
		}
		nl := o.lines(i, false)
		if nl.isInf() || prev.total() <= nl.total() {
			lo = i
		} else {
			hi = i - 1
		}
	}

	cand, ok := pickCandidate(o, w, lo, memo)
	if !ok {
		return newInf(nrows), cand
	}

	best := combine(memo[w-cand], o.lines(cand, false))
	bestTotal := best.total()
	bestI := cand

	lowerBound := func(i int) int {
		prev := memo[w-i]
		if prev.isInf() {
			return inf
		}
		nl := o.lines(i, false)
		if nl.isInf() {
			return inf
		}
		return max(prev.total(), nl.total())
	}

	// Left of the valley L only grows, so stop once it exceeds the best;
	// equal lower bounds must still be probed since a tie at a smaller
	// width wins.
	for i := cand - 1; i >= MinColumnWidth; i-- {
		lb := lowerBound(i)
		if lb > bestTotal {
			break
		}
		g := combine(memo[w-i], o.lines(i, false))
		if gt := g.total(); gt <= bestTotal {
			best = g
			bestTotal = gt
			bestI = i
		}
	}
	// Right of the valley a tie cannot win, so equality already stops.
	for i := cand + 1; i <= w; i++ {
		lb := lowerBound(i)
		if lb >= bestTotal {
			break
		}
		g := combine(memo[w-i], o.lines(i, false))
		if gt := g.total(); gt < bestTotal {
			best = g
			bestTotal = gt
			bestI = i
		}
	}
	return best, bestI
}

// pickCandidate resolves the bisection endpoint into a finite starting
// point at lo or lo+1. ok=false means the whole cell is infeasible.
func pickCandidate(o *oracle, w, lo int, memo []lineCounts) (int, bool) {
	prev := memo[w-lo]
	if prev.isInf() {
		return lo, false
	}
	nl := o.lines(lo, false)
	if nl.isInf() {
		if lo == w {
			return lo, false
		}
		if memo[w-(lo+1)].isInf() || o.lines(lo+1, false).isInf() {
			return lo + 1, false
		}
		return lo + 1, true
	}
	if lo == w || memo[w-(lo+1)].isInf() {
		return lo, true
	}
	next := o.lines(lo+1, false)
	loObj := max(prev.total(), nl.total())
	nextObj := max(memo[w-(lo+1)].total(), next.total())
	if nextObj < loObj {
		return lo + 1, true
	}
	return lo, true
}

const inf = math.MaxInt

// lineCounts is the wrapped line count of each row's cell in one column.
// An entry of inf marks a row that cannot wrap within the probed width.
type lineCounts []int

func newInf(nrows int) lineCounts {
	lc := make(lineCounts, nrows)
	for i := range lc {
		lc[i] = inf
	}
	return lc
}

func newZero(nrows int) lineCounts {
	return make(lineCounts, nrows)
}

func (lc lineCounts) isInf() bool {
	for _, x := range lc {
		if x == inf {
			return true
		}
	}
	return false
}

func (lc lineCounts) maxWith(other lineCounts) {
	for i, x := range other {
		if x > lc[i] {
			lc[i] = x
		}
	}
}

func (lc lineCounts) total() int {
	sum := 0
	for _, x := range lc {
		if x == inf {
			return inf
		}
		sum += x
	}
	return sum
}

// combine returns the element-wise max of a and b in a fresh slice; a and
// b stay shared with the memo and oracle cache.
func combine(a, b lineCounts) lineCounts {
	out := make(lineCounts, len(a))
	copy(out, a)
	out.maxWith(b)
	return out
}
