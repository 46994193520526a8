package table

import (
	"strings"

	"textab/internal/wrap"
)

// Wrapped is a Table whose cells have been word-wrapped into lines.
type Wrapped struct {
	cells [][]string
	nrows int
}

// WrapTable wraps every cell of t at its column width.
func WrapTable(t *Table, widths []int, opts wrap.Options) *Wrapped {
	ncols := t.NCols()
	cells := make([][]string, 0, t.NRows()*ncols)
	for r := 0; r < t.NRows(); r++ {
		for c := 0; c < ncols; c++ {
			opts.Width = widths[c]
			cells = append(cells, wrap.Wrap(t.Cell(r, c), opts))
		}
	}
	return &Wrapped{cells: cells, nrows: t.NRows()}
}

// NRows reports the number of rows.
func (w *Wrapped) NRows() int {
	return w.nrows
}

// NCols reports the number of columns.
func (w *Wrapped) NCols() int {
	return len(w.cells) / w.nrows
}

// Cell returns the wrapped lines of the cell at (row, col).
func (w *Wrapped) Cell(row, col int) []string {
	return w.cells[row*w.NCols()+col]
}

// Row returns the wrapped cells of one row.
func (w *Wrapped) Row(row int) [][]string {
	ncols := w.NCols()
	return w.cells[row*ncols : (row+1)*ncols]
}

// Validate reports the first cell holding a line wider than its column.
func (w *Wrapped) Validate(widths []int) error {
	for r := 0; r < w.nrows; r++ {
		for c, width := range widths {
			for _, line := range w.Cell(r, c) {
				if wrap.DisplayWidth(line) > width {
					return &OverWidthError{Row: r, Col: c}
				}
			}
		}
	}
	return nil
}

// Fill pads every cell to a rectangular block: each line is padded with
// trailing spaces to the column width, and short cells gain blank lines up
// to the tallest cell of their row. Lines already wider than the column are
// left untouched.
func (w *Wrapped) Fill(widths []int) {
	for r := 0; r < w.nrows; r++ {
		row := w.Row(r)
		height := 0
		for _, cell := range row {
			if len(cell) > height {
				height = len(cell)
			}
		}
		for c, cell := range row {
			width := widths[c]
			for i, line := range cell {
				if pad := width - wrap.DisplayWidth(line); pad > 0 {
					cell[i] = line + strings.Repeat(" ", pad)
				}
			}
			for len(cell) < height {
				cell = append(cell, strings.Repeat(" ", width))
			}
			row[c] = cell
		}
	}
}
