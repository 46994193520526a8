package layout

import (
	"strings"

	"textab/internal/table"
)

// hlineRenderer 横线布局（simple）：列间两个空格，表格上下用 ===
// 双线，行间用 --- 单线，没有竖线。
type hlineRenderer struct{}

// LayoutWidth 列间各两个空格。
func (hlineRenderer) LayoutWidth(ncols int) int {
	return 2 * (ncols - 1)
}

func (hlineRenderer) Render(w *table.Wrapped, widths []int) string {
	var b strings.Builder
	writeHRule(&b, widths, "=")
	for r := 0; r < w.NRows(); r++ {
		writePlainRow(&b, w.Row(r))
		if r < w.NRows()-1 {
			writeHRule(&b, widths, "-")
		}
	}
	writeHRule(&b, widths, "=")
	return b.String()
}

func writeHRule(b *strings.Builder, widths []int, fill string) {
	for c, width := range widths {
		if c > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat(fill, width))
	}
	b.WriteByte('\n')
}

func writePlainRow(b *strings.Builder, row [][]string) {
	height := rowHeight(row)
	for k := 0; k < height; k++ {
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell[k])
		}
		b.WriteByte('\n')
	}
}

// plainRenderer 无装饰布局：只有列间两个空格。
type plainRenderer struct{}

func (plainRenderer) LayoutWidth(ncols int) int {
	return 2 * (ncols - 1)
}

func (plainRenderer) Render(w *table.Wrapped, widths []int) string {
	var b strings.Builder
	for r := 0; r < w.NRows(); r++ {
		writePlainRow(&b, w.Row(r))
	}
	return b.String()
}
