package layout

import (
	"strings"

	"textab/internal/table"
)

// gridGlyphs 一套网格布局的画线字符。水平线按上、中、下三种横线与
// 各自的接头展开；竖线所有行共用。
type gridGlyphs struct {
	v string
	topL, topFill, topM, topR string
	midL, midFill, midM, midR string
	botL, botFill, botM, botR string
}

var (
	gridASCII = gridGlyphs{
		v: "|",
		topL: "+", topFill: "-", topM: "+", topR: "+",
		midL: "+", midFill: "-", midM: "+", midR: "+",
		botL: "+", botFill: "-", botM: "+", botR: "+",
	}
	gridRounded = gridGlyphs{
		v: "│",
		topL: "╭", topFill: "─", topM: "┬", topR: "╮",
		midL: "├", midFill: "─", midM: "┼", midR: "┤",
		botL: "╰", botFill: "─", botM: "┴", botR: "╯",
	}
	gridHeavy = gridGlyphs{
		v: "┃",
		topL: "┏", topFill: "━", topM: "┳", topR: "┓",
		midL: "┣", midFill: "━", midM: "╋", midR: "┫",
		botL: "┗", botFill: "━", botM: "┻", botR: "┛",
	}
	gridMixed = gridGlyphs{
		v: "│",
		topL: "┍", topFill: "━", topM: "┯", topR: "┑",
		midL: "┝", midFill: "━", midM: "┿", midR: "┥",
		botL: "┕", botFill: "━", botM: "┷", botR: "┙",
	}
	gridDouble = gridGlyphs{
		v: "║",
		topL: "╔", topFill: "═", topM: "╦", topR: "╗",
		midL: "╠", midFill: "═", midM: "╬", midR: "╣",
		botL: "╚", botFill: "═", botM: "╩", botR: "╝",
	}
	gridFancy = gridGlyphs{
		v: "│",
		topL: "╒", topFill: "═", topM: "╤", topR: "╕",
		midL: "├", midFill: "─", midM: "┼", midR: "┤",
		botL: "╘", botFill: "═", botM: "╧", botR: "╛",
	}
)

// gridRenderer 网格布局：内外都有画线，每个单元格左右各留一个空格。
type gridRenderer struct {
	glyphs gridGlyphs
}

// LayoutWidth 每列占 "| " 与 " " 三列，再加最右侧竖线。
func (g *gridRenderer) LayoutWidth(ncols int) int {
	return 3*ncols + 1
}

func (g *gridRenderer) Render(w *table.Wrapped, widths []int) string {
	var b strings.Builder
	gl := g.glyphs
	writeRule(&b, widths, gl.topL, gl.topFill, gl.topM, gl.topR)
	for r := 0; r < w.NRows(); r++ {
		writeGridRow(&b, w.Row(r), gl.v)
		if r < w.NRows()-1 {
			writeRule(&b, widths, gl.midL, gl.midFill, gl.midM, gl.midR)
		}
	}
	writeRule(&b, widths, gl.botL, gl.botFill, gl.botM, gl.botR)
	return b.String()
}

func writeRule(b *strings.Builder, widths []int, left, fill, mid, right string) {
	b.WriteString(left)
	for c, width := range widths {
		if c > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat(fill, width+2))
	}
	b.WriteString(right)
	b.WriteByte('\n')
}

func writeGridRow(b *strings.Builder, row [][]string, v string) {
	height := rowHeight(row)
	for k := 0; k < height; k++ {
		b.WriteString(v)
		for _, cell := range row {
			b.WriteByte(' ')
			b.WriteString(cell[k])
			b.WriteByte(' ')
			b.WriteString(v)
		}
		b.WriteByte('\n')
	}
}

// githubRenderer GitHub 风格：只有竖线和首行之后的一条横线，
// 没有外框上下边。
type githubRenderer struct{}

func (githubRenderer) LayoutWidth(ncols int) int {
	return 3*ncols + 1
}

func (githubRenderer) Render(w *table.Wrapped, widths []int) string {
	var b strings.Builder
	for r := 0; r < w.NRows(); r++ {
		writeGridRow(&b, w.Row(r), "|")
		if r == 0 && w.NRows() > 1 {
			writeRule(&b, widths, "|", "-", "|", "|")
		}
	}
	return b.String()
}
