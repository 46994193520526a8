package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Options 控制换行行为。宽度按终端显示列计算（东亚全角字符占两列）。
type Options struct {
	// Width 每行允许的最大显示宽度。
	Width int
	// BreakLongWords 允许把超过行宽的单词硬切成多段。
	BreakLongWords bool
	// BreakOnHyphens 允许在单词内部的连字符后断行。
	BreakOnHyphens bool
	// SubsequentIndent 第二行起的行首缩进，缩进本身计入行宽。
	SubsequentIndent string
}

// DisplayWidth 返回字符串占用的终端列数。
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Wrap 把 text 按词换行。输入中的换行符视为硬换行；
// 空输入返回单个空行。行数随宽度增加单调不增。
func Wrap(text string, opts Options) []string {
	if opts.Width <= 0 {
		return strings.Split(text, "\n")
	}
	lines := []string{}
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, opts)...)
	}
	if len(lines) == 0 {
		lines = append(lines, "")
	}
	return lines
}

// LineWidths 返回 Wrap 结果中每行的显示宽度。规划器用它做试算，
// 不需要保留行文本。
func LineWidths(text string, opts Options) []int {
	lines := Wrap(text, opts)
	widths := make([]int, len(lines))
	for i, line := range lines {
		widths[i] = DisplayWidth(line)
	}
	return widths
}

// fragment 是贪心布局的最小单元：完整单词，或按连字符切出的词段。
// joined 为真表示它和前一个单元之间不需要空格。
type fragment struct {
	text   string
	width  int
	joined bool
}

func wrapParagraph(para string, opts Options) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	frags := make([]fragment, 0, len(words))
	for _, word := range words {
		if opts.BreakOnHyphens {
			frags = append(frags, splitHyphens(word)...)
		} else {
			frags = append(frags, fragment{text: word, width: DisplayWidth(word)})
		}
	}

	indent := opts.SubsequentIndent
	indentWidth := DisplayWidth(indent)

	lines := []string{}
	var cur strings.Builder
	curWidth := 0
	avail := opts.Width

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		cur.WriteString(indent)
		curWidth = 0
		avail = opts.Width - indentWidth
		if avail < 1 {
			avail = 1
		}
	}

	for _, f := range frags {
		sep := 0
		if curWidth > 0 && !f.joined {
			sep = 1
		}
		if curWidth+sep+f.width <= avail {
			if sep == 1 {
				cur.WriteByte(' ')
			}
			cur.WriteString(f.text)
			curWidth += sep + f.width
			continue
		}
		if curWidth > 0 {
			flush()
		}
		if f.width <= avail {
			cur.WriteString(f.text)
			curWidth = f.width
			continue
		}
		if !opts.BreakLongWords {
			// 超宽词独占一行，由上层决定接受还是报错。
			cur.WriteString(f.text)
			curWidth = f.width
			flush()
			continue
		}
		rest := f.text
		for rest != "" {
			if curWidth > 0 {
				flush()
			}
			var chunk string
			chunk, rest = takeChunk(rest, avail)
			cur.WriteString(chunk)
			curWidth = DisplayWidth(chunk)
		}
	}
	if curWidth > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// splitHyphens 把 foo-bar 切成 "foo-" 和 "bar" 两段，段间可断行。
// 行首或行尾的连字符不算断点。
func splitHyphens(word string) []fragment {
	runes := []rune(word)
	frags := []fragment{}
	start := 0
	for i, r := range runes {
		if r != '-' || i == 0 || i == len(runes)-1 {
			continue
		}
		text := string(runes[start : i+1])
		frags = append(frags, fragment{
			text:   text,
			width:  DisplayWidth(text),
			joined: start > 0,
		})
		start = i + 1
	}
	text := string(runes[start:])
	frags = append(frags, fragment{
		text:   text,
		width:  DisplayWidth(text),
		joined: start > 0,
	})
	return frags
}

// takeChunk 从 word 开头按显示宽度取不超过 width 的一段，
// 至少取一个字符，不会把宽字符切成两半。
func takeChunk(word string, width int) (chunk, rest string) {
	if width < 1 {
		width = 1
	}
	taken := 0
	for i, r := range word {
		rw := runewidth.RuneWidth(r)
		if i > 0 && taken+rw > width {
			return word[:i], word[i:]
		}
		taken += rw
	}
	return word, ""
}
