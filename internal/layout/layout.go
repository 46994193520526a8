package layout

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"textab/internal/table"
)

// DefaultName 默认布局。
const DefaultName = "grid"

// Renderer 把填充好的表格块渲染成文本。LayoutWidth 返回分隔符和内边距
// 占用的显示列数，只与列数有关。
type Renderer interface {
	LayoutWidth(ncols int) int
	Render(w *table.Wrapped, widths []int) string
}

// UnknownError 表示布局名不在注册表里。
type UnknownError struct {
	Name        string
	Suggestions []string
}

func (e *UnknownError) Error() string {
	msg := fmt.Sprintf("unknown layout %q", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

var renderers = map[string]Renderer{
	"grid":    &gridRenderer{glyphs: gridASCII},
	"rounded": &gridRenderer{glyphs: gridRounded},
	"heavy":   &gridRenderer{glyphs: gridHeavy},
	"mixed":   &gridRenderer{glyphs: gridMixed},
	"double":  &gridRenderer{glyphs: gridDouble},
	"fancy":   &gridRenderer{glyphs: gridFancy},
	"github":  &githubRenderer{},
	"plain":   &plainRenderer{},
	"simple":  &hlineRenderer{},
	"hline":   &hlineRenderer{},
}

// New 按名字查找布局。找不到时附带模糊匹配的建议。
func New(name string) (Renderer, error) {
	if r, ok := renderers[name]; ok {
		return r, nil
	}
	var suggestions []string
	for _, m := range fuzzy.Find(name, Names()) {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == 3 {
			break
		}
	}
	return nil, &UnknownError{Name: name, Suggestions: suggestions}
}

// Names 返回所有已注册布局名，按字典序。
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// rowHeight 返回一行里最高的单元格行数。Fill 之后所有单元格等高。
func rowHeight(row [][]string) int {
	height := 0
	for _, cell := range row {
		if len(cell) > height {
			height = len(cell)
		}
	}
	return height
}
