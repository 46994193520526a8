package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"textab/internal/planner"
)

type stringSlice []string

func (s *stringSlice) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSlice) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// widthsValue 解析 -W 的宽度列表：逗号分隔，每项是正整数或占位符 `-`。
type widthsValue []int

func (w *widthsValue) String() string {
	parts := make([]string, len(*w))
	for i, v := range *w {
		if v == planner.Unset {
			parts[i] = "-"
		} else {
			parts[i] = strconv.Itoa(v)
		}
	}
	return strings.Join(parts, ",")
}

func (w *widthsValue) Set(v string) error {
	var parsed []int
	for _, item := range strings.Split(v, ",") {
		item = strings.TrimSpace(item)
		if item == "-" {
			parsed = append(parsed, planner.Unset)
			continue
		}
		n, err := strconv.Atoi(item)
		if err != nil || n <= 0 {
			return fmt.Errorf("width %q is not a positive integer or -", item)
		}
		parsed = append(parsed, n)
	}
	*w = parsed
	return nil
}

type cliArgs struct {
	widths       widthsValue
	tableWidth   int
	layoutName   string
	strict       bool
	delimiter    string
	breakLong    bool
	noBreakLong  bool
	escape       bool
	overrides    stringSlice
}

func newFlagSet(name string) (*flag.FlagSet, *cliArgs) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cli := &cliArgs{}
	fs.Var(&cli.widths, "W", "Comma-separated column widths, `-` leaves a column for the planner")
	fs.Var(&cli.widths, "widths", "Alias of -W")
	fs.IntVar(&cli.tableWidth, "T", 0, "Total table display width, defaults to the terminal width")
	fs.IntVar(&cli.tableWidth, "table-width", 0, "Alias of -T")
	fs.StringVar(&cli.layoutName, "L", "", "Table layout name")
	fs.StringVar(&cli.layoutName, "layout", "", "Alias of -L")
	fs.BoolVar(&cli.strict, "S", false, "Treat over-width lines as an error")
	fs.BoolVar(&cli.strict, "strict", false, "Alias of -S")
	fs.StringVar(&cli.delimiter, "d", "", "Single-character field delimiter, default TAB")
	fs.StringVar(&cli.delimiter, "delimiter", "", "Alias of -d")
	fs.BoolVar(&cli.breakLong, "b", false, "Break words longer than their column width")
	fs.BoolVar(&cli.breakLong, "break-long-words", false, "Alias of -b")
	fs.BoolVar(&cli.noBreakLong, "B", false, "Never break long words (overrides -b)")
	fs.BoolVar(&cli.escape, "e", false, "Expand echo -e style backslash escapes in the input")
	fs.BoolVar(&cli.escape, "escape", false, "Alias of -e")
	fs.Var(&cli.overrides, "c", "Override config value key=value (repeatable)")
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [flags] [FILE]\n\n", name)
		fmt.Fprintf(out, "Format delimited text into a fixed-width table, wrapping long cells.\n")
		fmt.Fprintf(out, "FILE defaults to standard input; `-` also means standard input.\n\n")
		fs.PrintDefaults()
	}
	return fs, cli
}

// visited 返回本次命令行里显式出现过的 flag 名集合。
func visited(fs *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}
