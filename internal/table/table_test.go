package table

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"textab/internal/wrap"
)

func TestRead_PadsShortRows(t *testing.T) {
	input := "foo\tbar\nfoo2\tbar2\tbaz\nfoo3\n\n"
	tab, err := Read(strings.NewReader(input), DefaultReadOptions())
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.NRows() != 4 || tab.NCols() != 3 {
		t.Fatalf("table is %dx%d, want 4x3", tab.NRows(), tab.NCols())
	}
	want := [][]string{
		{"foo", "bar", ""},
		{"foo2", "bar2", "baz"},
		{"foo3", "", ""},
		{"", "", ""},
	}
	for r, row := range want {
		if !slices.Equal(tab.Row(r), row) {
			t.Fatalf("Row(%d) = %v, want %v", r, tab.Row(r), row)
		}
	}
}

func TestRead_TrailingCRAndDelimiter(t *testing.T) {
	input := "a,b\r\nc,d\r\n"
	tab, err := Read(strings.NewReader(input), ReadOptions{Delimiter: ','})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tab.NCols() != 2 {
		t.Fatalf("NCols = %d, want 2", tab.NCols())
	}
	if got := tab.Cell(0, 1); got != "b" {
		t.Fatalf("Cell(0,1) = %q, want %q", got, "b")
	}
}

func TestRead_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n\n"} {
		_, err := Read(strings.NewReader(input), DefaultReadOptions())
		if !errors.Is(err, ErrEmptyTable) {
			t.Fatalf("Read(%q) err = %v, want ErrEmptyTable", input, err)
		}
	}
}

func TestRead_EscapeSequences(t *testing.T) {
	input := "foo\\xf0\\x9f\\x98\\x82\tbar\\nbaz\n"
	tab, err := Read(strings.NewReader(input), ReadOptions{Delimiter: '\t', Escape: true})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := tab.Cell(0, 0); got != "foo😂" {
		t.Fatalf("Cell(0,0) = %q, want %q", got, "foo😂")
	}
	if got := tab.Cell(0, 1); got != "bar\nbaz" {
		t.Fatalf("Cell(0,1) = %q, want %q", got, "bar\nbaz")
	}
}

func TestDecodeEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, "plain"},
		{`a\tb`, "a\tb"},
		{`a\\b`, `a\b`},
		{`oct \101`, "oct A"},
		{`oct \0101`, "oct A"},
		{`hex \x41`, "hex A"},
		{`bad hex \xzz`, `bad hex \xzz`},
		{`stop\chere`, "stop"},
		{`unknown \q`, `unknown \q`},
		{`trailing \`, `trailing \`},
	}
	for _, tt := range tests {
		if got := decodeEscapes(tt.in); got != tt.want {
			t.Fatalf("decodeEscapes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrapTable_Validate(t *testing.T) {
	tab, err := New([]string{"short", "unbreakable"}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wrapped := WrapTable(tab, []int{5, 6}, wrap.Options{})
	verr := wrapped.Validate([]int{5, 6})
	var owErr *OverWidthError
	if !errors.As(verr, &owErr) {
		t.Fatalf("Validate err = %v, want OverWidthError", verr)
	}
	if owErr.Row != 0 || owErr.Col != 1 {
		t.Fatalf("OverWidthError at (%d,%d), want (0,1)", owErr.Row, owErr.Col)
	}

	wrapped = WrapTable(tab, []int{5, 11}, wrap.Options{})
	if verr := wrapped.Validate([]int{5, 11}); verr != nil {
		t.Fatalf("Validate: %v", verr)
	}
}

func TestFill_PadsToRectangularBlocks(t *testing.T) {
	tab, err := New([]string{"one two three", "x"}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wrapped := WrapTable(tab, []int{5, 4}, wrap.Options{})
	wrapped.Fill([]int{5, 4})

	left := wrapped.Cell(0, 0)
	right := wrapped.Cell(0, 1)
	if !slices.Equal(left, []string{"one  ", "two  ", "three"}) {
		t.Fatalf("left block = %q", left)
	}
	if !slices.Equal(right, []string{"x   ", "    ", "    "}) {
		t.Fatalf("right block = %q", right)
	}
}

func TestFill_WideRunePadding(t *testing.T) {
	tab, err := New([]string{"你"}, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wrapped := WrapTable(tab, []int{4}, wrap.Options{})
	wrapped.Fill([]int{4})
	if got := wrapped.Cell(0, 0)[0]; got != "你  " {
		t.Fatalf("padded cell = %q, want %q", got, "你  ")
	}
}
