package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"textab/internal/config"
)

func mustDefaultConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Default()
}

func TestWidthsValue_Set(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "14,-,3", want: []int{14, 0, 3}},
		{in: "5", want: []int{5}},
		{in: "-,-", want: []int{0, 0}},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "a,2", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		var w widthsValue
		err := w.Set(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("Set(%q) succeeded with %v, want error", tt.in, w)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Set(%q): %v", tt.in, err)
		}
		if !slices.Equal([]int(w), tt.want) {
			t.Fatalf("Set(%q) = %v, want %v", tt.in, w, tt.want)
		}
	}
}

func TestNormalizeWidths(t *testing.T) {
	if got := normalizeWidths([]int{4, 0}, 3); !slices.Equal(got, []int{4, 0, 0}) {
		t.Fatalf("normalizeWidths pad = %v, want [4 0 0]", got)
	}
	if got := normalizeWidths([]int{4, 5, 6}, 2); !slices.Equal(got, []int{4, 5}) {
		t.Fatalf("normalizeWidths truncate = %v, want [4 5]", got)
	}
	if got := normalizeWidths(nil, 2); !slices.Equal(got, []int{0, 0}) {
		t.Fatalf("normalizeWidths empty = %v, want [0 0]", got)
	}
}

func TestResolveOptions_Precedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fs, cli := newFlagSet("textab")
	if err := fs.Parse([]string{"-L", "plain", "-c", "ignored"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	cfg := mustDefaultConfig(t)
	cfg.Layout = "github"
	opts, err := resolveOptions(fs, cli, cfg)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if opts.layoutName != "plain" {
		t.Fatalf("layoutName = %q, explicit flag should win over config", opts.layoutName)
	}

	fs, cli = newFlagSet("textab")
	if err := fs.Parse(nil); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	opts, err = resolveOptions(fs, cli, cfg)
	if err != nil {
		t.Fatalf("resolveOptions: %v", err)
	}
	if opts.layoutName != "github" {
		t.Fatalf("layoutName = %q, want config value github", opts.layoutName)
	}
}

func TestResolveOptions_BadDelimiter(t *testing.T) {
	fs, cli := newFlagSet("textab")
	if err := fs.Parse([]string{"-d", "ab"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := resolveOptions(fs, cli, mustDefaultConfig(t)); err == nil {
		t.Fatalf("resolveOptions accepted two-character delimiter")
	}
}

func TestRun_GridGolden(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	code := run([]string{"-W", "3,3", "-T", "20"}, strings.NewReader("a\tb\n"), &out)
	if code != exitOK {
		t.Fatalf("run = %d, want %d", code, exitOK)
	}
	want := "" +
		"+-----+-----+\n" +
		"| a   | b   |\n" +
		"+-----+-----+\n"
	if out.String() != want {
		t.Fatalf("output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestRun_PlansUnsetColumn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	long := strings.Repeat("word ", 30)
	input := "head\t" + long + "\nhead\t" + long + "\n"
	code := run([]string{"-W", "14,-", "-T", "72"}, strings.NewReader(input), &out)
	if code != exitOK {
		t.Fatalf("run = %d, want %d", code, exitOK)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	// 14 and 51 content columns inside a grid: every line is 72 wide.
	for _, line := range lines {
		if len(line) != 72 {
			t.Fatalf("line %q has length %d, want 72", line, len(line))
		}
	}
}

func TestRun_StrictOverWidth(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	input := "unbreakabletoken\n"

	var out bytes.Buffer
	code := run([]string{"-W", "4", "-S"}, strings.NewReader(input), &out)
	if code != exitPlan {
		t.Fatalf("strict run = %d, want %d", code, exitPlan)
	}

	out.Reset()
	code = run([]string{"-W", "4"}, strings.NewReader(input), &out)
	if code != exitOK {
		t.Fatalf("non-strict run = %d, want %d", code, exitOK)
	}
	if out.Len() == 0 {
		t.Fatalf("non-strict run produced no output")
	}
}

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	tests := []struct {
		name  string
		args  []string
		input string
		want  int
	}{
		{name: "empty input", args: nil, input: "", want: exitUsage},
		{name: "unknown layout", args: []string{"-L", "nope"}, input: "a\n", want: exitUsage},
		{name: "bad delimiter", args: []string{"-d", "ab"}, input: "a\n", want: exitUsage},
		{name: "missing file", args: []string{"/does/not/exist"}, input: "", want: exitInput},
		{name: "budget too small", args: []string{"-T", "5"}, input: "aa\tbb\n", want: exitPlan},
		{name: "two files", args: []string{"x", "y"}, input: "", want: exitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			code := run(tt.args, strings.NewReader(tt.input), &out)
			if code != tt.want {
				t.Fatalf("run(%v) = %d, want %d", tt.args, code, tt.want)
			}
		})
	}
}
