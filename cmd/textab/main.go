package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"unicode/utf8"

	"textab/internal/config"
	"textab/internal/layout"
	"textab/internal/logger"
	"textab/internal/planner"
	"textab/internal/table"
	"textab/internal/wrap"
)

var log = logger.Named("textab")

const (
	exitOK    = 0
	exitUsage = 1
	exitInput = 2
	exitPlan  = 4
)

func main() {
	// 下游管道关闭时静默结束，把 EPIPE 留给 run 自己判断。
	signal.Ignore(syscall.SIGPIPE)
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	logger.Configure()
	fs, cli := newFlagSet("textab")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		log.Errorf("expected at most one input file, got %d", fs.NArg())
		return exitUsage
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Errorf("failed to load config: %v", err)
		return exitUsage
	}
	cfg = config.ApplyKVOverrides(cfg, []string(cli.overrides))
	opts, err := resolveOptions(fs, cli, cfg)
	if err != nil {
		log.Errorf("%v", err)
		return exitUsage
	}

	renderer, err := layout.New(opts.layoutName)
	if err != nil {
		log.Errorf("%v", err)
		return exitUsage
	}

	input := stdin
	if name := fs.Arg(0); name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			log.Errorf("failed to open input: %v", err)
			return exitInput
		}
		defer f.Close()
		input = f
	}
	t, err := table.Read(input, opts.read)
	if err != nil {
		if errors.Is(err, table.ErrEmptyTable) {
			log.Errorf("%v", err)
			return exitUsage
		}
		log.Errorf("failed to read input: %v", err)
		return exitInput
	}

	userWidths := normalizeWidths([]int(cli.widths), t.NCols())
	widths, err := planner.CompleteWidths(userWidths, opts.tableWidth, t, renderer, opts.wrap)
	if err != nil {
		log.Errorf("%v", err)
		return exitPlan
	}

	wrapped := table.WrapTable(t, widths, opts.wrap)
	if err := wrapped.Validate(widths); err != nil {
		if opts.strict {
			log.Errorf("%v", err)
			return exitPlan
		}
		log.Warnf("%v", err)
	}
	wrapped.Fill(widths)

	if _, err := io.WriteString(stdout, renderer.Render(wrapped, widths)); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			return exitOK
		}
		log.Errorf("failed to write output: %v", err)
		return exitInput
	}
	return exitOK
}

// options is the fully merged run configuration: config file, then
// -c overrides, then explicit flags.
type options struct {
	layoutName string
	tableWidth int
	strict     bool
	read       table.ReadOptions
	wrap       wrap.Options
}

func resolveOptions(fs *flag.FlagSet, cli *cliArgs, cfg config.Config) (options, error) {
	set := visited(fs)

	opts := options{
		layoutName: cfg.Layout,
		tableWidth: cfg.TableWidth,
		strict:     cfg.Strict,
	}
	if set["L"] || set["layout"] {
		opts.layoutName = cli.layoutName
	}
	if opts.layoutName == "" {
		opts.layoutName = layout.DefaultName
	}
	if set["T"] || set["table-width"] {
		opts.tableWidth = cli.tableWidth
	}
	if set["T"] || set["table-width"] || opts.tableWidth != 0 {
		if opts.tableWidth <= 0 {
			return options{}, fmt.Errorf("table width %d is not a positive integer", opts.tableWidth)
		}
	} else {
		opts.tableWidth = terminalWidth()
	}
	if set["S"] || set["strict"] {
		opts.strict = cli.strict
	}

	delim := cfg.Delimiter
	if set["d"] || set["delimiter"] {
		delim = cli.delimiter
	}
	if utf8.RuneCountInString(delim) != 1 {
		return options{}, fmt.Errorf("delimiter %q is not a single character", delim)
	}
	r, _ := utf8.DecodeRuneInString(delim)
	opts.read = table.ReadOptions{Delimiter: r, Escape: cfg.Escape}
	if set["e"] || set["escape"] {
		opts.read.Escape = cli.escape
	}

	breakLong := cfg.BreakLongWords
	if set["b"] || set["break-long-words"] {
		breakLong = cli.breakLong
	}
	if cli.noBreakLong {
		breakLong = false
	}
	opts.wrap = wrap.Options{
		BreakLongWords: breakLong,
		BreakOnHyphens: cfg.BreakOnHyphens,
	}
	return opts, nil
}

// normalizeWidths 把 -W 列表对齐到列数：不足补 `-`，超出截断，并告警。
func normalizeWidths(widths []int, ncols int) []int {
	out := make([]int, ncols)
	copy(out, widths)
	switch {
	case len(widths) > ncols:
		log.Warnf("truncating widths list to %d columns", ncols)
	case len(widths) > 0 && len(widths) < ncols:
		log.Warnf("padding widths list with - up to %d columns", ncols)
	}
	return out
}
