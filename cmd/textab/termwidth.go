package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultTableWidth is used when the output is not a terminal.
const defaultTableWidth = 80

func terminalWidth() int {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) {
		return defaultTableWidth
	}
	w, _, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return defaultTableWidth
	}
	return w
}
