package table

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ReadOptions controls how delimited input is turned into a Table.
type ReadOptions struct {
	// Delimiter is the single-character field separator.
	Delimiter rune
	// Escape enables echo -e style backslash escapes in fields.
	Escape bool
}

// DefaultReadOptions returns the TAB-delimited defaults.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{Delimiter: '\t'}
}

// maxLineBytes bounds a single input line.
const maxLineBytes = 4 << 20

// Read materializes a Table from r. Lines are LF-separated with an optional
// trailing CR. Short rows are padded with empty fields up to the widest row.
func Read(r io.Reader, opts ReadOptions) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]string
	maxFields := 0
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		var row []string
		if line != "" {
			row = strings.Split(line, string(opts.Delimiter))
			if opts.Escape {
				for i, field := range row {
					decoded := decodeEscapes(field)
					if !utf8.ValidString(decoded) {
						return nil, fmt.Errorf("row %d is not valid utf-8 after escape expansion", len(rows)+1)
					}
					row[i] = decoded
				}
			}
		}
		if len(row) > maxFields {
			maxFields = len(row)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 || maxFields == 0 {
		return nil, ErrEmptyTable
	}

	cells := make([]string, 0, len(rows)*maxFields)
	for _, row := range rows {
		cells = append(cells, row...)
		for i := len(row); i < maxFields; i++ {
			cells = append(cells, "")
		}
	}
	table, err := New(cells, len(rows))
	if err != nil {
		return nil, err
	}
	return table, nil
}
