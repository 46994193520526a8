package table

import "strings"

// decodeEscapes expands echo -e style backslash sequences in a field.
// Octal (\0NNN and \NNN), hex (\xHH), the usual control escapes, and \c
// which discards the rest of the field. Unknown sequences pass through
// with their backslash.
func decodeEscapes(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var out []byte
	runes := []rune(s)
	i := 0
	for i < len(runes) {
		c := runes[i]
		i++
		if c != '\\' {
			out = utf8AppendRune(out, c)
			continue
		}
		if i >= len(runes) {
			out = append(out, '\\')
			break
		}
		// \NNN octal without the leading zero. '0' is handled below as \0NNN.
		if runes[i] >= '1' && runes[i] <= '8' {
			if b, n := parseRadix(runes[i:], 8, 3); n > 0 {
				out = append(out, b)
				i += n
				continue
			}
		}
		c = runes[i]
		i++
		switch c {
		case '\\':
			out = append(out, '\\')
		case 'a':
			out = append(out, '\a')
		case 'b':
			out = append(out, '\b')
		case 'c':
			return string(out)
		case 'e':
			out = append(out, 0x1b)
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case 'x':
			if b, n := parseRadix(runes[i:], 16, 2); n > 0 {
				out = append(out, b)
				i += n
			} else {
				out = append(out, '\\', 'x')
			}
		case '0':
			b, n := parseRadix(runes[i:], 8, 3)
			out = append(out, b)
			i += n
		default:
			out = append(out, '\\')
			out = utf8AppendRune(out, c)
		}
	}
	return string(out)
}

// parseRadix consumes up to maxDigits digits in the given base and returns
// the wrapped byte value and the number of runes consumed. Octal input can
// exceed a byte; like GNU echo the value wraps.
func parseRadix(runes []rune, base byte, maxDigits int) (byte, int) {
	var val byte
	n := 0
	for n < maxDigits && n < len(runes) {
		d, ok := digitValue(runes[n], base)
		if !ok {
			break
		}
		val = val*base + d
		n++
	}
	return val, n
}

func digitValue(r rune, base byte) (byte, bool) {
	var d byte
	switch {
	case r >= '0' && r <= '9':
		d = byte(r - '0')
	case r >= 'a' && r <= 'f':
		d = byte(r-'a') + 10
	case r >= 'A' && r <= 'F':
		d = byte(r-'A') + 10
	default:
		return 0, false
	}
	if d >= base {
		return 0, false
	}
	return d, true
}

func utf8AppendRune(out []byte, r rune) []byte {
	return append(out, string(r)...)
}
