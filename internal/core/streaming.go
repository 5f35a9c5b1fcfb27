package core

// streaming.go prepares raw file content for line-oriented parsing.
//
// Files exported from spreadsheets routinely carry a UTF-8 BOM and the odd
// invalid byte. Both are handled here so that the parser only ever sees
// clean lines:
//
//   - skipBOM drops a leading 0xEF 0xBB 0xBF
//   - scanLines splits on "\r\n", "\n" or a lone "\r"
//   - sanitizeLine replaces invalid UTF-8 sequences with U+FFFD

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single CSV line. The default bufio limit (64KB) is
// raised so that long review rows do not abort the load.
const maxLineSize = 1 << 20

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a reader positioned after the UTF-8 BOM, if r starts with one.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// newLineScanner wraps r for line-by-line reading with BOM removal.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(skipBOM(r))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	sc.Split(scanLines)
	return sc
}

// scanLines is a bufio.SplitFunc recognising "\r\n", "\n" and "\r" as line
// terminators. A terminator at end of input does not produce an extra empty line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		// '\r': need one more byte to know whether it is "\r\n".
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if atEOF {
			return i + 1, data[:i], nil
		}
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// sanitizeLine replaces invalid UTF-8 with the replacement character.
func sanitizeLine(line string) string {
	if utf8.ValidString(line) {
		return line
	}
	return strings.ToValidUTF8(line, string(utf8.RuneError))
}
