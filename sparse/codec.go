// SPDX-License-Identifier: MIT
// Package: sparse
//
// codec.go - the plain-text matrix format.
//
//	rows=<int>
//	cols=<int>
//	(<row>, <col>, <value>)
//	...
//
// Decoding rules:
//   - Blank lines and surrounding whitespace (CR included) are ignored.
//   - The first two non-blank lines must be the rows= and cols= headers.
//   - Every later line must be a parenthesized triple of integers whose
//     coordinate lies inside the declared shape.
//   - Values go through Set: zeros are dropped, duplicates keep the last value.
//   - The first malformed line aborts decoding with *FormatError.
//
// Encoding writes entries in row-major order, one per line.

package sparse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	headerRows = "rows"
	headerCols = "cols"
	fieldCount = 3
)

// Decode reads one matrix in text form from r.
// opts are applied to the decoded Matrix (e.g. WithStrictBounds).
func Decode(r io.Reader, opts ...Option) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	var (
		lineNo     int
		rows, cols int
		headers    int
		m          *Matrix
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		switch headers {
		case 0:
			n, err := parseHeader(lineNo, text, headerRows)
			if err != nil {
				return nil, err
			}
			rows, headers = n, 1
			continue
		case 1:
			n, err := parseHeader(lineNo, text, headerCols)
			if err != nil {
				return nil, err
			}
			cols, headers = n, 2
			// Shape is validated by parseHeader, so New cannot fail here.
			m, _ = New(rows, cols, opts...)
			continue
		}

		row, col, val, err := parseEntry(lineNo, text)
		if err != nil {
			return nil, err
		}
		if !m.inBounds(row, col) {
			return nil, &FormatError{Line: lineNo, Text: text,
				Reason: fmt.Sprintf("coordinate (%d, %d) outside %v", row, col, m.Shape())}
		}
		m.put(Coord{Row: row, Col: col}, val)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: lineNo + 1, Reason: "line too long"}
		}

		return nil, &IOError{Op: "read", Path: "", Err: err}
	}

	switch headers {
	case 0:
		return nil, &FormatError{Reason: "missing " + headerRows + "= header"}
	case 1:
		return nil, &FormatError{Reason: "missing " + headerCols + "= header"}
	}

	return m, nil
}

// parseHeader parses "key=<non-negative int>".
func parseHeader(lineNo int, text, key string) (int, error) {
	k, v, ok := strings.Cut(text, "=")
	if !ok || strings.TrimSpace(k) != key {
		return 0, &FormatError{Line: lineNo, Text: text, Reason: "expected " + key + "=<int>"}
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, &FormatError{Line: lineNo, Text: text, Reason: key + " is not an integer"}
	}
	if n < 0 {
		return 0, &FormatError{Line: lineNo, Text: text, Reason: key + " must be non-negative"}
	}

	return n, nil
}

// parseEntry parses "(<row>, <col>, <value>)".
func parseEntry(lineNo int, text string) (row, col, val int, err error) {
	if !strings.HasPrefix(text, "(") || !strings.HasSuffix(text, ")") {
		return 0, 0, 0, &FormatError{Line: lineNo, Text: text, Reason: "entry must be enclosed in parentheses"}
	}
	fields := strings.Split(text[1:len(text)-1], ",")
	if len(fields) != fieldCount {
		return 0, 0, 0, &FormatError{Line: lineNo, Text: text,
			Reason: fmt.Sprintf("expected %d fields, got %d", fieldCount, len(fields))}
	}

	var nums [fieldCount]int
	for i, f := range fields {
		n, convErr := strconv.Atoi(strings.TrimSpace(f))
		if convErr != nil {
			return 0, 0, 0, &FormatError{Line: lineNo, Text: text,
				Reason: fmt.Sprintf("field %d %q is not an integer", i+1, strings.TrimSpace(f))}
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

// WriteTo writes m in text form. Implements io.WriterTo.
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(bw, format, args...)
		total += int64(n)
		return err
	}

	if err := write("%s=%d\n%s=%d\n", headerRows, m.rows, headerCols, m.cols); err != nil {
		return total, err
	}
	for _, e := range m.Entries() {
		if err := write("(%d, %d, %d)\n", e.Row, e.Col, e.Value); err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// MarshalText implements encoding.TextMarshaler.
func (m *Matrix) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It replaces the shape
// and entries of m; the strictness policy of m is kept.
func (m *Matrix) UnmarshalText(text []byte) error {
	var opts []Option
	if m.strict {
		opts = append(opts, WithStrictBounds())
	}
	d, err := Decode(bytes.NewReader(text), opts...)
	if err != nil {
		return err
	}
	*m = *d

	return nil
}

// String returns the text form of m.
func (m *Matrix) String() string {
	b, _ := m.MarshalText() // bytes.Buffer writes never fail

	return string(b)
}

// Load reads a matrix file.
// Errors: *IOError (open/read) or *FormatError, wrapped with the path.
func Load(path string, opts ...Option) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "load", Path: path, Err: err}
	}
	defer f.Close()

	m, err := Decode(f, opts...)
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Op, ioErr.Path = "load", path
			return nil, ioErr
		}
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}

	return m, nil
}

// Save writes m to path, creating or truncating the file.
func (m *Matrix) Save(path string) (err error) {
	if m == nil {
		return sparseErrorf("Save", ErrNilMatrix)
	}
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &IOError{Op: "save", Path: path, Err: cerr}
		}
	}()

	if _, err = m.WriteTo(f); err != nil {
		return &IOError{Op: "save", Path: path, Err: err}
	}

	return nil
}
