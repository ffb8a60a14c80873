// Package rowsource turns line-oriented input into a lazy sequence of
// tokenized rows with a 1-based line counter for diagnostics.
package rowsource

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Row is one input line split into string fields. No numeric
// interpretation happens at this level.
type Row []string

// Splitter breaks one raw line into fields.
type Splitter func(string) []string

// Fields splits on runs of spaces and tabs. Leading and trailing
// delimiters produce no empty fields.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Comma splits on runs of commas (quasi-CSV: no quoting, no escapes).
func Comma(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' })
}

// Source is a forward-only row iterator over a reader. It is not
// restartable; each row is consumed exactly once.
type Source struct {
	name    string
	scanner *bufio.Scanner
	split   Splitter
	line    int
}

// New creates a Source reading from r. The name is used in error
// messages only. A nil split defaults to Fields.
func New(name string, r io.Reader, split Splitter) *Source {
	scanner := bufio.NewScanner(r)
	// Allow long data rows
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if split == nil {
		split = Fields
	}
	return &Source{name: name, scanner: scanner, split: split}
}

// Next pulls the next row. ok is false once the input is exhausted.
// A read failure is returned wrapped with the source name.
func (s *Source) Next() (row Row, ok bool, err error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, false, fmt.Errorf("reading %s: %w", s.name, err)
		}
		return nil, false, nil
	}
	s.line++
	return s.split(s.scanner.Text()), true, nil
}

// Line is the 1-based line number of the row most recently returned by
// Next, or 0 before the first call.
func (s *Source) Line() int {
	return s.line
}

// Name returns the diagnostic name given at construction.
func (s *Source) Name() string {
	return s.name
}
