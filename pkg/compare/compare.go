// Package compare decides whether two tabular row streams hold the same
// numeric dataset within an absolute tolerance.
//
// The first line of each input is a header and the second a seed data
// row; both are compared as exact text. Every later row is compared
// numerically, field by field, stopping at the first divergence.
package compare

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dkoosis/numdiff/pkg/rowsource"
)

// Kind classifies the outcome of a comparison.
type Kind int

const (
	Equal Kind = iota
	HeaderMismatch
	SeedRowMismatch
	LineCountMismatch
	RowLengthMismatch
	ValueMismatch
)

var kindNames = map[Kind]string{
	Equal:             "Equal",
	HeaderMismatch:    "HeaderMismatch",
	SeedRowMismatch:   "SeedRowMismatch",
	LineCountMismatch: "LineCountMismatch",
	RowLengthMismatch: "RowLengthMismatch",
	ValueMismatch:     "ValueMismatch",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Result is the outcome of one Compare call. Fields beyond Kind are
// populated per kind: Line for RowLengthMismatch and ValueMismatch,
// Column/FieldA/FieldB/Diff/Epsilon for ValueMismatch, RowA/RowB for
// every kind where both offending rows were available. Column is
// 0-based; Line is 1-based counting the header as line 1.
type Result struct {
	Kind    Kind
	Line    int
	Column  int
	FieldA  string
	FieldB  string
	RowA    rowsource.Row
	RowB    rowsource.Row
	Diff    float64
	Epsilon float64
}

// ParseError is a fatal fault: a data field that does not parse as a
// floating-point number. It propagates as an error, never as a Result.
type ParseError struct {
	Source string
	Line   int
	Column int
	Field  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d, column %d: non-numeric field %q: %v",
		e.Source, e.Line, e.Column, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Compare scans both sources in lockstep and returns the first point of
// divergence, or a Result with Kind Equal when none is found. Both
// sources must be positioned at their first line; Compare consumes them
// and does not close anything.
//
// Epsilon is taken as given. A negative epsilon tolerates nothing, so
// only bit-identical values pass the numeric stage.
//
// The returned error is non-nil only for fatal faults: a read failure
// on either source, or a *ParseError for a non-numeric data field.
func Compare(a, b *rowsource.Source, epsilon float64) (Result, error) {
	// Header: exact text, no numeric interpretation.
	headA, okA, err := a.Next()
	if err != nil {
		return Result{}, err
	}
	headB, okB, err := b.Next()
	if err != nil {
		return Result{}, err
	}
	if !okA && !okB {
		// Two empty files agree.
		return Result{Kind: Equal, Epsilon: epsilon}, nil
	}
	if okA != okB || !sameFields(headA, headB) {
		return Result{Kind: HeaderMismatch, Line: 1, RowA: headA, RowB: headB}, nil
	}

	// Seed row: still exact text, to pin down the float formatting
	// convention before tolerance comparison begins.
	seedA, okA, err := a.Next()
	if err != nil {
		return Result{}, err
	}
	seedB, okB, err := b.Next()
	if err != nil {
		return Result{}, err
	}
	switch {
	case !okA && !okB:
		return Result{Kind: Equal, Epsilon: epsilon}, nil
	case okA != okB:
		return Result{Kind: LineCountMismatch}, nil
	case !sameFields(seedA, seedB):
		return Result{Kind: SeedRowMismatch, Line: 2, RowA: seedA, RowB: seedB}, nil
	}

	// Numeric rows, in lockstep.
	for {
		rowA, okA, err := a.Next()
		if err != nil {
			return Result{}, err
		}
		rowB, okB, err := b.Next()
		if err != nil {
			return Result{}, err
		}
		if !okA && !okB {
			return Result{Kind: Equal, Epsilon: epsilon}, nil
		}
		if okA != okB {
			// Deliberately reports no line number: the two counters
			// may already disagree about where "here" is.
			return Result{Kind: LineCountMismatch}, nil
		}
		if len(rowA) != len(rowB) {
			return Result{Kind: RowLengthMismatch, Line: a.Line(), RowA: rowA, RowB: rowB}, nil
		}
		for col := range rowA {
			valA, err := parseField(a, rowA, col)
			if err != nil {
				return Result{}, err
			}
			valB, err := parseField(b, rowB, col)
			if err != nil {
				return Result{}, err
			}
			if diff := math.Abs(valA - valB); diff > epsilon {
				return Result{
					Kind:    ValueMismatch,
					Line:    a.Line(),
					Column:  col,
					FieldA:  rowA[col],
					FieldB:  rowB[col],
					RowA:    rowA,
					RowB:    rowB,
					Diff:    diff,
					Epsilon: epsilon,
				}, nil
			}
		}
	}
}

func sameFields(a, b rowsource.Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func parseField(src *rowsource.Source, row rowsource.Row, col int) (float64, error) {
	val, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0, &ParseError{
			Source: src.Name(),
			Line:   src.Line(),
			Column: col,
			Field:  row[col],
			Err:    err,
		}
	}
	return val, nil
}
