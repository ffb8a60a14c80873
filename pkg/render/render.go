// Package render formats comparison results for the error stream.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/numdiff/pkg/compare"
	"github.com/dkoosis/numdiff/pkg/rowsource"
)

// Renderer formats compare.Result values using a theme.
type Renderer struct {
	theme Theme
}

// New creates a Renderer with the given theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Line returns the one-line report for a result, in the form
// "<KindName>: <detail>".
func (r *Renderer) Line(res compare.Result) string {
	kind := r.theme.Bold.Render(res.Kind.String())
	switch res.Kind {
	case compare.Equal:
		return "files match"
	case compare.HeaderMismatch:
		return fmt.Sprintf("%s: header rows differ: %q vs %q",
			kind, joinRow(res.RowA), joinRow(res.RowB))
	case compare.SeedRowMismatch:
		return fmt.Sprintf("%s: first data rows differ as text: %q vs %q",
			kind, joinRow(res.RowA), joinRow(res.RowB))
	case compare.LineCountMismatch:
		return fmt.Sprintf("%s: files have different numbers of rows", kind)
	case compare.RowLengthMismatch:
		return fmt.Sprintf("%s: line %d: rows have %d and %d fields",
			kind, res.Line, len(res.RowA), len(res.RowB))
	case compare.ValueMismatch:
		return fmt.Sprintf("%s: line %d, column %d: %s vs %s (diff %s, epsilon %s)",
			kind, res.Line, res.Column,
			r.theme.Value.Render(res.FieldA), r.theme.Value.Render(res.FieldB),
			formatFloat(res.Diff), formatFloat(res.Epsilon))
	default:
		return fmt.Sprintf("%s: unexpected result", kind)
	}
}

// Verbose returns a multi-line diagnostic block for a mismatch: the two
// offending rows labeled with file and line, a caret marking the
// diverging column, and the tolerance arithmetic. Returns "" for kinds
// with nothing more to show than the one-line report.
func (r *Renderer) Verbose(res compare.Result, nameA, nameB string) string {
	switch res.Kind {
	case compare.HeaderMismatch, compare.SeedRowMismatch, compare.RowLengthMismatch:
		var sb strings.Builder
		r.writeRowPair(&sb, res, nameA, nameB, -1)
		return sb.String()
	case compare.ValueMismatch:
		var sb strings.Builder
		r.writeRowPair(&sb, res, nameA, nameB, res.Column)
		fmt.Fprintf(&sb, "%s column %d: |%s - %s| = %s, tolerance %s\n",
			r.theme.Muted.Render("where"), res.Column,
			res.FieldA, res.FieldB, formatFloat(res.Diff), formatFloat(res.Epsilon))
		return sb.String()
	default:
		return ""
	}
}

// writeRowPair writes both rows with aligned labels. When col >= 0 that
// field is highlighted and a caret line is placed under it.
func (r *Renderer) writeRowPair(sb *strings.Builder, res compare.Result, nameA, nameB string, col int) {
	labelA := fmt.Sprintf("%s:%d:", nameA, res.Line)
	labelB := fmt.Sprintf("%s:%d:", nameB, res.Line)
	width := max(runewidth.StringWidth(labelA), runewidth.StringWidth(labelB))

	fmt.Fprintf(sb, "%s %s\n", r.theme.Muted.Render(pad(labelA, width)), r.renderRow(res.RowA, col))
	fmt.Fprintf(sb, "%s %s\n", r.theme.Muted.Render(pad(labelB, width)), r.renderRow(res.RowB, col))
	if col >= 0 {
		// Caret position follows row B's field widths.
		offset := width + 1
		for i := 0; i < col && i < len(res.RowB); i++ {
			offset += runewidth.StringWidth(res.RowB[i]) + 1
		}
		fmt.Fprintf(sb, "%s%s\n", strings.Repeat(" ", offset), r.theme.Error.Render("^"))
	}
}

func (r *Renderer) renderRow(row rowsource.Row, highlight int) string {
	if highlight < 0 || highlight >= len(row) {
		return joinRow(row)
	}
	parts := make([]string, len(row))
	for i, field := range row {
		if i == highlight {
			parts[i] = r.theme.Error.Render(field)
		} else {
			parts[i] = field
		}
	}
	return strings.Join(parts, " ")
}

func joinRow(row rowsource.Row) string {
	return strings.Join(row, " ")
}

func pad(s string, width int) string {
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
