package render

import (
	"strings"
	"testing"

	"github.com/dkoosis/numdiff/pkg/compare"
	"github.com/dkoosis/numdiff/pkg/rowsource"
)

func TestLine_PerKind(t *testing.T) {
	r := New(MonoTheme())
	tests := []struct {
		name string
		res  compare.Result
		want []string
	}{
		{
			name: "header",
			res: compare.Result{
				Kind: compare.HeaderMismatch,
				Line: 1,
				RowA: rowsource.Row{"x", "y"},
				RowB: rowsource.Row{"x", "z"},
			},
			want: []string{"HeaderMismatch:", `"x y"`, `"x z"`},
		},
		{
			name: "seed",
			res: compare.Result{
				Kind: compare.SeedRowMismatch,
				Line: 2,
				RowA: rowsource.Row{"1.0"},
				RowB: rowsource.Row{"1.00"},
			},
			want: []string{"SeedRowMismatch:", `"1.0"`, `"1.00"`},
		},
		{
			name: "line count",
			res:  compare.Result{Kind: compare.LineCountMismatch},
			want: []string{"LineCountMismatch:", "different numbers of rows"},
		},
		{
			name: "row length",
			res: compare.Result{
				Kind: compare.RowLengthMismatch,
				Line: 5,
				RowA: rowsource.Row{"1", "2"},
				RowB: rowsource.Row{"1", "2", "3"},
			},
			want: []string{"RowLengthMismatch:", "line 5", "2 and 3 fields"},
		},
		{
			name: "value",
			res: compare.Result{
				Kind:    compare.ValueMismatch,
				Line:    3,
				Column:  0,
				FieldA:  "3.0",
				FieldB:  "3.05",
				Diff:    0.05,
				Epsilon: 0.01,
			},
			want: []string{"ValueMismatch:", "line 3", "column 0", "3.0 vs 3.05", "diff 0.05", "epsilon 0.01"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Line(tt.res)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Line() = %q, missing %q", got, want)
				}
			}
		})
	}
}

func TestLine_Equal(t *testing.T) {
	r := New(MonoTheme())
	if got := r.Line(compare.Result{Kind: compare.Equal}); got != "files match" {
		t.Errorf("got %q", got)
	}
}

func TestVerbose_ValueMismatch(t *testing.T) {
	r := New(MonoTheme())
	res := compare.Result{
		Kind:    compare.ValueMismatch,
		Line:    3,
		Column:  1,
		FieldA:  "4.0",
		FieldB:  "4.2",
		RowA:    rowsource.Row{"3.0", "4.0"},
		RowB:    rowsource.Row{"3.0", "4.2"},
		Diff:    0.2,
		Epsilon: 0.1,
	}
	got := r.Verbose(res, "old.dat", "new.dat")

	for _, want := range []string{"old.dat:3:", "new.dat:3:", "3.0 4.0", "3.0 4.2", "|4.0 - 4.2|"} {
		if !strings.Contains(got, want) {
			t.Errorf("Verbose() missing %q in:\n%s", want, got)
		}
	}

	// Caret sits under column 1 of row B: label (10 cells) + space +
	// "3.0" + space = offset 15.
	lines := strings.Split(got, "\n")
	if len(lines) < 4 {
		t.Fatalf("expected at least 4 lines, got:\n%s", got)
	}
	if lines[2] != strings.Repeat(" ", 15)+"^" {
		t.Errorf("caret misplaced: %q", lines[2])
	}
}

func TestVerbose_NothingExtraForLineCount(t *testing.T) {
	r := New(MonoTheme())
	if got := r.Verbose(compare.Result{Kind: compare.LineCountMismatch}, "a", "b"); got != "" {
		t.Errorf("expected empty verbose block, got %q", got)
	}
}

func TestVerbose_NoANSIWithMonoTheme(t *testing.T) {
	r := New(MonoTheme())
	res := compare.Result{
		Kind:   compare.ValueMismatch,
		Line:   3,
		FieldA: "1",
		FieldB: "2",
		RowA:   rowsource.Row{"1"},
		RowB:   rowsource.Row{"2"},
		Diff:   1,
	}
	if got := r.Verbose(res, "a", "b"); strings.Contains(got, "\033[") {
		t.Errorf("mono output contains ANSI escapes: %q", got)
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("mono").Name != "mono" {
		t.Error("mono theme not selected")
	}
	if ThemeByName("nope").Name != "default" {
		t.Error("unknown theme should fall back to default")
	}
}
