package aln_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/alnmat/pkg/aln"
)

// The selectors are exercised through Subset, which keeps the
// selector's order, so resolution order is visible in the result.

func TestIndicesDedupe(t *testing.T) {
	a := mustAln(t, []string{"s1"}, []string{"ACGT"})
	b, err := a.Subset(nil, aln.Indices{2, 0, 2, 0})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"GA"}, b.Sequences()); d != "" {
		t.Fatal("duplicates must collapse to first occurrence:", d)
	}
}

func TestIndicesOutOfRange(t *testing.T) {
	a := mustAln(t, []string{"s1"}, []string{"ACGT"})
	for _, bad := range []int{-1, 4, 100} {
		if _, err := a.Subset(nil, aln.Indices{bad}); !errors.Is(err, aln.ErrOutOfRange) {
			t.Fatalf("index %d: wanted ErrOutOfRange, got %v", bad, err)
		}
	}
}

func TestNames(t *testing.T) {
	a := mustAln(t, []string{"s1", "s2", "s3"}, []string{"AA", "CC", "GG"})
	b, err := a.Subset(aln.Names{"s3", "s1"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"s3", "s1"}, b.SampleIds()); d != "" {
		t.Fatal("name order must be kept:", d)
	}
	if _, err := a.Subset(aln.Names{"nobody"}, nil); !errors.Is(err, aln.ErrUnknownId) {
		t.Fatal("wanted ErrUnknownId, got", err)
	}
}

// TestNamesOnColumns checks that an identifier selector on the column
// axis fails loudly instead of being coerced to anything.
func TestNamesOnColumns(t *testing.T) {
	a := mustAln(t, []string{"s1"}, []string{"ACGT"})
	if _, err := a.RemoveCols(aln.Names{"s1"}, true); !errors.Is(err, aln.ErrUnknownId) {
		t.Fatal("wanted ErrUnknownId, got", err)
	}
	if _, err := a.Subset(nil, aln.Names{"s1"}); !errors.Is(err, aln.ErrUnknownId) {
		t.Fatal("wanted ErrUnknownId, got", err)
	}
}

func TestMask(t *testing.T) {
	a := mustAln(t, []string{"s1"}, []string{"ACGT"})
	b, err := a.RetainCols(aln.Mask{true, false, false, true}, true)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"AT"}, b.Sequences()); d != "" {
		t.Fatal(d)
	}
}

func TestMaskLen(t *testing.T) {
	a := mustAln(t, []string{"s1", "s2"}, []string{"ACGT", "ACGA"})
	if _, err := a.RetainCols(aln.Mask{true, false}, true); !errors.Is(err, aln.ErrMaskLen) {
		t.Fatal("wanted ErrMaskLen, got", err)
	}
	// A row mask must match nsamples, not ncols.
	if _, err := a.Subset(aln.Mask{true, false, true, false}, nil); !errors.Is(err, aln.ErrMaskLen) {
		t.Fatal("wanted ErrMaskLen, got", err)
	}
	b, err := a.Subset(aln.Mask{false, true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"s2"}, b.SampleIds()); d != "" {
		t.Fatal(d)
	}
}
