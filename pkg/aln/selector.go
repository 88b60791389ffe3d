// 9 Feb 2025

package aln

import (
	"fmt"
)

// A Selector says which rows or columns an operation should act on.
// There are three kinds: explicit integer positions (Indices), sample
// identifiers (Names) and a boolean mask (Mask). Resolution turns any
// of them into a list of in-range indices with duplicates collapsed to
// their first occurrence. The selector's own order is kept, which is
// what lets Subset reorder rows and columns.
//
// Names only make sense for samples. Columns have no identifiers, so a
// Names selector on the column axis fails with ErrUnknownId rather
// than guessing what the caller meant.
type Selector interface {
	// resolve checks the selector against a dimension of size dim.
	// ids is the identifier list for that dimension, or nil when the
	// dimension has none (columns, markers).
	resolve(dim int, ids []string) ([]int, error)
}

// Indices selects by integer position.
type Indices []int

func (sel Indices) resolve(dim int, _ []string) ([]int, error) {
	out := make([]int, 0, len(sel))
	seen := make(map[int]bool, len(sel))
	for _, i := range sel {
		if i < 0 || i >= dim {
			return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, dim)
		}
		if seen[i] {
			continue
		}
		seen[i] = true
		out = append(out, i)
	}
	return out, nil
}

// Names selects samples by identifier.
type Names []string

func (sel Names) resolve(dim int, ids []string) ([]int, error) {
	if ids == nil {
		return nil, fmt.Errorf("%w: this axis has no identifiers", ErrUnknownId)
	}
	out := make([]int, 0, len(sel))
	seen := make(map[int]bool, len(sel))
	for _, name := range sel {
		ndx := -1
		for i, id := range ids {
			if id == name {
				ndx = i
				break
			}
		}
		if ndx == -1 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownId, name)
		}
		if seen[ndx] {
			continue
		}
		seen[ndx] = true
		out = append(out, ndx)
	}
	return out, nil
}

// Mask selects by a boolean slice whose length must equal the
// dimension it is applied to.
type Mask []bool

func (sel Mask) resolve(dim int, _ []string) ([]int, error) {
	if len(sel) != dim {
		return nil, fmt.Errorf("%w: mask has %d entries, dimension is %d",
			ErrMaskLen, len(sel), dim)
	}
	var out []int
	for i, keep := range sel {
		if keep {
			out = append(out, i)
		}
	}
	return out, nil
}

// complement returns the indices of [0, dim) that are not in ndx,
// ascending. ndx entries must already be in range.
func complement(ndx []int, dim int) []int {
	drop := make([]bool, dim)
	for _, i := range ndx {
		drop[i] = true
	}
	out := make([]int, 0, dim-len(ndx))
	for i := 0; i < dim; i++ {
		if !drop[i] {
			out = append(out, i)
		}
	}
	return out
}
