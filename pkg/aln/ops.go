// 11 Feb 2025

// The structural operations. RemoveCols and RetainCols are duals and
// share one column-slicing transform. Each takes a flag saying whether
// to build a new alignment or to mutate the receiver. Both routes give
// bit-identical results, and a failed call never half-mutates anything:
// the selector is resolved and the new rows are fully built before the
// receiver is touched.

package aln

import (
	"sort"
)

// takeCols builds fresh rows holding only the columns in keep, in the
// order keep gives them.
func takeCols(rows [][]byte, keep []int) [][]byte {
	out := make([][]byte, len(rows))
	for i, r := range rows {
		t := make([]byte, len(keep))
		for j, k := range keep {
			t[j] = r[k]
		}
		out[i] = t
	}
	return out
}

// applyCols is the shared pure transform behind RemoveCols and
// RetainCols. keep lists the surviving columns, ascending. With mkcopy
// set, the receiver is left alone and a new alignment comes back.
// Otherwise the fresh rows are swapped into the receiver, which is
// also the returned value.
func (a *Alignment) applyCols(keep []int, mkcopy bool) *Alignment {
	seqs := takeCols(a.seqs, keep)
	mrows := takeCols(a.mrows, keep)
	if mkcopy {
		return &Alignment{
			ids:    append([]string(nil), a.ids...),
			descs:  append([]string(nil), a.descs...),
			seqs:   seqs,
			mids:   append([]string(nil), a.mids...),
			mdescs: append([]string(nil), a.mdescs...),
			mrows:  mrows,
			ncols:  len(keep),
		}
	}
	a.seqs = seqs
	a.mrows = mrows
	a.ncols = len(keep)
	return a
}

// RemoveCols drops the selected columns from every sample and marker
// row. The survivors keep their original left-to-right order whatever
// order the selector used. An empty selector is a no-op. Removing all
// columns leaves the rows in place, zero bytes long.
func (a *Alignment) RemoveCols(sel Selector, mkcopy bool) (*Alignment, error) {
	picked, err := sel.resolve(a.ncols, nil)
	if err != nil {
		return nil, err
	}
	return a.applyCols(complement(picked, a.ncols), mkcopy), nil
}

// RetainCols keeps exactly the selected columns and drops the rest.
// Like RemoveCols, the survivors stay in original column order; the
// selector order does not reorder anything here. Retaining nothing is
// legal and leaves every row empty with the sample count unchanged.
func (a *Alignment) RetainCols(sel Selector, mkcopy bool) (*Alignment, error) {
	picked, err := sel.resolve(a.ncols, nil)
	if err != nil {
		return nil, err
	}
	keep := append([]int(nil), picked...)
	sort.Ints(keep)
	return a.applyCols(keep, mkcopy), nil
}

// Subset returns a new alignment restricted to the chosen samples and
// sites, in the order the selectors give them, so a permuted selector
// permutes the output. A nil selector keeps that axis whole. Markers
// are never filtered by the samples selector. They are not samples, so
// all marker rows survive, cut down to the chosen sites.
// Subset always builds a new alignment. It changes shape on both axes,
// so an in-place variant would buy nothing.
func (a *Alignment) Subset(samples, sites Selector) (*Alignment, error) {
	var rows, cols []int
	var err error

	if samples == nil {
		rows = make([]int, len(a.ids))
		for i := range rows {
			rows[i] = i
		}
	} else if rows, err = samples.resolve(len(a.ids), a.ids); err != nil {
		return nil, err
	}
	if sites == nil {
		cols = make([]int, a.ncols)
		for i := range cols {
			cols[i] = i
		}
	} else if cols, err = sites.resolve(a.ncols, nil); err != nil {
		return nil, err
	}

	out := &Alignment{
		ids:    make([]string, len(rows)),
		descs:  make([]string, len(rows)),
		seqs:   make([][]byte, len(rows)),
		mids:   append([]string(nil), a.mids...),
		mdescs: append([]string(nil), a.mdescs...),
		mrows:  takeCols(a.mrows, cols),
		ncols:  len(cols),
	}
	for i, r := range rows {
		out.ids[i] = a.ids[r]
		out.descs[i] = a.descs[r]
		t := make([]byte, len(cols))
		for j, c := range cols {
			t[j] = a.seqs[r][c]
		}
		out.seqs[i] = t
	}
	return out, nil
}
