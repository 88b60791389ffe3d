// 9 Feb 2025

// Package aln holds a multiple sequence alignment as a rectangular
// matrix. Rows are named samples, all padded to the same number of
// columns. An alignment can also carry marker rows (consensus,
// conservation scores and friends). Markers share the column space,
// but they are not samples, so they live in their own namespace and
// are skipped by sample-indexed operations.
//
// The structural operations (RemoveCols, RetainCols, Subset) live in
// ops.go and the selector types in selector.go. Reading and writing
// fasta files is the business of pkg/fasta, not this package.
package aln

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrapped versions carry the offending value, so
// match with errors.Is.
var (
	ErrOutOfRange = errors.New("aln: index out of range")
	ErrUnknownId  = errors.New("aln: unknown sample identifier")
	ErrMaskLen    = errors.New("aln: mask length mismatch")
	ErrSeqLen     = errors.New("aln: inconsistent sequence length")
	ErrDupId      = errors.New("aln: duplicate sample identifier")
)

// A Record is one named row, before we know or care whether it is a
// sample or a marker.
type Record struct {
	Id   string
	Desc string
	Seq  []byte
}

// Alignment is the exported type. The four slices for samples and the
// three for markers are parallel. Every row has exactly ncols bytes.
// We store ncols explicitly so the column count survives an alignment
// whose samples have all been taken away.
type Alignment struct {
	ids    []string
	descs  []string
	seqs   [][]byte
	mids   []string
	mdescs []string
	mrows  [][]byte
	ncols  int
}

// New returns an empty alignment.
func New() *Alignment { return &Alignment{} }

// FromRecords builds an alignment from parallel id and sequence lists.
// The first sequence sets the column count. Later rows of a different
// length provoke ErrSeqLen and a duplicated id provokes ErrDupId.
func FromRecords(ids []string, seqs []string) (*Alignment, error) {
	if len(ids) != len(seqs) {
		return nil, fmt.Errorf("aln: %d ids but %d sequences", len(ids), len(seqs))
	}
	a := New()
	for i := range ids {
		if err := a.AppendSample(ids[i], "", []byte(seqs[i])); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// nrows counts all rows, samples and markers together.
func (a *Alignment) nrows() int { return len(a.ids) + len(a.mids) }

// checkLen is where the uniform-length invariant is enforced. The very
// first row is free to pick the column count.
func (a *Alignment) checkLen(s []byte) error {
	if a.nrows() == 0 {
		a.ncols = len(s)
		return nil
	}
	if len(s) != a.ncols {
		return fmt.Errorf("%w: got %d, alignment has %d columns",
			ErrSeqLen, len(s), a.ncols)
	}
	return nil
}

// findSample returns the row index for an id, or -1.
func (a *Alignment) findSample(id string) int {
	for i, s := range a.ids {
		if s == id {
			return i
		}
	}
	return -1
}

// AppendSample adds one sample row at the bottom of the alignment.
// The sequence is copied, so the caller may keep scribbling on seq.
func (a *Alignment) AppendSample(id, desc string, seq []byte) error {
	if a.findSample(id) != -1 {
		return fmt.Errorf("%w: %q", ErrDupId, id)
	}
	if err := a.checkLen(seq); err != nil {
		return err
	}
	a.ids = append(a.ids, id)
	a.descs = append(a.descs, desc)
	a.seqs = append(a.seqs, append([]byte(nil), seq...))
	return nil
}

// AppendMarker adds one marker row. Marker ids are not checked against
// sample ids. They are different namespaces.
func (a *Alignment) AppendMarker(id, desc string, row []byte) error {
	if err := a.checkLen(row); err != nil {
		return err
	}
	a.mids = append(a.mids, id)
	a.mdescs = append(a.mdescs, desc)
	a.mrows = append(a.mrows, append([]byte(nil), row...))
	return nil
}

// NSamples returns the number of sample rows.
func (a *Alignment) NSamples() int { return len(a.ids) }

// NCols returns the number of alignment columns (sites).
func (a *Alignment) NCols() int { return a.ncols }

// NMarkers returns the number of marker rows.
func (a *Alignment) NMarkers() int { return len(a.mids) }

// SampleIds returns a copy of the sample identifiers, in row order.
func (a *Alignment) SampleIds() []string {
	return append([]string(nil), a.ids...)
}

// MarkerIds returns a copy of the marker identifiers, in row order.
func (a *Alignment) MarkerIds() []string {
	return append([]string(nil), a.mids...)
}

// Sequences returns the sample rows as strings, in row order.
func (a *Alignment) Sequences() []string {
	out := make([]string, len(a.seqs))
	for i, s := range a.seqs {
		out[i] = string(s)
	}
	return out
}

// SampleAt returns a copy of sample row i.
func (a *Alignment) SampleAt(i int) (Record, error) {
	if i < 0 || i >= len(a.ids) {
		return Record{}, fmt.Errorf("%w: sample %d of %d", ErrOutOfRange, i, len(a.ids))
	}
	return Record{
		Id:   a.ids[i],
		Desc: a.descs[i],
		Seq:  append([]byte(nil), a.seqs[i]...),
	}, nil
}

// MarkerAt returns a copy of marker row i.
func (a *Alignment) MarkerAt(i int) (Record, error) {
	if i < 0 || i >= len(a.mids) {
		return Record{}, fmt.Errorf("%w: marker %d of %d", ErrOutOfRange, i, len(a.mids))
	}
	return Record{
		Id:   a.mids[i],
		Desc: a.mdescs[i],
		Seq:  append([]byte(nil), a.mrows[i]...),
	}, nil
}

// Site returns column i of the sample rows, top to bottom, as a string.
func (a *Alignment) Site(i int) (string, error) {
	if i < 0 || i >= a.ncols {
		return "", fmt.Errorf("%w: site %d of %d", ErrOutOfRange, i, a.ncols)
	}
	col := make([]byte, len(a.seqs))
	for j, s := range a.seqs {
		col[j] = s[i]
	}
	return string(col), nil
}

// Copy returns a deep copy. The two alignments share no mutable
// storage afterwards, so they may be used from different goroutines.
func (a *Alignment) Copy() *Alignment {
	return &Alignment{
		ids:    append([]string(nil), a.ids...),
		descs:  append([]string(nil), a.descs...),
		seqs:   copyRows(a.seqs),
		mids:   append([]string(nil), a.mids...),
		mdescs: append([]string(nil), a.mdescs...),
		mrows:  copyRows(a.mrows),
		ncols:  a.ncols,
	}
}

func copyRows(rows [][]byte) [][]byte {
	out := make([][]byte, len(rows))
	for i, r := range rows {
		out[i] = append([]byte(nil), r...)
	}
	return out
}

// Equal says if two alignments hold the same data in the same order.
func (a *Alignment) Equal(b *Alignment) bool {
	if a.ncols != b.ncols ||
		len(a.ids) != len(b.ids) || len(a.mids) != len(b.mids) {
		return false
	}
	for i := range a.ids {
		if a.ids[i] != b.ids[i] || a.descs[i] != b.descs[i] ||
			string(a.seqs[i]) != string(b.seqs[i]) {
			return false
		}
	}
	for i := range a.mids {
		if a.mids[i] != b.mids[i] || a.mdescs[i] != b.mdescs[i] ||
			string(a.mrows[i]) != string(b.mrows[i]) {
			return false
		}
	}
	return true
}

// Concat glues alignments together along the column axis and returns
// the result as a new alignment. Ids and descriptions come from the
// receiver. Everybody must have the same number of samples and markers.
func (a *Alignment) Concat(others ...*Alignment) (*Alignment, error) {
	const emsg = "aln: cannot concatenate, %d %s here, %d there"
	out := a.Copy()
	for _, o := range others {
		if len(o.ids) != len(a.ids) {
			return nil, fmt.Errorf(emsg, len(a.ids), "samples", len(o.ids))
		}
		if len(o.mids) != len(a.mids) {
			return nil, fmt.Errorf(emsg, len(a.mids), "markers", len(o.mids))
		}
		for i := range out.seqs {
			out.seqs[i] = append(out.seqs[i], o.seqs[i]...)
		}
		for i := range out.mrows {
			out.mrows[i] = append(out.mrows[i], o.mrows[i]...)
		}
		out.ncols += o.ncols
	}
	return out, nil
}

// String is for diagnostics, not for writing files.
func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment(nsamples=%d, ncols=%d, nmarkers=%d)",
		len(a.ids), a.ncols, len(a.mids))
}
