// 17 Feb 2025

// Package fasta moves alignments between the in-memory form in
// pkg/aln and fasta formatted text. It is the only place in the
// library that touches files.
package fasta

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/alnmat/pkg/aln"

	"github.com/edsrzf/mmap-go"
)

// Options contains all the choices passed in from the caller.
type Options struct {
	MarkerKw    string // a record whose id contains this is a marker row
	SkipMarkers bool   // leave marker rows out when writing
	DryRun      bool   // do not write any files
}

// Readfile reads one fasta file into an alignment. An empty filename
// means stdin. It could be a pipe, so do not try to rewind it.
func Readfile(fname string, opts *Options) (*aln.Alignment, error) {
	var fp io.ReadCloser
	var err error

	if fname != "" {
		if fp, err = os.Open(fname); err != nil {
			return nil, err
		}
	} else {
		fp = os.Stdin
	}
	defer fp.Close()

	a, err := ReadAln(fp, opts)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", fname, err)
	}
	return a, nil
}

const cPerLine = 60

// writeRec writes one record, comment line first, then the row broken
// into lines of at most cPerLine characters.
func writeRec(w io.Writer, r aln.Record) error {
	if r.Desc != "" {
		if _, err := fmt.Fprintf(w, ">%s %s\n", r.Id, r.Desc); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, ">%s\n", r.Id); err != nil {
		return err
	}
	s := r.Seq
	for ; len(s) > cPerLine; s = s[cPerLine:] {
		if _, err := fmt.Fprintf(w, "%s\n", s[:cPerLine]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", s)
	return err
}

// WriteAln writes the samples in row order, then the markers, unless
// opts says to skip them.
func WriteAln(w io.Writer, a *aln.Alignment, opts *Options) error {
	for i := 0; i < a.NSamples(); i++ {
		r, err := a.SampleAt(i)
		if err != nil {
			return err
		}
		if err := writeRec(w, r); err != nil {
			return err
		}
	}
	if opts.SkipMarkers {
		return nil
	}
	for i := 0; i < a.NMarkers(); i++ {
		r, err := a.MarkerAt(i)
		if err != nil {
			return err
		}
		if err := writeRec(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile writes an alignment to a named file. An empty name means
// stdout and a dry run goes to the bit bucket.
func WriteFile(fname string, a *aln.Alignment, opts *Options) error {
	var w io.Writer
	switch {
	case opts.DryRun:
		w = io.Discard
	case fname == "":
		w = os.Stdout
	default:
		fp, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("creating output sequence file: %w", err)
		}
		defer fp.Close()
		w = fp
	}
	return WriteAln(w, a, opts)
}

// NumRecords counts the records in a fasta file without parsing it.
// We just map the file and count ">" characters at the start of a
// line, which is as fast as this can be done. Good enough for
// preallocating or a quick look at a big file.
func NumRecords(fname string) (int, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	n := 0
	for i, c := range mm {
		if c != '>' {
			continue
		}
		if i == 0 || mm[i-1] == '\n' {
			n++
		}
	}
	return n, nil
}
