// 8 Mar 2025

// Package alnslice cuts pieces out of an alignment. Sites can be
// removed or retained, and samples picked out by name or number. The
// result goes out as fasta again.
package alnslice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/alnmat/pkg/aln"
	"github.com/andrew-torda/alnmat/pkg/fasta"
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	RemoveSites string // site selector, these columns go
	RetainSites string // site selector, only these columns stay
	Samples     string // sample selector for subsetting
	Sites       string // site selector for subsetting
	MarkerKw    string // substring marking annotation records
	SkipMarkers bool   // leave marker rows out of the output
	DryRun      bool   // do everything except write
}

// parseRanges turns "0,2,5-8" into a list of indices. Ranges are
// inclusive at both ends. Order and repeats are left for the selector
// machinery to worry about.
func parseRanges(s string) (aln.Indices, error) {
	var ndx aln.Indices
	for _, fld := range strings.Split(s, ",") {
		fld = strings.TrimSpace(fld)
		if fld == "" {
			continue
		}
		lo, hi, found := strings.Cut(fld, "-")
		if !found {
			hi = lo
		}
		ilo, err := strconv.Atoi(lo)
		if err != nil {
			return nil, fmt.Errorf("site selector %q: %w", fld, err)
		}
		ihi, err := strconv.Atoi(hi)
		if err != nil {
			return nil, fmt.Errorf("site selector %q: %w", fld, err)
		}
		if ihi < ilo {
			return nil, fmt.Errorf("site selector %q: backwards range", fld)
		}
		for i := ilo; i <= ihi; i++ {
			ndx = append(ndx, i)
		}
	}
	return ndx, nil
}

// looksNumeric says whether every field could be an index or range.
func looksNumeric(s string) bool {
	for _, fld := range strings.Split(s, ",") {
		fld = strings.TrimSpace(fld)
		if fld == "" {
			continue
		}
		for _, c := range fld {
			if (c < '0' || c > '9') && c != '-' {
				return false
			}
		}
	}
	return true
}

// ParseSamples reads a sample selector. Numbers and ranges give
// indices, anything else is taken as a list of names. "s1,s2" are
// names, "0,3-5" are row numbers.
func ParseSamples(s string) (aln.Selector, error) {
	if looksNumeric(s) {
		return parseRanges(s)
	}
	var names aln.Names
	for _, fld := range strings.Split(s, ",") {
		if fld = strings.TrimSpace(fld); fld != "" {
			names = append(names, fld)
		}
	}
	return names, nil
}

// ParseSites reads a site selector, which is always numeric.
func ParseSites(s string) (aln.Selector, error) { return parseRanges(s) }

// Mymain reads, slices and writes. An empty infile or outfile means
// stdin or stdout.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	if flags.RemoveSites != "" && flags.RetainSites != "" {
		return fmt.Errorf("give either sites to remove or to retain, not both")
	}
	fopts := &fasta.Options{MarkerKw: flags.MarkerKw,
		SkipMarkers: flags.SkipMarkers, DryRun: flags.DryRun}
	a, err := fasta.Readfile(infile, fopts)
	if err != nil {
		return err
	}

	switch {
	case flags.RemoveSites != "":
		sel, err := ParseSites(flags.RemoveSites)
		if err != nil {
			return err
		}
		if _, err = a.RemoveCols(sel, false); err != nil {
			return err
		}
	case flags.RetainSites != "":
		sel, err := ParseSites(flags.RetainSites)
		if err != nil {
			return err
		}
		if _, err = a.RetainCols(sel, false); err != nil {
			return err
		}
	}

	if flags.Samples != "" || flags.Sites != "" {
		var rows, cols aln.Selector
		if flags.Samples != "" {
			if rows, err = ParseSamples(flags.Samples); err != nil {
				return err
			}
		}
		if flags.Sites != "" {
			if cols, err = ParseSites(flags.Sites); err != nil {
				return err
			}
		}
		if a, err = a.Subset(rows, cols); err != nil {
			return err
		}
	}
	return fasta.WriteFile(outfile, a, fopts)
}
