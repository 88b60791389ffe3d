// 10 Mar 2025

// Package alninfo prints the vital statistics of an alignment, its
// dimensions and who is in it. With the fast option it does not parse
// anything and just counts records, which is handy on big files.
package alninfo

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/alnmat/pkg/fasta"
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	Fast     bool   // only count records, do not parse
	Ids      bool   // list the sample identifiers
	MarkerKw string // substring marking annotation records
}

// Mymain reads an alignment and writes a summary. With Fast set we
// only count records, which needs a real file, not a pipe.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	var fp io.WriteCloser = os.Stdout
	if outfile != "" {
		var err error
		if fp, err = os.Create(outfile); err != nil {
			return err
		}
		defer fp.Close()
	}

	if flags.Fast {
		if infile == "" {
			return fmt.Errorf("counting records needs a filename, not stdin")
		}
		n, err := fasta.NumRecords(infile)
		if err != nil {
			return err
		}
		fmt.Fprintln(fp, "records:", n)
		return nil
	}

	a, err := fasta.Readfile(infile, &fasta.Options{MarkerKw: flags.MarkerKw})
	if err != nil {
		return err
	}
	fmt.Fprintln(fp, "samples:", a.NSamples())
	fmt.Fprintln(fp, "sites:  ", a.NCols())
	fmt.Fprintln(fp, "markers:", a.NMarkers())
	if flags.Ids {
		for _, id := range a.SampleIds() {
			fmt.Fprintln(fp, id)
		}
		for _, id := range a.MarkerIds() {
			fmt.Fprintln(fp, "marker", id)
		}
	}
	return nil
}
