// 11 Mar 2025
package alnstat

import (
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/alnmat/pkg/fasta"
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	GapsAreChar bool    // gap is a valid symbol
	Offset      int     // offset for numbering sites in the output
	MarkerKw    string  // substring marking annotation records
	Consensus   float64 // threshold, zero means no consensus
	ConsId      string  // identifier for the consensus marker row
	ConsOut     string  // write alignment plus consensus marker here
}

// warnExists prints a warning if we are about to trash a file. It
// does not return an error.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// writeStats writes the per-site table as csv.
func writeStats(fp io.Writer, entropy, gapfrac []float32, offset int) {
	fmt.Fprintln(fp, `"site","entropy","frac non-gap"`)
	for i, v := range entropy {
		var nongap float32 = 1
		if gapfrac != nil {
			nongap = 1 - gapfrac[i]
		}
		fmt.Fprintf(fp, "%d,%.2f,%.2f\n", i+offset, v, nongap)
	}
}

// Mymain reads an alignment, writes per-site entropy and gap content
// as csv and, if asked, appends a consensus marker and writes the
// whole alignment back out as fasta.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	a, err := fasta.Readfile(infile, &fasta.Options{MarkerKw: flags.MarkerKw})
	if err != nil {
		return err
	}
	sc, err := Count(a)
	if err != nil {
		return err
	}
	entropy := make([]float32, a.NCols())
	sc.Entropy(flags.GapsAreChar, entropy)
	gapfrac := sc.GapFrac()

	var fp io.WriteCloser = os.Stdout
	if outfile != "" && outfile != "-" {
		warnExists(outfile)
		if fp, err = os.Create(outfile); err != nil {
			return fmt.Errorf("output file %v: %w", outfile, err)
		}
		defer fp.Close()
	}
	writeStats(fp, entropy, gapfrac, flags.Offset)

	if flags.Consensus > 0 {
		id := flags.ConsId
		if id == "" {
			id = "consensus"
		}
		if err := AddConsensusMarker(a, id, flags.Consensus); err != nil {
			return err
		}
		return fasta.WriteFile(flags.ConsOut, a, &fasta.Options{})
	}
	return nil
}
