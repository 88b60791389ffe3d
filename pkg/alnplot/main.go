// 12 Mar 2025

// Package alnplot turns an alignment into a picture. It computes a
// per-site track, entropy or gap fraction, and hands it to plotcons.
package alnplot

import (
	"fmt"

	"github.com/andrew-torda/alnmat/pkg/alnstat"
	"github.com/andrew-torda/alnmat/pkg/fasta"
	"github.com/andrew-torda/alnmat/pkg/plotcons"
)

// CmdFlag holds the command line options.
type CmdFlag struct {
	Track       string // "entropy" or "gapfrac"
	GapsAreChar bool   // gap is a valid symbol when computing entropy
	MarkerKw    string // substring marking annotation records
	FontPath    string // ttf file for labels, empty means no text
	Title       string // plot title, needs a font
	Width       int    // plot width in pixels
	Height      int    // plot height in pixels
}

// Mymain reads an alignment, computes the wanted track and writes a
// png. An empty outfile means stdout, which is only a good idea if it
// goes to a pipe.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	a, err := fasta.Readfile(infile, &fasta.Options{MarkerKw: flags.MarkerKw})
	if err != nil {
		return err
	}
	sc, err := alnstat.Count(a)
	if err != nil {
		return err
	}

	var track []float32
	switch flags.Track {
	case "", "entropy":
		track = make([]float32, a.NCols())
		sc.Entropy(flags.GapsAreChar, track)
	case "gapfrac":
		if track = sc.GapFrac(); track == nil {
			track = make([]float32, a.NCols()) // gapless, flat zero
		}
	default:
		return fmt.Errorf("unknown track %q, want entropy or gapfrac", flags.Track)
	}

	popts := &plotcons.Options{
		Width: flags.Width, Height: flags.Height,
		Title: flags.Title, FontPath: flags.FontPath,
	}
	if flags.Track == "gapfrac" {
		popts.YMax = 1 // fractions have a natural scale
	}
	return plotcons.PlotFile(outfile, track, popts)
}
