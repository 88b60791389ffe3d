// 8 Mar 2025
// Cut sites or samples out of a multiple sequence alignment.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/alnmat/pkg/alnslice"
	. "github.com/andrew-torda/alnmat/pkg/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] [infile [outfile]]")
	long := `Given no file arguments, read from stdin and write to stdout.
Sites count from zero. Selectors look like "0,3,10-20".
Samples can be picked by name ("s1,s5") or by number.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags alnslice.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.RemoveSites, "remove-sites", "", "sites to delete")
	flag.StringVar(&flags.RetainSites, "retain-sites", "", "sites to keep, all others go")
	flag.StringVar(&flags.Samples, "samples", "", "samples to keep, by name or number")
	flag.StringVar(&flags.Sites, "sites", "", "sites to keep, applied after sample selection")
	flag.StringVar(&flags.MarkerKw, "marker-kw", "", "substring marking annotation records")
	flag.BoolVar(&flags.SkipMarkers, "skip-markers", false, "do not write marker records")
	flag.BoolVar(&flags.DryRun, "dry-run", false, "do everything except write output")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := alnslice.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
