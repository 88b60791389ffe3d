// 11 Mar 2025
// Per-site entropy and gap content of an alignment, with an optional
// consensus row.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/alnmat/pkg/alnstat"
	. "github.com/andrew-torda/alnmat/pkg/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] [infile [outfile]]")
	long := `Given no file arguments, read from stdin and write csv to stdout.
With -consensus, the alignment plus its consensus marker row is
written as fasta to the -consensus-out file.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags alnstat.CmdFlag
	var infile, outfile string

	flag.BoolVar(&flags.GapsAreChar, "g", false, "gap is a valid symbol")
	flag.IntVar(&flags.Offset, "f", 0, "offset for numbering sites in the output")
	flag.StringVar(&flags.MarkerKw, "marker-kw", "", "substring marking annotation records")
	flag.Float64Var(&flags.Consensus, "consensus", 0, "append a consensus marker, fraction needed to call a site")
	flag.StringVar(&flags.ConsId, "consensus-id", "consensus", "identifier for the consensus row")
	flag.StringVar(&flags.ConsOut, "consensus-out", "", "fasta output for alignment plus consensus")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := alnstat.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
