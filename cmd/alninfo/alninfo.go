// 10 Mar 2025
// Print the dimensions of an alignment.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/alnmat/pkg/alninfo"
	. "github.com/andrew-torda/alnmat/pkg/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] [infile [outfile]]")
	flag.PrintDefaults()
}

func main() {
	var flags alninfo.CmdFlag
	var infile, outfile string

	flag.BoolVar(&flags.Fast, "fast", false, "only count records, needs a real file")
	flag.BoolVar(&flags.Ids, "ids", false, "list sample and marker identifiers")
	flag.StringVar(&flags.MarkerKw, "marker-kw", "", "substring marking annotation records")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := alninfo.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
