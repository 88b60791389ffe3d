// 12 Mar 2025
// Plot per-site entropy or gap content of an alignment as a png.

package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/andrew-torda/alnmat/pkg/alnplot"
	. "github.com/andrew-torda/alnmat/pkg/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[options] [infile [outfile.png]]")
	long := `Without a -font, the plot has bars but no text.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	var flags alnplot.CmdFlag
	var infile, outfile string

	flag.StringVar(&flags.Track, "track", "entropy", "what to plot, entropy or gapfrac")
	flag.BoolVar(&flags.GapsAreChar, "g", false, "gap is a valid symbol")
	flag.StringVar(&flags.MarkerKw, "marker-kw", "", "substring marking annotation records")
	flag.StringVar(&flags.FontPath, "font", "", "ttf file for title and labels")
	flag.StringVar(&flags.Title, "title", "", "plot title, needs -font")
	flag.IntVar(&flags.Width, "width", 0, "plot width in pixels")
	flag.IntVar(&flags.Height, "height", 0, "plot height in pixels")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}

	if err := alnplot.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
