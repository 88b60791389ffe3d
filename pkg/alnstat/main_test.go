// 11 Mar 2025

package alnstat_test

import (
	"os"
	"strings"
	"testing"

	. "github.com/andrew-torda/alnmat/pkg/alnstat"
	"github.com/andrew-torda/alnmat/pkg/common"
	"github.com/andrew-torda/alnmat/pkg/fasta"
)

const seqstring = `>s1
ACG-
>s2
ACGT
>s3
ACTT
`

func TestMymainCsv(t *testing.T) {
	infile, err := common.WrtTemp(seqstring)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(infile)
	outfile := infile + "_out"
	defer os.Remove(outfile)

	if err := Mymain(&CmdFlag{}, infile, outfile); err != nil {
		t.Fatal("Mymain:", err)
	}
	b, err := os.ReadFile(outfile)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 5 { // heading plus one line per site
		t.Fatal("csv came out as", lines)
	}
	if !strings.HasPrefix(lines[1], "0,0.00,1.00") {
		t.Fatal("conserved site line:", lines[1])
	}
	if !strings.HasSuffix(lines[4], "0.67") { // one gap in three rows
		t.Fatal("gapped site line:", lines[4])
	}
}

func TestMymainConsensus(t *testing.T) {
	infile, err := common.WrtTemp(seqstring)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(infile)
	csvout := infile + "_csv"
	defer os.Remove(csvout)
	consout := infile + "_cons"
	defer os.Remove(consout)

	flags := &CmdFlag{Consensus: 0.5, ConsOut: consout}
	if err := Mymain(flags, infile, csvout); err != nil {
		t.Fatal("Mymain:", err)
	}
	a, err := fasta.Readfile(consout, &fasta.Options{MarkerKw: "consensus"})
	if err != nil {
		t.Fatal(err)
	}
	if a.NSamples() != 3 || a.NMarkers() != 1 {
		t.Fatal("dims", a.NSamples(), a.NMarkers())
	}
	m, err := a.MarkerAt(0)
	if err != nil {
		t.Fatal(err)
	}
	if string(m.Seq) != "ACGT" {
		t.Fatal("consensus row", string(m.Seq))
	}
}
