// 24 Feb 2025

// Package alnstat does simple, common calculations on the columns of
// an alignment: symbol usage per site, entropy, gap fraction and a
// consensus row. The consensus can be appended to the alignment as a
// marker row, which is the main way marker rows come into being here.
//
// Tallies live in a matrix.FMatrix2d. counts.Mat looks like
// [number_of_symbols][length_of_alignment]. We store float32, since
// the counts will usually be normalised to fractions later and we can
// avoid allocating a second matrix.
package alnstat

import (
	"errors"
	"fmt"
	"math"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/alnmat/pkg/aln"
	"github.com/andrew-torda/alnmat/pkg/common"
)

// We only accept ascii characters, so anything bigger is not valid.
const MaxSym uint8 = 127

const badMap = math.MaxUint8 // marks a symbol as not seen

// A marker to say what kind of sequences we have, protein, DNA, ...
type SeqType byte

const (
	Unknown SeqType = iota // not a protein or nucleotide
	Protein
	DNA
	RNA
	Ntide // nucleotide, but could be DNA or RNA
)

// SiteCounts holds the per-site symbol tallies for one alignment,
// along with the little maps that say which matrix row belongs to
// which symbol. Case is folded while counting, so "a" and "A" land in
// the same row.
type SiteCounts struct {
	symUsed  [MaxSym]bool  // which symbols appear at all
	mapping  [MaxSym]uint8 // mapping['C'] is the matrix row used for C
	revmap   []uint8       // revmap[2] is the symbol in row 2
	counts   *matrix.FMatrix2d
	nseq     int
	ncol     int
	freqKnwn bool // have counts been turned into fractions ?
}

// upcase folds one ascii byte to upper case.
func upcase(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// Count tallies how many of each symbol appear at each site. Marker
// rows are annotations, not observations, so they are left out.
func Count(a *aln.Alignment) (*SiteCounts, error) {
	if a.NSamples() == 0 {
		return nil, errors.New("alnstat: alignment has no samples")
	}
	sc := &SiteCounts{nseq: a.NSamples(), ncol: a.NCols()}
	for i := 0; i < a.NSamples(); i++ {
		r, err := a.SampleAt(i)
		if err != nil {
			return nil, err
		}
		for j, c := range r.Seq {
			if c >= MaxSym {
				return nil, fmt.Errorf("alnstat: bad symbol %q at site %d in %s",
					c, j, r.Id)
			}
			sc.symUsed[upcase(c)] = true
		}
	}
	sc.mapsyms()

	sc.counts = matrix.NewFMatrix2d(len(sc.revmap), sc.ncol)
	for i := 0; i < a.NSamples(); i++ {
		r, _ := a.SampleAt(i)
		for j, c := range r.Seq {
			sc.counts.Mat[sc.mapping[upcase(c)]][j]++
		}
	}
	return sc, nil
}

// mapsyms builds the symbol <-> row maps from the used-symbol set.
func (sc *SiteCounts) mapsyms() {
	for i := range sc.mapping {
		sc.mapping[i] = badMap // trap errors later
	}
	var n uint8
	for i := range sc.symUsed {
		if sc.symUsed[i] {
			sc.mapping[i] = n
			sc.revmap = append(sc.revmap, uint8(i))
			n++
		}
	}
}

// GetType looks at the symbols used and returns its best guess as to
// what kind of sequences we have.
func (sc *SiteCounts) GetType() SeqType {
	protType := []byte{
		'D', 'E', 'F', 'H', 'I', 'K', 'L', 'M',
		'N', 'P', 'Q', 'R', 'S', 'V', 'W', 'Y'}

	used := sc.symUsed
	for _, c := range protType { // If we see an amino acid code,
		if used[c] { //             just say protein.
			return Protein
		}
	}
	if used['T'] && used['U'] {
		return Ntide
	}
	// ACG, but neither T nor U: a nucleotide, but we cannot
	// tell if it is RNA or DNA.
	if used['A'] && used['C'] && used['G'] && !used['T'] && !used['U'] {
		return Ntide
	}
	if used['T'] {
		return DNA
	}
	if used['U'] {
		return RNA
	}
	return Unknown
}

// LogBase returns the base for entropy logarithms. For a nucleotide
// or protein alignment we know the alphabet size. Otherwise it is the
// number of symbols we saw.
func (sc *SiteCounts) LogBase(gapsAreChar bool) int {
	var nSym int
	switch sc.GetType() {
	case DNA, RNA, Ntide:
		nSym = 4
	case Protein:
		nSym = 20
	default:
		nSym = len(sc.revmap)
		if gapsAreChar {
			return nSym
		}
		if sc.mapping[common.GapChar] != badMap && nSym > 1 {
			nSym-- // do not count the gap as a symbol
		}
		return nSym
	}
	if gapsAreChar {
		nSym++ // alphabet plus the gap character
	}
	return nSym
}

// Frac converts counts to normalised frequencies. If symbol A occurs
// twice among five rows, its entry goes from 2 to 2/5 = 0.4.
// If gapsAreChar is false, gaps are removed from the totals, so a
// symbol's fraction is the fraction of non-gaps at that site, while
// the gap row keeps its fraction of the original total. The non-gap
// fractions then add up to 1, with a bit extra from the gaps, which is
// what you want when plotting.
func (sc *SiteCounts) Frac(gapsAreChar bool) {
	if sc.freqKnwn {
		return
	}
	counts := sc.counts
	gappos := sc.mapping[common.GapChar]
	thereAreGaps := gappos != badMap
	nrow, ncol := counts.Size()

	total := make([]float32, ncol) // total observations at each site
	for icol := 0; icol < ncol; icol++ {
		for irow := 0; irow < nrow; irow++ {
			total[icol] += counts.Mat[irow][icol]
		}
	}
	var savedGapFrac []float32
	if thereAreGaps && !gapsAreChar {
		savedGapFrac = make([]float32, ncol)
		for icol := range savedGapFrac {
			savedGapFrac[icol] = counts.Mat[gappos][icol] / total[icol]
			total[icol] -= counts.Mat[gappos][icol]
		}
	}
	for icol := 0; icol < ncol; icol++ {
		for irow := 0; irow < nrow; irow++ {
			if total[icol] != 0 {
				counts.Mat[irow][icol] /= total[icol]
			}
		}
	}
	// The gaps have to be corrected. They are a fraction of the
	// original site totals.
	for icol := range savedGapFrac {
		counts.Mat[gappos][icol] = savedGapFrac[icol]
	}
	sc.freqKnwn = true
}

// Entropy calculates per-site entropy into entropy, which the caller
// allocates with one entry per site. Gaps are either a character in
// their own right or ignored.
func (sc *SiteCounts) Entropy(gapsAreChar bool, entropy []float32) {
	sc.Frac(gapsAreChar)
	logbase := sc.LogBase(gapsAreChar)
	if logbase < 2 {
		logbase = 2 // one-symbol alignments have zero entropy anyway
	}
	logfac := 1.0 / math.Log(float64(logbase))
	iBadRow := -1
	if !gapsAreChar && sc.mapping[common.GapChar] != badMap {
		iBadRow = int(sc.mapping[common.GapChar])
	}
	nrow, ncol := sc.counts.Size()
	for icol := 0; icol < ncol; icol++ {
		total := 0.0
		for irow := 0; irow < nrow; irow++ {
			if irow == iBadRow {
				continue
			}
			f := float64(sc.counts.Mat[irow][icol])
			if f == 0.0 {
				continue
			}
			total += f * math.Log(f) * logfac
		}
		entropy[icol] = float32(math.Abs(total))
	}
}

// GapFrac returns the fraction of gap characters at each site. No
// gaps anywhere means a nil slice, quietly.
func (sc *SiteCounts) GapFrac() []float32 {
	sc.Frac(true)
	gappos := sc.mapping[common.GapChar]
	if gappos == badMap {
		return nil
	}
	return sc.counts.Mat[gappos]
}

// Consensus returns the most frequent non-gap symbol at each site. A
// site where the winner's fraction of the rows does not reach
// threshold, or where everybody has a gap, gets a gap character.
func Consensus(a *aln.Alignment, threshold float64) ([]byte, error) {
	sc, err := Count(a)
	if err != nil {
		return nil, err
	}
	out := make([]byte, sc.ncol)
	for icol := 0; icol < sc.ncol; icol++ {
		best, bestCount := common.GapChar, float32(0)
		for irow, sym := range sc.revmap {
			if sym == common.GapChar {
				continue
			}
			if c := sc.counts.Mat[irow][icol]; c > bestCount {
				best, bestCount = sym, c
			}
		}
		if float64(bestCount)/float64(sc.nseq) < threshold {
			best = common.GapChar
		}
		out[icol] = best
	}
	return out, nil
}

// AddConsensusMarker computes the consensus and appends it to the
// alignment as a marker row under the given id.
func AddConsensusMarker(a *aln.Alignment, id string, threshold float64) error {
	cons, err := Consensus(a, threshold)
	if err != nil {
		return err
	}
	return a.AppendMarker(id, "consensus", cons)
}
