// Reader for fasta format files.
// The shape is a small lexer feeding a two-state machine. Items are
// terminated by a newline while we are in a comment and by a ">" while
// we are in a sequence. Rows go straight into an aln.Alignment, so the
// uniform-length and duplicate-id checks happen here, at ingestion,
// before anybody gets to see a half-built alignment.

package fasta

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/andrew-torda/alnmat/pkg/aln"
	"github.com/andrew-torda/alnmat/pkg/common"
	"github.com/andrew-torda/alnmat/pkg/white"
)

const NL = '\n'

// An item is one chunk of input. The last item of a stream has err
// set if the reader broke, which is how a read failure crosses from
// the lexer goroutine to the state machine. l.err itself belongs to
// the state machine alone.
type item struct {
	data     []byte
	complete bool
	err      error
}

type lexer struct {
	input    []byte
	ichan    chan *item
	rdr      io.Reader
	a        *aln.Alignment
	opts     *Options
	itempool sync.Pool
	cmmt     []byte // partial comment
	seq      []byte // partial sequence
	inRec    bool   // a comment has been seen, a record is pending
	term     byte
	err      error // written only by the state machine goroutine
}

const defaultRdSize = 4 * 1024

var rdsize int = defaultRdSize

// setFastaRdSize is only used during testing, to provoke all the
// end-of-buffer cases with small files.
func setFastaRdSize(i int) {
	if i <= 2 {
		panic("setFastaRdSize given buffer length of 2 or less")
	}
	rdsize = i
}

func newItem() interface{} { return new(item) }

// next reads the input and sends items down ichan. An item ends at
// l.term, at the end of the buffer or at end of input. The last item
// is a flush, then the channel is closed.
func (l *lexer) next() {
	l.itempool.New = newItem
	for {
		if len(l.input) == 0 {
			buf := make([]byte, rdsize)
			n, err := l.rdr.Read(buf)
			if n == 0 {
				it := l.itempool.Get().(*item)
				it.data, it.complete, it.err = nil, true, nil
				if err != nil && err != io.EOF {
					it.err = err
				}
				l.ichan <- it // flush whatever is pending
				close(l.ichan)
				return
			}
			l.input = buf[:n]
		}
		it := l.itempool.Get().(*item)
		it.err = nil
		if ndx := bytes.IndexByte(l.input, l.term); ndx == -1 {
			it.data = l.input // no terminator, send what we have
			it.complete = false
			l.input = nil
		} else {
			it.data = l.input[:ndx]
			it.complete = true
			l.input = l.input[ndx+1:]
			if l.term == NL {
				l.term = common.CmmtChar
			} else {
				l.term = NL
			}
		}
		l.ichan <- it
	}
}

// splitCmmt takes a raw comment line and gives back the identifier
// (first word) and the description (the rest).
func splitCmmt(cmmt []byte) (id, desc string) {
	s := strings.TrimLeft(string(cmmt), "> \t")
	if i := strings.IndexByte(s, ' '); i != -1 {
		return s[:i], strings.TrimLeft(s[i+1:], " ")
	}
	return s, ""
}

// commit finishes the pending record. Depending on the marker keyword
// it becomes a sample or a marker row.
func (l *lexer) commit() error {
	id, desc := splitCmmt(l.cmmt)
	if len(l.seq) == 0 {
		return errors.New("fasta: zero length sequence after " + string(l.cmmt))
	}
	var err error
	if l.opts.MarkerKw != "" && strings.Contains(id, l.opts.MarkerKw) {
		err = l.a.AppendMarker(id, desc, l.seq)
	} else {
		err = l.a.AppendSample(id, desc, l.seq)
	}
	l.cmmt, l.seq, l.inRec = nil, nil, false
	return err
}

type stateFn func(*lexer) stateFn

// gcmmt is the state while we read a comment line.
func gcmmt(l *lexer) stateFn {
	it := <-l.ichan
	if it == nil {
		return nil
	}
	defer l.itempool.Put(it)
	if it.err != nil {
		l.err = it.err
		return nil
	}

	l.cmmt = append(l.cmmt, it.data...)
	if it.complete {
		if len(l.cmmt) > 0 {
			l.inRec = true
		}
		return gseq
	}
	return gcmmt
}

// gseq is the state while we read the sequence itself.
func gseq(l *lexer) stateFn {
	it := <-l.ichan
	if it == nil { // closed channel, nothing pending
		if l.inRec {
			l.err = l.commit()
		}
		return nil
	}
	defer l.itempool.Put(it)
	if it.err != nil { // a broken reader, the record is not trustworthy
		l.err = it.err
		return nil
	}

	white.Remove(&it.data)
	l.seq = append(l.seq, it.data...)
	if it.complete {
		if l.err = l.commit(); l.err != nil {
			return nil
		}
		return gcmmt
	}
	return gseq
}

// ReadAln reads fasta formatted input into a fresh alignment. If
// opts.MarkerKw is set, records whose id contains the keyword become
// marker rows rather than samples.
func ReadAln(rdr io.Reader, opts *Options) (*aln.Alignment, error) {
	a := aln.New()
	l := lexer{rdr: rdr, ichan: make(chan *item, 2), a: a, opts: opts, term: NL}

	go l.next()
	for state := gcmmt; state != nil; {
		state = state(&l)
	}
	for range l.ichan { // let the lexer goroutine finish if we bailed early
	}
	if l.err != nil {
		return nil, l.err
	}
	if a.NSamples()+a.NMarkers() == 0 {
		return nil, errors.New("fasta: no sequences found")
	}
	return a, nil
}
