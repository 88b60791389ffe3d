// 18 Feb 2025

package fasta_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/alnmat/pkg/aln"
	"github.com/andrew-torda/alnmat/pkg/common"
	"github.com/andrew-torda/alnmat/pkg/fasta"
)

func TestReadBasic(t *testing.T) {
	in := `>s1 first sample
ACGT
> s2
AC-A
`
	a, err := fasta.ReadAln(strings.NewReader(in), &fasta.Options{})
	require.NoError(t, err)
	require.Equal(t, 2, a.NSamples())
	require.Equal(t, 4, a.NCols())
	require.Equal(t, []string{"s1", "s2"}, a.SampleIds())
	require.Equal(t, []string{"ACGT", "AC-A"}, a.Sequences())

	r, err := a.SampleAt(0)
	require.NoError(t, err)
	require.Equal(t, "first sample", r.Desc)
}

// TestReadWhite checks that white space buried in sequence lines
// disappears while gap characters stay.
func TestReadWhite(t *testing.T) {
	in := ">s1\nAC G\n TA\n>s2\n A\tC-A \r\nG\n"
	a, err := fasta.ReadAln(strings.NewReader(in), &fasta.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{"ACGTA", "AC-AG"}, a.Sequences())
}

func TestMarkerKw(t *testing.T) {
	in := `>s1
ACGT
>marker_0 consensus
AC-T
>s2
ACGA
`
	a, err := fasta.ReadAln(strings.NewReader(in), &fasta.Options{MarkerKw: "marker"})
	require.NoError(t, err)
	require.Equal(t, 2, a.NSamples())
	require.Equal(t, 1, a.NMarkers())
	require.Equal(t, []string{"s1", "s2"}, a.SampleIds())
	require.Equal(t, []string{"marker_0"}, a.MarkerIds())

	// Without the keyword the marker is just another sample.
	a, err = fasta.ReadAln(strings.NewReader(in), &fasta.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, a.NSamples())
	require.Equal(t, 0, a.NMarkers())
}

func TestReadSmallBuffers(t *testing.T) {
	defer fasta.SetFastaRdSize(4 * 1024)
	in := ">s1 a longer comment than the buffer\n" + strings.Repeat("A", 100) +
		"\n>s2\n" + strings.Repeat("C", 100) + "\n"
	for _, bs := range []int{3, 4, 5, 7, 64, 512} {
		fasta.SetFastaRdSize(bs)
		a, err := fasta.ReadAln(strings.NewReader(in), &fasta.Options{})
		require.NoError(t, err, "buffer size %d", bs)
		require.Equal(t, 2, a.NSamples(), "buffer size %d", bs)
		require.Equal(t, 100, a.NCols(), "buffer size %d", bs)
	}
}

func TestReadErrors(t *testing.T) {
	bad := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"comment only", "> blah\n"},
		{"no data", "rubbish"},
		{"zero length seq", ">s1\n\n>s2\nAC\n"},
		{"uneven", ">s1\nACGT\n>s2\nACG\n"},
		{"duplicate id", ">s1\nAC\n>s1\nGT\n"},
	}
	for _, x := range bad {
		_, err := fasta.ReadAln(strings.NewReader(x.in), &fasta.Options{})
		require.Error(t, err, x.name)
	}
	_, err := fasta.ReadAln(strings.NewReader(">s1\nACGT\n>s2\nACG\n"), &fasta.Options{})
	require.ErrorIs(t, err, aln.ErrSeqLen)
	_, err = fasta.ReadAln(strings.NewReader(">s1\nAC\n>s1\nGT\n"), &fasta.Options{})
	require.ErrorIs(t, err, aln.ErrDupId)
}

// TestRoundTrip writes an alignment out and reads it back. The two
// must be equal, markers, descriptions and all.
func TestRoundTrip(t *testing.T) {
	a := aln.New()
	require.NoError(t, a.AppendSample("s1", "first one", []byte("ACGTACGT")))
	require.NoError(t, a.AppendSample("s2", "", []byte("ACG-ACGA")))
	require.NoError(t, a.AppendMarker("marker_cons", "majority", []byte("ACG.ACG.")))

	opts := &fasta.Options{MarkerKw: "marker"}
	var b bytes.Buffer
	require.NoError(t, fasta.WriteAln(&b, a, opts))

	back, err := fasta.ReadAln(&b, opts)
	require.NoError(t, err)
	require.True(t, a.Equal(back), "round trip changed the alignment:\n%s", b.String())
}

// TestWriteWrap checks the 60 column line wrap on output.
func TestWriteWrap(t *testing.T) {
	a, err := aln.FromRecords([]string{"s1"}, []string{strings.Repeat("A", 130)})
	require.NoError(t, err)
	var b bytes.Buffer
	require.NoError(t, fasta.WriteAln(&b, a, &fasta.Options{}))
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	require.Equal(t, []int{len(">s1"), 60, 60, 10}, []int{
		len(lines[0]), len(lines[1]), len(lines[2]), len(lines[3])})

	back, err := fasta.ReadAln(&b, &fasta.Options{})
	require.NoError(t, err)
	require.True(t, a.Equal(back))
}

func TestSkipMarkers(t *testing.T) {
	a, err := aln.FromRecords([]string{"s1"}, []string{"ACGT"})
	require.NoError(t, err)
	require.NoError(t, a.AppendMarker("m", "", []byte("....")))
	var b bytes.Buffer
	require.NoError(t, fasta.WriteAln(&b, a, &fasta.Options{SkipMarkers: true}))
	require.NotContains(t, b.String(), ">m")
}

func TestReadfileAndNumRecords(t *testing.T) {
	in := ">s1\nACGT\n>s2\nACGA\n>s3\nACGG\n"
	fname, err := common.WrtTemp(in)
	require.NoError(t, err)
	defer os.Remove(fname)

	a, err := fasta.Readfile(fname, &fasta.Options{})
	require.NoError(t, err)
	require.Equal(t, 3, a.NSamples())

	n, err := fasta.NumRecords(fname)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = fasta.Readfile("/no/such/file/anywhere", &fasta.Options{})
	require.Error(t, err)
}

// brokenRdr delivers its data and then fails, like a network source
// going away mid file.
type brokenRdr struct {
	data []byte
}

func (r *brokenRdr) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, errors.New("connection gone")
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestReadBrokenReader(t *testing.T) {
	rdr := &brokenRdr{data: []byte(">s1\nACGT\n>s2\nAC")}
	_, err := fasta.ReadAln(rdr, &fasta.Options{})
	require.ErrorContains(t, err, "connection gone")
}

// chunkRdr doles its data out a few bytes per call and then fails, so
// the failure arrives while earlier records are still in flight
// between the lexer and the state machine.
type chunkRdr struct {
	data  []byte
	chunk int
	fail  error
}

func (r *chunkRdr) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.fail
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

// A reader dying partway through a big file must surface as an error,
// never as a short alignment that looks like a success.
func TestReadErrorMidStream(t *testing.T) {
	var in bytes.Buffer
	for i := 0; i < 40; i++ {
		fmt.Fprintf(&in, ">s%d\nACGT\n", i)
	}
	rdr := &chunkRdr{data: in.Bytes(), chunk: 5, fail: errors.New("disk gone")}
	a, err := fasta.ReadAln(rdr, &fasta.Options{})
	require.ErrorContains(t, err, "disk gone")
	require.Nil(t, a)
}
