// Let the tests fiddle with the reader's buffer size so small inputs
// still exercise the end-of-buffer paths.

package fasta

func SetFastaRdSize(i int) { setFastaRdSize(i) }
