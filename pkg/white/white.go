// Package white removes white space from byte slices, in place.
// The fasta reader calls it on every chunk, so it must not allocate.

package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove squeezes the white space out of *s. The slice is shortened,
// the capacity is untouched.
func Remove(s *[]byte) {
	t := *s
	n := 0
	for _, c := range t {
		if !asciiSpace[c] {
			t[n] = c
			n++
		}
	}
	*s = t[:n]
}
