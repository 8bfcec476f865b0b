// core/seq/seq.go
package seq

import "strings"

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['C'] = 'G'
	complement['G'] = 'C'
}

// Complement returns the Watson-Crick complement of b, or 0 if b is not an
// uppercase A/C/G/T. Callers validate first.
func Complement(b byte) byte { return complement[b] }

// RevComp returns the reverse complement of s. Bases outside A/C/G/T come
// back as 'N'.
func RevComp(s []byte) []byte {
	n := len(s)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[s[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}

// Normalize trims surrounding whitespace and uppercases bases.
func Normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Valid reports whether s, case-normalized, is a non-empty run of A/C/G/T.
// The empty string is invalid.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		if complement[b] == 0 {
			return false
		}
	}
	return true
}

// Counts holds per-nucleotide tallies for one or more sequences.
type Counts struct {
	A int
	C int
	G int
	T int
}

// Add accumulates other into c.
func (c *Counts) Add(other Counts) {
	c.A += other.A
	c.C += other.C
	c.G += other.G
	c.T += other.T
}

// Total returns the number of counted bases.
func (c Counts) Total() int { return c.A + c.C + c.G + c.T }

// GC returns the fraction of counted bases that are G or C.
func (c Counts) GC() float64 {
	t := c.Total()
	if t == 0 {
		return 0
	}
	return float64(c.G+c.C) / float64(t)
}

// CountNucleotides tallies A/C/G/T in s, case-insensitively. Other bytes
// are ignored.
func CountNucleotides(s string) Counts {
	var c Counts
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A', 'a':
			c.A++
		case 'C', 'c':
			c.C++
		case 'G', 'g':
			c.G++
		case 'T', 't':
			c.T++
		}
	}
	return c
}

// GCContent returns the fraction of bases in s that are G or C; 0 for the
// empty string.
func GCContent(s string) float64 {
	return CountNucleotides(s).GC()
}

// LongestRun returns the length in bases of the longest contiguous run of
// back-to-back copies of motif within s ("CGCGCG" scores 6 for motif "CG").
func LongestRun(s, motif string) int {
	if motif == "" || len(s) < len(motif) {
		return 0
	}
	best := 0
	for i := 0; i < len(s); {
		if !strings.HasPrefix(s[i:], motif) {
			i++
			continue
		}
		j := i
		for strings.HasPrefix(s[j:], motif) {
			j += len(motif)
		}
		if run := j - i; run > best {
			best = run
		}
		i = j
	}
	return best
}
