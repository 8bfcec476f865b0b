// core/palindrome/palindrome.go

// Package palindrome finds maximal reverse-complement palindromic
// substrings in DNA sequences.
//
// A substring is a reverse-complement palindrome when it equals its own
// reverse complement. Under the A<->T, C<->G complement rule no base is its
// own complement, so only even-length matches exist; the finder therefore
// expands around the n-1 gap positions between bases and never tries base
// centers.
package palindrome

import (
	"bytes"

	"dnastat-core/seq"
)

const (
	DefaultMinLen      = 20
	DefaultMinDistinct = 3
)

// Config bounds which maximal matches become records.
type Config struct {
	MinLen      int // minimum record length, inclusive (0 = DefaultMinLen)
	MinDistinct int // minimum distinct bases in a record (0 = DefaultMinDistinct)
}

func (c Config) withDefaults() Config {
	if c.MinLen <= 0 {
		c.MinLen = DefaultMinLen
	}
	if c.MinDistinct <= 0 {
		c.MinDistinct = DefaultMinDistinct
	}
	return c
}

// Record is one maximal reverse-complement palindrome within a sequence.
type Record struct {
	Seq    string
	Start  int // offset of the first base
	End    int // exclusive
	Length int
}

// Find returns every maximal reverse-complement palindrome in s that meets
// cfg, one per gap center, in center order. Adjacent centers may yield
// overlapping records; each center's maximal match is kept independently.
// s must be a validated uppercase A/C/G/T string.
func Find(s string, cfg Config) []Record {
	cfg = cfg.withDefaults()
	n := len(s)
	if n < cfg.MinLen {
		return nil
	}
	var out []Record
	for c := 1; c < n; c++ {
		l, r := c-1, c
		for l >= 0 && r < n && s[l] == seq.Complement(s[r]) {
			l--
			r++
		}
		// Pre-failure bounds: the maximal match spans [l+1, r).
		start, end := l+1, r
		if end-start < cfg.MinLen {
			continue
		}
		if distinct(s[start:end]) < cfg.MinDistinct {
			continue
		}
		out = append(out, Record{
			Seq:    s[start:end],
			Start:  start,
			End:    end,
			Length: end - start,
		})
	}
	return out
}

// IsPalindrome reports whether s equals its own reverse complement. This is
// the direct definition the expand-around-center search must agree with.
func IsPalindrome(s string) bool {
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}
	return bytes.Equal([]byte(s), seq.RevComp([]byte(s)))
}

func distinct(s string) int {
	var a, c, g, t bool
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			a = true
		case 'C':
			c = true
		case 'G':
			g = true
		case 'T':
			t = true
		}
	}
	n := 0
	for _, seen := range []bool{a, c, g, t} {
		if seen {
			n++
		}
	}
	return n
}
