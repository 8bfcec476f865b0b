// core/seq/seq_test.go
package seq

import (
	"bytes"
	"testing"
)

func TestRevCompSimple(t *testing.T) {
	got := RevComp([]byte("AGTC"))
	want := []byte("GACT")
	if !bytes.Equal(got, want) {
		t.Errorf("RevComp(AGTC) = %s, want %s", got, want)
	}
}

func TestRevCompSelfInverse(t *testing.T) {
	in := []byte("AATTCCGGACGT")
	if got := RevComp(RevComp(in)); !bytes.Equal(got, in) {
		t.Errorf("RevComp(RevComp(%s)) = %s", in, got)
	}
}

func TestRevCompEmpty(t *testing.T) {
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should return nil")
	}
	if out := RevComp([]byte("")); len(out) != 0 {
		t.Errorf("RevComp(\"\") length = %d, want 0", len(out))
	}
}

func TestComplementDomain(t *testing.T) {
	pairs := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	for b, want := range pairs {
		if got := Complement(b); got != want {
			t.Errorf("Complement(%c) = %c, want %c", b, got, want)
		}
	}
	for _, b := range []byte{'N', 'X', 'a', ' ', 0} {
		if got := Complement(b); got != 0 {
			t.Errorf("Complement(%q) = %q, want 0", b, got)
		}
	}
}

func TestValid(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"ACGT", true},
		{"acgt", true},
		{"AcGt", true},
		{"", false},
		{"ACGN", false},
		{"ACG T", false},
		{"1234", false},
	}
	for _, c := range cases {
		if got := Valid(c.in); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := Normalize("  acgT\n"); got != "ACGT" {
		t.Errorf("Normalize = %q, want ACGT", got)
	}
}

func TestCountNucleotides(t *testing.T) {
	c := CountNucleotides("AAccGt")
	if c.A != 2 || c.C != 2 || c.G != 1 || c.T != 1 {
		t.Errorf("CountNucleotides(AAccGt) = %+v", c)
	}
	if c.Total() != 6 {
		t.Errorf("Total = %d, want 6", c.Total())
	}
}

func TestGCContent(t *testing.T) {
	if got := GCContent("GGCC"); got != 1.0 {
		t.Errorf("GCContent(GGCC) = %v, want 1", got)
	}
	if got := GCContent("ATGC"); got != 0.5 {
		t.Errorf("GCContent(ATGC) = %v, want 0.5", got)
	}
	if got := GCContent(""); got != 0 {
		t.Errorf("GCContent(\"\") = %v, want 0", got)
	}
}

func TestLongestRun(t *testing.T) {
	cases := []struct {
		s, motif string
		want     int
	}{
		{"CGCGCGAT", "CG", 6},
		{"ATCGATCG", "CG", 2},
		{"ATATAT", "AT", 6},
		{"GGGG", "CG", 0},
		{"", "CG", 0},
		{"CG", "CG", 2},
	}
	for _, c := range cases {
		if got := LongestRun(c.s, c.motif); got != c.want {
			t.Errorf("LongestRun(%q, %q) = %d, want %d", c.s, c.motif, got, c.want)
		}
	}
}
