// core/kmer/kmer_test.go
package kmer

import (
	"reflect"
	"testing"
)

func TestCountOverlappingWindows(t *testing.T) {
	got := Count("AAGG", 2)
	want := map[string]int{"aa": 1, "ag": 1, "gg": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Count(AAGG, 2) = %v, want %v", got, want)
	}
}

func TestCountCaseInsensitive(t *testing.T) {
	got := Count("aAgG", 2)
	want := map[string]int{"aa": 1, "ag": 1, "gg": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Count(aAgG, 2) = %v, want %v", got, want)
	}
}

func TestCountShortSequence(t *testing.T) {
	if got := Count("AC", 3); len(got) != 0 {
		t.Errorf("Count(AC, 3) = %v, want empty", got)
	}
	if got := Count("ACGT", 0); len(got) != 0 {
		t.Errorf("Count(ACGT, 0) = %v, want empty", got)
	}
}

func TestCountRepeats(t *testing.T) {
	got := Count("AAAA", 2)
	if got["aa"] != 3 {
		t.Errorf("Count(AAAA, 2)[aa] = %d, want 3", got["aa"])
	}
}

func TestMergeSums(t *testing.T) {
	a := map[string]int{"aa": 2, "cg": 1}
	b := map[string]int{"aa": 1, "tt": 4}
	got := Merge(a, b)
	want := map[string]int{"aa": 3, "cg": 1, "tt": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge = %v, want %v", got, want)
	}
}

func TestMergeNilDst(t *testing.T) {
	got := Merge(nil, map[string]int{"aa": 1})
	if got["aa"] != 1 {
		t.Errorf("Merge(nil, ...) = %v", got)
	}
}

func TestTopOrderAndTies(t *testing.T) {
	counts := map[string]int{"tt": 3, "aa": 3, "cg": 5, "gc": 1}
	got := Top(counts, 3)
	want := []Entry{{"cg", 5}, {"aa", 3}, {"tt", 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}
}

func TestTopUnlimited(t *testing.T) {
	counts := map[string]int{"aa": 1, "cc": 2}
	if got := Top(counts, 0); len(got) != 2 {
		t.Errorf("Top(n=0) returned %d entries, want 2", len(got))
	}
}
