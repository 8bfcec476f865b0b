// core/kmer/kmer.go

// Package kmer counts overlapping fixed-length windows in DNA sequences.
package kmer

import (
	"sort"
	"strings"
)

// Count tallies every overlapping window of length k in s. Keys are
// lowercased; a sequence shorter than k yields an empty map.
func Count(s string, k int) map[string]int {
	out := make(map[string]int)
	if k <= 0 || len(s) < k {
		return out
	}
	s = strings.ToLower(s)
	for i := 0; i+k <= len(s); i++ {
		out[s[i:i+k]]++
	}
	return out
}

// Merge adds src counts into dst and returns dst. Element-wise sum, so
// merging is associative and commutative.
func Merge(dst, src map[string]int) map[string]int {
	if dst == nil {
		dst = make(map[string]int, len(src))
	}
	for km, n := range src {
		dst[km] += n
	}
	return dst
}

// Entry is one ranked k-mer.
type Entry struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// Top returns the n highest-count entries, ties broken by lexical k-mer
// order so the ranking is deterministic. n <= 0 returns every entry.
func Top(counts map[string]int, n int) []Entry {
	entries := make([]Entry, 0, len(counts))
	for km, c := range counts {
		entries = append(entries, Entry{Kmer: km, Count: c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Kmer < entries[j].Kmer
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
