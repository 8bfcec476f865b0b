// core/stats/stats.go

// Package stats defines the per-sequence partial result produced by one
// worker and the corpus-wide aggregate built by merging partials. Merging
// is associative and commutative, so the aggregate is independent of how
// sequences were partitioned across workers.
package stats

import (
	"sort"

	"dnastat-core/kmer"
	"dnastat-core/palindrome"
	"dnastat-core/seq"
)

// Palindrome ties a palindrome record to the corpus position of the
// sequence it was found in.
type Palindrome struct {
	SeqIndex int
	palindrome.Record
}

// SequenceResult is the immutable partial for one sequence.
type SequenceResult struct {
	Index       int
	Valid       bool
	Nucleotides seq.Counts
	Kmers       map[int]map[string]int
	Palindromes []Palindrome
	GC          float64
	LongestCG   int
	LongestAT   int
}

// Aggregate is the corpus-wide accumulator.
type Aggregate struct {
	TotalSequences   int
	InvalidSequences int
	Nucleotides      seq.Counts
	Kmers            map[int]map[string]int
	Palindromes      []Palindrome
	LongestCG        int
	LongestAT        int
}

// NewAggregate returns an empty accumulator.
func NewAggregate() *Aggregate {
	return &Aggregate{Kmers: make(map[int]map[string]int)}
}

// Absorb folds one per-sequence result into a. Invalid sequences count
// toward the totals only.
func (a *Aggregate) Absorb(r SequenceResult) {
	a.TotalSequences++
	if !r.Valid {
		a.InvalidSequences++
		return
	}
	a.Nucleotides.Add(r.Nucleotides)
	for k, counts := range r.Kmers {
		a.Kmers[k] = kmer.Merge(a.Kmers[k], counts)
	}
	a.Palindromes = append(a.Palindromes, r.Palindromes...)
	if r.LongestCG > a.LongestCG {
		a.LongestCG = r.LongestCG
	}
	if r.LongestAT > a.LongestAT {
		a.LongestAT = r.LongestAT
	}
}

// Merge folds b into a. Commutes with Absorb order up to SortPalindromes.
func (a *Aggregate) Merge(b *Aggregate) {
	a.TotalSequences += b.TotalSequences
	a.InvalidSequences += b.InvalidSequences
	a.Nucleotides.Add(b.Nucleotides)
	for k, counts := range b.Kmers {
		a.Kmers[k] = kmer.Merge(a.Kmers[k], counts)
	}
	a.Palindromes = append(a.Palindromes, b.Palindromes...)
	if b.LongestCG > a.LongestCG {
		a.LongestCG = b.LongestCG
	}
	if b.LongestAT > a.LongestAT {
		a.LongestAT = b.LongestAT
	}
}

// SortPalindromes applies the canonical ranking: length descending, ties
// by sequence index then start offset. After sorting, the aggregate is
// identical regardless of the order partials were absorbed in.
func (a *Aggregate) SortPalindromes() {
	sort.Slice(a.Palindromes, func(i, j int) bool {
		pi, pj := a.Palindromes[i], a.Palindromes[j]
		if pi.Length != pj.Length {
			return pi.Length > pj.Length
		}
		if pi.SeqIndex != pj.SeqIndex {
			return pi.SeqIndex < pj.SeqIndex
		}
		return pi.Start < pj.Start
	})
}

// Longest returns the top-ranked palindrome; ok is false when none were
// found. Call SortPalindromes first.
func (a *Aggregate) Longest() (Palindrome, bool) {
	if len(a.Palindromes) == 0 {
		return Palindrome{}, false
	}
	return a.Palindromes[0], true
}

// TopKmers returns the n highest-count k-mers for window size k.
func (a *Aggregate) TopKmers(k, n int) []kmer.Entry {
	return kmer.Top(a.Kmers[k], n)
}

// KmerSizes returns the window sizes present, ascending.
func (a *Aggregate) KmerSizes() []int {
	sizes := make([]int, 0, len(a.Kmers))
	for k := range a.Kmers {
		sizes = append(sizes, k)
	}
	sort.Ints(sizes)
	return sizes
}

// GCContent is the corpus-wide fraction of G/C bases over valid sequences.
func (a *Aggregate) GCContent() float64 { return a.Nucleotides.GC() }
