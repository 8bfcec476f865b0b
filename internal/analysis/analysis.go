// internal/analysis/analysis.go

// Package analysis runs the full per-sequence pass: validation, nucleotide
// and k-mer tallies, palindrome detection, GC content and motif runs.
package analysis

import (
	"dnastat-core/kmer"
	"dnastat-core/palindrome"
	"dnastat-core/seq"
	"dnastat-core/stats"
)

// Motifs whose longest contiguous runs are reported.
const (
	cgMotif = "CG"
	atMotif = "AT"
)

// Config selects what gets computed per sequence.
type Config struct {
	KmerSizes  []int
	Palindrome palindrome.Config
}

// DefaultKmerSizes are the window sizes reported by default.
func DefaultKmerSizes() []int { return []int{2, 3, 4, 5} }

// Analyzer analyzes one sequence at a time. It is stateless apart from its
// configuration, so a single value is safe to share across workers.
type Analyzer struct {
	cfg Config
}

// New returns an Analyzer for cfg. A nil KmerSizes list gets the defaults.
func New(cfg Config) *Analyzer {
	if len(cfg.KmerSizes) == 0 {
		cfg.KmerSizes = DefaultKmerSizes()
	}
	return &Analyzer{cfg: cfg}
}

// Analyze classifies and analyzes the sequence at corpus position idx.
// Invalid sequences yield a result carrying only the index and flag; they
// contribute nothing to any statistic.
func (a *Analyzer) Analyze(idx int, raw string) stats.SequenceResult {
	norm := seq.Normalize(raw)
	if !seq.Valid(norm) {
		return stats.SequenceResult{Index: idx}
	}

	r := stats.SequenceResult{
		Index:       idx,
		Valid:       true,
		Nucleotides: seq.CountNucleotides(norm),
		Kmers:       make(map[int]map[string]int, len(a.cfg.KmerSizes)),
		GC:          seq.GCContent(norm),
		LongestCG:   seq.LongestRun(norm, cgMotif),
		LongestAT:   seq.LongestRun(norm, atMotif),
	}
	for _, k := range a.cfg.KmerSizes {
		r.Kmers[k] = kmer.Count(norm, k)
	}
	for _, rec := range palindrome.Find(norm, a.cfg.Palindrome) {
		r.Palindromes = append(r.Palindromes, stats.Palindrome{SeqIndex: idx, Record: rec})
	}
	return r
}
