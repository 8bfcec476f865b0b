// internal/report/report.go

// Package report renders the corpus-wide aggregate as a markdown document
// or as structured JSON.
package report

import (
	"errors"
	"fmt"
	"io"
	"syscall"

	"dnastat-core/kmer"
	"dnastat-core/stats"
	"dnastat/internal/jsonutil"
)

// Options select how ranked outputs are cut down for display.
type Options struct {
	TopKmers       int // per-k table size
	TopPalindromes int // 0 = all records >= threshold
	MinPalindrome  int // threshold, for report wording only
}

// WriteMarkdown renders agg as the statistics report.
func WriteMarkdown(w io.Writer, agg *stats.Aggregate, o Options) error {
	var b Builder
	b.Header("DNA Statistics Report")
	b.Text(fmt.Sprintf("Total number sequences = %d", agg.TotalSequences))
	b.Text(fmt.Sprintf("Total number invalid sequences = %d", agg.InvalidSequences))

	b.Text("Total nucleotide counts:")
	b.Text(fmt.Sprintf("Adenine = %d", agg.Nucleotides.A))
	b.Text(fmt.Sprintf("Thymine = %d", agg.Nucleotides.T))
	b.Text(fmt.Sprintf("Guanine = %d", agg.Nucleotides.G))
	b.Text(fmt.Sprintf("Cytosine = %d", agg.Nucleotides.C))
	b.Text(fmt.Sprintf("GC content = %.4f", agg.GCContent()))
	b.Text(fmt.Sprintf("Longest CG run = %d bases", agg.LongestCG))
	b.Text(fmt.Sprintf("Longest AT run = %d bases", agg.LongestAT))

	for _, k := range agg.KmerSizes() {
		rows := [][]string{{fmt.Sprintf("k_mer (k%d)", k), "number"}}
		for _, e := range agg.TopKmers(k, o.TopKmers) {
			rows = append(rows, []string{e.Kmer, fmt.Sprintf("%d", e.Count)})
		}
		b.Table(rows)
	}

	if len(agg.Palindromes) == 0 {
		b.Text(fmt.Sprintf("No palindromes over %d base pairs were detected", o.MinPalindrome))
	} else {
		b.Text(fmt.Sprintf("Total palindromes over %d base pairs = %d",
			o.MinPalindrome, len(agg.Palindromes)))
		if lp, ok := agg.Longest(); ok {
			b.Text(fmt.Sprintf("The longest palindrome was %d(bp) and had a sequence of %s",
				lp.Length, lp.Seq))
		}
		rows := [][]string{{"Palindrome sequence", "length(bp)", "sequence index"}}
		for _, p := range rankedPalindromes(agg, o.TopPalindromes) {
			rows = append(rows, []string{p.Seq, fmt.Sprintf("%d", p.Length), fmt.Sprintf("%d", p.SeqIndex)})
		}
		b.Table(rows)
	}

	_, err := b.WriteTo(w)
	return err
}

// view is the JSON shape of the report.
type view struct {
	TotalSequences   int                     `json:"total_sequences"`
	InvalidSequences int                     `json:"invalid_sequences"`
	Nucleotides      nucleotideView          `json:"nucleotide_counts"`
	GCContent        float64                 `json:"gc_content"`
	LongestCGRun     int                     `json:"longest_cg_run"`
	LongestATRun     int                     `json:"longest_at_run"`
	TopKmers         map[string][]kmer.Entry `json:"top_kmers"`
	PalindromeCount  int                     `json:"palindrome_count"`
	Longest          *palindromeView         `json:"longest_palindrome,omitempty"`
	Palindromes      []palindromeView        `json:"palindromes"`
}

type nucleotideView struct {
	Adenine  int `json:"adenine"`
	Cytosine int `json:"cytosine"`
	Guanine  int `json:"guanine"`
	Thymine  int `json:"thymine"`
}

type palindromeView struct {
	Seq      string `json:"sequence"`
	Length   int    `json:"length"`
	SeqIndex int    `json:"sequence_index"`
	Start    int    `json:"start"`
}

// WriteJSON renders agg as indented JSON.
func WriteJSON(w io.Writer, agg *stats.Aggregate, o Options) error {
	v := view{
		TotalSequences:   agg.TotalSequences,
		InvalidSequences: agg.InvalidSequences,
		Nucleotides: nucleotideView{
			Adenine:  agg.Nucleotides.A,
			Cytosine: agg.Nucleotides.C,
			Guanine:  agg.Nucleotides.G,
			Thymine:  agg.Nucleotides.T,
		},
		GCContent:       agg.GCContent(),
		LongestCGRun:    agg.LongestCG,
		LongestATRun:    agg.LongestAT,
		TopKmers:        map[string][]kmer.Entry{},
		PalindromeCount: len(agg.Palindromes),
		Palindromes:     []palindromeView{},
	}
	for _, k := range agg.KmerSizes() {
		v.TopKmers[fmt.Sprintf("k%d", k)] = agg.TopKmers(k, o.TopKmers)
	}
	for _, p := range rankedPalindromes(agg, o.TopPalindromes) {
		v.Palindromes = append(v.Palindromes, palindromeView{
			Seq: p.Seq, Length: p.Length, SeqIndex: p.SeqIndex, Start: p.Start,
		})
	}
	if lp, ok := agg.Longest(); ok {
		v.Longest = &palindromeView{Seq: lp.Seq, Length: lp.Length, SeqIndex: lp.SeqIndex, Start: lp.Start}
	}
	return jsonutil.EncodePretty(w, v)
}

func rankedPalindromes(agg *stats.Aggregate, top int) []stats.Palindrome {
	ps := agg.Palindromes
	if top > 0 && len(ps) > top {
		ps = ps[:top]
	}
	return ps
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Downstream consumers (like `head`) closing early is not a failure.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
