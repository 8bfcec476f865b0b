// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"dnastat/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Input  string // corpus file or '-'
	Format string // json | fasta

	// Analysis parameters
	MinPalindrome  int
	MinDistinct    int
	KmerSizes      []int
	TopKmers       int
	TopPalindromes int // 0 = all records over the threshold

	// Performance
	Threads int

	// Output
	Output string // markdown | json
	Report string // destination path; "" = stdout

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA corpus statistics and palindrome detection

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var kmerCSV string

	// Input
	fs.StringVar(&opt.Input, "input", "", "corpus file (JSON or FASTA, '-' = stdin) [*]")
	fs.StringVar(&opt.Format, "format", "json", "input format: json | fasta [json]")

	// Analysis parameters
	fs.IntVar(&opt.MinPalindrome, "min-palindrome", 20, "minimum palindrome length, inclusive [20]")
	fs.IntVar(&opt.MinDistinct, "min-distinct", 3, "minimum distinct bases in a palindrome [3]")
	fs.StringVar(&kmerCSV, "kmers", "2,3,4,5", "comma-separated k-mer sizes to report [2,3,4,5]")
	fs.IntVar(&opt.TopKmers, "top-kmers", 5, "k-mers shown per window size [5]")
	fs.IntVar(&opt.TopPalindromes, "top-palindromes", 0, "palindrome records shown (0 = all over threshold) [0]")

	// Performance
	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	// Output
	fs.StringVar(&opt.Output, "output", "markdown", "output format: markdown | json [markdown]")
	fs.StringVar(&opt.Report, "report", "", "write the report to this path instead of stdout []")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings on stderr [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Input == "" {
		return opt, errors.New("--input is required")
	}
	if opt.Format != "json" && opt.Format != "fasta" {
		return opt, fmt.Errorf("invalid --format %q", opt.Format)
	}
	if opt.Output != "markdown" && opt.Output != "json" {
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if opt.MinPalindrome < 2 {
		return opt, errors.New("--min-palindrome must be ≥ 2")
	}
	if opt.MinDistinct < 1 || opt.MinDistinct > 4 {
		return opt, errors.New("--min-distinct must be between 1 and 4")
	}
	if opt.TopKmers < 1 {
		return opt, errors.New("--top-kmers must be ≥ 1")
	}
	if opt.TopPalindromes < 0 {
		return opt, errors.New("--top-palindromes must be ≥ 0")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	ks, err := parseKmerSizes(kmerCSV)
	if err != nil {
		return opt, err
	}
	opt.KmerSizes = ks
	return opt, nil
}

func parseKmerSizes(csv string) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, field := range strings.Split(csv, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		k, err := strconv.Atoi(field)
		if err != nil || k < 1 {
			return nil, fmt.Errorf("invalid --kmers entry %q", field)
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, errors.New("--kmers must list at least one size")
	}
	sort.Ints(out)
	return out, nil
}
