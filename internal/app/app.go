// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"dnastat-core/palindrome"
	"dnastat/internal/analysis"
	"dnastat/internal/cli"
	"dnastat/internal/corpus"
	"dnastat/internal/pipeline"
	"dnastat/internal/report"
	"dnastat/internal/version"
)

// RunContext parses argv, analyzes the corpus and writes the report.
// Exit codes: 0 ok, 2 usage or input-format error, 3 runtime error,
// 130 canceled.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("dnastat")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "dnastat version %s\n", version.Version)
		return 0
	}

	doc, err := corpus.Load(opts.Input, opts.Format)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if !opts.Quiet && doc.SequenceLength == 0 {
		_, _ = fmt.Fprintln(stderr, "warning: corpus declares no sequence_length")
	}

	an := analysis.New(analysis.Config{
		KmerSizes: opts.KmerSizes,
		Palindrome: palindrome.Config{
			MinLen:      opts.MinPalindrome,
			MinDistinct: opts.MinDistinct,
		},
	})

	agg, err := pipeline.Run(parent, pipeline.Config{Threads: opts.Threads}, doc.Sequences, an)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	dst := io.Writer(outw)
	var closeReport func() error
	if opts.Report != "" {
		fh, err := os.Create(opts.Report)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		dst = fh
		closeReport = fh.Close
	}

	ropts := report.Options{
		TopKmers:       opts.TopKmers,
		TopPalindromes: opts.TopPalindromes,
		MinPalindrome:  opts.MinPalindrome,
	}
	switch opts.Output {
	case "json":
		err = report.WriteJSON(dst, agg, ropts)
	default:
		err = report.WriteMarkdown(dst, agg, ropts)
	}
	if closeReport != nil {
		if cerr := closeReport(); err == nil {
			err = cerr
		}
	}
	if report.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); report.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}
	return 0
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
