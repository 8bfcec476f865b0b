// internal/corpus/corpus.go

// Package corpus loads DNA sequence corpora. The native format is a JSON
// document with num_sequences, sequence_length and an ordered sequences
// list; FASTA input is also accepted.
package corpus

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"dnastat/internal/jsonutil"
)

// Formats accepted by Load.
const (
	FormatJSON  = "json"
	FormatFASTA = "fasta"
)

// Document is the in-memory corpus.
type Document struct {
	NumSequences   int      `json:"num_sequences"`
	SequenceLength int      `json:"sequence_length"`
	Sequences      []string `json:"sequences"`
}

// FormatError reports a malformed corpus document. It is fatal and aborts
// the run before any analysis.
type FormatError struct {
	Reason string
	Cause  error
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corpus: %s: %v", e.Reason, e.Cause)
	}
	return "corpus: " + e.Reason
}

func (e *FormatError) Unwrap() error { return e.Cause }

// Load reads a corpus from path ("-" = stdin; ".gz" transparently
// decompressed) in the given format.
func Load(path, format string) (*Document, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch format {
	case FormatJSON:
		return LoadJSON(rc)
	case FormatFASTA:
		return LoadFASTA(rc)
	default:
		return nil, fmt.Errorf("unknown corpus format %q", format)
	}
}

// LoadJSON decodes and checks the native document format.
func LoadJSON(r io.Reader) (*Document, error) {
	var doc Document
	if err := jsonutil.Decode(r, &doc); err != nil {
		return nil, &FormatError{Reason: "malformed JSON document", Cause: err}
	}
	if doc.Sequences == nil {
		return nil, &FormatError{Reason: "missing sequences field"}
	}
	if doc.NumSequences == 0 {
		doc.NumSequences = len(doc.Sequences)
	}
	if doc.NumSequences != len(doc.Sequences) {
		return nil, &FormatError{Reason: fmt.Sprintf(
			"num_sequences is %d but %d sequences are present",
			doc.NumSequences, len(doc.Sequences))}
	}
	return &doc, nil
}

// LoadFASTA reads '>'-headed records, concatenating sequence lines.
// num_sequences is derived; sequence_length is taken from the first record.
func LoadFASTA(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		doc     Document
		cur     strings.Builder
		started bool
	)
	flush := func() {
		if started {
			doc.Sequences = append(doc.Sequences, cur.String())
			cur.Reset()
		}
	}
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			flush()
			started = true
			continue
		}
		if !started {
			return nil, &FormatError{Reason: "sequence data before first FASTA header"}
		}
		cur.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, &FormatError{Reason: "reading FASTA input", Cause: err}
	}
	flush()
	if len(doc.Sequences) == 0 {
		return nil, &FormatError{Reason: "no FASTA records found"}
	}
	doc.NumSequences = len(doc.Sequences)
	doc.SequenceLength = len(doc.Sequences[0])
	return &doc, nil
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}
