// internal/corpus/corpus_test.go
package corpus

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJSON(t *testing.T) {
	in := `{"num_sequences": 2, "sequence_length": 4, "sequences": ["ACGT", "TTAA"]}`
	doc, err := LoadJSON(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.NumSequences)
	assert.Equal(t, 4, doc.SequenceLength)
	assert.Equal(t, []string{"ACGT", "TTAA"}, doc.Sequences)
}

func TestLoadJSONDerivesCount(t *testing.T) {
	doc, err := LoadJSON(strings.NewReader(`{"sequences": ["ACGT"]}`))
	require.NoError(t, err)
	assert.Equal(t, 1, doc.NumSequences)
}

func TestLoadJSONMalformed(t *testing.T) {
	cases := map[string]string{
		"truncated":         `{"sequences": ["ACGT"`,
		"wrong type":        `{"sequences": "ACGT"}`,
		"missing sequences": `{"num_sequences": 3}`,
		"count mismatch":    `{"num_sequences": 3, "sequences": ["ACGT"]}`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadJSON(strings.NewReader(in))
			require.Error(t, err)
			var fe *FormatError
			assert.True(t, errors.As(err, &fe), "want FormatError, got %T", err)
		})
	}
}

func TestLoadFASTA(t *testing.T) {
	in := ">s1 first\nACGT\nACGT\n>s2\nTTAA\n"
	doc, err := LoadFASTA(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.NumSequences)
	assert.Equal(t, 8, doc.SequenceLength)
	assert.Equal(t, []string{"ACGTACGT", "TTAA"}, doc.Sequences)
}

func TestLoadFASTAErrors(t *testing.T) {
	_, err := LoadFASTA(strings.NewReader("ACGT\n"))
	require.Error(t, err)

	_, err = LoadFASTA(strings.NewReader(""))
	require.Error(t, err)
}

func TestLoadUnknownFormat(t *testing.T) {
	_, err := Load("-", "tsv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown corpus format")
}
