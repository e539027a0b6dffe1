package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteQuotingAndDelimiter(t *testing.T) {
	var buf bytes.Buffer
	header := []string{"id", "name", "note"}
	rows := [][]string{
		{"1", "Acme; GmbH", `said "hello"`},
		{"2", "Plain", "line1\nline2"},
	}
	require.NoError(t, Write(&buf, header, rows))

	// A reader configured with the same delimiter must recover the
	// values exactly, including embedded quotes and newlines.
	r := csv.NewReader(&buf)
	r.Comma = Delimiter
	got, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, header, got[0])
	assert.Equal(t, rows[0], got[1])
	assert.Equal(t, rows[1], got[2])
}

func TestWriteRawFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []string{"a", "b"}, [][]string{{"x;y", "plain"}}))
	assert.Equal(t, "a;b\n\"x;y\";plain\n", buf.String())
}

func TestWriteNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, [][]string{{"1", "2"}}))
	assert.Equal(t, "1;2\n", buf.String())
}
