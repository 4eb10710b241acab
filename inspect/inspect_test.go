package inspect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions("")
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), opts)
}

func TestParseOptions(t *testing.T) {
	opts, err := ParseOptions("buffer_size = 64\nskip_blank = true\n")
	require.NoError(t, err)
	assert.Equal(t, 64, opts.BufferSize)
	assert.True(t, opts.SkipBlank)
	assert.Equal(t, DefaultOptions().MaxLookAhead, opts.MaxLookAhead)
}

func TestParseOptionsRejectsInvalid(t *testing.T) {
	_, err := ParseOptions("buffer_size = 0\n")
	assert.Error(t, err)

	_, err = ParseOptions("max_lookahead = -3\n")
	assert.Error(t, err)

	_, err = ParseOptions("buffer_size = \"many\"\n")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	stats, err := Scan(strings.NewReader("one\ntwo\r\n\nfour"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.Lines)
	assert.Equal(t, int64(1), stats.BlankLines)
	assert.Equal(t, int64(14), stats.Chars)
	assert.Equal(t, int64(4), stats.LongestLine)
	assert.False(t, stats.Terminated)
}

func TestScanSkipBlank(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipBlank = true
	stats, err := Scan(strings.NewReader("one\n\n\ntwo\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Lines)
	assert.Equal(t, int64(2), stats.BlankLines)
	assert.True(t, stats.Terminated)
}

func TestScanEmpty(t *testing.T) {
	stats, err := Scan(strings.NewReader(""), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestScanCountsTerminatorsInChars(t *testing.T) {
	stats, err := Scan(strings.NewReader("a\r\nb\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Lines)
	assert.Equal(t, int64(5), stats.Chars)
	assert.True(t, stats.Terminated)
}

func TestScanRejectsBinary(t *testing.T) {
	_, err := Scan(strings.NewReader("ab\x00cd"), DefaultOptions())
	assert.ErrorIs(t, err, ErrBinaryInput)
}

func TestNumbered(t *testing.T) {
	lines, err := Numbered(strings.NewReader("a\n\nb"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Equal(t, Line{Number: 1, Text: "a"}, lines[0])
	assert.Equal(t, Line{Number: 2, Text: ""}, lines[1])
	assert.Equal(t, Line{Number: 3, Text: "b"}, lines[2])
}

func TestNumberedSkipBlankKeepsNumbering(t *testing.T) {
	opts := DefaultOptions()
	opts.SkipBlank = true
	lines, err := Numbered(strings.NewReader("a\r\n\r\nb\r\n"), opts)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, Line{Number: 1, Text: "a"}, lines[0])
	assert.Equal(t, Line{Number: 3, Text: "b"}, lines[1], "skipped blanks still advance the numbering")
}

func TestStatsFormat(t *testing.T) {
	s := Stats{Lines: 2, Chars: 8, LongestLine: 4, Terminated: true}
	assert.Equal(t, "in.txt: 2 lines, 8 chars, longest 4", s.Format("in.txt"))

	s = Stats{Lines: 1, Chars: 3, LongestLine: 3, BlankLines: 0}
	assert.Equal(t, "in.txt: 1 lines, 3 chars, longest 3 (no trailing newline)", s.Format("in.txt"))
}
