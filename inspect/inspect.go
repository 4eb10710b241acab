// Package inspect provides line-level inspection of text streams built
// on the cursor package: counts, per-line listings, and trailing
// terminator detection. It interprets no delimiters, quoting, or
// escaping.
package inspect

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peekline/peekline/cursor"
	"github.com/peekline/peekline/cursor/charbuf"
)

// ErrBinaryInput signals that the look-ahead window at the head of the
// input contained a NUL, which line-level inspection refuses to chew on.
var ErrBinaryInput = errors.New("inspect: input looks binary")

// Stats summarises one scanned stream.
type Stats struct {
	Lines       int64 // logical lines (blank lines excluded when SkipBlank is set)
	BlankLines  int64
	Chars       int64 // characters consumed, terminators included
	LongestLine int64 // length of the longest line, terminator excluded
	Terminated  bool  // whether the final line carried a terminator
}

// Line is one numbered line of a stream.
type Line struct {
	Number int64
	Text   string
}

// sniff peeks at the head of the stream without consuming anything and
// rejects input that looks binary.
func sniff(cur *cursor.Reader, window int) error {
	head, n, err := cur.PeekChars(window)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	for _, c := range head[:n] {
		if c == 0 {
			return ErrBinaryInput
		}
	}
	return nil
}

// Scan drains r line by line and returns its Stats.
func Scan(r io.Reader, opts Options) (Stats, error) {
	cur := cursor.New(charbuf.NewSize(r, opts.BufferSize))
	var stats Stats
	if err := sniff(cur, opts.MaxLookAhead); err != nil {
		return stats, err
	}
	for {
		start := cur.Position()
		line, err := cur.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return stats, err
		}
		length := int64(len([]rune(line)))
		consumed := cur.Position() - start
		blank := strings.TrimSpace(line) == ""
		if blank {
			stats.BlankLines++
		}
		if !blank || !opts.SkipBlank {
			stats.Lines++
		}
		if length > stats.LongestLine {
			stats.LongestLine = length
		}
		// The terminator, if any, is the consumed surplus beyond the
		// line's own characters.
		stats.Terminated = consumed > length
	}
	stats.Chars = cur.Position()
	return stats, nil
}

// Numbered drains r and returns its lines with their line numbers.
// Numbers come from the cursor's own line accounting, so skipped blank
// lines still advance the numbering.
func Numbered(r io.Reader, opts Options) ([]Line, error) {
	cur := cursor.New(charbuf.NewSize(r, opts.BufferSize))
	if err := sniff(cur, opts.MaxLookAhead); err != nil {
		return nil, err
	}
	var lines []Line
	for {
		// At a line boundary the cursor's count is the number of lines
		// fully consumed, so the upcoming line is the next one.
		number := cur.CurrentLineNumber() + 1
		line, err := cur.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, err
		}
		if opts.SkipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, Line{Number: number, Text: line})
	}
}

// Format renders one Stats line for a named input.
func (s Stats) Format(name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d lines, %d chars, longest %d", name, s.Lines, s.Chars, s.LongestLine)
	if s.BlankLines > 0 {
		fmt.Fprintf(&b, ", %d blank", s.BlankLines)
	}
	if !s.Terminated && s.Chars > 0 {
		b.WriteString(" (no trailing newline)")
	}
	return b.String()
}
