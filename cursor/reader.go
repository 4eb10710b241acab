// Package cursor implements a look-ahead character reader that tracks
// stream position and logical line numbers. CR, LF, and CRLF each
// count as exactly one line break, including a CRLF pair split across
// two block reads.
package cursor

import (
	"errors"
	"io"
	"strings"

	"github.com/peekline/peekline/cursor/charbuf"
)

const (
	cr = '\r'
	lf = '\n'
)

// ErrNegativeLookahead is returned when a negative look-ahead size is
// requested. It is rejected before any I/O happens.
var ErrNegativeLookahead = errors.New("cursor: negative look-ahead size")

// Source is the capability the underlying character provider must
// support: consuming reads plus a bounded mark/reset window, which the
// Reader borrows for non-destructive look-ahead. End of input is io.EOF.
type Source interface {
	ReadChar() (rune, error)
	ReadChars(buf []rune) (int, error)
	Mark(limit int) error
	Reset() error
	Close() error
}

// Reader is a character cursor over a Source. It is owned by a single
// consumer; none of its methods are safe for concurrent use.
type Reader struct {
	src      Source
	last     LastChar
	position int64
	eols     int64
	closed   bool
}

// New returns a Reader over src.
func New(src Source) *Reader {
	return &Reader{src: src}
}

// NewReader wraps r in a charbuf source and returns a Reader over it.
func NewReader(r io.Reader) *Reader {
	return New(charbuf.New(r))
}

// Read consumes and returns one character, or io.EOF once the stream
// is exhausted. A consumed CR, a consumed LF not preceded by CR, and
// the first end-of-stream after an unterminated final line each count
// one line break.
func (r *Reader) Read() (rune, error) {
	c, err := r.src.ReadChar()
	if err != nil {
		if errors.Is(err, io.EOF) {
			if r.last.Kind != Ended && !r.last.isCR() && !r.last.isLF() {
				r.eols++
			}
			r.last = LastChar{Kind: Ended}
		}
		return 0, err
	}
	if c == cr || (c == lf && !r.last.isCR()) {
		r.eols++
	}
	r.last = LastChar{Kind: Char, Rune: c}
	r.position++
	return c, nil
}

// ReadChars consumes up to len(buf) characters in one call and returns
// the number delivered. Line breaks are counted with the same CRLF
// collapsing as Read; the predecessor of the first delivered character
// is the pre-call last character, so a CRLF pair straddling two calls
// still counts once. A zero-length buf is a no-op: no source call, no
// counter changes.
func (r *Reader) ReadChars(buf []rune) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n, err := r.src.ReadChars(buf)
	if n > 0 {
		prev := r.last
		for i := 0; i < n; i++ {
			c := buf[i]
			if c == cr || (c == lf && !prev.isCR()) {
				r.eols++
			}
			prev = LastChar{Kind: Char, Rune: c}
		}
		r.last = prev
		r.position += int64(n)
		return n, err
	}
	if errors.Is(err, io.EOF) {
		r.last = LastChar{Kind: Ended}
	}
	return n, err
}

// Peek returns the character the next Read would deliver, without
// consuming it and without touching position, line counting, or the
// last character.
func (r *Reader) Peek() (rune, error) {
	if err := r.src.Mark(1); err != nil {
		return 0, err
	}
	c, err := r.src.ReadChar()
	if rerr := r.src.Reset(); rerr != nil {
		return 0, rerr
	}
	return c, err
}

// PeekChars returns the next n upcoming characters without consuming
// them, along with the count actually available. Slots past the count
// are unspecified. A negative n is rejected before any I/O.
func (r *Reader) PeekChars(n int) ([]rune, int, error) {
	if n < 0 {
		return nil, 0, ErrNegativeLookahead
	}
	buf := make([]rune, n)
	if n == 0 {
		return buf, 0, nil
	}
	if err := r.src.Mark(n); err != nil {
		return buf, 0, err
	}
	count, err := r.src.ReadChars(buf)
	if rerr := r.src.Reset(); rerr != nil {
		return buf, count, rerr
	}
	return buf, count, err
}

// ReadLine consumes one line and returns its content with the
// terminator stripped, or io.EOF if the stream is already exhausted
// (checked non-destructively, so counters stay untouched). A CR
// followed by LF is swallowed as a single terminator. The characters
// are genuinely consumed: position and line counting advance by the
// full physical length including the terminator.
func (r *Reader) ReadLine() (string, error) {
	if _, err := r.Peek(); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		c, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return sb.String(), err
		}
		if c == cr {
			next, err := r.Peek()
			if err != nil && !errors.Is(err, io.EOF) {
				return sb.String(), err
			}
			if err == nil && next == lf {
				if _, err := r.Read(); err != nil {
					return sb.String(), err
				}
			}
			break
		}
		if c == lf {
			break
		}
		sb.WriteRune(c)
	}
	return sb.String(), nil
}

// Position returns the number of characters consumed so far. Look-ahead
// does not move it.
func (r *Reader) Position() int64 {
	return r.position
}

// CurrentLineNumber returns the line the cursor is on. At a boundary
// (fresh reader, just consumed a terminator, or end of stream) the
// consumed-terminator count is exact; mid-line, the line being read
// has not been counted yet, hence the +1.
func (r *Reader) CurrentLineNumber() int64 {
	if r.last.atLineBoundary() {
		return r.eols
	}
	return r.eols + 1
}

// Last returns the most recently consumed character record.
func (r *Reader) Last() LastChar {
	return r.last
}

// IsClosed reports whether Close has been called.
func (r *Reader) IsClosed() bool {
	return r.closed
}

// Close releases the underlying source. The cursor's own state is
// settled first, so a failing release still leaves the reader marked
// closed with its last character forced to Ended. Closing twice is
// safe and does not release the source again.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.last = LastChar{Kind: Ended}
	return r.src.Close()
}
