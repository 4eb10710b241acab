// Package charbuf provides a buffered rune source with a bounded
// mark/reset window, suitable for non-destructive look-ahead.
package charbuf

import (
	"bufio"
	"errors"
	"io"
)

var (
	// ErrNoMark signals a Reset with no valid mark in place.
	ErrNoMark = errors.New("charbuf: reset without a valid mark")
	// ErrMarkOverrun signals that more runes were consumed after Mark
	// than the mark's limit allowed, invalidating the window.
	ErrMarkOverrun = errors.New("charbuf: mark window overrun")
	// ErrNegativeMark signals a Mark with a negative limit.
	ErrNegativeMark = errors.New("charbuf: negative mark limit")
)

// Reader decodes runes from an io.Reader and can replay a bounded run
// of them after a Mark. Replayed runes are queued and re-delivered
// ahead of fresh input, so a Mark/read/Reset cycle is invisible to
// later consuming reads.
type Reader struct {
	src     io.Reader
	br      *bufio.Reader
	pending []rune // runes queued for re-delivery after a Reset
	replay  []rune // runes consumed since the mark
	limit   int
	marked  bool
	overrun bool
	closed  bool
}

// New returns a Reader with the default decode buffer size.
func New(r io.Reader) *Reader {
	return &Reader{src: r, br: bufio.NewReader(r)}
}

// NewSize returns a Reader whose decode buffer holds at least size bytes.
func NewSize(r io.Reader, size int) *Reader {
	return &Reader{src: r, br: bufio.NewReaderSize(r, size)}
}

// next delivers the next rune, draining the replay queue before
// touching the wrapped reader.
func (r *Reader) next() (rune, error) {
	if len(r.pending) > 0 {
		c := r.pending[0]
		r.pending = r.pending[1:]
		return c, nil
	}
	c, _, err := r.br.ReadRune()
	if err != nil {
		return 0, err
	}
	return c, nil
}

// record stores a consumed rune for replay while a mark is active.
// Consuming past the mark's limit invalidates the window.
func (r *Reader) record(c rune) {
	if !r.marked {
		return
	}
	if len(r.replay) >= r.limit {
		r.marked = false
		r.overrun = true
		r.replay = r.replay[:0]
		return
	}
	r.replay = append(r.replay, c)
}

// ReadChar consumes and returns one rune, or io.EOF at end of input.
func (r *Reader) ReadChar() (rune, error) {
	c, err := r.next()
	if err != nil {
		return 0, err
	}
	r.record(c)
	return c, nil
}

// ReadChars fills buf with up to len(buf) runes and returns the number
// delivered. It returns io.EOF only when nothing could be delivered;
// a short read that hit end of input reports its count with a nil
// error, and the next call reports io.EOF.
func (r *Reader) ReadChars(buf []rune) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	n := 0
	for n < len(buf) {
		c, err := r.next()
		if err != nil {
			if n > 0 && errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		r.record(c)
		buf[n] = c
		n++
	}
	return n, nil
}

// Mark begins a replay window: a later Reset rewinds to this point as
// long as no more than limit runes were consumed in between. Marking
// again replaces any previous window.
func (r *Reader) Mark(limit int) error {
	if limit < 0 {
		return ErrNegativeMark
	}
	r.marked = true
	r.overrun = false
	r.limit = limit
	r.replay = r.replay[:0]
	return nil
}

// Reset rewinds to the most recent mark, making the runes consumed
// since then readable again, and clears the mark.
func (r *Reader) Reset() error {
	if r.overrun {
		r.overrun = false
		return ErrMarkOverrun
	}
	if !r.marked {
		return ErrNoMark
	}
	if len(r.replay) > 0 {
		restored := make([]rune, 0, len(r.replay)+len(r.pending))
		restored = append(restored, r.replay...)
		restored = append(restored, r.pending...)
		r.pending = restored
	}
	r.marked = false
	r.replay = r.replay[:0]
	return nil
}

// Close releases the wrapped reader if it is an io.Closer. Closing an
// already-closed Reader is a no-op.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if c, ok := r.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
