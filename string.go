package wire

import "fmt"

// StringSink collects everything it accepts into a growable in-memory
// buffer. There is no secondary transport, so it needs no flush. Not
// safe for concurrent use.
type StringSink struct {
	b []byte
}

var _ Sink = (*StringSink)(nil)

// NewStringSink creates an empty StringSink.
func NewStringSink() *StringSink { return &StringSink{} }

// Accept implements Sink. It never fails.
func (s *StringSink) Accept(p []byte) error {
	s.b = append(s.b, p...)
	return nil
}

// Bytes returns a view of the collected bytes. The slice is only valid
// until the next Accept or Reset.
func (s *StringSink) Bytes() []byte { return s.b }

// String returns a copy of the collected bytes.
func (s *StringSink) String() string { return string(s.b) }

// Len returns the number of bytes collected so far.
func (s *StringSink) Len() int { return len(s.b) }

// Reset discards the collected bytes, keeping the allocation.
func (s *StringSink) Reset() { s.b = s.b[:0] }

// StringSource reads sequentially from a borrowed byte slice. The
// cursor only moves forward; it may pass the end of the slice once, at
// which point the source is exhausted. Not safe for concurrent use.
type StringSource struct {
	b   []byte
	pos int
}

var _ Source = (*StringSource)(nil)

// NewStringSource creates a source over b. The slice is borrowed, not
// copied; the caller must not mutate it while reading.
func NewStringSource(b []byte) *StringSource { return &StringSource{b: b} }

// Fill implements Source. It copies what is available and advances the
// cursor by the full request even on failure, so partial output is not
// discarded — but after an over-read no further reads are meaningful.
func (s *StringSource) Fill(p []byte) error {
	if s.pos < len(s.b) {
		copy(p, s.b[s.pos:])
	}
	s.pos += len(p)
	if s.pos > len(s.b) {
		return fmt.Errorf("%w: %d bytes requested past end of %d-byte buffer",
			ErrEndOfStream, s.pos-len(s.b), len(s.b))
	}
	return nil
}

// Remaining returns the number of unread bytes left in the buffer.
func (s *StringSource) Remaining() int {
	if s.pos >= len(s.b) {
		return 0
	}
	return len(s.b) - s.pos
}
