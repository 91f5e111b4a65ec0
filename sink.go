package wire

import (
	"io"

	"github.com/hashicorp/go-multierror"
)

// DefaultBufferSize is the buffer capacity used by the convenience
// constructors. 32 KiB coalesces typical message traffic into few
// underlying writes.
const DefaultBufferSize = 32 * 1024

// BufferedSink decorates an io.Writer with an accumulation buffer so
// that many small Accept calls turn into few underlying writes.
//
// The first transport error is latched: every later Accept or Flush
// returns it as a no-op. Buffered bytes are "copy now, fail later" —
// callers that need timely error reporting must Flush explicitly.
// Not safe for concurrent use.
type BufferedSink struct {
	w      io.Writer
	buf    []byte
	pos    int
	err    error
	closed bool
}

var (
	_ FlushSink = (*BufferedSink)(nil)
	_ io.Closer = (*BufferedSink)(nil)
)

// NewBufferedSink creates a BufferedSink with DefaultBufferSize capacity.
func NewBufferedSink(w io.Writer) (*BufferedSink, error) {
	return NewBufferedSinkSize(w, DefaultBufferSize)
}

// NewBufferedSinkSize creates a BufferedSink with the given buffer
// capacity. The capacity must hold at least one encoded slot.
func NewBufferedSinkSize(w io.Writer, size int) (*BufferedSink, error) {
	if w == nil {
		return nil, ErrNilTransport
	}
	if size < 16 {
		return nil, ErrSizeTooSmall
	}
	return &BufferedSink{w: w, buf: make([]byte, size)}, nil
}

// Accept implements Sink. Bytes are appended to the buffer; when the
// buffer is full it is flushed first, and a write at least as large as
// the whole buffer bypasses it entirely.
func (s *BufferedSink) Accept(p []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	for len(p) > 0 {
		if s.pos == len(s.buf) {
			if err := s.Flush(); err != nil {
				return err
			}
		}
		if s.pos == 0 && len(p) >= len(s.buf) {
			return s.writeAll(p)
		}
		n := copy(s.buf[s.pos:], p)
		s.pos += n
		p = p[n:]
	}
	return nil
}

// Flush pushes any buffered bytes to the underlying writer. The buffer
// is emptied before the write so that a failed flush is not retried
// with stale data from Close.
func (s *BufferedSink) Flush() error {
	if s.err != nil {
		return s.err
	}
	if s.pos == 0 {
		return nil
	}
	n := s.pos
	s.pos = 0
	return s.writeAll(s.buf[:n])
}

// Buffered returns the number of accepted bytes not yet flushed.
func (s *BufferedSink) Buffered() int { return s.pos }

// Err returns the latched transport error, if any.
func (s *BufferedSink) Err() error { return s.err }

// Close is the deterministic shutdown pass: it flushes buffered bytes
// and closes the underlying writer when it implements io.Closer. The
// flush and close failures are combined in the returned error; Close
// never panics and calling it again is a no-op.
func (s *BufferedSink) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	var errs error
	if err := s.Flush(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c, ok := s.w.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// writeAll pushes p to the underlying writer, latching any failure.
func (s *BufferedSink) writeAll(p []byte) error {
	n, err := s.w.Write(p)
	if n < 0 {
		err = ErrInvalidWrite
	} else if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	s.setError(err)
	return s.err
}

// setError records the first non-nil error so the root cause of a
// failure chain is preserved.
func (s *BufferedSink) setError(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}
