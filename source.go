package wire

import "io"

// BufferedSource decorates an io.Reader with an internal buffer so that
// many small Fill calls turn into few underlying reads.
//
// The underlying reader is the best-effort primitive: one Read blocks
// only until at least one byte is available and may return far fewer
// bytes than requested. A return of 0 bytes with no error, or io.EOF,
// means end-of-stream. The first error is latched; every later Fill
// returns it as a no-op. Not safe for concurrent use.
type BufferedSource struct {
	r      io.Reader
	buf    []byte
	posIn  int   // end of the unread region
	posOut int   // start of the unread region
	rerr   error // read error deferred behind still-unread bytes
	err    error
	closed bool
}

var (
	_ Source    = (*BufferedSource)(nil)
	_ io.Closer = (*BufferedSource)(nil)
)

// NewBufferedSource creates a BufferedSource with DefaultBufferSize
// capacity.
func NewBufferedSource(r io.Reader) (*BufferedSource, error) {
	return NewBufferedSourceSize(r, DefaultBufferSize)
}

// NewBufferedSourceSize creates a BufferedSource with the given buffer
// capacity.
func NewBufferedSourceSize(r io.Reader, size int) (*BufferedSource, error) {
	if r == nil {
		return nil, ErrNilTransport
	}
	if size < 16 {
		return nil, ErrSizeTooSmall
	}
	return &BufferedSource{r: r, buf: make([]byte, size)}, nil
}

// Fill implements Source. It serves from the unread region and refills
// from the underlying reader when that region is empty, repeating until
// p is complete. Partial underlying reads are normal and are not
// treated as end-of-stream.
func (s *BufferedSource) Fill(p []byte) error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return ErrClosed
	}
	for len(p) > 0 {
		if s.posOut == s.posIn {
			if err := s.refill(); err != nil {
				return err
			}
		}
		n := copy(p, s.buf[s.posOut:s.posIn])
		s.posOut += n
		p = p[n:]
	}
	return nil
}

// refill pulls the next chunk from the underlying reader. An error that
// arrived together with data is deferred until the data is consumed.
func (s *BufferedSource) refill() error {
	if s.rerr != nil {
		err := s.rerr
		if err == io.EOF {
			err = ErrEndOfStream
		}
		s.setError(err)
		return s.err
	}
	s.posIn, s.posOut = 0, 0
	n, err := s.r.Read(s.buf)
	switch {
	case n < 0:
		s.setError(ErrInvalidRead)
	case n > 0:
		s.posIn = n
		s.rerr = err
		return nil
	case err == nil, err == io.EOF:
		// The transport contract reserves a zero-byte read for
		// end-of-stream.
		s.setError(ErrEndOfStream)
	default:
		s.setError(err)
	}
	return s.err
}

// Buffered returns the number of unread bytes held in the buffer.
func (s *BufferedSource) Buffered() int { return s.posIn - s.posOut }

// Err returns the latched error, if any.
func (s *BufferedSource) Err() error { return s.err }

// Close closes the underlying reader when it implements io.Closer.
// Calling it again is a no-op.
func (s *BufferedSource) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *BufferedSource) setError(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}
