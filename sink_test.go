package wire

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mocks and Helpers ---

// recordWriter records every underlying Write call so tests can observe
// how a BufferedSink chunks its flushes.
type recordWriter struct {
	bytes.Buffer
	writes int
}

func (w *recordWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.Buffer.Write(p)
}

// failWriter fails every write with a fixed error.
type failWriter struct {
	err error
}

func (w *failWriter) Write(p []byte) (int, error) { return 0, w.err }

// brokenWriteCloser fails both the write and the close path.
type brokenWriteCloser struct {
	writeErr error
	closeErr error
}

func (w *brokenWriteCloser) Write(p []byte) (int, error) { return 0, w.writeErr }
func (w *brokenWriteCloser) Close() error                { return w.closeErr }

// closeRecorder notes whether the underlying transport was closed.
type closeRecorder struct {
	bytes.Buffer
	closed bool
}

func (w *closeRecorder) Close() error {
	w.closed = true
	return nil
}

// --- BufferedSink Test Suite ---

type BufferedSinkTestSuite struct {
	suite.Suite
}

func (s *BufferedSinkTestSuite) TestConstructors() {
	s.T().Run("NilTransport", func(t *testing.T) {
		_, err := NewBufferedSink(nil)
		assert.ErrorIs(t, err, ErrNilTransport)
	})
	s.T().Run("SizeTooSmall", func(t *testing.T) {
		_, err := NewBufferedSinkSize(&bytes.Buffer{}, 8)
		assert.ErrorIs(t, err, ErrSizeTooSmall)
	})
}

// TestBufferingTransparency writes the same input in many chunkings and
// verifies the underlying transport always sees the exact concatenation.
func (s *BufferedSinkTestSuite) TestBufferingTransparency() {
	input := make([]byte, 100)
	for i := range input {
		input[i] = byte(i)
	}

	for _, chunk := range []int{1, 3, 7, 16, 33, 100} {
		rec := &recordWriter{}
		sink, err := NewBufferedSinkSize(rec, 16)
		s.Require().NoError(err)

		for off := 0; off < len(input); off += chunk {
			end := off + chunk
			if end > len(input) {
				end = len(input)
			}
			s.Require().NoError(sink.Accept(input[off:end]))
		}
		s.Require().NoError(sink.Flush())
		s.Assert().Equal(input, rec.Bytes(), "chunk size %d", chunk)
	}
}

func (s *BufferedSinkTestSuite) TestSmallWritesAreCoalesced() {
	rec := &recordWriter{}
	sink, _ := NewBufferedSinkSize(rec, 16)

	s.Require().NoError(sink.Accept([]byte{1, 2, 3}))
	s.Require().NoError(sink.Accept([]byte{4, 5}))
	s.Assert().Zero(rec.writes, "nothing should reach the transport before a flush")
	s.Assert().Equal(5, sink.Buffered())

	s.Require().NoError(sink.Flush())
	s.Assert().Equal(1, rec.writes)
	s.Assert().Zero(sink.Buffered())
	s.Assert().Equal([]byte{1, 2, 3, 4, 5}, rec.Bytes())
}

func (s *BufferedSinkTestSuite) TestOversizedWriteBypassesBuffer() {
	rec := &recordWriter{}
	sink, _ := NewBufferedSinkSize(rec, 16)

	big := bytes.Repeat([]byte{0xAB}, 64)
	s.Require().NoError(sink.Accept(big))
	s.Assert().Equal(1, rec.writes)
	s.Assert().Zero(sink.Buffered())
	s.Assert().Equal(big, rec.Bytes())
}

func (s *BufferedSinkTestSuite) TestErrorLatching() {
	transportErr := errors.New("pipe broken")
	sink, _ := NewBufferedSinkSize(&failWriter{err: transportErr}, 16)

	// Buffered writes succeed; the failure surfaces at flush time.
	s.Require().NoError(sink.Accept([]byte{1, 2, 3}))
	err := sink.Flush()
	s.Require().ErrorIs(err, transportErr)

	// The first error is latched and later operations are no-ops.
	s.Assert().ErrorIs(sink.Accept([]byte{4}), transportErr)
	s.Assert().ErrorIs(sink.Flush(), transportErr)
	s.Assert().ErrorIs(sink.Err(), transportErr)
}

func (s *BufferedSinkTestSuite) TestClose() {
	s.T().Run("FlushesAndClosesTransport", func(t *testing.T) {
		rec := &closeRecorder{}
		sink, _ := NewBufferedSinkSize(rec, 16)
		require.NoError(t, sink.Accept([]byte{1, 2, 3}))

		require.NoError(t, sink.Close())
		assert.Equal(t, []byte{1, 2, 3}, rec.Bytes())
		assert.True(t, rec.closed)
	})

	s.T().Run("Idempotent", func(t *testing.T) {
		rec := &closeRecorder{}
		sink, _ := NewBufferedSinkSize(rec, 16)
		require.NoError(t, sink.Close())
		require.NoError(t, sink.Close())
	})

	s.T().Run("AcceptAfterCloseFails", func(t *testing.T) {
		sink, _ := NewBufferedSinkSize(&bytes.Buffer{}, 16)
		require.NoError(t, sink.Close())
		assert.ErrorIs(t, sink.Accept([]byte{1}), ErrClosed)
	})

	s.T().Run("CombinesFlushAndCloseErrors", func(t *testing.T) {
		writeErr := errors.New("write refused")
		closeErr := errors.New("close refused")
		sink, _ := NewBufferedSinkSize(&brokenWriteCloser{writeErr: writeErr, closeErr: closeErr}, 16)
		require.NoError(t, sink.Accept([]byte{1, 2, 3}))

		err := sink.Close()
		require.Error(t, err)
		assert.ErrorIs(t, err, writeErr)
		assert.ErrorIs(t, err, closeErr)
	})
}

func TestBufferedSink(t *testing.T) {
	suite.Run(t, new(BufferedSinkTestSuite))
}
