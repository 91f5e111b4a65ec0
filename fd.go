//go:build unix

package wire

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// fdChannel exposes a raw file descriptor as the transport primitives
// BufferedSink and BufferedSource expect. EINTR is the one retryable
// condition; every other errno is fatal to the channel.
type fdChannel struct {
	fd   int
	owns bool
}

// Write pushes all of p to the descriptor, looping over partial writes.
func (c *fdChannel) Write(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		n, err := unix.Write(c.fd, p[total:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return total, os.NewSyscallError("write", err)
		}
		if n <= 0 {
			return total, io.ErrShortWrite
		}
		total += n
	}
	return total, nil
}

// Read returns as soon as the descriptor yields at least one byte. A
// zero-byte read with no error is end-of-stream.
func (c *fdChannel) Read(p []byte) (int, error) {
	for {
		n, err := unix.Read(c.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, os.NewSyscallError("read", err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

// Close releases the descriptor when the channel owns it.
func (c *fdChannel) Close() error {
	if !c.owns || c.fd < 0 {
		return nil
	}
	fd := c.fd
	c.fd = -1
	return os.NewSyscallError("close", unix.Close(fd))
}

// FdSink is a BufferedSink bound to an OS file descriptor.
type FdSink struct {
	*BufferedSink
	ch *fdChannel
}

// NewFdSink returns a sink that borrows fd: Close flushes but leaves the
// descriptor open.
func NewFdSink(fd int) *FdSink { return newFdSink(fd, false) }

// NewOwnedFdSink returns a sink that takes exclusive ownership of fd:
// Close flushes and then releases the descriptor.
func NewOwnedFdSink(fd int) *FdSink { return newFdSink(fd, true) }

func newFdSink(fd int, owns bool) *FdSink {
	ch := &fdChannel{fd: fd, owns: owns}
	s, _ := NewBufferedSink(ch)
	return &FdSink{BufferedSink: s, ch: ch}
}

// Fd returns the bound descriptor, or -1 after an owned Close.
func (s *FdSink) Fd() int { return s.ch.fd }

// FdSource is a BufferedSource bound to an OS file descriptor.
type FdSource struct {
	*BufferedSource
	ch *fdChannel
}

// NewFdSource returns a source that borrows fd.
func NewFdSource(fd int) *FdSource { return newFdSource(fd, false) }

// NewOwnedFdSource returns a source that takes exclusive ownership of
// fd: Close releases the descriptor.
func NewOwnedFdSource(fd int) *FdSource { return newFdSource(fd, true) }

func newFdSource(fd int, owns bool) *FdSource {
	ch := &fdChannel{fd: fd, owns: owns}
	s, _ := NewBufferedSource(ch)
	return &FdSource{BufferedSource: s, ch: ch}
}

// Fd returns the bound descriptor, or -1 after an owned Close.
func (s *FdSource) Fd() int { return s.ch.fd }
