package wire

import "errors"

var (
	// ErrNilTransport indicates that a constructor was called with a nil
	// underlying reader or writer.
	ErrNilTransport = errors.New("wire: nil underlying transport")

	// ErrSizeTooSmall indicates a buffer capacity too small to hold a
	// single encoded slot.
	ErrSizeTooSmall = errors.New("wire: buffer size must be at least 16 bytes")

	// ErrClosed indicates use of a sink or source after Close.
	ErrClosed = errors.New("wire: use of closed sink or source")

	// ErrEndOfStream indicates that bytes were requested but no more will
	// ever arrive.
	ErrEndOfStream = errors.New("wire: unexpected end of stream")

	// ErrNonZeroPadding indicates that a padding byte on the stream was
	// not zero, meaning the stream is misframed or corrupt.
	ErrNonZeroPadding = errors.New("wire: non-zero padding byte")

	// ErrStringTooLong indicates a string whose length does not fit the
	// 32-bit length field of the encoding.
	ErrStringTooLong = errors.New("wire: string exceeds 32-bit length field")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid
	// (negative) count from Write.
	ErrInvalidWrite = errors.New("wire: writer returned invalid count from Write")

	// ErrInvalidRead indicates that an io.Reader returned an invalid
	// (negative) count from Read.
	ErrInvalidRead = errors.New("wire: reader returned invalid count from Read")
)
