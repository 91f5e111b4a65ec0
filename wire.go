// Package wire implements the byte-level framing layer beneath a
// client/daemon style binary protocol: Sink/Source transport
// capabilities with buffering, concrete bindings for file descriptors
// and in-memory buffers, and the primitive encoding used for scalar
// values, strings, and string sets.
//
// Every value occupies a slot that is a multiple of eight bytes,
// little-endian. There is no header, magic number, or version field at
// this layer; higher protocols concatenate primitives and decode them
// back in the same order.
package wire

// Sink is the write half of a transport: it accepts byte buffers.
// Implementations are not safe for concurrent use.
type Sink interface {
	// Accept pushes all of p to the sink now, or fails. An implementation
	// may buffer; buffered bytes are "copy now, fail later" and a
	// transport error can surface from a later Accept or Flush instead
	// of the call that handed over the data.
	Accept(p []byte) error
}

// FlushSink is a Sink with internal buffering that can be forced out to
// the underlying transport.
type FlushSink interface {
	Sink
	// Flush pushes any buffered bytes to the underlying transport,
	// leaving the buffer empty.
	Flush() error
}

// Source is the read half of a transport. Implementations are not safe
// for concurrent use.
type Source interface {
	// Fill places exactly len(p) bytes into p. It blocks while more data
	// might still arrive and fails if len(p) bytes will never be
	// available; a partially filled p must be treated as invalid by the
	// caller.
	Fill(p []byte) error
}
