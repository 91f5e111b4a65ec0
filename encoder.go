package wire

// Encoder frames primitive values onto a Sink. It tracks the total
// bytes emitted and latches the first error: once a write fails, every
// later call is a no-op and Result reports the failure. This keeps
// message-assembly code free of per-field error checks.
// Not safe for concurrent use.
type Encoder struct {
	s     Sink
	count int64
	err   error
}

// NewEncoder creates an Encoder over s.
func NewEncoder(s Sink) (*Encoder, error) {
	if s == nil {
		return nil, ErrNilTransport
	}
	return &Encoder{s: s}, nil
}

// Uint32 emits v as an 8-byte slot.
func (e *Encoder) Uint32(v uint32) {
	if e.err != nil {
		return
	}
	if e.setError(WriteUint32(e.s, v)) {
		return
	}
	e.count += 8
}

// Uint64 emits the full 8-byte value.
func (e *Encoder) Uint64(v uint64) {
	if e.err != nil {
		return
	}
	if e.setError(WriteUint64(e.s, v)) {
		return
	}
	e.count += 8
}

// String emits the length slot, payload, and padding.
func (e *Encoder) String(v string) {
	if e.err != nil {
		return
	}
	if e.setError(WriteString(e.s, v)) {
		return
	}
	e.count += 8 + int64(len(v)) + int64(padOf(len(v)))
}

// StringSet emits the count slot and each element in insertion order.
func (e *Encoder) StringSet(set *StringSet) {
	if e.err != nil {
		return
	}
	e.Uint32(uint32(set.Len()))
	for _, v := range set.Items() {
		e.String(v)
	}
}

// Bytes emits a raw payload plus its padding without a length slot, for
// callers whose surrounding message already frames the payload.
func (e *Encoder) Bytes(p []byte) {
	if e.err != nil {
		return
	}
	if e.setError(e.s.Accept(p)) {
		return
	}
	if e.setError(WritePadding(e.s, len(p))) {
		return
	}
	e.count += int64(len(p)) + int64(padOf(len(p)))
}

// Padding emits the zero bytes that align an n-byte payload to 8.
func (e *Encoder) Padding(n int) {
	if e.err != nil {
		return
	}
	if e.setError(WritePadding(e.s, n)) {
		return
	}
	e.count += int64(padOf(n))
}

// Count returns the total bytes emitted so far.
func (e *Encoder) Count() int64 { return e.count }

// Err returns the latched error, if any.
func (e *Encoder) Err() error { return e.err }

// Flush forces a buffered sink to push its bytes out now.
func (e *Encoder) Flush() error {
	if e.err != nil {
		return e.err
	}
	if f, ok := e.s.(FlushSink); ok {
		e.setError(f.Flush())
	}
	return e.err
}

// Result flushes and returns the final count and error state.
func (e *Encoder) Result() (int64, error) {
	e.Flush()
	return e.count, e.err
}

func (e *Encoder) setError(err error) bool {
	if e.err == nil && err != nil {
		e.err = err
	}
	return err != nil
}
