package wire

import "github.com/puzpuzpuz/xsync/v3"

// internCache deduplicates decoded strings process-wide. RPC streams
// repeat the same identifiers constantly; interning keeps one retained
// copy per distinct value.
var internCache = xsync.NewMapOf[string, string]()

// Intern returns the canonical shared copy of s.
func Intern(s string) string {
	if v, ok := internCache.Load(s); ok {
		return v
	}
	v, _ := internCache.LoadOrStore(s, s)
	return v
}

// Decoder reads primitive values off a Source, mirroring Encoder: the
// first error is latched, later calls are no-ops returning zero values,
// and Result reports the failure. Not safe for concurrent use.
type Decoder struct {
	src    Source
	count  int64
	err    error
	intern bool
}

// NewDecoder creates a Decoder over src.
func NewDecoder(src Source) (*Decoder, error) {
	if src == nil {
		return nil, ErrNilTransport
	}
	return &Decoder{src: src}, nil
}

// WithIntern makes String and StringSet return interned values, and
// returns the Decoder for chaining.
func (d *Decoder) WithIntern() *Decoder {
	d.intern = true
	return d
}

// Uint32 reads an 8-byte slot and returns its low four bytes.
func (d *Decoder) Uint32() uint32 {
	if d.err != nil {
		return 0
	}
	v, err := ReadUint32(d.src)
	if d.setError(err) {
		return 0
	}
	d.count += 8
	return v
}

// Uint64 reads the full 8-byte value.
func (d *Decoder) Uint64() uint64 {
	if d.err != nil {
		return 0
	}
	v, err := ReadUint64(d.src)
	if d.setError(err) {
		return 0
	}
	d.count += 8
	return v
}

// String reads a length slot, payload, and padding.
func (d *Decoder) String() string {
	if d.err != nil {
		return ""
	}
	v, err := ReadString(d.src)
	if d.setError(err) {
		return ""
	}
	d.count += 8 + int64(len(v)) + int64(padOf(len(v)))
	if d.intern {
		v = Intern(v)
	}
	return v
}

// StringSet reads a count slot and that many strings into a set.
func (d *Decoder) StringSet() *StringSet {
	if d.err != nil {
		return nil
	}
	n := d.Uint32()
	set := NewStringSet()
	for i := uint32(0); i < n && d.err == nil; i++ {
		set.Add(d.String())
	}
	if d.err != nil {
		return nil
	}
	return set
}

// Bytes fills p with a raw payload and consumes its padding, the mirror
// of Encoder.Bytes.
func (d *Decoder) Bytes(p []byte) {
	if d.err != nil {
		return
	}
	if d.setError(d.src.Fill(p)) {
		return
	}
	if d.setError(ReadPadding(d.src, len(p))) {
		return
	}
	d.count += int64(len(p)) + int64(padOf(len(p)))
}

// Padding consumes the filler that follows an n-byte payload.
func (d *Decoder) Padding(n int) {
	if d.err != nil {
		return
	}
	if d.setError(ReadPadding(d.src, n)) {
		return
	}
	d.count += int64(padOf(n))
}

// Count returns the total bytes consumed so far.
func (d *Decoder) Count() int64 { return d.count }

// Err returns the latched error, if any.
func (d *Decoder) Err() error { return d.err }

// Result returns the final count and error state.
func (d *Decoder) Result() (int64, error) { return d.count, d.err }

func (d *Decoder) setError(err error) bool {
	if d.err == nil && err != nil {
		d.err = err
	}
	return err != nil
}
