package wire

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
)

// Primitive encode/decode functions over the Sink/Source capabilities.
// Every value occupies a slot that is a multiple of eight bytes,
// little-endian:
//
//	32-bit value    four LE bytes + four zero bytes
//	64-bit value    eight LE bytes
//	string          32-bit length slot + raw bytes + pad to 8
//	string set      32-bit count slot + each string, insertion order

// stringPool stages string payloads during decode so large reads do not
// churn the allocator. 4 KiB covers common message strings; a grown
// buffer is kept for reuse.
var stringPool = sync.Pool{
	New: func() any {
		b := make([]byte, 4096)
		return &b
	},
}

// WriteUint32 emits v as an 8-byte slot: the little-endian 4-byte value
// followed by four zero bytes.
func WriteUint32(s Sink, v uint32) error {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], v)
	return s.Accept(buf[:])
}

// WriteUint64 emits the full 8-byte little-endian encoding of v.
func WriteUint64(s Sink, v uint64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return s.Accept(buf[:])
}

// WritePadding emits the zero bytes that align an n-byte payload to the
// next 8-byte boundary, between zero and seven of them.
func WritePadding(s Sink, n int) error {
	if p := padOf(n); p > 0 {
		return s.Accept(zeros[:p])
	}
	return nil
}

// WriteString emits the length slot, the raw bytes of str, and padding.
func WriteString(s Sink, str string) error {
	if uint64(len(str)) > math.MaxUint32 {
		return ErrStringTooLong
	}
	if err := WriteUint32(s, uint32(len(str))); err != nil {
		return err
	}
	if len(str) > 0 {
		if err := s.Accept([]byte(str)); err != nil {
			return err
		}
	}
	return WritePadding(s, len(str))
}

// WriteStringSet emits the element count followed by each element in
// the set's insertion order, which makes the encoding deterministic for
// a given set.
func WriteStringSet(s Sink, set *StringSet) error {
	if err := WriteUint32(s, uint32(set.Len())); err != nil {
		return err
	}
	for _, v := range set.Items() {
		if err := WriteString(s, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadUint32 reads an 8-byte slot and returns its low four bytes as a
// little-endian value. Nonzero high bytes are tolerated and ignored.
func ReadUint32(src Source) (uint32, error) {
	var buf [8]byte
	if err := src.Fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:4]), nil
}

// ReadUint64 reads the full 8-byte little-endian value.
func ReadUint64(src Source) (uint64, error) {
	var buf [8]byte
	if err := src.Fill(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// ReadPadding consumes the padding that follows an n-byte payload and
// rejects any nonzero filler byte, since garbage there means the stream
// is already misframed.
func ReadPadding(src Source, n int) error {
	p := padOf(n)
	if p == 0 {
		return nil
	}
	var buf [8]byte
	if err := src.Fill(buf[:p]); err != nil {
		return err
	}
	for i, b := range buf[:p] {
		if b != 0 {
			return fmt.Errorf("%w: 0x%02x at padding offset %d", ErrNonZeroPadding, b, i)
		}
	}
	return nil
}

// ReadString reads a length slot, the payload, and its padding,
// returning the payload.
func ReadString(src Source) (string, error) {
	n, err := ReadUint32(src)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	bp := stringPool.Get().(*[]byte)
	b := *bp
	if int(n) > cap(b) {
		b = make([]byte, n)
	}
	b = b[:n]
	err = src.Fill(b)
	str := string(b)
	*bp = b[:cap(b)]
	stringPool.Put(bp)
	if err != nil {
		return "", err
	}
	if err := ReadPadding(src, int(n)); err != nil {
		return "", err
	}
	return str, nil
}

// ReadStringSet reads a count slot followed by that many strings,
// collecting them into a set. Duplicate entries collapse.
func ReadStringSet(src Source) (*StringSet, error) {
	n, err := ReadUint32(src)
	if err != nil {
		return nil, err
	}
	set := NewStringSet()
	for i := uint32(0); i < n; i++ {
		v, err := ReadString(src)
		if err != nil {
			return nil, err
		}
		set.Add(v)
	}
	return set, nil
}
