package abx

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// MaxUnsignedShort bounds length-prefixed payloads and intern indices.
const MaxUnsignedShort = 0xFFFF

// internNewMarker precedes the raw bytes of a string on its first
// interned occurrence. It can never collide with a valid index because
// the pool refuses a 65536th entry.
const internNewMarker = 0xFFFF

// DataOutput writes big-endian primitives to a sink and owns the
// string intern pool for one document. It is not safe for concurrent
// use; give each document its own DataOutput.
type DataOutput struct {
	w       io.Writer
	pool    map[string]uint16
	offset  int64
	scratch [8]byte
}

// NewDataOutput creates a DataOutput writing to w.
func NewDataOutput(w io.Writer) *DataOutput {
	return &DataOutput{
		w:    w,
		pool: make(map[string]uint16),
	}
}

// Offset returns the number of bytes written so far.
func (o *DataOutput) Offset() int64 {
	return o.offset
}

// InternCount returns the number of distinct interned strings.
func (o *DataOutput) InternCount() int {
	return len(o.pool)
}

func (o *DataOutput) write(data []byte) error {
	n, err := o.w.Write(data)
	o.offset += int64(n)
	if err != nil {
		return err
	}
	return nil
}

// WriteByte writes a single byte.
func (o *DataOutput) WriteByte(v byte) error {
	o.scratch[0] = v
	return o.write(o.scratch[:1])
}

// WriteShort writes a 2-byte big-endian unsigned value.
func (o *DataOutput) WriteShort(v uint16) error {
	binary.BigEndian.PutUint16(o.scratch[:2], v)
	return o.write(o.scratch[:2])
}

// WriteInt writes a 4-byte big-endian two's-complement value.
func (o *DataOutput) WriteInt(v int32) error {
	binary.BigEndian.PutUint32(o.scratch[:4], uint32(v))
	return o.write(o.scratch[:4])
}

// WriteLong writes an 8-byte big-endian two's-complement value.
func (o *DataOutput) WriteLong(v int64) error {
	binary.BigEndian.PutUint64(o.scratch[:8], uint64(v))
	return o.write(o.scratch[:8])
}

// WriteFloat writes a 4-byte big-endian IEEE-754 value.
func (o *DataOutput) WriteFloat(v float32) error {
	binary.BigEndian.PutUint32(o.scratch[:4], math.Float32bits(v))
	return o.write(o.scratch[:4])
}

// WriteDouble writes an 8-byte big-endian IEEE-754 value.
func (o *DataOutput) WriteDouble(v float64) error {
	binary.BigEndian.PutUint64(o.scratch[:8], math.Float64bits(v))
	return o.write(o.scratch[:8])
}

// WriteUTF writes a string as a 2-byte big-endian length followed by
// the raw UTF-8 bytes. Strings longer than MaxUnsignedShort bytes are
// a fatal error.
func (o *DataOutput) WriteUTF(s string) error {
	if len(s) > MaxUnsignedShort {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrStringTooLong, len(s), MaxUnsignedShort)
	}
	if err := o.WriteShort(uint16(len(s))); err != nil {
		return err
	}
	return o.write([]byte(s))
}

// WriteInternedUTF writes s through the intern pool: the first
// occurrence writes the new-entry marker followed by the raw string
// and assigns the next sequential index; later occurrences write the
// 2-byte big-endian index. Indices are document-scoped and assigned in
// first-seen order starting at 0.
func (o *DataOutput) WriteInternedUTF(s string) error {
	if index, ok := o.pool[s]; ok {
		return o.WriteShort(index)
	}
	if len(s) > MaxUnsignedShort {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrStringTooLong, len(s), MaxUnsignedShort)
	}
	if len(o.pool) >= MaxUnsignedShort {
		return fmt.Errorf("%w: %d distinct strings", ErrInternOverflow, len(o.pool))
	}
	if err := o.WriteShort(internNewMarker); err != nil {
		return err
	}
	if err := o.WriteUTF(s); err != nil {
		return err
	}
	o.pool[s] = uint16(len(o.pool))
	return nil
}

// WriteBytes writes raw bytes with no length prefix.
func (o *DataOutput) WriteBytes(data []byte) error {
	return o.write(data)
}

// Flush flushes the sink if it is buffered.
func (o *DataOutput) Flush() error {
	if f, ok := o.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
