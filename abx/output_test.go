package abx

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDataOutputPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		write    func(*DataOutput) error
		expected []byte
	}{
		{
			name:     "byte",
			write:    func(o *DataOutput) error { return o.WriteByte(0xAB) },
			expected: []byte{0xAB},
		},
		{
			name:     "short",
			write:    func(o *DataOutput) error { return o.WriteShort(0x1234) },
			expected: []byte{0x12, 0x34},
		},
		{
			name:     "int",
			write:    func(o *DataOutput) error { return o.WriteInt(42) },
			expected: []byte{0x00, 0x00, 0x00, 0x2A},
		},
		{
			name:     "int negative",
			write:    func(o *DataOutput) error { return o.WriteInt(-1) },
			expected: []byte{0xFF, 0xFF, 0xFF, 0xFF},
		},
		{
			name:     "long",
			write:    func(o *DataOutput) error { return o.WriteLong(1) },
			expected: []byte{0, 0, 0, 0, 0, 0, 0, 1},
		},
		{
			name:     "float",
			write:    func(o *DataOutput) error { return o.WriteFloat(1.5) },
			expected: []byte{0x3F, 0xC0, 0x00, 0x00},
		},
		{
			name:     "double",
			write:    func(o *DataOutput) error { return o.WriteDouble(1.5) },
			expected: []byte{0x3F, 0xF8, 0, 0, 0, 0, 0, 0},
		},
		{
			name:     "utf",
			write:    func(o *DataOutput) error { return o.WriteUTF("abc") },
			expected: []byte{0x00, 0x03, 'a', 'b', 'c'},
		},
		{
			name:     "utf empty",
			write:    func(o *DataOutput) error { return o.WriteUTF("") },
			expected: []byte{0x00, 0x00},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			o := NewDataOutput(&buf)
			if err := tt.write(o); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, buf.Bytes()); diff != "" {
				t.Errorf("bytes mismatch (-want +got):\n%s", diff)
			}
			if o.Offset() != int64(len(tt.expected)) {
				t.Errorf("expected offset %d, got %d", len(tt.expected), o.Offset())
			}
		})
	}
}

func TestWriteUTFBoundary(t *testing.T) {
	var buf bytes.Buffer
	o := NewDataOutput(&buf)

	max := strings.Repeat("x", MaxUnsignedShort)
	if err := o.WriteUTF(max); err != nil {
		t.Fatalf("unexpected error at %d bytes: %v", MaxUnsignedShort, err)
	}
	if buf.Len() != 2+MaxUnsignedShort {
		t.Errorf("expected %d bytes written, got %d", 2+MaxUnsignedShort, buf.Len())
	}

	buf.Reset()
	o = NewDataOutput(&buf)
	err := o.WriteUTF(max + "x")
	if !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("expected ErrStringTooLong, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no bytes written after failure, got %d", buf.Len())
	}
}

func TestWriteInternedUTF(t *testing.T) {
	var buf bytes.Buffer
	o := NewDataOutput(&buf)

	if err := o.WriteInternedUTF("root"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{0xFF, 0xFF, 0x00, 0x04, 'r', 'o', 'o', 't'}
	if diff := cmp.Diff(expected, buf.Bytes()); diff != "" {
		t.Fatalf("first occurrence mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := o.WriteInternedUTF("root"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]byte{0x00, 0x00}, buf.Bytes()); diff != "" {
		t.Fatalf("reference mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := o.WriteInternedUTF("element"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected = []byte{0xFF, 0xFF, 0x00, 0x07, 'e', 'l', 'e', 'm', 'e', 'n', 't'}
	if diff := cmp.Diff(expected, buf.Bytes()); diff != "" {
		t.Fatalf("second string mismatch (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := o.WriteInternedUTF("element"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]byte{0x00, 0x01}, buf.Bytes()); diff != "" {
		t.Fatalf("second reference mismatch (-want +got):\n%s", diff)
	}

	if o.InternCount() != 2 {
		t.Errorf("expected 2 interned strings, got %d", o.InternCount())
	}
}

func TestInternOverflow(t *testing.T) {
	var buf bytes.Buffer
	o := NewDataOutput(&buf)
	for i := 0; i < MaxUnsignedShort; i++ {
		if err := o.WriteInternedUTF(strconv.Itoa(i)); err != nil {
			t.Fatalf("unexpected error at entry %d: %v", i, err)
		}
	}
	err := o.WriteInternedUTF("one-too-many")
	if !errors.Is(err, ErrInternOverflow) {
		t.Fatalf("expected ErrInternOverflow, got %v", err)
	}
	// References to existing entries still work after the overflow.
	before := buf.Len()
	if err := o.WriteInternedUTF("0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != before+2 {
		t.Errorf("expected a 2-byte reference, got %d bytes", buf.Len()-before)
	}
}
