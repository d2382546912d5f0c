package abx

import (
	"fmt"
	"io"

	"github.com/abx-format/go-abx/classify"
)

type state int

const (
	stateStart state = iota
	stateInDocument
	stateClosed
)

// Serializer is an event-driven ABX writer. Events must arrive in
// document order with matched nesting; any violation is fatal for the
// document and leaves the serializer unusable.
//
// A Serializer owns its intern pool and tag stack and is scoped to a
// single document. It is not safe for concurrent use; convert
// independent documents with independent Serializers.
type Serializer struct {
	out      *DataOutput
	st       state
	tags     []string
	attrOpen bool
	policy   *classify.Policy
}

// SerializerOption configures a Serializer.
type SerializerOption func(*Serializer)

// WithPolicy sets the classification policy used by Attr.
func WithPolicy(p *classify.Policy) SerializerOption {
	return func(s *Serializer) { s.policy = p }
}

// NewSerializer creates a Serializer writing to w.
func NewSerializer(w io.Writer, opts ...SerializerOption) *Serializer {
	s := &Serializer{
		out:  NewDataOutput(w),
		tags: make([]string, 0, 8),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Offset returns the number of bytes written so far.
func (s *Serializer) Offset() int64 {
	return s.out.Offset()
}

// Depth returns the number of currently open tags.
func (s *Serializer) Depth() int {
	return len(s.tags)
}

func (s *Serializer) inDocument() error {
	switch s.st {
	case stateStart:
		return ErrNotStarted
	case stateClosed:
		return ErrAlreadyClosed
	}
	return nil
}

func (s *Serializer) token(event Event, typ Type) error {
	return s.out.WriteByte(byte(event) | byte(typ))
}

// StartDocument writes the magic header and the START_DOCUMENT token.
// It must be the first event.
func (s *Serializer) StartDocument() error {
	switch s.st {
	case stateInDocument:
		return ErrAlreadyStarted
	case stateClosed:
		return ErrAlreadyClosed
	}
	if err := s.out.WriteBytes(Magic[:]); err != nil {
		return err
	}
	if err := s.token(StartDocument, TypeNull); err != nil {
		return err
	}
	s.st = stateInDocument
	return nil
}

// EndDocument writes the END_DOCUMENT token and closes the document.
// All tags must be closed first.
func (s *Serializer) EndDocument() error {
	if err := s.inDocument(); err != nil {
		return err
	}
	if len(s.tags) > 0 {
		return fmt.Errorf("%w: %d open at end of document", ErrUnclosedTags, len(s.tags))
	}
	s.attrOpen = false
	if err := s.token(EndDocument, TypeNull); err != nil {
		return err
	}
	s.st = stateClosed
	return s.out.Flush()
}

// StartTag opens an element, interning its name. Attributes may follow
// until the first child event.
func (s *Serializer) StartTag(name string) error {
	if err := s.inDocument(); err != nil {
		return err
	}
	if err := s.token(StartTag, TypeStringInterned); err != nil {
		return err
	}
	if err := s.out.WriteInternedUTF(name); err != nil {
		return err
	}
	s.tags = append(s.tags, name)
	s.attrOpen = true
	return nil
}

// EndTag closes the innermost open element. The name must match the
// top of the tag stack; the intern reference written here always
// refers to the entry created by the matching StartTag.
func (s *Serializer) EndTag(name string) error {
	if err := s.inDocument(); err != nil {
		return err
	}
	n := len(s.tags)
	if n == 0 || s.tags[n-1] != name {
		open := "none"
		if n > 0 {
			open = s.tags[n-1]
		}
		return fmt.Errorf("%w: closing %q, innermost open tag is %q", ErrMismatchedTag, name, open)
	}
	s.tags = s.tags[:n-1]
	s.attrOpen = false
	if err := s.token(EndTag, TypeStringInterned); err != nil {
		return err
	}
	return s.out.WriteInternedUTF(name)
}

// Attr classifies value under the serializer's policy and writes the
// attribute with the chosen representation. Attributes are legal only
// directly after StartTag or another Attr for the same element.
func (s *Serializer) Attr(name, value string) error {
	v, err := classify.Classify(value, s.policy)
	if err != nil {
		return err
	}
	switch v.Kind {
	case classify.KindString:
		return s.AttrString(name, v.Str)
	case classify.KindStringInterned:
		return s.AttrStringInterned(name, v.Str)
	case classify.KindBytesHex:
		return s.AttrBytesHex(name, v.Bytes)
	case classify.KindBytesBase64:
		return s.AttrBytesBase64(name, v.Bytes)
	case classify.KindInt:
		return s.AttrInt(name, int32(v.Int))
	case classify.KindIntHex:
		return s.AttrIntHex(name, int32(v.Int))
	case classify.KindLong:
		return s.AttrLong(name, v.Int)
	case classify.KindLongHex:
		return s.AttrLongHex(name, v.Int)
	case classify.KindFloat:
		return s.AttrFloat(name, float32(v.Float))
	case classify.KindDouble:
		return s.AttrDouble(name, v.Float)
	case classify.KindBooleanTrue:
		return s.AttrBool(name, true)
	case classify.KindBooleanFalse:
		return s.AttrBool(name, false)
	default:
		return s.AttrString(name, value)
	}
}

func (s *Serializer) attrHead(typ Type, name string) error {
	if err := s.inDocument(); err != nil {
		return err
	}
	if !s.attrOpen {
		return fmt.Errorf("%w: %q", ErrOutOfOrderAttribute, name)
	}
	if err := s.token(Attribute, typ); err != nil {
		return err
	}
	return s.out.WriteInternedUTF(name)
}

// AttrString writes an attribute with a length-prefixed string value.
func (s *Serializer) AttrString(name, value string) error {
	if err := s.attrHead(TypeString, name); err != nil {
		return err
	}
	return s.out.WriteUTF(value)
}

// AttrStringInterned writes an attribute whose value goes through the
// intern pool.
func (s *Serializer) AttrStringInterned(name, value string) error {
	if err := s.attrHead(TypeStringInterned, name); err != nil {
		return err
	}
	return s.out.WriteInternedUTF(value)
}

func (s *Serializer) attrBytes(typ Type, name string, value []byte) error {
	if len(value) > MaxUnsignedShort {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrBytesTooLong, len(value), MaxUnsignedShort)
	}
	if err := s.attrHead(typ, name); err != nil {
		return err
	}
	if err := s.out.WriteShort(uint16(len(value))); err != nil {
		return err
	}
	return s.out.WriteBytes(value)
}

// AttrBytesHex writes an attribute carrying a raw byte payload typed
// as hex.
func (s *Serializer) AttrBytesHex(name string, value []byte) error {
	return s.attrBytes(TypeBytesHex, name, value)
}

// AttrBytesBase64 writes an attribute carrying a raw byte payload
// typed as base64.
func (s *Serializer) AttrBytesBase64(name string, value []byte) error {
	return s.attrBytes(TypeBytesBase64, name, value)
}

// AttrInt writes a 4-byte big-endian attribute.
func (s *Serializer) AttrInt(name string, value int32) error {
	if err := s.attrHead(TypeInt, name); err != nil {
		return err
	}
	return s.out.WriteInt(value)
}

// AttrIntHex writes a 4-byte big-endian attribute typed as hex.
func (s *Serializer) AttrIntHex(name string, value int32) error {
	if err := s.attrHead(TypeIntHex, name); err != nil {
		return err
	}
	return s.out.WriteInt(value)
}

// AttrLong writes an 8-byte big-endian attribute.
func (s *Serializer) AttrLong(name string, value int64) error {
	if err := s.attrHead(TypeLong, name); err != nil {
		return err
	}
	return s.out.WriteLong(value)
}

// AttrLongHex writes an 8-byte big-endian attribute typed as hex.
func (s *Serializer) AttrLongHex(name string, value int64) error {
	if err := s.attrHead(TypeLongHex, name); err != nil {
		return err
	}
	return s.out.WriteLong(value)
}

// AttrFloat writes a 4-byte big-endian IEEE-754 attribute.
func (s *Serializer) AttrFloat(name string, value float32) error {
	if err := s.attrHead(TypeFloat, name); err != nil {
		return err
	}
	return s.out.WriteFloat(value)
}

// AttrDouble writes an 8-byte big-endian IEEE-754 attribute.
func (s *Serializer) AttrDouble(name string, value float64) error {
	if err := s.attrHead(TypeDouble, name); err != nil {
		return err
	}
	return s.out.WriteDouble(value)
}

// AttrBool writes an attribute whose value lives entirely in the token
// type nibble; it has no payload bytes.
func (s *Serializer) AttrBool(name string, value bool) error {
	typ := TypeBooleanFalse
	if value {
		typ = TypeBooleanTrue
	}
	return s.attrHead(typ, name)
}

func (s *Serializer) textToken(event Event, text string) error {
	if err := s.inDocument(); err != nil {
		return err
	}
	s.attrOpen = false
	if err := s.token(event, TypeString); err != nil {
		return err
	}
	return s.out.WriteUTF(text)
}

// Text writes character data. It is legal only inside an open tag.
func (s *Serializer) Text(text string) error {
	if s.st == stateInDocument && len(s.tags) == 0 {
		return fmt.Errorf("%w: %q", ErrTextOutsideTag, text)
	}
	return s.textToken(Text, text)
}

// CDSect writes a CDATA section. It is legal only inside an open tag.
func (s *Serializer) CDSect(text string) error {
	if s.st == stateInDocument && len(s.tags) == 0 {
		return fmt.Errorf("%w: CDATA", ErrTextOutsideTag)
	}
	return s.textToken(CDSect, text)
}

// Comment writes a comment.
func (s *Serializer) Comment(text string) error {
	return s.textToken(Comment, text)
}

// ProcInst writes a processing instruction. The text carries the
// target and data joined by a space.
func (s *Serializer) ProcInst(text string) error {
	return s.textToken(ProcessingInstr, text)
}

// DocDecl writes a document type declaration.
func (s *Serializer) DocDecl(text string) error {
	return s.textToken(DocDecl, text)
}

// EntityRef writes an entity reference by name.
func (s *Serializer) EntityRef(name string) error {
	return s.textToken(EntityRef, name)
}

// IgnorableWhitespace writes whitespace-only character data.
func (s *Serializer) IgnorableWhitespace(text string) error {
	return s.textToken(IgnorableWhitespace, text)
}
