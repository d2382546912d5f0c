package stream

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ErrMalformedXML wraps any failure reported by the upstream XML
// parser. It is fatal for the conversion.
var ErrMalformedXML = errors.New("malformed xml")

// Source supplies parse events in document order. Next returns io.EOF
// after the last event. Sources are finite and non-restartable.
type Source interface {
	Next() (*Event, error)
}

// WarnFunc receives a warning about an XML construct ABX cannot
// represent faithfully. feature names the construct, detail the
// occurrence.
type WarnFunc func(feature, detail string)

// SourceOption configures an XMLSource.
type SourceOption func(*XMLSource)

// WithWarningFunc sets the warning callback. The default discards
// warnings.
func WithWarningFunc(fn WarnFunc) SourceOption {
	return func(s *XMLSource) { s.warn = fn }
}

// XMLSource yields parse events from an XML document. Attributes are
// delivered as separate Attr events directly after their StartTag, in
// document order.
//
// Namespace prefixes and non-UTF-8 encoding declarations are reported
// through the warning callback; the decoder resolves prefixes away, so
// events carry local names only.
type XMLSource struct {
	dec     *xml.Decoder
	pending []Event
	warn    WarnFunc
}

// NewXMLSource creates a source reading XML text from r.
func NewXMLSource(r io.Reader, opts ...SourceOption) *XMLSource {
	s := &XMLSource{
		dec:  xml.NewDecoder(r),
		warn: func(string, string) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next returns the next parse event, or io.EOF at the end of the
// document.
func (s *XMLSource) Next() (*Event, error) {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			return &ev, nil
		}
		tok, err := s.dec.Token()
		if err == io.EOF {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedXML, err)
		}
		if ev := s.convert(tok); ev != nil {
			return ev, nil
		}
	}
}

func (s *XMLSource) convert(tok xml.Token) *Event {
	switch t := tok.(type) {
	case xml.StartElement:
		if t.Name.Space != "" {
			s.warn("Namespaces and prefixes", fmt.Sprintf("found prefixed element: %s", t.Name.Local))
		}
		for _, attr := range t.Attr {
			s.pending = append(s.pending, Event{
				Type:  EventAttr,
				Name:  s.attrName(attr.Name),
				Value: attr.Value,
			})
		}
		return &Event{Type: EventStartTag, Name: t.Name.Local}
	case xml.EndElement:
		return &Event{Type: EventEndTag, Name: t.Name.Local}
	case xml.CharData:
		text := string(t)
		if isWhitespace(text) {
			return &Event{Type: EventIgnorableWhitespace, Text: text}
		}
		return &Event{Type: EventText, Text: text}
	case xml.Comment:
		return &Event{Type: EventComment, Text: string(t)}
	case xml.ProcInst:
		if t.Target == "xml" {
			s.checkDeclaration(string(t.Inst))
			return nil
		}
		text := t.Target
		if len(t.Inst) > 0 {
			text += " " + string(t.Inst)
		}
		return &Event{Type: EventProcInst, Text: text}
	case xml.Directive:
		return &Event{Type: EventDocDecl, Text: string(t)}
	default:
		return nil
	}
}

// attrName reconstructs the attribute name the document carried.
// Namespace declarations and prefixed attributes are kept but warned
// about, since ABX has no namespace support.
func (s *XMLSource) attrName(name xml.Name) string {
	switch {
	case name.Space == "" && name.Local == "xmlns":
		s.warn("Namespaces and prefixes", "found namespace declaration: xmlns")
		return "xmlns"
	case name.Space == "xmlns":
		s.warn("Namespaces and prefixes", fmt.Sprintf("found namespace declaration: xmlns:%s", name.Local))
		return "xmlns:" + name.Local
	case name.Space != "":
		s.warn("Namespaces and prefixes", fmt.Sprintf("found prefixed attribute: %s", name.Local))
		return name.Local
	default:
		return name.Local
	}
}

// checkDeclaration inspects the <?xml ...?> declaration, which is
// consumed rather than encoded. ABX payloads are always UTF-8.
func (s *XMLSource) checkDeclaration(inst string) {
	lower := strings.ToLower(inst)
	if strings.Contains(lower, "encoding") && !strings.Contains(lower, "utf-8") {
		s.warn("Non-UTF-8 encoding", fmt.Sprintf("found in declaration: %s", inst))
	}
}

func isWhitespace(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
