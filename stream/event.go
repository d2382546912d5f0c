package stream

import "fmt"

// Event is one XML parse event. Events arrive in document order with
// matched nesting; attributes follow their StartTag before any child
// event.
type Event struct {
	Type EventType

	// Name is set for StartTag, EndTag, and Attr events.
	Name string

	// Value is set for Attr events.
	Value string

	// Text is set for Text, CDSect, Comment, ProcInst, DocDecl,
	// EntityRef, and IgnorableWhitespace events.
	Text string
}

func (e *Event) String() string {
	switch e.Type {
	case EventStartTag, EventEndTag:
		return fmt.Sprintf("%s(%s)", e.Type, e.Name)
	case EventAttr:
		return fmt.Sprintf("%s(%s=%q)", e.Type, e.Name, e.Value)
	default:
		return fmt.Sprintf("%s(%q)", e.Type, e.Text)
	}
}

// EventType identifies the kind of a parse event.
type EventType int

const (
	EventStartTag EventType = iota
	EventEndTag
	EventAttr
	EventText
	EventCDSect
	EventComment
	EventProcInst
	EventDocDecl
	EventEntityRef
	EventIgnorableWhitespace
)

func (t EventType) String() string {
	switch t {
	case EventStartTag:
		return "StartTag"
	case EventEndTag:
		return "EndTag"
	case EventAttr:
		return "Attr"
	case EventText:
		return "Text"
	case EventCDSect:
		return "CDSect"
	case EventComment:
		return "Comment"
	case EventProcInst:
		return "ProcInst"
	case EventDocDecl:
		return "DocDecl"
	case EventEntityRef:
		return "EntityRef"
	case EventIgnorableWhitespace:
		return "IgnorableWhitespace"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"StartTag":            EventStartTag,
		"EndTag":              EventEndTag,
		"Attr":                EventAttr,
		"Text":                EventText,
		"CDSect":              EventCDSect,
		"Comment":             EventComment,
		"ProcInst":            EventProcInst,
		"DocDecl":             EventDocDecl,
		"EntityRef":           EventEntityRef,
		"IgnorableWhitespace": EventIgnorableWhitespace,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
