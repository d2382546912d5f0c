package abx

// Magic identifies an ABX version 0 stream. It is written once, before
// the START_DOCUMENT token.
var Magic = [4]byte{0x41, 0x42, 0x58, 0x00}

// Event is the low nibble of a token byte. The numbering follows the
// XmlPullParser event codes used by Android's binary XML.
type Event byte

const (
	StartDocument       Event = 0
	EndDocument         Event = 1
	StartTag            Event = 2
	EndTag              Event = 3
	Text                Event = 4
	CDSect              Event = 5
	EntityRef           Event = 6
	IgnorableWhitespace Event = 7
	ProcessingInstr     Event = 8
	Comment             Event = 9
	DocDecl             Event = 10
	Attribute           Event = 15
)

func (e Event) String() string {
	switch e {
	case StartDocument:
		return "StartDocument"
	case EndDocument:
		return "EndDocument"
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Text:
		return "Text"
	case CDSect:
		return "CDSect"
	case EntityRef:
		return "EntityRef"
	case IgnorableWhitespace:
		return "IgnorableWhitespace"
	case ProcessingInstr:
		return "ProcessingInstr"
	case Comment:
		return "Comment"
	case DocDecl:
		return "DocDecl"
	case Attribute:
		return "Attribute"
	default:
		return "Unknown"
	}
}

// Type is the high nibble of a token byte. It selects the payload
// encoding that follows the token.
type Type byte

const (
	TypeNull           Type = 1 << 4
	TypeString         Type = 2 << 4
	TypeStringInterned Type = 3 << 4
	TypeBytesHex       Type = 4 << 4
	TypeBytesBase64    Type = 5 << 4
	TypeInt            Type = 6 << 4
	TypeIntHex         Type = 7 << 4
	TypeLong           Type = 8 << 4
	TypeLongHex        Type = 9 << 4
	TypeFloat          Type = 10 << 4
	TypeDouble         Type = 11 << 4
	TypeBooleanTrue    Type = 12 << 4
	TypeBooleanFalse   Type = 13 << 4
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeString:
		return "string"
	case TypeStringInterned:
		return "string-interned"
	case TypeBytesHex:
		return "bytes-hex"
	case TypeBytesBase64:
		return "bytes-base64"
	case TypeInt:
		return "int"
	case TypeIntHex:
		return "int-hex"
	case TypeLong:
		return "long"
	case TypeLongHex:
		return "long-hex"
	case TypeFloat:
		return "float"
	case TypeDouble:
		return "double"
	case TypeBooleanTrue:
		return "boolean-true"
	case TypeBooleanFalse:
		return "boolean-false"
	default:
		return "unknown"
	}
}
