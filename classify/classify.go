package classify

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrInvalidHex    = errors.New("invalid hex payload")
	ErrInvalidBase64 = errors.New("invalid base64 payload")
)

// Kind identifies the binary representation chosen for a value.
type Kind int

const (
	KindString Kind = iota
	KindStringInterned
	KindBytesHex
	KindBytesBase64
	KindInt
	KindIntHex
	KindLong
	KindLongHex
	KindFloat
	KindDouble
	KindBooleanTrue
	KindBooleanFalse
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindStringInterned:
		return "string-interned"
	case KindBytesHex:
		return "bytes-hex"
	case KindBytesBase64:
		return "bytes-base64"
	case KindInt:
		return "int"
	case KindIntHex:
		return "int-hex"
	case KindLong:
		return "long"
	case KindLongHex:
		return "long-hex"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindBooleanTrue:
		return "boolean-true"
	case KindBooleanFalse:
		return "boolean-false"
	default:
		return "unknown"
	}
}

// Value is a classified attribute value. Only the field matching Kind
// is meaningful: Str for strings, Bytes for byte payloads, Int for
// int/long, Float for float/double. Booleans carry no payload.
type Value struct {
	Kind  Kind
	Str   string
	Bytes []byte
	Int   int64
	Float float64
}

// Classify selects the binary representation of text under p.
// p may be nil, in which case [DefaultPolicy] applies.
func Classify(text string, p *Policy) (Value, error) {
	if p == nil {
		p = DefaultPolicy()
	}
	if p.HexPrefix != "" && strings.HasPrefix(text, p.HexPrefix) {
		data, err := hex.DecodeString(text[len(p.HexPrefix):])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidHex, err)
		}
		return Value{Kind: KindBytesHex, Bytes: data}, nil
	}
	if p.Base64Prefix != "" && strings.HasPrefix(text, p.Base64Prefix) {
		data, err := base64.StdEncoding.DecodeString(text[len(p.Base64Prefix):])
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
		}
		return Value{Kind: KindBytesBase64, Bytes: data}, nil
	}
	if p.Booleans {
		switch text {
		case "true":
			return Value{Kind: KindBooleanTrue}, nil
		case "false":
			return Value{Kind: KindBooleanFalse}, nil
		}
	}
	if p.Numbers {
		if v, ok := classifyNumber(text); ok {
			return v, nil
		}
	}
	if p.InternValues && len(text) < p.InternLimit && !strings.Contains(text, " ") {
		return Value{Kind: KindStringInterned, Str: text}, nil
	}
	return Value{Kind: KindString, Str: text}, nil
}

// classifyNumber picks int, long, float, or double for text that
// round-trips exactly to the same decimal string. Values that do not
// round-trip (leading zeros, explicit '+', alternate exponent
// spellings) stay strings so the encoding remains reversible.
func classifyNumber(text string) (Value, bool) {
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		if strconv.FormatInt(i, 10) != text {
			return Value{}, false
		}
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return Value{Kind: KindInt, Int: i}, true
		}
		return Value{Kind: KindLong, Int: i}, true
	}
	if f, err := strconv.ParseFloat(text, 32); err == nil {
		if strconv.FormatFloat(f, 'g', -1, 32) == text {
			return Value{Kind: KindFloat, Float: f}, true
		}
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		if strconv.FormatFloat(f, 'g', -1, 64) == text {
			return Value{Kind: KindDouble, Float: f}, true
		}
	}
	return Value{}, false
}
