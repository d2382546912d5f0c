package abx

import "errors"

var (
	ErrAlreadyStarted      = errors.New("document already started")
	ErrNotStarted          = errors.New("document not started")
	ErrAlreadyClosed       = errors.New("document closed")
	ErrMismatchedTag       = errors.New("mismatched end tag")
	ErrOutOfOrderAttribute = errors.New("attribute after element content")
	ErrUnclosedTags        = errors.New("unclosed tags")
	ErrTextOutsideTag      = errors.New("text outside any open tag")
	ErrStringTooLong       = errors.New("string too long")
	ErrBytesTooLong        = errors.New("binary data too long")
	ErrInternOverflow      = errors.New("intern table overflow")
)
