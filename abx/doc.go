// Package abx writes Android Binary XML (ABX), the compact typed
// binary encoding Android system services use for configuration and
// policy files.
//
// [Serializer] is an event-driven writer: feed it StartDocument,
// StartTag, Attr, Text, EndTag, EndDocument in document order and it
// emits the corresponding binary tokens to an io.Writer.
//
// [DataOutput] is the lower layer: big-endian primitive writes plus
// the per-document string intern pool.
//
// # Example
//
//	s := abx.NewSerializer(w)
//	s.StartDocument()
//	s.StartTag("root")
//	s.Attr("attr", "value")
//	s.Text("text")
//	s.EndTag("root")
//	s.EndDocument()
package abx
