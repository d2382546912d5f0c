// Package convert drives a stream.Source into an abx.Serializer,
// turning one XML document into one ABX byte stream.
//
// [Reader] converts XML text from an io.Reader; [Events] converts an
// already-constructed event source. Both are single-shot: any error is
// terminal for the conversion and the output must be discarded.
package convert
