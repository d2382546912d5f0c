// Package stream models XML parse events and supplies them in
// document order.
//
// [Source] is the pull interface the converter consumes: Next returns
// one event at a time and io.EOF at the end of the document. No
// read-ahead happens; each event is fully processed downstream before
// the next is requested.
//
// [XMLSource] adapts the standard library XML decoder to Source. It is
// the external parser collaborator: the binary encoding layers in
// package abx never see XML text.
package stream
