// Package classify decides the binary representation of XML attribute
// values.
//
// [Classify] is a pure function over a value and a [Policy]. The
// precedence between representations is fixed: hex payload, base64
// payload, boolean, int, long, float, double, then string. A Policy
// only controls which steps apply (byte-payload prefixes, numeric
// detection, interning thresholds), never their order, so identical
// input and policy always classify identically.
package classify
