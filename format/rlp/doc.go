// Package rlp implements the canonical recursive-length-prefix (RLP)
// encoding used for cross-implementation, bit-exact serialization of nested
// byte strings (e.g. blockchain state and transactions).
//
// The wire format knows exactly two kinds of values:
//   - a scalar: a byte string of any length, including zero
//   - a compound: an ordered sequence of values, including the empty sequence
//
// Framing is a length prefix chosen by the first byte t of an encoding:
//
//	0x00-0x7F  literal scalar  the byte is the value, no framing
//	0x80-0xB7  short scalar    payload length is t - 0x80
//	0xB8-0xBF  long scalar     t - 0xB7 bytes of big-endian payload length
//	0xC0-0xF7  short compound  payload length is t - 0xC0
//	0xF8-0xFF  long compound   t - 0xF7 bytes of big-endian payload length
//
// Every value has exactly one valid encoding: lengths are minimal big-endian
// with no leading zero byte, the short form is mandatory below 56 payload
// bytes, and a single byte below 0x80 is emitted without any framing. The
// decoder rejects all non-canonical variants.
//
// Encoding is driven through an Encoder (an explicit stack of per-compound
// buffers) or through Marshal, which maps native Go values onto the
// scalar/compound model via reflection. Decoding parses the input once into
// a Tree of spans borrowed from the input buffer (zero copy), which is then
// consumed leaf by leaf in encoding order, either directly via Tree.Next or
// field by field via a Reader. The caller must keep the input buffer alive
// for as long as any span obtained from the tree is in use.
//
// The wire format has no representation for booleans, floating-point
// numbers, maps, or union discriminants. Decoding a value whose shape
// depends on its content (a tagged union) requires content-based resolution
// through a Proxy: see the Proxy type.
package rlp
