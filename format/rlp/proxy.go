package rlp

// Proxy captures the raw encoding of a single value without interpreting it,
// together with the number of leaves that span holds. It exists for values
// whose shape depends on their content: the wire format carries no union
// discriminant, so distinguishing, say, the variants of a tagged union is
// only possible by inspecting the encoded data itself — branch on
// ValueCount or on the first leaf of a rebuilt tree, then decode the raw
// span as the shape that matched.
//
// The raw span borrows from the buffer the Proxy was captured from; the
// Proxy deliberately never invents a discriminant encoding, as that would
// break interoperability with peer implementations of the wire format.
type Proxy struct {
	raw        []byte
	valueCount int
}

// Raw returns the captured encoding, framing included.
func (p *Proxy) Raw() []byte {
	return p.raw
}

// ValueCount returns the number of leaves in the captured span.
func (p *Proxy) ValueCount() int {
	return p.valueCount
}

// Tree rebuilds a fresh, independent Tree from the captured span. It may be
// called any number of times; each call parses anew.
func (p *Proxy) Tree() (*Tree, error) {
	return NewTree(p.raw)
}

// Unmarshal decodes the captured span into target, like Unmarshal on the
// raw bytes.
func (p *Proxy) Unmarshal(target interface{}) error {
	return Unmarshal(p.raw, target)
}
