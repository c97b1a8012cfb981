package rlp

// Value is the abstract value model of the codec: either a Scalar or a
// Compound. A nil Value stands for an absent value and encodes to the empty
// scalar (the single byte 0x80).
type Value interface {
	isValue()
}

// Scalar is a byte string of any length, the only primitive value kind in
// the wire format. An empty Scalar and an empty Compound are distinct values
// with distinct encodings (0x80 vs 0xC0).
type Scalar []byte

// Compound is an ordered, possibly empty, sequence of values.
type Compound []Value

func (Scalar) isValue()   {}
func (Compound) isValue() {}

// Writer is the encode-side surface of the value-model bridge: a depth-first
// sequence of scalar writes and begin/end compound calls, as produced by an
// adapter that maps native values onto the scalar/compound model.
type Writer interface {
	// WriteScalar appends the scalar encoding of b to the innermost open
	// compound. An absent value is written as WriteScalar(nil).
	WriteScalar(b []byte)

	// WriteRaw appends b verbatim, assuming it is already a complete
	// encoding.
	WriteRaw(b []byte)

	// BeginCompound opens a nested compound. Every call must be matched by a
	// call to EndCompound.
	BeginCompound()

	// EndCompound closes the innermost open compound.
	EndCompound() error
}
