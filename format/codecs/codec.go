package codecs

import (
	"io"
)

// Codec bundles the two directions of a serialization format: an Encoder
// turns values into bytes on a writer, a Decoder turns bytes from a reader
// back into values.
type Codec interface {
	// Encoder returns an Encoder writing encodings to w.
	Encoder(w io.Writer) Encoder

	// Decoder returns a Decoder reading encodings from r.
	Decoder(r io.Reader) Decoder
}

// Encoder writes the encoding of each value passed to Encode to an
// underlying io.Writer.
type Encoder interface {
	Encode(obj interface{}) error
}

// Decoder reads one encoded value per Decode call from an underlying
// io.Reader and decodes it into the given object.
type Decoder interface {
	Decode(obj interface{}) error
}

////////////////////////////////////////////////////////////////////////////////

type CreateEncoderFn func(w io.Writer) Encoder
type CreateDecoderFn func(r io.Reader) Decoder

// NewCodec assembles a Codec from the given encoder and decoder
// constructors.
func NewCodec(enc CreateEncoderFn, dec CreateDecoderFn) Codec {
	return &codec{encoderFn: enc, decoderFn: dec}
}

type codec struct {
	encoderFn CreateEncoderFn
	decoderFn CreateDecoderFn
}

func (c *codec) Encoder(w io.Writer) Encoder {
	return c.encoderFn(w)
}

func (c *codec) Decoder(r io.Reader) Decoder {
	return c.decoderFn(r)
}
