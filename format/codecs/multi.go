package codecs

import (
	"bytes"
	"io"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/rlp-go/format/codecs/header"
)

// MultiCodec is the interface for a Codec that produces and consumes self-describing encodings. During encoding, it
// writes a header as a prefix to the encoded data stream. On decoding, it reads the header and ensures that it
// matches.
type MultiCodec interface {
	Header() header.Header
	Encoder(w io.Writer) Encoder
	Decoder(r io.Reader) Decoder
}

////////////////////////////////////////////////////////////////////////////////

func NewMultiCodec(codec Codec, path string) MultiCodec {
	return &multiCodec{
		codec:  codec,
		header: header.New(path),
	}
}

type multiCodec struct {
	codec  Codec
	header header.Header
}

func (m *multiCodec) Header() header.Header {
	return m.header
}

func (m *multiCodec) Encoder(w io.Writer) Encoder {
	return NewMultiEncoder(w, m.codec.Encoder(w), m.header.Path())
}

func (m *multiCodec) Decoder(r io.Reader) Decoder {
	return NewMultiDecoder(r, m.codec.Decoder(r), m.header.Path())
}

////////////////////////////////////////////////////////////////////////////////

//goland:noinspection GoExportedFuncWithUnexportedType
func NewMultiEncoder(writer io.Writer, encoder Encoder, path string) *multiEncoder {
	return &multiEncoder{
		writer:  writer,
		encoder: encoder,
		header:  header.New(path),
	}
}

type multiEncoder struct {
	writer        io.Writer
	encoder       Encoder
	header        header.Header
	headerWritten bool
}

func (e *multiEncoder) writeHeader() (err error) {
	if !e.headerWritten {
		err = header.WriteHeader(e.writer, e.header)
		if err != nil {
			return err
		}
		e.headerWritten = true
	}
	return nil
}

func (e *multiEncoder) Encode(obj interface{}) error {
	err := e.writeHeader()
	if err == nil {
		err = e.encoder.Encode(obj)
	}
	return err
}

////////////////////////////////////////////////////////////////////////////////

//goland:noinspection GoExportedFuncWithUnexportedType
func NewMultiDecoder(reader io.Reader, decoder Decoder, path string) *multiDecoder {
	return &multiDecoder{
		reader:  reader,
		decoder: decoder,
		header:  header.New(path),
	}
}

type multiDecoder struct {
	reader     io.Reader
	decoder    Decoder
	header     header.Header
	headerRead bool
}

func (d *multiDecoder) readHeader() error {
	if !d.headerRead {
		hdr, err := header.ReadHeader(d.reader)
		if err != nil {
			return err
		}
		if !bytes.Equal(hdr, d.header) {
			return errors.E("multiDecoder.readHeader", errors.K.Invalid,
				"reason", "invalid header",
				"expected", d.header,
				"actual", hdr)
		}
		d.headerRead = true
	}
	return nil
}

func (d *multiDecoder) Decode(obj interface{}) error {
	err := d.readHeader()
	if err == nil {
		err = d.decoder.Decode(obj)
	}
	return err
}
