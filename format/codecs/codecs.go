package codecs

import (
	"io"

	"github.com/eluv-io/log-go"

	"github.com/eluv-io/rlp-go/format/codecs/header"
	"github.com/eluv-io/rlp-go/format/rlp"
)

var (
	RlpCodec = makeRlpCodec()

	RlpMultiCodecPath = "/rlp"

	RlpMultiCodec = makeRlpMultiCodec()
)

// NewRlpCodec returns the streaming MultiCodec for the canonical RLP format:
// encodings are prefixed with a self-describing "/rlp" header.
func NewRlpCodec() MultiCodec {
	return RlpMultiCodec
}

// RlpEncode encodes the given value as RLP and writes it to the writer without MultiCodec support (i.e. no MultiCodec
// header is written).
func RlpEncode(w io.Writer, v interface{}) error {
	return RlpCodec.Encoder(w).Encode(v)
}

// RlpDecode decodes rlp-encoded data from the provided reader into the given data structure. The data is not expected
// to have a MultiCodec header.
func RlpDecode(r io.Reader, v interface{}) error {
	return RlpCodec.Decoder(r).Decode(v)
}

func makeRlpCodec() Codec {
	return NewCodec(
		func(w io.Writer) Encoder {
			return &rlpEncoder{writer: w}
		},
		func(r io.Reader) Decoder {
			return &rlpDecoder{reader: r}
		},
	)
}

func makeRlpMultiCodec() MultiCodec {
	_, err := header.NewNoPanic(RlpMultiCodecPath)
	if err != nil {
		log.Fatal("invalid rlp multicodec path", err, "path", RlpMultiCodecPath)
	}
	return NewMultiCodec(makeRlpCodec(), RlpMultiCodecPath)
}

type rlpEncoder struct {
	writer io.Writer
}

func (e *rlpEncoder) Encode(obj interface{}) error {
	b, err := rlp.Marshal(obj)
	if err != nil {
		return err
	}
	_, err = e.writer.Write(b)
	return err
}

type rlpDecoder struct {
	reader io.Reader
}

func (d *rlpDecoder) Decode(obj interface{}) error {
	b, err := rlp.ReadValue(d.reader)
	if err != nil {
		return err
	}
	return rlp.Unmarshal(b, obj)
}
