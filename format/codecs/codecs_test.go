package codecs_test

import (
	"bytes"
	"testing"

	"github.com/eluv-io/errors-go"
	"github.com/stretchr/testify/require"

	"github.com/eluv-io/rlp-go/format/codecs"
)

type block struct {
	Height uint64
	Hash   [4]byte
	Txs    []string
}

var testBlock = block{
	Height: 1024,
	Hash:   [4]byte{0xde, 0xad, 0xbe, 0xef},
	Txs:    []string{"cat", "dog"},
}

func TestRlpCodecRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, codecs.RlpEncode(buf, testBlock))

	var res block
	require.NoError(t, codecs.RlpDecode(bytes.NewReader(buf.Bytes()), &res))
	require.Equal(t, testBlock, res)
}

func TestRlpCodecStream(t *testing.T) {
	// consecutive values on one stream
	buf := &bytes.Buffer{}
	enc := codecs.RlpCodec.Encoder(buf)
	require.NoError(t, enc.Encode(testBlock))
	require.NoError(t, enc.Encode(uint16(1024)))

	dec := codecs.RlpCodec.Decoder(bytes.NewReader(buf.Bytes()))
	var b block
	require.NoError(t, dec.Decode(&b))
	require.Equal(t, testBlock, b)
	var x uint16
	require.NoError(t, dec.Decode(&x))
	require.Equal(t, uint16(1024), x)
}

func TestRlpMultiCodec(t *testing.T) {
	require.Equal(t, codecs.RlpMultiCodecPath, codecs.RlpMultiCodec.Header().Path())

	buf := &bytes.Buffer{}
	enc := codecs.NewRlpCodec().Encoder(buf)
	require.NoError(t, enc.Encode(testBlock))
	require.NoError(t, enc.Encode(uint16(1024)))

	// the header is written once, before the first value
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte(codecs.RlpMultiCodec.Header())))

	dec := codecs.NewRlpCodec().Decoder(bytes.NewReader(buf.Bytes()))
	var b block
	require.NoError(t, dec.Decode(&b))
	require.Equal(t, testBlock, b)
	var x uint16
	require.NoError(t, dec.Decode(&x))
	require.Equal(t, uint16(1024), x)
}

func TestRlpMultiCodecHeaderMismatch(t *testing.T) {
	other := codecs.NewMultiCodec(codecs.RlpCodec, "/other")
	buf := &bytes.Buffer{}
	require.NoError(t, other.Encoder(buf).Encode(testBlock))

	var res block
	err := codecs.NewRlpCodec().Decoder(bytes.NewReader(buf.Bytes())).Decode(&res)
	require.Error(t, err)
	reason, ok := errors.GetField(err, "reason")
	require.True(t, ok)
	require.Equal(t, "invalid header", reason)
}

func TestRlpDecodeMalformed(t *testing.T) {
	var res block
	err := codecs.RlpDecode(bytes.NewReader([]byte{0x81, 0x7f}), &res)
	require.Error(t, err)
}
