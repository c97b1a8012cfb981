package rlp_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eluv-io/rlp-go/format/rlp"
	"github.com/eluv-io/rlp-go/util/byteutil"
)

func TestEncodeScalars(t *testing.T) {
	tests := []struct {
		name string
		val  rlp.Value
		want []byte
	}{
		{"zero byte", rlp.Scalar{0x00}, []byte{0x00}},
		{"fifteen", rlp.Scalar{0x0f}, []byte{0x0f}},
		{"below framing threshold", rlp.Scalar{0x7f}, []byte{0x7f}},
		{"at framing threshold", rlp.Scalar{0x80}, []byte{0x81, 0x80}},
		{"empty scalar", rlp.Scalar{}, []byte{0x80}},
		{"absent value", nil, []byte{0x80}},
		{"1024 big-endian", rlp.Scalar{0x04, 0x00}, []byte{0x82, 0x04, 0x00}},
		{"dog", rlp.Scalar("dog"), []byte{0x83, 'd', 'o', 'g'}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := rlp.Encode(test.val)
			require.NoError(t, err)
			require.Equal(t, test.want, res)
		})
	}
}

func TestEncodeCompounds(t *testing.T) {
	res, err := rlp.Encode(rlp.Compound{rlp.Scalar("cat"), rlp.Scalar("dog")})
	require.NoError(t, err)
	require.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, res)

	res, err = rlp.Encode(rlp.Compound{})
	require.NoError(t, err)
	require.Equal(t, []byte{0xc0}, res)

	// [ [], [[]], [ [], [[]] ] ]
	res, err = rlp.Encode(rlp.Compound{
		rlp.Compound{},
		rlp.Compound{rlp.Compound{}},
		rlp.Compound{rlp.Compound{}, rlp.Compound{rlp.Compound{}}},
	})
	require.NoError(t, err)
	require.Equal(t, []byte{0xc7, 0xc0, 0xc1, 0xc0, 0xc3, 0xc0, 0xc1, 0xc0}, res)
}

func TestEncodeLengthThresholds(t *testing.T) {
	// 55 bytes: short form, one framing byte
	b55 := byteutil.RandomBytes(55)
	res, err := rlp.Encode(rlp.Scalar(b55))
	require.NoError(t, err)
	require.Equal(t, byte(0xb7), res[0])
	require.Equal(t, b55, res[1:])

	// 56 bytes: long form, length-of-length 1
	b56 := byteutil.RandomBytes(56)
	res, err = rlp.Encode(rlp.Scalar(b56))
	require.NoError(t, err)
	require.Equal(t, []byte{0xb8, 0x38}, res[:2])
	require.Equal(t, b56, res[2:])

	// 57 bytes
	b57 := byteutil.RandomBytes(57)
	res, err = rlp.Encode(rlp.Scalar(b57))
	require.NoError(t, err)
	require.Equal(t, []byte{0xb8, 0x39}, res[:2])
	require.Equal(t, b57, res[2:])

	// 256 bytes: length-of-length 2, no leading zero in the length
	b256 := byteutil.RandomBytes(256)
	res, err = rlp.Encode(rlp.Scalar(b256))
	require.NoError(t, err)
	require.Equal(t, []byte{0xb9, 0x01, 0x00}, res[:3])
	require.Equal(t, b256, res[3:])

	// compound thresholds: 56 single-byte scalars need the long form
	short := make(rlp.Compound, 55)
	long := make(rlp.Compound, 56)
	for i := range short {
		short[i] = rlp.Scalar{0x01}
	}
	for i := range long {
		long[i] = rlp.Scalar{0x01}
	}
	res, err = rlp.Encode(short)
	require.NoError(t, err)
	require.Equal(t, byte(0xf7), res[0])
	res, err = rlp.Encode(long)
	require.NoError(t, err)
	require.Equal(t, []byte{0xf8, 0x38}, res[:2])
}

func TestEncoderDirect(t *testing.T) {
	e := rlp.NewEncoder()
	e.BeginCompound()
	e.WriteScalar([]byte("cat"))
	e.WriteScalar([]byte("dog"))
	require.NoError(t, e.EndCompound())
	res, err := e.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{0xc8, 0x83, 'c', 'a', 't', 0x83, 'd', 'o', 'g'}, res)
}

func TestEncoderUnbalanced(t *testing.T) {
	e := rlp.NewEncoder()
	err := e.EndCompound()
	require.Error(t, err)

	e = rlp.NewEncoder()
	e.BeginCompound()
	_, err = e.Bytes()
	require.Error(t, err)
}

func TestEncoderWriteRaw(t *testing.T) {
	inner, err := rlp.Encode(rlp.Compound{rlp.Scalar("cat"), rlp.Scalar("dog")})
	require.NoError(t, err)

	e := rlp.NewEncoder()
	e.BeginCompound()
	e.WriteRaw(inner)
	e.WriteScalar([]byte("x"))
	require.NoError(t, e.EndCompound())
	res, err := e.Bytes()
	require.NoError(t, err)

	want, err := rlp.Encode(rlp.Compound{
		rlp.Compound{rlp.Scalar("cat"), rlp.Scalar("dog")},
		rlp.Scalar("x"),
	})
	require.NoError(t, err)
	require.Equal(t, want, res)
}

func TestEncodeDeeplyNested(t *testing.T) {
	// nesting is handled with an explicit stack, not call-stack recursion
	var v rlp.Value = rlp.Scalar{0x01}
	for i := 0; i < 100_000; i++ {
		v = rlp.Compound{v}
	}
	res, err := rlp.Encode(v)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(res, []byte{0xc1, 0x01}))
}
