package rlp

import (
	"math/big"

	"github.com/eluv-io/errors-go"
	"github.com/eluv-io/log-go"

	"github.com/eluv-io/rlp-go/util/byteutil"
)

// Field codecs for numeric scalars. These operate on scalar payloads, i.e.
// the bytes passed to Writer.WriteScalar or returned from Reader.NextScalar
// and Tree.Next, not on framed encodings.
//
// The canonical mapping for an unsigned integer is its minimal big-endian
// byte string; zero maps to the empty byte string, not to a single zero
// byte. One routine covers all widths instead of one function per integer
// type.

// EncodeUint returns the scalar payload for x.
func EncodeUint(x uint64) []byte {
	return byteutil.AppendBigEndian(nil, x)
}

// DecodeUint decodes a scalar payload into an unsigned integer of the given
// bit width (8, 16, 32 or 64). Payloads with a leading zero byte and
// payloads exceeding the width are rejected.
func DecodeUint(b []byte, bits int) (uint64, error) {
	if bits < 8 || bits > 64 || bits%8 != 0 {
		log.Fatal("invalid integer bit width", "bits", bits)
	}
	e := errors.TemplateNoTrace("rlp.DecodeUint", errors.K.Invalid, "reason", reasonMalformed)
	if len(b) > 0 && b[0] == 0 {
		return 0, e("cause", "leading zero in integer")
	}
	if len(b)*8 > bits {
		return 0, e("cause", "integer overflow", "len", len(b), "bits", bits)
	}
	return byteutil.BigEndianUint64(b), nil
}

// EncodeBig returns the scalar payload for x: its minimal big-endian bytes,
// with both nil and zero mapping to the empty payload. Negative values have
// no wire representation and are rejected.
func EncodeBig(x *big.Int) ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	if x.Sign() < 0 {
		return nil, errors.E("rlp.EncodeBig", errors.K.Invalid,
			"reason", "negative integer", "value", x.String())
	}
	if x.Sign() == 0 {
		return nil, nil
	}
	return x.Bytes(), nil
}

// DecodeBig decodes a scalar payload into a big integer, rejecting payloads
// with a leading zero byte.
func DecodeBig(b []byte) (*big.Int, error) {
	if len(b) > 0 && b[0] == 0 {
		return nil, errors.NoTrace("rlp.DecodeBig", errors.K.Invalid,
			"reason", reasonMalformed, "cause", "leading zero in integer")
	}
	return new(big.Int).SetBytes(b), nil
}
