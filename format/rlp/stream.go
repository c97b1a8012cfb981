package rlp

import (
	"io"

	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/rlp-go/util/byteutil"
)

// ReadValue reads exactly one encoded value from r and returns its bytes,
// framing included. It validates the framing but not the payload of
// compounds; pass the result to NewTree or Unmarshal for full validation.
func ReadValue(r io.Reader) ([]byte, error) {
	e := errors.Template("rlp.ReadValue", errors.K.IO)
	m := errors.Template("rlp.ReadValue", errors.K.Invalid, "reason", reasonMalformed)

	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return nil, e(err)
	}
	t := first[0]
	if t < scalarBase {
		return []byte{t}, nil
	}

	var size, lenOfLen int
	switch {
	case t <= scalarLongBase:
		size = int(t - scalarBase)
	case t < compoundBase:
		lenOfLen = int(t - scalarLongBase)
	case t <= compoundLongBase:
		size = int(t - compoundBase)
	default:
		lenOfLen = int(t - compoundLongBase)
	}

	buf := make([]byte, 0, 1+lenOfLen+size)
	buf = append(buf, t)
	if lenOfLen > 0 {
		lenBytes := make([]byte, lenOfLen)
		if _, err := io.ReadFull(r, lenBytes); err != nil {
			return nil, e(err, "cause", "truncated length")
		}
		if lenBytes[0] == 0 {
			return nil, m("cause", "leading zero in length")
		}
		size64 := byteutil.BigEndianUint64(lenBytes)
		if size64 > uint64(maxInt)-9 {
			return nil, m("cause", "length overflow", "length", size64)
		}
		if size64 <= shortLenMax {
			return nil, m("cause", "non-canonical length", "length", size64)
		}
		size = int(size64)
		buf = append(buf, lenBytes...)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, e(err, "cause", "truncated payload")
	}
	if t <= scalarLongBase && size == 1 && payload[0] < scalarBase {
		return nil, m("cause", "non-canonical scalar", "byte", payload[0])
	}
	return append(buf, payload...), nil
}
