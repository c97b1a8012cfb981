package rlp

import (
	"github.com/eluv-io/errors-go"

	"github.com/eluv-io/rlp-go/util/byteutil"
)

// Framing offsets per the RLP wire format.
const (
	scalarBase       = 0x80 // short scalar: 0x80 + payload length
	scalarLongBase   = 0xB7 // long scalar: 0xB7 + length-of-length
	compoundBase     = 0xC0 // short compound: 0xC0 + payload length
	compoundLongBase = 0xF7 // long compound: 0xF7 + length-of-length

	// shortLenMax is the largest payload length encodable in the short form.
	// Payloads of 56 bytes and more use the long form.
	shortLenMax = 55
)

const maxInt = int(^uint(0) >> 1)

// head is the decoded framing prefix of a single node.
type head struct {
	compound bool
	hsize    int // number of framing bytes (0 for an unframed literal byte)
	psize    int // payload length
}

// size returns the total encoded size of the node, framing included.
func (h head) size() int { return h.hsize + h.psize }

// appendScalar appends the canonical scalar encoding of b to dst.
func appendScalar(dst []byte, b []byte) []byte {
	if len(b) == 1 && b[0] < scalarBase {
		return append(dst, b[0])
	}
	dst = appendHead(dst, scalarBase, scalarLongBase, len(b))
	return append(dst, b...)
}

// appendCompoundHead appends the compound framing for a payload of the given
// size to dst. The payload itself is appended by the caller.
func appendCompoundHead(dst []byte, size int) []byte {
	return appendHead(dst, compoundBase, compoundLongBase, size)
}

func appendHead(dst []byte, base, longBase byte, size int) []byte {
	if size <= shortLenMax {
		return append(dst, base+byte(size))
	}
	dst = append(dst, longBase+byte(byteutil.BigEndianLen(uint64(size))))
	return byteutil.AppendBigEndian(dst, uint64(size))
}

// parseHead reads and validates the framing prefix at the start of buf. It
// rejects truncated input and all non-canonical encodings: long forms for
// payloads below 56 bytes, length-of-length fields with a leading zero byte,
// and short-form scalars holding a single byte below 0x80.
func parseHead(buf []byte) (head, error) {
	e := errors.TemplateNoTrace("rlp.parseHead", errors.K.Invalid, "reason", reasonMalformed)
	if len(buf) == 0 {
		return head{}, e("cause", "empty input")
	}
	var h head
	t := buf[0]
	switch {
	case t < scalarBase:
		return head{hsize: 0, psize: 1}, nil
	case t <= scalarLongBase:
		h = head{hsize: 1, psize: int(t - scalarBase)}
		if h.psize == 1 {
			if len(buf) < 2 {
				return head{}, e("cause", "truncated scalar")
			}
			if buf[1] < scalarBase {
				return head{}, e("cause", "non-canonical scalar", "byte", buf[1])
			}
		}
	case t < compoundBase:
		var err error
		h, err = parseLongHead(buf, int(t-scalarLongBase), e)
		if err != nil {
			return head{}, err
		}
	case t <= compoundLongBase:
		h = head{compound: true, hsize: 1, psize: int(t - compoundBase)}
	default:
		var err error
		h, err = parseLongHead(buf, int(t-compoundLongBase), e)
		if err != nil {
			return head{}, err
		}
		h.compound = true
	}
	if h.psize > len(buf)-h.hsize {
		return head{}, e("cause", "length exceeds input", "length", h.psize, "available", len(buf)-h.hsize)
	}
	return h, nil
}

// parseLongHead decodes a long-form head with the given length-of-length.
func parseLongHead(buf []byte, lenOfLen int, e errors.TemplateFn) (head, error) {
	if len(buf) < 1+lenOfLen {
		return head{}, e("cause", "truncated length")
	}
	lenBytes := buf[1 : 1+lenOfLen]
	if lenBytes[0] == 0 {
		return head{}, e("cause", "leading zero in length")
	}
	size := byteutil.BigEndianUint64(lenBytes)
	if size > uint64(maxInt)-9 {
		return head{}, e("cause", "length overflow", "length", size)
	}
	if size <= shortLenMax {
		return head{}, e("cause", "non-canonical length", "length", size)
	}
	return head{hsize: 1 + lenOfLen, psize: int(size)}, nil
}
