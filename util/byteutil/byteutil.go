package byteutil

import (
	"math/rand"
	"time"
)

func init() {
	rand.Seed(time.Now().UnixNano())
}

// RandomBytes returns a byte slice of the given length filled with random
// data.
func RandomBytes(length int) []byte {
	b := make([]byte, length)
	_, _ = rand.Read(b)
	return b
}

// AppendBigEndian appends the minimal big-endian encoding of x to dst: no
// leading zero bytes, and zero encodes to no bytes at all.
func AppendBigEndian(dst []byte, x uint64) []byte {
	started := false
	for shift := 56; shift >= 0; shift -= 8 {
		b := byte(x >> shift)
		if !started && b == 0 {
			continue
		}
		started = true
		dst = append(dst, b)
	}
	return dst
}

// BigEndianLen returns the number of bytes AppendBigEndian produces for x.
func BigEndianLen(x uint64) int {
	n := 0
	for ; x > 0; x >>= 8 {
		n++
	}
	return n
}

// BigEndianUint64 interprets b as a big-endian unsigned integer. The empty
// slice yields 0. b must not be longer than 8 bytes.
func BigEndianUint64(b []byte) uint64 {
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x
}
