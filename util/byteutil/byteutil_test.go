package byteutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/eluv-io/rlp-go/util/byteutil"
)

func TestAppendBigEndian(t *testing.T) {
	tests := []struct {
		x    uint64
		want []byte
	}{
		{0, []byte{}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80}},
		{0xff, []byte{0xff}},
		{0x100, []byte{0x01, 0x00}},
		{1024, []byte{0x04, 0x00}},
		{0xffffff, []byte{0xff, 0xff, 0xff}},
		{0x0102030405060708, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}},
	}
	for _, test := range tests {
		res := byteutil.AppendBigEndian(nil, test.x)
		require.Equal(t, test.want, append([]byte{}, res...), "x=%d", test.x)
		require.Equal(t, len(test.want), byteutil.BigEndianLen(test.x), "x=%d", test.x)
		require.Equal(t, test.x, byteutil.BigEndianUint64(res), "x=%d", test.x)
	}
}

func TestRandomBytes(t *testing.T) {
	b := byteutil.RandomBytes(32)
	require.Len(t, b, 32)
	require.NotEqual(t, b, byteutil.RandomBytes(32))
}
