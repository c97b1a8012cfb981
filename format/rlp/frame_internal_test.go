package rlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseHead(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want head
	}{
		{"literal byte", []byte{0x7f}, head{hsize: 0, psize: 1}},
		{"empty scalar", []byte{0x80}, head{hsize: 1, psize: 0}},
		{"short scalar", []byte{0x83, 'd', 'o', 'g'}, head{hsize: 1, psize: 3}},
		{"long scalar", append([]byte{0xb8, 0x38}, make([]byte, 56)...), head{hsize: 2, psize: 56}},
		{"empty compound", []byte{0xc0}, head{compound: true, hsize: 1, psize: 0}},
		{"short compound", []byte{0xc2, 0x01, 0x02}, head{compound: true, hsize: 1, psize: 2}},
		{"long compound", append([]byte{0xf8, 0x38}, make([]byte, 56)...), head{compound: true, hsize: 2, psize: 56}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h, err := parseHead(test.buf)
			require.NoError(t, err)
			require.Equal(t, test.want, h)
		})
	}
}

func TestParseHeadRejects(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"short scalar truncated", []byte{0x83, 'd'}},
		{"single byte in short form", []byte{0x81, 0x00}},
		{"long form below threshold", append([]byte{0xb8, 0x37}, make([]byte, 55)...)},
		{"length-of-length leading zero", append([]byte{0xb9, 0x00, 0x38}, make([]byte, 56)...)},
		{"compound length exceeds input", []byte{0xc5, 0x01}},
		{"length overflow", []byte{0xbf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := parseHead(test.buf)
			require.Error(t, err)
		})
	}
}

func TestAppendScalarThresholds(t *testing.T) {
	// the single-byte form applies up to 0x7f, the short form up to 55
	// bytes, the long form from 56 bytes on
	require.Equal(t, []byte{0x7f}, appendScalar(nil, []byte{0x7f}))
	require.Equal(t, []byte{0x81, 0x80}, appendScalar(nil, []byte{0x80}))

	b55 := make([]byte, 55)
	require.Equal(t, byte(0xb7), appendScalar(nil, b55)[0])
	b56 := make([]byte, 56)
	require.Equal(t, []byte{0xb8, 0x38}, appendScalar(nil, b56)[:2])
}
