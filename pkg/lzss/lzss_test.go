package lzss

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func stream(size uint32, body ...byte) []byte {
	buf := make([]byte, HeaderSize, HeaderSize+len(body))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(HeaderSize+len(body)))
	binary.LittleEndian.PutUint32(buf[4:8], size)
	return append(buf, body...)
}

func TestDecompress(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "Literals",
			src:  stream(5, 0x1F, 'h', 'e', 'l', 'l', 'o'),
			want: []byte("hello"),
		},
		{
			name: "TwoFlagGroups",
			src:  stream(10, 0xFF, '0', '1', '2', '3', '4', '5', '6', '7', 0x03, '8', '9'),
			want: []byte("0123456789"),
		},
		{
			name: "BackReference",
			src:  stream(6, 0x03, 'a', 'b', 0x22, 0x00),
			want: []byte("ababab"),
		},
		{
			name: "OverlappingCopy",
			src:  stream(6, 0x01, 'a', 0x13, 0x00),
			want: []byte("aaaaaa"),
		},
		{
			name: "TruncatedInput",
			src:  stream(6, 0xFF, 'h', 'i'),
			want: []byte{'h', 'i', 0, 0, 0, 0},
		},
		{
			name: "TruncatedToken",
			src:  stream(4, 0x01, 'x', 0x10),
			want: []byte{'x', 0, 0, 0},
		},
		{
			name: "ZeroOffsetStops",
			src:  stream(4, 0xFE, 0x00, 0x00, 'z', 'z', 'z'),
			want: []byte{0, 0, 0, 0},
		},
		{
			name: "ReferenceBeforeStart",
			src:  stream(3, 0x06, 0x50, 0x00, 'q', 'r'),
			want: []byte{'q', 'r', 0},
		},
		{
			name: "OutputCapped",
			src:  stream(3, 0xFF, 'a', 'b', 'c', 'd', 'e'),
			want: []byte("abc"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decompress(tt.src, DefaultMaxSize)
			if err != nil {
				t.Fatalf("decompress: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("ShortInput", func(t *testing.T) {
		got, err := Decompress([]byte{1, 2, 3}, DefaultMaxSize)
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d bytes", len(got))
		}
	})

	t.Run("ZeroSize", func(t *testing.T) {
		got, err := Decompress(stream(0, 0xFF, 'a'), DefaultMaxSize)
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected empty result, got %d bytes", len(got))
		}
	})

	t.Run("SizeLimit", func(t *testing.T) {
		_, err := Decompress(stream(100, 0xFF, 'a'), 50)
		if !errors.Is(err, ErrSizeLimit) {
			t.Errorf("expected ErrSizeLimit, got %v", err)
		}
	})
}

func BenchmarkDecompress(b *testing.B) {
	body := make([]byte, 0, 9*8192)
	for i := 0; i < 8192; i++ {
		body = append(body, 0xFF, 'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h')
	}
	src := stream(uint32(8*8192), body...)

	b.SetBytes(int64(8 * 8192))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decompress(src, DefaultMaxSize); err != nil {
			b.Fatal(err)
		}
	}
}
