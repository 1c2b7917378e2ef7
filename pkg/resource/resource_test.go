package resource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/goopsie/pckFileTools/internal/fixture"
	"github.com/goopsie/pckFileTools/pkg/cipher"
	"github.com/goopsie/pckFileTools/pkg/lzss"
)

// withField rewrites one encrypted header field of block.
func withField(block []byte, field int, value uint32) []byte {
	plain := cipher.Apply(block, cipher.DD70, blockStart)
	binary.LittleEndian.PutUint32(plain[field*4:], value)
	return cipher.Apply(plain, cipher.DD70, blockStart)
}

func TestDecode(t *testing.T) {
	large := make([]byte, 20000)
	for i := range large {
		large[i] = byte(i * 31)
	}

	tests := []struct {
		name     string
		filename string
		payload  []byte
	}{
		{"Small", "scene/a.ss", []byte("hello world")},
		{"EmptyPayload", "empty.bin", nil},
		{"Nameless", "", []byte("no name")},
		{"Japanese", "日本語.txt", []byte("abc")},
		{"Large", "large.dat", large},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := fixture.Block(tt.filename, tt.payload)
			orig := bytes.Clone(block)

			name, payload, err := Default.Decode(block)
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if name != tt.filename {
				t.Errorf("name: got %q, want %q", name, tt.filename)
			}
			if !bytes.Equal(payload, tt.payload) {
				t.Errorf("payload mismatch: got %d bytes, want %d", len(payload), len(tt.payload))
			}
			if !bytes.Equal(block, orig) {
				t.Error("decode modified its input")
			}
		})
	}

	t.Run("Geometries", func(t *testing.T) {
		payload := bytes.Repeat([]byte("geometry"), 300)
		for _, g := range [][3]uint32{{0, 0, 0}, {15, 15, 31}, {16, 31, 32}, {0xFFFFFFFF, 7, 1}} {
			fields := fixture.DefaultFields
			fields[fieldMaskWidth], fields[fieldMaskHeight], fields[fieldBlockWidth] = g[0], g[1], g[2]

			name, got, err := Default.Decode(fixture.BlockWith(fields, "g.bin", payload))
			if err != nil {
				t.Fatalf("fields %v: decode: %v", g, err)
			}
			if name != "g.bin" || !bytes.Equal(got, payload) {
				t.Errorf("fields %v: round trip mismatch", g)
			}
		}
	})

	t.Run("ZeroValueDecoder", func(t *testing.T) {
		var d Decoder
		if _, payload, err := d.Decode(fixture.Block("z", []byte("zero"))); err != nil || string(payload) != "zero" {
			t.Errorf("got %q, %v", payload, err)
		}
	})
}

func TestDecodeErrors(t *testing.T) {
	block := fixture.Block("bad.bin", bytes.Repeat([]byte{0xAB}, 500))

	tests := []struct {
		name  string
		block []byte
	}{
		{"TooSmall", block[:HeaderSize-1]},
		{"FilenameTooLong", withField(block, fieldFilenameLength, uint32(len(block)))},
		{"ZeroCompressedSize", withField(block, fieldCompressedSize, 0)},
		{"CompressedSizeTooLarge", withField(block, fieldCompressedSize, uint32(len(block)))},
		{"Truncated", block[:len(block)-1]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Default.Decode(tt.block)
			if !errors.Is(err, ErrInvalidBlock) {
				t.Errorf("expected ErrInvalidBlock, got %v", err)
			}
		})
	}

	t.Run("SizeLimit", func(t *testing.T) {
		d := &Decoder{MaxSize: 100}
		_, _, err := d.Decode(block)
		if !errors.Is(err, lzss.ErrSizeLimit) {
			t.Errorf("expected ErrSizeLimit, got %v", err)
		}
	})
}

func TestName(t *testing.T) {
	block := fixture.Block("dir/file.txt", []byte("payload"))

	t.Run("Full", func(t *testing.T) {
		name, err := Default.Name(block)
		if err != nil || name != "dir/file.txt" {
			t.Errorf("got %q, %v", name, err)
		}
	})

	t.Run("HeaderAndNameOnly", func(t *testing.T) {
		need := HeaderSize + len(fixture.UTF16("dir/file.txt"))
		name, err := Default.Name(block[:need])
		if err != nil || name != "dir/file.txt" {
			t.Errorf("got %q, %v", name, err)
		}
		if _, err := Default.Name(block[:need-1]); !errors.Is(err, ErrInvalidBlock) {
			t.Errorf("expected ErrInvalidBlock, got %v", err)
		}
	})

	t.Run("Nameless", func(t *testing.T) {
		if _, err := Default.Name(fixture.Block("", []byte("x"))); !errors.Is(err, ErrInvalidBlock) {
			t.Errorf("expected ErrInvalidBlock, got %v", err)
		}
	})

	t.Run("TooSmall", func(t *testing.T) {
		if _, err := Default.Name(make([]byte, 10)); !errors.Is(err, ErrInvalidBlock) {
			t.Errorf("expected ErrInvalidBlock, got %v", err)
		}
	})
}

func TestDescramble(t *testing.T) {
	h := &blockHeader{}
	for i := range h.fields {
		h.fields[i] = uint32(i * 0x01010101)
	}
	h.fields[fieldCompressedSize] = 3000
	g := newGeometry(h)
	mask := buildMask(h, g)

	if len(mask) != g.maskWidth*g.maskHeight {
		t.Fatalf("mask size: got %d, want %d", len(mask), g.maskWidth*g.maskHeight)
	}
	if g.totalSize%pixelSize != 0 || g.totalSize < g.halfSize {
		t.Fatalf("bad geometry: %+v", g)
	}

	src1 := make([]byte, g.totalSize)
	src2 := make([]byte, g.totalSize)
	for i := range src1 {
		src1[i] = byte(i)
		src2[i] = byte(i) ^ 0xFF
	}

	t.Run("Involution", func(t *testing.T) {
		buf1, buf2 := descramble(src1, src2, g, mask)
		back1, back2 := descramble(buf1, buf2, g, mask)
		if !bytes.Equal(back1, src1) || !bytes.Equal(back2, src2) {
			t.Error("descramble is not its own inverse")
		}
	})

	t.Run("PixelsPreserved", func(t *testing.T) {
		buf1, buf2 := descramble(src1, src2, g, mask)
		for p := 0; p < g.totalSize; p += pixelSize {
			a, b := buf1[p:p+pixelSize], buf2[p:p+pixelSize]
			s1, s2 := src1[p:p+pixelSize], src2[p:p+pixelSize]
			straight := bytes.Equal(a, s1) && bytes.Equal(b, s2)
			swapped := bytes.Equal(a, s2) && bytes.Equal(b, s1)
			if !straight && !swapped {
				t.Fatalf("pixel %d was not copied from a source", p/pixelSize)
			}
		}
	})
}

func BenchmarkDecode(b *testing.B) {
	payload := bytes.Repeat([]byte("benchmark payload "), 4096)
	block := fixture.Block("bench.bin", payload)

	b.SetBytes(int64(len(payload)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := Default.Decode(block); err != nil {
			b.Fatal(err)
		}
	}
}
