// Package fixture builds synthetic resource blocks and scene packs for tests.
//
// Blocks are encoded with literal-only LZSS streams, so they are larger than
// what the engine produces, but every decoding layer is exercised.
package fixture

import (
	"encoding/binary"

	"github.com/goopsie/pckFileTools/pkg/cipher"
	"golang.org/x/text/encoding/unicode"
)

// DefaultFields seeds header fields 0 through 16 of a block. Fields 6, 9 and 10
// select the scramble geometry, fields 1 through 16 feed the mask.
var DefaultFields = [17]uint32{
	0x4d5a9000, 0x00000003, 0x81c3e7ff, 0x0000fffe,
	0x12345678, 0x9abcdef0, 0x00000007, 0xdeadbeef,
	0x0badf00d, 0x0000000b, 0x00000015, 0x7f7f7f7f,
	0x80808080, 0x01020304, 0xfedcba98, 0x55aa55aa,
	0x00c0ffee,
}

// Block encodes payload under name with DefaultFields.
func Block(name string, payload []byte) []byte {
	return BlockWith(DefaultFields, name, payload)
}

// BlockWith encodes payload under name using the given header fields.
func BlockWith(fields [17]uint32, name string, payload []byte) []byte {
	lz := Literal(payload)
	cipher.XOR(lz, cipher.DF70, 173)

	var h [19]uint32
	copy(h[:], fields[:])
	h[17] = uint32(len(lz))

	nameBytes := UTF16(name)
	h[18] = uint32(len(nameBytes))

	mw := int(h[6]%16) + 16
	mh := int(h[9]%16) + 16
	bw := int(h[10]%32) + 32
	half := (len(lz) + 1) / 2
	bh := ((half+3)/4 + bw - 1) / bw
	total := 4 * bw * bh

	buf1 := make([]byte, total)
	buf2 := make([]byte, total)
	copy(buf1, lz[:half])
	copy(buf2, lz[half:])

	mask := make([]byte, mw*mh)
	for i := range mask {
		mask[i] = cipher.DE70.At(96+i) ^ byte(h[1+(11+i)%16])
	}
	row0 := (mh - 37%mh) % mh
	col0 := (mw - 111%mw) % mw

	// Stored halves swap the pixels whose mask byte is below the threshold.
	src1 := make([]byte, total)
	src2 := make([]byte, total)
	for y := 0; y < bh; y++ {
		for x := 0; x < bw; x++ {
			p := (y*bw + x) * 4
			m := mask[((row0+y)%mh)*mw+(col0+x)%mw]
			if m < 0x80 {
				copy(src1[p:p+4], buf2[p:p+4])
				copy(src2[p:p+4], buf1[p:p+4])
			} else {
				copy(src1[p:p+4], buf1[p:p+4])
				copy(src2[p:p+4], buf2[p:p+4])
			}
		}
	}

	block := make([]byte, 76, 76+len(nameBytes)+2*total)
	for i, v := range h {
		binary.LittleEndian.PutUint32(block[i*4:], v)
	}
	block = append(block, cipher.Apply(nameBytes, cipher.DC70, 59)...)
	block = append(block, src1...)
	block = append(block, src2...)
	cipher.XOR(block, cipher.DD70, 13)
	return block
}

// Literal returns an LZSS stream that stores payload as literals only.
func Literal(payload []byte) []byte {
	out := make([]byte, 8, 8+len(payload)+len(payload)/8+1)
	binary.LittleEndian.PutUint32(out[4:], uint32(len(payload)))
	for i := 0; i < len(payload); i += 8 {
		out = append(out, 0xFF)
		out = append(out, payload[i:min(i+8, len(payload))]...)
	}
	binary.LittleEndian.PutUint32(out[0:], uint32(len(out)))
	return out
}

// UTF16 encodes s as UTF-16LE without a byte order mark.
func UTF16(s string) []byte {
	b, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return b
}

// Sizes encodes a size directory as little-endian uint32 values.
func Sizes(sizes ...int) []byte {
	out := make([]byte, 4*len(sizes))
	for i, s := range sizes {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(s))
	}
	return out
}
