// Package lzss decompresses the LZSS variant used for scene pack resources.
//
// A compressed stream starts with an 8-byte header whose second little-endian
// uint32 is the decompressed size. The body is a sequence of flag bytes, each
// followed by up to eight items: a literal byte when the flag bit is set, or a
// 16-bit back-reference token when it is clear. Flag bits are consumed LSB first.
package lzss

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the size of the stream header.
const HeaderSize = 8

// DefaultMaxSize bounds the output of a single stream.
const DefaultMaxSize = 512 * 1024 * 1024

// ErrSizeLimit is returned when the declared output size exceeds the limit.
var ErrSizeLimit = errors.New("decompressed size exceeds limit")

// DecompressedSize returns the output size declared in the stream header,
// or 0 if src is too short to hold one.
func DecompressedSize(src []byte) int {
	if len(src) < HeaderSize {
		return 0
	}
	return int(binary.LittleEndian.Uint32(src[4:8]))
}

// Decompress expands src into a buffer of exactly the declared size.
//
// Truncated input is not an error: decoding stops at the first exhausted read or
// zero back-reference offset and the zero-filled remainder is returned as is.
// Streams shorter than the header or declaring a zero size yield an empty result.
func Decompress(src []byte, maxSize int) ([]byte, error) {
	size := DecompressedSize(src)
	if size == 0 {
		return []byte{}, nil
	}
	if size > maxSize {
		return nil, fmt.Errorf("%w: %d > %d", ErrSizeLimit, size, maxSize)
	}

	out := make([]byte, size)
	sp, dp := HeaderSize, 0

	for dp < size && sp < len(src) {
		flags := src[sp]
		sp++

		for bit := 0; bit < 8 && dp < size; bit++ {
			if flags&1 != 0 {
				if sp >= len(src) {
					return out, nil
				}
				out[dp] = src[sp]
				sp++
				dp++
			} else {
				if sp+2 > len(src) {
					return out, nil
				}
				token := binary.LittleEndian.Uint16(src[sp:])
				sp += 2

				length := int(token&0xF) + 2
				offset := int(token >> 4)
				if offset == 0 {
					return out, nil
				}
				for n := 0; n < length && dp < size && dp >= offset; n++ {
					out[dp] = out[dp-offset]
					dp++
				}
			}
			flags >>= 1
		}
	}

	return out, nil
}
