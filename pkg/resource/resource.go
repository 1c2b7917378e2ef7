// Package resource decodes encrypted, scrambled and compressed resource blocks.
//
// A block is protected by three layers. The whole block is XORed with table
// DD70, the filename additionally with DC70, and the compressed payload is split
// into two halves whose 4-byte pixels are interleaved by a threshold mask before
// a final DF70 pass. Decoding reverses the chain and expands the LZSS payload.
package resource

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/goopsie/pckFileTools/pkg/cipher"
	"github.com/goopsie/pckFileTools/pkg/lzss"
	"golang.org/x/text/encoding/unicode"
)

// HeaderSize is the size of the block header: 19 little-endian uint32 fields.
const HeaderSize = fieldCount * 4

const fieldCount = 19

// Header field indices.
const (
	fieldMaskWidth      = 6
	fieldMaskHeight     = 9
	fieldBlockWidth     = 10
	fieldCompressedSize = 17
	fieldFilenameLength = 18
)

// Cipher table start indices of each stage.
const (
	blockStart    = 13
	filenameStart = 59
	payloadStart  = 173
)

// ErrInvalidBlock is returned when a block violates a structural invariant.
var ErrInvalidBlock = errors.New("invalid resource block")

// Extractor decodes resource blocks. Implementations must not modify block.
type Extractor interface {
	// Decode returns the filename and payload stored in block.
	Decode(block []byte) (string, []byte, error)
	// Name returns the filename stored in block.
	Name(block []byte) (string, error)
}

type blockHeader struct {
	fields [fieldCount]uint32
}

func parseBlockHeader(plain []byte) *blockHeader {
	h := &blockHeader{}
	for i := range h.fields {
		h.fields[i] = binary.LittleEndian.Uint32(plain[i*4:])
	}
	return h
}

func (h *blockHeader) compressedSize() uint32 { return h.fields[fieldCompressedSize] }
func (h *blockHeader) filenameLength() uint32 { return h.fields[fieldFilenameLength] }

// Decoder decodes resource blocks. The zero value uses lzss.DefaultMaxSize.
type Decoder struct {
	// MaxSize caps the decompressed payload size.
	MaxSize int
}

// Default is the decoder used when none is configured.
var Default = &Decoder{MaxSize: lzss.DefaultMaxSize}

var _ Extractor = (*Decoder)(nil)

func (d *Decoder) maxSize() int {
	if d == nil || d.MaxSize <= 0 {
		return lzss.DefaultMaxSize
	}
	return d.MaxSize
}

// Decode decrypts, descrambles and decompresses block, returning the embedded
// filename and the payload. The block is not modified.
func (d *Decoder) Decode(block []byte) (string, []byte, error) {
	size := len(block)
	if size < HeaderSize {
		return "", nil, fmt.Errorf("%w: block too small: %d bytes", ErrInvalidBlock, size)
	}

	plain := cipher.Apply(block, cipher.DD70, blockStart)
	h := parseBlockHeader(plain)

	nameLen := int64(h.filenameLength())
	if nameLen > int64(size-HeaderSize) {
		return "", nil, fmt.Errorf("%w: filename length %d exceeds %d", ErrInvalidBlock, nameLen, size-HeaderSize)
	}
	if h.compressedSize() == 0 {
		return "", nil, fmt.Errorf("%w: compressed size is zero", ErrInvalidBlock)
	}

	g := newGeometry(h)
	dataStart := HeaderSize + int(nameLen)
	if int64(dataStart)+2*int64(g.totalSize) > int64(size) {
		return "", nil, fmt.Errorf("%w: need %d payload bytes, have %d", ErrInvalidBlock, 2*g.totalSize, size-dataStart)
	}
	cs := int(h.compressedSize())
	if cs > 2*g.totalSize {
		return "", nil, fmt.Errorf("%w: compressed size %d exceeds %d", ErrInvalidBlock, cs, 2*g.totalSize)
	}

	name := decodeName(plain[HeaderSize:dataStart])

	mask := buildMask(h, g)
	src1 := plain[dataStart : dataStart+g.totalSize]
	src2 := plain[dataStart+g.totalSize : dataStart+2*g.totalSize]
	buf1, buf2 := descramble(src1, src2, g, mask)

	combined := make([]byte, cs)
	copy(combined[:g.halfSize], buf1)
	copy(combined[g.halfSize:], buf2[:cs-g.halfSize])
	cipher.XOR(combined, cipher.DF70, payloadStart)

	payload, err := lzss.Decompress(combined, d.maxSize())
	if err != nil {
		return "", nil, fmt.Errorf("decompress %q: %w", name, err)
	}
	return name, payload, nil
}

// Name returns the filename embedded in block without touching the payload.
// Only the header and the filename bytes need to be present and well formed.
func (d *Decoder) Name(block []byte) (string, error) {
	size := len(block)
	if size < HeaderSize {
		return "", fmt.Errorf("%w: block too small: %d bytes", ErrInvalidBlock, size)
	}
	h := parseBlockHeader(cipher.Apply(block[:HeaderSize], cipher.DD70, blockStart))

	nameLen := int64(h.filenameLength())
	if nameLen == 0 || HeaderSize+nameLen > int64(size) {
		return "", fmt.Errorf("%w: filename length %d out of range", ErrInvalidBlock, nameLen)
	}
	plain := cipher.Apply(block[:HeaderSize+nameLen], cipher.DD70, blockStart)
	return decodeName(plain[HeaderSize:]), nil
}

// decodeName removes the DC70 layer from an already DD70-decrypted filename
// and decodes it as UTF-16LE without its trailing NULs.
func decodeName(raw []byte) string {
	buf := cipher.Apply(raw, cipher.DC70, filenameStart)
	s, _ := utf16le.NewDecoder().Bytes(buf)
	return strings.TrimRight(string(s), "\x00")
}

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
