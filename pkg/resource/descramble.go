package resource

import "github.com/goopsie/pckFileTools/pkg/cipher"

// Mask walk origins. They come from the engine and must not be changed: any
// difference desynchronises every byte after the first wrap.
const (
	maskRowOrigin   = 37
	maskColOrigin   = 111
	maskTableOrigin = 96
	maskFieldOrigin = 11
	maskFieldWindow = 16
	maskThreshold   = 0x80
	pixelSize       = 4
)

// geometry describes the pixel grid the payload halves are scrambled over.
type geometry struct {
	maskWidth   int
	maskHeight  int
	blockWidth  int
	blockHeight int
	halfSize    int
	totalSize   int // bytes in one half
}

func newGeometry(h *blockHeader) geometry {
	g := geometry{
		maskWidth:  int(h.fields[fieldMaskWidth]%16) + 16,
		maskHeight: int(h.fields[fieldMaskHeight]%16) + 16,
		blockWidth: int(h.fields[fieldBlockWidth]%32) + 32,
	}
	cs := int(h.compressedSize())
	g.halfSize = (cs + 1) / 2
	dwords := (g.halfSize + 3) / 4
	g.blockHeight = (dwords + g.blockWidth - 1) / g.blockWidth
	g.totalSize = pixelSize * g.blockWidth * g.blockHeight
	return g
}

// buildMask derives the maskWidth*maskHeight threshold mask from table DE70 and
// a sliding 16-field window over the block header starting at field 12.
func buildMask(h *blockHeader, g geometry) []byte {
	mask := make([]byte, g.maskWidth*g.maskHeight)
	ti, fi := maskTableOrigin, maskFieldOrigin
	for i := range mask {
		mask[i] = cipher.DE70.At(ti) ^ byte(h.fields[fi+1])
		ti = (ti + 1) % cipher.TableSize
		fi = (fi + 1) % maskFieldWindow
	}
	return mask
}

// blit copies the pixels of src selected by the mask into dst. With below set a
// pixel is copied when its mask byte is under the threshold, otherwise when it
// is at or above it. The mask is walked row by row from a fixed origin and
// wraps in both directions.
func blit(dst, src []byte, g geometry, mask []byte, below bool) {
	if len(src) == 0 || len(dst) == 0 {
		return
	}
	maskTotal := g.maskWidth * g.maskHeight
	startRow := (g.maskHeight - maskRowOrigin%g.maskHeight) % g.maskHeight
	startCol := (g.maskWidth - maskColOrigin%g.maskWidth) % g.maskWidth

	rowOffset := startRow * g.maskWidth
	px := 0
	for y := 0; y < g.blockHeight; y++ {
		col := startCol
		for x := 0; x < g.blockWidth; x++ {
			if (mask[rowOffset+col] < maskThreshold) == below {
				off := px * pixelSize
				copy(dst[off:off+pixelSize], src[off:off+pixelSize])
			}
			px++
			col++
			if col >= g.maskWidth {
				col = 0
			}
		}
		rowOffset += g.maskWidth
		if rowOffset >= maskTotal {
			rowOffset = 0
		}
	}
}

// descramble rebuilds the two logical halves from the two stored halves.
func descramble(src1, src2 []byte, g geometry, mask []byte) (buf1, buf2 []byte) {
	buf1 = make([]byte, g.totalSize)
	buf2 = make([]byte, g.totalSize)
	blit(buf1, src1, g, mask, false)
	blit(buf1, src2, g, mask, true)
	blit(buf2, src1, g, mask, true)
	blit(buf2, src2, g, mask, false)
	return buf1, buf2
}
