package pck

import (
	"encoding/binary"
	"fmt"
)

// IndexEntrySize is the encoded size of an IndexEntry.
const IndexEntrySize = 8

// IndexEntry is an (offset, size) pair of an index table.
type IndexEntry struct {
	Offset int32
	Size   int32
}

// End returns Offset+Size without overflow.
func (e IndexEntry) End() int64 {
	return int64(e.Offset) + int64(e.Size)
}

// ReadIndex decodes count entries at offset. A non-positive count yields an
// empty table.
func ReadIndex(data []byte, offset, count int64) ([]IndexEntry, error) {
	if count <= 0 {
		return nil, nil
	}
	need := count * IndexEntrySize
	if offset < 0 || offset+need > int64(len(data)) {
		return nil, fmt.Errorf("%w: %d entries at %d", ErrOutOfRange, count, offset)
	}

	entries := make([]IndexEntry, count)
	for i := range entries {
		p := offset + int64(i)*IndexEntrySize
		entries[i] = IndexEntry{
			Offset: int32(binary.LittleEndian.Uint32(data[p:])),
			Size:   int32(binary.LittleEndian.Uint32(data[p+4:])),
		}
	}
	return entries, nil
}
