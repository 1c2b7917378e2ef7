// Package pck parses scene pack containers and maps them into labelled sections.
package pck

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// MinHeaderSize is the size of the fixed header and the smallest valid pack.
const MinHeaderSize = 92

var (
	// ErrTooSmall is returned for inputs that cannot hold a header.
	ErrTooSmall = errors.New("pack too small")

	// ErrOutOfRange is returned when an index table does not fit the pack.
	ErrOutOfRange = errors.New("index table out of range")
)

// Pair locates a table by offset and element count.
type Pair struct {
	Offset int32
	Count  int32
}

// Header is the fixed 23-field header at the start of a pack.
type Header struct {
	HeaderSize               int32
	IncPropList              Pair
	IncPropNameIndexList     Pair
	IncPropNameList          Pair
	IncCmdList               Pair
	IncCmdNameIndexList      Pair
	IncCmdNameList           Pair
	ScnNameIndexList         Pair
	ScnNameList              Pair
	ScnDataIndexList         Pair
	ScnDataList              Pair
	ScnDataExeAngouMod       int32
	OriginalSourceHeaderSize int32
}

// ParseHeader decodes the header at the start of data.
func ParseHeader(data []byte) (*Header, error) {
	if len(data) < MinHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooSmall, len(data))
	}

	h := &Header{}
	if err := binary.Read(bytes.NewReader(data[:MinHeaderSize]), binary.LittleEndian, h); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	return h, nil
}

// Length returns the header size to use for framing. Values outside
// [MinHeaderSize, fileSize] are not trusted and yield MinHeaderSize.
func (h *Header) Length(fileSize int64) int64 {
	size := int64(h.HeaderSize)
	if size < MinHeaderSize || size > fileSize {
		return MinHeaderSize
	}
	return size
}
