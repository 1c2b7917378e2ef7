// Package archive implements the zstd-compressed container that export
// indexes are stored in: a fixed 24-byte header followed by one zstd frame.
package archive

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Magic identifies an index container.
var Magic = [4]byte{'P', 'M', 'A', 'P'}

const (
	// HeaderSize is the fixed binary size of a container header.
	HeaderSize = 24 // 4 + 4 + 8 + 8 bytes

	// headerLength is the number of header bytes after Magic and HeaderLength.
	headerLength = 16

	// MaxLength bounds the uncompressed size a reader accepts.
	MaxLength = 1 << 30
)

// ErrInvalidHeader is returned for containers with a malformed header.
var ErrInvalidHeader = errors.New("invalid container header")

// Header is the fixed header at the start of a container.
type Header struct {
	Magic            [4]byte
	HeaderLength     uint32
	Length           uint64 // uncompressed size
	CompressedLength uint64
}

// NewHeader returns a header for the given sizes.
func NewHeader(uncompressedSize, compressedSize uint64) *Header {
	return &Header{
		Magic:            Magic,
		HeaderLength:     headerLength,
		Length:           uncompressedSize,
		CompressedLength: compressedSize,
	}
}

// Validate checks the magic, the header length and both sizes.
func (h *Header) Validate() error {
	switch {
	case h.Magic != Magic:
		return fmt.Errorf("%w: magic %q", ErrInvalidHeader, h.Magic[:])
	case h.HeaderLength != headerLength:
		return fmt.Errorf("%w: header length %d", ErrInvalidHeader, h.HeaderLength)
	case h.Length == 0 || h.Length > MaxLength:
		return fmt.Errorf("%w: uncompressed size %d", ErrInvalidHeader, h.Length)
	case h.CompressedLength == 0:
		return fmt.Errorf("%w: compressed size is zero", ErrInvalidHeader)
	}
	return nil
}

// MarshalBinary encodes the header.
func (h *Header) MarshalBinary() ([]byte, error) {
	buf := make([]byte, HeaderSize)
	h.EncodeTo(buf)
	return buf, nil
}

// EncodeTo writes the header to buf, which must hold HeaderSize bytes.
func (h *Header) EncodeTo(buf []byte) {
	copy(buf[0:4], h.Magic[:])
	binary.LittleEndian.PutUint32(buf[4:8], h.HeaderLength)
	binary.LittleEndian.PutUint64(buf[8:16], h.Length)
	binary.LittleEndian.PutUint64(buf[16:24], h.CompressedLength)
}

// UnmarshalBinary decodes and validates a header.
func (h *Header) UnmarshalBinary(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidHeader, HeaderSize, len(data))
	}
	h.DecodeFrom(data)
	return h.Validate()
}

// DecodeFrom reads the header from buf without validating it.
func (h *Header) DecodeFrom(buf []byte) {
	copy(h.Magic[:], buf[0:4])
	h.HeaderLength = binary.LittleEndian.Uint32(buf[4:8])
	h.Length = binary.LittleEndian.Uint64(buf[8:16])
	h.CompressedLength = binary.LittleEndian.Uint64(buf[16:24])
}
