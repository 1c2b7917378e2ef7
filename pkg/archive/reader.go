package archive

import (
	"fmt"
	"io"

	"github.com/DataDog/zstd"
)

// Reader decompresses the payload of a container.
type Reader struct {
	header  Header
	zReader io.ReadCloser
}

// NewReader reads and validates the container header from r and returns a
// reader over the decompressed payload.
func NewReader(r io.Reader) (*Reader, error) {
	var buf [HeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	reader := &Reader{}
	if err := reader.header.UnmarshalBinary(buf[:]); err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	reader.zReader = zstd.NewReader(io.LimitReader(r, int64(reader.header.CompressedLength)))
	return reader, nil
}

// Header returns the container header.
func (r *Reader) Header() *Header {
	return &r.header
}

// Read reads decompressed data into p.
func (r *Reader) Read(p []byte) (int, error) {
	return r.zReader.Read(p)
}

// Close releases the decompressor.
func (r *Reader) Close() error {
	return r.zReader.Close()
}

// Length returns the uncompressed payload length.
func (r *Reader) Length() int {
	return int(r.header.Length)
}

// ReadAll reads and decompresses a whole container.
func ReadAll(r io.Reader) ([]byte, error) {
	reader, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	data := make([]byte, reader.Length())
	if _, err := io.ReadFull(reader, data); err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return data, nil
}
