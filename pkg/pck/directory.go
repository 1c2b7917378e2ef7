package pck

import (
	"encoding/binary"
	"fmt"
)

// Source directory strategies, recorded in Map.SourceStrategy.
const (
	StrategyHeader = "header"
	StrategyPlain  = "plain"
	StrategyScan   = "scan"
	StrategyNone   = "none"
)

const (
	// MaxDirectoryEntries bounds the number of sizes a directory may hold.
	MaxDirectoryEntries = 200000

	// directorySlack is how far a directory may overshoot the end of the pack.
	directorySlack = 16

	// DefaultScanLimit bounds the offsets visited by the scan strategy.
	DefaultScanLimit = 64 << 20
)

// ParseDirectory interprets raw as a size directory for items that start at
// after in a pack of total bytes. It returns nil when raw is not a plausible
// directory: empty or not a multiple of four, too many entries, an entry
// outside [1, total], or items that end past total plus a small slack.
func ParseDirectory(raw []byte, total, after int64) []uint32 {
	if len(raw) < 4 || len(raw)%4 != 0 {
		return nil
	}
	n := len(raw) / 4
	if n > MaxDirectoryEntries {
		return nil
	}

	sizes := make([]uint32, n)
	sum := after
	for i := range sizes {
		s := binary.LittleEndian.Uint32(raw[i*4:])
		if s < 1 || int64(s) > total {
			return nil
		}
		sizes[i] = s
		sum += int64(s)
	}
	if sum > total+directorySlack {
		return nil
	}
	return sizes
}

// locator finds a source directory of size bytes, trying offset first.
type locator func(data []byte, offset, size int64) (int64, []uint32, error)

type strategy struct {
	name   string
	locate locator
}

func (m *Mapper) strategies() []strategy {
	s := []strategy{
		{StrategyHeader, m.decodedDirectory},
		{StrategyPlain, plainDirectory},
	}
	if m.scan {
		s = append(s, strategy{StrategyScan, m.scanDirectory})
	}
	return s
}

// decodedDirectory reads the directory as an encrypted resource block.
func (m *Mapper) decodedDirectory(data []byte, offset, size int64) (int64, []uint32, error) {
	if m.extractor == nil {
		return 0, nil, errNoExtractor
	}
	if !fits(data, offset, size) {
		return 0, nil, fmt.Errorf("%w: %d bytes at %d", ErrOutOfRange, size, offset)
	}
	sizes, err := m.directoryAt(data, offset, size)
	return offset, sizes, err
}

// plainDirectory reads the directory as unencrypted sizes.
func plainDirectory(data []byte, offset, size int64) (int64, []uint32, error) {
	if !fits(data, offset, size) {
		return 0, nil, fmt.Errorf("%w: %d bytes at %d", ErrOutOfRange, size, offset)
	}
	sizes := ParseDirectory(data[offset:offset+size], int64(len(data)), offset+size)
	if sizes == nil {
		return 0, nil, errBadDirectory
	}
	return offset, sizes, nil
}

// scanDirectory tries every 4-byte aligned offset from offset onwards until a
// decodable directory is found or the scan limit is reached.
func (m *Mapper) scanDirectory(data []byte, offset, size int64) (int64, []uint32, error) {
	if m.extractor == nil {
		return 0, nil, errNoExtractor
	}
	n := int64(len(data))
	from := clamp(offset, 0, n)
	to := clamp(n-size, 0, n)
	if m.scanLimit > 0 {
		to = min(to, from+m.scanLimit)
	}

	for off := from; off <= to; off += 4 {
		if !fits(data, off, size) {
			continue
		}
		if sizes, err := m.directoryAt(data, off, size); err == nil {
			return off, sizes, nil
		}
	}
	return 0, nil, fmt.Errorf("%w: no directory in [%d, %d]", errBadDirectory, from, to)
}

func (m *Mapper) directoryAt(data []byte, offset, size int64) ([]uint32, error) {
	payload, err := m.decode(data[offset : offset+size : offset+size])
	if err != nil {
		return nil, err
	}
	sizes := ParseDirectory(payload, int64(len(data)), offset+size)
	if sizes == nil {
		return nil, errBadDirectory
	}
	return sizes, nil
}

func fits(data []byte, offset, size int64) bool {
	return offset >= 0 && size > 0 && offset+size <= int64(len(data))
}
