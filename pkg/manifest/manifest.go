// Package manifest records the sections written by an export so a dump can be
// listed and checked later without the source pack.
package manifest

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/goopsie/pckFileTools/pkg/archive"
	"github.com/goopsie/pckFileTools/pkg/pck"
)

// FileName is the name of the index written next to an export.
const FileName = "sections.idx"

// Version is the current index format version.
const Version = 1

// EntrySize is the binary size of an Entry.
const EntrySize = 40

// ErrCorrupt is returned for indexes whose tables are inconsistent.
var ErrCorrupt = errors.New("corrupt section index")

// Manifest is a parsed section index.
type Manifest struct {
	Header  Header
	Entries []Entry
	Names   []byte // UTF-8 name pool
}

// Header describes the pack the index was taken from.
type Header struct {
	Version        uint32
	EntryCount     uint32
	FileSize       uint64
	HeaderSize     uint64
	SourceStrategy [8]byte // NUL padded
	NamePoolLength uint32
	_              [4]byte // Padding
}

// Entry describes one section.
type Entry struct {
	Start      int64
	End        int64
	Digest     uint64 // xxhash64 of the section bytes
	NameOffset uint32 // Byte offset into the name pool
	NameLength uint32
	Priority   int32
	Symbol     uint8
	Extracted  uint8
	_          [2]byte // Padding
}

// FromMap builds an index of m's sections over data.
func FromMap(m *pck.Map, data []byte) *Manifest {
	man := &Manifest{
		Header: Header{
			Version:    Version,
			EntryCount: uint32(len(m.Sections)),
			FileSize:   uint64(m.FileSize),
			HeaderSize: uint64(m.HeaderSize),
		},
		Entries: make([]Entry, len(m.Sections)),
	}
	copy(man.Header.SourceStrategy[:], m.SourceStrategy)

	var names bytes.Buffer
	for i, s := range m.Sections {
		e := Entry{
			Start:      s.Start,
			End:        s.End,
			NameOffset: uint32(names.Len()),
			NameLength: uint32(len(s.Name)),
			Priority:   int32(s.Priority),
			Symbol:     s.Symbol,
		}
		if s.Start >= 0 && s.End >= s.Start && s.End <= int64(len(data)) {
			e.Digest = xxhash.Sum64(data[s.Start:s.End])
		}
		if s.Extracted {
			e.Extracted = 1
		}
		names.WriteString(s.Name)
		man.Entries[i] = e
	}
	man.Names = names.Bytes()
	man.Header.NamePoolLength = uint32(len(man.Names))
	return man
}

// SourceStrategy returns the strategy that resolved the source directory.
func (m *Manifest) SourceStrategy() string {
	return strings.TrimRight(string(m.Header.SourceStrategy[:]), "\x00")
}

// Name returns the name of entry i.
func (m *Manifest) Name(i int) string {
	e := m.Entries[i]
	return string(m.Names[e.NameOffset : e.NameOffset+e.NameLength])
}

// Sections returns the indexed sections.
func (m *Manifest) Sections() []pck.Section {
	out := make([]pck.Section, len(m.Entries))
	for i, e := range m.Entries {
		out[i] = pck.Section{
			Start:     e.Start,
			End:       e.End,
			Symbol:    e.Symbol,
			Priority:  int(e.Priority),
			Name:      m.Name(i),
			Extracted: e.Extracted != 0,
		}
	}
	return out
}

// Verify returns the indexes of the entries whose bytes in data no longer
// match the recorded digest.
func (m *Manifest) Verify(data []byte) []int {
	var changed []int
	for i, e := range m.Entries {
		if e.Start < 0 || e.End < e.Start || e.End > int64(len(data)) ||
			xxhash.Sum64(data[e.Start:e.End]) != e.Digest {
			changed = append(changed, i)
		}
	}
	return changed
}

// UnmarshalBinary decodes an index from binary data.
func (m *Manifest) UnmarshalBinary(data []byte) error {
	reader := bytes.NewReader(data)

	if err := binary.Read(reader, binary.LittleEndian, &m.Header); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if m.Header.Version != Version {
		return fmt.Errorf("%w: unsupported version %d", ErrCorrupt, m.Header.Version)
	}
	if uint64(m.Header.EntryCount)*EntrySize > uint64(reader.Len()) {
		return fmt.Errorf("%w: %d entries in %d bytes", ErrCorrupt, m.Header.EntryCount, reader.Len())
	}

	m.Entries = make([]Entry, m.Header.EntryCount)
	if err := binary.Read(reader, binary.LittleEndian, &m.Entries); err != nil {
		return fmt.Errorf("read entries: %w", err)
	}

	if int64(m.Header.NamePoolLength) != int64(reader.Len()) {
		return fmt.Errorf("%w: name pool is %d bytes, header says %d", ErrCorrupt, reader.Len(), m.Header.NamePoolLength)
	}
	m.Names = make([]byte, m.Header.NamePoolLength)
	if _, err := reader.Read(m.Names); err != nil && m.Header.NamePoolLength > 0 {
		return fmt.Errorf("read names: %w", err)
	}

	for i, e := range m.Entries {
		if uint64(e.NameOffset)+uint64(e.NameLength) > uint64(len(m.Names)) {
			return fmt.Errorf("%w: entry %d name out of range", ErrCorrupt, i)
		}
	}
	return nil
}

// MarshalBinary encodes an index to binary data.
func (m *Manifest) MarshalBinary() ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, 40+len(m.Entries)*EntrySize+len(m.Names)))

	sections := []any{
		m.Header,
		m.Entries,
		m.Names,
	}

	for _, section := range sections {
		if err := binary.Write(buf, binary.LittleEndian, section); err != nil {
			return nil, fmt.Errorf("write section: %w", err)
		}
	}

	return buf.Bytes(), nil
}

// ReadFile reads and parses an index file.
func ReadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer f.Close()

	data, err := archive.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}

	m := &Manifest{}
	if err := m.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("parse index: %w", err)
	}

	return m, nil
}

// WriteFile writes an index file.
func WriteFile(path string, m *Manifest) error {
	data, err := m.MarshalBinary()
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if err := archive.Encode(f, data); err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}

	return f.Close()
}
