package fixture

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode/utf32"
)

// Directory selects how the original-source size directory is stored.
type Directory int

const (
	NoDirectory Directory = iota
	EncryptedDirectory
	PlainDirectory
)

// Entry is one named resource in a pack.
type Entry struct {
	Name string
	Data []byte
}

// Layout records where Build placed each region.
type Layout struct {
	Size           int
	SceneNameIndex int
	SceneNames     int
	SceneIndex     int
	SceneData      int
	SceneDataEnd   int
	Directory      int
	DirectorySize  int
	Source         []int
	Trailer        int
}

// Pack describes a synthetic scene pack.
type Pack struct {
	IncProps  int // zeroed inc_prop_list entries
	IncCmds   int // zeroed inc_cmd_list entries
	Scenes    []Entry
	NoNames   bool // omit the scene name tables
	NameWidth int  // 1, 2 (default) or 4 bytes per character
	AngouMod  int32

	Directory  Directory
	DirPadding int // zero bytes between the scene data and the directory
	Source     []Entry
	Trailer    []byte
}

// Build lays the pack out in header order and returns its bytes.
func (p Pack) Build() ([]byte, Layout) {
	var (
		h   [23]int32
		buf = make([]byte, 92)
		l   Layout
	)
	h[0] = 92

	table := func(ofs, cnt int, entries [][2]int) {
		h[ofs], h[cnt] = int32(len(buf)), int32(len(entries))
		for _, e := range entries {
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(e[0])))
			buf = binary.LittleEndian.AppendUint32(buf, uint32(int32(e[1])))
		}
	}

	if p.IncProps > 0 {
		table(1, 2, make([][2]int, p.IncProps))
	}
	if p.IncCmds > 0 {
		table(7, 8, make([][2]int, p.IncCmds))
	}

	if !p.NoNames && len(p.Scenes) > 0 {
		var (
			pool    []byte
			entries [][2]int
			chars   int
			width   = p.width()
		)
		for _, s := range p.Scenes {
			enc := encodeName(s.Name, width)
			entries = append(entries, [2]int{chars, len(enc) / width})
			chars += len(enc) / width
			pool = append(pool, enc...)
		}
		l.SceneNameIndex = len(buf)
		table(13, 14, entries)
		l.SceneNames = len(buf)
		h[15], h[16] = int32(len(buf)), int32(len(entries))
		buf = append(buf, pool...)
	}

	if len(p.Scenes) > 0 {
		var entries [][2]int
		rel := 0
		for _, s := range p.Scenes {
			entries = append(entries, [2]int{rel, len(s.Data)})
			rel += len(s.Data)
		}
		l.SceneIndex = len(buf)
		table(17, 18, entries)
		l.SceneData = len(buf)
		h[19], h[20] = int32(len(buf)), int32(len(entries))
		for _, s := range p.Scenes {
			buf = append(buf, s.Data...)
		}
	}
	l.SceneDataEnd = len(buf)
	h[21] = p.AngouMod

	if p.Directory != NoDirectory {
		buf = append(buf, make([]byte, p.DirPadding)...)
		sizes := make([]int, len(p.Source))
		for i, s := range p.Source {
			sizes[i] = len(s.Data)
		}
		dir := Sizes(sizes...)
		if p.Directory == EncryptedDirectory {
			dir = Block("size_list", dir)
		}
		l.Directory, l.DirectorySize = len(buf), len(dir)
		h[22] = int32(len(dir))
		buf = append(buf, dir...)
		for _, s := range p.Source {
			l.Source = append(l.Source, len(buf))
			buf = append(buf, s.Data...)
		}
	}

	l.Trailer = len(buf)
	buf = append(buf, p.Trailer...)
	l.Size = len(buf)

	for i, v := range h {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return buf, l
}

func (p Pack) width() int {
	switch p.NameWidth {
	case 1, 4:
		return p.NameWidth
	default:
		return 2
	}
}

func encodeName(s string, width int) []byte {
	switch width {
	case 1:
		return []byte(s)
	case 4:
		b, err := utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewEncoder().Bytes([]byte(s))
		if err != nil {
			panic(err)
		}
		return b
	default:
		return UTF16(s)
	}
}
