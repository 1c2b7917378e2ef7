package pck

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// ErrNegativeEntry is returned when a string index holds a negative offset or length.
var ErrNegativeEntry = errors.New("negative string index entry")

// maxWidthSlack is the number of unused trailing characters a pool may carry
// before a width stops being plausible.
const maxWidthSlack = 8

var widthOrder = [...]int{2, 1, 4}

// StringTable is a decoded name pool.
type StringTable struct {
	Strings []string
	Width   int // bytes per character
}

// GuessCharWidth infers the character width of a pool holding totalChars
// characters in poolLen bytes.
func GuessCharWidth(poolLen, totalChars int64) int {
	if totalChars <= 0 {
		return 1
	}
	for _, w := range widthOrder {
		if poolLen == totalChars*int64(w) {
			return w
		}
	}
	for _, w := range widthOrder {
		chars := poolLen / int64(w)
		if poolLen%int64(w) == 0 && chars >= totalChars && chars-totalChars < maxWidthSlack {
			return w
		}
	}
	if poolLen%2 == 0 {
		return 2
	}
	return 1
}

// BuildStringTable decodes the strings described by an index of
// (character offset, character length) pairs over the pool [poolOfs, poolEnd).
// The pool range is clamped to data. Entries that fall outside the pool decode
// to the empty string.
func BuildStringTable(data []byte, idxOfs, idxCnt, poolOfs, poolEnd int64) (*StringTable, error) {
	index, err := ReadIndex(data, idxOfs, idxCnt)
	if err != nil {
		return nil, err
	}

	size := int64(len(data))
	poolOfs = clamp(poolOfs, 0, size)
	poolEnd = clamp(poolEnd, 0, size)
	if poolEnd < poolOfs {
		poolEnd = poolOfs
	}
	pool := data[poolOfs:poolEnd]

	var totalChars int64
	for i, e := range index {
		if e.Offset < 0 || e.Size < 0 {
			return nil, fmt.Errorf("%w: entry %d (%d, %d)", ErrNegativeEntry, i, e.Offset, e.Size)
		}
		totalChars = max(totalChars, e.End())
	}

	w := GuessCharWidth(int64(len(pool)), totalChars)
	table := &StringTable{Strings: make([]string, len(index)), Width: w}
	for i, e := range index {
		a, b := int64(e.Offset)*int64(w), e.End()*int64(w)
		if b > int64(len(pool)) {
			continue
		}
		table.Strings[i] = decodeString(pool[a:b], w)
	}
	return table, nil
}

var (
	utf16Encoding encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	utf32Encoding encoding.Encoding = utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
)

// decodeString decodes b at character width w. Invalid sequences become U+FFFD.
// Single-byte pools that are not valid UTF-8 are read as Shift-JIS.
func decodeString(b []byte, w int) string {
	var enc encoding.Encoding
	switch w {
	case 2:
		enc = utf16Encoding
	case 4:
		enc = utf32Encoding
	default:
		if utf8.Valid(b) {
			return string(b)
		}
		enc = japanese.ShiftJIS
	}

	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return string(utf8.RuneError)
	}
	return string(s)
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
