// Package cipher implements the rotating-index XOR stream cipher used throughout
// scene pack files, together with the four substitution tables it is keyed with.
package cipher

import "fmt"

// TableSize is the length of every substitution table.
const TableSize = 256

// Table is a 256-byte substitution table. Tables are string constants so that
// they cannot be modified at runtime.
type Table string

// Validate checks that the table has exactly TableSize bytes.
func (t Table) Validate() error {
	if len(t) != TableSize {
		return fmt.Errorf("invalid table length: expected %d, got %d", TableSize, len(t))
	}
	return nil
}

// At returns the table byte for index i, wrapping modulo TableSize.
func (t Table) At(i int) byte {
	return t[i&(TableSize-1)]
}

// Tables returns every table keyed by its name.
func Tables() map[string]Table {
	return map[string]Table{
		"DC70": DC70,
		"DD70": DD70,
		"DE70": DE70,
		"DF70": DF70,
	}
}

func init() {
	for name, t := range Tables() {
		if err := t.Validate(); err != nil {
			panic(fmt.Sprintf("cipher table %s: %v", name, err))
		}
	}
}

// XOR transforms buf in place, combining byte i with t[(start+i) mod 256].
// Applying it twice with the same table and start restores the input.
func XOR(buf []byte, t Table, start int) {
	idx := start & (TableSize - 1)
	for i := range buf {
		buf[i] ^= t[idx]
		idx = (idx + 1) & (TableSize - 1)
	}
}

// Apply returns a transformed copy of src, leaving src untouched.
func Apply(src []byte, t Table, start int) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	XOR(dst, t, start)
	return dst
}
