// Package compare matches the sections of two packs by symbol and name and
// reports which ones hold identical bytes.
package compare

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/goopsie/pckFileTools/pkg/pck"
)

// Input is one side of a comparison.
type Input struct {
	Data     []byte
	Sections []pck.Section
}

// Row pairs the n-th range of a (symbol, name) group in both packs. A start of
// -1 means the pack has no such range.
type Row struct {
	Symbol  byte
	Name    string
	StartA  int64
	StartB  int64
	SizeA   int64
	SizeB   int64
	Same    bool
	DigestA uint64
	DigestB uint64
}

// Address returns the start of the row in A, or in B when A lacks it.
func (r Row) Address() int64 {
	if r.StartA >= 0 {
		return r.StartA
	}
	return max(r.StartB, 0)
}

type key struct {
	symbol byte
	name   string
}

type span struct{ start, end int64 }

func group(sections []pck.Section) map[key][]span {
	g := make(map[key][]span)
	for _, s := range sections {
		k := key{s.Symbol, s.Name}
		g[k] = append(g[k], span{s.Start, s.End})
	}
	for _, spans := range g {
		slices.SortFunc(spans, func(a, b span) int {
			return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
		})
	}
	return g
}

// Compare returns one row per range of every (symbol, name) group present in
// either pack. Repeated ranges of a group are paired in address order and
// named with a "#i" suffix after the first. Rows that differ come first, then
// identical ones, each ordered by address.
func Compare(a, b Input) []Row {
	ga, gb := group(a.Sections), group(b.Sections)

	keys := make([]key, 0, len(ga)+len(gb))
	for k := range ga {
		keys = append(keys, k)
	}
	for k := range gb {
		if _, ok := ga[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(x, y key) int {
		return cmp.Or(cmp.Compare(x.symbol, y.symbol), cmp.Compare(x.name, y.name))
	})

	var rows []Row
	for _, k := range keys {
		la, lb := ga[k], gb[k]
		for i := range max(len(la), len(lb)) {
			row := Row{Symbol: k.symbol, Name: k.name, StartA: -1, StartB: -1}
			if i > 0 {
				row.Name = fmt.Sprintf("%s#%d", k.name, i)
			}

			var da, db []byte
			if i < len(la) {
				row.StartA, row.SizeA = la[i].start, la[i].end-la[i].start
				da = slice(a.Data, la[i])
				row.DigestA = xxhash.Sum64(da)
			}
			if i < len(lb) {
				row.StartB, row.SizeB = lb[i].start, lb[i].end-lb[i].start
				db = slice(b.Data, lb[i])
				row.DigestB = xxhash.Sum64(db)
			}
			row.Same = da != nil && db != nil && row.SizeA == row.SizeB &&
				row.DigestA == row.DigestB && bytes.Equal(da, db)
			rows = append(rows, row)
		}
	}

	slices.SortStableFunc(rows, func(x, y Row) int {
		if x.Same != y.Same {
			if x.Same {
				return 1
			}
			return -1
		}
		return cmp.Compare(x.Address(), y.Address())
	})
	return rows
}

// slice returns the bytes of s, or nil when s does not lie within data.
func slice(data []byte, s span) []byte {
	if s.start < 0 || s.end < s.start || s.end > int64(len(data)) {
		return nil
	}
	return data[s.start:s.end:s.end]
}

// Summary counts identical and differing rows.
func Summary(rows []Row) (same, different int) {
	for _, r := range rows {
		if r.Same {
			same++
		} else {
			different++
		}
	}
	return same, different
}
