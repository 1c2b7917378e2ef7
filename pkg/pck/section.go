package pck

import (
	"cmp"
	"container/heap"
	"slices"
)

// Section symbols.
const (
	SymHeader           byte = 'H'
	SymIncPropList      byte = 'P'
	SymIncPropNameIndex byte = 'p'
	SymIncPropNameList  byte = 's'
	SymIncCmdList       byte = 'C'
	SymIncCmdNameIndex  byte = 'c'
	SymIncCmdNameList   byte = 'n'
	SymScnNameIndex     byte = 'N'
	SymScnNameList      byte = 'S'
	SymScnDataIndex     byte = 'I'
	SymScnDataList      byte = 'L'
	SymScene            byte = 'F'
	SymSourceDirectory  byte = 'D'
	SymSourceItem       byte = 'O'
	SymTail             byte = 'T'
	SymGap              byte = 'G'
)

// Priorities order coinciding sections: higher is listed first.
const (
	PriorityHeader    = 100
	PriorityTable     = 80
	PriorityDirectory = 75
	PrioritySceneData = 70
	PriorityNamePool  = 55
	PrioritySource    = 45
	PriorityScene     = 40
	PriorityTail      = 10
	PriorityGap       = 1
)

// Legend describes every symbol in display order.
var Legend = []struct {
	Symbol      byte
	Description string
}{
	{SymHeader, "pack_header"},
	{SymIncPropList, "inc_prop_list"},
	{SymIncPropNameIndex, "inc_prop_name_index_list"},
	{SymIncPropNameList, "inc_prop_name_list"},
	{SymIncCmdList, "inc_cmd_list"},
	{SymIncCmdNameIndex, "inc_cmd_name_index_list"},
	{SymIncCmdNameList, "inc_cmd_name_list"},
	{SymScnNameIndex, "scn_name_index_list"},
	{SymScnNameList, "scn_name_list"},
	{SymScnDataIndex, "scn_data_index_list"},
	{SymScnDataList, "scn_data_list (aggregate)"},
	{SymScene, "scene_data item (per index)"},
	{SymSourceDirectory, "original_source_size_list_data"},
	{SymSourceItem, "original_source_data item (partitioned)"},
	{SymTail, "tail/extra"},
	{SymGap, "gap/unknown"},
}

// Section is a labelled byte range [Start, End) of a pack.
type Section struct {
	Start     int64
	End       int64
	Symbol    byte
	Priority  int
	Name      string
	Extracted bool
}

// Size returns the length of the section in bytes.
func (s Section) Size() int64 { return s.End - s.Start }

func compareSections(a, b Section) int {
	return cmp.Or(
		cmp.Compare(a.Start, b.Start),
		cmp.Compare(a.End, b.End),
		cmp.Compare(b.Priority, a.Priority),
		cmp.Compare(a.Symbol, b.Symbol),
		cmp.Compare(a.Name, b.Name),
	)
}

// SortSections orders sections by start, end, descending priority, symbol and name.
func SortSections(sections []Section) {
	slices.SortStableFunc(sections, compareSections)
}

type span struct{ start, end int64 }

// mergeSpans sorts spans and merges the overlapping and touching ones.
func mergeSpans(spans []span) []span {
	spans = slices.DeleteFunc(slices.Clone(spans), func(s span) bool { return s.end <= s.start })
	if len(spans) == 0 {
		return nil
	}
	slices.SortFunc(spans, func(a, b span) int {
		return cmp.Or(cmp.Compare(a.start, b.start), cmp.Compare(a.end, b.end))
	})

	out := spans[:1]
	for _, s := range spans[1:] {
		last := &out[len(out)-1]
		if s.start <= last.end {
			last.end = max(last.end, s.end)
			continue
		}
		out = append(out, s)
	}
	return out
}

// Tiles resolves overlapping sections into a tiling of [0, FileSize): every
// byte belongs to the shortest section covering it, ties going to the section
// listed first. Adjacent pieces of the same section are joined.
func (m *Map) Tiles() []Section {
	secs := m.Sections
	bounds := make([]int64, 0, 2*len(secs))
	for _, s := range secs {
		bounds = append(bounds, s.Start, s.End)
	}
	slices.Sort(bounds)
	bounds = slices.Compact(bounds)

	order := make([]int, len(secs))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int { return cmp.Compare(secs[a].Start, secs[b].Start) })

	active := &coverHeap{secs: secs}
	var (
		tiles []Section
		last  = -1
		next  = 0
	)
	for k := 0; k+1 < len(bounds); k++ {
		lo, hi := bounds[k], bounds[k+1]
		for next < len(order) && secs[order[next]].Start <= lo {
			heap.Push(active, order[next])
			next++
		}
		for active.Len() > 0 && secs[active.idx[0]].End <= lo {
			heap.Pop(active)
		}
		if active.Len() == 0 {
			last = -1
			continue
		}

		best := active.idx[0]
		if best == last && tiles[len(tiles)-1].End == lo {
			tiles[len(tiles)-1].End = hi
			continue
		}
		t := secs[best]
		t.Start, t.End = lo, hi
		tiles = append(tiles, t)
		last = best
	}
	return tiles
}

// coverHeap orders candidate sections by size, then by position in the map.
// Entries that ended are removed lazily when they reach the top.
type coverHeap struct {
	secs []Section
	idx  []int
}

func (h *coverHeap) Len() int { return len(h.idx) }

func (h *coverHeap) Less(i, j int) bool {
	a, b := h.idx[i], h.idx[j]
	if sa, sb := h.secs[a].Size(), h.secs[b].Size(); sa != sb {
		return sa < sb
	}
	return a < b
}

func (h *coverHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }

func (h *coverHeap) Push(x any) { h.idx = append(h.idx, x.(int)) }

func (h *coverHeap) Pop() any {
	n := len(h.idx)
	x := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return x
}
