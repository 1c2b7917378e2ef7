package pck

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/goopsie/pckFileTools/pkg/resource"
)

var (
	errNoExtractor  = errors.New("no extractor")
	errBadDirectory = errors.New("implausible size directory")
)

// Map is the section map of a pack.
type Map struct {
	// Sections holds every labelled range in sort order. Ranges may nest, a
	// scene item lies inside the aggregate scene data for example; use Tiles
	// for a non-overlapping view.
	Sections []Section

	Header         *Header
	FileSize       int64
	HeaderSize     int64
	SceneNameWidth int // 0 when the scene names could not be decoded

	SourceDirOffset int64
	SourceDirSize   int64
	SourceEntries   int
	SourceStrategy  string

	UnusedBytes   int64
	UnusedPercent float64
}

// MapOption configures a Mapper.
type MapOption func(*Mapper)

// WithExtractor sets the resource decoder. A nil extractor disables decoding:
// the header strategy is skipped and source items keep placeholder names.
func WithExtractor(e resource.Extractor) MapOption {
	return func(m *Mapper) {
		m.extractor = e
	}
}

// WithScan enables the brute-force directory scan.
func WithScan(enabled bool) MapOption {
	return func(m *Mapper) {
		m.scan = enabled
	}
}

// WithScanLimit bounds the number of bytes of offsets the scan visits.
// Zero or less removes the bound.
func WithScanLimit(limit int64) MapOption {
	return func(m *Mapper) {
		m.scanLimit = limit
	}
}

// WithNameWidth truncates item names longer than width runes.
func WithNameWidth(width int) MapOption {
	return func(m *Mapper) {
		m.nameWidth = width
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) MapOption {
	return func(m *Mapper) {
		m.log = l
	}
}

// Mapper partitions packs into sections.
type Mapper struct {
	extractor resource.Extractor
	scan      bool
	scanLimit int64
	nameWidth int
	log       *slog.Logger
}

// NewMapper returns a Mapper using resource.Default unless configured otherwise.
func NewMapper(opts ...MapOption) *Mapper {
	m := &Mapper{
		extractor: resource.Default,
		scanLimit: DefaultScanLimit,
		log:       slog.Default().With("component", "pck"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Build maps data with a Mapper configured by opts.
func Build(data []byte, opts ...MapOption) (*Map, error) {
	return NewMapper(opts...).Map(data)
}

// builder accumulates sections and used ranges, clamped to the pack.
type builder struct {
	size     int64
	sections []Section
	used     []span
}

func (b *builder) add(start, end int64, name string, sym byte, priority int) {
	start, end = clamp(start, 0, b.size), clamp(end, 0, b.size)
	if end <= start {
		return
	}
	b.sections = append(b.sections, Section{Start: start, End: end, Symbol: sym, Priority: priority, Name: name})
	b.used = append(b.used, span{start, end})
}

func (b *builder) table(p Pair, name string, sym byte) {
	if p.Count <= 0 {
		return
	}
	start := int64(p.Offset)
	b.add(start, start+int64(p.Count)*IndexEntrySize, name, sym, PriorityTable)
}

// pool adds a name pool that runs up to the next table, or to the end of the
// pack when the next table does not lie after it.
func (b *builder) pool(p Pair, next int32, name string, sym byte) {
	if p.Count <= 0 || p.Offset < 0 {
		return
	}
	end := b.size
	if next > p.Offset {
		end = int64(next)
	}
	b.add(int64(p.Offset), end, name, sym, PriorityNamePool)
}

// Map partitions data into sections. Only inputs too small to hold a header
// are rejected; every other inconsistency is clamped or skipped.
func (m *Mapper) Map(data []byte) (*Map, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	n := int64(len(data))
	b := &builder{size: n}
	res := &Map{
		Header:         h,
		FileSize:       n,
		HeaderSize:     h.Length(n),
		SourceStrategy: StrategyNone,
	}
	log := m.log.With("size", n)

	b.add(0, res.HeaderSize, "pack_header", SymHeader, PriorityHeader)
	b.table(h.IncPropList, "inc_prop_list", SymIncPropList)
	b.table(h.IncPropNameIndexList, "inc_prop_name_index_list", SymIncPropNameIndex)
	b.pool(h.IncPropNameList, h.IncCmdList.Offset, "inc_prop_name_list", SymIncPropNameList)
	b.table(h.IncCmdList, "inc_cmd_list", SymIncCmdList)
	b.table(h.IncCmdNameIndexList, "inc_cmd_name_index_list", SymIncCmdNameIndex)
	b.pool(h.IncCmdNameList, h.ScnNameIndexList.Offset, "inc_cmd_name_list", SymIncCmdNameList)
	b.table(h.ScnNameIndexList, "scn_name_index_list", SymScnNameIndex)

	namesStart, namesEnd := int64(h.ScnNameList.Offset), int64(h.ScnNameList.Offset)
	if h.ScnDataIndexList.Offset > h.ScnNameList.Offset {
		namesEnd = int64(h.ScnDataIndexList.Offset)
	}
	if h.ScnNameList.Count > 0 && namesStart >= 0 {
		b.add(namesStart, namesEnd, "scn_name_list", SymScnNameList, PriorityNamePool)
	}
	b.table(h.ScnDataIndexList, "scn_data_index_list", SymScnDataIndex)

	sceneEnd := m.mapScenes(data, h, b, res, namesStart, namesEnd, log)
	m.mapSource(data, h, b, res, max(sceneEnd, res.HeaderSize), log)

	merged := mergeSpans(b.used)
	var covered, prev int64
	for _, s := range merged {
		covered += s.end - s.start
		if s.start > prev {
			b.sections = append(b.sections, Section{Start: prev, End: s.start, Symbol: SymGap, Priority: PriorityGap, Name: "gap/unknown"})
		}
		prev = max(prev, s.end)
	}
	if prev < n {
		b.sections = append(b.sections, Section{Start: prev, End: n, Symbol: SymGap, Priority: PriorityGap, Name: "gap/unknown"})
	}
	res.UnusedBytes = n - covered
	if n > 0 {
		res.UnusedPercent = float64(res.UnusedBytes) * 100 / float64(n)
	}

	SortSections(b.sections)
	res.Sections = b.sections
	log.Debug("packMapped", "sections", len(res.Sections), "unused", res.UnusedBytes, "strategy", res.SourceStrategy)
	return res, nil
}

// mapScenes adds the aggregate scene data and one section per scene. It
// returns the end of the scene data.
func (m *Mapper) mapScenes(data []byte, h *Header, b *builder, res *Map, namesStart, namesEnd int64, log *slog.Logger) int64 {
	index, err := ReadIndex(data, int64(h.ScnDataIndexList.Offset), int64(h.ScnDataIndexList.Count))
	if err != nil {
		log.Debug("sceneIndexSkipped", "err", err)
	}

	var total int64
	for _, e := range index {
		if e.Offset >= 0 && e.Size >= 0 {
			total = max(total, e.End())
		}
	}
	start := int64(h.ScnDataList.Offset)
	end := start + total
	if total > 0 {
		b.add(start, end, "scn_data_list", SymScnDataList, PrioritySceneData)
	}

	var names []string
	table, err := BuildStringTable(data, int64(h.ScnNameIndexList.Offset), int64(h.ScnNameIndexList.Count), namesStart, namesEnd)
	if err != nil {
		log.Debug("sceneNamesSkipped", "err", err)
	} else {
		names = table.Strings
		if len(names) > 0 {
			res.SceneNameWidth = table.Width
		}
	}

	count := len(index)
	if len(names) > 0 {
		count = min(count, len(names))
	}
	for i, e := range index[:count] {
		if e.Offset < 0 || e.Size <= 0 {
			continue
		}
		name := fmt.Sprintf("scene#%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		a := start + int64(e.Offset)
		b.add(a, a+int64(e.Size), m.truncate(name), SymScene, PriorityScene)
	}
	return end
}

// mapSource resolves the original-source partition that follows the scene
// data at offset, then covers whatever remains with a tail section.
func (m *Mapper) mapSource(data []byte, h *Header, b *builder, res *Map, offset int64, log *slog.Logger) {
	n := int64(len(data))
	size := max(int64(h.OriginalSourceHeaderSize), 0)
	res.SourceDirOffset, res.SourceDirSize = offset, size

	var sizes []uint32
	if size > 0 {
		for _, s := range m.strategies() {
			off, found, err := s.locate(data, offset, size)
			if err != nil {
				log.Debug("sourceStrategyFailed", "strategy", s.name, "offset", offset, "err", err)
				continue
			}
			res.SourceDirOffset, res.SourceStrategy, sizes = off, s.name, found
			break
		}
		if fits(data, res.SourceDirOffset, size) {
			b.add(res.SourceDirOffset, res.SourceDirOffset+size, "original_source_size_list_data", SymSourceDirectory, PriorityDirectory)
		}
	}
	res.SourceEntries = len(sizes)

	tail := offset
	if sizes == nil {
		if size > 0 && res.SourceDirOffset >= 0 && res.SourceDirOffset <= n {
			tail = max(tail, res.SourceDirOffset+size)
		}
		name := "tail/extra"
		if size > 0 {
			name = fmt.Sprintf("original_source_data (unpartitioned, osz=%d)", size)
			if res.SourceStrategy != StrategyNone {
				name += fmt.Sprintf(" (%s)", res.SourceStrategy)
			}
		}
		if tail < n {
			b.add(tail, n, name, SymTail, PriorityTail)
		}
		return
	}

	off := res.SourceDirOffset + size
	last := off
	for i, sz := range sizes {
		if off >= n {
			break
		}
		end := min(off+int64(sz), n)
		name := m.itemName(data[off:end])
		if name == "" {
			name = fmt.Sprintf("original_source#%d", i)
		}
		b.add(off, end, m.truncate(name), SymSourceItem, PrioritySource)
		off += int64(sz)
		last = end
	}
	log.Debug("sourceResolved", "strategy", res.SourceStrategy, "entries", len(sizes), "offset", res.SourceDirOffset)

	tail = max(tail, last)
	if tail < n {
		b.add(tail, n, fmt.Sprintf("tail/extra (os:%s)", res.SourceStrategy), SymTail, PriorityTail)
	}
}

// decode runs the extractor, turning a panic into an error.
func (m *Mapper) decode(block []byte) (payload []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	_, payload, err = m.extractor.Decode(block)
	return payload, err
}

// itemName peeks at the filename of a source item. It returns "" when the
// item has no readable name.
func (m *Mapper) itemName(block []byte) (name string) {
	if m.extractor == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			m.log.Debug("extractorPanic", "op", "name", "panic", r)
			name = ""
		}
	}()
	name, err := m.extractor.Name(block[:len(block):len(block)])
	if err != nil {
		return ""
	}
	return name
}

func (m *Mapper) truncate(name string) string {
	if m.nameWidth <= 0 {
		return name
	}
	r := []rune(name)
	if len(r) <= m.nameWidth {
		return name
	}
	return string(r[:m.nameWidth-1]) + "…"
}
