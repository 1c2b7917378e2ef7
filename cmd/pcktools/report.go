package main

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/goopsie/pckFileTools/pkg/pck"
)

// nameWidth is the NAME column width of the export and compare tables.
const nameWidth = 50

func hx(n int64) string {
	return fmt.Sprintf("0x%08X", n)
}

// shorten cuts name to width runes, marking the cut with an ellipsis.
func shorten(name string, width int) string {
	if width <= 0 || utf8.RuneCountInString(name) <= width {
		return name
	}
	if width == 1 {
		return "…"
	}
	return string([]rune(name)[:width-1]) + "…"
}

// printSummary writes the header fields, table counts and source partition of m.
func printSummary(w io.Writer, path string, m *pck.Map) {
	h := m.Header
	fmt.Fprintln(w, "==== PCK Section Map ====")
	fmt.Fprintf(w, "file: %s\n", path)
	fmt.Fprintf(w, "size: %d bytes (%s)\n", m.FileSize, hx(m.FileSize))
	fmt.Fprintln(w, "header:")
	fmt.Fprintf(w, "  header_size=%d\n", h.HeaderSize)
	fmt.Fprintf(w, "  scn_data_exe_angou_mod=%d\n", h.ScnDataExeAngouMod)
	fmt.Fprintf(w, "  original_source_header_size=%d\n", h.OriginalSourceHeaderSize)
	fmt.Fprintln(w, "counts:")
	fmt.Fprintf(w, "  inc_prop=%d  inc_cmd=%d\n", h.IncPropList.Count, h.IncCmdList.Count)
	fmt.Fprintf(w, "  scn_name=%d  scn_data_index=%d  scn_data_cnt=%d\n",
		h.ScnNameIndexList.Count, h.ScnDataIndexList.Count, h.ScnDataList.Count)

	width := "unknown"
	if m.SceneNameWidth > 0 {
		width = fmt.Sprint(m.SceneNameWidth)
	}
	fmt.Fprintf(w, "scn_name_char_width=%s\n", width)
	if m.SourceDirSize > 0 {
		fmt.Fprintf(w, "original_source_partition: dir_off=%s dir_size=%d entries=%d via %s\n",
			hx(m.SourceDirOffset), m.SourceDirSize, m.SourceEntries, m.SourceStrategy)
	}
	fmt.Fprintf(w, "unused(by ranges): %d bytes (%.2f%%)\n", m.UnusedBytes, m.UnusedPercent)
}

func printLegend(w io.Writer) {
	fmt.Fprintln(w, "==== SYM Legend ====")
	for _, l := range pck.Legend {
		fmt.Fprintf(w, "%c : %s\n", l.Symbol, l.Description)
	}
}

// printSections writes one row per non-empty section. The EXTRACTED column is
// included when extracted is set; names are cut to width runes when width > 0.
func printSections(w io.Writer, sections []pck.Section, extracted bool, width int) {
	fmt.Fprintln(w, "==== Sections (ranges) ====")
	if extracted {
		fmt.Fprintf(w, "%3s  %-10s  %-10s  %10s  %-9s  %s\n", "SYM", "START", "LAST", "SIZE", "EXTRACTED", "NAME")
		fmt.Fprintf(w, "---  ----------  ----------  ----------  ---------  %s\n", strings.Repeat("-", max(width, 4)))
	} else {
		fmt.Fprintf(w, "%3s  %-10s  %-10s  %10s  %s\n", "SYM", "START", "LAST", "SIZE", "NAME")
		fmt.Fprintf(w, "---  ----------  ----------  ----------  %s\n", strings.Repeat("-", max(width, 4)))
	}

	for _, s := range sections {
		if s.End <= s.Start {
			continue
		}
		if extracted {
			fmt.Fprintf(w, "%3c  %-10s  %-10s  %10d  %-9t  %s\n",
				s.Symbol, hx(s.Start), hx(s.End-1), s.Size(), s.Extracted, shorten(s.Name, width))
		} else {
			fmt.Fprintf(w, "%3c  %-10s  %-10s  %10d  %s\n",
				s.Symbol, hx(s.Start), hx(s.End-1), s.Size(), shorten(s.Name, width))
		}
	}
}
