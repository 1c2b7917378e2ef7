package pck

import (
	"encoding/binary"
	"errors"
	"testing"
)

// rawPack returns a zeroed pack of size bytes with the given header fields set.
func rawPack(size int, fields map[int]int32) []byte {
	data := make([]byte, size)
	binary.LittleEndian.PutUint32(data[0:], MinHeaderSize)
	for i, v := range fields {
		binary.LittleEndian.PutUint32(data[i*4:], uint32(v))
	}
	return data
}

func TestParseHeader(t *testing.T) {
	t.Run("TooSmall", func(t *testing.T) {
		_, err := ParseHeader(make([]byte, MinHeaderSize-1))
		if !errors.Is(err, ErrTooSmall) {
			t.Errorf("expected ErrTooSmall, got %v", err)
		}
	})

	t.Run("Fields", func(t *testing.T) {
		data := rawPack(MinHeaderSize, map[int]int32{
			1: 100, 2: 3,
			13: 200, 14: 4,
			19: -1, 20: 7,
			21: 1,
			22: 64,
		})
		h, err := ParseHeader(data)
		if err != nil {
			t.Fatalf("parse: %v", err)
		}
		if h.HeaderSize != MinHeaderSize {
			t.Errorf("header size: got %d", h.HeaderSize)
		}
		if h.IncPropList != (Pair{100, 3}) {
			t.Errorf("inc_prop_list: got %+v", h.IncPropList)
		}
		if h.ScnNameIndexList != (Pair{200, 4}) {
			t.Errorf("scn_name_index_list: got %+v", h.ScnNameIndexList)
		}
		if h.ScnDataList != (Pair{-1, 7}) {
			t.Errorf("scn_data_list: got %+v", h.ScnDataList)
		}
		if h.ScnDataExeAngouMod != 1 || h.OriginalSourceHeaderSize != 64 {
			t.Errorf("scalars: got %d, %d", h.ScnDataExeAngouMod, h.OriginalSourceHeaderSize)
		}
	})

	t.Run("Length", func(t *testing.T) {
		tests := []struct {
			size     int32
			fileSize int64
			want     int64
		}{
			{92, 200, 92},
			{128, 200, 128},
			{200, 200, 200},
			{201, 200, 92},
			{0, 200, 92},
			{-5, 200, 92},
		}
		for _, tt := range tests {
			h := &Header{HeaderSize: tt.size}
			if got := h.Length(tt.fileSize); got != tt.want {
				t.Errorf("Length(%d) with header_size %d: got %d, want %d", tt.fileSize, tt.size, got, tt.want)
			}
		}
	})
}

func TestReadIndex(t *testing.T) {
	data := make([]byte, 32)
	binary.LittleEndian.PutUint32(data[8:], 5)
	binary.LittleEndian.PutUint32(data[12:], 10)
	binary.LittleEndian.PutUint32(data[16:], 0xFFFFFFFF)
	binary.LittleEndian.PutUint32(data[20:], 3)

	t.Run("Entries", func(t *testing.T) {
		got, err := ReadIndex(data, 8, 2)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		want := []IndexEntry{{5, 10}, {-1, 3}}
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("ZeroCount", func(t *testing.T) {
		got, err := ReadIndex(data, 1<<30, 0)
		if err != nil || len(got) != 0 {
			t.Errorf("got %v, %v", got, err)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		for _, tc := range []struct{ ofs, cnt int64 }{{-8, 1}, {8, 4}, {32, 1}} {
			if _, err := ReadIndex(data, tc.ofs, tc.cnt); !errors.Is(err, ErrOutOfRange) {
				t.Errorf("ReadIndex(%d, %d): expected ErrOutOfRange, got %v", tc.ofs, tc.cnt, err)
			}
		}
	})
}
