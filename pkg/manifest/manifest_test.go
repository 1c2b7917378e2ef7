package manifest

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"testing"

	"github.com/goopsie/pckFileTools/internal/fixture"
	"github.com/goopsie/pckFileTools/pkg/pck"
)

func testPack(t testing.TB) ([]byte, *pck.Map) {
	t.Helper()
	data, _ := fixture.Pack{
		Scenes: []fixture.Entry{
			{Name: "start", Data: fixture.Block("start.ss", []byte("scene one"))},
			{Name: "ending", Data: fixture.Block("ending.ss", bytes.Repeat([]byte("the end"), 10))},
		},
		Source: []fixture.Entry{
			{Name: "a", Data: fixture.Block("src/a.txt", []byte("alpha"))},
			{Name: "日本", Data: fixture.Block("src/日本語.txt", []byte("nihongo"))},
		},
		Trailer: []byte("TRAILER!"),
	}.Build()

	m, err := pck.Build(data)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	return data, m
}

func TestManifest(t *testing.T) {
	data, m := testPack(t)
	m.Sections[1].Extracted = true

	t.Run("FromMap", func(t *testing.T) {
		man := FromMap(m, data)
		if int(man.Header.EntryCount) != len(m.Sections) || len(man.Entries) != len(m.Sections) {
			t.Fatalf("entries: got %d/%d, want %d", man.Header.EntryCount, len(man.Entries), len(m.Sections))
		}
		if man.Header.FileSize != uint64(len(data)) {
			t.Errorf("FileSize: got %d, want %d", man.Header.FileSize, len(data))
		}
		if got := man.SourceStrategy(); got != m.SourceStrategy {
			t.Errorf("SourceStrategy: got %q, want %q", got, m.SourceStrategy)
		}
		if !slices.Equal(man.Sections(), m.Sections) {
			t.Errorf("sections: got %v, want %v", man.Sections(), m.Sections)
		}
	})

	t.Run("MarshalUnmarshal", func(t *testing.T) {
		original := FromMap(m, data)

		encoded, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if want := 40 + len(original.Entries)*EntrySize + len(original.Names); len(encoded) != want {
			t.Errorf("size: got %d, want %d", len(encoded), want)
		}

		decoded := &Manifest{}
		if err := decoded.UnmarshalBinary(encoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if decoded.Header != original.Header {
			t.Errorf("header: got %+v, want %+v", decoded.Header, original.Header)
		}
		if !slices.Equal(decoded.Entries, original.Entries) {
			t.Error("entries mismatch")
		}
		if !slices.Equal(decoded.Sections(), m.Sections) {
			t.Errorf("sections: got %v, want %v", decoded.Sections(), m.Sections)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		original := FromMap(&pck.Map{FileSize: 10, SourceStrategy: pck.StrategyNone}, nil)
		encoded, err := original.MarshalBinary()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		decoded := &Manifest{}
		if err := decoded.UnmarshalBinary(encoded); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(decoded.Entries) != 0 || decoded.SourceStrategy() != pck.StrategyNone {
			t.Errorf("got %+v", decoded)
		}
	})

	t.Run("Verify", func(t *testing.T) {
		man := FromMap(m, data)
		if changed := man.Verify(data); len(changed) != 0 {
			t.Errorf("unchanged data reported %v", changed)
		}

		modified := bytes.Clone(data)
		modified[len(modified)-1] ^= 0xFF
		changed := man.Verify(modified)
		if len(changed) == 0 {
			t.Fatal("expected the tail to be reported")
		}
		for _, i := range changed {
			if e := man.Entries[i]; e.End != int64(len(data)) {
				t.Errorf("entry %d [%d,%d) reported but does not cover the change", i, e.Start, e.End)
			}
		}

		if changed := man.Verify(data[:len(data)/2]); len(changed) == 0 {
			t.Error("expected truncated data to be reported")
		}
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		original := FromMap(m, data)
		if err := WriteFile(path, original); err != nil {
			t.Fatalf("write: %v", err)
		}
		decoded, err := ReadFile(path)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if !slices.Equal(decoded.Sections(), m.Sections) {
			t.Error("sections mismatch")
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if _, err := ReadFile(filepath.Join(t.TempDir(), FileName)); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestUnmarshalErrors(t *testing.T) {
	data, m := testPack(t)
	encoded, err := FromMap(m, data).MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	corrupt := func(f func(b []byte)) []byte {
		b := bytes.Clone(encoded)
		f(b)
		return b
	}

	tests := []struct {
		name    string
		data    []byte
		corrupt bool
	}{
		{"ShortHeader", encoded[:39], false},
		{"Version", corrupt(func(b []byte) { b[0] = 9 }), true},
		{"EntryCount", corrupt(func(b []byte) { b[4], b[5] = 0xFF, 0xFF }), true},
		{"NamePoolLength", corrupt(func(b []byte) { b[32]++ }), true},
		{"TruncatedNames", encoded[:len(encoded)-1], true},
		// high byte of the first NameLength
		{"NameOutOfRange", corrupt(func(b []byte) { b[40+31] = 0xFF }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := (&Manifest{}).UnmarshalBinary(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.corrupt && !errors.Is(err, ErrCorrupt) {
				t.Errorf("expected ErrCorrupt, got %v", err)
			}
		})
	}
}
