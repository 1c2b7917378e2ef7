package cipher

import (
	"bytes"
	"testing"
)

func TestTables(t *testing.T) {
	for name, table := range Tables() {
		if err := table.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}

	t.Run("InvalidLength", func(t *testing.T) {
		if err := Table("short").Validate(); err == nil {
			t.Error("expected error for short table")
		}
	})

	t.Run("KnownBytes", func(t *testing.T) {
		tests := []struct {
			table Table
			index int
			want  byte
		}{
			{DC70, 0, 0x28},
			{DC70, 255, 0x97},
			{DD70, 0, 0x0e},
			{DC70, 256, 0x28},
		}
		for _, tt := range tests {
			if got := tt.table.At(tt.index); got != tt.want {
				t.Errorf("At(%d): got %#02x, want %#02x", tt.index, got, tt.want)
			}
		}
	})
}

func TestXOR(t *testing.T) {
	t.Run("Involution", func(t *testing.T) {
		original := make([]byte, 1000)
		for i := range original {
			original[i] = byte(i * 7)
		}

		for _, start := range []int{0, 13, 59, 173, 255, 256, 1000} {
			buf := bytes.Clone(original)
			XOR(buf, DD70, start)
			if bytes.Equal(buf, original) {
				t.Fatalf("start %d: buffer unchanged", start)
			}
			XOR(buf, DD70, start)
			if !bytes.Equal(buf, original) {
				t.Errorf("start %d: round trip mismatch", start)
			}
		}
	})

	t.Run("Empty", func(t *testing.T) {
		XOR(nil, DF70, 173)
		XOR([]byte{}, DF70, 173)
	})

	t.Run("RotatingIndex", func(t *testing.T) {
		buf := make([]byte, 3)
		XOR(buf, DC70, 254)
		want := []byte{DC70[254], DC70[255], DC70[0]}
		if !bytes.Equal(buf, want) {
			t.Errorf("got %x, want %x", buf, want)
		}
	})

	t.Run("ApplyCopies", func(t *testing.T) {
		src := []byte("scene data")
		orig := bytes.Clone(src)
		out := Apply(src, DE70, 96)
		if !bytes.Equal(src, orig) {
			t.Error("Apply modified its input")
		}
		if bytes.Equal(out, src) {
			t.Error("Apply returned untransformed data")
		}
	})
}

func BenchmarkXOR(b *testing.B) {
	buf := make([]byte, 1024*1024)
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		XOR(buf, DD70, 13)
	}
}
