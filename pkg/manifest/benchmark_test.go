package manifest

import (
	"testing"
)

func BenchmarkManifest(b *testing.B) {
	data, m := testPack(b)
	man := FromMap(m, data)
	encoded, err := man.MarshalBinary()
	if err != nil {
		b.Fatal(err)
	}

	b.Run("FromMap", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			FromMap(m, data)
		}
	})

	b.Run("Marshal", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := man.MarshalBinary(); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("Unmarshal", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if err := (&Manifest{}).UnmarshalBinary(encoded); err != nil {
				b.Fatal(err)
			}
		}
	})
}
