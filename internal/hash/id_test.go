package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestNormalizePath(t *testing.T) {
	require.Equal(t, `levels\test\bloodgulch`, NormalizePath("Levels/Test/BloodGulch"))
	require.Equal(t, `weapons\pistol`, NormalizePath(`weapons\pistol`))
}

func TestPathID(t *testing.T) {
	require.Equal(t, PathID(`levels\test`, "bitm"), PathID("Levels/Test", "bitm"))
	require.NotEqual(t, PathID(`levels\test`, "bitm"), PathID(`levels\test`, "snd!"))
	require.Equal(t, ID(`levels\test.bitm`), PathID(`levels\test`, "bitm"))
}

func BenchmarkPathID(b *testing.B) {
	for b.Loop() {
		PathID(`levels\test\bloodgulch\bitmaps\ground`, "bitm")
	}
}
