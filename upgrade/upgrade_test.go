package upgrade

import (
	"testing"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/h1"
	"github.com/arloliu/halotag/h2"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func newSource(t *testing.T) *h1.Bitmap {
	t.Helper()

	a, err := h1.BitmapCodec().NewAsset(format.RevisionH1)
	require.NoError(t, err)
	b := a.(*h1.Bitmap)

	b.Type = h1.BitmapTypeCubeMaps
	b.Format = h1.BitmapFormatExplicitAlpha
	b.Usage = h1.BitmapUsageHeightMap
	b.Flags = h1.BitmapFlagDisableHeightMapCompression
	b.DetailFadeFactor = 0.25
	b.BumpHeight = 50
	b.SpriteBudgetSize = h1.SpriteBudget128
	b.SpriteUsage = h1.SpriteUsageMultiplyMin
	b.MipmapCount = 4
	b.ProcessedPixelData.Data = []byte{1, 2, 3, 4}
	b.Sequences.Append(h1.BitmapSequence{
		Name:        "faces",
		BitmapCount: 1,
		Sprites: tag.Block[h1.BitmapSprite]{Elements: []h1.BitmapSprite{
			{Right: 1, Bottom: 1, RegistrationPoint: mgl32.Vec2{0.5, 0.5}},
		}},
	})
	b.Bitmaps.Append(h1.BitmapData{
		Signature:   format.GroupBitmap,
		Width:       16,
		Height:      16,
		Depth:       1,
		Type:        h1.BitmapDataTypeCubeMap,
		Format:      h1.BitmapDataFormatDXT3,
		Flags:       h1.BitmapDataFlagCompressed | h1.BitmapDataFlagMakeItActuallyWork,
		MipmapCount: 4,
		PixelsSize:  4,
	})

	return b
}

func TestBitmapUpgrade(t *testing.T) {
	var notes []string
	u, err := New(WithReporter(tag.ReporterFunc(func(_ tag.Severity, message string) {
		notes = append(notes, message)
	})))
	require.NoError(t, err)

	src := newSource(t)
	a, err := u.Upgrade(src)
	require.NoError(t, err)
	dst := a.(*h2.Bitmap)

	header := dst.Header()
	require.Equal(t, format.RevisionH2Retail, header.Revision)
	require.Equal(t, format.GroupBitmap, header.Group)
	require.Equal(t, uint16(h2.BitmapVersion), header.Version)

	require.Equal(t, h2.BitmapTypeCubeMaps, dst.Type)
	require.Equal(t, h2.BitmapFormatExplicitAlpha, dst.Format)
	require.Equal(t, h2.BitmapUsageHeightMap, dst.Usage)
	require.Equal(t, h2.BitmapFlagDisableHeightMapCompression, dst.Flags)
	require.Equal(t, h2.SpriteBudget128, dst.SpriteBudgetSize)
	require.Equal(t, h2.SpriteUsageMultiplyMin, dst.SpriteUsage)
	require.Equal(t, float32(0.25), dst.DetailFadeFactor)
	require.Equal(t, float32(5), dst.BumpHeight)
	require.Equal(t, []byte{1, 2, 3, 4}, dst.ProcessedPixelData.Data)
	require.Len(t, notes, 1)
	require.Contains(t, notes[0], "bump height")

	require.Equal(t, 1, dst.Sequences.Len())
	require.Equal(t, "faces", dst.Sequences.Elements[0].Name)
	require.Equal(t, mgl32.Vec2{0.5, 0.5}, dst.Sequences.Elements[0].Sprites.Elements[0].RegistrationPoint)

	data := dst.Bitmaps.Elements[0]
	require.Equal(t, int8(1), data.Depth)
	require.Equal(t, h2.BitmapDataTypeCubeMap, data.Type)
	require.Equal(t, h2.BitmapDataFormatDXT3, data.Format)
	require.Equal(t, h2.BitmapDataFlagCompressed, data.Flags)
	require.Equal(t, int32(-1), data.OwnerTagIndex)
}

func TestBitmapUpgradeDoesNotAliasSource(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	src := newSource(t)
	dst, err := u.Bitmap(src)
	require.NoError(t, err)

	dst.ProcessedPixelData.Data[0] = 0xFF
	dst.Sequences.Elements[0].Name = "changed"
	require.Equal(t, byte(1), src.ProcessedPixelData.Data[0])
	require.Equal(t, "faces", src.Sequences.Elements[0].Name)
	require.Equal(t, float32(50), src.BumpHeight)
}

func TestBitmapUpgradeIsDeterministic(t *testing.T) {
	u, err := New(WithTarget(format.RevisionH2Vista))
	require.NoError(t, err)

	r := tag.NewRegistry()
	require.NoError(t, h2.Register(r))
	enc, err := tag.NewEncoder(r)
	require.NoError(t, err)

	first, err := u.Bitmap(newSource(t))
	require.NoError(t, err)
	second, err := u.Bitmap(newSource(t))
	require.NoError(t, err)
	require.Equal(t, first, second)

	a, err := enc.Encode(first)
	require.NoError(t, err)
	b, err := enc.Encode(second)
	require.NoError(t, err)
	require.Equal(t, a, b)

	header, err := section.ParseTagHeader(a)
	require.NoError(t, err)
	require.Equal(t, format.RevisionH2Vista, header.Revision)
}

func TestBitmapUpgradeUnmapped(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(b *h1.Bitmap)
		field  string
		value  int64
	}{
		{
			name:   "unused data format",
			mutate: func(b *h1.Bitmap) { b.Bitmaps.Elements[0].Format = h1.BitmapDataFormatUnused4 },
			field:  "bitmap data format",
			value:  12,
		},
		{
			name:   "unknown data flag",
			mutate: func(b *h1.Bitmap) { b.Bitmaps.Elements[0].Flags |= 1 << 9 },
			field:  "bitmap data flags",
			value:  1 << 9,
		},
		{
			name:   "unknown bitmap flag",
			mutate: func(b *h1.Bitmap) { b.Flags |= 1 << 4 },
			field:  "bitmap flags",
			value:  1 << 4,
		},
		{
			name:   "out of range usage",
			mutate: func(b *h1.Bitmap) { b.Usage = h1.BitmapUsage(6) },
			field:  "bitmap usage",
			value:  6,
		},
		{
			name:   "depth too large",
			mutate: func(b *h1.Bitmap) { b.Bitmaps.Elements[0].Depth = 300 },
			field:  "bitmap depth",
			value:  300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newSource(t)
			tt.mutate(src)

			dst, err := u.Bitmap(src)
			require.Nil(t, dst)

			var upErr errs.UpgradeError
			require.ErrorAs(t, err, &upErr)
			require.Equal(t, tt.field, upErr.Field)
			require.Equal(t, tt.value, upErr.Value)
		})
	}
}

func TestBumpHeight(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{0, 0},
		{0.5, 0.5},
		{5, 5},
		{50, 5},
		{-50, -5},
		{100, 1},
		{120, 12},
		{2.5, 2.5},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, BumpHeight(tt.in), "BumpHeight(%g)", tt.in)
	}
}

func TestUpgradeErrors(t *testing.T) {
	u, err := New()
	require.NoError(t, err)

	_, err = u.Upgrade(nil)
	require.ErrorIs(t, err, errs.ErrNilAsset)

	sky, err := h1.SkyCodec().NewAsset(format.RevisionH1)
	require.NoError(t, err)
	_, err = u.Upgrade(sky)
	require.ErrorIs(t, err, errs.ErrUnsupportedGroup)

	h2Bitmap, err := h2.BitmapCodec().NewAsset(format.RevisionH2Retail)
	require.NoError(t, err)
	_, err = u.Upgrade(h2Bitmap)
	require.ErrorIs(t, err, errs.ErrUnsupportedRevision)

	_, err = New(WithTarget(format.RevisionH1))
	require.ErrorIs(t, err, errs.ErrUnsupportedRevision)
	_, err = New(WithReporter(nil))
	require.Error(t, err)
}

func TestBitmapFunction(t *testing.T) {
	src := newSource(t)

	got, err := Bitmap(src, format.RevisionH2Legacy)
	require.NoError(t, err)
	require.Equal(t, format.RevisionH2Legacy, got.Header().Revision)

	_, err = Bitmap(src, format.RevisionH1)
	require.ErrorIs(t, err, errs.ErrUnsupportedRevision)
}
