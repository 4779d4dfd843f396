package h2

import (
	"testing"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/tagtest"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/stretchr/testify/require"
)

// decodeFixture decodes a hand assembled tag and checks that encoding the
// result reproduces it exactly.
func decodeFixture[T tag.Asset](t *testing.T, f *tagtest.Fixture) T {
	t.Helper()

	dec, enc := newCodecs(t)
	got, warn, err := dec.Decode(f.Bytes())
	require.NoError(t, err)
	require.NoError(t, warn)

	data, err := enc.Encode(got)
	require.NoError(t, err)
	require.Equal(t, f.Bytes(), data)

	return got.(T)
}

func TestBitmapFixture(t *testing.T) {
	for _, rev := range BitmapCodec().Revisions {
		t.Run(rev.String(), func(t *testing.T) {
			size := 108
			if rev == format.RevisionH2Retail {
				size = 112
			}

			f := tagtest.New(format.GroupBitmap, BitmapVersion, rev, size)
			f.Int16(0, int16(BitmapTypeSprites)).
				Int16(2, int16(BitmapFormatInterpolatedAlpha)).
				Int16(4, int16(BitmapUsageHeightMapA8L8)).
				Uint16(6, uint16(BitmapFlagDiffusionDithering|BitmapFlagConvertToSigned))
			f.Floats(8, 0.25, 0.5, 12)
			f.Int16(20, int16(SpriteBudget256)).Uint16(22, 7).Uint16(24, 640).Uint16(26, 480)
			f.Data(48, 4)
			f.Floats(68, 1.5, 0.125)
			f.Uint16(76, 9).Int16(78, int16(SpriteUsageDoubleMultiply)).Uint16(80, 4)
			if rev != format.RevisionH2Legacy {
				f.Int16(82, int16(ForceFormatDXT5))
			}
			f.Block(96, 1)
			if rev == format.RevisionH2Retail {
				f.Int8(108, 100).Int8(109, 50).Int8(110, 2).Int8(111, -1)
			}

			f.Append(0xA1, 0xA2, 0xA3, 0xA4)
			bm := f.Elements(1, 64)
			f.Uint32(bm, uint32(format.GroupBitmap)).
				Int16(bm+4, 64).Int16(bm+6, 32).Int8(bm+8, 1).
				Int8(bm+9, int8(BitmapDataMoreFlagDeleteFromCacheFile)).
				Int16(bm+10, int16(BitmapDataTypeCubeMap)).
				Int16(bm+12, int16(BitmapDataFormatDXT5)).
				Uint16(bm+14, uint16(BitmapDataFlagPowerOfTwoDimensions)).
				Int16(bm+16, 32).Int16(bm+18, 16).Int16(bm+20, 6).Int16(bm+22, 2).
				Int32(bm+24, 128).Int32(bm+28, 4096).
				Int32(bm+32, 10).Int32(bm+36, 20).Int32(bm+40, 30).
				Int32(bm+44, 40).Int32(bm+48, 50).Int32(bm+52, 60).
				Int32(bm+56, -1)

			b := decodeFixture[*Bitmap](t, f)
			require.Equal(t, rev, b.Header().Revision)
			require.Equal(t, BitmapTypeSprites, b.Type)
			require.Equal(t, BitmapFormatInterpolatedAlpha, b.Format)
			require.Equal(t, BitmapUsageHeightMapA8L8, b.Usage)
			require.Equal(t, BitmapFlagDiffusionDithering|BitmapFlagConvertToSigned, b.Flags)
			require.Equal(t, float32(0.25), b.DetailFadeFactor)
			require.Equal(t, float32(0.5), b.SharpenAmount)
			require.Equal(t, float32(12), b.BumpHeight)
			require.Equal(t, SpriteBudget256, b.SpriteBudgetSize)
			require.Equal(t, uint16(7), b.SpriteBudgetCount)
			require.Equal(t, uint16(640), b.ColorPlateWidth)
			require.Equal(t, uint16(480), b.ColorPlateHeight)
			require.Equal(t, []byte{0xA1, 0xA2, 0xA3, 0xA4}, b.ProcessedPixelData.Data)
			require.Equal(t, float32(1.5), b.BlurFilterSize)
			require.Equal(t, float32(0.125), b.AlphaBias)
			require.Equal(t, uint16(9), b.MipmapCount)
			require.Equal(t, SpriteUsageDoubleMultiply, b.SpriteUsage)
			require.Equal(t, uint16(4), b.SpriteSpacing)
			require.Empty(t, b.Sequences.Elements)

			switch rev {
			case format.RevisionH2Legacy:
				require.Equal(t, ForceFormatDefault, b.ForceFormat)
			default:
				require.Equal(t, ForceFormatDXT5, b.ForceFormat)
			}
			if rev == format.RevisionH2Retail {
				require.Equal(t, int8(100), b.ColorCompressionQuality)
				require.Equal(t, int8(50), b.AlphaCompressionQuality)
				require.Equal(t, int8(2), b.Overlap)
				require.Equal(t, int8(-1), b.ColorSubsampling)
			} else {
				require.Zero(t, b.ColorCompressionQuality)
				require.Zero(t, b.ColorSubsampling)
			}

			require.Len(t, b.Bitmaps.Elements, 1)
			d := b.Bitmaps.Elements[0]
			require.Equal(t, format.GroupBitmap, d.Signature)
			require.Equal(t, int16(64), d.Width)
			require.Equal(t, int16(32), d.Height)
			require.Equal(t, int8(1), d.Depth)
			require.Equal(t, BitmapDataMoreFlagDeleteFromCacheFile, d.MoreFlags)
			require.Equal(t, BitmapDataTypeCubeMap, d.Type)
			require.Equal(t, BitmapDataFormatDXT5, d.Format)
			require.Equal(t, BitmapDataFlagPowerOfTwoDimensions, d.Flags)
			require.Equal(t, encoding.Point2DInt{X: 32, Y: 16}, d.RegistrationPoint)
			require.Equal(t, int16(6), d.MipmapCount)
			require.Equal(t, int16(2), d.LowDetailMipmaps)
			require.Equal(t, int32(128), d.PixelsOffset)
			require.Equal(t, int32(4096), d.PixelsSize)
			require.Equal(t, [3]int32{10, 20, 30}, d.LODOffsets)
			require.Equal(t, [3]int32{40, 50, 60}, d.LODSizes)
			require.Equal(t, int32(-1), d.OwnerTagIndex)
		})
	}
}

func TestShaderFixture(t *testing.T) {
	const (
		template = `shaders\opaque`
		detail   = `textures\detail`
	)

	for _, rev := range ShaderCodec().Revisions {
		t.Run(rev.String(), func(t *testing.T) {
			f := tagtest.New(format.GroupShader, ShaderVersion, rev, 56)
			f.Ref(0, format.GroupShaderTemplate, len(template)).StringID(16, len("metal"))
			f.Uint16(20, uint16(ShaderFlagSortFirst)).Block(24, 1)
			f.Int16(36, int16(LightmapTypeDullSpecular))
			f.Floats(40, 0.5, 0.25, 0.01, 0.02)

			f.Path(template).Append([]byte("metal")...)
			p := f.Elements(1, 52)
			f.StringID(p, len("base_map")).Int16(p+4, int16(ParameterValue))
			f.Ref(p+8, format.GroupBitmap, len(detail))
			f.Floats(p+24, 0.75, 0.1, 0.2, 0.3)
			f.Block(p+40, 1)
			f.Append([]byte("base_map")...).Path(detail)
			a := f.Elements(1, 36)
			f.Int16(a, int16(AnimationColor)).StringID(a+4, len("time"))
			f.Float32(a+12, 2.5).Data(a+16, 3)
			f.Append([]byte("time")...).Append(0x3F, 0x80, 0x00)

			h := decodeFixture[*Shader](t, f)
			require.Equal(t, section.TagRef{Group: format.GroupShaderTemplate, Index: -1, Path: template}, h.Template)
			require.Equal(t, "metal", h.MaterialName.Name)
			require.Equal(t, ShaderFlagSortFirst, h.Flags)
			require.Equal(t, LightmapTypeDullSpecular, h.LightmapType)
			require.Equal(t, float32(0.5), h.LightmapSpecularBrightness)
			require.Equal(t, float32(0.25), h.LightmapAmbientBias)
			require.Equal(t, float32(0.01), h.AddedDepthBiasOffset)
			require.Equal(t, float32(0.02), h.AddedDepthBiasSlopeScale)

			require.Len(t, h.Parameters.Elements, 1)
			param := h.Parameters.Elements[0]
			require.Equal(t, "base_map", param.Name.Name)
			require.Equal(t, ParameterValue, param.Type)
			require.Equal(t, section.TagRef{Group: format.GroupBitmap, Index: -1, Path: detail}, param.Bitmap)
			require.Equal(t, float32(0.75), param.ConstValue)
			require.Equal(t, encoding.ColorRGB{R: 0.1, G: 0.2, B: 0.3}, param.ConstColor)

			require.Len(t, param.AnimationProperties.Elements, 1)
			prop := param.AnimationProperties.Elements[0]
			require.Equal(t, AnimationColor, prop.Type)
			require.Equal(t, "time", prop.InputName.Name)
			require.Empty(t, prop.RangeName.Name)
			require.Equal(t, float32(2.5), prop.TimePeriod)
			require.Equal(t, []byte{0x3F, 0x80, 0x00}, prop.Function.Data)
		})
	}
}
