package upgrade

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/arloliu/halotag/errs"
	"github.com/arloliu/halotag/h1"
	"github.com/arloliu/halotag/h2"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
)

var (
	bitmapTypes = map[h1.BitmapType]h2.BitmapType{
		h1.BitmapType2DTextures:       h2.BitmapType2DTextures,
		h1.BitmapType3DTextures:       h2.BitmapType3DTextures,
		h1.BitmapTypeCubeMaps:         h2.BitmapTypeCubeMaps,
		h1.BitmapTypeSprites:          h2.BitmapTypeSprites,
		h1.BitmapTypeInterfaceBitmaps: h2.BitmapTypeInterfaceBitmaps,
	}

	bitmapFormats = map[h1.BitmapFormat]h2.BitmapFormat{
		h1.BitmapFormatColorKeyTransparency: h2.BitmapFormatColorKeyTransparency,
		h1.BitmapFormatExplicitAlpha:        h2.BitmapFormatExplicitAlpha,
		h1.BitmapFormatInterpolatedAlpha:    h2.BitmapFormatInterpolatedAlpha,
		h1.BitmapFormat16BitColor:           h2.BitmapFormat16BitColor,
		h1.BitmapFormat32BitColor:           h2.BitmapFormat32BitColor,
		h1.BitmapFormatMonochrome:           h2.BitmapFormatMonochrome,
	}

	bitmapUsages = map[h1.BitmapUsage]h2.BitmapUsage{
		h1.BitmapUsageAlphaBlend: h2.BitmapUsageAlphaBlend,
		h1.BitmapUsageDefault:    h2.BitmapUsageDefault,
		h1.BitmapUsageHeightMap:  h2.BitmapUsageHeightMap,
		h1.BitmapUsageDetailMap:  h2.BitmapUsageDetailMap,
		h1.BitmapUsageLightMap:   h2.BitmapUsageLightMap,
		h1.BitmapUsageVectorMap:  h2.BitmapUsageVectorMap,
	}

	bitmapFlags = map[h1.BitmapFlags]h2.BitmapFlags{
		h1.BitmapFlagDiffusionDithering:          h2.BitmapFlagDiffusionDithering,
		h1.BitmapFlagDisableHeightMapCompression: h2.BitmapFlagDisableHeightMapCompression,
		h1.BitmapFlagUniformSpriteSequences:      h2.BitmapFlagUniformSpriteSequences,
		h1.BitmapFlagFilthySpriteBugFix:          h2.BitmapFlagFilthySpriteBugFix,
	}

	spriteBudgetSizes = map[h1.SpriteBudgetSize]h2.SpriteBudgetSize{
		h1.SpriteBudget32:  h2.SpriteBudget32,
		h1.SpriteBudget64:  h2.SpriteBudget64,
		h1.SpriteBudget128: h2.SpriteBudget128,
		h1.SpriteBudget256: h2.SpriteBudget256,
		h1.SpriteBudget512: h2.SpriteBudget512,
	}

	spriteUsages = map[h1.SpriteUsage]h2.SpriteUsage{
		h1.SpriteUsageBlendAddSubtractMax: h2.SpriteUsageBlendAddSubtractMax,
		h1.SpriteUsageMultiplyMin:         h2.SpriteUsageMultiplyMin,
		h1.SpriteUsageDoubleMultiply:      h2.SpriteUsageDoubleMultiply,
	}

	dataTypes = map[h1.BitmapDataType]h2.BitmapDataType{
		h1.BitmapDataType2DTexture: h2.BitmapDataType2DTexture,
		h1.BitmapDataType3DTexture: h2.BitmapDataType3DTexture,
		h1.BitmapDataTypeCubeMap:   h2.BitmapDataTypeCubeMap,
		h1.BitmapDataTypeWhite:     h2.BitmapDataTypeWhite,
	}

	// The unused H1 slots have no H2 counterpart and are rejected.
	dataFormats = map[h1.BitmapDataFormat]h2.BitmapDataFormat{
		h1.BitmapDataFormatA8:       h2.BitmapDataFormatA8,
		h1.BitmapDataFormatY8:       h2.BitmapDataFormatY8,
		h1.BitmapDataFormatAY8:      h2.BitmapDataFormatAY8,
		h1.BitmapDataFormatA8Y8:     h2.BitmapDataFormatA8Y8,
		h1.BitmapDataFormatR5G6B5:   h2.BitmapDataFormatR5G6B5,
		h1.BitmapDataFormatA1R5G5B5: h2.BitmapDataFormatA1R5G5B5,
		h1.BitmapDataFormatA4R4G4B4: h2.BitmapDataFormatA4R4G4B4,
		h1.BitmapDataFormatX8R8G8B8: h2.BitmapDataFormatX8R8G8B8,
		h1.BitmapDataFormatA8R8G8B8: h2.BitmapDataFormatA8R8G8B8,
		h1.BitmapDataFormatDXT1:     h2.BitmapDataFormatDXT1,
		h1.BitmapDataFormatDXT3:     h2.BitmapDataFormatDXT3,
		h1.BitmapDataFormatDXT5:     h2.BitmapDataFormatDXT5,
		h1.BitmapDataFormatP8Bump:   h2.BitmapDataFormatP8Bump,
	}

	// Zero means the bit is known and dropped.
	dataFlags = map[h1.BitmapDataFlags]h2.BitmapDataFlags{
		h1.BitmapDataFlagPowerOfTwoDimensions: h2.BitmapDataFlagPowerOfTwoDimensions,
		h1.BitmapDataFlagCompressed:           h2.BitmapDataFlagCompressed,
		h1.BitmapDataFlagPalettized:           h2.BitmapDataFlagPalettized,
		h1.BitmapDataFlagSwizzled:             h2.BitmapDataFlagSwizzled,
		h1.BitmapDataFlagLinear:               h2.BitmapDataFlagLinear,
		h1.BitmapDataFlagV16U16:               h2.BitmapDataFlagV16U16,
		h1.BitmapDataFlagOrphan:               0,
		h1.BitmapDataFlagMakeItActuallyWork:   0,
	}
)

func remap[S ~int16, D any](field string, table map[S]D, v S) (D, error) {
	d, ok := table[v]
	if !ok {
		var zero D
		return zero, errs.UpgradeError{Field: field, Value: int64(v)}
	}

	return d, nil
}

func remapFlags[S ~uint16, D ~uint16](field string, table map[S]D, v S) (D, error) {
	var out D
	for bit := S(1); bit != 0; bit <<= 1 {
		if v&bit == 0 {
			continue
		}
		d, ok := table[bit]
		if !ok {
			return 0, errs.UpgradeError{Field: field, Value: int64(bit)}
		}
		out |= d
	}

	return out, nil
}

// BumpHeight converts an H1 bump height to H2 units by dividing it by ten
// once per trailing zero in the digits of its shortest decimal form, so 50
// becomes 5 and 0.5 is kept.
//
// This is a heuristic. It assumes H1 heights were authored as scaled whole
// numbers and misreads any value that merely happens to end in zero.
func BumpHeight(v float32) float32 {
	if v == 0 || math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return v
	}

	digits := strconv.FormatFloat(math.Abs(float64(v)), 'f', -1, 32)
	digits = strings.ReplaceAll(digits, ".", "")
	zeros := len(digits) - len(strings.TrimRight(digits, "0"))

	return float32(float64(v) / math.Pow10(zeros))
}

func cloneData(r section.RawData) section.RawData {
	return section.RawData{Data: bytes.Clone(r.Data)}
}

// Bitmap converts an H1 bitmap into an H2 bitmap of the upgrader's target
// revision.
func (u *Upgrader) Bitmap(src *h1.Bitmap) (*h2.Bitmap, error) {
	if src == nil {
		return nil, errs.ErrNilAsset
	}

	a, err := h2.BitmapCodec().NewAsset(u.target)
	if err != nil {
		return nil, err
	}
	dst := a.(*h2.Bitmap)

	if dst.Type, err = remap("bitmap type", bitmapTypes, src.Type); err != nil {
		return nil, err
	}
	if dst.Format, err = remap("bitmap format", bitmapFormats, src.Format); err != nil {
		return nil, err
	}
	if dst.Usage, err = remap("bitmap usage", bitmapUsages, src.Usage); err != nil {
		return nil, err
	}
	if dst.Flags, err = remapFlags("bitmap flags", bitmapFlags, src.Flags); err != nil {
		return nil, err
	}
	if dst.SpriteBudgetSize, err = remap("sprite budget size", spriteBudgetSizes, src.SpriteBudgetSize); err != nil {
		return nil, err
	}
	if dst.SpriteUsage, err = remap("sprite usage", spriteUsages, src.SpriteUsage); err != nil {
		return nil, err
	}

	dst.DetailFadeFactor = src.DetailFadeFactor
	dst.SharpenAmount = src.SharpenAmount
	dst.BumpHeight = BumpHeight(src.BumpHeight)
	if dst.BumpHeight != src.BumpHeight {
		u.reporter.Report(tag.SeverityInfo,
			fmt.Sprintf("bump height rescaled from %g to %g", src.BumpHeight, dst.BumpHeight))
	}
	dst.SpriteBudgetCount = src.SpriteBudgetCount
	dst.ColorPlateWidth = src.ColorPlateWidth
	dst.ColorPlateHeight = src.ColorPlateHeight
	dst.CompressedColorPlate = cloneData(src.CompressedColorPlate)
	dst.ProcessedPixelData = cloneData(src.ProcessedPixelData)
	dst.BlurFilterSize = src.BlurFilterSize
	dst.AlphaBias = src.AlphaBias
	dst.MipmapCount = src.MipmapCount
	dst.SpriteSpacing = src.SpriteSpacing

	for _, seq := range src.Sequences.Elements {
		dst.Sequences.Append(upgradeSequence(seq))
	}

	for i, data := range src.Bitmaps.Elements {
		d, err := upgradeBitmapData(data)
		if err != nil {
			return nil, errs.ElementError{Block: "bitmaps", Index: i, Cause: err}
		}
		dst.Bitmaps.Append(d)
	}

	return dst, nil
}

func upgradeSequence(src h1.BitmapSequence) h2.BitmapSequence {
	dst := h2.BitmapSequence{
		Name:             src.Name,
		FirstBitmapIndex: src.FirstBitmapIndex,
		BitmapCount:      src.BitmapCount,
	}
	for _, sp := range src.Sprites.Elements {
		dst.Sprites.Append(h2.BitmapSprite{
			BitmapIndex:       sp.BitmapIndex,
			Left:              sp.Left,
			Right:             sp.Right,
			Top:               sp.Top,
			Bottom:            sp.Bottom,
			RegistrationPoint: sp.RegistrationPoint,
		})
	}

	return dst
}

func upgradeBitmapData(src h1.BitmapData) (h2.BitmapData, error) {
	var err error
	dst := h2.BitmapData{
		Signature:         src.Signature,
		Width:             src.Width,
		Height:            src.Height,
		RegistrationPoint: src.RegistrationPoint,
		MipmapCount:       src.MipmapCount,
		PixelsOffset:      src.PixelsOffset,
		PixelsSize:        src.PixelsSize,
		OwnerTagIndex:     -1,
	}

	if src.Depth < math.MinInt8 || src.Depth > math.MaxInt8 {
		return dst, errs.UpgradeError{Field: "bitmap depth", Value: int64(src.Depth)}
	}
	dst.Depth = int8(src.Depth)

	if dst.Type, err = remap("bitmap data type", dataTypes, src.Type); err != nil {
		return dst, err
	}
	if dst.Format, err = remap("bitmap data format", dataFormats, src.Format); err != nil {
		return dst, err
	}
	if dst.Flags, err = remapFlags("bitmap data flags", dataFlags, src.Flags); err != nil {
		return dst, err
	}

	return dst, nil
}
