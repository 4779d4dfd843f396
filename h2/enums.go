package h2

import "github.com/arloliu/halotag/format"

// BitmapType is the kind of bitmap a bitmap tag is processed into.
type BitmapType int16

const (
	BitmapType2DTextures BitmapType = iota
	BitmapType3DTextures
	BitmapTypeCubeMaps
	BitmapTypeSprites
	BitmapTypeInterfaceBitmaps
)

var bitmapTypeNames = []string{"2d textures", "3d textures", "cube maps", "sprites", "interface bitmaps"}

func (v BitmapType) Valid() bool    { return format.EnumValid(bitmapTypeNames, v) }
func (v BitmapType) String() string { return format.EnumName(bitmapTypeNames, "BitmapType", v) }

// BitmapFormat is the processing format requested for a bitmap tag.
type BitmapFormat int16

const (
	BitmapFormatColorKeyTransparency BitmapFormat = iota
	BitmapFormatExplicitAlpha
	BitmapFormatInterpolatedAlpha
	BitmapFormat16BitColor
	BitmapFormat32BitColor
	BitmapFormatMonochrome
)

var bitmapFormatNames = []string{
	"compressed with color-key transparency", "compressed with explicit alpha",
	"compressed with interpolated alpha", "16-bit color", "32-bit color", "monochrome",
}

func (v BitmapFormat) Valid() bool    { return format.EnumValid(bitmapFormatNames, v) }
func (v BitmapFormat) String() string { return format.EnumName(bitmapFormatNames, "BitmapFormat", v) }

// BitmapUsage selects how the bitmap is processed.
type BitmapUsage int16

const (
	BitmapUsageAlphaBlend BitmapUsage = iota
	BitmapUsageDefault
	BitmapUsageHeightMap
	BitmapUsageDetailMap
	BitmapUsageLightMap
	BitmapUsageVectorMap
	BitmapUsageHeightMapBlue255
	BitmapUsageEMBM
	BitmapUsageHeightMapA8L8
	BitmapUsageHeightMapG8B8
	BitmapUsageHeightMapG8B8WithAlpha
)

var bitmapUsageNames = []string{
	"alpha blend", "default", "height map", "detail map", "light map", "vector map",
	"height map blue 255", "embm", "height map a8l8", "height map g8b8", "height map g8b8 w/alpha",
}

func (v BitmapUsage) Valid() bool    { return format.EnumValid(bitmapUsageNames, v) }
func (v BitmapUsage) String() string { return format.EnumName(bitmapUsageNames, "BitmapUsage", v) }

// BitmapFlags are the processing flags of a bitmap tag.
type BitmapFlags uint16

const (
	BitmapFlagDiffusionDithering BitmapFlags = 1 << iota
	BitmapFlagDisableHeightMapCompression
	BitmapFlagUniformSpriteSequences
	BitmapFlagFilthySpriteBugFix
	BitmapFlagUseSharpBumpFilter
	BitmapFlagUnused
	BitmapFlagUseClampedMirroredBumpFilter
	BitmapFlagInvertDetailFade
	BitmapFlagSwapXYVectorComponents
	BitmapFlagConvertFromSigned
	BitmapFlagConvertToSigned
	BitmapFlagImportMipmapChains
	BitmapFlagIntentionallyTrueColor
)

// SpriteBudgetSize is the edge length of a sprite sheet.
type SpriteBudgetSize int16

const (
	SpriteBudget32 SpriteBudgetSize = iota
	SpriteBudget64
	SpriteBudget128
	SpriteBudget256
	SpriteBudget512
	SpriteBudget1024
)

var spriteBudgetSizeNames = []string{"32x32", "64x64", "128x128", "256x256", "512x512", "1024x1024"}

func (v SpriteBudgetSize) Valid() bool { return format.EnumValid(spriteBudgetSizeNames, v) }
func (v SpriteBudgetSize) String() string {
	return format.EnumName(spriteBudgetSizeNames, "SpriteBudgetSize", v)
}

// SpriteUsage is the blend mode sprites are packed for.
type SpriteUsage int16

const (
	SpriteUsageBlendAddSubtractMax SpriteUsage = iota
	SpriteUsageMultiplyMin
	SpriteUsageDoubleMultiply
)

var spriteUsageNames = []string{"blend/add/subtract/max", "multiply/min", "double multiply"}

func (v SpriteUsage) Valid() bool    { return format.EnumValid(spriteUsageNames, v) }
func (v SpriteUsage) String() string { return format.EnumName(spriteUsageNames, "SpriteUsage", v) }

// ForceFormat overrides the pixel format picked by the bitmap processor.
type ForceFormat int16

const (
	ForceFormatDefault ForceFormat = iota
	ForceFormatG8B8
	ForceFormatDXT1
	ForceFormatDXT3
	ForceFormatDXT5
	ForceFormatAlphaLuminance8
	ForceFormatA4R4G4B4
)

var forceFormatNames = []string{
	"use default (defined by usage)", "always force G8B8", "always force DXT1", "always force DXT3",
	"always force DXT5", "always force alpha-luminance8", "always force A4R4G4B4",
}

func (v ForceFormat) Valid() bool    { return format.EnumValid(forceFormatNames, v) }
func (v ForceFormat) String() string { return format.EnumName(forceFormatNames, "ForceFormat", v) }

// BitmapDataType is the texture type of one processed bitmap.
type BitmapDataType int16

const (
	BitmapDataType2DTexture BitmapDataType = iota
	BitmapDataType3DTexture
	BitmapDataTypeCubeMap
	BitmapDataTypeWhite
)

var bitmapDataTypeNames = []string{"2d texture", "3d texture", "cube map", "white"}

func (v BitmapDataType) Valid() bool { return format.EnumValid(bitmapDataTypeNames, v) }
func (v BitmapDataType) String() string {
	return format.EnumName(bitmapDataTypeNames, "BitmapDataType", v)
}

// BitmapDataFormat is the pixel format of one processed bitmap. The first
// eighteen values share their meaning with H1.
type BitmapDataFormat int16

const (
	BitmapDataFormatA8 BitmapDataFormat = iota
	BitmapDataFormatY8
	BitmapDataFormatAY8
	BitmapDataFormatA8Y8
	BitmapDataFormatUnused1
	BitmapDataFormatUnused2
	BitmapDataFormatR5G6B5
	BitmapDataFormatUnused3
	BitmapDataFormatA1R5G5B5
	BitmapDataFormatA4R4G4B4
	BitmapDataFormatX8R8G8B8
	BitmapDataFormatA8R8G8B8
	BitmapDataFormatUnused4
	BitmapDataFormatUnused5
	BitmapDataFormatDXT1
	BitmapDataFormatDXT3
	BitmapDataFormatDXT5
	BitmapDataFormatP8Bump
	BitmapDataFormatP8
	BitmapDataFormatARGBFP32
	BitmapDataFormatRGBFP32
	BitmapDataFormatRGBFP16
	BitmapDataFormatV8U8
	BitmapDataFormatG8B8
)

var bitmapDataFormatNames = []string{
	"a8", "y8", "ay8", "a8y8", "unused1", "unused2", "r5g6b5", "unused3", "a1r5g5b5",
	"a4r4g4b4", "x8r8g8b8", "a8r8g8b8", "unused4", "unused5", "dxt1", "dxt3", "dxt5", "p8 bump",
	"p8", "argbfp32", "rgbfp32", "rgbfp16", "v8u8", "g8b8",
}

func (v BitmapDataFormat) Valid() bool { return format.EnumValid(bitmapDataFormatNames, v) }
func (v BitmapDataFormat) String() string {
	return format.EnumName(bitmapDataFormatNames, "BitmapDataFormat", v)
}

// BitmapDataFlags describe the storage of one processed bitmap.
type BitmapDataFlags uint16

const (
	BitmapDataFlagPowerOfTwoDimensions BitmapDataFlags = 1 << iota
	BitmapDataFlagCompressed
	BitmapDataFlagPalettized
	BitmapDataFlagSwizzled
	BitmapDataFlagLinear
	BitmapDataFlagV16U16
	BitmapDataFlagMipmapDebugLevel
	BitmapDataFlagPreferStutter
)

// BitmapDataMoreFlags are cache bookkeeping flags of one processed bitmap.
type BitmapDataMoreFlags uint8

const (
	BitmapDataMoreFlagDeleteFromCacheFile BitmapDataMoreFlags = 1 << iota
	BitmapDataMoreFlagCreateAttempted
)

// ShaderFlags are the flags of a shader.
type ShaderFlags uint16

const (
	ShaderFlagWater ShaderFlags = 1 << iota
	ShaderFlagSortFirst
	ShaderFlagNoActiveCamo
)

// LightmapType is how a shader receives lightmap lighting.
type LightmapType int16

const (
	LightmapTypeDiffuse LightmapType = iota
	LightmapTypeDefaultSpecular
	LightmapTypeDullSpecular
	LightmapTypeShinySpecular
)

var lightmapTypeNames = []string{"diffuse", "default specular", "dull specular", "shiny specular"}

func (v LightmapType) Valid() bool    { return format.EnumValid(lightmapTypeNames, v) }
func (v LightmapType) String() string { return format.EnumName(lightmapTypeNames, "LightmapType", v) }

// ParameterType is the value kind of a shader parameter.
type ParameterType int16

const (
	ParameterBitmap ParameterType = iota
	ParameterValue
	ParameterColor
	ParameterSwitch
)

var parameterTypeNames = []string{"bitmap", "value", "color", "switch"}

func (v ParameterType) Valid() bool    { return format.EnumValid(parameterTypeNames, v) }
func (v ParameterType) String() string { return format.EnumName(parameterTypeNames, "ParameterType", v) }

// AnimationPropertyType is the shader property driven by an animation.
type AnimationPropertyType int16

const (
	AnimationBitmapScaleUniform AnimationPropertyType = iota
	AnimationBitmapScaleX
	AnimationBitmapScaleY
	AnimationBitmapScaleZ
	AnimationBitmapTranslationX
	AnimationBitmapTranslationY
	AnimationBitmapTranslationZ
	AnimationBitmapRotationAngle
	AnimationBitmapRotationAxisX
	AnimationBitmapRotationAxisY
	AnimationBitmapRotationAxisZ
	AnimationValue
	AnimationColor
	AnimationBitmapIndex
)

var animationPropertyTypeNames = []string{
	"bitmap scale uniform", "bitmap scale x", "bitmap scale y", "bitmap scale z",
	"bitmap translation x", "bitmap translation y", "bitmap translation z", "bitmap rotation angle",
	"bitmap rotation axis x", "bitmap rotation axis y", "bitmap rotation axis z", "value", "color",
	"bitmap index",
}

func (v AnimationPropertyType) Valid() bool { return format.EnumValid(animationPropertyTypeNames, v) }
func (v AnimationPropertyType) String() string {
	return format.EnumName(animationPropertyTypeNames, "AnimationPropertyType", v)
}
