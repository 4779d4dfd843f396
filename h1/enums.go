package h1

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
)

var bitmapUsageNames = []string{"alpha blend", "default", "height map", "detail map", "light map", "vector map"}

func (v BitmapUsage) Valid() bool    { return format.EnumValid(bitmapUsageNames, v) }
func (v BitmapUsage) String() string { return format.EnumName(bitmapUsageNames, "BitmapUsage", v) }

// BitmapFlags are the processing flags of a bitmap tag.
type BitmapFlags uint16

const (
	BitmapFlagDiffusionDithering BitmapFlags = 1 << iota
	BitmapFlagDisableHeightMapCompression
	BitmapFlagUniformSpriteSequences
	BitmapFlagFilthySpriteBugFix
)

// SpriteBudgetSize is the edge length of a sprite sheet.
type SpriteBudgetSize int16

const (
	SpriteBudget32 SpriteBudgetSize = iota
	SpriteBudget64
	SpriteBudget128
	SpriteBudget256
	SpriteBudget512
)

var spriteBudgetSizeNames = []string{"32x32", "64x64", "128x128", "256x256", "512x512"}

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

// BitmapDataFormat is the pixel format of one processed bitmap. The unused
// slots are part of the wire vocabulary but never produced.
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
)

var bitmapDataFormatNames = []string{
	"a8", "y8", "ay8", "a8y8", "unused1", "unused2", "r5g6b5", "unused3", "a1r5g5b5",
	"a4r4g4b4", "x8r8g8b8", "a8r8g8b8", "unused4", "unused5", "dxt1", "dxt3", "dxt5", "p8 bump",
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
	BitmapDataFlagOrphan
	BitmapDataFlagMakeItActuallyWork
)

// SoundClass is the mixing class of a sound.
type SoundClass int16

var soundClassNames = []string{
	"projectile impact", "projectile detonation", "unused", "unused1", "weapon fire",
	"weapon ready", "weapon reload", "weapon empty", "weapon charge", "weapon overheat",
	"weapon idle", "unused2", "unused3", "object impacts", "particle impacts",
	"slow particle impacts", "unused4", "unused5", "unit footsteps", "unit dialog", "unused6",
	"unused7", "vehicle collision", "vehicle engine", "unused8", "unused9", "device door",
	"device force field", "device machinery", "device nature", "device computers", "unused10",
	"music", "ambient nature", "ambient machinery", "ambient computers", "unused11", "unused12",
	"unused13", "first person damage", "unused14", "unused15", "unused16", "unused17",
	"scripted dialog player", "scripted effect", "scripted dialog other",
	"scripted dialog force unspatialized", "unused18", "unused19", "game event",
}

const (
	SoundClassProjectileImpact SoundClass = 0
	SoundClassWeaponFire       SoundClass = 4
	SoundClassUnitDialog       SoundClass = 19
	SoundClassMusic            SoundClass = 32
	SoundClassAmbientNature    SoundClass = 33
	SoundClassGameEvent        SoundClass = 50
)

func (v SoundClass) Valid() bool    { return format.EnumValid(soundClassNames, v) }
func (v SoundClass) String() string { return format.EnumName(soundClassNames, "SoundClass", v) }

// SampleRate is the sample rate of a sound.
type SampleRate int16

const (
	SampleRate22kHz SampleRate = iota
	SampleRate44kHz
)

var sampleRateNames = []string{"22kHz", "44kHz"}

func (v SampleRate) Valid() bool    { return format.EnumValid(sampleRateNames, v) }
func (v SampleRate) String() string { return format.EnumName(sampleRateNames, "SampleRate", v) }

// SoundEncoding is the channel layout of a sound.
type SoundEncoding int16

const (
	SoundEncodingMono SoundEncoding = iota
	SoundEncodingStereo
)

var soundEncodingNames = []string{"mono", "stereo"}

func (v SoundEncoding) Valid() bool    { return format.EnumValid(soundEncodingNames, v) }
func (v SoundEncoding) String() string { return format.EnumName(soundEncodingNames, "SoundEncoding", v) }

// FrictionType is the friction model of a physics mass point.
type FrictionType int16

const (
	FrictionPoint FrictionType = iota
	FrictionForward
	FrictionLeft
	FrictionUp
)

var frictionTypeNames = []string{"point", "forward", "left", "up"}

func (v FrictionType) Valid() bool    { return format.EnumValid(frictionTypeNames, v) }
func (v FrictionType) String() string { return format.EnumName(frictionTypeNames, "FrictionType", v) }

// ObjectOutput selects one of the A, B, C or D outputs of an object.
type ObjectOutput int16

const (
	ObjectOutputNone ObjectOutput = iota
	ObjectOutputA
	ObjectOutputB
	ObjectOutputC
	ObjectOutputD
)

var objectOutputNames = []string{"none", "A out", "B out", "C out", "D out"}

func (v ObjectOutput) Valid() bool    { return format.EnumValid(objectOutputNames, v) }
func (v ObjectOutput) String() string { return format.EnumName(objectOutputNames, "ObjectOutput", v) }

// ChangeColor selects one of the four change colors of an object.
type ChangeColor int16

const (
	ChangeColorNone ChangeColor = iota
	ChangeColorA
	ChangeColorB
	ChangeColorC
	ChangeColorD
)

var changeColorNames = []string{"none", "A", "B", "C", "D"}

func (v ChangeColor) Valid() bool    { return format.EnumValid(changeColorNames, v) }
func (v ChangeColor) String() string { return format.EnumName(changeColorNames, "ChangeColor", v) }

// MapTo is the transfer curve applied to a function output.
type MapTo int16

const (
	MapToLinear MapTo = iota
	MapToEarly
	MapToVeryEarly
	MapToLate
	MapToVeryLate
	MapToCosine
)

var mapToNames = []string{"linear", "early", "very early", "late", "very late", "cosine"}

func (v MapTo) Valid() bool    { return format.EnumValid(mapToNames, v) }
func (v MapTo) String() string { return format.EnumName(mapToNames, "MapTo", v) }

// BoundsMode is how a function output is fitted to its bounds.
type BoundsMode int16

const (
	BoundsModeClip BoundsMode = iota
	BoundsModeClipAndNormalize
	BoundsModeScaleToFit
)

var boundsModeNames = []string{"clip", "clip and normalize", "scale to fit"}

func (v BoundsMode) Valid() bool    { return format.EnumValid(boundsModeNames, v) }
func (v BoundsMode) String() string { return format.EnumName(boundsModeNames, "BoundsMode", v) }

// DeviceFunction selects the device state that drives a device input.
type DeviceFunction int16

const (
	DeviceFunctionNone DeviceFunction = iota
	DeviceFunctionPower
	DeviceFunctionChangeInPower
	DeviceFunctionPosition
	DeviceFunctionChangeInPosition
	DeviceFunctionLocked
	DeviceFunctionDelay
)

var deviceFunctionNames = []string{
	"none", "power", "change in power", "position", "change in position", "locked", "delay",
}

func (v DeviceFunction) Valid() bool { return format.EnumValid(deviceFunctionNames, v) }
func (v DeviceFunction) String() string {
	return format.EnumName(deviceFunctionNames, "DeviceFunction", v)
}

// PowerupType is the effect granted by an equipment pickup.
type PowerupType int16

const (
	PowerupNone PowerupType = iota
	PowerupDoubleSpeed
	PowerupOverShield
	PowerupActiveCamouflage
	PowerupFullSpectrumVision
	PowerupHealth
	PowerupGrenade
)

var powerupTypeNames = []string{
	"none", "double speed", "over shield", "active camouflage", "full-spectrum vision", "health", "grenade",
}

func (v PowerupType) Valid() bool    { return format.EnumValid(powerupTypeNames, v) }
func (v PowerupType) String() string { return format.EnumName(powerupTypeNames, "PowerupType", v) }

// GrenadeType is the grenade given by a grenade equipment.
type GrenadeType int16

const (
	GrenadeHumanFragmentation GrenadeType = iota
	GrenadeCovenantPlasma
)

var grenadeTypeNames = []string{"human fragmentation", "covenant plasma"}

func (v GrenadeType) Valid() bool    { return format.EnumValid(grenadeTypeNames, v) }
func (v GrenadeType) String() string { return format.EnumName(grenadeTypeNames, "GrenadeType", v) }

// ControlType is the behavior of a device control.
type ControlType int16

const (
	ControlToggleSwitch ControlType = iota
	ControlOnButton
	ControlOffButton
	ControlCallButton
)

var controlTypeNames = []string{"toggle switch", "on button", "off button", "call button"}

func (v ControlType) Valid() bool    { return format.EnumValid(controlTypeNames, v) }
func (v ControlType) String() string { return format.EnumName(controlTypeNames, "ControlType", v) }

// TriggersWhen is the event that activates a device control.
type TriggersWhen int16

const (
	TriggersWhenTouchedByPlayer TriggersWhen = iota
	TriggersWhenDestroyed
)

var triggersWhenNames = []string{"touched by player", "destroyed"}

func (v TriggersWhen) Valid() bool    { return format.EnumValid(triggersWhenNames, v) }
func (v TriggersWhen) String() string { return format.EnumName(triggersWhenNames, "TriggersWhen", v) }
