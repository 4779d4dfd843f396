package format

import "fmt"

// EnumName returns names[v] or a "Type(v)" placeholder for values outside
// the table.
func EnumName[E ~int8 | ~int16 | ~int32](names []string, typ string, v E) string {
	if v >= 0 && int(v) < len(names) {
		return names[v]
	}

	return fmt.Sprintf("%s(%d)", typ, v)
}

// EnumValid reports whether v indexes names.
func EnumValid[E ~int8 | ~int16 | ~int32](names []string, v E) bool {
	return v >= 0 && int(v) < len(names)
}

// ObjectFunction selects the object state that drives an object function
// input (the A, B, C and D inputs of objects, items and devices).
type ObjectFunction int16

const (
	ObjectFunctionNone ObjectFunction = iota
	ObjectFunctionBodyVitality
	ObjectFunctionShieldVitality
	ObjectFunctionRecentBodyDamage
	ObjectFunctionRecentShieldDamage
	ObjectFunctionRandomConstant
	ObjectFunctionUmbrellaShieldVitality
	ObjectFunctionShieldStun
	ObjectFunctionRecentUmbrellaShieldVitality
	ObjectFunctionUmbrellaShieldStun
	ObjectFunctionRegion
	ObjectFunctionRegion1
	ObjectFunctionRegion2
	ObjectFunctionRegion3
	ObjectFunctionRegion4
	ObjectFunctionRegion5
	ObjectFunctionRegion6
	ObjectFunctionRegion7
	ObjectFunctionAlive
	ObjectFunctionCompass
)

var objectFunctionNames = []string{
	"none", "body vitality", "shield vitality", "recent body damage", "recent shield damage",
	"random constant", "umbrella shield vitality", "shield stun", "recent umbrella shield vitality",
	"umbrella shield stun", "region", "region 1", "region 2", "region 3", "region 4", "region 5",
	"region 6", "region 7", "alive", "compass",
}

func (f ObjectFunction) Valid() bool    { return EnumValid(objectFunctionNames, f) }
func (f ObjectFunction) String() string { return EnumName(objectFunctionNames, "ObjectFunction", f) }

// SoundCompression is the sample codec of a sound or sound permutation.
type SoundCompression int16

const (
	SoundCompressionNone SoundCompression = iota
	SoundCompressionXboxADPCM
	SoundCompressionIMAADPCM
	SoundCompressionOgg
)

var soundCompressionNames = []string{"none", "xbox adpcm", "ima adpcm", "ogg"}

func (c SoundCompression) Valid() bool { return EnumValid(soundCompressionNames, c) }
func (c SoundCompression) String() string {
	return EnumName(soundCompressionNames, "SoundCompression", c)
}

// FunctionType is the periodic function shape used by object, sky and
// shader animation functions.
type FunctionType int16

const (
	FunctionOne FunctionType = iota
	FunctionZero
	FunctionCosine
	FunctionCosineVariablePeriod
	FunctionDiagonalWave
	FunctionDiagonalWaveVariablePeriod
	FunctionSlide
	FunctionSlideVariablePeriod
	FunctionNoise
	FunctionJitter
	FunctionWander
	FunctionSpark
)

var functionTypeNames = []string{
	"one", "zero", "cosine", "cosine (variable period)", "diagonal wave",
	"diagonal wave (variable period)", "slide", "slide (variable period)", "noise", "jitter",
	"wander", "spark",
}

func (f FunctionType) Valid() bool    { return EnumValid(functionTypeNames, f) }
func (f FunctionType) String() string { return EnumName(functionTypeNames, "FunctionType", f) }
