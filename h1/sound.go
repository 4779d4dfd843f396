package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
)

// SoundVersion is the tag version written for H1 sounds.
const SoundVersion = 4

// SoundFlags are the playback flags of a sound.
type SoundFlags uint32

const (
	SoundFlagFitToADPCMBlockSize SoundFlags = 1 << iota
	SoundFlagSplitLongSoundIntoPermutations
)

// Sound is the H1 sound tag (snd!). Permutation payloads are stored after
// the fixed fields of the whole permutation array, in samples, mouth data,
// subtitle data order per permutation.
type Sound struct {
	tag.Base

	Flags                SoundFlags
	Class                SoundClass
	SampleRate           SampleRate
	Distance             encoding.Bounds
	SkipFraction         float32
	RandomPitchBounds    encoding.Bounds
	InnerConeAngle       float64
	OuterConeAngle       float64
	OuterConeGain        float32
	GainModifier         float32
	MaxBendPerSecond     float32
	SkipFractionModifier float32
	GainScaleModifier    float32
	PitchModifier        float32
	Encoding             SoundEncoding
	Compression          format.SoundCompression
	PromotionSound       section.TagRef
	PromotionCount       int16
	LongestPermutation   uint32
	PitchRanges          tag.Block[SoundPitchRange]
}

func (d *Sound) Fields(s *tag.Stream) {
	encoding.Flags32(s.Stream, &d.Flags)
	encoding.Enum16(s.Stream, &d.Class)
	encoding.Enum16(s.Stream, &d.SampleRate)
	s.Bounds(&d.Distance)
	s.Float32(&d.SkipFraction)
	s.Bounds(&d.RandomPitchBounds)
	s.Angle(&d.InnerConeAngle)
	s.Angle(&d.OuterConeAngle)
	s.Float32(&d.OuterConeGain)
	s.Float32(&d.GainModifier)
	s.Float32(&d.MaxBendPerSecond)
	s.Skip(12)
	s.Float32(&d.SkipFractionModifier)
	s.Float32(&d.GainScaleModifier)
	s.Float32(&d.PitchModifier)
	s.Skip(12)
	encoding.Enum16(s.Stream, &d.Encoding)
	encoding.Enum16(s.Stream, &d.Compression)
	s.Ref(&d.PromotionSound)
	s.Int16(&d.PromotionCount)
	s.Skip(22)
	s.Uint32(&d.LongestPermutation)
	s.Skip(20)
	tag.BlockOf(s, &d.PitchRanges)
}

// SoundPitchRange groups the permutations played around one natural pitch.
type SoundPitchRange struct {
	Name                   string
	NaturalPitch           float32
	BendBounds             encoding.Bounds
	ActualPermutationCount int16
	PlaybackRate           float32
	UnknownIndices         [2]int32
	Permutations           tag.Block[SoundPermutation]
}

func (p *SoundPitchRange) Fields(s *tag.Stream) {
	s.FixedString(&p.Name, 32)
	s.Float32(&p.NaturalPitch)
	s.Bounds(&p.BendBounds)
	s.Int16(&p.ActualPermutationCount)
	s.Skip(2)
	s.Float32(&p.PlaybackRate)
	s.Int32(&p.UnknownIndices[0])
	s.Int32(&p.UnknownIndices[1])
	tag.BlockOf(s, &p.Permutations)
}

// SoundPermutation is one recorded variant of a sound.
type SoundPermutation struct {
	Name                 string
	SkipFraction         float32
	Gain                 float32
	Compression          format.SoundCompression
	NextPermutationIndex int16
	Samples              section.RawData
	MouthData            section.RawData
	SubtitleData         section.RawData
}

func (p *SoundPermutation) Fields(s *tag.Stream) {
	s.FixedString(&p.Name, 32)
	s.Float32(&p.SkipFraction)
	s.Float32(&p.Gain)
	encoding.Enum16(s.Stream, &p.Compression)
	s.Int16(&p.NextPermutationIndex)
	s.Skip(20)
	s.Data(&p.Samples)
	s.Data(&p.MouthData)
	s.Data(&p.SubtitleData)
}

// SoundCodec returns the H1 sound layout.
func SoundCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupSound,
		Engine:    format.EngineH1,
		Version:   SoundVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &Sound{} },
	}
}
