package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
)

// SkyVersion is the tag version written for H1 skies.
const SkyVersion = 1

// Sky is the H1 sky tag (sky ).
type Sky struct {
	tag.Base

	Model                        section.TagRef
	AnimationGraph               section.TagRef
	IndoorAmbientRadiosityColor  encoding.ColorRGB
	IndoorAmbientRadiosityPower  float32
	OutdoorAmbientRadiosityColor encoding.ColorRGB
	OutdoorAmbientRadiosityPower float32
	OutdoorFogColor              encoding.ColorRGB
	OutdoorFogMaxDensity         float32
	OutdoorFogStartDistance      float32
	OutdoorFogOpaqueDistance     float32
	IndoorFogColor               encoding.ColorRGB
	IndoorFogMaxDensity          float32
	IndoorFogStartDistance       float32
	IndoorFogOpaqueDistance      float32
	IndoorFogScreen              section.TagRef
	ShaderFunctions              tag.Block[SkyShaderFunction]
	Animations                   tag.Block[SkyAnimation]
	Lights                       tag.Block[SkyLight]
}

func (k *Sky) Fields(s *tag.Stream) {
	s.Ref(&k.Model)
	s.Ref(&k.AnimationGraph)
	s.Skip(24)
	s.ColorRGB(&k.IndoorAmbientRadiosityColor)
	s.Float32(&k.IndoorAmbientRadiosityPower)
	s.ColorRGB(&k.OutdoorAmbientRadiosityColor)
	s.Float32(&k.OutdoorAmbientRadiosityPower)
	s.ColorRGB(&k.OutdoorFogColor)
	s.Skip(8)
	s.Float32(&k.OutdoorFogMaxDensity)
	s.Float32(&k.OutdoorFogStartDistance)
	s.Float32(&k.OutdoorFogOpaqueDistance)
	s.ColorRGB(&k.IndoorFogColor)
	s.Skip(8)
	s.Float32(&k.IndoorFogMaxDensity)
	s.Float32(&k.IndoorFogStartDistance)
	s.Float32(&k.IndoorFogOpaqueDistance)
	s.Ref(&k.IndoorFogScreen)
	s.Skip(4)
	tag.BlockOf(s, &k.ShaderFunctions)
	tag.BlockOf(s, &k.Animations)
	tag.BlockOf(s, &k.Lights)
}

// SkyShaderFunction binds a shader function to a global script variable.
type SkyShaderFunction struct {
	GlobalFunctionName string
}

func (f *SkyShaderFunction) Fields(s *tag.Stream) {
	s.Skip(4)
	s.FixedString(&f.GlobalFunctionName, 32)
}

// SkyAnimation plays one animation of the sky model over a period.
type SkyAnimation struct {
	AnimationIndex int16
	Period         float32
}

func (a *SkyAnimation) Fields(s *tag.Stream) {
	s.Int16(&a.AnimationIndex)
	s.Skip(2)
	s.Float32(&a.Period)
	s.Skip(28)
}

// SkyLightFlags are the flags of a sky light.
type SkyLightFlags uint32

const (
	SkyLightFlagAffectsExteriors SkyLightFlags = 1 << iota
	SkyLightFlagAffectsInteriors
)

// SkyLight is a directional light cast by the sky.
type SkyLight struct {
	LensFlare           section.TagRef
	LensFlareMarkerName string
	Flags               SkyLightFlags
	Color               encoding.ColorRGB
	Power               float32
	TestDistance        float32
	Direction           encoding.Euler2D
	Diameter            float64
}

func (l *SkyLight) Fields(s *tag.Stream) {
	s.Ref(&l.LensFlare)
	s.FixedString(&l.LensFlareMarkerName, 32)
	s.Skip(28)
	encoding.Flags32(s.Stream, &l.Flags)
	s.ColorRGB(&l.Color)
	s.Float32(&l.Power)
	s.Float32(&l.TestDistance)
	s.Skip(4)
	s.Euler2D(&l.Direction)
	s.Angle(&l.Diameter)
}

// SkyCodec returns the H1 sky layout.
func SkyCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupSky,
		Engine:    format.EngineH1,
		Version:   SkyVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &Sky{} },
	}
}
