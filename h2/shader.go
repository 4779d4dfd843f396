package h2

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
)

// ShaderVersion is the tag version written for H2 shaders.
const ShaderVersion = 1

// Shader is the H2 shader tag (shad). It binds a shader template to a set of
// named parameters.
type Shader struct {
	tag.Base

	Template                   section.TagRef
	MaterialName               section.StringID
	Flags                      ShaderFlags
	Parameters                 tag.Block[ShaderParameter]
	LightmapType               LightmapType
	LightmapSpecularBrightness float32
	LightmapAmbientBias        float32
	AddedDepthBiasOffset       float32
	AddedDepthBiasSlopeScale   float32
}

func (h *Shader) Fields(s *tag.Stream) {
	s.Ref(&h.Template)
	s.StringID(&h.MaterialName)
	encoding.Flags16(s.Stream, &h.Flags)
	s.Skip(2)
	tag.BlockOf(s, &h.Parameters)
	encoding.Enum16(s.Stream, &h.LightmapType)
	s.Skip(2)
	s.Float32(&h.LightmapSpecularBrightness)
	s.Float32(&h.LightmapAmbientBias)
	s.Float32(&h.AddedDepthBiasOffset)
	s.Float32(&h.AddedDepthBiasSlopeScale)
}

// ShaderParameter overrides one template parameter.
type ShaderParameter struct {
	Name                section.StringID
	Type                ParameterType
	Bitmap              section.TagRef
	ConstValue          float32
	ConstColor          encoding.ColorRGB
	AnimationProperties tag.Block[AnimationProperty]
}

func (p *ShaderParameter) Fields(s *tag.Stream) {
	s.StringID(&p.Name)
	encoding.Enum16(s.Stream, &p.Type)
	s.Skip(2)
	s.Ref(&p.Bitmap)
	s.Float32(&p.ConstValue)
	s.ColorRGB(&p.ConstColor)
	tag.BlockOf(s, &p.AnimationProperties)
}

// AnimationProperty animates one property of a shader parameter. Function
// holds the packed function curve.
type AnimationProperty struct {
	Type       AnimationPropertyType
	InputName  section.StringID
	RangeName  section.StringID
	TimePeriod float32
	Function   section.RawData
}

func (a *AnimationProperty) Fields(s *tag.Stream) {
	encoding.Enum16(s.Stream, &a.Type)
	s.Skip(2)
	s.StringID(&a.InputName)
	s.StringID(&a.RangeName)
	s.Float32(&a.TimePeriod)
	s.Data(&a.Function)
}

// ShaderCodec returns the H2 shader layout. Legacy tags predate string ids
// and are not supported.
func ShaderCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupShader,
		Engine:    format.EngineH2,
		Version:   ShaderVersion,
		Revisions: []format.Revision{format.RevisionH2Vista, format.RevisionH2Retail},
		New:       func() tag.Asset { return &Shader{} },
	}
}
