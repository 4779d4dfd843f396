package dump

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/h1"
	"github.com/arloliu/halotag/h2"
	"github.com/arloliu/halotag/section"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func newTrack(t *testing.T) *h1.CameraTrack {
	t.Helper()

	a, err := h1.CameraTrackCodec().NewAsset(format.RevisionH1)
	require.NoError(t, err)
	track := a.(*h1.CameraTrack)
	track.Flags = 3
	track.ControlPoints.Append(
		h1.CameraControlPoint{Position: mgl32.Vec3{1, 2.5, 3}, Orientation: mgl32.QuatIdent()},
		h1.CameraControlPoint{Position: mgl32.Vec3{4, 5, 6}},
	)

	return track
}

func TestXMLCameraTrack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XML(&buf, newTrack(t)))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, `<tag group="trak" engine="blam" version="2">`), out)
	for _, name := range []string{"Flags", "ControlPoints", "Address", "Definition", "Elements", "Position", "Orientation"} {
		require.Contains(t, out, "<"+name+">", name)
	}
	require.Contains(t, out, "<Flags>3</Flags>")
	require.Contains(t, out, "<Position>1 2.5 3</Position>")
	require.Contains(t, out, `<element index="1">`)
	require.NotContains(t, out, "TagHeader")

	// the output is well formed
	dec := xml.NewDecoder(strings.NewReader(out))
	for {
		_, err := dec.Token()
		if err != nil {
			require.ErrorContains(t, err, "EOF")
			break
		}
	}
}

func TestXMLSpecialFields(t *testing.T) {
	a, err := h2.ShaderCodec().NewAsset(format.RevisionH2Retail)
	require.NoError(t, err)
	shader := a.(*h2.Shader)
	shader.Template = section.TagRef{Group: format.GroupShaderTemplate, Index: -1, Path: `shaders\opaque`}
	shader.MaterialName = section.StringID{Name: "metal"}
	shader.Parameters.Append(h2.ShaderParameter{
		Name: section.StringID{Name: "base_map"},
		Type: h2.ParameterBitmap,
	})
	shader.Parameters.Elements[0].AnimationProperties.Append(h2.AnimationProperty{
		Function: section.RawData{Data: []byte{0xde, 0xad}},
	})

	var buf bytes.Buffer
	require.NoError(t, XML(&buf, shader))
	out := buf.String()

	require.Contains(t, out, `<Template group="stem" index="-1">shaders\opaque</Template>`)
	require.Contains(t, out, "<MaterialName>metal</MaterialName>")
	require.Contains(t, out, "<Name>base_map</Name>")
	require.Contains(t, out, "<Type>bitmap</Type>")
	require.Contains(t, out, `<Function size="2" flags="0">dead</Function>`)
}

func TestXMLGroupCodes(t *testing.T) {
	a, err := h1.SkyCodec().NewAsset(format.RevisionH1)
	require.NoError(t, err)
	sky := a.(*h1.Sky)
	sky.Model = section.TagRef{Group: format.GroupModel, Index: -1, Path: `sky\clouds`}
	sky.IndoorFogScreen = section.TagRef{Group: format.GroupNone, Index: -1}

	var buf bytes.Buffer
	require.NoError(t, XML(&buf, sky))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, `<tag group="sky " engine="blam"`), out)
	require.Contains(t, out, `<Model group="mod2" index="-1">sky\clouds</Model>`)
	require.Contains(t, out, `<AnimationGraph group="00000000" index="0"></AnimationGraph>`)
	require.Contains(t, out, `<IndoorFogScreen group="none" index="-1"></IndoorFogScreen>`)
	require.NotContains(t, out, "\uFFFD")
	require.NotContains(t, out, "\x00")
}

func TestXMLNilAsset(t *testing.T) {
	require.Error(t, XML(&bytes.Buffer{}, nil))
}

func TestSpew(t *testing.T) {
	out := Spew(newTrack(t))
	require.Contains(t, out, "h1.CameraTrack")
	require.Contains(t, out, "ControlPoints")
	require.NotContains(t, out, "0xc0")
}

func TestReferences(t *testing.T) {
	a, err := h1.EquipmentCodec().NewAsset(format.RevisionH1)
	require.NoError(t, err)
	eq := a.(*h1.Equipment)
	eq.Object.Model = section.TagRef{Group: format.GroupModel, Index: -1, Path: `weapons\pistol\pistol`}
	eq.Item.CollisionSound = section.TagRef{Group: format.GroupSound, Index: -1, Path: `sound\impact`}
	eq.PickupSound = section.TagRef{Group: format.GroupSound, Index: -1, Path: `sound\pickup`}
	eq.Object.Attachments.Append(h1.ObjectAttachment{
		Type: section.TagRef{Group: format.GroupEffect, Index: -1, Path: `effects\glow`},
	})

	refs := References(eq)
	paths := make([]string, len(refs))
	for i, r := range refs {
		paths[i] = r.Path
	}
	require.Equal(t, []string{`weapons\pistol\pistol`, `effects\glow`, `sound\impact`, `sound\pickup`}, paths)

	require.Empty(t, References(newTrack(t)))
	require.Nil(t, References(nil))
}
