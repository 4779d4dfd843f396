package h1

import (
	"testing"

	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/internal/tagtest"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

// decodeFixture decodes a hand assembled tag and checks that encoding the
// result reproduces it exactly.
func decodeFixture[T tag.Asset](t *testing.T, f *tagtest.Fixture) T {
	t.Helper()

	_, dec, enc := newCodecs(t)
	got, warn, err := dec.Decode(f.Bytes())
	require.NoError(t, err)
	require.NoError(t, warn)

	data, err := enc.Encode(got)
	require.NoError(t, err)
	require.Equal(t, f.Bytes(), data)

	return got.(T)
}

func TestBitmapFixture(t *testing.T) {
	f := tagtest.New(format.GroupBitmap, BitmapVersion, format.RevisionH1, 108)
	f.Int16(0, int16(BitmapTypeSprites)).
		Int16(2, int16(BitmapFormatInterpolatedAlpha)).
		Int16(4, int16(BitmapUsageHeightMap)).
		Uint16(6, uint16(BitmapFlagDiffusionDithering|BitmapFlagUniformSpriteSequences))
	f.Floats(8, 0.25, 0.5, 12)
	f.Int16(20, int16(SpriteBudget256)).Uint16(22, 7).Uint16(24, 640).Uint16(26, 480)
	f.Data(48, 4).Uint32(52, 0x11)
	f.Floats(68, 1.5, 0.125)
	f.Uint16(76, 9).Int16(78, int16(SpriteUsageDoubleMultiply)).Uint16(80, 4)
	f.Block(84, 1).Block(96, 1)

	f.Append(0xA1, 0xA2, 0xA3, 0xA4)
	seq := f.Elements(1, 64)
	f.Text(seq, "flames").Int16(seq+32, 2).Int16(seq+34, 5)
	bm := f.Elements(1, 48)
	f.Uint32(bm, uint32(format.GroupBitmap)).
		Int16(bm+4, 64).Int16(bm+6, 32).Int16(bm+8, 1).
		Int16(bm+10, int16(BitmapDataTypeCubeMap)).
		Int16(bm+12, int16(BitmapDataFormatDXT5)).
		Uint16(bm+14, uint16(BitmapDataFlagCompressed)).
		Int16(bm+16, 32).Int16(bm+18, 16).Int16(bm+20, 6).
		Int32(bm+24, 128).Int32(bm+28, 4096).
		Uint32(bm+32, 0xE1E2E3E4).Uint32(bm+36, 0xF1F2F3F4).Uint32(bm+44, 0xC1C2C3C4)

	b := decodeFixture[*Bitmap](t, f)
	require.Equal(t, BitmapTypeSprites, b.Type)
	require.Equal(t, BitmapFormatInterpolatedAlpha, b.Format)
	require.Equal(t, BitmapUsageHeightMap, b.Usage)
	require.Equal(t, BitmapFlagDiffusionDithering|BitmapFlagUniformSpriteSequences, b.Flags)
	require.Equal(t, float32(0.25), b.DetailFadeFactor)
	require.Equal(t, float32(0.5), b.SharpenAmount)
	require.Equal(t, float32(12), b.BumpHeight)
	require.Equal(t, SpriteBudget256, b.SpriteBudgetSize)
	require.Equal(t, uint16(7), b.SpriteBudgetCount)
	require.Equal(t, uint16(640), b.ColorPlateWidth)
	require.Equal(t, uint16(480), b.ColorPlateHeight)
	require.Nil(t, b.CompressedColorPlate.Data)
	require.Equal(t, []byte{0xA1, 0xA2, 0xA3, 0xA4}, b.ProcessedPixelData.Data)
	require.Equal(t, uint32(0x11), b.ProcessedPixelData.Flags)
	require.Equal(t, float32(1.5), b.BlurFilterSize)
	require.Equal(t, float32(0.125), b.AlphaBias)
	require.Equal(t, uint16(9), b.MipmapCount)
	require.Equal(t, SpriteUsageDoubleMultiply, b.SpriteUsage)
	require.Equal(t, uint16(4), b.SpriteSpacing)

	require.Len(t, b.Sequences.Elements, 1)
	require.Equal(t, "flames", b.Sequences.Elements[0].Name)
	require.Equal(t, int16(2), b.Sequences.Elements[0].FirstBitmapIndex)
	require.Equal(t, int16(5), b.Sequences.Elements[0].BitmapCount)

	require.Len(t, b.Bitmaps.Elements, 1)
	d := b.Bitmaps.Elements[0]
	require.Equal(t, format.GroupBitmap, d.Signature)
	require.Equal(t, int16(64), d.Width)
	require.Equal(t, int16(32), d.Height)
	require.Equal(t, int16(1), d.Depth)
	require.Equal(t, BitmapDataTypeCubeMap, d.Type)
	require.Equal(t, BitmapDataFormatDXT5, d.Format)
	require.Equal(t, BitmapDataFlagCompressed, d.Flags)
	require.Equal(t, encoding.Point2DInt{X: 32, Y: 16}, d.RegistrationPoint)
	require.Equal(t, int16(6), d.MipmapCount)
	require.Equal(t, int32(128), d.PixelsOffset)
	require.Equal(t, int32(4096), d.PixelsSize)
	require.Equal(t, uint32(0xE1E2E3E4), d.BitmapTagID)
	require.Equal(t, uint32(0xF1F2F3F4), d.Pointer)
	require.Equal(t, uint32(0xC1C2C3C4), d.BaseAddress)
}

func TestSoundFixture(t *testing.T) {
	const promotion = `sound\promo`

	f := tagtest.New(format.GroupSound, SoundVersion, format.RevisionH1, 164)
	f.Uint32(0, uint32(SoundFlagSplitLongSoundIntoPermutations)).
		Int16(4, int16(SoundClassMusic)).
		Int16(6, int16(SampleRate44kHz))
	f.Floats(8, 1, 90, 0.25, 0.9, 1.1, 0.5, 1.25, 0.75, 0.6, 2)
	f.Floats(60, 0.11, 0.22, 0.33)
	f.Int16(84, int16(SoundEncodingStereo)).Int16(86, int16(format.SoundCompressionOgg))
	f.Ref(88, format.GroupSound, len(promotion)).Int16(104, 3)
	f.Uint32(128, 44100)
	f.Block(152, 1)

	f.Path(promotion)
	pr := f.Elements(1, 72)
	f.Text(pr, "default").Floats(pr+32, 1, 0.5, 1.5).Int16(pr+44, 1).
		Float32(pr+48, 2.5).Int32(pr+52, -1).Int32(pr+56, 7).Block(pr+60, 1)
	perm := f.Elements(1, 124)
	f.Text(perm, "take").Floats(perm+32, 0.1, 0.8).
		Int16(perm+40, int16(format.SoundCompressionXboxADPCM)).Int16(perm+42, -1).
		Data(perm+64, 3).Data(perm+84, 2).Data(perm+104, 1)
	f.Append(1, 2, 3, 4, 5, 6)

	d := decodeFixture[*Sound](t, f)
	require.Equal(t, SoundFlagSplitLongSoundIntoPermutations, d.Flags)
	require.Equal(t, SoundClassMusic, d.Class)
	require.Equal(t, SampleRate44kHz, d.SampleRate)
	require.Equal(t, encoding.Bounds{Min: 1, Max: 90}, d.Distance)
	require.Equal(t, float32(0.25), d.SkipFraction)
	require.Equal(t, encoding.Bounds{Min: 0.9, Max: 1.1}, d.RandomPitchBounds)
	require.Equal(t, encoding.Degrees(0.5), d.InnerConeAngle)
	require.Equal(t, encoding.Degrees(1.25), d.OuterConeAngle)
	require.Equal(t, float32(0.75), d.OuterConeGain)
	require.Equal(t, float32(0.6), d.GainModifier)
	require.Equal(t, float32(2), d.MaxBendPerSecond)
	require.Equal(t, float32(0.11), d.SkipFractionModifier)
	require.Equal(t, float32(0.22), d.GainScaleModifier)
	require.Equal(t, float32(0.33), d.PitchModifier)
	require.Equal(t, SoundEncodingStereo, d.Encoding)
	require.Equal(t, format.SoundCompressionOgg, d.Compression)
	require.Equal(t, section.TagRef{Group: format.GroupSound, Index: -1, Path: promotion}, d.PromotionSound)
	require.Equal(t, int16(3), d.PromotionCount)
	require.Equal(t, uint32(44100), d.LongestPermutation)

	require.Len(t, d.PitchRanges.Elements, 1)
	r := d.PitchRanges.Elements[0]
	require.Equal(t, "default", r.Name)
	require.Equal(t, float32(1), r.NaturalPitch)
	require.Equal(t, encoding.Bounds{Min: 0.5, Max: 1.5}, r.BendBounds)
	require.Equal(t, int16(1), r.ActualPermutationCount)
	require.Equal(t, float32(2.5), r.PlaybackRate)
	require.Equal(t, [2]int32{-1, 7}, r.UnknownIndices)

	require.Len(t, r.Permutations.Elements, 1)
	p := r.Permutations.Elements[0]
	require.Equal(t, "take", p.Name)
	require.Equal(t, float32(0.1), p.SkipFraction)
	require.Equal(t, float32(0.8), p.Gain)
	require.Equal(t, format.SoundCompressionXboxADPCM, p.Compression)
	require.Equal(t, int16(-1), p.NextPermutationIndex)
	require.Equal(t, []byte{1, 2, 3}, p.Samples.Data)
	require.Equal(t, []byte{4, 5}, p.MouthData.Data)
	require.Equal(t, []byte{6}, p.SubtitleData.Data)
}

func TestPhysicsFixture(t *testing.T) {
	f := tagtest.New(format.GroupPhysics, PhysicsVersion, format.RevisionH1, 132)
	f.Floats(0, 0.5, 1, 120, 0.1, 0.2, 0.3, 2.5, 1.1, 0.21, 0.15, 0.05, 0.31, 0.7, 0.9)
	f.Floats(60, 0.06, 0.25, 1.02)
	f.Float32(76, 0.004)
	f.Floats(84, 10, 20, 30)
	f.Block(96, 1).Block(120, 1)

	m := f.Elements(1, 36)
	f.Floats(m, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	mp := f.Elements(1, 128)
	f.Text(mp, "body").Int16(mp+32, -1).Int16(mp+34, 2).Uint32(mp+36, 1)
	f.Floats(mp+40, 1, 120, 1.5, 2.5, 0, 0, 0.5, 1, 0, 0, 0, 0, 1)
	f.Int16(mp+92, int16(FrictionForward)).Floats(mp+96, 0.4, 0.6, 0.45)

	p := decodeFixture[*Physics](t, f)
	require.Equal(t, float32(0.5), p.Radius)
	require.Equal(t, float32(1), p.MomentScale)
	require.Equal(t, float32(120), p.Mass)
	require.Equal(t, mgl32.Vec3{0.1, 0.2, 0.3}, p.CenterOfMass)
	require.Equal(t, float32(2.5), p.Density)
	require.Equal(t, float32(1.1), p.GravityScale)
	require.Equal(t, float32(0.21), p.GroundFriction)
	require.Equal(t, float32(0.15), p.GroundDepth)
	require.Equal(t, float32(0.05), p.GroundElasticity)
	require.Equal(t, float32(0.31), p.GroundDepthScale)
	require.Equal(t, float32(0.7), p.GroundNormalK1)
	require.Equal(t, float32(0.9), p.GroundNormalK0)
	require.Equal(t, float32(0.06), p.WaterFriction)
	require.Equal(t, float32(0.25), p.WaterDepth)
	require.Equal(t, float32(1.02), p.WaterDensity)
	require.Equal(t, float32(0.004), p.AirFriction)
	require.Equal(t, float32(10), p.XXMoment)
	require.Equal(t, float32(20), p.YYMoment)
	require.Equal(t, float32(30), p.ZZMoment)

	require.Len(t, p.InertialMatrices.Elements, 1)
	require.Equal(t, mgl32.Mat3FromRows(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{4, 5, 6}, mgl32.Vec3{7, 8, 9}),
		p.InertialMatrices.Elements[0].Mat3())
	require.Empty(t, p.PoweredMassPoints.Elements)

	require.Len(t, p.MassPoints.Elements, 1)
	pt := p.MassPoints.Elements[0]
	require.Equal(t, "body", pt.Name)
	require.Equal(t, int16(-1), pt.PoweredMassPoint)
	require.Equal(t, int16(2), pt.ModelNode)
	require.Equal(t, uint32(1), pt.Flags)
	require.Equal(t, float32(1), pt.RelativeMass)
	require.Equal(t, float32(120), pt.Mass)
	require.Equal(t, float32(1.5), pt.RelativeDensity)
	require.Equal(t, float32(2.5), pt.Density)
	require.Equal(t, mgl32.Vec3{0, 0, 0.5}, pt.Position)
	require.Equal(t, mgl32.Vec3{1, 0, 0}, pt.Forward)
	require.Equal(t, mgl32.Vec3{0, 0, 1}, pt.Up)
	require.Equal(t, FrictionForward, pt.FrictionType)
	require.Equal(t, float32(0.4), pt.FrictionParallelScale)
	require.Equal(t, float32(0.6), pt.FrictionPerpendicularScale)
	require.Equal(t, float32(0.45), pt.Radius)
}

func TestSkyFixture(t *testing.T) {
	const (
		model = `sky\clouds`
		flare = `sky\sun`
	)

	f := tagtest.New(format.GroupSky, SkyVersion, format.RevisionH1, 208)
	f.Ref(0, format.GroupModel, len(model))
	f.Floats(56, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.85, 0.8)
	f.Floats(108, 0.02, 100, 900, 0.3, 0.35, 0.4)
	f.Floats(140, 0.01, 5, 50)
	f.Block(196, 1)

	f.Path(model)
	l := f.Elements(1, 116)
	f.Ref(l, format.GroupLensFlare, len(flare)).Text(l+16, "sun")
	f.Uint32(l+76, uint32(SkyLightFlagAffectsExteriors|SkyLightFlagAffectsInteriors))
	f.Floats(l+80, 1, 0.9, 0.8, 2, 500)
	f.Floats(l+104, 0.75, -0.3, 0.01)
	f.Path(flare)

	k := decodeFixture[*Sky](t, f)
	require.Equal(t, section.TagRef{Group: format.GroupModel, Index: -1, Path: model}, k.Model)
	require.True(t, k.AnimationGraph.IsNull())
	require.Equal(t, encoding.ColorRGB{R: 0.1, G: 0.2, B: 0.3}, k.IndoorAmbientRadiosityColor)
	require.Equal(t, float32(0.4), k.IndoorAmbientRadiosityPower)
	require.Equal(t, encoding.ColorRGB{R: 0.5, G: 0.6, B: 0.7}, k.OutdoorAmbientRadiosityColor)
	require.Equal(t, float32(0.8), k.OutdoorAmbientRadiosityPower)
	require.Equal(t, encoding.ColorRGB{R: 0.9, G: 0.85, B: 0.8}, k.OutdoorFogColor)
	require.Equal(t, float32(0.02), k.OutdoorFogMaxDensity)
	require.Equal(t, float32(100), k.OutdoorFogStartDistance)
	require.Equal(t, float32(900), k.OutdoorFogOpaqueDistance)
	require.Equal(t, encoding.ColorRGB{R: 0.3, G: 0.35, B: 0.4}, k.IndoorFogColor)
	require.Equal(t, float32(0.01), k.IndoorFogMaxDensity)
	require.Equal(t, float32(5), k.IndoorFogStartDistance)
	require.Equal(t, float32(50), k.IndoorFogOpaqueDistance)
	require.True(t, k.IndoorFogScreen.IsNull())
	require.Empty(t, k.ShaderFunctions.Elements)
	require.Empty(t, k.Animations.Elements)

	require.Len(t, k.Lights.Elements, 1)
	light := k.Lights.Elements[0]
	require.Equal(t, section.TagRef{Group: format.GroupLensFlare, Index: -1, Path: flare}, light.LensFlare)
	require.Equal(t, "sun", light.LensFlareMarkerName)
	require.Equal(t, SkyLightFlagAffectsExteriors|SkyLightFlagAffectsInteriors, light.Flags)
	require.Equal(t, encoding.ColorRGB{R: 1, G: 0.9, B: 0.8}, light.Color)
	require.Equal(t, float32(2), light.Power)
	require.Equal(t, float32(500), light.TestDistance)
	require.Equal(t, encoding.Euler2D{Yaw: encoding.Degrees(0.75), Pitch: encoding.Degrees(-0.3)}, light.Direction)
	require.Equal(t, encoding.Degrees(0.01), light.Diameter)
}

func TestEquipmentFixture(t *testing.T) {
	const (
		model  = `weapons\pistol\pistol`
		pickup = `sound\pickup`
	)

	f := tagtest.New(format.GroupEquipment, EquipmentVersion, format.RevisionH1, 920)
	// object
	f.Int16(0, int16(ObjectTypeEquipment)).Uint16(2, uint16(ObjectFlagDoesNotCastShadow))
	f.Floats(4, 0.3, 0, 0, 0.1, 0, 0, 0.05, 1.5)
	f.Ref(40, format.GroupModel, len(model))
	f.Float32(260, 0.4)
	f.Int16(264, int16(format.ObjectFunctionBodyVitality)).
		Int16(266, int16(format.ObjectFunctionShieldVitality)).
		Int16(268, int16(format.ObjectFunctionRecentBodyDamage)).
		Int16(270, int16(format.ObjectFunctionRecentShieldDamage))
	f.Int16(316, 7).Int16(318, -1)
	// item
	f.Uint32(356, uint32(ItemFlagDestroyedByExplosions)).Int16(360, 4).Int16(362, 9)
	f.Float32(364, 1.25).Int16(368, 3)
	f.Int16(388, int16(format.ObjectFunctionRandomConstant)).
		Int16(390, int16(format.ObjectFunctionUmbrellaShieldVitality)).
		Int16(392, int16(format.ObjectFunctionShieldStun)).
		Int16(394, int16(format.ObjectFunctionBodyVitality))
	f.Floats(712, 1, 2)
	// equipment
	f.Int16(752, int16(PowerupActiveCamouflage)).Int16(754, int16(GrenadeCovenantPlasma))
	f.Float32(756, 30).Ref(760, format.GroupSound, len(pickup))

	f.Path(model).Path(pickup)

	e := decodeFixture[*Equipment](t, f)
	o := e.Object
	require.Equal(t, ObjectTypeEquipment, o.Type)
	require.Equal(t, ObjectFlagDoesNotCastShadow, o.Flags)
	require.Equal(t, float32(0.3), o.BoundingRadius)
	require.Equal(t, mgl32.Vec3{0, 0, 0.1}, o.BoundingOffset)
	require.Equal(t, mgl32.Vec3{0, 0, 0.05}, o.OriginOffset)
	require.Equal(t, float32(1.5), o.AccelerationScale)
	require.Equal(t, section.TagRef{Group: format.GroupModel, Index: -1, Path: model}, o.Model)
	require.True(t, o.CollisionModel.IsNull())
	require.Equal(t, float32(0.4), o.RenderBoundingRadius)
	require.Equal(t, format.ObjectFunctionBodyVitality, o.AIn)
	require.Equal(t, format.ObjectFunctionShieldVitality, o.BIn)
	require.Equal(t, format.ObjectFunctionRecentBodyDamage, o.CIn)
	require.Equal(t, format.ObjectFunctionRecentShieldDamage, o.DIn)
	require.Equal(t, int16(7), o.HUDTextMessageIndex)
	require.Equal(t, int16(-1), o.ForcedShaderPermutation)

	i := e.Item
	require.Equal(t, ItemFlagDestroyedByExplosions, i.Flags)
	require.Equal(t, int16(4), i.PickupTextIndex)
	require.Equal(t, int16(9), i.SortOrder)
	require.Equal(t, float32(1.25), i.Scale)
	require.Equal(t, int16(3), i.HUDMessageValueScale)
	require.Equal(t, format.ObjectFunctionRandomConstant, i.AIn)
	require.Equal(t, format.ObjectFunctionUmbrellaShieldVitality, i.BIn)
	require.Equal(t, format.ObjectFunctionShieldStun, i.CIn)
	require.Equal(t, format.ObjectFunctionBodyVitality, i.DIn)
	require.Equal(t, encoding.Bounds{Min: 1, Max: 2}, i.DetonationDelay)

	require.Equal(t, PowerupActiveCamouflage, e.PowerupType)
	require.Equal(t, GrenadeCovenantPlasma, e.GrenadeType)
	require.Equal(t, float32(30), e.PowerupTime)
	require.Equal(t, section.TagRef{Group: format.GroupSound, Index: -1, Path: pickup}, e.PickupSound)
}

func TestDeviceControlFixture(t *testing.T) {
	const (
		open = `sound\open`
		deny = `sound\deny`
	)

	f := tagtest.New(format.GroupDeviceControl, DeviceControlVersion, format.RevisionH1, 768)
	f.Int16(0, int16(ObjectTypeDeviceControl))
	// device
	f.Uint32(356, uint32(DeviceFlagPositionLoops))
	f.Floats(360, 1, 2, 3, 4, 5, 6)
	f.Int16(384, int16(DeviceFunctionPower)).
		Int16(386, int16(DeviceFunctionChangeInPower)).
		Int16(388, int16(DeviceFunctionPosition)).
		Int16(390, int16(DeviceFunctionLocked))
	f.Ref(392, format.GroupSound, len(open))
	f.Float32(488, 0.5).Float32(516, 2.5)
	// control
	f.Int16(632, int16(ControlCallButton)).Int16(634, int16(TriggersWhenDestroyed)).Float32(636, 0.75)
	f.Ref(752, format.GroupSound, len(deny))

	f.Path(open).Path(deny)

	c := decodeFixture[*DeviceControl](t, f)
	require.Equal(t, ObjectTypeDeviceControl, c.Object.Type)

	d := c.Device
	require.Equal(t, DeviceFlagPositionLoops, d.Flags)
	require.Equal(t, float32(1), d.PowerTransitionTime)
	require.Equal(t, float32(2), d.PowerAccelerationTime)
	require.Equal(t, float32(3), d.PositionTransitionTime)
	require.Equal(t, float32(4), d.PositionAccelerationTime)
	require.Equal(t, float32(5), d.DepoweredPositionTransitionTime)
	require.Equal(t, float32(6), d.DepoweredPositionAccelerationTime)
	require.Equal(t, DeviceFunctionPower, d.AIn)
	require.Equal(t, DeviceFunctionChangeInPower, d.BIn)
	require.Equal(t, DeviceFunctionPosition, d.CIn)
	require.Equal(t, DeviceFunctionLocked, d.DIn)
	require.Equal(t, section.TagRef{Group: format.GroupSound, Index: -1, Path: open}, d.Open)
	require.True(t, d.Close.IsNull())
	require.Equal(t, float32(0.5), d.DelayTime)
	require.Equal(t, float32(2.5), d.AutomaticActivationRadius)

	require.Equal(t, ControlCallButton, c.Type)
	require.Equal(t, TriggersWhenDestroyed, c.TriggersWhen)
	require.Equal(t, float32(0.75), c.CallValue)
	require.True(t, c.On.IsNull())
	require.True(t, c.Off.IsNull())
	require.Equal(t, section.TagRef{Group: format.GroupSound, Index: -1, Path: deny}, c.Deny)
}

func TestCameraTrackFixture(t *testing.T) {
	f := tagtest.New(format.GroupCameraTrack, CameraTrackVersion, format.RevisionH1, 48)
	f.Uint32(0, 3).Block(4, 2)
	p := f.Elements(2, 60)
	f.Floats(p, 1, 2, 3, 0.1, 0.2, 0.3, 0.9)
	f.Floats(p+60, 4, 5, 6, 0, 0, 0, 1)

	c := decodeFixture[*CameraTrack](t, f)
	require.Equal(t, uint32(3), c.Flags)
	require.Len(t, c.ControlPoints.Elements, 2)
	require.Equal(t, mgl32.Vec3{1, 2, 3}, c.ControlPoints.Elements[0].Position)
	require.Equal(t, mgl32.Quat{W: 0.9, V: mgl32.Vec3{0.1, 0.2, 0.3}}, c.ControlPoints.Elements[0].Orientation)
	require.Equal(t, mgl32.Vec3{4, 5, 6}, c.ControlPoints.Elements[1].Position)
	require.Equal(t, mgl32.QuatIdent(), c.ControlPoints.Elements[1].Orientation)
}
