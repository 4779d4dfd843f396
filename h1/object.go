package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
)

// ObjectType is the object kind recorded at the start of every object tag.
type ObjectType int16

const (
	ObjectTypeBiped ObjectType = iota
	ObjectTypeVehicle
	ObjectTypeWeapon
	ObjectTypeEquipment
	ObjectTypeGarbage
	ObjectTypeProjectile
	ObjectTypeScenery
	ObjectTypeDeviceMachine
	ObjectTypeDeviceControl
	ObjectTypeDeviceLightFixture
	ObjectTypePlaceholder
	ObjectTypeSoundScenery
)

// ObjectFlags are the flags shared by every object tag.
type ObjectFlags uint16

const (
	ObjectFlagDoesNotCastShadow ObjectFlags = 1 << iota
	ObjectFlagTransparentSelfOcclusion
	ObjectFlagBrighterThanItShouldBe
	ObjectFlagNotAPathfindingObstacle
)

// Object holds the fields every object tag starts with.
type Object struct {
	Type                    ObjectType
	Flags                   ObjectFlags
	BoundingRadius          float32
	BoundingOffset          mgl32.Vec3
	OriginOffset            mgl32.Vec3
	AccelerationScale       float32
	Model                   section.TagRef
	AnimationGraph          section.TagRef
	CollisionModel          section.TagRef
	Physics                 section.TagRef
	ModifierShader          section.TagRef
	CreationEffect          section.TagRef
	RenderBoundingRadius    float32
	AIn                     format.ObjectFunction
	BIn                     format.ObjectFunction
	CIn                     format.ObjectFunction
	DIn                     format.ObjectFunction
	HUDTextMessageIndex     int16
	ForcedShaderPermutation int16
	Attachments             tag.Block[ObjectAttachment]
	Widgets                 tag.Block[ObjectWidget]
	Functions               tag.Block[ObjectFunctionEntry]
}

// Fields codes the object fields. Object types call it first.
func (o *Object) Fields(s *tag.Stream) {
	s.Int16((*int16)(&o.Type))
	encoding.Flags16(s.Stream, &o.Flags)
	s.Float32(&o.BoundingRadius)
	s.Point3D(&o.BoundingOffset)
	s.Point3D(&o.OriginOffset)
	s.Float32(&o.AccelerationScale)
	s.Skip(4)
	s.Ref(&o.Model)
	s.Ref(&o.AnimationGraph)
	s.Skip(40)
	s.Ref(&o.CollisionModel)
	s.Ref(&o.Physics)
	s.Ref(&o.ModifierShader)
	s.Ref(&o.CreationEffect)
	s.Skip(84)
	s.Float32(&o.RenderBoundingRadius)
	encoding.Enum16(s.Stream, &o.AIn)
	encoding.Enum16(s.Stream, &o.BIn)
	encoding.Enum16(s.Stream, &o.CIn)
	encoding.Enum16(s.Stream, &o.DIn)
	s.Skip(44)
	s.Int16(&o.HUDTextMessageIndex)
	s.Int16(&o.ForcedShaderPermutation)
	tag.BlockOf(s, &o.Attachments)
	tag.BlockOf(s, &o.Widgets)
	tag.BlockOf(s, &o.Functions)
}

// ObjectAttachment attaches a light, effect or sound to a model marker.
type ObjectAttachment struct {
	Type           section.TagRef
	Marker         string
	PrimaryScale   ObjectOutput
	SecondaryScale ObjectOutput
	ChangeColor    ChangeColor
}

func (a *ObjectAttachment) Fields(s *tag.Stream) {
	s.Ref(&a.Type)
	s.FixedString(&a.Marker, 32)
	encoding.Enum16(s.Stream, &a.PrimaryScale)
	encoding.Enum16(s.Stream, &a.SecondaryScale)
	encoding.Enum16(s.Stream, &a.ChangeColor)
	s.Skip(18)
}

// ObjectWidget is an antenna, flag, glow or similar widget.
type ObjectWidget struct {
	Reference section.TagRef
}

func (w *ObjectWidget) Fields(s *tag.Stream) {
	s.Ref(&w.Reference)
	s.Skip(16)
}

// ObjectFunctionFlags are the flags of an object function.
type ObjectFunctionFlags uint32

const (
	ObjectFunctionFlagInvert ObjectFunctionFlags = 1 << iota
	ObjectFunctionFlagAdditive
	ObjectFunctionFlagAlwaysActive
)

// ObjectFunctionEntry is a periodic function exported as an object output.
type ObjectFunctionEntry struct {
	Flags               ObjectFunctionFlags
	Period              float32
	ScalePeriodBy       ObjectOutput
	Function            format.FunctionType
	ScaleFunctionBy     ObjectOutput
	WobbleFunction      format.FunctionType
	WobblePeriod        float32
	WobbleMagnitude     float32
	SquareWaveThreshold float32
	StepCount           int16
	MapTo               MapTo
	SawtoothCount       int16
	Add                 ObjectOutput
	ScaleResultBy       ObjectOutput
	BoundsMode          BoundsMode
	Bounds              encoding.Bounds
	TurnOffWith         int16
	ScaleBy             float32
	Usage               string
}

func (f *ObjectFunctionEntry) Fields(s *tag.Stream) {
	encoding.Flags32(s.Stream, &f.Flags)
	s.Float32(&f.Period)
	encoding.Enum16(s.Stream, &f.ScalePeriodBy)
	encoding.Enum16(s.Stream, &f.Function)
	encoding.Enum16(s.Stream, &f.ScaleFunctionBy)
	encoding.Enum16(s.Stream, &f.WobbleFunction)
	s.Float32(&f.WobblePeriod)
	s.Float32(&f.WobbleMagnitude)
	s.Float32(&f.SquareWaveThreshold)
	s.Int16(&f.StepCount)
	encoding.Enum16(s.Stream, &f.MapTo)
	s.Int16(&f.SawtoothCount)
	encoding.Enum16(s.Stream, &f.Add)
	encoding.Enum16(s.Stream, &f.ScaleResultBy)
	encoding.Enum16(s.Stream, &f.BoundsMode)
	s.Bounds(&f.Bounds)
	s.Skip(6)
	s.Int16(&f.TurnOffWith)
	s.Float32(&f.ScaleBy)
	s.FixedString(&f.Usage, 32)
}

// ItemFlags are the flags shared by item tags.
type ItemFlags uint32

const (
	ItemFlagMaintainsZUpVector ItemFlags = 1 << iota
	ItemFlagDestroyedByExplosions
	ItemFlagUnaffectedByGravity
)

// Item holds the fields shared by weapons and equipment.
type Item struct {
	Flags                ItemFlags
	PickupTextIndex      int16
	SortOrder            int16
	Scale                float32
	HUDMessageValueScale int16
	AIn                  format.ObjectFunction
	BIn                  format.ObjectFunction
	CIn                  format.ObjectFunction
	DIn                  format.ObjectFunction
	MaterialEffects      section.TagRef
	CollisionSound       section.TagRef
	DetonationDelay      encoding.Bounds
	DetonatingEffect     section.TagRef
	DetonationEffect     section.TagRef
}

// Fields codes the item fields, which follow the object fields.
func (i *Item) Fields(s *tag.Stream) {
	encoding.Flags32(s.Stream, &i.Flags)
	s.Int16(&i.PickupTextIndex)
	s.Int16(&i.SortOrder)
	s.Float32(&i.Scale)
	s.Int16(&i.HUDMessageValueScale)
	s.Skip(18)
	encoding.Enum16(s.Stream, &i.AIn)
	encoding.Enum16(s.Stream, &i.BIn)
	encoding.Enum16(s.Stream, &i.CIn)
	encoding.Enum16(s.Stream, &i.DIn)
	s.Skip(164)
	s.Ref(&i.MaterialEffects)
	s.Ref(&i.CollisionSound)
	s.Skip(120)
	s.Bounds(&i.DetonationDelay)
	s.Ref(&i.DetonatingEffect)
	s.Ref(&i.DetonationEffect)
}

// DeviceFlags are the flags shared by device tags.
type DeviceFlags uint32

const (
	DeviceFlagPositionLoops DeviceFlags = 1 << iota
	DeviceFlagPositionNotInterpolated
)

// Device holds the fields shared by machines, controls and light fixtures.
type Device struct {
	Flags                             DeviceFlags
	PowerTransitionTime               float32
	PowerAccelerationTime             float32
	PositionTransitionTime            float32
	PositionAccelerationTime          float32
	DepoweredPositionTransitionTime   float32
	DepoweredPositionAccelerationTime float32
	AIn                               DeviceFunction
	BIn                               DeviceFunction
	CIn                               DeviceFunction
	DIn                               DeviceFunction
	Open                              section.TagRef
	Close                             section.TagRef
	Opened                            section.TagRef
	Closed                            section.TagRef
	Depowered                         section.TagRef
	Repowered                         section.TagRef
	DelayTime                         float32
	DelayEffect                       section.TagRef
	AutomaticActivationRadius         float32
}

// Fields codes the device fields, which follow the object fields.
func (d *Device) Fields(s *tag.Stream) {
	encoding.Flags32(s.Stream, &d.Flags)
	s.Float32(&d.PowerTransitionTime)
	s.Float32(&d.PowerAccelerationTime)
	s.Float32(&d.PositionTransitionTime)
	s.Float32(&d.PositionAccelerationTime)
	s.Float32(&d.DepoweredPositionTransitionTime)
	s.Float32(&d.DepoweredPositionAccelerationTime)
	encoding.Enum16(s.Stream, &d.AIn)
	encoding.Enum16(s.Stream, &d.BIn)
	encoding.Enum16(s.Stream, &d.CIn)
	encoding.Enum16(s.Stream, &d.DIn)
	s.Ref(&d.Open)
	s.Ref(&d.Close)
	s.Ref(&d.Opened)
	s.Ref(&d.Closed)
	s.Ref(&d.Depowered)
	s.Ref(&d.Repowered)
	s.Float32(&d.DelayTime)
	s.Skip(8)
	s.Ref(&d.DelayEffect)
	s.Float32(&d.AutomaticActivationRadius)
	s.Skip(112)
}
