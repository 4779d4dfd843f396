package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
)

// PhysicsVersion is the tag version written for H1 physics.
const PhysicsVersion = 4

// Physics is the H1 physics tag (phys).
type Physics struct {
	tag.Base

	Radius            float32
	MomentScale       float32
	Mass              float32
	CenterOfMass      mgl32.Vec3
	Density           float32
	GravityScale      float32
	GroundFriction    float32
	GroundDepth       float32
	GroundElasticity  float32
	GroundDepthScale  float32
	GroundNormalK1    float32
	GroundNormalK0    float32
	WaterFriction     float32
	WaterDepth        float32
	WaterDensity      float32
	AirFriction       float32
	XXMoment          float32
	YYMoment          float32
	ZZMoment          float32
	InertialMatrices  tag.Block[InertialMatrix]
	PoweredMassPoints tag.Block[PoweredMassPoint]
	MassPoints        tag.Block[MassPoint]
}

func (p *Physics) Fields(s *tag.Stream) {
	s.Float32(&p.Radius)
	s.Float32(&p.MomentScale)
	s.Float32(&p.Mass)
	s.Point3D(&p.CenterOfMass)
	s.Float32(&p.Density)
	s.Float32(&p.GravityScale)
	s.Float32(&p.GroundFriction)
	s.Float32(&p.GroundDepth)
	s.Float32(&p.GroundElasticity)
	s.Float32(&p.GroundDepthScale)
	s.Float32(&p.GroundNormalK1)
	s.Float32(&p.GroundNormalK0)
	s.Skip(4)
	s.Float32(&p.WaterFriction)
	s.Float32(&p.WaterDepth)
	s.Float32(&p.WaterDensity)
	s.Skip(4)
	s.Float32(&p.AirFriction)
	s.Skip(4)
	s.Float32(&p.XXMoment)
	s.Float32(&p.YYMoment)
	s.Float32(&p.ZZMoment)
	tag.BlockOf(s, &p.InertialMatrices)
	tag.BlockOf(s, &p.PoweredMassPoints)
	tag.BlockOf(s, &p.MassPoints)
}

// InertialMatrix is a row-major 3x3 inertia tensor.
type InertialMatrix struct {
	Rows [3]mgl32.Vec3
}

func (m *InertialMatrix) Fields(s *tag.Stream) {
	for i := range m.Rows {
		s.Point3D(&m.Rows[i])
	}
}

// Mat3 returns the matrix in mathgl's column-major form.
func (m InertialMatrix) Mat3() mgl32.Mat3 {
	return mgl32.Mat3FromRows(m.Rows[0], m.Rows[1], m.Rows[2])
}

// MassPointFlags are the flags of a powered mass point.
type MassPointFlags uint32

const (
	MassPointFlagGroundFriction MassPointFlags = 1 << iota
	MassPointFlagWaterFriction
	MassPointFlagAirFriction
	MassPointFlagWaterLift
	MassPointFlagAirLift
	MassPointFlagThrust
	MassPointFlagAntigrav
)

// PoweredMassPoint is an antigravity or thrust source shared by mass points.
type PoweredMassPoint struct {
	Name                 string
	Flags                MassPointFlags
	AntigravStrength     float32
	AntigravOffset       float32
	AntigravHeight       float32
	AntigravDampFraction float32
	AntigravNormalK1     float32
	AntigravNormalK0     float32
}

func (p *PoweredMassPoint) Fields(s *tag.Stream) {
	s.FixedString(&p.Name, 32)
	encoding.Flags32(s.Stream, &p.Flags)
	s.Float32(&p.AntigravStrength)
	s.Float32(&p.AntigravOffset)
	s.Float32(&p.AntigravHeight)
	s.Float32(&p.AntigravDampFraction)
	s.Float32(&p.AntigravNormalK1)
	s.Float32(&p.AntigravNormalK0)
	s.Skip(68)
}

// MassPoint is one sphere of the physical body.
type MassPoint struct {
	Name                       string
	PoweredMassPoint           int16
	ModelNode                  int16
	Flags                      uint32
	RelativeMass               float32
	Mass                       float32
	RelativeDensity            float32
	Density                    float32
	Position                   mgl32.Vec3
	Forward                    mgl32.Vec3
	Up                         mgl32.Vec3
	FrictionType               FrictionType
	FrictionParallelScale      float32
	FrictionPerpendicularScale float32
	Radius                     float32
}

func (p *MassPoint) Fields(s *tag.Stream) {
	s.FixedString(&p.Name, 32)
	s.Int16(&p.PoweredMassPoint)
	s.Int16(&p.ModelNode)
	s.Uint32(&p.Flags)
	s.Float32(&p.RelativeMass)
	s.Float32(&p.Mass)
	s.Float32(&p.RelativeDensity)
	s.Float32(&p.Density)
	s.Point3D(&p.Position)
	s.Point3D(&p.Forward)
	s.Point3D(&p.Up)
	encoding.Enum16(s.Stream, &p.FrictionType)
	s.Skip(2)
	s.Float32(&p.FrictionParallelScale)
	s.Float32(&p.FrictionPerpendicularScale)
	s.Float32(&p.Radius)
	s.Skip(20)
}

// PhysicsCodec returns the H1 physics layout.
func PhysicsCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupPhysics,
		Engine:    format.EngineH1,
		Version:   PhysicsVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &Physics{} },
	}
}
