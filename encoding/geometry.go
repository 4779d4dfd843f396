package encoding

import (
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// ColorRGB is a color of three float components.
type ColorRGB struct {
	R, G, B float32
}

// ColorARGB is a color of four float components, alpha first on disk.
type ColorARGB struct {
	A, R, G, B float32
}

// Bounds is a float range.
type Bounds struct {
	Min, Max float32
}

// ShortBounds is an int16 range.
type ShortBounds struct {
	Min, Max int16
}

// AngleBounds is an angle range in degrees.
type AngleBounds struct {
	Min, Max float64
}

// Euler2D is a yaw and pitch pair in degrees.
type Euler2D struct {
	Yaw, Pitch float64
}

// Euler3D is a yaw, pitch and roll triple in degrees.
type Euler3D struct {
	Yaw, Pitch, Roll float64
}

// Point2DInt is a pair of int16 coordinates.
type Point2DInt struct {
	X, Y int16
}

// Plane3D is a plane given by its normal and distance from the origin.
type Plane3D struct {
	Normal mgl32.Vec3
	D      float32
}

// Degrees converts an on-disk radian value to degrees. The result is the
// shortest decimal that converts back to the same radians, so 45 degrees
// written by Radians reads back as 45.
func Degrees(rad float32) float64 {
	deg := mgl64.RadToDeg(float64(rad))
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return deg
	}

	for digits := 1; digits <= 9; digits++ {
		short, err := strconv.ParseFloat(strconv.FormatFloat(deg, 'g', digits, 64), 64)
		if err == nil && Radians(short) == rad {
			return short
		}
	}

	return deg
}

// Radians converts degrees to the on-disk radian value.
func Radians(deg float64) float32 {
	return float32(mgl64.DegToRad(deg))
}

// Angle codes an angle stored in radians and exposed in degrees. Authored
// degrees are quantized to float32 radians on encode; a decoded value always
// encodes back to the original bits.
func (s *Stream) Angle(v *float64) {
	rad := Radians(*v)
	s.Float32(&rad)
	if s.decoding && s.err == nil {
		*v = Degrees(rad)
	}
}

func (s *Stream) AngleBounds(v *AngleBounds) {
	s.Angle(&v.Min)
	s.Angle(&v.Max)
}

func (s *Stream) Euler2D(v *Euler2D) {
	s.Angle(&v.Yaw)
	s.Angle(&v.Pitch)
}

func (s *Stream) Euler3D(v *Euler3D) {
	s.Angle(&v.Yaw)
	s.Angle(&v.Pitch)
	s.Angle(&v.Roll)
}

func (s *Stream) Point2D(v *mgl32.Vec2) {
	s.Float32(&v[0])
	s.Float32(&v[1])
}

// Point3D codes a 3D point or vector.
func (s *Stream) Point3D(v *mgl32.Vec3) {
	s.Float32(&v[0])
	s.Float32(&v[1])
	s.Float32(&v[2])
}

// Quaternion codes a rotation stored as i, j, k, w.
func (s *Stream) Quaternion(v *mgl32.Quat) {
	s.Point3D(&v.V)
	s.Float32(&v.W)
}

func (s *Stream) Plane3D(v *Plane3D) {
	s.Point3D(&v.Normal)
	s.Float32(&v.D)
}

func (s *Stream) Point2DInt(v *Point2DInt) {
	s.Int16(&v.X)
	s.Int16(&v.Y)
}

func (s *Stream) ColorRGB(v *ColorRGB) {
	s.Float32(&v.R)
	s.Float32(&v.G)
	s.Float32(&v.B)
}

func (s *Stream) ColorARGB(v *ColorARGB) {
	s.Float32(&v.A)
	s.Float32(&v.R)
	s.Float32(&v.G)
	s.Float32(&v.B)
}

func (s *Stream) Bounds(v *Bounds) {
	s.Float32(&v.Min)
	s.Float32(&v.Max)
}

func (s *Stream) ShortBounds(v *ShortBounds) {
	s.Int16(&v.Min)
	s.Int16(&v.Max)
}
