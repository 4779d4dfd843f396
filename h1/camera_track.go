package h1

import (
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/tag"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraTrackVersion is the tag version written for H1 camera tracks.
const CameraTrackVersion = 2

// CameraTrack is the H1 camera track tag (trak).
type CameraTrack struct {
	tag.Base

	Flags         uint32
	ControlPoints tag.Block[CameraControlPoint]
}

func (c *CameraTrack) Fields(s *tag.Stream) {
	s.Uint32(&c.Flags)
	tag.BlockOf(s, &c.ControlPoints)
	s.Skip(32)
}

// CameraControlPoint is one keyframe of a camera track.
type CameraControlPoint struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
}

func (p *CameraControlPoint) Fields(s *tag.Stream) {
	s.Point3D(&p.Position)
	s.Quaternion(&p.Orientation)
	s.Skip(32)
}

// CameraTrackCodec returns the H1 camera track layout.
func CameraTrackCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupCameraTrack,
		Engine:    format.EngineH1,
		Version:   CameraTrackVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &CameraTrack{} },
	}
}
