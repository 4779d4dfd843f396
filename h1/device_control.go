package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
)

// DeviceControlVersion is the tag version written for H1 device controls.
const DeviceControlVersion = 1

// DeviceControl is the H1 device control tag (ctrl): switches and buttons.
type DeviceControl struct {
	tag.Base

	Object       Object
	Device       Device
	Type         ControlType
	TriggersWhen TriggersWhen
	CallValue    float32
	On           section.TagRef
	Off          section.TagRef
	Deny         section.TagRef
}

func (c *DeviceControl) Fields(s *tag.Stream) {
	c.Object.Fields(s)
	c.Device.Fields(s)
	encoding.Enum16(s.Stream, &c.Type)
	encoding.Enum16(s.Stream, &c.TriggersWhen)
	s.Float32(&c.CallValue)
	s.Skip(80)
	s.Ref(&c.On)
	s.Ref(&c.Off)
	s.Ref(&c.Deny)
}

// DeviceControlCodec returns the H1 device control layout.
func DeviceControlCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupDeviceControl,
		Engine:    format.EngineH1,
		Version:   DeviceControlVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &DeviceControl{Object: Object{Type: ObjectTypeDeviceControl}} },
	}
}
