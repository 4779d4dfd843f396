package h1

import (
	"github.com/arloliu/halotag/encoding"
	"github.com/arloliu/halotag/format"
	"github.com/arloliu/halotag/section"
	"github.com/arloliu/halotag/tag"
)

// EquipmentVersion is the tag version written for H1 equipment.
const EquipmentVersion = 2

// Equipment is the H1 equipment tag (eqip).
type Equipment struct {
	tag.Base

	Object      Object
	Item        Item
	PowerupType PowerupType
	GrenadeType GrenadeType
	PowerupTime float32
	PickupSound section.TagRef
}

func (e *Equipment) Fields(s *tag.Stream) {
	e.Object.Fields(s)
	e.Item.Fields(s)
	encoding.Enum16(s.Stream, &e.PowerupType)
	encoding.Enum16(s.Stream, &e.GrenadeType)
	s.Float32(&e.PowerupTime)
	s.Ref(&e.PickupSound)
	s.Skip(144)
}

// EquipmentCodec returns the H1 equipment layout.
func EquipmentCodec() tag.Codec {
	return tag.Codec{
		Group:     format.GroupEquipment,
		Engine:    format.EngineH1,
		Version:   EquipmentVersion,
		Revisions: []format.Revision{format.RevisionH1},
		New:       func() tag.Asset { return &Equipment{Object: Object{Type: ObjectTypeEquipment}} },
	}
}
