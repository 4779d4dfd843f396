// Package h1 holds the H1 asset layouts. Every layout is big-endian, names
// its tag references with a trailing null and has no block headers.
package h1

import "github.com/arloliu/halotag/tag"

// Codecs returns every H1 layout.
func Codecs() []tag.Codec {
	return []tag.Codec{
		BitmapCodec(),
		SoundCodec(),
		PhysicsCodec(),
		SkyCodec(),
		EquipmentCodec(),
		DeviceControlCodec(),
		CameraTrackCodec(),
	}
}

// Register adds every H1 layout to r.
func Register(r *tag.Registry) error {
	for _, c := range Codecs() {
		if err := r.Register(c); err != nil {
			return err
		}
	}

	return nil
}
