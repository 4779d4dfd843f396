// Package h2 holds the H2 asset layouts. Every layout is little-endian except
// for string id lengths, and the revision decides which fields, name
// terminators and block headers are present.
package h2

import "github.com/arloliu/halotag/tag"

// Codecs returns every H2 layout.
func Codecs() []tag.Codec {
	return []tag.Codec{BitmapCodec(), ShaderCodec()}
}

// Register adds every H2 layout to r.
func Register(r *tag.Registry) error {
	for _, c := range Codecs() {
		if err := r.Register(c); err != nil {
			return err
		}
	}

	return nil
}
