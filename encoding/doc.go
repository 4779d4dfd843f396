// Package encoding provides the primitive field codec of tag files.
//
// A Stream codes one field at a time through pointers, so the same field
// sequence serves both directions:
//
//	func (r *Light) Fields(s *encoding.Stream) {
//	    s.FixedString(&r.MarkerName, 32)
//	    s.Skip(32)
//	    s.ColorRGB(&r.Color)
//	    s.Euler2D(&r.Direction)
//	}
//
// Scalars follow the byte order of the stream's Context, which a layout may
// override for a single field with WithOrder. Angles are radians on disk and
// degrees in memory. Strings go through the context charmap (Windows-1252 by
// default, golang.org/x/text/encoding/charmap).
//
// The package also provides the length-prefixed string table used by tag
// archives (VarStringEncoder and VarStringDecoder).
package encoding
